package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Style contains the layout properties of a node.
type Style struct {
	Width  Value
	Height Value

	Direction Direction
	Gap       int     // Space between children (main axis only)
	FlexGrow  float64 // Share of leftover main-axis space

	// Padding includes any border the node draws.
	Padding Edges
}

// DefaultStyle returns an auto-sized row container.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		Direction: Row,
	}
}
