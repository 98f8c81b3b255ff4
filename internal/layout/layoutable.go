package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box allocated by the parent.
	Rect Rect

	// ContentRect is Rect minus padding, where children are placed.
	ContentRect Rect
}

// Layoutable is the interface for anything that can participate in layout calculation.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// IntrinsicSize returns the natural content-based dimensions of this node,
	// padding included. Used as the main-axis size of auto-sized children.
	IntrinsicSize() (width, height int)
}
