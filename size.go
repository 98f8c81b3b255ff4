package tui

// Size is the measured client box of an element, in terminal cells.
type Size struct {
	Height int
	Width  int
}

// Axis restricts size reporting and comparison to one dimension.
// The zero value, AxisBoth, reports and compares both.
type Axis int

const (
	// AxisBoth tracks height and width.
	AxisBoth Axis = iota
	// AxisHeight tracks height only; width is reported as 0.
	AxisHeight
	// AxisWidth tracks width only; height is reported as 0.
	AxisWidth
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHeight:
		return "height"
	case AxisWidth:
		return "width"
	default:
		return "both"
	}
}

// ShouldUpdateSize reports whether newSize differs from oldSize on the
// tracked axis. Changes on the other axis are ignored when an axis is set.
func ShouldUpdateSize(oldSize, newSize Size, axis Axis) bool {
	switch axis {
	case AxisHeight:
		return oldSize.Height != newSize.Height
	case AxisWidth:
		return oldSize.Width != newSize.Width
	default:
		return oldSize.Height != newSize.Height || oldSize.Width != newSize.Width
	}
}

// ProjectSize returns the size to expose for axis. The untracked axis is
// always 0, never a previously observed value.
func ProjectSize(newSize Size, axis Axis) Size {
	switch axis {
	case AxisHeight:
		return Size{Height: newSize.Height}
	case AxisWidth:
		return Size{Width: newSize.Width}
	default:
		return newSize
	}
}
