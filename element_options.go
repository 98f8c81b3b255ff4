package tui

// Option configures an Element.
type Option func(*Element)

// WithWidth sets a fixed width in cells.
func WithWidth(n int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(n)
	}
}

// WithHeight sets a fixed height in cells.
func WithHeight(n int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(n)
	}
}

// WithWidthPercent sets the width as a percentage of the parent's content box.
func WithWidthPercent(p float64) Option {
	return func(e *Element) {
		e.style.Width = Percent(p)
	}
}

// WithHeightPercent sets the height as a percentage of the parent's content box.
func WithHeightPercent(p float64) Option {
	return func(e *Element) {
		e.style.Height = Percent(p)
	}
}

// WithDirection sets the main axis for children.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithGap sets the space between children.
func WithGap(n int) Option {
	return func(e *Element) {
		e.style.Gap = n
	}
}

// WithFlexGrow sets the element's share of leftover main-axis space.
func WithFlexGrow(g float64) Option {
	return func(e *Element) {
		e.style.FlexGrow = g
	}
}

// WithPadding sets equal padding on all sides.
func WithPadding(n int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeAll(n)
	}
}

// WithPaddingEdges sets per-side padding.
func WithPaddingEdges(edges Edges) Option {
	return func(e *Element) {
		e.style.Padding = edges
	}
}

// WithBorder draws a border, which takes one cell on each side.
func WithBorder(b BorderStyle) Option {
	return func(e *Element) {
		e.border = b
	}
}

// WithText sets the element's text content.
func WithText(s string) Option {
	return func(e *Element) {
		e.text = s
	}
}

// WithRef stores the element in ref as soon as it is built.
func WithRef(ref *Ref) Option {
	return func(e *Element) {
		ref.Set(e)
	}
}
