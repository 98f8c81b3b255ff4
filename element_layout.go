package tui

import "github.com/charmbracelet/lipgloss/v2"

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this element.
// If the element has a border, padding is increased to account for border width.
func (e *Element) LayoutStyle() LayoutStyle {
	style := e.style
	if e.border != BorderNone {
		style.Padding = style.Padding.Add(EdgeAll(1))
	}
	return style
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// SetLayout is called by the layout engine to store computed layout.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the last computed layout.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}

// IntrinsicSize returns the natural content-based dimensions of this element,
// including padding and border.
func (e *Element) IntrinsicSize() (width, height int) {
	padding := e.LayoutStyle().Padding

	if e.text != "" {
		return lipgloss.Width(e.text) + padding.Horizontal(),
			lipgloss.Height(e.text) + padding.Vertical()
	}

	if len(e.children) == 0 {
		return padding.Horizontal(), padding.Vertical()
	}

	isRow := e.style.Direction == Row
	for i, child := range e.children {
		cw, ch := child.IntrinsicSize()
		if !child.style.Width.IsAuto() {
			cw = child.style.Width.Resolve(0, cw)
		}
		if !child.style.Height.IsAuto() {
			ch = child.style.Height.Resolve(0, ch)
		}
		if isRow {
			width += cw
			height = max(height, ch)
		} else {
			width = max(width, cw)
			height += ch
		}
		if i > 0 {
			if isRow {
				width += e.style.Gap
			} else {
				height += e.style.Gap
			}
		}
	}
	return width + padding.Horizontal(), height + padding.Vertical()
}
