package tui

var (
	_ Layoutable = (*Element)(nil)
	_ Measurable = (*Element)(nil)
)

// Element is a layout container with visual properties.
// It implements Layoutable and owns its children directly.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element
	app      *App

	// Layout properties
	style  LayoutStyle
	layout LayoutResult

	// Visual properties
	border BorderStyle
	text   string

	// Component that rendered this element, set by Mount.
	component Component
}

// New creates a new Element with the given options.
// By default, an Element has Auto width/height (flexes to fill available space).
func New(opts ...Option) *Element {
	e := &Element{
		style: DefaultLayoutStyle(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MarkDirty asks the owning app, if any, for a new frame.
func (e *Element) MarkDirty() {
	if e.app != nil {
		e.app.MarkDirty()
	}
}

// App returns the app this element is attached to, or nil.
func (e *Element) App() *App {
	return e.app
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the text content and marks dirty.
func (e *Element) SetText(s string) {
	if e.text == s {
		return
	}
	e.text = s
	e.MarkDirty()
}

// Border returns the border style.
func (e *Element) Border() BorderStyle {
	return e.border
}

// Style returns the layout style as configured, without border padding.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// Rect returns the border box computed by the last layout pass.
func (e *Element) Rect() Rect {
	return e.layout.Rect
}

// ContentRect returns the border box minus border and padding.
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}

// clientRect is the border box minus the border: padding stays inside.
func (e *Element) clientRect() Rect {
	if e.border == BorderNone {
		return e.layout.Rect
	}
	return e.layout.Rect.Inset(EdgeAll(1))
}

// ClientHeight returns the height of the element's box inside its border.
func (e *Element) ClientHeight() int {
	return e.clientRect().Height
}

// ClientWidth returns the width of the element's box inside its border.
func (e *Element) ClientWidth() int {
	return e.clientRect().Width
}
