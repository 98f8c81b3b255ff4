// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/tuikit/tui/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// LayoutResult holds the computed border box and content box of a node.
type LayoutResult = layout.Layout

// Layoutable is implemented by nodes the layout engine can position.
type Layoutable = layout.Layoutable

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Auto returns a Value sized from content or flex.
func Auto() Value { return layout.Auto() }

// Fixed returns a Value of n terminal cells.
func Fixed(n int) Value { return layout.Fixed(n) }

// Percent returns a Value on a 0-100 scale of the parent's content box.
func Percent(p float64) Value { return layout.Percent(p) }

// NewRect creates a Rect.
func NewRect(x, y, w, h int) Rect { return layout.NewRect(x, y, w, h) }

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges { return layout.EdgeSymmetric(v, h) }

// DefaultLayoutStyle returns an auto-sized row container style.
func DefaultLayoutStyle() LayoutStyle { return layout.DefaultStyle() }
