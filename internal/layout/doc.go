// Package layout computes box positions for a tree of Layoutable nodes.
//
// It is a small single-line flexbox: children are placed along the
// container's Direction, auto-sized children take their intrinsic size on
// the main axis, FlexGrow distributes leftover space, and the cross axis
// stretches to fill the container.
package layout
