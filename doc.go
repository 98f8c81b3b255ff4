// Package tui is a small terminal UI framework built around measured
// elements.
//
// Components render element trees each frame; the App lays them out, lets
// ResizeObservers report client sizes that changed, and paints the result.
// ElementSize turns those reports into reactive state so a component can
// render with the size of its own element:
//
//	s := p.size.Use(p.ref, tui.AxisWidth)
//
// With a terminal attached, sizes are applied before the frame is flushed,
// so the first visible frame is already measured.
package tui
