package tui

import "strings"

// RenderTree draws root and its descendants into buf using the last
// computed layout.
func RenderTree(buf *Buffer, root *Element) {
	if root == nil {
		return
	}
	renderElement(buf, root, buf.Rect())
}

func renderElement(buf *Buffer, e *Element, clip Rect) {
	rect := e.layout.Rect
	if rect.IsEmpty() {
		return
	}

	DrawBox(buf, rect, e.border)

	content := e.layout.ContentRect
	if e.text != "" {
		for i, line := range strings.Split(e.text, "\n") {
			y := content.Y + i
			if y >= content.Bottom() {
				break
			}
			buf.SetString(content.X, y, line, intersect(content, clip))
		}
	}

	for _, child := range e.children {
		renderElement(buf, child, intersect(content, clip))
	}
}

func intersect(a, b Rect) Rect {
	x, y := max(a.X, b.X), max(a.Y, b.Y)
	right, bottom := min(a.Right(), b.Right()), min(a.Bottom(), b.Bottom())
	if right <= x || bottom <= y {
		return NewRect(x, y, 0, 0)
	}
	return NewRect(x, y, right-x, bottom-y)
}
