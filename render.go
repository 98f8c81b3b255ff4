package tui

// flushDiff sends the cells that changed since the last frame and swaps
// the buffers.
func flushDiff(term Terminal, buf *Buffer) {
	if changes := buf.Diff(); len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}

// flushFull sends every cell of the back buffer. Used for the first frame
// and after the terminal was cleared.
func flushFull(term Terminal, buf *Buffer) {
	width, height := buf.Width(), buf.Height()
	changes := make([]CellChange, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			changes = append(changes, CellChange{X: x, Y: y, Cell: buf.Cell(x, y)})
		}
	}
	if len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}
