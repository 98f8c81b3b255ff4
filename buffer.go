package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character cell. Wide characters occupy two cells; the
// second one is a continuation with Rune 0 and Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

var blankCell = Cell{Rune: ' ', Width: 1}

// IsContinuation returns true if this cell continues a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Buffer is a double-buffered cell grid. Drawing goes to the back buffer;
// Diff compares it with what was last flushed.
type Buffer struct {
	width, height int
	front         []Cell
	back          []Cell
}

// CellChange is one cell that differs from the last flushed frame.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a blank buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds.
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// Cell returns the back-buffer cell at (x, y), or a blank cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if !b.Rect().Contains(x, y) {
		return blankCell
	}
	return b.back[y*b.width+x]
}

// SetRune writes r at (x, y) and returns the number of cells used.
func (b *Buffer) SetRune(x, y int, r rune) int {
	w := runewidth.RuneWidth(r)
	if w == 0 || !b.Rect().Contains(x, y) {
		return w
	}
	if w == 2 && x+1 >= b.width {
		b.back[y*b.width+x] = blankCell
		return 1
	}
	b.back[y*b.width+x] = Cell{Rune: r, Width: uint8(w)}
	if w == 2 {
		b.back[y*b.width+x+1] = Cell{}
	}
	return w
}

// SetString writes s starting at (x, y), clipped to clip. It returns the
// number of cells advanced.
func (b *Buffer) SetString(x, y int, s string, clip Rect) int {
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x+w > clip.Right() {
			break
		}
		if x >= clip.X && y >= clip.Y && y < clip.Bottom() {
			b.SetRune(x, y, r)
		}
		x += w
	}
	return x - start
}

// Fill fills rect with r.
func (b *Buffer) Fill(rect Rect, r rune) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r)
		}
	}
}

// Clear blanks the back buffer.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blankCell
	}
}

// Diff returns all cells that changed between front and back buffers,
// in row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			if b.back[idx] != b.front[idx] {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[idx]})
			}
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
// Call this after flushing changes to the terminal.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize reallocates the buffer. Both buffers are blanked, so the next Diff
// reports nothing until something is drawn; callers clear the terminal.
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	b.width, b.height = width, height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	for i := range b.back {
		b.front[i] = blankCell
		b.back[i] = blankCell
	}
}

// String renders the back buffer with trailing spaces removed from each line.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			line.WriteRune(cell.Rune)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
