package tui

import "strings"

// MockTerminal is a mock implementation of Terminal for testing.
// It captures all operations and maintains an internal screen for verification.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorHidden  bool
	inAltScreen   bool
	flushCount    int
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{}
	m.Resize(width, height)
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// Flush applies the given cell changes to the mock screen.
func (m *MockTerminal) Flush(changes []CellChange) {
	m.flushCount++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

// Clear blanks the mock screen.
func (m *MockTerminal) Clear() {
	for i := range m.cells {
		m.cells[i] = blankCell
	}
}

// HideCursor marks the cursor hidden.
func (m *MockTerminal) HideCursor() { m.cursorHidden = true }

// ShowCursor marks the cursor visible.
func (m *MockTerminal) ShowCursor() { m.cursorHidden = false }

// EnterAltScreen marks the alternate screen active.
func (m *MockTerminal) EnterAltScreen() { m.inAltScreen = true }

// ExitAltScreen marks the alternate screen inactive.
func (m *MockTerminal) ExitAltScreen() { m.inAltScreen = false }

// IsCursorHidden reports the cursor state.
func (m *MockTerminal) IsCursorHidden() bool { return m.cursorHidden }

// IsInAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool { return m.inAltScreen }

// FlushCount returns how many frames were flushed.
func (m *MockTerminal) FlushCount() int { return m.flushCount }

// Resize changes the terminal dimensions and blanks the screen.
func (m *MockTerminal) Resize(width, height int) {
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	m.Clear()
}

// String returns the screen with trailing spaces trimmed from each line.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			c := m.cells[y*m.width+x]
			if c.IsContinuation() {
				continue
			}
			line.WriteRune(c.Rune)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
