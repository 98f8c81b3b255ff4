package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

var _ Terminal = (*ANSITerminal)(nil)

// ANSITerminal writes frames as ANSI escape sequences.
type ANSITerminal struct {
	out *bufio.Writer
	fd  int
}

// NewANSITerminal creates a terminal writing to out. fd is queried for the
// window size and must refer to a terminal.
func NewANSITerminal(out io.Writer, fd int) (*ANSITerminal, error) {
	if !isTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	return &ANSITerminal{out: bufio.NewWriter(out), fd: fd}, nil
}

// NewStdoutTerminal creates an ANSITerminal on os.Stdout.
func NewStdoutTerminal() (*ANSITerminal, error) {
	t, err := NewANSITerminal(os.Stdout, int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("stdout terminal: %w", err)
	}
	return t, nil
}

// Size returns the current window size, or 80x24 if it cannot be read.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := getTerminalSize(t.fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush moves the cursor only when the next change is not adjacent.
func (t *ANSITerminal) Flush(changes []CellChange) {
	curX, curY := -1, -1
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.X != curX || ch.Y != curY {
			fmt.Fprintf(t.out, "\033[%d;%dH", ch.Y+1, ch.X+1)
		}
		t.out.WriteRune(ch.Cell.Rune)
		curX, curY = ch.X+int(ch.Cell.Width), ch.Y
	}
	t.out.Flush()
}

// Clear clears the screen and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.write("\033[2J\033[H")
}

// HideCursor hides the cursor.
func (t *ANSITerminal) HideCursor() {
	t.write("\033[?25l")
}

// ShowCursor shows the cursor.
func (t *ANSITerminal) ShowCursor() {
	t.write("\033[?25h")
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.write("\033[?1049h")
}

// ExitAltScreen restores the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.write("\033[?1049l")
}

func (t *ANSITerminal) write(seq string) {
	t.out.WriteString(seq)
	t.out.Flush()
}
