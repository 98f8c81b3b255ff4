//go:build !unix

package tui

import (
	"errors"
	"os"
)

func getTerminalSize(fd int) (width, height int, err error) {
	return 0, 0, errors.New("terminal size not supported on this platform")
}

func isTerminal(fd int) bool {
	return false
}

// notifyResize has no resize signal here; size changes show up on the next
// render.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}
