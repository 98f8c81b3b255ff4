package tui

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tuikit/tui/internal/debug"
)

// warnOutput receives warnings when TUI_DEBUG is unset.
var warnOutput io.Writer = os.Stderr

// heldWarnings buffers warnings while an app owns the screen. Close writes
// them out after the terminal is restored.
type heldWarnings struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (h *heldWarnings) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

func (h *heldWarnings) flushTo(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.buf.Len() == 0 {
		return
	}
	_, _ = w.Write(h.buf.Bytes())
	h.buf.Reset()
}

// defaultLogger picks where warnings go when WithLogger is not given: the
// TUI_DEBUG file when set, otherwise stderr. Apps with a terminal hold
// stderr output until Close so it does not land on the alternate screen.
func (a *App) defaultLogger() zerolog.Logger {
	if debug.Enabled() {
		return debug.Logger()
	}
	out := warnOutput
	if a.terminal != nil {
		a.heldWarnings = &heldWarnings{}
		out = a.heldWarnings
	}
	return debug.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).Level(zerolog.WarnLevel)
}
