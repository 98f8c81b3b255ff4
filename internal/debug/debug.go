package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	tried   bool
)

// Init opens path for appending debug output. It replaces any file opened
// earlier, including one opened lazily from TUI_DEBUG.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	tried = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// fileLocked returns the open log file, opening it from TUI_DEBUG on first
// use. Caller must hold mu.
func fileLocked() *os.File {
	if logFile == nil && !tried {
		tried = true
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	}
	return logFile
}

// Enabled reports whether debug output is going anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return fileLocked() != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	f := fileLocked()
	if f == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f, "[%s] %s\n", timestamp, msg)
}

// writer serializes zerolog output with Log on the shared file.
type writer struct{}

func (writer) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	f := fileLocked()
	if f == nil {
		return len(p), nil
	}
	return f.Write(p)
}

// Logger returns a leveled logger writing to the debug log. When debug
// logging is off the logger is disabled.
func Logger() zerolog.Logger {
	if !Enabled() {
		return zerolog.Nop()
	}
	return New(writer{})
}

// New builds the framework's logger shape on top of w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("lib", "tui").Logger()
}
