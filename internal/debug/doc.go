// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, trace
// messages and leveled zerolog records are appended to that file.
// Otherwise logging is a no-op.
package debug
