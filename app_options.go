package tui

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for the render loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithLogger sets the logger used for warnings. By default warnings go to
// the TUI_DEBUG log file, or to stderr (held until Close for apps with a
// terminal).
func WithLogger(l zerolog.Logger) AppOption {
	return func(a *App) error {
		a.logger = l
		return nil
	}
}

// WithPassiveEffects runs effects after each frame commits even when the
// app has a terminal.
func WithPassiveEffects() AppOption {
	return func(a *App) error {
		a.forcePassive = true
		return nil
	}
}

// WithResizeLoopLimit bounds how many render passes one frame may take
// while size observations keep changing the tree. Default is 8.
func WithResizeLoopLimit(n int) AppOption {
	return func(a *App) error {
		if n < 1 {
			return fmt.Errorf("resize loop limit must be at least 1")
		}
		a.resizeLoopLimit = n
		return nil
	}
}

// WithRootComponent sets the root component once the app is initialized.
func WithRootComponent(c Component) AppOption {
	return func(a *App) error {
		a.pendingRoot = c
		return nil
	}
}
