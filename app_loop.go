package tui

import (
	"os"
	"os/signal"
	"time"
)

// Run starts the main event loop. Blocks until Stop() is called or SIGINT received.
// Rendering occurs only when the dirty flag is set (by mutations).
func (a *App) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			a.Stop()
		case <-a.stopCh:
		}
		signal.Stop(sigCh)
	}()

	if a.terminal != nil {
		resizeCh, stopResize := notifyResize()
		defer stopResize()
		if resizeCh != nil {
			Watch(resizeCh, func(os.Signal) { a.MarkDirty() }).Start(a.eventQueue, a.stopCh)
		}
	}

	a.Render()

	for !a.stopped.Load() {
		frameStart := time.Now()

		// Process events for up to half the frame budget
		eventDeadline := frameStart.Add(a.frameDuration / 2)
	events:
		for time.Now().Before(eventDeadline) {
			select {
			case handler := <-a.eventQueue:
				handler()
			case <-a.stopCh:
				return nil
			default:
				break events
			}
		}

		if a.checkAndClearDirty() {
			a.Render()
		}

		elapsed := time.Since(frameStart)
		if elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			}
		}
	}

	return nil
}

// Stop signals the Run loop to exit and stops all watchers.
// Stop is idempotent - multiple calls are safe.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		close(a.stopCh)
	})
}

// QueueUpdate enqueues a function to run on the main loop.
// Safe to call from any goroutine. Use this for background thread safety.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	default:
		a.logger.Warn().Int("capacity", cap(a.eventQueue)).Msg("event queue full, update dropped")
	}
}
