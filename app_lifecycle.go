package tui

// Close unmounts all components, which runs their cleanups, stops the event
// loop, restores the terminal and writes out held warnings.
func (a *App) Close() error {
	a.mounts.unmountAll()
	a.Stop()
	if a.terminal != nil {
		a.terminal.ShowCursor()
		a.terminal.ExitAltScreen()
	}
	if a.heldWarnings != nil {
		a.heldWarnings.flushTo(warnOutput)
	}
	return nil
}
