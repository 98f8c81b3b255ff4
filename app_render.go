package tui

import (
	"github.com/tuikit/tui/internal/debug"
	"github.com/tuikit/tui/internal/layout"
)

// Render produces one frame:
//
//  1. render the root component (mounting and unmounting components)
//  2. lay the tree out in the viewport
//  3. run layout effects
//  4. deliver size observations; repeat from 1 while they dirty the tree
//  5. paint and flush to the terminal
//  6. hand passive effects to the event queue
//
// Must be called from the main loop.
func (a *App) Render() {
	width, height := a.Size()
	a.rendering = true
	defer func() { a.rendering = false }()

	for pass := 1; ; pass++ {
		a.dirty.Store(false)
		a.buildTree()
		if a.root != nil {
			layout.Calculate(a.root, width, height)
		}
		a.runLayoutEffects()
		delivered := a.observers.deliver()

		if !a.dirty.Load() {
			break
		}
		if pass >= a.resizeLoopLimit {
			a.logger.Warn().
				Int("passes", pass).
				Int("entries", delivered).
				Msg("size observation loop limit reached; remaining changes deferred to next frame")
			break
		}
		debug.Log("Render: pass %d dirtied the tree, re-rendering", pass)
	}

	a.paint(width, height)
	a.commitPassiveEffects()
}

// buildTree renders the root component, or reuses the static root.
func (a *App) buildTree() {
	switch {
	case a.rootComponent != nil:
		root := a.rootComponent
		el := a.Mount(nil, 0, func() Component { return root })
		el.setAppRecursive(a)
		a.root = el
		a.mounts.sweep()
	case a.rootElement != nil:
		a.root = a.rootElement
	default:
		a.root = nil
	}
}

// paint draws the laid-out tree and flushes the diff. No-op when headless.
func (a *App) paint(width, height int) {
	if a.terminal == nil {
		return
	}
	if a.buffer.Width() != width || a.buffer.Height() != height {
		a.buffer.Resize(width, height)
		a.terminal.Clear()
		a.needsFullRedraw = true
	}

	a.buffer.Clear()
	RenderTree(a.buffer, a.root)

	if a.needsFullRedraw {
		a.needsFullRedraw = false
		flushFull(a.terminal, a.buffer)
		return
	}
	flushDiff(a.terminal, a.buffer)
}

// SnapshotFrame returns the last painted frame as text.
func (a *App) SnapshotFrame() string {
	if a.buffer == nil {
		return ""
	}
	return a.buffer.String()
}
