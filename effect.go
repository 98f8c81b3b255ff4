package tui

// effectTiming decides when scheduled effects run relative to the frame.
type effectTiming int

const (
	// effectsLayout runs effects after layout, before the frame reaches the
	// terminal, so the first visible frame already reflects them.
	effectsLayout effectTiming = iota
	// effectsPassive runs effects from the event queue after the frame commits.
	effectsPassive
)

func (t effectTiming) String() string {
	if t == effectsPassive {
		return "passive"
	}
	return "layout"
}

// scheduleEffect queues fn according to the app's effect timing.
// Must be called from the main loop.
func (a *App) scheduleEffect(fn func()) {
	if a.effectTiming == effectsLayout {
		a.layoutEffects = append(a.layoutEffects, fn)
		return
	}
	a.passiveEffects = append(a.passiveEffects, fn)
}

// runLayoutEffects runs effects scheduled for the current pass, including
// any scheduled by the effects themselves.
func (a *App) runLayoutEffects() {
	for len(a.layoutEffects) > 0 {
		effects := a.layoutEffects
		a.layoutEffects = nil
		for _, fn := range effects {
			fn()
		}
	}
}

// commitPassiveEffects hands pending passive effects to the event queue.
// Only one flush is in flight at a time.
func (a *App) commitPassiveEffects() {
	if len(a.passiveEffects) == 0 || a.passiveFlushQueued {
		return
	}
	a.passiveFlushQueued = true
	a.QueueUpdate(a.runPassiveEffects)
}

func (a *App) runPassiveEffects() {
	a.passiveFlushQueued = false
	for len(a.passiveEffects) > 0 {
		effects := a.passiveEffects
		a.passiveEffects = nil
		for _, fn := range effects {
			fn()
		}
	}
}
