package tui

import (
	"slices"

	"github.com/tuikit/tui/internal/debug"
)

// ResizeEntry reports the client size of one observed target.
type ResizeEntry struct {
	Target Measurable
	Size   Size
}

// SubscriptionID identifies one Subscribe call on a SizeObserverService.
type SubscriptionID uint64

// SizeObserverService notifies subscribers when a target's client size
// changes. Notifications arrive on the app's main loop, in batches.
type SizeObserverService interface {
	Subscribe(target Measurable, fn func([]ResizeEntry)) SubscriptionID
	Unsubscribe(id SubscriptionID)
}

// ResizeObserver watches the client size of a set of targets. After each
// layout pass, every target whose size differs from the last one reported
// is delivered to the callback in a single batch. Every target is reported
// on its first round, zero-sized ones included.
type ResizeObserver struct {
	registry     *resizeRegistry
	callback     func([]ResizeEntry)
	observations []*resizeObservation
}

type resizeObservation struct {
	target Measurable
	last   Size
}

// unreported is the last size of an observation that has not been
// reported yet. No layout produces it.
var unreported = Size{Height: -1, Width: -1}

// NewResizeObserver creates an observer delivering to fn.
func (a *App) NewResizeObserver(fn func([]ResizeEntry)) *ResizeObserver {
	o := &ResizeObserver{registry: a.observers, callback: fn}
	a.observers.observers = append(a.observers.observers, o)
	return o
}

// Observe starts watching target. Observing a target twice is a no-op.
func (o *ResizeObserver) Observe(target Measurable) {
	if o.index(target) >= 0 {
		return
	}
	o.observations = append(o.observations, &resizeObservation{target: target, last: unreported})
	// Outside a render the target is already laid out; report it now.
	if o.registry != nil && !o.registry.app.rendering {
		o.registry.deliverTo([]*ResizeObserver{o})
	}
}

// Unobserve stops watching target.
func (o *ResizeObserver) Unobserve(target Measurable) {
	if i := o.index(target); i >= 0 {
		o.observations = slices.Delete(o.observations, i, i+1)
	}
}

// Disconnect stops watching all targets and detaches the observer.
func (o *ResizeObserver) Disconnect() {
	o.observations = nil
	if o.registry != nil {
		o.registry.remove(o)
		o.registry = nil
	}
}

func (o *ResizeObserver) index(target Measurable) int {
	for i, obs := range o.observations {
		if sameTarget(obs.target, target) {
			return i
		}
	}
	return -1
}

// collect returns entries for targets whose size changed and records them
// as reported.
func (o *ResizeObserver) collect() []ResizeEntry {
	var entries []ResizeEntry
	for _, obs := range o.observations {
		current := Size{Height: obs.target.ClientHeight(), Width: obs.target.ClientWidth()}
		if current == obs.last {
			continue
		}
		obs.last = current
		entries = append(entries, ResizeEntry{Target: obs.target, Size: current})
	}
	return entries
}

// subscription ties a SubscriptionID to the observer created for it.
type subscription struct {
	observer *ResizeObserver
	target   Measurable
}

// resizeRegistry owns the app's observers and implements SizeObserverService.
type resizeRegistry struct {
	app       *App
	observers []*ResizeObserver
	subs      map[SubscriptionID]subscription
	nextID    SubscriptionID
}

var _ SizeObserverService = (*resizeRegistry)(nil)

func newResizeRegistry(app *App) *resizeRegistry {
	return &resizeRegistry{app: app, subs: make(map[SubscriptionID]subscription)}
}

// Subscribe observes target with a dedicated observer.
func (r *resizeRegistry) Subscribe(target Measurable, fn func([]ResizeEntry)) SubscriptionID {
	r.nextID++
	o := r.app.NewResizeObserver(fn)
	o.Observe(target)
	r.subs[r.nextID] = subscription{observer: o, target: target}
	debug.Log("resizeRegistry: subscribe %d (%T)", r.nextID, target)
	return r.nextID
}

// Unsubscribe stops the subscription. Unknown IDs are ignored.
func (r *resizeRegistry) Unsubscribe(id SubscriptionID) {
	sub, ok := r.subs[id]
	if !ok {
		return
	}
	delete(r.subs, id)
	sub.observer.Unobserve(sub.target)
	sub.observer.Disconnect()
	debug.Log("resizeRegistry: unsubscribe %d", id)
}

func (r *resizeRegistry) remove(o *ResizeObserver) {
	if i := slices.Index(r.observers, o); i >= 0 {
		r.observers = slices.Delete(r.observers, i, i+1)
	}
}

// deliver runs one observation round and returns the number of entries
// delivered. Callbacks run inside one batch so bindings fire once.
func (r *resizeRegistry) deliver() int {
	return r.deliverTo(r.observers)
}

func (r *resizeRegistry) deliverTo(observers []*ResizeObserver) int {
	type pending struct {
		observer *ResizeObserver
		entries  []ResizeEntry
	}
	var batches []pending
	for _, o := range observers {
		if entries := o.collect(); len(entries) > 0 {
			batches = append(batches, pending{observer: o, entries: entries})
		}
	}
	if len(batches) == 0 {
		return 0
	}

	delivered := 0
	r.app.Batch(func() {
		for _, b := range batches {
			// An earlier callback may have disconnected this observer.
			if b.observer.registry == nil {
				continue
			}
			b.observer.callback(b.entries)
			delivered += len(b.entries)
		}
	})
	return delivered
}

// SizeObservers returns the app's size observation service.
func (a *App) SizeObservers() SizeObserverService {
	return a.observers
}
