package tui

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tuikit/tui/internal/debug"
)

// ElementSize tracks the client size of the element behind a TargetRef and
// re-renders the app when the tracked dimension changes.
//
// A component creates one ElementSize, calls Use from Render and closes it
// from the cleanup returned by Init:
//
//	func (c *panel) Init() func() { return c.size.Close }
//
//	func (c *panel) Render(app *tui.App) *tui.Element {
//	    s := c.size.Use(c.ref, tui.AxisBoth)
//	    return tui.New(tui.WithRef(c.ref), tui.WithText(fmt.Sprintf("%dx%d", s.Width, s.Height)))
//	}
//
// Subscription changes run through the app's effect scheduler: before the
// frame is shown when the app has a terminal, after it otherwise.
type ElementSize struct {
	app     *App
	service SizeObserverService
	logger  zerolog.Logger
	held    *State[Size]

	// Inputs of the latest Use call.
	ref       TargetRef
	axis      Axis
	scheduled bool

	// What the current subscription was built from.
	evaluated  bool
	lastTarget any
	lastAxis   Axis

	sub        SubscriptionID
	generation int // bumped on teardown; stale handlers compare against it
	observing  bool
	disposed   bool
}

// ElementSizeOption configures an ElementSize.
type ElementSizeOption func(*ElementSize)

// WithObserverService replaces the app's size observation service.
func WithObserverService(s SizeObserverService) ElementSizeOption {
	return func(es *ElementSize) {
		es.service = s
	}
}

// WithElementSizeLogger replaces the app's logger for diagnostics.
func WithElementSizeLogger(l zerolog.Logger) ElementSizeOption {
	return func(es *ElementSize) {
		es.logger = l
	}
}

// NewElementSize creates an unbound tracker reporting Size{} until the
// first measurement arrives.
func NewElementSize(app *App, opts ...ElementSizeOption) *ElementSize {
	if app == nil {
		panic("tui: nil app in NewElementSize")
	}
	es := &ElementSize{
		app:     app,
		service: app.SizeObservers(),
		logger:  app.Logger(),
		held:    NewState(app, Size{}),
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Use records the target and axis for this render and returns the current
// size. When either differs from the previous evaluation, the old
// subscription is dropped and a new one is made.
func (es *ElementSize) Use(ref TargetRef, axis Axis) Size {
	if es.disposed {
		return es.held.Get()
	}
	es.ref, es.axis = ref, axis
	if !es.scheduled {
		es.scheduled = true
		es.app.scheduleEffect(es.sync)
	}
	return es.held.Get()
}

// Size returns the current size without touching the subscription.
func (es *ElementSize) Size() Size {
	return es.held.Get()
}

// Bind registers fn to run whenever the size is replaced.
func (es *ElementSize) Bind(fn func(Size)) Unbind {
	return es.held.Bind(fn)
}

// Observing reports whether a subscription is active.
func (es *ElementSize) Observing() bool {
	return es.observing
}

// Close drops the subscription. The tracker keeps returning the last size
// and never subscribes again.
func (es *ElementSize) Close() {
	if es.disposed {
		return
	}
	es.teardown()
	es.disposed = true
	es.ref = nil
	es.lastTarget = nil
}

// sync re-evaluates the target and axis recorded by Use.
func (es *ElementSize) sync() {
	es.scheduled = false
	if es.disposed {
		return
	}

	var current any
	if es.ref != nil {
		current = es.ref.Current()
	}
	if es.evaluated && es.axis == es.lastAxis && sameTarget(current, es.lastTarget) {
		return
	}

	es.teardown()
	es.evaluated = true
	es.lastTarget, es.lastAxis = current, es.axis

	target, kind := classifyTarget(current)
	switch kind {
	case targetAbsent:
		debug.Log("ElementSize: no target yet")
		return
	case targetInvalid:
		es.logger.Warn().
			Str("component", "ElementSize").
			Str("target", fmt.Sprintf("%T", current)).
			Msg("cannot compute size of a non-visual target")
		return
	}

	axis, gen := es.axis, es.generation
	es.sub = es.service.Subscribe(target, func(entries []ResizeEntry) {
		if gen != es.generation {
			return
		}
		es.handle(target, axis, entries)
	})
	es.observing = true
	debug.Log("ElementSize: observing %T (axis %s)", target, axis)
}

// handle applies the batch entry for target, if any.
func (es *ElementSize) handle(target Measurable, axis Axis, entries []ResizeEntry) {
	if es.disposed {
		return
	}
	for _, entry := range entries {
		if !sameTarget(entry.Target, target) {
			continue
		}
		if ShouldUpdateSize(es.held.Get(), entry.Size, axis) {
			es.held.Set(ProjectSize(entry.Size, axis))
		}
		return
	}
}

func (es *ElementSize) teardown() {
	if !es.observing {
		return
	}
	es.service.Unsubscribe(es.sub)
	es.observing = false
	es.generation++
}
