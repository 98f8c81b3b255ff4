package tui

import (
	"sync"
	"sync/atomic"

	"github.com/tuikit/tui/internal/debug"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

func newBatchContext() batchContext {
	return batchContext{
		pending: make(map[uint64]func()),
	}
}

// globalBindingID keeps binding IDs unique across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes.
//
// Get is safe from any goroutine. Set must run on the app's main loop;
// background goroutines go through App.QueueUpdate.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	app      *App
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding.
type Unbind func()

// NewState creates a state bound to app with the given initial value.
func NewState[T any](app *App, initial T) *State[T] {
	if app == nil {
		panic("tui: nil app in NewState")
	}
	return &State[T]{value: initial, app: app}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value, marks the app dirty and notifies bindings.
// Inside App.Batch, bindings run once when the outermost batch ends.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	s.app.MarkDirty()

	batch := &s.app.batch
	batch.mu.Lock()
	isBatching := batch.depth > 0
	if isBatching {
		for _, b := range active {
			fn := b.fn
			if _, exists := batch.pending[b.id]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { fn(v) }
		}
	}
	batch.mu.Unlock()

	if isBatching {
		debug.Log("State.Set: deferred %d bindings (batching)", len(active))
		return
	}
	for _, b := range active {
		b.fn(v)
	}
}

// Update applies fn to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to run with the new value after every Set.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch runs fn and defers binding callbacks until it returns. A binding
// triggered several times runs once with the final value. Nested batches
// flush when the outermost one ends, also when fn panics.
func (a *App) Batch(fn func()) {
	if a == nil {
		panic("tui: nil app in Batch")
	}
	batch := &a.batch
	batch.mu.Lock()
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 && len(batch.pending) > 0 {
			callbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if cb, ok := batch.pending[id]; ok {
					callbacks = append(callbacks, cb)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
