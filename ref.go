package tui

import "sync"

var (
	_ TargetRef = (*Ref)(nil)
	_ TargetRef = (*ValueRef[int])(nil)
)

// Ref is a reference to an Element, set during construction
// and accessed later in handlers. Thread-safe.
type Ref struct {
	mu    sync.RWMutex
	value *Element
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the element in this ref.
func (r *Ref) Set(v *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// El returns the referenced element, or nil if not yet set.
func (r *Ref) El() *Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil element.
func (r *Ref) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value != nil
}

// Current implements TargetRef. An unset ref yields an untyped nil.
func (r *Ref) Current() any {
	el := r.El()
	if el == nil {
		return nil
	}
	return el
}

// ValueRef holds an arbitrary value for callers whose target is not
// necessarily an Element. Thread-safe.
type ValueRef[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

// NewValueRef creates a ValueRef holding v.
func NewValueRef[T any](v T) *ValueRef[T] {
	return &ValueRef[T]{value: v, set: true}
}

// Set stores v.
func (r *ValueRef[T]) Set(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
	r.set = true
}

// Clear empties the slot.
func (r *ValueRef[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.value = zero
	r.set = false
}

// Get returns the stored value and whether one is set.
func (r *ValueRef[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.set
}

// Current implements TargetRef.
func (r *ValueRef[T]) Current() any {
	v, ok := r.Get()
	if !ok {
		return nil
	}
	return any(v)
}
