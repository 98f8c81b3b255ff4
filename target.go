package tui

import "reflect"

// Measurable is implemented by anything with a measurable client box.
// *Element implements it.
type Measurable interface {
	ClientHeight() int
	ClientWidth() int
}

// TargetRef is a caller-owned single-slot holder naming the thing to
// observe. Current returns nil while nothing is set.
type TargetRef interface {
	Current() any
}

// targetKind is the result of classifying a TargetRef's current value.
type targetKind int

const (
	targetAbsent targetKind = iota
	targetInvalid
	targetValid
)

func (k targetKind) String() string {
	switch k {
	case targetInvalid:
		return "invalid"
	case targetValid:
		return "valid"
	default:
		return "absent"
	}
}

// classifyTarget sorts v into absent, invalid (not measurable) or valid.
// A typed nil (nil pointer, map, slice, func, chan or interface) counts as
// absent.
func classifyTarget(v any) (Measurable, targetKind) {
	if isNil(v) {
		return nil, targetAbsent
	}
	m, ok := v.(Measurable)
	if !ok {
		return nil, targetInvalid
	}
	return m, targetValid
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// sameTarget reports whether a and b are the same target. Slices, maps and
// funcs compare by identity; other non-comparable values are never the same.
func sameTarget(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}
