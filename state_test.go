package tui

import (
	"strconv"
	"testing"
)

func TestState_SetMarksDirtyAndRunsBindings(t *testing.T) {
	app, _ := NewHeadlessApp(10, 10)
	s := NewState(app, Size{})

	var got []Size
	s.Bind(func(v Size) { got = append(got, v) })

	app.dirty.Store(false)
	s.Set(Size{Height: 3, Width: 4})

	if !app.IsDirty() {
		t.Error("Set should mark the app dirty")
	}
	if len(got) != 1 || got[0] != (Size{Height: 3, Width: 4}) {
		t.Errorf("bindings received %v, want one {3 4}", got)
	}
	if s.Get() != (Size{Height: 3, Width: 4}) {
		t.Errorf("Get() = %v", s.Get())
	}
}

func TestState_Unbind(t *testing.T) {
	s := NewState(testApp, 0)
	calls := 0
	unbind := s.Bind(func(int) { calls++ })

	s.Set(1)
	unbind()
	s.Set(2)

	if calls != 1 {
		t.Errorf("binding called %d times, want 1", calls)
	}
}

func TestState_Update(t *testing.T) {
	s := NewState(testApp, 1)
	s.Update(func(v int) int { return v + 1 })
	if s.Get() != 2 {
		t.Errorf("Get() = %d, want 2", s.Get())
	}
}

func TestApp_BatchCoalescesBindings(t *testing.T) {
	type tc struct {
		run       func(a, b *State[int])
		wantCalls []string
	}

	tests := map[string]tc{
		"same state set twice fires once with last value": {
			run: func(a, b *State[int]) {
				a.Set(1)
				a.Set(2)
			},
			wantCalls: []string{"a=2"},
		},
		"first-trigger order is kept": {
			run: func(a, b *State[int]) {
				b.Set(1)
				a.Set(1)
				b.Set(3)
			},
			wantCalls: []string{"b=3", "a=1"},
		},
		"nested batches flush once": {
			run: func(a, b *State[int]) {
				testApp.Batch(func() { a.Set(5) })
				b.Set(6)
			},
			wantCalls: []string{"a=5", "b=6"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls []string
			a, b := NewState(testApp, 0), NewState(testApp, 0)
			a.Bind(func(v int) { calls = append(calls, "a="+strconv.Itoa(v)) })
			b.Bind(func(v int) { calls = append(calls, "b="+strconv.Itoa(v)) })

			testApp.Batch(func() {
				tt.run(a, b)
				if len(calls) != 0 {
					t.Errorf("bindings ran inside batch: %v", calls)
				}
			})

			if len(calls) != len(tt.wantCalls) {
				t.Fatalf("calls = %v, want %v", calls, tt.wantCalls)
			}
			for i := range calls {
				if calls[i] != tt.wantCalls[i] {
					t.Errorf("calls[%d] = %q, want %q", i, calls[i], tt.wantCalls[i])
				}
			}
		})
	}
}

func TestNewState_NilAppPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewState(nil, ...) should panic")
		}
	}()
	NewState[int](nil, 0)
}
