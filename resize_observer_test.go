package tui

import "testing"

func TestResizeObserver_Delivery(t *testing.T) {
	type tc struct {
		setup func(a *App, o *ResizeObserver) []*fakeTarget
		// mutate runs between the first and second delivery rounds.
		mutate     func(targets []*fakeTarget)
		wantFirst  int
		wantSecond int
	}

	tests := map[string]tc{
		"zero-sized target is reported once": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ft := &fakeTarget{}
				o.Observe(ft)
				return []*fakeTarget{ft}
			},
			wantFirst: 1, wantSecond: 0,
		},
		"shrink to zero is reported": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ft := &fakeTarget{height: 3, width: 4}
				o.Observe(ft)
				return []*fakeTarget{ft}
			},
			mutate:    func(ts []*fakeTarget) { ts[0].height, ts[0].width = 0, 0 },
			wantFirst: 1, wantSecond: 1,
		},
		"unchanged target is reported once": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ft := &fakeTarget{height: 3, width: 4}
				o.Observe(ft)
				return []*fakeTarget{ft}
			},
			wantFirst: 1, wantSecond: 0,
		},
		"changed target is reported again": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ft := &fakeTarget{height: 3, width: 4}
				o.Observe(ft)
				return []*fakeTarget{ft}
			},
			mutate:    func(ts []*fakeTarget) { ts[0].width = 9 },
			wantFirst: 1, wantSecond: 1,
		},
		"several targets arrive in one batch": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ts := []*fakeTarget{{height: 1, width: 1}, {height: 2, width: 2}}
				o.Observe(ts[0])
				o.Observe(ts[1])
				o.Observe(ts[1])
				return ts
			},
			wantFirst: 2, wantSecond: 0,
		},
		"unobserved target is not reported": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ft := &fakeTarget{height: 3, width: 4}
				o.Observe(ft)
				o.Unobserve(ft)
				return []*fakeTarget{ft}
			},
			wantFirst: 0, wantSecond: 0,
		},
		"disconnected observer is not called": {
			setup: func(a *App, o *ResizeObserver) []*fakeTarget {
				ft := &fakeTarget{height: 3, width: 4}
				o.Observe(ft)
				o.Disconnect()
				return []*fakeTarget{ft}
			},
			wantFirst: 0, wantSecond: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := NewHeadlessApp(10, 10)
			var batches [][]ResizeEntry
			o := app.NewResizeObserver(func(entries []ResizeEntry) {
				batches = append(batches, entries)
			})
			// Observe during a render so the first round below sees everything.
			app.rendering = true
			targets := tt.setup(app, o)
			app.rendering = false

			app.observers.deliver()
			first := entriesIn(batches)
			if len(batches) > 1 {
				t.Errorf("first round delivered %d batches, want at most 1", len(batches))
			}

			if tt.mutate != nil {
				tt.mutate(targets)
			}
			batches = nil
			app.observers.deliver()
			second := entriesIn(batches)

			if first != tt.wantFirst || second != tt.wantSecond {
				t.Errorf("entries delivered = %d then %d, want %d then %d",
					first, second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func entriesIn(batches [][]ResizeEntry) int {
	n := 0
	for _, b := range batches {
		n += len(b)
	}
	return n
}

func TestResizeObserver_EntryCarriesClientSize(t *testing.T) {
	app, _ := NewHeadlessApp(10, 10)
	ft := &fakeTarget{height: 150, width: 80}

	var got []ResizeEntry
	app.NewResizeObserver(func(entries []ResizeEntry) { got = entries }).Observe(ft)
	app.observers.deliver()

	if len(got) != 1 || got[0].Target != Measurable(ft) || got[0].Size != (Size{Height: 150, Width: 80}) {
		t.Errorf("entries = %+v, want one {150 80} entry for the target", got)
	}
}

func TestResizeObserver_ObserveOutsideRenderReportsAtOnce(t *testing.T) {
	type tc struct {
		target    *fakeTarget
		wantCalls int
	}

	tests := map[string]tc{
		"sized target": {target: &fakeTarget{height: 2, width: 3}, wantCalls: 1},
		"zero target":  {target: &fakeTarget{}, wantCalls: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := NewHeadlessApp(10, 10)
			calls := 0
			app.NewResizeObserver(func([]ResizeEntry) { calls++ }).Observe(tt.target)
			if calls != tt.wantCalls {
				t.Errorf("callback called %d times, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestResizeRegistry_SubscribeUnsubscribe(t *testing.T) {
	app, _ := NewHeadlessApp(10, 10)
	svc := app.SizeObservers()
	ft := &fakeTarget{height: 2, width: 2}

	calls := 0
	id := svc.Subscribe(ft, func([]ResizeEntry) { calls++ })
	if len(app.observers.observers) != 1 {
		t.Fatalf("registry has %d observers, want 1", len(app.observers.observers))
	}
	if calls != 1 {
		t.Fatalf("callback called %d times on Subscribe, want 1", calls)
	}

	svc.Unsubscribe(id)
	svc.Unsubscribe(id) // unknown IDs are ignored
	if len(app.observers.observers) != 0 {
		t.Errorf("registry has %d observers after Unsubscribe, want 0", len(app.observers.observers))
	}

	ft.width = 5
	app.observers.deliver()
	if calls != 1 {
		t.Errorf("callback called %d times after Unsubscribe, want 1", calls)
	}
}
