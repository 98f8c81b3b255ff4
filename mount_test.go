package tui

import (
	"testing"
	"time"
)

// countingComponent records renders and cleanups.
type countingComponent struct {
	renders  int
	inits    int
	cleanups int
	noClean  bool
}

func (c *countingComponent) Render(app *App) *Element {
	c.renders++
	return New()
}

func (c *countingComponent) Init() func() {
	c.inits++
	if c.noClean {
		return nil
	}
	return func() { c.cleanups++ }
}

// nilRenderComponent renders nothing.
type nilRenderComponent struct{}

func (nilRenderComponent) Render(app *App) *Element { return nil }

// watchingComponent starts one watcher on a channel it owns.
type watchingComponent struct {
	ch  chan int
	got chan int
}

func (w *watchingComponent) Render(app *App) *Element { return New() }

func (w *watchingComponent) Watchers() []Watcher {
	return []Watcher{Watch(w.ch, func(v int) { w.got <- v })}
}

func TestMount_Lifecycle(t *testing.T) {
	type tc struct {
		noClean      bool
		renders      int // render cycles while mounted
		wantInits    int
		wantCleanups int
	}

	tests := map[string]tc{
		"single render":                  {renders: 1, wantInits: 1, wantCleanups: 1},
		"instance reused across renders": {renders: 3, wantInits: 1, wantCleanups: 1},
		"nil cleanup is fine":            {noClean: true, renders: 2, wantInits: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := NewHeadlessApp(10, 10)
			created := 0
			var comp *countingComponent
			factory := func() Component {
				created++
				comp = &countingComponent{noClean: tt.noClean}
				return comp
			}

			for rep := 0; rep < tt.renders; rep++ {
				el := app.Mount(nil, 0, factory)
				if el.component != comp {
					t.Fatal("mounted element does not point back to its component")
				}
				app.mounts.sweep()
			}
			if created != 1 || comp.renders != tt.renders {
				t.Fatalf("factory ran %d times, Render %d times; want 1, %d", created, comp.renders, tt.renders)
			}

			// A render that does not touch the component unmounts it.
			app.mounts.sweep()
			if comp.inits != tt.wantInits || comp.cleanups != tt.wantCleanups {
				t.Errorf("inits = %d, cleanups = %d; want %d, %d", comp.inits, comp.cleanups, tt.wantInits, tt.wantCleanups)
			}
			if len(app.mounts.cache) != 0 {
				t.Errorf("cache holds %d instances after sweep, want 0", len(app.mounts.cache))
			}
		})
	}
}

func TestMount_KeysAreIndependent(t *testing.T) {
	app, _ := NewHeadlessApp(10, 10)
	parent := &countingComponent{}

	a := app.Mount(parent, 0, func() Component { return &countingComponent{} })
	b := app.Mount(parent, 1, func() Component { return &countingComponent{} })
	c := app.Mount(&countingComponent{}, 0, func() Component { return &countingComponent{} })

	if a.component == b.component || a.component == c.component {
		t.Error("different (parent, index) keys shared an instance")
	}
	if len(app.mounts.cache) != 3 {
		t.Errorf("cache holds %d instances, want 3", len(app.mounts.cache))
	}
}

func TestMount_NilRenderYieldsEmptyElement(t *testing.T) {
	app, _ := NewHeadlessApp(10, 10)
	el := app.Mount(nil, 0, func() Component { return nilRenderComponent{} })
	if el == nil || len(el.Children()) != 0 {
		t.Errorf("Mount() = %v, want an empty element", el)
	}
}

func TestMount_UnmountStopsWatchers(t *testing.T) {
	app, _ := NewHeadlessApp(10, 10)
	w := &watchingComponent{ch: make(chan int), got: make(chan int, 1)}
	app.Mount(nil, 0, func() Component { return w })
	app.mounts.sweep()

	w.ch <- 1
	select {
	case fn := <-app.eventQueue:
		fn()
	case <-time.After(time.Second):
		t.Fatal("watcher did not forward the value")
	}
	if v := <-w.got; v != 1 {
		t.Fatalf("handler got %d, want 1", v)
	}

	app.mounts.sweep()
	time.Sleep(20 * time.Millisecond)
	select {
	case w.ch <- 2:
		t.Error("watcher still receiving after unmount")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMergeStopChannels(t *testing.T) {
	type tc struct {
		closeFirst bool
	}

	tests := map[string]tc{
		"first closes":  {closeFirst: true},
		"second closes": {closeFirst: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ch1, ch2 := make(chan struct{}), make(chan struct{})
			merged := mergeStopChannels(ch1, ch2)
			if tt.closeFirst {
				close(ch1)
			} else {
				close(ch2)
			}
			select {
			case <-merged:
			case <-time.After(time.Second):
				t.Error("merged channel did not close")
			}
		})
	}
}
