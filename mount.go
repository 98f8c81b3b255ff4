package tui

import "github.com/tuikit/tui/internal/debug"

// mountKey identifies a component instance by its parent and position.
// Components at the same (parent, index) are considered the same instance
// across renders and are reused from cache.
type mountKey struct {
	parent Component
	index  int
}

// mounted is the per-instance bookkeeping of the mount system.
type mounted struct {
	instance Component
	cleanup  func()
	stopCh   chan struct{}
}

// mountState caches component instances. Each render marks the keys it
// touches; sweep unmounts the rest.
type mountState struct {
	cache      map[mountKey]*mounted
	activeKeys map[mountKey]bool
}

func newMountState() *mountState {
	return &mountState{
		cache:      make(map[mountKey]*mounted),
		activeKeys: make(map[mountKey]bool),
	}
}

// Mount creates or retrieves a cached component instance and returns
// its rendered element tree.
//
// On first call the factory runs, Init() is called for Initializers and
// watchers from WatcherProviders are started. Later calls reuse the
// instance and only call Render.
func (a *App) Mount(parent Component, index int, factory func() Component) *Element {
	ms := a.mounts
	key := mountKey{parent: parent, index: index}
	ms.activeKeys[key] = true

	m, cached := ms.cache[key]
	if !cached {
		m = &mounted{instance: factory(), stopCh: make(chan struct{})}
		ms.cache[key] = m
		debug.Log("Mount: new %T at index %d", m.instance, index)

		if init, ok := m.instance.(Initializer); ok {
			m.cleanup = init.Init()
		}
		if wp, ok := m.instance.(WatcherProvider); ok {
			stop := mergeStopChannels(a.stopCh, m.stopCh)
			for _, w := range wp.Watchers() {
				w.Start(a.eventQueue, stop)
			}
		}
	}

	el := m.instance.Render(a)
	if el == nil {
		el = New()
	}
	el.component = m.instance
	return el
}

// sweep unmounts instances that were not marked during the last render.
func (ms *mountState) sweep() {
	for key, m := range ms.cache {
		if !ms.activeKeys[key] {
			m.unmount()
			delete(ms.cache, key)
		}
	}
	ms.activeKeys = make(map[mountKey]bool)
}

// unmountAll unmounts every cached instance.
func (ms *mountState) unmountAll() {
	for key, m := range ms.cache {
		m.unmount()
		delete(ms.cache, key)
	}
	ms.activeKeys = make(map[mountKey]bool)
}

func (m *mounted) unmount() {
	debug.Log("Mount: unmount %T", m.instance)
	if m.cleanup != nil {
		m.cleanup()
		m.cleanup = nil
	}
	close(m.stopCh)
}

func mergeStopChannels(ch1, ch2 <-chan struct{}) <-chan struct{} {
	merged := make(chan struct{})
	go func() {
		select {
		case <-ch1:
		case <-ch2:
		}
		close(merged)
	}()
	return merged
}
