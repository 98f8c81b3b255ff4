package tui

// Component is the base interface for struct components.
// Components are instantiated by constructor functions and cached by the Mount system.
type Component interface {
	Render(app *App) *Element
}

// Initializer is implemented by components that need setup when first mounted.
// Init() is called once when the component first enters the tree.
// The returned function (if non-nil) is called when the component leaves
// the tree. This pairs setup and cleanup at the same call site.
type Initializer interface {
	Init() func()
}

// WatcherProvider is an optional interface for components that provide
// channel watchers. Watchers() is called after the component is mounted;
// the watchers stop when it unmounts.
type WatcherProvider interface {
	Watchers() []Watcher
}
