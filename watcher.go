package tui

// Watcher is an event source feeding the app's main loop.
type Watcher interface {
	// Start begins the watcher goroutine. Handlers are sent to eventQueue
	// and the goroutine exits when stopCh closes.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a channel watcher. The handler is called on the main loop
// whenever data arrives on the channel.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return &ChannelWatcher[T]{ch: ch, handler: handler}
}

// Start the watcher.
func (w *ChannelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return
				}
				select {
				case eventQueue <- func() { w.handler(val) }:
				case <-stopCh:
					return
				}
			}
		}
	}()
}
