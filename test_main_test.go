package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// testApp is a lightweight headless App shared by unit tests that only
// need state and dirty tracking.
var testApp *App

func TestMain(m *testing.M) {
	app, err := NewHeadlessApp(80, 24)
	if err != nil {
		panic(err)
	}
	testApp = app
	os.Exit(m.Run())
}

// fakeTarget is a measurable stand-in for an element.
type fakeTarget struct {
	height, width int
}

func (f *fakeTarget) ClientHeight() int { return f.height }
func (f *fakeTarget) ClientWidth() int  { return f.width }

// fakeObserverService records Subscribe/Unsubscribe calls and lets tests
// push batches to the live handlers.
type fakeObserverService struct {
	subscribed   []Measurable
	unsubscribed []SubscriptionID
	handlers     map[SubscriptionID]func([]ResizeEntry)
	next         SubscriptionID
}

func newFakeObserverService() *fakeObserverService {
	return &fakeObserverService{handlers: make(map[SubscriptionID]func([]ResizeEntry))}
}

func (f *fakeObserverService) Subscribe(target Measurable, fn func([]ResizeEntry)) SubscriptionID {
	f.next++
	f.subscribed = append(f.subscribed, target)
	f.handlers[f.next] = fn
	return f.next
}

func (f *fakeObserverService) Unsubscribe(id SubscriptionID) {
	f.unsubscribed = append(f.unsubscribed, id)
	delete(f.handlers, id)
}

// notify delivers entries to every live handler.
func (f *fakeObserverService) notify(entries ...ResizeEntry) {
	for _, fn := range f.handlers {
		fn(entries)
	}
}

// logCapture returns a logger writing JSON lines into the returned buffer.
func logCapture() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf), &buf
}

// countLevel counts log lines at level in buf.
func countLevel(buf *bytes.Buffer, level string) int {
	return strings.Count(buf.String(), `"level":"`+level+`"`)
}

// newSurfaceApp builds an app on a MockTerminal.
func newSurfaceApp(t *testing.T, width, height int, opts ...AppOption) (*App, *MockTerminal) {
	t.Helper()
	term := NewMockTerminal(width, height)
	app, err := NewAppWithTerminal(term, opts...)
	if err != nil {
		t.Fatalf("NewAppWithTerminal() error = %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, term
}

// drainEvents runs queued main-loop work until the queue is empty.
func drainEvents(a *App) {
	for {
		select {
		case fn := <-a.eventQueue:
			fn()
		default:
			return
		}
	}
}
