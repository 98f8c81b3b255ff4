package tui

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tuikit/tui/internal/debug"
)

// App manages the application lifecycle: terminal setup, event loop, and rendering.
//
// An App either owns a Terminal (the visible surface) or is headless. The
// choice also fixes when effects run: with a terminal, before a frame is
// flushed; headless, from the event queue after the frame.
type App struct {
	terminal        Terminal // nil when headless
	buffer          *Buffer
	viewportWidth   int // headless viewport
	viewportHeight  int
	needsFullRedraw bool
	dirty           atomic.Bool
	batch           batchContext
	logger          zerolog.Logger
	heldWarnings    *heldWarnings // default logger output for surface apps

	// Root: either a static element or a component rendered every frame.
	rootElement   *Element
	rootComponent Component
	root          *Element // tree produced by the last render

	// Component model
	mounts *mountState

	// Effects and size observation
	effectTiming       effectTiming
	layoutEffects      []func()
	passiveEffects     []func()
	passiveFlushQueued bool
	observers          *resizeRegistry
	resizeLoopLimit    int
	rendering          bool // inside Render; observations are delivered by the current pass

	// Event loop fields
	eventQueue chan func()
	stopCh     chan struct{}
	stopped    atomic.Bool
	stopOnce   sync.Once

	// Configuration (set via options)
	frameDuration  time.Duration
	eventQueueSize int
	forcePassive   bool
	pendingRoot    Component
}

// NewApp creates an app on the process's terminal (stdout), switching it to
// the alternate screen.
func NewApp(opts ...AppOption) (*App, error) {
	terminal, err := NewStdoutTerminal()
	if err != nil {
		return nil, err
	}
	return NewAppWithTerminal(terminal, opts...)
}

// NewAppWithTerminal creates an app rendering to terminal.
func NewAppWithTerminal(terminal Terminal, opts ...AppOption) (*App, error) {
	if terminal == nil {
		return nil, fmt.Errorf("tui: nil terminal")
	}
	app, err := newApp(terminal, opts)
	if err != nil {
		return nil, err
	}
	width, height := terminal.Size()
	app.buffer = NewBuffer(width, height)
	terminal.EnterAltScreen()
	terminal.HideCursor()
	terminal.Clear()
	app.applyPendingRoot()
	return app, nil
}

// NewHeadlessApp creates an app without a visible surface. Layout uses a
// width x height viewport; nothing is painted.
func NewHeadlessApp(width, height int, opts ...AppOption) (*App, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("tui: invalid viewport %dx%d", width, height)
	}
	app, err := newApp(nil, opts)
	if err != nil {
		return nil, err
	}
	app.viewportWidth, app.viewportHeight = width, height
	app.applyPendingRoot()
	return app, nil
}

func newApp(terminal Terminal, opts []AppOption) (*App, error) {
	app := &App{
		terminal:        terminal,
		mounts:          newMountState(),
		batch:           newBatchContext(),
		stopCh:          make(chan struct{}),
		frameDuration:   16 * time.Millisecond, // ~60fps
		eventQueueSize:  256,
		resizeLoopLimit: 8,
	}
	app.observers = newResizeRegistry(app)
	app.logger = app.defaultLogger()

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	// Capability check: only an app with a surface can show a frame too early.
	app.effectTiming = effectsPassive
	if terminal != nil && !app.forcePassive {
		app.effectTiming = effectsLayout
	}
	app.eventQueue = make(chan func(), app.eventQueueSize)
	debug.Log("NewApp: surface=%v effects=%s", terminal != nil, app.effectTiming)
	return app, nil
}

func (a *App) applyPendingRoot() {
	if a.pendingRoot != nil {
		a.SetRootComponent(a.pendingRoot)
		a.pendingRoot = nil
	}
}

// SetRoot sets a static element tree as the root. Any mounted components
// are unmounted.
func (a *App) SetRoot(root *Element) {
	a.mounts.unmountAll()
	a.rootComponent = nil
	a.rootElement = root
	if root != nil {
		root.setAppRecursive(a)
	}
	a.MarkDirty()
}

// SetRootComponent sets the root struct component. It is mounted on the
// next render; a previous root and its children are unmounted.
func (a *App) SetRootComponent(component Component) {
	a.mounts.unmountAll()
	a.rootElement = nil
	a.rootComponent = component
	a.MarkDirty()
}

// Root returns the element tree produced by the last render.
func (a *App) Root() *Element {
	return a.root
}

// HasSurface reports whether the app renders to a terminal.
func (a *App) HasSurface() bool {
	return a.terminal != nil
}

// Terminal returns the underlying terminal, or nil when headless.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// Buffer returns the frame buffer, or nil when headless.
func (a *App) Buffer() *Buffer {
	return a.buffer
}

// Logger returns the app's diagnostic logger.
func (a *App) Logger() zerolog.Logger {
	return a.logger
}

// Size returns the viewport size: the terminal's, or the headless viewport.
func (a *App) Size() (width, height int) {
	if a.terminal != nil {
		return a.terminal.Size()
	}
	return a.viewportWidth, a.viewportHeight
}

// Resize changes the viewport of a headless app. Apps with a terminal
// follow the terminal size instead.
func (a *App) Resize(width, height int) {
	if a.terminal != nil {
		return
	}
	a.viewportWidth, a.viewportHeight = max(0, width), max(0, height)
	a.MarkDirty()
}

// MarkDirty marks this app as needing a render.
func (a *App) MarkDirty() {
	if a == nil {
		panic("tui: nil app in MarkDirty")
	}
	a.dirty.Store(true)
}

// IsDirty reports whether a render is pending.
func (a *App) IsDirty() bool {
	return a.dirty.Load()
}

func (a *App) checkAndClearDirty() bool {
	return a.dirty.Swap(false)
}
