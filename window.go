package win

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/win/backend"
)

// DeviceHandle provides GPU device access from the backend behind a
// window. It is an alias for gpucontext.DeviceProvider, giving win a
// local name for the interface while staying compatible with the
// gpucontext ecosystem. Backends without a GPU device return a null
// provider whose accessors are nil.
type DeviceHandle = gpucontext.DeviceProvider

// Window owns one native window, its rendering surface, and the routing
// of raw input events. It is a single state-holding object: dimensions,
// title, running flag, the at-most-once event-bus binding, and the two
// default handler chains (keys, resize).
//
// Window is NOT safe for concurrent use. PollEvents drains backend input
// and runs every registered callback inline on the calling goroutine.
type Window struct {
	title  string
	width  int
	height int

	running   bool
	resizable bool

	b   backend.Backend
	bus Bus // nil until bound; set at most once

	// defaultKeys tracks whether the default key regime is attached.
	// Binding a bus clears it permanently.
	defaultKeys bool

	onPress   []func(Key)
	onRelease []func(Key)

	clearColor clearColor

	counter       *Counter
	screenshotDir string
}

// New creates a window with explicit dimensions and activates it:
// backend window creation, clear state (depth 1, opaque black), default
// handlers, context activation, and visibility. If backend creation
// fails, no window exists and the error is returned.
func New(title string, width, height int, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	options := defaultWindowOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return activate(title, width, height, options)
}

// NewWithAspect creates a window whose width is derived from height and a
// named aspect ratio. An unrecognized aspect fails with ErrUnknownAspect
// before any backend resource is created.
func NewWithAspect(title string, height int, aspect Aspect, opts ...Option) (*Window, error) {
	width, err := aspect.width(height)
	if err != nil {
		return nil, err
	}
	return New(title, width, height, opts...)
}

// activate is the single activation path both constructors converge on.
func activate(title string, width, height int, options windowOptions) (*Window, error) {
	b := options.backend
	if b == nil {
		if b = backend.Default(); b == nil {
			return nil, ErrNoBackend
		}
	}

	counter := options.counter
	if counter == nil {
		counter = &sharedCounter
	}

	w := &Window{
		title:         title,
		width:         width,
		height:        height,
		resizable:     options.resizable,
		b:             b,
		bus:           options.bus,
		counter:       counter,
		screenshotDir: options.screenshotDir,
	}

	if err := b.CreateWindow(title, width, height); err != nil {
		return nil, fmt.Errorf("win: create window: %w", err)
	}

	b.SetClearDepth(1)
	w.applyClearColor(clearColor{}) // opaque black

	b.SetKeyCallback(w.dispatchKey)
	b.SetResizeCallback(w.dispatchResize)
	// The default key regime applies only until a bus is bound; a bus
	// supplied at construction displaces it from the start.
	w.defaultKeys = w.bus == nil

	w.running = true
	b.MakeContextCurrent()
	b.Show()

	Logger().Info("win: window created",
		"title", title, "size", fmt.Sprintf("%dx%d", width, height), "backend", b.Name())
	return w, nil
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Width returns the current client-area width.
func (w *Window) Width() int { return w.width }

// Height returns the current client-area height.
func (w *Window) Height() int { return w.height }

// Size returns width and height as a convenience.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// IsRunning reports whether the window is still open.
func (w *Window) IsRunning() bool { return w.running }

// Resizable reports whether the default resize handler is attached.
func (w *Window) Resizable() bool { return w.resizable }

// SetResizable attaches or detaches the default resize handler.
// Toggling is idempotent: attaching an attached handler or detaching a
// detached one is a no-op. While detached, the stored dimensions are
// frozen even if the backend still reports size changes.
func (w *Window) SetResizable(resizable bool) {
	w.resizable = resizable
}

// Close marks the window as not running and requests backend window
// closure. It is idempotent and never fails; the running flag is never
// resurrected.
func (w *Window) Close() {
	if !w.running {
		return
	}
	w.running = false
	w.b.Close()
	Logger().Info("win: window closed", "title", w.title)
}

// Clear issues a combined color+depth buffer clear using the current
// clear-color state.
func (w *Window) Clear() { w.b.Clear() }

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.b.SwapBuffers() }

// PollEvents drains backend-queued input. Registered callbacks execute
// inline on the calling goroutine before PollEvents returns.
func (w *Window) PollEvents() { w.b.PollEvents() }

// Device returns the GPU device provider behind this window, or a null
// provider when the backend owns no GPU device.
func (w *Window) Device() DeviceHandle { return w.b.DeviceHandle() }

// BindEventBus binds an event bus to this window, switching key routing
// from the default regime to the bus regime. The binding happens at most
// once per window: the first successful call returns true, every
// subsequent call returns false without mutating state. There is no
// reversal; binding permanently removes the default key handler.
func (w *Window) BindEventBus(bus Bus) bool {
	if w.bus != nil {
		return false
	}
	if bus == nil {
		return false
	}
	w.bus = bus
	w.defaultKeys = false
	Logger().Debug("win: event bus bound", "title", w.title)
	return true
}

// OnKeyPress registers an additive listener invoked on every key-down,
// in addition to whatever regime is active. Listeners accumulate.
func (w *Window) OnKeyPress(fn func(Key)) {
	if fn != nil {
		w.onPress = append(w.onPress, fn)
	}
}

// OnKeyRelease registers an additive listener invoked on every key-up,
// in addition to whatever regime is active. Listeners accumulate.
func (w *Window) OnKeyRelease(fn func(Key)) {
	if fn != nil {
		w.onRelease = append(w.onRelease, fn)
	}
}

// dispatchKey routes one key transition: bus regime XOR default regime,
// then the additive listeners.
func (w *Window) dispatchKey(key Key, down bool) {
	switch {
	case w.bus != nil:
		action := ActionKeyRelease
		if w.b.IsKeyDown(key) {
			action = ActionKeyPress
		}
		w.bus.Push(Event{
			Kind:   KindInput,
			Source: w,
			Key:    key,
			Action: action,
			Extra:  "",
		})
	case w.defaultKeys && down:
		switch key {
		case KeyEscape:
			w.Close()
		case KeyPrintScreen:
			if err := w.SaveScreenshot(); err != nil {
				Logger().Warn("win: screenshot failed", "err", err)
			}
		}
	}

	if down {
		for _, fn := range w.onPress {
			fn(key)
		}
	} else {
		for _, fn := range w.onRelease {
			fn(key)
		}
	}
}

// dispatchResize applies the default resize behavior when attached:
// full viewport at the new client size, stored dimensions updated, and
// the projection reset to an orthographic unit square (depth [0, 4]).
func (w *Window) dispatchResize(width, height int) {
	if !w.resizable {
		return
	}
	w.b.SetViewport(width, height)
	w.width = width
	w.height = height
	w.b.SetOrtho(0, 1, 0, 1, 0, 4)
	Logger().Debug("win: resized", "size", fmt.Sprintf("%dx%d", width, height))
}
