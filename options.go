package win

import "github.com/gogpu/win/backend"

// Option configures a Window during creation.
// Use functional options to customize Window behavior.
//
// Example:
//
//	// Default backend, resizable
//	w, err := win.New("demo", 800, 600)
//
//	// Injected backend and screenshot directory (dependency injection)
//	w, err := win.New("demo", 800, 600,
//	    win.WithBackend(hb),
//	    win.WithScreenshotDir(dir))
type Option func(*windowOptions)

// windowOptions holds optional configuration for Window creation.
type windowOptions struct {
	backend       backend.Backend
	bus           Bus
	counter       *Counter
	screenshotDir string
	resizable     bool
}

// defaultWindowOptions returns the default window options.
func defaultWindowOptions() windowOptions {
	return windowOptions{
		resizable: true, // default resize handler installed at activation
	}
}

// WithBackend injects a specific backend instead of backend.Default().
func WithBackend(b backend.Backend) Option {
	return func(o *windowOptions) {
		o.backend = b
	}
}

// WithBus binds an event bus at construction. The window starts in the
// bus regime: the default key handler is never installed, and
// BindEventBus will return false.
func WithBus(bus Bus) Option {
	return func(o *windowOptions) {
		o.bus = bus
	}
}

// WithCounter injects a screenshot counter. By default all windows share
// one process-wide counter; tests inject a fresh one to get
// deterministic filenames.
func WithCounter(c *Counter) Option {
	return func(o *windowOptions) {
		o.counter = c
	}
}

// WithScreenshotDir sets the screenshot output root explicitly, replacing
// the marker-directory walk. Screenshots land in the "screenShots"
// subfolder beneath it.
func WithScreenshotDir(dir string) Option {
	return func(o *windowOptions) {
		o.screenshotDir = dir
	}
}

// WithResizable controls whether the default resize handler is attached
// at activation. The default is true.
func WithResizable(resizable bool) Option {
	return func(o *windowOptions) {
		o.resizable = resizable
	}
}
