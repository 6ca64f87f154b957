package backend

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotCreated is returned when operations are called before CreateWindow.
	ErrNotCreated = errors.New("backend: window not created")
)

// Key identifies a physical key by a stable string name.
// The names are backend-independent; backends translate their native
// key codes into these identifiers before invoking callbacks.
type Key string

// Keys referenced by the default key regime and commonly bound by
// applications. Backends may report additional keys; any Key value is
// routed unchanged.
const (
	KeyEscape      Key = "KEY_ESCAPE"
	KeyPrintScreen Key = "KEY_PRINT_SCREEN"
	KeyEnter       Key = "KEY_ENTER"
	KeySpace       Key = "KEY_SPACE"
	KeyLeft        Key = "KEY_LEFT"
	KeyRight       Key = "KEY_RIGHT"
	KeyUp          Key = "KEY_UP"
	KeyDown        Key = "KEY_DOWN"
)

// KeyFunc is invoked for every key transition drained by PollEvents.
// down is true for a press and false for a release.
type KeyFunc func(key Key, down bool)

// ResizeFunc is invoked when the backend reports a new client-area size.
type ResizeFunc func(width, height int)

// Backend is the interface for native windowing/graphics-context backends.
// It abstracts window creation, context activation, buffer presentation,
// raw input delivery, and pixel readback, allowing win to support multiple
// implementations (headless, offscreen GPU, platform windowing).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
//
// A Backend instance owns at most one window. All methods after
// CreateWindow are called from a single goroutine.
type Backend interface {
	// Name returns the backend identifier (e.g., "headless", "gpu").
	Name() string

	// CreateWindow creates the native window and its rendering surface at
	// the given client size. It must be called exactly once, before any
	// other window operation.
	CreateWindow(title string, width, height int) error

	// MakeContextCurrent activates the window's graphics context on the
	// calling thread.
	MakeContextCurrent()

	// HasContext reports whether a graphics context is currently active.
	HasContext() bool

	// Show makes the window visible.
	Show()

	// Close requests native window closure and releases backend resources.
	// The backend should not be used after Close is called.
	Close()

	// PollEvents drains queued native input and invokes the registered
	// key/resize callbacks inline before returning.
	PollEvents()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// ClientSize returns the current client-area size in pixels.
	ClientSize() (width, height int)

	// SetViewport sets the rendering viewport to cover width x height.
	SetViewport(width, height int)

	// SetOrtho resets the projection transform to an orthographic mapping
	// of the given volume.
	SetOrtho(left, right, bottom, top, near, far float64)

	// SetClearColor sets the color used by Clear. Components are
	// normalized to [0, 1]; validation happens above the backend.
	SetClearColor(r, g, b, a float64)

	// SetClearDepth sets the depth value used by Clear.
	SetClearDepth(depth float64)

	// Clear clears the color and depth buffers.
	Clear()

	// ReadPixels reads the current client area as packed 24-bit BGR,
	// bottom row first. The returned buffer is width*height*3 bytes.
	ReadPixels(width, height int) ([]byte, error)

	// IsKeyDown reports whether the given key is currently held down.
	IsKeyDown(key Key) bool

	// SetKeyCallback registers the single key callback. Passing nil
	// removes it.
	SetKeyCallback(fn KeyFunc)

	// SetResizeCallback registers the single resize callback. Passing nil
	// removes it.
	SetResizeCallback(fn ResizeFunc)

	// DeviceHandle returns the GPU device provider backing this window,
	// or a null provider when the backend owns no GPU device.
	DeviceHandle() gpucontext.DeviceProvider
}

// NullDeviceHandle is a gpucontext.DeviceProvider with nil implementations.
// Returned by backends that own no GPU device.
type NullDeviceHandle struct{}

// Device returns nil for the null provider.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null provider.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null provider.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the undefined format for the null provider.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements gpucontext.DeviceProvider.
var _ gpucontext.DeviceProvider = NullDeviceHandle{}
