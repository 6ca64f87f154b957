// Package headless provides an in-memory windowing backend.
//
// The headless backend creates no native window. It keeps the window
// state (client size, clear color, viewport, projection) in memory and
// renders nothing: Clear fills an in-memory framebuffer with the clear
// color, ReadPixels returns that framebuffer. Input is scripted: tests
// queue key and resize events with QueueKey and QueueResize, and
// PollEvents drains them through the registered callbacks exactly like a
// native event pump would.
//
// Import for side effects to register it:
//
//	import _ "github.com/gogpu/win/backend/headless"
package headless

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/win/backend"
)

func init() {
	backend.Register(backend.BackendHeadless, func() backend.Backend { return New() })
}

// pendingEvent is a scripted input event waiting for PollEvents.
type pendingEvent struct {
	isKey  bool
	key    backend.Key
	down   bool
	width  int
	height int
}

// Backend is an in-memory implementation of backend.Backend.
// It is not safe for concurrent use, matching the single-threaded
// contract of the interface.
type Backend struct {
	created bool
	closed  bool
	visible bool
	current bool

	title  string
	width  int
	height int

	clearColor [4]float64
	clearDepth float64
	viewport   [2]int
	ortho      [6]float64

	keysDown map[backend.Key]bool
	keyCb    backend.KeyFunc
	resizeCb backend.ResizeFunc

	pending []pendingEvent
	fb      []byte

	// Counters and knobs for tests.
	createCalls int
	clearCalls  int
	swapCalls   int
	createErr   error
}

// New creates a headless backend. The graphics context becomes active
// once MakeContextCurrent is called.
func New() *Backend {
	return &Backend{
		keysDown: make(map[backend.Key]bool),
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendHeadless }

// CreateWindow allocates the in-memory window and framebuffer.
func (b *Backend) CreateWindow(title string, width, height int) error {
	b.createCalls++
	if b.createErr != nil {
		return b.createErr
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("headless: invalid window size %dx%d", width, height)
	}
	b.created = true
	b.title = title
	b.width = width
	b.height = height
	b.fb = make([]byte, width*height*3)
	return nil
}

// MakeContextCurrent activates the in-memory context.
func (b *Backend) MakeContextCurrent() {
	if b.created && !b.closed {
		b.current = true
	}
}

// HasContext reports whether the in-memory context is active.
func (b *Backend) HasContext() bool { return b.current }

// Show marks the window visible.
func (b *Backend) Show() { b.visible = b.created && !b.closed }

// Close releases the window. Further event scripting is discarded.
func (b *Backend) Close() {
	b.closed = true
	b.visible = false
	b.current = false
	b.pending = nil
}

// PollEvents drains scripted events through the registered callbacks.
// Key state is updated before the callback fires, so IsKeyDown observed
// from inside a callback reflects the transition being delivered.
func (b *Backend) PollEvents() {
	queued := b.pending
	b.pending = nil
	for _, ev := range queued {
		if ev.isKey {
			b.keysDown[ev.key] = ev.down
			if b.keyCb != nil {
				b.keyCb(ev.key, ev.down)
			}
			continue
		}
		b.width = ev.width
		b.height = ev.height
		b.fb = make([]byte, ev.width*ev.height*3)
		if b.resizeCb != nil {
			b.resizeCb(ev.width, ev.height)
		}
	}
}

// SwapBuffers counts the presentation request; there is nothing to present.
func (b *Backend) SwapBuffers() { b.swapCalls++ }

// ClientSize returns the current client-area size.
func (b *Backend) ClientSize() (int, int) { return b.width, b.height }

// SetViewport records the viewport.
func (b *Backend) SetViewport(width, height int) {
	b.viewport = [2]int{width, height}
}

// SetOrtho records the projection volume.
func (b *Backend) SetOrtho(left, right, bottom, top, near, far float64) {
	b.ortho = [6]float64{left, right, bottom, top, near, far}
}

// SetClearColor records the clear color.
func (b *Backend) SetClearColor(r, g, bl, a float64) {
	b.clearColor = [4]float64{r, g, bl, a}
}

// SetClearDepth records the clear depth.
func (b *Backend) SetClearDepth(depth float64) { b.clearDepth = depth }

// Clear fills the framebuffer with the clear color (packed BGR).
func (b *Backend) Clear() {
	b.clearCalls++
	blue := byte(b.clearColor[2] * 255)
	green := byte(b.clearColor[1] * 255)
	red := byte(b.clearColor[0] * 255)
	for i := 0; i+2 < len(b.fb); i += 3 {
		b.fb[i] = blue
		b.fb[i+1] = green
		b.fb[i+2] = red
	}
}

// ReadPixels returns a copy of the framebuffer: packed 24-bit BGR,
// bottom row first.
func (b *Backend) ReadPixels(width, height int) ([]byte, error) {
	if !b.created {
		return nil, backend.ErrNotCreated
	}
	need := width * height * 3
	if need > len(b.fb) {
		return nil, fmt.Errorf("headless: read %dx%d exceeds framebuffer", width, height)
	}
	out := make([]byte, need)
	copy(out, b.fb)
	return out, nil
}

// IsKeyDown reports the scripted key state.
func (b *Backend) IsKeyDown(key backend.Key) bool { return b.keysDown[key] }

// SetKeyCallback registers the key callback.
func (b *Backend) SetKeyCallback(fn backend.KeyFunc) { b.keyCb = fn }

// SetResizeCallback registers the resize callback.
func (b *Backend) SetResizeCallback(fn backend.ResizeFunc) { b.resizeCb = fn }

// DeviceHandle returns the null provider; headless owns no GPU device.
func (b *Backend) DeviceHandle() gpucontext.DeviceProvider {
	return backend.NullDeviceHandle{}
}

// QueueKey scripts a key transition for the next PollEvents.
func (b *Backend) QueueKey(key backend.Key, down bool) {
	b.pending = append(b.pending, pendingEvent{isKey: true, key: key, down: down})
}

// QueueResize scripts a client-area resize for the next PollEvents.
func (b *Backend) QueueResize(width, height int) {
	b.pending = append(b.pending, pendingEvent{width: width, height: height})
}

// DropContext deactivates the graphics context. Used by tests to exercise
// context-missing paths.
func (b *Backend) DropContext() { b.current = false }

// FailCreate makes the next CreateWindow return err.
func (b *Backend) FailCreate(err error) { b.createErr = err }

// SetFramebuffer replaces the framebuffer contents. The data must be
// packed 24-bit BGR, bottom row first, sized to the current client area.
func (b *Backend) SetFramebuffer(data []byte) {
	b.fb = make([]byte, len(data))
	copy(b.fb, data)
}

// Created reports whether CreateWindow succeeded.
func (b *Backend) Created() bool { return b.created }

// Closed reports whether Close was called.
func (b *Backend) Closed() bool { return b.closed }

// Visible reports whether Show was called on a live window.
func (b *Backend) Visible() bool { return b.visible }

// CreateCalls returns how many times CreateWindow was invoked.
func (b *Backend) CreateCalls() int { return b.createCalls }

// ClearCalls returns how many times Clear was invoked.
func (b *Backend) ClearCalls() int { return b.clearCalls }

// SwapCalls returns how many times SwapBuffers was invoked.
func (b *Backend) SwapCalls() int { return b.swapCalls }

// ClearColor returns the recorded clear color.
func (b *Backend) ClearColor() (r, g, bl, a float64) {
	return b.clearColor[0], b.clearColor[1], b.clearColor[2], b.clearColor[3]
}

// ClearDepth returns the recorded clear depth.
func (b *Backend) ClearDepth() float64 { return b.clearDepth }

// Viewport returns the recorded viewport size.
func (b *Backend) Viewport() (width, height int) {
	return b.viewport[0], b.viewport[1]
}

// Ortho returns the recorded projection volume.
func (b *Backend) Ortho() [6]float64 { return b.ortho }

// Ensure Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)
