package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/win"
	"github.com/gogpu/win/backend"
)

// GPU backend errors.
var (
	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("gpu: no GPU adapter available")

	// ErrDeviceCreationFailed is returned when the logical device cannot
	// be created.
	ErrDeviceCreationFailed = errors.New("gpu: device creation failed")
)

func init() {
	backend.Register(backend.BackendGPU, func() backend.Backend { return New() })
}

// Backend is an offscreen windowing backend holding real GPU resources
// via gogpu/wgpu. CreateWindow acquires instance, adapter, device, and
// queue; the "window" is an offscreen surface whose framebuffer lives in
// CPU memory.
//
// The backend produces no native input events: PollEvents is a no-op.
// It exists for CI, capture pipelines, and applications that composite
// through a host framework while sharing the GPU device exposed by
// DeviceHandle.
type Backend struct {
	// GPU resources
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
	gpuInfo  *GPUInfo

	created bool
	closed  bool
	current bool
	visible bool

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

	fb []byte
}

// New creates a GPU backend. GPU resources are acquired by CreateWindow.
func New() *Backend {
	return &Backend{
		keysDown: make(map[backend.Key]bool),
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendGPU }

// CreateWindow acquires GPU resources and allocates the offscreen
// framebuffer. Resource acquisition order: instance, adapter, device,
// queue; partial acquisitions are released on failure.
func (b *Backend) CreateWindow(title string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpu: invalid window size %dx%d", width, height)
	}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	b.instance = core.NewInstance(desc)

	adapterID, err := b.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		b.instance = nil
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	b.adapter = adapterID

	logGPUInfo(adapterID)
	b.gpuInfo, _ = getGPUInfo(adapterID)

	deviceID, err := createDevice(adapterID, "win-gpu-device")
	if err != nil {
		_ = releaseAdapter(adapterID)
		b.adapter = core.AdapterID{}
		b.instance = nil
		return fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}
	b.device = deviceID

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		_ = releaseAdapter(adapterID)
		b.device = core.DeviceID{}
		b.adapter = core.AdapterID{}
		b.instance = nil
		return fmt.Errorf("gpu: queue retrieval: %w", err)
	}
	b.queue = queueID

	b.created = true
	b.title = title
	b.width = width
	b.height = height
	b.fb = make([]byte, width*height*3)

	win.Logger().Info("gpu: offscreen window created", "title", title, "size", fmt.Sprintf("%dx%d", width, height))
	return nil
}

// MakeContextCurrent activates the offscreen context.
func (b *Backend) MakeContextCurrent() {
	if b.created && !b.closed {
		b.current = true
	}
}

// HasContext reports whether the offscreen context is active.
func (b *Backend) HasContext() bool { return b.current }

// Show marks the window visible. Offscreen surfaces have nothing to show.
func (b *Backend) Show() { b.visible = b.created && !b.closed }

// Close releases GPU resources in reverse order of acquisition.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.visible = false
	b.current = false

	if !b.device.IsZero() {
		if err := releaseDevice(b.device); err != nil {
			win.Logger().Warn("gpu: error releasing device", "err", err)
		}
		b.device = core.DeviceID{}
	}
	if !b.adapter.IsZero() {
		if err := releaseAdapter(b.adapter); err != nil {
			win.Logger().Warn("gpu: error releasing adapter", "err", err)
		}
		b.adapter = core.AdapterID{}
	}
	b.queue = core.QueueID{}
	b.instance = nil
	b.gpuInfo = nil
}

// PollEvents is a no-op: the offscreen backend has no native event queue.
func (b *Backend) PollEvents() {}

// SwapBuffers is a no-op for the offscreen surface.
func (b *Backend) SwapBuffers() {}

// ClientSize returns the offscreen surface size.
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

// Clear fills the offscreen framebuffer with the clear color (packed BGR).
func (b *Backend) Clear() {
	blue := byte(b.clearColor[2] * 255)
	green := byte(b.clearColor[1] * 255)
	red := byte(b.clearColor[0] * 255)
	for i := 0; i+2 < len(b.fb); i += 3 {
		b.fb[i] = blue
		b.fb[i+1] = green
		b.fb[i+2] = red
	}
}

// ReadPixels returns a copy of the offscreen framebuffer: packed 24-bit
// BGR, bottom row first.
func (b *Backend) ReadPixels(width, height int) ([]byte, error) {
	if !b.created {
		return nil, backend.ErrNotCreated
	}
	need := width * height * 3
	if need > len(b.fb) {
		return nil, fmt.Errorf("gpu: read %dx%d exceeds framebuffer", width, height)
	}
	out := make([]byte, need)
	copy(out, b.fb)
	return out, nil
}

// IsKeyDown reports the last key state injected by the host.
func (b *Backend) IsKeyDown(key backend.Key) bool { return b.keysDown[key] }

// SetKeyCallback registers the key callback. The offscreen backend never
// invokes it on its own; host frameworks embedding this backend inject
// keys via InjectKey.
func (b *Backend) SetKeyCallback(fn backend.KeyFunc) { b.keyCb = fn }

// SetResizeCallback registers the resize callback.
func (b *Backend) SetResizeCallback(fn backend.ResizeFunc) { b.resizeCb = fn }

// InjectKey delivers a key transition from a host framework, updating
// key state and invoking the registered callback inline.
func (b *Backend) InjectKey(key backend.Key, down bool) {
	b.keysDown[key] = down
	if b.keyCb != nil {
		b.keyCb(key, down)
	}
}

// Resize changes the offscreen surface size and invokes the resize
// callback inline.
func (b *Backend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.fb = make([]byte, width*height*3)
	if b.resizeCb != nil {
		b.resizeCb(width, height)
	}
}

// GPUInfo returns information about the selected GPU.
// Returns nil before CreateWindow or after Close.
func (b *Backend) GPUInfo() *GPUInfo { return b.gpuInfo }

// DeviceHandle returns a gpucontext.DeviceProvider exposing the backend's
// device, queue, and adapter for host frameworks and gg integration.
func (b *Backend) DeviceHandle() gpucontext.DeviceProvider {
	if !b.created || b.closed {
		return backend.NullDeviceHandle{}
	}
	return deviceHandle{b: b}
}

// deviceHandle adapts the backend's wgpu resources to gpucontext.
type deviceHandle struct {
	b *Backend
}

func (h deviceHandle) Device() gpucontext.Device   { return wgpuDevice{id: h.b.device} }
func (h deviceHandle) Queue() gpucontext.Queue     { return wgpuQueue{id: h.b.queue} }
func (h deviceHandle) Adapter() gpucontext.Adapter { return wgpuAdapter{id: h.b.adapter} }

func (h deviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// wgpuDevice wraps a core.DeviceID as a gpucontext.Device.
type wgpuDevice struct {
	id core.DeviceID
}

// Poll is a no-op; wgpu core drives submission completion internally.
func (wgpuDevice) Poll(wait bool) {}

// Destroy drops the device.
func (d wgpuDevice) Destroy() { _ = core.DeviceDrop(d.id) }

// wgpuQueue wraps a core.QueueID as a gpucontext.Queue.
type wgpuQueue struct {
	id core.QueueID
}

// wgpuAdapter wraps a core.AdapterID as a gpucontext.Adapter.
type wgpuAdapter struct {
	id core.AdapterID
}

// Ensure Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)

// Ensure deviceHandle implements gpucontext.DeviceProvider.
var _ gpucontext.DeviceProvider = deviceHandle{}
