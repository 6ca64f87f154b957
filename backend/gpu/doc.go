// Package gpu provides an offscreen windowing backend holding real GPU
// resources via gogpu/wgpu.
//
// CreateWindow acquires a WebGPU instance, adapter, logical device, and
// queue; the window itself is an offscreen surface with a CPU-resident
// framebuffer, so the backend works without a display server. The
// acquired device is exposed through DeviceHandle as a
// gpucontext.DeviceProvider for sharing with host frameworks and gg.
//
// If no GPU is available (no Vulkan/Metal/DX12), CreateWindow fails with
// ErrNoGPU and the caller can fall back to the headless backend.
//
// Import for side effects to register it:
//
//	import _ "github.com/gogpu/win/backend/gpu"
package gpu
