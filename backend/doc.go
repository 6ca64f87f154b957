// Package backend defines the native windowing backend interface and the
// registry used to select an implementation at runtime.
//
// A Backend owns one native window: creation, context activation, buffer
// presentation, raw input delivery, and pixel readback. Everything above
// it (sizing policy, input routing, clear-color validation, screenshots)
// lives in the win package.
//
// Implementations self-register from init():
//
//	import _ "github.com/gogpu/win/backend/gpu"      // offscreen GPU
//	import _ "github.com/gogpu/win/backend/headless" // in-memory, for tests
//
// Selection order for Default() is gpu > headless; win.New uses Default()
// unless a backend is injected with win.WithBackend.
package backend
