// Package win owns a single on-screen window, its rendering surface, and
// the routing of raw input events into an application-level event stream.
//
// # Overview
//
// win is a thin facade over a native windowing/graphics-context backend.
// It hides backend setup behind a small, stable surface: create a window,
// poll input, clear and present a frame, capture a screenshot. The backend
// itself is pluggable (see the backend package); win ships a headless
// in-memory backend for tests and an offscreen GPU backend built on
// gogpu/wgpu.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/win"
//	    _ "github.com/gogpu/win/backend/gpu"
//	)
//
//	w, err := win.New("demo", 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for w.IsRunning() {
//	    w.Clear()
//	    // ... draw ...
//	    w.SwapBuffers()
//	    w.PollEvents()
//	}
//
// # Input Routing
//
// A window starts in the default key regime: escape closes the window and
// print-screen captures a screenshot. Binding an event bus with
// BindEventBus replaces that regime permanently; every key press and
// release is then pushed to the bus as a structured Event. Additive
// listeners registered with OnKeyPress and OnKeyRelease fire in both
// regimes.
//
// # Concurrency
//
// A Window is not safe for concurrent use. PollEvents is the only call
// that drains backend input, and all callbacks run inline on the calling
// goroutine before it returns. The screenshot counter is the one shared
// resource; it is safe to share across windows and goroutines.
package win
