package win

import (
	"errors"
	"testing"

	"github.com/gogpu/win/backend"
	"github.com/gogpu/win/backend/headless"
)

// busRecorder is a Bus that records every pushed event.
type busRecorder struct {
	events []Event
}

func (b *busRecorder) Push(ev Event) { b.events = append(b.events, ev) }

var _ Bus = (*busRecorder)(nil)

func newTestWindow(t *testing.T, opts ...Option) (*Window, *headless.Backend) {
	t.Helper()
	hb := headless.New()
	all := append([]Option{
		WithBackend(hb),
		WithCounter(&Counter{}),
		WithScreenshotDir(t.TempDir()),
	}, opts...)
	w, err := New("test", 320, 240, all...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(w.Close)
	return w, hb
}

func TestNewActivation(t *testing.T) {
	w, hb := newTestWindow(t)

	if !w.IsRunning() {
		t.Error("IsRunning() = false after construction")
	}
	if !hb.Created() || !hb.Visible() {
		t.Error("backend window should be created and visible")
	}
	if !hb.HasContext() {
		t.Error("graphics context should be current after activation")
	}
	if w.Title() != "test" {
		t.Errorf("Title() = %q, want %q", w.Title(), "test")
	}
	if gotW, gotH := w.Size(); gotW != 320 || gotH != 240 {
		t.Errorf("Size() = %dx%d, want 320x240", gotW, gotH)
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("test", tt.width, tt.height, WithBackend(headless.New())); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, want %v", tt.width, tt.height, err, ErrInvalidDimensions)
			}
		})
	}
}

func TestNewBackendFailure(t *testing.T) {
	hb := headless.New()
	wantErr := errors.New("native allocation failed")
	hb.FailCreate(wantErr)

	w, err := New("test", 320, 240, WithBackend(hb))
	if !errors.Is(err, wantErr) {
		t.Fatalf("New() error = %v, want wrapped %v", err, wantErr)
	}
	if w != nil {
		t.Error("New() returned a window on backend failure")
	}
}

func TestBindEventBusOnce(t *testing.T) {
	w, hb := newTestWindow(t)

	first := &busRecorder{}
	second := &busRecorder{}

	if !w.BindEventBus(first) {
		t.Fatal("first BindEventBus() = false, want true")
	}
	if w.BindEventBus(second) {
		t.Error("second BindEventBus() = true, want false")
	}
	if w.BindEventBus(first) {
		t.Error("rebinding the same bus = true, want false")
	}

	// The original binding must be untouched: events go to first only.
	hb.QueueKey(backend.KeySpace, true)
	w.PollEvents()

	if len(first.events) != 1 {
		t.Errorf("first bus got %d events, want 1", len(first.events))
	}
	if len(second.events) != 0 {
		t.Errorf("second bus got %d events, want 0", len(second.events))
	}
}

func TestBindEventBusNil(t *testing.T) {
	w, _ := newTestWindow(t)
	if w.BindEventBus(nil) {
		t.Error("BindEventBus(nil) = true, want false")
	}
	// A nil bind must not consume the single binding slot.
	if !w.BindEventBus(&busRecorder{}) {
		t.Error("BindEventBus() after nil attempt = false, want true")
	}
}

func TestBusRegimeEvents(t *testing.T) {
	w, hb := newTestWindow(t)
	bus := &busRecorder{}
	w.BindEventBus(bus)

	hb.QueueKey(backend.KeySpace, true)
	hb.QueueKey(backend.KeySpace, false)
	w.PollEvents()

	if len(bus.events) != 2 {
		t.Fatalf("bus got %d events, want 2", len(bus.events))
	}

	press, release := bus.events[0], bus.events[1]
	if press.Kind != KindInput || release.Kind != KindInput {
		t.Error("event kind should be KindInput")
	}
	if press.Source != w || release.Source != w {
		t.Error("event source should be the originating window")
	}
	if press.Key != backend.KeySpace {
		t.Errorf("event key = %q, want %q", press.Key, backend.KeySpace)
	}
	if press.Action != ActionKeyPress {
		t.Errorf("press action = %q, want %q", press.Action, ActionKeyPress)
	}
	if release.Action != ActionKeyRelease {
		t.Errorf("release action = %q, want %q", release.Action, ActionKeyRelease)
	}
	if press.Extra != "" || release.Extra != "" {
		t.Error("extra payload should be empty")
	}
}

func TestBusRegimeDisplacesDefault(t *testing.T) {
	w, hb := newTestWindow(t)
	bus := &busRecorder{}
	w.BindEventBus(bus)

	// Escape no longer closes the window once a bus is bound.
	hb.QueueKey(KeyEscape, true)
	w.PollEvents()

	if !w.IsRunning() {
		t.Error("escape closed the window in bus regime")
	}
	if len(bus.events) != 1 {
		t.Errorf("bus got %d events, want 1", len(bus.events))
	}
}

func TestWithBusStartsInBusRegime(t *testing.T) {
	bus := &busRecorder{}
	w, hb := newTestWindow(t, WithBus(bus))

	if w.BindEventBus(&busRecorder{}) {
		t.Error("BindEventBus() after WithBus = true, want false")
	}

	hb.QueueKey(KeyEscape, true)
	w.PollEvents()
	if !w.IsRunning() {
		t.Error("escape closed the window despite construction-time bus")
	}
	if len(bus.events) != 1 {
		t.Errorf("bus got %d events, want 1", len(bus.events))
	}
}

func TestDefaultRegimeEscapeCloses(t *testing.T) {
	w, hb := newTestWindow(t)

	hb.QueueKey(KeyEscape, true)
	w.PollEvents()

	if w.IsRunning() {
		t.Error("escape should close the window in the default regime")
	}
	if !hb.Closed() {
		t.Error("backend closure should be requested")
	}
}

func TestDefaultRegimeIgnoresOtherKeys(t *testing.T) {
	w, hb := newTestWindow(t)

	hb.QueueKey(backend.KeySpace, true)
	hb.QueueKey(backend.KeyEnter, true)
	w.PollEvents()

	if !w.IsRunning() {
		t.Error("unrelated keys closed the window")
	}
}

func TestDefaultRegimeIgnoresEscapeRelease(t *testing.T) {
	w, hb := newTestWindow(t)

	// Key-up alone must not trigger the default handler.
	hb.QueueKey(KeyEscape, false)
	w.PollEvents()

	if !w.IsRunning() {
		t.Error("escape release closed the window")
	}
}

func TestAdditiveListeners(t *testing.T) {
	w, hb := newTestWindow(t)

	var pressed, released []Key
	w.OnKeyPress(func(k Key) { pressed = append(pressed, k) })
	w.OnKeyPress(func(k Key) { pressed = append(pressed, k) }) // listeners accumulate
	w.OnKeyRelease(func(k Key) { released = append(released, k) })

	hb.QueueKey(backend.KeySpace, true)
	hb.QueueKey(backend.KeySpace, false)
	w.PollEvents()

	if len(pressed) != 2 {
		t.Errorf("press listeners fired %d times, want 2", len(pressed))
	}
	if len(released) != 1 {
		t.Errorf("release listeners fired %d times, want 1", len(released))
	}
}

func TestAdditiveListenersFireInBusRegime(t *testing.T) {
	w, hb := newTestWindow(t)

	var pressed int
	w.OnKeyPress(func(Key) { pressed++ })

	bus := &busRecorder{}
	w.BindEventBus(bus)

	hb.QueueKey(backend.KeySpace, true)
	w.PollEvents()

	if pressed != 1 {
		t.Errorf("additive listener fired %d times in bus regime, want 1", pressed)
	}
	if len(bus.events) != 1 {
		t.Errorf("bus got %d events, want 1", len(bus.events))
	}
}

func TestDefaultResizeHandler(t *testing.T) {
	w, hb := newTestWindow(t)

	hb.QueueResize(640, 480)
	w.PollEvents()

	if w.Width() != 640 || w.Height() != 480 {
		t.Errorf("Size() = %dx%d after resize, want 640x480", w.Width(), w.Height())
	}
	if vw, vh := hb.Viewport(); vw != 640 || vh != 480 {
		t.Errorf("Viewport() = %dx%d, want 640x480", vw, vh)
	}
	if got, want := hb.Ortho(), [6]float64{0, 1, 0, 1, 0, 4}; got != want {
		t.Errorf("Ortho() = %v, want %v", got, want)
	}
}

func TestResizableToggle(t *testing.T) {
	w, hb := newTestWindow(t)

	// Repeated toggling in either direction must be a no-op beyond the
	// final state.
	w.SetResizable(false)
	w.SetResizable(false)

	hb.QueueResize(640, 480)
	w.PollEvents()
	if w.Width() != 320 || w.Height() != 240 {
		t.Errorf("Size() = %dx%d while frozen, want 320x240", w.Width(), w.Height())
	}

	w.SetResizable(true)
	w.SetResizable(true)

	hb.QueueResize(800, 600)
	w.PollEvents()
	if w.Width() != 800 || w.Height() != 600 {
		t.Errorf("Size() = %dx%d after re-enabling, want 800x600", w.Width(), w.Height())
	}
}

func TestWithResizableFalse(t *testing.T) {
	w, hb := newTestWindow(t, WithResizable(false))
	if w.Resizable() {
		t.Error("Resizable() = true, want false")
	}

	hb.QueueResize(640, 480)
	w.PollEvents()
	if w.Width() != 320 {
		t.Error("resize applied despite WithResizable(false)")
	}
}

func TestCloseIdempotent(t *testing.T) {
	w, _ := newTestWindow(t)

	w.Close()
	if w.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}

	w.Close() // second close: no panic, no effect
	if w.IsRunning() {
		t.Error("IsRunning() = true after second Close")
	}
}

func TestClearAndSwapPassThrough(t *testing.T) {
	w, hb := newTestWindow(t)

	w.Clear()
	w.Clear()
	w.SwapBuffers()

	if hb.ClearCalls() != 2 {
		t.Errorf("ClearCalls() = %d, want 2", hb.ClearCalls())
	}
	if hb.SwapCalls() != 1 {
		t.Errorf("SwapCalls() = %d, want 1", hb.SwapCalls())
	}
}

func TestCallbacksRunInline(t *testing.T) {
	w, hb := newTestWindow(t)

	fired := false
	w.OnKeyPress(func(Key) { fired = true })
	hb.QueueKey(backend.KeySpace, true)

	if fired {
		t.Fatal("listener fired before PollEvents")
	}
	w.PollEvents()
	if !fired {
		t.Error("listener did not fire inline during PollEvents")
	}
}

func TestDeviceHandleNullForHeadless(t *testing.T) {
	w, _ := newTestWindow(t)
	h := w.Device()
	if h == nil {
		t.Fatal("Device() = nil, want null provider")
	}
	if h.Device() != nil {
		t.Error("headless device provider should have nil device")
	}
}
