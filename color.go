package win

import (
	"fmt"
	"image/color"
)

// clearColor is the single validated clear-color representation.
// Components are normalized to [0, 1]; every public entry point funnels
// into it before anything reaches the backend.
type clearColor struct {
	R, G, B float64
}

// SetClearColor sets the clear color from a normalized float triple.
// Each component must be in [0, 1]; otherwise the call fails with
// ErrColorOutOfRange naming the offending triple and the stored state is
// unchanged.
func (w *Window) SetClearColor(r, g, b float64) error {
	if !inUnit(r) || !inUnit(g) || !inUnit(b) {
		return fmt.Errorf("%w: (%g, %g, %g)", ErrColorOutOfRange, r, g, b)
	}
	w.applyClearColor(clearColor{R: r, G: g, B: b})
	return nil
}

// SetClearColorRGB sets the clear color from an integer triple in
// [0, 255]. In-range values are divided by 255 before being forwarded;
// out-of-range components fail with ErrColorOutOfRange and leave the
// stored state unchanged.
func (w *Window) SetClearColorRGB(r, g, b int) error {
	if !inByte(r) || !inByte(g) || !inByte(b) {
		return fmt.Errorf("%w: (%d, %d, %d)", ErrColorOutOfRange, r, g, b)
	}
	w.applyClearColor(clearColor{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	})
	return nil
}

// SetClearColorNative sets the clear color from a standard color.Color.
// The color is decomposed into its three 0-255 channels and forwarded to
// the integer path; alpha is ignored (the clear color is always opaque).
func (w *Window) SetClearColorNative(c color.Color) error {
	r, g, b, _ := c.RGBA()
	return w.SetClearColorRGB(int(r>>8), int(g>>8), int(b>>8))
}

// applyClearColor stores the validated color and forwards it to the
// backend as one call.
func (w *Window) applyClearColor(c clearColor) {
	w.clearColor = c
	w.b.SetClearColor(c.R, c.G, c.B, 1)
}

// ClearColor returns the current clear color as normalized components.
func (w *Window) ClearColor() (r, g, b float64) {
	return w.clearColor.R, w.clearColor.G, w.clearColor.B
}

func inUnit(v float64) bool { return v >= 0 && v <= 1 }

func inByte(v int) bool { return v >= 0 && v <= 255 }
