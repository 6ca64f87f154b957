package win

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gogpu/win/internal/imageio"
)

// Counter hands out unique screenshot sequence numbers. Values start at
// zero, strictly increase, and never repeat. A Counter is safe to share
// across windows and goroutines.
//
// All windows use one process-wide counter unless WithCounter injects
// another, so screenshot filenames stay unique across instances.
type Counter struct {
	n atomic.Int64
}

// Next returns the current value and increments the counter.
func (c *Counter) Next() int64 {
	return c.n.Add(1) - 1
}

// Value returns the next value Next would hand out, without consuming it.
func (c *Counter) Value() int64 {
	return c.n.Load()
}

// sharedCounter is the process-wide default.
var sharedCounter Counter

const (
	// screenshotDirName is the fixed subfolder screenshots land in,
	// beneath the resolved output root.
	screenshotDirName = "screenShots"

	// markerDirName is the directory name the fallback walk looks for
	// when no screenshot root was configured.
	markerDirName = "win"
)

// SaveScreenshot captures the current client area to
// <root>/screenShots/screenShot_<N>.bmp, synchronously on the calling
// goroutine.
//
// The procedure: require an active graphics context (ErrNoContext
// otherwise, before any I/O), read back the client-area pixels, reorder
// channels and flip vertically (backend origin is bottom-left), resolve
// the output root, create the folder if absent, and persist under the
// next counter value. A failed encode or write still consumes the
// filename slot; a missing context does not.
func (w *Window) SaveScreenshot() error {
	return w.saveScreenshot("bmp", imageio.SaveBMP)
}

// SaveScreenshotPNG is SaveScreenshot with PNG output. The counter is
// shared with the BMP variant.
func (w *Window) SaveScreenshotPNG() error {
	return w.saveScreenshot("png", imageio.SavePNG)
}

func (w *Window) saveScreenshot(ext string, save func(string, image.Image) error) error {
	if !w.b.HasContext() {
		return ErrNoContext
	}

	width, height := w.b.ClientSize()
	raw, err := w.b.ReadPixels(width, height)
	if err != nil {
		return fmt.Errorf("win: read pixels: %w", err)
	}

	img, err := imageio.FromBGR(raw, width, height)
	if err != nil {
		return fmt.Errorf("win: decode readback: %w", err)
	}

	root, err := w.screenshotRoot()
	if err != nil {
		return err
	}

	// The filename slot is consumed as soon as capture is attempted;
	// folder or write failures below do not give it back.
	n := w.counter.Next()

	dir := filepath.Join(root, screenshotDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("win: create screenshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("screenShot_%d.%s", n, ext))
	if err := save(path, img); err != nil {
		return fmt.Errorf("win: save screenshot: %w", err)
	}

	Logger().Debug("win: screenshot saved", "path", path)
	return nil
}

// screenshotRoot resolves the output root: the configured directory when
// set, otherwise the marker-directory walk from the executable location.
func (w *Window) screenshotRoot() (string, error) {
	if w.screenshotDir != "" {
		return w.screenshotDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("win: locate executable: %w", err)
	}
	return findMarkerRoot(filepath.Dir(exe))
}

// findMarkerRoot walks upward from start looking for a child directory
// named after this library at each level. The walk terminates at the
// filesystem root with ErrMarkerNotFound instead of looping forever.
func findMarkerRoot(start string) (string, error) {
	dir := start
	for {
		candidate := filepath.Join(dir, markerDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %q directory above %s", ErrMarkerNotFound, markerDirName, start)
		}
		dir = parent
	}
}
