package win

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/win/backend/headless"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title: demo
width: 800
height: 600
resizable: false
screenshot_dir: /tmp/shots
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Title != "demo" || cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("config = %+v, wrong scalar fields", cfg)
	}
	if cfg.Resizable == nil || *cfg.Resizable {
		t.Error("resizable should be parsed as false")
	}
	if cfg.ScreenshotDir != "/tmp/shots" {
		t.Errorf("screenshot_dir = %q", cfg.ScreenshotDir)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, "title: demo\nwdith: 800\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should reject unknown fields")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() on missing file should fail")
	}
}

func TestConfigNewWindowExplicit(t *testing.T) {
	cfg := &Config{Title: "demo", Width: 640, Height: 480}
	w, err := cfg.NewWindow(WithBackend(headless.New()))
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	defer w.Close()

	if w.Width() != 640 || w.Height() != 480 {
		t.Errorf("Size() = %dx%d, want 640x480", w.Width(), w.Height())
	}
	if w.Title() != "demo" {
		t.Errorf("Title() = %q, want %q", w.Title(), "demo")
	}
}

func TestConfigNewWindowAspect(t *testing.T) {
	cfg := &Config{Height: 600, Aspect: "4:3"}
	w, err := cfg.NewWindow(WithBackend(headless.New()))
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	defer w.Close()

	if w.Width() != 800 {
		t.Errorf("Width() = %d, want 800 from 4:3 aspect", w.Width())
	}
}

func TestConfigNewWindowBadAspect(t *testing.T) {
	cfg := &Config{Height: 600, Aspect: "21:9"}
	if _, err := cfg.NewWindow(WithBackend(headless.New())); !errors.Is(err, ErrUnknownAspect) {
		t.Errorf("NewWindow() error = %v, want %v", err, ErrUnknownAspect)
	}
}

func TestConfigNewWindowNoHeight(t *testing.T) {
	cfg := &Config{Width: 640}
	if _, err := cfg.NewWindow(WithBackend(headless.New())); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewWindow() error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestConfigOptionsOverride(t *testing.T) {
	// Options passed to NewWindow win over config-derived ones.
	resizable := true
	cfg := &Config{Width: 100, Height: 100, Resizable: &resizable}
	w, err := cfg.NewWindow(WithBackend(headless.New()), WithResizable(false))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if w.Resizable() {
		t.Error("explicit option should override config resizable")
	}
}
