// Command windemo demonstrates the win window facade.
//
// It opens a window (offscreen GPU backend if available, headless
// otherwise), routes input through an event queue, animates the clear
// color, and captures a screenshot every second.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/win"
	"github.com/gogpu/win/event"

	_ "github.com/gogpu/win/backend/gpu"
	_ "github.com/gogpu/win/backend/headless"
)

func main() {
	var (
		height   = flag.Int("height", 600, "window height")
		aspect   = flag.String("aspect", "4:3", "aspect ratio (1:1, 4:3, 16:9)")
		shots    = flag.String("shots", ".", "screenshot output root")
		duration = flag.Duration("duration", 5*time.Second, "run time")
		config   = flag.String("config", "", "optional config file")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		win.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	w, err := openWindow(*config, *height, *aspect, *shots)
	if err != nil {
		log.Fatalf("open window: %v", err)
	}
	defer w.Close()

	// Route input through a bus instead of the default key regime.
	q := event.NewQueue()
	q.Subscribe(func(ev win.Event) {
		log.Printf("input: key=%s action=%s", ev.Key, ev.Action)
	})
	if !w.BindEventBus(q) {
		log.Fatal("event bus already bound")
	}

	deadline := time.Now().Add(*duration)
	lastShot := time.Now()
	for w.IsRunning() && time.Now().Before(deadline) {
		t := float64(time.Now().UnixMilli()%4000) / 4000
		r := 0.5 + 0.5*math.Sin(2*math.Pi*t)
		if err := w.SetClearColor(r, 0.2, 1-r); err != nil {
			log.Fatalf("set clear color: %v", err)
		}

		w.Clear()
		w.SwapBuffers()
		w.PollEvents()
		q.Dispatch()

		if time.Since(lastShot) >= time.Second {
			if err := w.SaveScreenshot(); err != nil {
				log.Printf("screenshot: %v", err)
			}
			lastShot = time.Now()
		}
		time.Sleep(16 * time.Millisecond)
	}
}

func openWindow(configPath string, height int, aspect, shots string) (*win.Window, error) {
	if configPath != "" {
		cfg, err := win.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.NewWindow()
	}

	a, err := win.ParseAspect(aspect)
	if err != nil {
		return nil, err
	}
	return win.NewWithAspect("windemo", height, a, win.WithScreenshotDir(shots))
}
