// Command capture renders a few frames of a sample window and saves the last
// one as a JPEG screenshot.
//
// Usage:
//
//	go run ./example/capture/ -out doc/imgs/window.jpg -frames 3
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("out", filepath.Join("doc", "imgs", "window.jpg"), "JPEG output path")
	frames := flag.Int("frames", 3, "frames to render before capturing")
	quality := flag.Int("quality", 90, "JPEG quality")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", *frames)
	}
	imgapp.SetVerbose(*verbose)

	cfg := imgapp.DefaultConfig()
	cfg.IniFilename = ""

	app := imgapp.New(imgapp.WithConfig(cfg))
	defer app.Close()

	if err := app.OpenDefaultWindow("capture"); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	checked := true
	value := float32(0.65)
	app.OnRender(func(width, height int) {
		imgui.SetNextWindowPos(imgui.Vec2{X: 16, Y: 16})
		imgui.Begin("capture")
		imgui.Text(fmt.Sprintf("%dx%d via %s", width, height, imgapp.BackendName))
		imgui.Checkbox("checkbox", &checked)
		imgui.SliderFloat("slider", &value, 0, 1)
		imgui.Button("button")
		imgui.End()
	})

	rendered := 0
	var saveErr error
	app.AfterRender(func() {
		rendered++
		if rendered < *frames {
			return
		}
		defer app.Quit()

		img, err := app.Screenshot()
		if err != nil {
			saveErr = fmt.Errorf("screenshot: %w", err)
			return
		}
		f, err := os.Create(*out)
		if err != nil {
			saveErr = err
			return
		}
		defer f.Close()
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: *quality}); err != nil {
			saveErr = fmt.Errorf("encode %s: %w", *out, err)
			return
		}
		fmt.Printf("%s (%dx%d)\n", *out, img.Bounds().Dx(), img.Bounds().Dy())
	})

	if err := app.Run(); err != nil {
		return err
	}
	return saveErr
}
