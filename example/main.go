// Example opens the default window and shows a small Dear ImGui demo.
//
// Usage:
//
//	go run ./example/                      # GLFW backend
//	go run -tags sdl ./example/            # SDL2 backend
//	go run ./example/ -config app.toml -v  # settings from a TOML file, debug logging
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp"
)

func init() {
	// GLFW and SDL must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML settings file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	imgapp.SetVerbose(*verbose)

	cfg := imgapp.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = imgapp.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	app := imgapp.New(imgapp.WithConfig(cfg))
	defer app.Close()

	if err := app.OpenDefaultWindow(""); err != nil {
		return err
	}

	// Application state.
	var (
		clickCount = 0
		sliderVal  = float32(0.5)
		showDemo   = false
		bg         = app.ClearColor()
		color      = [3]float32{bg.X, bg.Y, bg.Z}
	)

	app.OnRender(func(width, height int) {
		imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
		imgui.Begin("imgapp " + imgapp.BackendName)

		imgui.Text(fmt.Sprintf("Window %dx%d, DPI scaling %.2f", width, height, app.DPIScaling()))
		imgui.Text(fmt.Sprintf("%.1f FPS", imgui.CurrentIO().Framerate()))
		imgui.Separator()

		if imgui.Button(fmt.Sprintf("Click me (%d)", clickCount)) {
			clickCount++
		}
		imgui.SliderFloat("slider", &sliderVal, 0, 1)
		if imgui.ColorEdit3("clear color", &color) {
			app.SetClearColor(imgui.Vec4{X: color[0], Y: color[1], Z: color[2], W: 1})
		}
		imgui.Checkbox("demo window", &showDemo)
		if imgui.Button("Quit") {
			app.Quit()
		}
		imgui.End()

		if showDemo {
			imgui.ShowDemoWindow(&showDemo)
		}
	})

	return app.Run()
}
