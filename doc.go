/*
Package imgapp is a small application shell around Dear ImGui.

It hides the choice of windowing library behind App: GLFW by default, SDL2
when built with -tags sdl. Both render through OpenGL. App opens a window,
pumps the platform event queue and drives one Dear ImGui frame per
iteration, calling a user render function in between.

# Quick Start

	func init() {
	    // GLFW and SDL must run on the main thread.
	    runtime.LockOSThread()
	}

	func main() {
	    app := imgapp.New()
	    defer app.Close()

	    if err := app.OpenDefaultWindow("demo"); err != nil {
	        fmt.Fprintln(os.Stderr, err)
	        os.Exit(1)
	    }

	    app.OnRender(func(width, height int) {
	        imgui.Text("Hello")
	    })

	    if err := app.Run(); err != nil {
	        fmt.Fprintln(os.Stderr, err)
	        os.Exit(1)
	    }
	}

# Frame sequence

Each iteration of Run calls PumpEvents and then UpdateAllWindows, which
performs, in order:

  - the platform's new-frame step (display size, timing, mouse state)
  - imgui.NewFrame
  - clearing the framebuffer with ClearColor
  - the RenderFunc, given the client area size
  - imgui.Render and drawing of the draw data
  - the AfterRenderFunc
  - presenting the frame

# DPI scaling

Init divides the main monitor's DPI by Config.ReferenceDPI (72 by default),
scales the Dear ImGui style by the result and multiplies font sizes passed
to AddFont by it.

# Window size

OpenDefaultWindow sizes the window to seven eighths of the main display's
usable area.

# Configuration

Config is usually loaded from TOML with LoadConfig:

	title = "Viewer"
	theme = "cyan"
	clear_color = [0.1, 0.1, 0.12, 1.0]

	[[fonts]]
	file = "DejaVuSans.ttf"
	size = 15.0
*/
package imgapp
