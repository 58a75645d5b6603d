package sdlbackend

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/imgapp/backend"
)

// Window pairs an SDL window with its OpenGL context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	id        uint32
	io        imgui.IO
	onDestroy func()

	time        uint64
	buttonsDown [3]bool
}

func newWindow(win *sdl.Window, glContext sdl.GLContext, id uint32, io imgui.IO, onDestroy func()) *Window {
	setKeyMapping(io)
	return &Window{
		window:    win,
		glContext: glContext,
		id:        id,
		io:        io,
		onDestroy: onDestroy,
	}
}

// Handle returns the SDL window and its OpenGL context.
func (w *Window) Handle() (*sdl.Window, sdl.GLContext) {
	return w.window, w.glContext
}

// NewFrame forwards display size, delta time and mouse state to Dear ImGui.
func (w *Window) NewFrame() {
	size := w.ContentSize()
	w.io.SetDisplaySize(imgui.Vec2{X: float32(size.W), Y: float32(size.H)})

	frequency := sdl.GetPerformanceFrequency()
	now := sdl.GetPerformanceCounter()
	if w.time > 0 && now > w.time {
		w.io.SetDeltaTime(float32(now-w.time) / float32(frequency))
	} else {
		w.io.SetDeltaTime(1.0 / 60.0)
	}
	w.time = now

	x, y, state := sdl.GetMouseState()
	w.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range mouseButtons {
		// A press and release within one frame must still register as a click.
		w.io.SetMouseButtonDown(i, w.buttonsDown[i] || state&sdl.Button(button) != 0)
		w.buttonsDown[i] = false
	}
}

// ContentSize returns the client area size in screen coordinates.
func (w *Window) ContentSize() backend.Extents {
	width, height := w.window.GetSize()
	return backend.Extents{W: int(width), H: int(height)}
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() backend.Extents {
	width, height := w.window.GLGetDrawableSize()
	return backend.Extents{W: int(width), H: int(height)}
}

// Present swaps the OpenGL buffers.
func (w *Window) Present() {
	w.window.GLSwap()
}

// Clipboard returns the SDL clipboard.
func (w *Window) Clipboard() imgui.Clipboard {
	return clipboard{}
}

// Destroy deletes the OpenGL context, then the window.
func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	_ = w.window.Destroy()
	w.window = nil
	if w.onDestroy != nil {
		w.onDestroy()
	}
}

func (w *Window) processEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.MouseWheelEvent:
		var dx, dy float32
		if e.X > 0 {
			dx++
		} else if e.X < 0 {
			dx--
		}
		if e.Y > 0 {
			dy++
		} else if e.Y < 0 {
			dy--
		}
		w.io.AddMouseWheelDelta(dx, dy)
	case *sdl.MouseButtonEvent:
		if e.State != sdl.PRESSED {
			return
		}
		if index := mouseButtonIndex(e.Button); index >= 0 {
			w.buttonsDown[index] = true
		}
	case *sdl.TextInputEvent:
		w.io.AddInputCharacters(e.GetText())
	case *sdl.KeyboardEvent:
		key := int(e.Keysym.Scancode)
		if e.Type == sdl.KEYDOWN {
			w.io.KeyPress(key)
		} else if e.Type == sdl.KEYUP {
			w.io.KeyRelease(key)
		}
		w.io.KeyCtrl(int(sdl.SCANCODE_LCTRL), int(sdl.SCANCODE_RCTRL))
		w.io.KeyShift(int(sdl.SCANCODE_LSHIFT), int(sdl.SCANCODE_RSHIFT))
		w.io.KeyAlt(int(sdl.SCANCODE_LALT), int(sdl.SCANCODE_RALT))
		w.io.KeySuper(int(sdl.SCANCODE_LGUI), int(sdl.SCANCODE_RGUI))
	}
}

type clipboard struct{}

func (clipboard) Text() (string, error) {
	return sdl.GetClipboardText()
}

func (clipboard) SetText(text string) {
	_ = sdl.SetClipboardText(text)
}
