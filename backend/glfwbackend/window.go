package glfwbackend

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp/backend"
)

// Window adapts a GLFW window and its input to Dear ImGui.
type Window struct {
	window    *glfw.Window
	io        imgui.IO
	onDestroy func()

	time             float64
	mouseJustPressed [3]bool
}

func newWindow(win *glfw.Window, io imgui.IO, onDestroy func()) *Window {
	w := &Window{
		window:    win,
		io:        io,
		onDestroy: onDestroy,
	}

	setKeyMapping(io)

	// Setup callbacks
	win.SetKeyCallback(w.keyCallback)
	win.SetCharCallback(w.charCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)

	return w
}

// Handle returns the underlying GLFW window.
func (w *Window) Handle() *glfw.Window {
	return w.window
}

// NewFrame updates the Dear ImGui IO state for a new frame.
// Call this at the start of each frame.
func (w *Window) NewFrame() {
	size := w.ContentSize()
	w.io.SetDisplaySize(imgui.Vec2{X: float32(size.W), Y: float32(size.H)})

	now := glfw.GetTime()
	if w.time > 0 {
		w.io.SetDeltaTime(float32(now - w.time))
	}
	w.time = now

	if w.window.GetAttrib(glfw.Focused) != 0 {
		x, y := w.window.GetCursorPos()
		w.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		w.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	// A press and release within one frame must still register as a click.
	for i, button := range mouseButtons {
		down := w.mouseJustPressed[i] || w.window.GetMouseButton(button) == glfw.Press
		w.io.SetMouseButtonDown(i, down)
		w.mouseJustPressed[i] = false
	}
}

// ContentSize returns the client area size in screen coordinates.
func (w *Window) ContentSize() backend.Extents {
	width, height := w.window.GetSize()
	return backend.Extents{W: width, H: height}
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() backend.Extents {
	width, height := w.window.GetFramebufferSize()
	return backend.Extents{W: width, H: height}
}

// Present swaps buffers.
func (w *Window) Present() {
	w.window.SwapBuffers()
}

// Clipboard returns the GLFW clipboard.
func (w *Window) Clipboard() imgui.Clipboard {
	return clipboard{window: w.window}
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	if w.onDestroy != nil {
		w.onDestroy()
	}
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.io.KeyPress(int(key))
	case glfw.Release:
		w.io.KeyRelease(int(key))
	}

	// Modifier state from key events is unreliable across systems.
	w.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	w.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	w.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	w.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (w *Window) charCallback(_ *glfw.Window, char rune) {
	w.io.AddInputCharacters(string(char))
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	index := mouseButtonIndex(button)
	if index < 0 {
		return
	}
	if action == glfw.Press {
		w.mouseJustPressed[index] = true
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
}

type clipboard struct {
	window *glfw.Window
}

func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
