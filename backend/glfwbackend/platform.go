// Package glfwbackend implements the imgapp platform backend on top of GLFW 3.3.
package glfwbackend

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp/backend"
)

const mmPerInch = 25.4

// Platform is the GLFW windowing backend. GLFW keeps a single event queue,
// so the platform tracks the one window it opened to answer PumpEvents.
type Platform struct {
	window *Window
}

// New creates a GLFW platform. Nothing is initialized until Init.
func New() *Platform {
	return &Platform{}
}

// Init initializes GLFW and selects the OpenGL context hints.
// GLFW must be driven from the main thread; callers lock it.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}

	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 2)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
	}
	return nil
}

// Shutdown terminates GLFW.
func (p *Platform) Shutdown() {
	glfw.Terminate()
}

// MainMonitorDPI returns the horizontal DPI of the primary monitor, derived
// from its current video mode and reported physical width.
func (p *Platform) MainMonitorDPI() (float32, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return 0, errors.New("glfw: no primary monitor")
	}
	mode := monitor.GetVideoMode()
	widthMM, _ := monitor.GetPhysicalSize()
	if mode == nil || widthMM <= 0 {
		return 0, fmt.Errorf("glfw: monitor %q reports no physical size", monitor.GetName())
	}
	return float32(mode.Width) / (float32(widthMM) / mmPerInch), nil
}

// MainDisplayExtents returns the work area of the primary monitor.
func (p *Platform) MainDisplayExtents() (backend.Extents, error) {
	bounds, err := usableBounds()
	if err != nil {
		return backend.Extents{}, err
	}
	return bounds.Extents(), nil
}

// usableBounds is the primary monitor's work area, or the whole video mode
// when the window manager reports none.
func usableBounds() (backend.Bounds, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return backend.Bounds{}, errors.New("glfw: no primary monitor")
	}
	x, y, w, h := monitor.GetWorkarea()
	if w <= 0 || h <= 0 {
		mode := monitor.GetVideoMode()
		if mode == nil {
			return backend.Bounds{}, errors.New("glfw: primary monitor has no video mode")
		}
		x, y = monitor.GetPos()
		w, h = mode.Width, mode.Height
	}
	return backend.Bounds{X: x, Y: y, W: w, H: h}, nil
}

// OpenWindow creates the window centred in the work area, makes its context
// current and enables vsync. GLFW has no separate context handle; the window
// carries it.
func (p *Platform) OpenWindow(title string, size backend.Extents) (backend.Window, error) {
	if p.window != nil {
		return nil, errors.New("glfw: only one window is supported")
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(size.W, size.H, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	if bounds, err := usableBounds(); err == nil {
		win.SetPos(bounds.Center(size))
	}
	win.Show()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	p.window = newWindow(win, imgui.CurrentIO(), func() { p.window = nil })
	return p.window, nil
}

// PumpEvents reports false once the window has been asked to close, and
// otherwise polls pending events.
func (p *Platform) PumpEvents() bool {
	if p.window != nil && p.window.window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// GLSLVersion matches the context hints chosen in Init.
func (p *Platform) GLSLVersion() string {
	return backend.DefaultGLSLVersion()
}

// FontDirectories returns the system font directories.
func (p *Platform) FontDirectories() []string {
	return backend.DefaultFontDirectories()
}
