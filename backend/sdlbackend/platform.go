// Package sdlbackend implements the imgapp platform backend on top of SDL2.
package sdlbackend

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/imgapp/backend"
)

// mainDisplay is the display index used for DPI and bounds queries.
const mainDisplay = 0

// Platform is the SDL2 windowing backend.
type Platform struct {
	window *Window
}

// New creates an SDL platform. Nothing is initialized until Init.
func New() *Platform {
	return &Platform{}
}

// SDL entry points used by Init, replaced in tests.
var (
	sdlInit         = sdl.Init
	sdlQuit         = sdl.Quit
	sdlSetAttribute = sdl.GLSetAttribute
)

// Init initializes SDL and sets the OpenGL context attributes. SDL is shut
// down again when an attribute is rejected.
func (p *Platform) Init() error {
	if err := sdlInit(sdl.INIT_VIDEO | sdl.INIT_TIMER | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_FLAGS, 0},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 0},
	}
	if runtime.GOOS == "darwin" {
		attrs[0].value = sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
		attrs[3].value = 2
	}
	for _, a := range attrs {
		if err := sdlSetAttribute(a.attr, a.value); err != nil {
			sdlQuit()
			return fmt.Errorf("sdl gl attribute %d: %w", a.attr, err)
		}
	}
	return nil
}

// Shutdown quits SDL.
func (p *Platform) Shutdown() {
	sdl.Quit()
}

// MainMonitorDPI returns the diagonal DPI of the main display.
func (p *Platform) MainMonitorDPI() (float32, error) {
	ddpi, _, _, err := sdl.GetDisplayDPI(mainDisplay)
	if err != nil {
		return 0, fmt.Errorf("dpi of display %d: %w", mainDisplay, err)
	}
	return ddpi, nil
}

// MainDisplayExtents returns the usable bounds of the main display.
func (p *Platform) MainDisplayExtents() (backend.Extents, error) {
	bounds, err := sdl.GetDisplayUsableBounds(mainDisplay)
	if err != nil {
		return backend.Extents{}, fmt.Errorf("bounds of display %d: %w", mainDisplay, err)
	}
	usable := backend.Bounds{X: int(bounds.X), Y: int(bounds.Y), W: int(bounds.W), H: int(bounds.H)}
	return usable.Extents(), nil
}

// OpenWindow creates a centred, resizable, high-DPI window with an OpenGL
// context and enables vsync.
func (p *Platform) OpenWindow(title string, size backend.Extents) (backend.Window, error) {
	if p.window != nil {
		return nil, errors.New("sdl: only one window is supported")
	}

	for attr, value := range map[sdl.GLattr]int{
		sdl.GL_DOUBLEBUFFER: 1,
		sdl.GL_DEPTH_SIZE:   24,
		sdl.GL_STENCIL_SIZE: 8,
	} {
		if err := sdl.GLSetAttribute(attr, value); err != nil {
			return nil, fmt.Errorf("sdl gl attribute %d: %w", attr, err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(size.W), int32(size.H), flags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	glContext, err := win.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("create gl context: %w", err)
	}
	if err := win.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		_ = win.Destroy()
		return nil, fmt.Errorf("make gl context current: %w", err)
	}
	_ = sdl.GLSetSwapInterval(1)

	id, err := win.GetID()
	if err != nil {
		sdl.GLDeleteContext(glContext)
		_ = win.Destroy()
		return nil, fmt.Errorf("window id: %w", err)
	}

	p.window = newWindow(win, glContext, id, imgui.CurrentIO(), func() { p.window = nil })
	return p.window, nil
}

// PumpEvents drains the event queue, forwarding input to Dear ImGui.
// It returns false on a quit event or when the open window is closed.
func (p *Platform) PumpEvents() bool {
	done := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if p.window != nil {
			p.window.processEvent(event)
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			done = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE && p.window != nil && e.WindowID == p.window.id {
				done = true
			}
		}
	}
	return !done
}

// GLSLVersion matches the attributes chosen in Init.
func (p *Platform) GLSLVersion() string {
	return backend.DefaultGLSLVersion()
}

// FontDirectories returns the system font directories.
func (p *Platform) FontDirectories() []string {
	return backend.DefaultFontDirectories()
}
