// Package backend defines the seams between the imgapp facade and the
// platform and graphics libraries it drives.
//
// A Platform owns the windowing library (GLFW, SDL2) and the input glue that
// feeds Dear ImGui. A Renderer owns the graphics API binding and draws the
// Dear ImGui draw data. Implementations live in the sub-packages glfwbackend,
// sdlbackend and opengl; they are thin forwarding layers over those libraries.
package backend

import (
	"image"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
)

// Extents is a width and height in pixels.
type Extents struct {
	W, H int
}

// Bounds is a position in virtual screen space plus a size.
type Bounds struct {
	X, Y int
	W, H int
}

// Extents drops the position.
func (b Bounds) Extents() Extents {
	return Extents{W: b.W, H: b.H}
}

// Center returns the top-left corner that centres size within b.
func (b Bounds) Center(size Extents) (x, y int) {
	return b.X + (b.W-size.W)/2, b.Y + (b.H-size.H)/2
}

// Platform is a windowing backend.
type Platform interface {
	// Init performs global initialization of the windowing library.
	Init() error

	// Shutdown releases everything Init acquired.
	Shutdown()

	// MainMonitorDPI returns the pixel density of the primary monitor in dots per inch.
	MainMonitorDPI() (float32, error)

	// MainDisplayExtents returns the usable area of the primary display.
	MainDisplayExtents() (Extents, error)

	// OpenWindow creates a window with a current OpenGL context and hooks its
	// input up to the current Dear ImGui context.
	OpenWindow(title string, size Extents) (Window, error)

	// PumpEvents fetches and dispatches pending events. It returns false once
	// the application has been asked to terminate.
	PumpEvents() bool

	// GLSLVersion returns the shader language version header matching the
	// OpenGL context the platform requests.
	GLSLVersion() string

	// FontDirectories lists the directories searched for relative font names.
	FontDirectories() []string
}

// Window is an open window together with its graphics context.
type Window interface {
	// NewFrame forwards display size, timing and input state to Dear ImGui.
	NewFrame()

	// ContentSize returns the size of the client area in screen coordinates.
	ContentSize() Extents

	// FramebufferSize returns the size of the drawable in pixels.
	FramebufferSize() Extents

	// Present swaps the front and back buffers.
	Present()

	// Clipboard returns the system clipboard bound to this window.
	Clipboard() imgui.Clipboard

	// Destroy releases the graphics context and the window.
	Destroy()
}

// Renderer draws Dear ImGui output with a graphics API.
type Renderer interface {
	// Init loads the graphics API and creates the device objects. A context
	// must be current.
	Init(glslVersion string) error

	// Clear sets the viewport to the framebuffer and clears it.
	Clear(color imgui.Vec4, framebuffer Extents)

	// RenderGUI draws the draw data produced by imgui.Render.
	RenderGUI(display, framebuffer Extents, drawData imgui.DrawData)

	// RebuildFontTexture re-uploads the font atlas after fonts were added.
	RebuildFontTexture() error

	// ReadPixels copies the framebuffer into an image with the origin at the top left.
	ReadPixels(framebuffer Extents) (*image.RGBA, error)

	// Shutdown releases the device objects. A context must still be current.
	Shutdown()
}

// GLSLVersion returns the GLSL version header used for the OpenGL context
// requested on goos: GL 3.2 core with GLSL 150 on darwin, GL 3.0 with GLSL 130
// everywhere else.
func GLSLVersion(goos string) string {
	if goos == "darwin" {
		return "#version 150"
	}
	return "#version 130"
}

// DefaultGLSLVersion is GLSLVersion for the running platform.
func DefaultGLSLVersion() string {
	return GLSLVersion(runtime.GOOS)
}
