package imgapp

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp/backend"
	"github.com/go-theft-auto/imgapp/backend/opengl"
)

// RenderFunc draws the GUI for one frame. width and height are the size of
// the window's client area.
type RenderFunc func(width, height int)

// AfterRenderFunc runs after the GUI has been drawn and before the frame is
// presented.
type AfterRenderFunc func()

// App opens a window, pumps its events and drives Dear ImGui frames.
//
// App is not safe for concurrent use. The windowing libraries require all
// calls to come from the main thread.
type App struct {
	cfg      Config
	platform backend.Platform
	renderer backend.Renderer
	logger   *slog.Logger

	context    *imgui.Context
	window     backend.Window
	clearColor imgui.Vec4
	dpiScaling float32

	onRender    RenderFunc
	afterRender AfterRenderFunc

	initDone     bool
	rendererInit bool
	fontsDirty   bool
	inFrame      bool
	quit         bool
	closed       bool
}

// New creates an App. Unless overridden by options it uses DefaultConfig,
// the platform backend selected at build time and the OpenGL renderer.
func New(opts ...Option) *App {
	a := &App{
		cfg:        DefaultConfig(),
		dpiScaling: 1,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.platform == nil {
		a.platform = newDefaultPlatform()
	}
	if a.renderer == nil {
		a.renderer = opengl.NewRenderer()
	}
	if a.logger == nil {
		a.logger = defaultLogger
	}
	if a.cfg.Verbose {
		SetVerbose(true)
	}
	a.clearColor = a.cfg.clearColor()

	return a
}

// Init performs global initialization: the Dear ImGui context and style,
// the platform library, DPI scaling and the configured fonts. It runs once;
// later calls return nil.
func (a *App) Init() error {
	if a.closed {
		return ErrClosed
	}
	if a.initDone {
		return nil
	}

	enableDPIAwareness(a.logger)

	a.context = imgui.CreateContext(nil)
	imgui.CurrentIO().SetIniFilename(a.cfg.IniFilename)
	if err := applyTheme(a.cfg.Theme); err != nil {
		a.logger.Warn("falling back to the dark theme", "err", err)
		imgui.StyleColorsDark()
	}

	if err := a.platform.Init(); err != nil {
		a.destroyContext()
		return fmt.Errorf("init platform: %w", err)
	}

	dpi, err := a.platform.MainMonitorDPI()
	if err == nil && dpi <= 0 {
		err = fmt.Errorf("reported %v", dpi)
	}
	if err != nil {
		a.platform.Shutdown()
		a.destroyContext()
		return fmt.Errorf("%w: %w", ErrNoDPI, err)
	}

	a.dpiScaling = DPIScaling(dpi, a.cfg.ReferenceDPI)
	imgui.CurrentStyle().ScaleAllSizes(a.dpiScaling)
	a.initDone = true

	a.logger.Debug("initialized", "dpi", dpi, "scaling", a.dpiScaling)

	for _, f := range a.cfg.Fonts {
		if _, err := a.AddFont(f.File, f.Size); err != nil {
			a.logger.Warn("font not loaded, using the default font", "file", f.File, "err", err)
		}
	}

	return nil
}

// OpenDefaultWindow opens the main window at seven eighths of the main
// display's usable area and initializes the graphics library for it.
// An empty title uses the configured one.
func (a *App) OpenDefaultWindow(title string) error {
	if err := a.Init(); err != nil {
		return err
	}
	if a.window != nil {
		return ErrWindowOpen
	}
	if title == "" {
		title = a.cfg.Title
	}

	display, err := a.platform.MainDisplayExtents()
	if err != nil {
		return fmt.Errorf("main display extents: %w", err)
	}
	size := DefaultWindowSize(display)

	win, err := a.platform.OpenWindow(title, size)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	if err := a.renderer.Init(a.platform.GLSLVersion()); err != nil {
		win.Destroy()
		return fmt.Errorf("init renderer: %w", err)
	}

	a.window = win
	a.rendererInit = true
	a.fontsDirty = false
	imgui.CurrentIO().SetClipboard(win.Clipboard())

	a.logger.Debug("window opened", "title", title, "width", size.W, "height", size.H)
	return nil
}

// Window returns the open window, or nil.
func (a *App) Window() backend.Window {
	return a.window
}

// PumpEvents fetches and dispatches pending events. It returns false once
// the application must terminate, and always false without an open window.
func (a *App) PumpEvents() bool {
	if a.window == nil || a.quit {
		return false
	}
	if !a.platform.PumpEvents() {
		a.quit = true
	}
	return !a.quit
}

// Quit makes the next PumpEvents return false.
func (a *App) Quit() {
	a.quit = true
}

// Run pumps events and renders frames until the application is asked to
// terminate.
func (a *App) Run() error {
	if a.window == nil {
		return ErrNoWindow
	}
	for a.PumpEvents() {
		if err := a.UpdateAllWindows(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAllWindows renders one frame of the main window: platform frame,
// GUI frame, clear, render callback, GUI render, after-render callback,
// present.
func (a *App) UpdateAllWindows() error {
	if a.window == nil {
		return ErrNoWindow
	}

	if a.fontsDirty {
		if err := a.renderer.RebuildFontTexture(); err != nil {
			return fmt.Errorf("rebuild font texture: %w", err)
		}
		a.fontsDirty = false
	}

	a.window.NewFrame()
	imgui.NewFrame()
	a.inFrame = true

	framebuffer := a.window.FramebufferSize()
	a.renderer.Clear(a.clearColor, framebuffer)

	content := a.window.ContentSize()
	if a.onRender != nil {
		a.onRender(content.W, content.H)
	}

	imgui.Render()
	a.inFrame = false
	a.renderer.RenderGUI(content, framebuffer, imgui.RenderedDrawData())

	if a.afterRender != nil {
		a.afterRender()
	}

	a.window.Present()
	return nil
}

// OnRender sets the function that draws the GUI each frame.
func (a *App) OnRender(fn RenderFunc) *App {
	if a.onRender != nil {
		a.logger.Debug("replacing render callback")
	}
	a.onRender = fn
	return a
}

// AfterRender sets the function called after the GUI is drawn, before the
// frame is presented.
func (a *App) AfterRender(fn AfterRenderFunc) *App {
	if a.afterRender != nil {
		a.logger.Debug("replacing after-render callback")
	}
	a.afterRender = fn
	return a
}

// ClearColor returns the frame background colour.
func (a *App) ClearColor() imgui.Vec4 {
	return a.clearColor
}

// SetClearColor sets the frame background colour.
func (a *App) SetClearColor(color imgui.Vec4) {
	a.clearColor = color
}

// DPIScaling returns the main monitor DPI divided by the reference DPI.
// It is 1 until Init has run.
func (a *App) DPIScaling() float32 {
	return a.dpiScaling
}

// Screenshot reads back the current framebuffer. Called from an
// AfterRenderFunc it captures the frame about to be presented.
func (a *App) Screenshot() (*image.RGBA, error) {
	if a.window == nil {
		return nil, ErrNoWindow
	}
	return a.renderer.ReadPixels(a.window.FramebufferSize())
}

// Close releases the renderer, the window, the Dear ImGui context and the
// platform, in that order. Only the first call has an effect.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	if a.rendererInit {
		a.renderer.Shutdown()
		a.rendererInit = false
	}
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	a.destroyContext()
	if a.initDone {
		a.platform.Shutdown()
		a.initDone = false
	}
	return nil
}

func (a *App) destroyContext() {
	if a.context == nil {
		return
	}
	a.context.Destroy()
	a.context = nil
}
