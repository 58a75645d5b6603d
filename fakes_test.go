package imgapp_test

import (
	"errors"
	"image"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp/backend"
)

// callLog records backend calls in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

func (l *callLog) reset() {
	l.calls = nil
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakePlatform is a platform that opens no real window.
type fakePlatform struct {
	log *callLog

	initErr error
	dpi     float32
	dpiErr  error
	display backend.Extents
	openErr error

	// pumpResults are returned by PumpEvents in order; once exhausted it
	// reports false.
	pumpResults []bool
	fontDirs    []string

	window      *fakeWindow
	openedTitle string
	openedSize  backend.Extents
}

func newFakePlatform(log *callLog) *fakePlatform {
	return &fakePlatform{
		log:     log,
		dpi:     144,
		display: backend.Extents{W: 1920, H: 1080},
	}
}

func (p *fakePlatform) Init() error {
	p.log.add("platform.Init")
	return p.initErr
}

func (p *fakePlatform) Shutdown() {
	p.log.add("platform.Shutdown")
}

func (p *fakePlatform) MainMonitorDPI() (float32, error) {
	p.log.add("platform.MainMonitorDPI")
	return p.dpi, p.dpiErr
}

func (p *fakePlatform) MainDisplayExtents() (backend.Extents, error) {
	p.log.add("platform.MainDisplayExtents")
	return p.display, nil
}

func (p *fakePlatform) OpenWindow(title string, size backend.Extents) (backend.Window, error) {
	p.log.add("platform.OpenWindow")
	if p.openErr != nil {
		return nil, p.openErr
	}
	p.openedTitle = title
	p.openedSize = size
	p.window = &fakeWindow{
		log:         p.log,
		size:        size,
		framebuffer: backend.Extents{W: size.W * 2, H: size.H * 2},
		clipboard:   &fakeClipboard{},
	}
	return p.window, nil
}

func (p *fakePlatform) PumpEvents() bool {
	p.log.add("platform.PumpEvents")
	if len(p.pumpResults) == 0 {
		return false
	}
	next := p.pumpResults[0]
	p.pumpResults = p.pumpResults[1:]
	return next
}

func (p *fakePlatform) GLSLVersion() string {
	return "#version 150"
}

func (p *fakePlatform) FontDirectories() []string {
	return p.fontDirs
}

type fakeWindow struct {
	log         *callLog
	size        backend.Extents
	framebuffer backend.Extents
	clipboard   *fakeClipboard
	destroyed   int
}

func (w *fakeWindow) NewFrame() {
	w.log.add("window.NewFrame")
	io := imgui.CurrentIO()
	io.SetDisplaySize(imgui.Vec2{X: float32(w.size.W), Y: float32(w.size.H)})
	io.SetDeltaTime(1.0 / 60.0)
}

func (w *fakeWindow) ContentSize() backend.Extents {
	return w.size
}

func (w *fakeWindow) FramebufferSize() backend.Extents {
	return w.framebuffer
}

func (w *fakeWindow) Present() {
	w.log.add("window.Present")
}

func (w *fakeWindow) Clipboard() imgui.Clipboard {
	return w.clipboard
}

func (w *fakeWindow) Destroy() {
	w.log.add("window.Destroy")
	w.destroyed++
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Text() (string, error) {
	return c.text, c.err
}

func (c *fakeClipboard) SetText(text string) {
	c.text = text
}

// fakeRenderer builds the font atlas like a real renderer would, so that
// imgui.NewFrame accepts it, but draws nothing.
type fakeRenderer struct {
	log *callLog

	initErr     error
	glslVersion string
	clearColor  imgui.Vec4
	display     backend.Extents
	framebuffer backend.Extents
	shutdowns   int
}

func (r *fakeRenderer) Init(glslVersion string) error {
	r.log.add("renderer.Init")
	if r.initErr != nil {
		return r.initErr
	}
	r.glslVersion = glslVersion
	imgui.CurrentIO().Fonts().TextureDataRGBA32()
	return nil
}

func (r *fakeRenderer) Clear(color imgui.Vec4, framebuffer backend.Extents) {
	r.log.add("renderer.Clear")
	r.clearColor = color
	r.framebuffer = framebuffer
}

func (r *fakeRenderer) RenderGUI(display, framebuffer backend.Extents, _ imgui.DrawData) {
	r.log.add("renderer.RenderGUI")
	r.display = display
	r.framebuffer = framebuffer
}

func (r *fakeRenderer) RebuildFontTexture() error {
	r.log.add("renderer.RebuildFontTexture")
	imgui.CurrentIO().Fonts().TextureDataRGBA32()
	return nil
}

func (r *fakeRenderer) ReadPixels(framebuffer backend.Extents) (*image.RGBA, error) {
	r.log.add("renderer.ReadPixels")
	if framebuffer.W <= 0 || framebuffer.H <= 0 {
		return nil, errors.New("empty framebuffer")
	}
	return image.NewRGBA(image.Rect(0, 0, framebuffer.W, framebuffer.H)), nil
}

func (r *fakeRenderer) Shutdown() {
	r.log.add("renderer.Shutdown")
	r.shutdowns++
}
