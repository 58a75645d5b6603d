// Package opengl provides the OpenGL 3 renderer for Dear ImGui draw data.
package opengl

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imgapp/backend"
)

// Renderer draws Dear ImGui output with OpenGL.
type Renderer struct {
	shader      uint32
	vao, vbo    uint32
	ebo         uint32
	fontTex     uint32
	projLoc     int32
	texLoc      int32
	posLoc      uint32
	uvLoc       uint32
	colorLoc    uint32
	initialized bool
}

// Vertex shader body. The GLSL version header is prepended at Init.
const vertexShaderSource = `
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

// Fragment shader body. Dear ImGui atlases are RGBA with white glyphs, so the
// texture always modulates the vertex colour.
const fragmentShaderSource = `
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;

void main() {
    Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// NewRenderer creates a renderer. No OpenGL call is made until Init.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Init loads the OpenGL entry points for the current context and creates
// the shader program, buffers and font texture.
func (r *Renderer) Init(glslVersion string) error {
	if r.initialized {
		return errors.New("opengl: renderer already initialized")
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL loader: %w", err)
	}

	var err error
	r.shader, err = createShaderProgram(
		glslVersion+"\n"+vertexShaderSource+"\x00",
		glslVersion+"\n"+fragmentShaderSource+"\x00",
	)
	if err != nil {
		return fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("ProjMtx\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("Texture\x00"))
	r.posLoc = uint32(gl.GetAttribLocation(r.shader, gl.Str("Position\x00")))
	r.uvLoc = uint32(gl.GetAttribLocation(r.shader, gl.Str("UV\x00")))
	r.colorLoc = uint32(gl.GetAttribLocation(r.shader, gl.Str("Color\x00")))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// The element buffer binding is VAO state.
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	stride := int32(vertexSize)

	gl.EnableVertexAttribArray(r.posLoc)
	gl.VertexAttribPointerWithOffset(r.posLoc, 2, gl.FLOAT, false, stride, uintptr(posOffset))
	gl.EnableVertexAttribArray(r.uvLoc)
	gl.VertexAttribPointerWithOffset(r.uvLoc, 2, gl.FLOAT, false, stride, uintptr(uvOffset))
	// Color attribute (normalized uint8x4)
	gl.EnableVertexAttribArray(r.colorLoc)
	gl.VertexAttribPointerWithOffset(r.colorLoc, 4, gl.UNSIGNED_BYTE, true, stride, uintptr(colOffset))

	gl.BindVertexArray(0)

	r.createFontTexture()
	r.initialized = true

	return nil
}

// FontTextureID returns the OpenGL texture ID for the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Clear sets the viewport to the whole framebuffer and clears colour and depth.
func (r *Renderer) Clear(color imgui.Vec4, framebuffer backend.Extents) {
	gl.Viewport(0, 0, int32(framebuffer.W), int32(framebuffer.H))
	gl.ClearColor(color.X, color.Y, color.Z, color.W)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// RenderGUI draws the Dear ImGui draw data. display is the size in GUI
// coordinates, framebuffer the size in pixels.
func (r *Renderer) RenderGUI(display, framebuffer backend.Extents, drawData imgui.DrawData) {
	if !r.initialized || display.W <= 0 || display.H <= 0 ||
		framebuffer.W <= 0 || framebuffer.H <= 0 {
		return
	}

	scaleX := float32(framebuffer.W) / float32(display.W)
	scaleY := float32(framebuffer.H) / float32(display.H)
	drawData.ScaleClipRects(imgui.Vec2{X: scaleX, Y: scaleY})

	// Save GL state
	var lastProgram, lastTexture, lastArrayBuffer, lastVertexArray int32
	var lastBlendSrc, lastBlendDst int32
	var lastViewport, lastScissorBox [4]int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVertexArray)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.Viewport(0, 0, int32(framebuffer.W), int32(framebuffer.H))
	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(display.W), float32(display.H), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		var indexOffset uintptr
		for _, cmd := range list.Commands() {
			count := cmd.ElementCount()
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}

			// Clip rectangle in framebuffer pixels, Y flipped for OpenGL.
			clip := cmd.ClipRect()
			clipX := int32(clip.X)
			clipY := int32(framebuffer.H) - int32(clip.W)
			clipW := int32(clip.Z - clip.X)
			clipH := int32(clip.W - clip.Y)
			if count > 0 && clipW > 0 && clipH > 0 {
				gl.Scissor(clipX, clipY, clipW, clipH)
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), drawType, indexOffset)
			}
			indexOffset += uintptr(count * indexSize)
		}
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindVertexArray(uint32(lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
}

// RebuildFontTexture re-uploads the font atlas, e.g. after fonts were added.
func (r *Renderer) RebuildFontTexture() error {
	if !r.initialized {
		return errors.New("opengl: renderer not initialized")
	}
	r.deleteFontTexture()
	r.createFontTexture()
	return nil
}

// ReadPixels reads the framebuffer into an RGBA image, flipped so that the
// first row is the top of the window.
func (r *Renderer) ReadPixels(framebuffer backend.Extents) (*image.RGBA, error) {
	if !r.initialized {
		return nil, errors.New("opengl: renderer not initialized")
	}
	if framebuffer.W <= 0 || framebuffer.H <= 0 {
		return nil, fmt.Errorf("opengl: empty framebuffer %dx%d", framebuffer.W, framebuffer.H)
	}

	img := image.NewRGBA(image.Rect(0, 0, framebuffer.W, framebuffer.H))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(framebuffer.W), int32(framebuffer.H), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	flipRows(img.Pix, framebuffer.W*4, framebuffer.H)
	return img, nil
}

// Shutdown releases OpenGL resources. The context must still be current.
func (r *Renderer) Shutdown() {
	if !r.initialized {
		return
	}
	r.deleteFontTexture()
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
	r.initialized = false
}

// createFontTexture uploads the Dear ImGui font atlas and hands its ID back
// to the atlas.
func (r *Renderer) createFontTexture() {
	fonts := imgui.CurrentIO().Fonts()
	atlas := fonts.TextureDataRGBA32()

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(atlas.Width), int32(atlas.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, atlas.Pixels)

	fonts.SetTextureID(imgui.TextureID(r.fontTex))

	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
}

func (r *Renderer) deleteFontTexture() {
	if r.fontTex == 0 {
		return
	}
	gl.DeleteTextures(1, &r.fontTex)
	imgui.CurrentIO().Fonts().SetTextureID(0)
	r.fontTex = 0
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
