package glfwbackend

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// mouseButtons lists the GLFW buttons in Dear ImGui button order.
var mouseButtons = [3]glfw.MouseButton{
	glfw.MouseButtonLeft,
	glfw.MouseButtonRight,
	glfw.MouseButtonMiddle,
}

// mouseButtonIndex maps a GLFW mouse button to its Dear ImGui index, or -1.
func mouseButtonIndex(button glfw.MouseButton) int {
	switch button {
	case glfw.MouseButtonLeft:
		return 0
	case glfw.MouseButtonRight:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	default:
		return -1
	}
}

// keyMap maps Dear ImGui navigation keys to GLFW keys.
var keyMap = map[int]glfw.Key{
	imgui.KeyTab:        glfw.KeyTab,
	imgui.KeyLeftArrow:  glfw.KeyLeft,
	imgui.KeyRightArrow: glfw.KeyRight,
	imgui.KeyUpArrow:    glfw.KeyUp,
	imgui.KeyDownArrow:  glfw.KeyDown,
	imgui.KeyPageUp:     glfw.KeyPageUp,
	imgui.KeyPageDown:   glfw.KeyPageDown,
	imgui.KeyHome:       glfw.KeyHome,
	imgui.KeyEnd:        glfw.KeyEnd,
	imgui.KeyInsert:     glfw.KeyInsert,
	imgui.KeyDelete:     glfw.KeyDelete,
	imgui.KeyBackspace:  glfw.KeyBackspace,
	imgui.KeySpace:      glfw.KeySpace,
	imgui.KeyEnter:      glfw.KeyEnter,
	imgui.KeyEscape:     glfw.KeyEscape,
	imgui.KeyA:          glfw.KeyA,
	imgui.KeyC:          glfw.KeyC,
	imgui.KeyV:          glfw.KeyV,
	imgui.KeyX:          glfw.KeyX,
	imgui.KeyY:          glfw.KeyY,
	imgui.KeyZ:          glfw.KeyZ,
}

// setKeyMapping registers the navigation keys with Dear ImGui. Key events
// are forwarded with their GLFW codes, so the map is the only translation.
func setKeyMapping(io imgui.IO) {
	for imguiKey, glfwKey := range keyMap {
		io.KeyMap(imguiKey, int(glfwKey))
	}
}
