package sdlbackend

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// mouseButtons lists the SDL buttons in Dear ImGui button order.
var mouseButtons = [3]uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE}

// mouseButtonIndex maps an SDL mouse button to its Dear ImGui index, or -1.
func mouseButtonIndex(button uint8) int {
	switch button {
	case sdl.BUTTON_LEFT:
		return 0
	case sdl.BUTTON_RIGHT:
		return 1
	case sdl.BUTTON_MIDDLE:
		return 2
	default:
		return -1
	}
}

// keyMap maps Dear ImGui navigation keys to SDL scancodes.
var keyMap = map[int]sdl.Scancode{
	imgui.KeyTab:        sdl.SCANCODE_TAB,
	imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
	imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
	imgui.KeyUpArrow:    sdl.SCANCODE_UP,
	imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
	imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
	imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
	imgui.KeyHome:       sdl.SCANCODE_HOME,
	imgui.KeyEnd:        sdl.SCANCODE_END,
	imgui.KeyInsert:     sdl.SCANCODE_INSERT,
	imgui.KeyDelete:     sdl.SCANCODE_DELETE,
	imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
	imgui.KeySpace:      sdl.SCANCODE_SPACE,
	imgui.KeyEnter:      sdl.SCANCODE_RETURN,
	imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
	imgui.KeyA:          sdl.SCANCODE_A,
	imgui.KeyC:          sdl.SCANCODE_C,
	imgui.KeyV:          sdl.SCANCODE_V,
	imgui.KeyX:          sdl.SCANCODE_X,
	imgui.KeyY:          sdl.SCANCODE_Y,
	imgui.KeyZ:          sdl.SCANCODE_Z,
}

// setKeyMapping registers the navigation keys with Dear ImGui. Keyboard
// events are forwarded by scancode.
func setKeyMapping(io imgui.IO) {
	for imguiKey, scancode := range keyMap {
		io.KeyMap(imguiKey, int(scancode))
	}
}
