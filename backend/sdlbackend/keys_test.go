package sdlbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestMouseButtonIndex(t *testing.T) {
	for i, button := range mouseButtons {
		assert.Equal(t, i, mouseButtonIndex(uint8(button)))
	}
	assert.Equal(t, -1, mouseButtonIndex(sdl.BUTTON_X1))
}

func TestKeyMapIsInjective(t *testing.T) {
	seen := make(map[sdl.Scancode]int, len(keyMap))
	for imguiKey, code := range keyMap {
		prev, dup := seen[code]
		assert.False(t, dup, "scancode %d mapped by Dear ImGui keys %d and %d", code, prev, imguiKey)
		seen[code] = imguiKey
	}
}
