package imgapp

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme(t *testing.T) {
	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	require.NoError(t, applyTheme(ThemeCyan))
	style := imgui.CurrentStyle()
	for _, c := range cyanPalette {
		assert.Equal(t, c.color, style.Color(c.id))
	}

	require.NoError(t, applyTheme(ThemeDark))
	assert.NotEqual(t, rgba(0, 150, 200, 255), style.Color(imgui.StyleColorButtonActive))

	for _, name := range []string{"", ThemeLight, ThemeClassic} {
		assert.NoError(t, applyTheme(name), name)
	}
	assert.Error(t, applyTheme("neon"))
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, imgui.Vec4{X: 1, Y: 0, Z: 0, W: 1}, rgba(255, 0, 0, 255))
	assert.InDelta(t, 0.5, rgba(0, 0, 0, 128).W, 0.01)
}
