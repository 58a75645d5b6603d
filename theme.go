package imgapp

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
)

// Built-in colour themes.
const (
	ThemeDark    = "dark"
	ThemeLight   = "light"
	ThemeClassic = "classic"
	ThemeCyan    = "cyan" // dark with cyan and yellow accents
)

// themeColor is one entry of a palette applied on top of a base theme.
type themeColor struct {
	id    imgui.StyleColorID
	color imgui.Vec4
}

// cyanPalette overrides the dark theme. Highlights and borders are cyan,
// check marks are yellow.
var cyanPalette = []themeColor{
	{imgui.StyleColorText, rgba(255, 255, 255, 255)},
	{imgui.StyleColorTextDisabled, rgba(128, 128, 128, 255)},
	{imgui.StyleColorWindowBg, rgba(0, 0, 0, 220)},
	{imgui.StyleColorPopupBg, rgba(10, 10, 10, 250)},
	{imgui.StyleColorBorder, rgba(0, 100, 150, 255)},

	{imgui.StyleColorTitleBg, rgba(0, 60, 90, 255)},
	{imgui.StyleColorTitleBgActive, rgba(0, 80, 120, 255)},

	{imgui.StyleColorButton, rgba(40, 40, 40, 255)},
	{imgui.StyleColorButtonHovered, rgba(60, 80, 100, 255)},
	{imgui.StyleColorButtonActive, rgba(0, 150, 200, 255)},

	{imgui.StyleColorHeader, rgba(0, 120, 180, 255)},
	{imgui.StyleColorHeaderHovered, rgba(50, 70, 90, 255)},

	{imgui.StyleColorFrameBg, rgba(20, 20, 20, 255)},
	{imgui.StyleColorFrameBgHovered, rgba(30, 40, 50, 255)},
	{imgui.StyleColorFrameBgActive, rgba(0, 120, 180, 255)},

	{imgui.StyleColorSeparator, rgba(0, 150, 200, 128)},

	{imgui.StyleColorTableHeaderBg, rgba(0, 80, 120, 255)},
	{imgui.StyleColorTableRowBgAlt, rgba(20, 30, 40, 255)},

	{imgui.StyleColorScrollbarBg, rgba(20, 20, 20, 255)},
	{imgui.StyleColorScrollbarGrab, rgba(0, 100, 150, 255)},
	{imgui.StyleColorScrollbarGrabHovered, rgba(0, 150, 200, 255)},

	{imgui.StyleColorSliderGrab, rgba(0, 150, 200, 255)},
	{imgui.StyleColorSliderGrabActive, rgba(0, 200, 255, 255)},
	{imgui.StyleColorCheckMark, rgba(255, 200, 0, 255)},
	{imgui.StyleColorNavHighlight, rgba(0, 200, 255, 255)},
}

// applyTheme sets the colours of the current Dear ImGui style. An empty name
// selects the dark theme.
func applyTheme(name string) error {
	switch name {
	case "", ThemeDark:
		imgui.StyleColorsDark()
	case ThemeLight:
		imgui.StyleColorsLight()
	case ThemeClassic:
		imgui.StyleColorsClassic()
	case ThemeCyan:
		imgui.StyleColorsDark()
		style := imgui.CurrentStyle()
		for _, c := range cyanPalette {
			style.SetColor(c.id, c.color)
		}
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

// rgba converts 8-bit channels to a normalized colour.
func rgba(r, g, b, a uint8) imgui.Vec4 {
	return imgui.Vec4{
		X: float32(r) / 255,
		Y: float32(g) / 255,
		Z: float32(b) / 255,
		W: float32(a) / 255,
	}
}
