package imgapp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/inkyblackness/imgui-go/v4"
)

// ReferenceDPI is the pixel density at which the DPI scaling factor is 1.
const ReferenceDPI = 72

// FontConfig names a font loaded at initialization.
type FontConfig struct {
	File string  `toml:"file"`
	Size float32 `toml:"size"`
}

// Config holds the application shell settings. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	// Title is the default window caption.
	Title string `toml:"title"`

	// ClearColor is the RGBA background colour of every frame.
	ClearColor [4]float32 `toml:"clear_color"`

	// ReferenceDPI is the monitor DPI that maps to a scaling factor of 1.
	ReferenceDPI float32 `toml:"reference_dpi"`

	// Theme selects the colour theme: dark, light, classic or cyan.
	Theme string `toml:"theme"`

	// IniFilename is where Dear ImGui persists window layout. Empty disables it.
	IniFilename string `toml:"ini_filename"`

	// Fonts are loaded at initialization. A font that fails to load is
	// logged and skipped; Dear ImGui falls back to its built-in font.
	Fonts []FontConfig `toml:"fonts"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:        "Dear ImGui application",
		ClearColor:   [4]float32{0.45, 0.55, 0.60, 1.00},
		ReferenceDPI: ReferenceDPI,
		Theme:        ThemeDark,
		IniFilename:  "imgui.ini",
		Fonts:        []FontConfig{{File: "Arial.ttf", Size: 14}},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are an
// error so that typos do not silently fall back to defaults. A fonts array in
// the file replaces the default fonts entirely.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	// The decoder fills existing slice elements in place.
	cfg.Fonts = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if !md.IsDefined("fonts") {
		cfg.Fonts = DefaultConfig().Fonts
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.ReferenceDPI <= 0 {
		errs = append(errs, fmt.Errorf("reference_dpi must be positive, got %v", c.ReferenceDPI))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] must be within [0, 1], got %v", i, v))
		}
	}
	switch c.Theme {
	case "", ThemeDark, ThemeLight, ThemeClassic, ThemeCyan:
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	for _, f := range c.Fonts {
		if f.File == "" {
			errs = append(errs, errors.New("font entry without file"))
		}
		if f.Size <= 0 {
			errs = append(errs, fmt.Errorf("font %q: size must be positive, got %v", f.File, f.Size))
		}
	}
	return errors.Join(errs...)
}

func (c Config) clearColor() imgui.Vec4 {
	return imgui.Vec4{X: c.ClearColor[0], Y: c.ClearColor[1], Z: c.ClearColor[2], W: c.ClearColor[3]}
}
