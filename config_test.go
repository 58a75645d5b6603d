package imgapp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/imgapp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imgapp.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := imgapp.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(imgapp.ReferenceDPI), cfg.ReferenceDPI)
	assert.Equal(t, []imgapp.FontConfig{{File: "Arial.ttf", Size: 14}}, cfg.Fonts)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title = "Viewer"
theme = "cyan"
clear_color = [0.0, 0.0, 0.0, 1.0]
reference_dpi = 96.0
verbose = true

[[fonts]]
file = "DejaVuSans.ttf"
size = 16.0
`)

	cfg, err := imgapp.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Viewer", cfg.Title)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, float32(96), cfg.ReferenceDPI)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, imgapp.ThemeCyan, cfg.Theme)
	assert.Equal(t, []imgapp.FontConfig{{File: "DejaVuSans.ttf", Size: 16}}, cfg.Fonts)
	assert.Equal(t, "imgui.ini", cfg.IniFilename, "unset keys keep their defaults")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown key", `titel = "typo"`, "unknown keys: titel"},
		{"syntax", `title = `, "read config"},
		{"reference dpi", `reference_dpi = 0.0`, "reference_dpi must be positive"},
		{"clear color", `clear_color = [2.0, 0.0, 0.0, 1.0]`, "clear_color[0]"},
		{"font size", "[[fonts]]\nfile = \"a.ttf\"\nsize = 0.0", "size must be positive"},
		{"font file", "[[fonts]]\nsize = 12.0", "font entry without file"},
		{"theme", `theme = "neon"`, "unknown theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imgapp.LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := imgapp.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadConfigFontsReplaceDefaults(t *testing.T) {
	cfg, err := imgapp.LoadConfig(writeConfig(t, "[[fonts]]\nfile = \"X.ttf\"\nsize = 20.0\n"))
	require.NoError(t, err)
	assert.Equal(t, []imgapp.FontConfig{{File: "X.ttf", Size: 20}}, cfg.Fonts)

	_, err = imgapp.LoadConfig(writeConfig(t, "[[fonts]]\nfile = \"X.ttf\"\n"))
	require.Error(t, err, "size is not inherited from the default font")
	assert.Contains(t, err.Error(), "size must be positive")

	_, err = imgapp.LoadConfig(writeConfig(t, "[[fonts]]\nsize = 12.0\n"))
	require.Error(t, err, "file is not inherited from the default font")
	assert.Contains(t, err.Error(), "font entry without file")

	cfg, err = imgapp.LoadConfig(writeConfig(t, "fonts = []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Fonts)

	cfg, err = imgapp.LoadConfig(writeConfig(t, `title = "no fonts key"`))
	require.NoError(t, err)
	assert.Equal(t, imgapp.DefaultConfig().Fonts, cfg.Fonts)
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := imgapp.DefaultConfig()
	cfg.ReferenceDPI = -1
	cfg.ClearColor[3] = -0.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference_dpi")
	assert.Contains(t, err.Error(), "clear_color[3]")
}
