package backend_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/imgapp/backend"
)

func TestGLSLVersion(t *testing.T) {
	assert.Equal(t, "#version 150", backend.GLSLVersion("darwin"))
	assert.Equal(t, "#version 130", backend.GLSLVersion("linux"))
	assert.Equal(t, "#version 130", backend.GLSLVersion("windows"))
}

func TestBounds(t *testing.T) {
	b := backend.Bounds{X: 100, Y: 40, W: 1920, H: 1040}
	assert.Equal(t, backend.Extents{W: 1920, H: 1040}, b.Extents())

	x, y := b.Center(backend.Extents{W: 1680, H: 910})
	assert.Equal(t, 220, x)
	assert.Equal(t, 105, y)
}

func TestSystemFontDirectories(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("WINDIR", `C:\Windows`)
	t.Setenv("LOCALAPPDATA", "")

	linux := backend.SystemFontDirectories("linux")
	assert.Equal(t, []string{
		filepath.Join("/home/alice", ".local", "share", "fonts"),
		filepath.Join("/home/alice", ".fonts"),
		"/usr/local/share/fonts",
		"/usr/share/fonts",
	}, linux)

	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/data", "fonts"), backend.SystemFontDirectories("linux")[0])

	darwin := backend.SystemFontDirectories("darwin")
	assert.Contains(t, darwin, "/System/Library/Fonts")
	assert.Contains(t, darwin, filepath.Join("/home/alice", "Library", "Fonts"))

	windows := backend.SystemFontDirectories("windows")
	assert.Equal(t, []string{filepath.Join(`C:\Windows`, "Fonts")}, windows)
}
