package imgapp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestResolveFontPath(t *testing.T) {
	root := t.TempDir()
	flat := filepath.Join(root, "flat")
	nested := filepath.Join(root, "nested", "truetype", "go")
	require.NoError(t, os.MkdirAll(flat, 0o755))
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(flat, "Flat.ttf"), goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "Deep.ttf"), goregular.TTF, 0o644))

	dirs := []string{flat, filepath.Join(root, "nested")}

	got, err := resolveFontPath("Flat.ttf", dirs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(flat, "Flat.ttf"), got)

	got, err = resolveFontPath("deep.TTF", dirs)
	require.NoError(t, err, "nested lookup ignores case")
	assert.Equal(t, filepath.Join(nested, "Deep.ttf"), got)

	abs := filepath.Join(flat, "Flat.ttf")
	got, err = resolveFontPath(abs, nil)
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	_, err = resolveFontPath("Missing.ttf", dirs)
	assert.ErrorIs(t, err, ErrFontNotFound)

	_, err = resolveFontPath("sub/Deep.ttf", dirs)
	assert.ErrorIs(t, err, ErrFontNotFound, "paths with directories are not searched for")
}

func TestValidateFont(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "go.ttf")
	require.NoError(t, os.WriteFile(good, goregular.TTF, 0o644))

	name, err := validateFont(good)
	require.NoError(t, err)
	assert.Contains(t, name, "Go")

	bad := filepath.Join(dir, "bad.ttc")
	require.NoError(t, os.WriteFile(bad, []byte{0, 1, 2, 3}, 0o644))
	_, err = validateFont(bad)
	assert.ErrorIs(t, err, ErrInvalidFont)

	_, err = validateFont(filepath.Join(dir, "missing.ttf"))
	assert.ErrorIs(t, err, ErrFontNotFound)
}
