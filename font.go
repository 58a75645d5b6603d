package imgapp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
	"golang.org/x/image/font/sfnt"
)

// AddFont loads a TrueType or OpenType font into the Dear ImGui atlas at size
// scaled by the DPI scaling factor. Relative names are looked up in the
// platform's font directories first, then relative to the working directory.
//
// Fonts added after the window opened are uploaded before the next frame.
// The atlas is locked while a frame is built, so calls from a RenderFunc fail
// with ErrFrameActive; an AfterRenderFunc may add fonts.
func (a *App) AddFont(filename string, size float32) (imgui.Font, error) {
	if err := a.Init(); err != nil {
		return imgui.DefaultFont, err
	}
	if a.inFrame {
		return imgui.DefaultFont, fmt.Errorf("add font %s: %w", filename, ErrFrameActive)
	}
	if size <= 0 {
		return imgui.DefaultFont, fmt.Errorf("font %s: size must be positive, got %v", filename, size)
	}

	path, err := resolveFontPath(filename, a.platform.FontDirectories())
	if err != nil {
		return imgui.DefaultFont, err
	}
	name, err := validateFont(path)
	if err != nil {
		return imgui.DefaultFont, err
	}

	pixels := fontPixelSize(a.dpiScaling, size)
	font := imgui.CurrentIO().Fonts().AddFontFromFileTTF(path, pixels)
	if font == imgui.DefaultFont {
		return imgui.DefaultFont, fmt.Errorf("%w: %s rejected by the font atlas", ErrInvalidFont, path)
	}
	if a.rendererInit {
		a.fontsDirty = true
	}

	a.logger.Debug("font added", "name", name, "path", path, "pixels", pixels)
	return font, nil
}

// resolveFontPath finds filename. Absolute names are used as is. Relative
// names are joined with each directory, then searched for below it, and
// finally tried relative to the working directory.
func resolveFontPath(filename string, dirs []string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: empty file name", ErrFontNotFound)
	}
	if filepath.IsAbs(filename) {
		if isFile(filename) {
			return filename, nil
		}
		return "", fmt.Errorf("%w: %s", ErrFontNotFound, filename)
	}

	for _, dir := range dirs {
		if candidate := filepath.Join(dir, filename); isFile(candidate) {
			return candidate, nil
		}
	}
	// Font directories are nested on Linux and macOS.
	if filepath.Base(filename) == filename {
		for _, dir := range dirs {
			if found := findBelow(dir, filename); found != "" {
				return found, nil
			}
		}
	}
	if isFile(filename) {
		return filename, nil
	}
	return "", fmt.Errorf("%w: %s", ErrFontNotFound, filename)
}

var errFound = errors.New("found")

func findBelow(dir, name string) string {
	var found string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped.
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = path
			return errFound
		}
		return nil
	})
	return found
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// validateFont parses the file so that a corrupt font is reported as an
// error instead of tripping an assertion inside the atlas builder. It returns
// the font's full name when the file carries one.
func validateFont(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFontNotFound, err)
	}

	var font *sfnt.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") || strings.EqualFold(filepath.Ext(path), ".otc") {
		collection, err := sfnt.ParseCollection(data)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidFont, path, err)
		}
		font, err = collection.Font(0)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidFont, path, err)
		}
	} else {
		font, err = sfnt.Parse(data)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidFont, path, err)
		}
	}

	name, err := font.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return filepath.Base(path), nil
	}
	return name, nil
}
