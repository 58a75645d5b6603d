package backend

import (
	"os"
	"path/filepath"
	"runtime"
)

// SystemFontDirectories returns the usual font directories for goos.
// Platforms that have no better source of truth return this from FontDirectories.
func SystemFontDirectories(goos string) []string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		var dirs []string
		if data := os.Getenv("XDG_DATA_HOME"); data != "" {
			dirs = append(dirs, filepath.Join(data, "fonts"))
		} else if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
	}
}

// DefaultFontDirectories is SystemFontDirectories for the running platform.
func DefaultFontDirectories() []string {
	return SystemFontDirectories(runtime.GOOS)
}
