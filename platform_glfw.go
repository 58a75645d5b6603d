//go:build !sdl

package imgapp

import (
	"github.com/go-theft-auto/imgapp/backend"
	"github.com/go-theft-auto/imgapp/backend/glfwbackend"
)

// BackendName names the platform backend compiled in. Build with -tags sdl
// to use SDL2 instead of GLFW.
const BackendName = "glfw"

func newDefaultPlatform() backend.Platform {
	return glfwbackend.New()
}
