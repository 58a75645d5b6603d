//go:build sdl

package imgapp

import (
	"github.com/go-theft-auto/imgapp/backend"
	"github.com/go-theft-auto/imgapp/backend/sdlbackend"
)

// BackendName names the platform backend compiled in.
const BackendName = "sdl"

func newDefaultPlatform() backend.Platform {
	return sdlbackend.New()
}
