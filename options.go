package imgapp

import (
	"log/slog"

	"github.com/go-theft-auto/imgapp/backend"
)

// Option configures an App.
type Option func(*App)

// WithConfig sets the application settings.
func WithConfig(cfg Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithPlatform replaces the platform backend selected at build time.
func WithPlatform(p backend.Platform) Option {
	return func(a *App) { a.platform = p }
}

// WithRenderer replaces the OpenGL renderer.
func WithRenderer(r backend.Renderer) Option {
	return func(a *App) { a.renderer = r }
}

// WithLogger sets the logger. The default writes text to stderr at the
// level controlled by SetVerbose.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}
