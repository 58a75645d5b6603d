package imgapp

import (
	"math"

	"github.com/go-theft-auto/imgapp/backend"
)

// DPIScaling returns dpi relative to reference. A non-positive reference
// falls back to ReferenceDPI.
func DPIScaling(dpi, reference float32) float32 {
	if reference <= 0 {
		reference = ReferenceDPI
	}
	return dpi / reference
}

// DefaultWindowSize returns seven eighths of the display area, rounded down.
func DefaultWindowSize(display backend.Extents) backend.Extents {
	return backend.Extents{
		W: display.W * 7 / 8,
		H: display.H * 7 / 8,
	}
}

// fontPixelSize scales a nominal font size and rounds it to whole pixels.
func fontPixelSize(scaling, size float32) float32 {
	return float32(math.Round(float64(scaling * size)))
}
