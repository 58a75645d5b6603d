package imgapp

import "errors"

var (
	// ErrNoWindow is returned when a frame is requested before a window is open.
	ErrNoWindow = errors.New("imgapp: no window open")

	// ErrWindowOpen is returned when the default window is opened twice.
	ErrWindowOpen = errors.New("imgapp: window already open")

	// ErrNoDPI is returned when the main monitor reports no usable DPI.
	ErrNoDPI = errors.New("imgapp: no DPI information for the main monitor")

	// ErrFontNotFound is returned when a font file cannot be located.
	ErrFontNotFound = errors.New("imgapp: font not found")

	// ErrInvalidFont is returned when a font file cannot be parsed or loaded.
	ErrInvalidFont = errors.New("imgapp: invalid font")

	// ErrFrameActive is returned by AddFont while a frame is being built.
	ErrFrameActive = errors.New("imgapp: font atlas is locked during a frame")

	// ErrClosed is returned by operations on a closed App.
	ErrClosed = errors.New("imgapp: app closed")
)
