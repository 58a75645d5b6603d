package sdlbackend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func stubSDL(t *testing.T, attrErr error) (quits *int, attrs map[sdl.GLattr]int) {
	t.Helper()
	origInit, origQuit, origSet := sdlInit, sdlQuit, sdlSetAttribute
	t.Cleanup(func() { sdlInit, sdlQuit, sdlSetAttribute = origInit, origQuit, origSet })

	quits = new(int)
	attrs = make(map[sdl.GLattr]int)
	sdlInit = func(uint32) error { return nil }
	sdlQuit = func() { *quits++ }
	sdlSetAttribute = func(attr sdl.GLattr, value int) error {
		if attrErr != nil {
			return attrErr
		}
		attrs[attr] = value
		return nil
	}
	return quits, attrs
}

func TestInitSetsContextAttributes(t *testing.T) {
	quits, attrs := stubSDL(t, nil)

	require.NoError(t, New().Init())
	assert.Zero(t, *quits)
	assert.Equal(t, 3, attrs[sdl.GL_CONTEXT_MAJOR_VERSION])
	assert.Equal(t, int(sdl.GL_CONTEXT_PROFILE_CORE), attrs[sdl.GL_CONTEXT_PROFILE_MASK])
}

func TestInitAttributeFailureQuitsSDL(t *testing.T) {
	attrErr := errors.New("unsupported attribute")
	quits, _ := stubSDL(t, attrErr)

	err := New().Init()
	require.ErrorIs(t, err, attrErr)
	assert.Equal(t, 1, *quits)
}
