package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrthoMatrixMapsDisplayCorners(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)

	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	x, y := apply(0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6, "top left of the GUI is the top of clip space")

	x, y = apply(800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestFlipRows(t *testing.T) {
	tests := []struct {
		name string
		pix  []byte
		want []byte
	}{
		{"three rows", []byte{1, 1, 2, 2, 3, 3}, []byte{3, 3, 2, 2, 1, 1}},
		{"two rows", []byte{1, 2, 3, 4}, []byte{3, 4, 1, 2}},
		{"single row", []byte{9, 8}, []byte{9, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flipRows(tt.pix, 2, len(tt.pix)/2)
			assert.Equal(t, tt.want, tt.pix)
		})
	}
}
