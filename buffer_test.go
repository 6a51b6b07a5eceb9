package pixpaint

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func TestBuffer_GetSet(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(4, 3, white)
	assert.Equal(4, buf.Width())
	assert.Equal(3, buf.Height())

	c, err := buf.Get(image.Pt(3, 2))
	assert.NoError(err)
	assert.Equal(white, c)

	assert.NoError(buf.Set(image.Pt(3, 2), red))
	c, _ = buf.Get(image.Pt(3, 2))
	assert.Equal(red, c)

	// neighbours are untouched
	c, _ = buf.Get(image.Pt(2, 2))
	assert.Equal(white, c)
}

func TestBuffer_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(4, 3, white)
	before := buf.Snapshot()

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {10, 10}} {
		_, err := buf.Get(p)
		assert.ErrorIs(err, ErrOutOfBounds, "get %v", p)
		assert.ErrorIs(buf.Set(p, red), ErrOutOfBounds, "set %v", p)
	}
	assert.Equal(before.Pix, buf.Image().Pix)
}

func TestBuffer_SnapshotIsDetached(t *testing.T) {
	buf := NewBuffer(2, 2, white)
	snap := buf.Snapshot()

	buf.Set(image.Pt(0, 0), red)
	assert.Equal(t, white, snap.NRGBAAt(0, 0))

	buf.Clear(blue)
	c, _ := buf.Get(image.Pt(1, 1))
	assert.Equal(t, blue, c)
}
