package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDF_WritesDocument(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{R: 0xff, A: 0xff}}, image.Point{}, draw.Src)

	var out bytes.Buffer
	require.NoError(t, PDF(&out, img, "canvas"))

	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out.String(), "%%EOF")
	// one point per pixel, landscape
	assert.Contains(t, out.String(), "/MediaBox [0 0 40.00 20.00]")
}

func TestPDF_RejectsEmptyImage(t *testing.T) {
	err := PDF(&bytes.Buffer{}, image.NewNRGBA(image.Rectangle{}), "empty")
	assert.Error(t, err)
}
