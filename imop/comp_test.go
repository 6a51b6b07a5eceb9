package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Over(t *testing.T) {
	assert := assert.New(t)

	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	out := Over(source, backdrop)
	assert.Equal(rect, out.Bounds())
	// only backdrop, only source, overlapping area and neither
	assert.Equal(magenta, out.NRGBAAt(9, 0))
	assert.Equal(cyan, out.NRGBAAt(0, 9))
	assert.Equal(cyan, out.NRGBAAt(5, 5))
	assert.Equal(transparent, out.NRGBAAt(0, 0))
}

func TestComp_OverBlendsTranslucentSource(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	halfRed := color.NRGBA{R: 255, A: 128}

	assert.Equal(t, color.NRGBA{R: 255, G: 127, B: 127, A: 255}, over(halfRed, white))
	assert.Equal(t, halfRed, over(halfRed, color.NRGBA{}))
}

func TestComp_Flatten(t *testing.T) {
	assert := assert.New(t)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})

	flat := Flatten(img, white)
	assert.Equal(red, flat.NRGBAAt(0, 0))
	assert.Equal(white, flat.NRGBAAt(1, 0))
}
