// Package imop implements the Porter-Duff source-over composition
// used for mixing a graphic element with its backdrop.
//
// It is used to flatten the transparent pixels left by the eraser
// over the canvas background before the buffer is exported to a format
// without an alpha channel.
package imop

import (
	"image"
	"image/color"
	"math"
)

// Over composes src over the dst backdrop into a new image covering
// the intersection of both bounds.
func Over(src, dst *image.NRGBA) *image.NRGBA {
	rect := src.Bounds().Intersect(dst.Bounds())
	out := image.NewNRGBA(rect)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			out.SetNRGBA(x, y, over(src.NRGBAAt(x, y), dst.NRGBAAt(x, y)))
		}
	}
	return out
}

// Flatten composes img over an opaque backdrop of color bg.
func Flatten(img *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	backdrop := image.NewNRGBA(img.Bounds())
	for i := 0; i < len(backdrop.Pix); i += 4 {
		backdrop.Pix[i+0] = bg.R
		backdrop.Pix[i+1] = bg.G
		backdrop.Pix[i+2] = bg.B
		backdrop.Pix[i+3] = bg.A
	}
	return Over(img, backdrop)
}

// over applies the source-over formula to a single pixel pair.
// The channels are premultiplied for the computation and divided back afterwards.
func over(s, b color.NRGBA) color.NRGBA {
	as, ab := float64(s.A)/255, float64(b.A)/255
	fb := 1 - as

	an := as + ab*fb
	if an <= 0 {
		return color.NRGBA{}
	}
	ch := func(cs, cb uint8) uint8 {
		v := (float64(cs)/255*as + float64(cb)/255*ab*fb) / an
		return uint8(math.Round(math.Min(v, 1) * 255))
	}
	return color.NRGBA{
		R: ch(s.R, b.R),
		G: ch(s.G, b.G),
		B: ch(s.B, b.B),
		A: uint8(math.Round(math.Min(an, 1) * 255)),
	}
}
