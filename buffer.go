package pixpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ErrOutOfBounds is returned when a point lies outside of the buffer.
var ErrOutOfBounds = errors.New("point out of bounds")

// Buffer is a rectangular grid of NRGBA samples with its origin at (0, 0).
// Every access is bounds checked; the backing store is never reallocated.
type Buffer struct {
	img *image.NRGBA
}

// NewBuffer creates a width x height buffer filled with the bg color.
func NewBuffer(width, height int, bg color.NRGBA) *Buffer {
	b := &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
	b.Clear(bg)
	return b
}

// NewBufferFromImage copies any image into a new buffer, moving its min point to (0, 0).
func NewBufferFromImage(img image.Image) *Buffer {
	return &Buffer{img: imaging.Clone(img)}
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

// In reports whether p lies inside the buffer.
func (b *Buffer) In(p image.Point) bool { return p.In(b.img.Rect) }

// Get returns the color stored at p.
func (b *Buffer) Get(p image.Point) (color.NRGBA, error) {
	if !b.In(p) {
		return color.NRGBA{}, fmt.Errorf("get %v: %w", p, ErrOutOfBounds)
	}
	return b.at(b.img.PixOffset(p.X, p.Y)), nil
}

// Set writes c at p.
func (b *Buffer) Set(p image.Point, c color.NRGBA) error {
	if !b.In(p) {
		return fmt.Errorf("set %v: %w", p, ErrOutOfBounds)
	}
	b.put(b.img.PixOffset(p.X, p.Y), c)
	return nil
}

// Clear paints the whole buffer with c.
func (b *Buffer) Clear(c color.NRGBA) {
	draw.Draw(b.img, b.img.Rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Snapshot returns a deep copy of the current buffer state.
func (b *Buffer) Snapshot() *image.NRGBA {
	return imaging.Clone(b.img)
}

// Image exposes the live backing image. Renderers may read from it,
// writes bypass the bounds checks and should go through Set.
func (b *Buffer) Image() *image.NRGBA {
	return b.img
}

// at reads the sample at pixel offset i. The caller checks the bounds.
func (b *Buffer) at(i int) color.NRGBA {
	s := b.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// put writes the sample at pixel offset i. The caller checks the bounds.
func (b *Buffer) put(i int, c color.NRGBA) {
	s := b.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}
