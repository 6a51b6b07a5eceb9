package pixpaint

import (
	"image"
	"math"

	"github.com/esimov/pixpaint/utils"
)

// Stroke paints a continuous freehand line. The pencil and the eraser are both strokes;
// they differ only by the color found in the Config.
type Stroke struct {
	last   image.Point
	active bool
}

// NewStroke creates a stroke tool.
func NewStroke() *Stroke {
	return &Stroke{}
}

// Press starts a new path at p and stamps the brush there.
func (s *Stroke) Press(buf *Buffer, p image.Point, cfg Config) image.Rectangle {
	s.last, s.active = p, true
	return stamp(buf, p, cfg)
}

// Drag paints from the previous sample to p. Samples further apart than
// one pixel are joined by the interpolated segment, so the stroke has no gaps.
// Only the part of the segment whose brush can reach the buffer is rasterized.
func (s *Stroke) Drag(buf *Buffer, p image.Point, cfg Config) image.Rectangle {
	if !s.active {
		return s.Press(buf, p, cfg)
	}

	prev := s.last
	s.last = p
	a, b, ok := clip(prev, p, buf.Bounds().Inset(-radius(buf, cfg)))
	if !ok {
		return image.Rectangle{}
	}

	pts := line(a, b)
	if a == prev {
		// the first point was stamped by the previous sample
		pts = pts[1:]
	}
	var dirty image.Rectangle
	for _, pt := range pts {
		dirty = dirty.Union(stamp(buf, pt, cfg))
	}
	return dirty
}

// radius returns the brush radius, bounded by the buffer size.
// A disk of radius width+height centered anywhere on the buffer covers all of it.
func radius(buf *Buffer, cfg Config) int {
	return utils.Clamp(cfg.Size, 0, buf.Width()+buf.Height())
}

// stamp paints a filled disk of radius cfg.Size centered on p, clipped to the buffer.
func stamp(buf *Buffer, p image.Point, cfg Config) image.Rectangle {
	r := radius(buf, cfg)
	if !p.In(buf.Bounds().Inset(-r)) {
		return image.Rectangle{}
	}
	area := image.Rect(p.X-r, p.Y-r, p.X+r+1, p.Y+r+1).Intersect(buf.Bounds())
	if area.Empty() {
		return image.Rectangle{}
	}

	var dirty image.Rectangle
	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := y - p.Y
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := x - p.X
			if dx*dx+dy*dy > r*r {
				continue
			}
			buf.put(buf.img.PixOffset(x, y), cfg.Color)
			dirty = dirty.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return dirty
}

// clip trims the segment from a to b to the points lying inside rect
// (Liang-Barsky). It reports false when the segment misses rect.
// An endpoint inside rect is returned unchanged.
func clip(a, b image.Point, rect image.Rectangle) (image.Point, image.Point, bool) {
	if rect.Empty() {
		return a, b, false
	}
	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-x0, float64(b.Y)-y0

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(rect.Min.X)},
		{dx, float64(rect.Max.X-1) - x0},
		{-dy, y0 - float64(rect.Min.Y)},
		{dy, float64(rect.Max.Y-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = utils.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = utils.Min(t1, t)
		}
	}

	at := func(t float64) image.Point {
		return image.Pt(int(math.Round(x0+t*dx)), int(math.Round(y0+t*dy)))
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = at(t0)
	}
	if t1 < 1 {
		cb = at(t1)
	}
	return ca, cb, true
}

// line returns the integer points on the segment from a to b using
// Bresenham's algorithm. Both endpoints are included.
func line(a, b image.Point) []image.Point {
	dx := utils.Abs(b.X - a.X)
	dy := utils.Abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]image.Point, 0, utils.Max(dx, dy)+1)
	err := dx - dy
	for x, y := a.X, a.Y; ; {
		pts = append(pts, image.Pt(x, y))
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}
