package pixpaint

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/pixpaint/utils"
)

// neighbours are the 4-connected offsets explored by the flood fill.
var neighbours = [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FillResult describes the outcome of a flood fill.
type FillResult struct {
	// Painted is the number of repainted pixels.
	Painted int
	// Region is the bounding box of the repainted pixels.
	Region image.Rectangle
	// NoOp is set when the seed already had the fill color.
	NoOp bool
}

// Filler repaints 4-connected regions of equal color.
// The visited mask and the work queue are allocated once and reused by every fill,
// so a Filler must not be shared between goroutines.
type Filler struct {
	mask  *VisitedMask
	queue *utils.Queue[image.Point]
}

// NewFiller creates a filler sized for a width x height buffer.
func NewFiller(width, height int) *Filler {
	return &Filler{
		mask:  NewVisitedMask(width, height),
		queue: utils.NewQueue[image.Point](utils.Max(width+height, 16)),
	}
}

// Mask returns the visited mask owned by the filler.
func (f *Filler) Mask() *VisitedMask { return f.mask }

// Fill repaints with fill the maximal 4-connected region of pixels having the seed's color.
// An out of bounds seed leaves the buffer untouched and returns ErrOutOfBounds.
// A seed which already has the fill color is a successful no-op.
func (f *Filler) Fill(buf *Buffer, seed image.Point, fill color.NRGBA) (FillResult, error) {
	var res FillResult

	target, err := buf.Get(seed)
	if err != nil {
		return res, fmt.Errorf("fill: %w", err)
	}
	if target == fill {
		res.NoOp = true
		return res, nil
	}

	if w, h := f.mask.Size(); w != buf.Width() || h != buf.Height() {
		f.mask.Resize(buf.Width(), buf.Height())
	}
	defer f.queue.Reset()
	defer f.mask.Reset()

	bounds := buf.Bounds()
	f.queue.Enqueue(seed)
	for f.queue.Len() > 0 {
		p, _ := f.queue.Dequeue()
		if !p.In(bounds) {
			continue
		}
		i := buf.img.PixOffset(p.X, p.Y)
		if buf.at(i) != target {
			continue
		}

		f.mask.mark(p.X + p.Y*f.mask.width)
		buf.put(i, fill)
		res.Painted++
		res.Region = res.Region.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})

		for _, d := range neighbours {
			n := p.Add(d)
			if n.In(bounds) && !f.mask.Visited(n) {
				f.queue.Enqueue(n)
			}
		}
	}

	Logger().Debug("flood fill",
		"seed", seed,
		"color", Hex(fill),
		"painted", res.Painted,
		"region", res.Region,
	)
	return res, nil
}
