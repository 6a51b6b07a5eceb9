package pixpaint

import (
	"errors"
	"image"
)

// BucketTool fills the region under the pointer with the configured color.
type BucketTool struct {
	filler *Filler
}

// NewBucketTool creates a bucket tool whose visited mask is sized for a width x height buffer.
func NewBucketTool(width, height int) *BucketTool {
	return &BucketTool{filler: NewFiller(width, height)}
}

// Filler returns the flood fill engine used by the tool.
func (b *BucketTool) Filler() *Filler { return b.filler }

// Press fills the region containing p.
func (b *BucketTool) Press(buf *Buffer, p image.Point, cfg Config) image.Rectangle {
	return b.paint(buf, p, cfg)
}

// Drag fills the region containing p, the same as Press.
func (b *BucketTool) Drag(buf *Buffer, p image.Point, cfg Config) image.Rectangle {
	return b.paint(buf, p, cfg)
}

func (b *BucketTool) paint(buf *Buffer, p image.Point, cfg Config) image.Rectangle {
	res, err := b.filler.Fill(buf, p, cfg.Color)
	if err != nil {
		if errors.Is(err, ErrOutOfBounds) {
			Logger().Debug("bucket outside of the canvas", "point", p)
		}
		return image.Rectangle{}
	}
	return res.Region
}
