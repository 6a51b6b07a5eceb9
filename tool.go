package pixpaint

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Config holds the live tool settings. It is supplied by the caller on every
// call, no tool keeps color or size state of its own.
type Config struct {
	Color color.NRGBA
	// Size is the brush radius in pixels. Zero paints single pixels.
	Size int
}

// Tool is the capability shared by every painting tool.
// Both methods return the rectangle of the pixels they changed.
type Tool interface {
	Press(buf *Buffer, p image.Point, cfg Config) image.Rectangle
	Drag(buf *Buffer, p image.Point, cfg Config) image.Rectangle
}

var (
	_ Tool = (*Stroke)(nil)
	_ Tool = (*BucketTool)(nil)
)

// ToolKind identifies one of the supported tools.
type ToolKind int

const (
	Pencil ToolKind = iota
	Eraser
	Bucket
)

var toolNames = map[ToolKind]string{
	Pencil: "pencil",
	Eraser: "eraser",
	Bucket: "bucket",
}

func (k ToolKind) String() string {
	if name, ok := toolNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ToolKind(%d)", int(k))
}

// ParseToolKind returns the tool kind matching name (case insensitive).
// "fill" is accepted as an alias of "bucket" and "pen" of "pencil".
func ParseToolKind(name string) (ToolKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pencil", "pen":
		return Pencil, nil
	case "eraser":
		return Eraser, nil
	case "bucket", "fill":
		return Bucket, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}
