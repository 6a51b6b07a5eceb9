package pixpaint

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/esimov/pixpaint/utils"
	"github.com/google/uuid"
)

// State is the input state of a Session.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// EventKind enumerates the pointer events understood by a Session.
type EventKind int

const (
	PressEvent EventKind = iota
	DragEvent
	ReleaseEvent
	LeaveEvent
)

func (k EventKind) String() string {
	switch k {
	case PressEvent:
		return "press"
	case DragEvent:
		return "drag"
	case ReleaseEvent:
		return "release"
	case LeaveEvent:
		return "leave"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a pointer event expressed in device coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Transform maps device coordinates to buffer coordinates.
// Offset is the position of the buffer origin on the device and Scale the number
// of device units per buffer pixel.
type Transform struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// maxCoord bounds the buffer coordinates produced by ToBuffer.
const maxCoord = 1 << 30

// ToBuffer converts a device point to the buffer pixel containing it.
// A non positive scale is treated as 1. The result is clamped to
// [-1<<30, 1<<30]; NaN maps to the lower bound.
func (t Transform) ToBuffer(x, y float64) image.Point {
	scale := t.Scale
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return image.Pt(toPixel((x-t.OffsetX)/scale), toPixel((y-t.OffsetY)/scale))
}

func toPixel(v float64) int {
	if math.IsNaN(v) {
		return -maxCoord
	}
	return int(utils.Clamp(math.Floor(v), -maxCoord, maxCoord))
}

// Commit is reported once per completed drawing operation.
type Commit struct {
	SessionID string
	Seq       uint64
	Tool      ToolKind
	// Region is the bounding box of the pixels changed by the operation.
	// It is empty when nothing changed.
	Region image.Rectangle
}

// Session binds the tools to a buffer, the live configuration and the
// device coordinate frame. It is driven by a single goroutine.
type Session struct {
	// Background is the color painted by the eraser.
	Background color.NRGBA
	// Transform maps the incoming device coordinates to the buffer.
	Transform Transform
	// OnCommit, if set, is called when a drawing operation completes.
	OnCommit func(Commit)

	id    string
	buf   *Buffer
	tools map[ToolKind]Tool
	kind  ToolKind
	cfg   Config
	state State
	seq   uint64
	dirty image.Rectangle
}

// NewSession creates a session drawing on buf with the pencil selected.
func NewSession(buf *Buffer, bg color.NRGBA) *Session {
	return &Session{
		Background: bg,
		Transform:  Transform{Scale: 1},
		id:         uuid.NewString(),
		buf:        buf,
		tools: map[ToolKind]Tool{
			Pencil: NewStroke(),
			Eraser: NewStroke(),
			Bucket: NewBucketTool(buf.Width(), buf.Height()),
		},
		kind: Pencil,
		cfg:  Config{Color: color.NRGBA{A: 0xff}, Size: 1},
	}
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Buffer returns the buffer the session draws on.
func (s *Session) Buffer() *Buffer { return s.buf }

// State returns the current input state.
func (s *Session) State() State { return s.state }

// Tool returns the active tool kind.
func (s *Session) Tool() ToolKind { return s.kind }

// Config returns the live configuration.
func (s *Session) Config() Config { return s.cfg }

// SetTool selects the active tool. Switching tools in the middle of an
// operation completes it first.
func (s *Session) SetTool(kind ToolKind) error {
	if _, ok := s.tools[kind]; !ok {
		return fmt.Errorf("unsupported tool: %v", kind)
	}
	if s.state == Active && kind != s.kind {
		s.finish()
	}
	s.kind = kind
	return nil
}

// SetColor sets the drawing color.
func (s *Session) SetColor(c color.NRGBA) { s.cfg.Color = c }

// SetColorHex parses and sets the drawing color.
// On error the configuration is left unchanged.
func (s *Session) SetColorHex(hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	s.cfg.Color = c
	return nil
}

// SetSize sets the brush radius. It is clamped to [0, width+height] of the buffer,
// a radius large enough to cover the whole buffer from any pixel.
func (s *Session) SetSize(size int) {
	s.cfg.Size = utils.Clamp(size, 0, s.buf.Width()+s.buf.Height())
}

// Handle dispatches a device event.
func (s *Session) Handle(ev Event) {
	switch ev.Kind {
	case PressEvent:
		s.Press(ev.X, ev.Y)
	case DragEvent:
		s.Drag(ev.X, ev.Y)
	case ReleaseEvent:
		s.Release()
	case LeaveEvent:
		s.Leave()
	}
}

// Press starts a drawing operation at the device point (x, y).
// A press received while an operation is in progress completes that operation first.
func (s *Session) Press(x, y float64) {
	if s.state == Active {
		s.finish()
	}
	s.state = Active
	s.dirty = s.tools[s.kind].Press(s.buf, s.Transform.ToBuffer(x, y), s.effective())
}

// Drag continues the current operation. It is discarded when the session is idle.
func (s *Session) Drag(x, y float64) {
	if s.state != Active {
		Logger().Debug("drag discarded while idle", "x", x, "y", y)
		return
	}
	r := s.tools[s.kind].Drag(s.buf, s.Transform.ToBuffer(x, y), s.effective())
	s.dirty = s.dirty.Union(r)
}

// Release completes the current operation.
func (s *Session) Release() {
	if s.state == Active {
		s.finish()
	}
}

// Leave is called when the pointer leaves the surface. It is equivalent to Release.
func (s *Session) Leave() {
	s.Release()
}

// Clear repaints the buffer with the background color and reports it as a completed operation.
func (s *Session) Clear() {
	if s.state == Active {
		s.finish()
	}
	s.buf.Clear(s.Background)
	s.dirty = s.buf.Bounds()
	s.commit()
}

// effective returns the configuration passed to the active tool.
func (s *Session) effective() Config {
	cfg := s.cfg
	if s.kind == Eraser {
		cfg.Color = s.Background
	}
	return cfg
}

func (s *Session) finish() {
	s.state = Idle
	s.commit()
}

func (s *Session) commit() {
	s.seq++
	c := Commit{
		SessionID: s.id,
		Seq:       s.seq,
		Tool:      s.kind,
		Region:    s.dirty,
	}
	s.dirty = image.Rectangle{}

	Logger().Info("operation committed",
		"session", c.SessionID,
		"seq", c.Seq,
		"tool", c.Tool.String(),
		"region", c.Region,
	)
	if s.OnCommit != nil {
		s.OnCommit(c)
	}
}
