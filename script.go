package pixpaint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ScriptEvent is one line of a recorded session script.
//
// Pointer events carry device coordinates:
//
//	{"type":"press","x":12,"y":40}
//	{"type":"drag","x":30,"y":41}
//	{"type":"release"}
//
// Configuration events change the live settings:
//
//	{"type":"tool","tool":"bucket"}
//	{"type":"color","color":"#ff8800"}
//	{"type":"size","size":3}
//	{"type":"clear"}
type ScriptEvent struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Tool  string  `json:"tool,omitempty"`
	Color string  `json:"color,omitempty"`
	Size  int     `json:"size,omitempty"`
}

// ReplayStats summarizes a script replay.
type ReplayStats struct {
	Applied int
	Skipped int
	Commits int
}

// ParseScript decodes a stream of JSON encoded events, one value after the other.
func ParseScript(r io.Reader) ([]ScriptEvent, error) {
	var events []ScriptEvent
	dec := json.NewDecoder(r)
	for {
		var ev ScriptEvent
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return nil, fmt.Errorf("malformed script after %d events: %w", len(events), err)
		}
		events = append(events, ev)
	}
}

// Apply executes a single script event on the session.
// An invalid event returns an error and leaves the buffer and the settings unchanged.
func (s *Session) Apply(ev ScriptEvent) error {
	switch strings.ToLower(ev.Type) {
	case "press":
		s.Press(ev.X, ev.Y)
	case "drag", "move":
		s.Drag(ev.X, ev.Y)
	case "release", "up":
		s.Release()
	case "leave", "out":
		s.Leave()
	case "tool":
		kind, err := ParseToolKind(ev.Tool)
		if err != nil {
			return err
		}
		return s.SetTool(kind)
	case "color":
		return s.SetColorHex(ev.Color)
	case "size":
		s.SetSize(ev.Size)
	case "clear":
		s.Clear()
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// Replay applies every event in order. Invalid events are logged and skipped,
// the returned stats count them.
func (s *Session) Replay(events []ScriptEvent) ReplayStats {
	var stats ReplayStats

	onCommit := s.OnCommit
	s.OnCommit = func(c Commit) {
		stats.Commits++
		if onCommit != nil {
			onCommit(c)
		}
	}
	defer func() { s.OnCommit = onCommit }()

	for i, ev := range events {
		if err := s.Apply(ev); err != nil {
			Logger().Warn("script event skipped", "index", i, "type", ev.Type, "error", err)
			stats.Skipped++
			continue
		}
		stats.Applied++
	}
	// a script ending in the middle of a stroke still completes it
	s.Release()
	return stats
}
