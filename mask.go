package pixpaint

import "image"

// VisitedMask is a width x height grid of flags used by the flood fill
// to remember which pixels were already processed.
//
// The mask records the cells it marks, so Reset only touches those
// instead of rewriting the whole grid after every fill.
type VisitedMask struct {
	width  int
	height int
	cells  []bool
	marked []int
}

// NewVisitedMask allocates a clean mask.
func NewVisitedMask(width, height int) *VisitedMask {
	m := &VisitedMask{}
	m.Resize(width, height)
	return m
}

// Resize changes the mask dimensions. The storage is reused when it is large enough.
// The mask is clean afterwards.
func (m *VisitedMask) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.Reset()
	n := width * height
	if cap(m.cells) < n {
		m.cells = make([]bool, n)
	} else {
		m.cells = m.cells[:n]
	}
	m.width, m.height = width, height
}

// Size returns the mask dimensions.
func (m *VisitedMask) Size() (width, height int) { return m.width, m.height }

// Visited reports whether p was marked. Points outside of the mask are never visited.
func (m *VisitedMask) Visited(p image.Point) bool {
	i, ok := m.index(p)
	return ok && m.cells[i]
}

// Mark flags p as visited. Points outside of the mask are ignored.
func (m *VisitedMask) Mark(p image.Point) {
	if i, ok := m.index(p); ok {
		m.mark(i)
	}
}

// Len returns the number of marked cells.
func (m *VisitedMask) Len() int { return len(m.marked) }

// Reset clears every marked cell.
func (m *VisitedMask) Reset() {
	for _, i := range m.marked {
		m.cells[i] = false
	}
	m.marked = m.marked[:0]
}

// Clean reports whether no cell is marked. It scans the full grid.
func (m *VisitedMask) Clean() bool {
	for _, v := range m.cells {
		if v {
			return false
		}
	}
	return true
}

func (m *VisitedMask) index(p image.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= m.width || p.Y >= m.height {
		return 0, false
	}
	return p.X + p.Y*m.width, true
}

func (m *VisitedMask) mark(i int) {
	if !m.cells[i] {
		m.cells[i] = true
		m.marked = append(m.marked, i)
	}
}
