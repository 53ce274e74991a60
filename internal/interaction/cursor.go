package interaction

import (
	"annotator/internal/annotation"
	"annotator/pkg/geometry"
)

// Cursor is the pointer affordance the host should show. It is derived
// from hover position only and carries no gesture state.
type Cursor int

const (
	CursorDefault Cursor = iota
	// CursorMove marks the body of the focused shape.
	CursorMove
	// CursorResizeH marks a horizontally dragging handle (interval edge).
	CursorResizeH
	// CursorResizeCorner marks a two-axis handle (rectangle corner,
	// polygon vertex or midpoint).
	CursorResizeCorner
	// CursorSelect marks any unfocused shape.
	CursorSelect
)

// CursorAt returns the affordance for the pointer resting at p.
func (m *Machine) CursorAt(p geometry.Point2D) Cursor {
	if f := m.coll.Focused(); f != nil {
		if h := f.HandleAt(p, m.grabRadius(f)); h.Kind != annotation.HandleNone {
			if h.Kind == annotation.HandleStart || h.Kind == annotation.HandleEnd {
				return CursorResizeH
			}
			return CursorResizeCorner
		}
		if f.Contains(p) {
			return CursorMove
		}
	}
	if m.coll.HitTest(p) != nil {
		return CursorSelect
	}
	return CursorDefault
}
