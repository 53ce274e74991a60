// Package interaction owns the in-progress draw, move, and resize gesture
// for one annotator surface. It consumes pointer events and mutates the
// annotation collection; it performs no rendering of its own.
package interaction

import (
	"fmt"

	"annotator/internal/annotation"
	"annotator/pkg/geometry"
)

// State is the gesture state. Every gesture starts and ends in Idle.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateMoving
	StateResizing
)

// Defaults match the rendered handle sizes.
const (
	DefaultHandleRadius = 5.0
	DefaultEdgeOffset   = 3.0
	DefaultMinSize      = 5.0
)

// Config parameterizes one annotator surface.
type Config struct {
	// Kind selects which shape the surface draws.
	Kind annotation.Kind
	// HandleRadius is the half-size of the box around point handles.
	HandleRadius float64
	// EdgeOffset is the 1-D grab distance for interval edges.
	EdgeOffset float64
	// MinSize rejects drawing commits whose span is smaller on the
	// relevant axis.
	MinSize float64
	// PixelsPerSecond converts the time axis to seconds for the status
	// readout. Zero leaves the readout in pixels.
	PixelsPerSecond float64
}

func (c *Config) applyDefaults() {
	if c.HandleRadius == 0 {
		c.HandleRadius = DefaultHandleRadius
	}
	if c.EdgeOffset == 0 {
		c.EdgeOffset = DefaultEdgeOffset
	}
	if c.MinSize == 0 {
		c.MinSize = DefaultMinSize
	}
}

// Machine advances the gesture state from pointer events. All methods run
// on the host's event loop; nothing here is safe for concurrent use.
type Machine struct {
	coll *annotation.Collection
	cfg  Config

	state    State
	pressed  bool
	moved    bool
	anchor   geometry.Point2D
	last     geometry.Point2D
	extent   geometry.Size
	target   *annotation.Shape
	snapshot *annotation.Shape
	handle   annotation.Handle
	hitDown  *annotation.Shape

	// Polygon vertices accumulated click by click. Not a per-gesture
	// draft: it survives pointer-leave and is discarded only on commit
	// or CancelDraft.
	polyDraft []annotation.Vertex

	activeTag annotation.Tag
	status    string
	onDraw    func()
}

// NewMachine creates a gesture machine over the given collection.
func NewMachine(coll *annotation.Collection, cfg Config) *Machine {
	cfg.applyDefaults()
	return &Machine{coll: coll, cfg: cfg}
}

// SetActiveTag sets the tag applied to newly drawn shapes and shown in
// the status readout.
func (m *Machine) SetActiveTag(tag annotation.Tag) { m.activeTag = tag }

// ActiveTag returns the tag currently applied to new shapes.
func (m *Machine) ActiveTag() annotation.Tag { return m.activeTag }

// OnDraw registers the redraw callback invoked after every mutation,
// including draft-only changes.
func (m *Machine) OnDraw(fn func()) { m.onDraw = fn }

// State returns the current gesture state.
func (m *Machine) State() State { return m.state }

// Status returns the live readout for the current gesture: extent in
// domain units plus the active tag's label.
func (m *Machine) Status() string { return m.status }

// Draft returns the in-progress drawing shape, or nil outside a drawing
// gesture. Move and resize gestures mutate the committed shape directly.
func (m *Machine) Draft() *annotation.Shape {
	if m.state == StateDrawing {
		return m.target
	}
	return nil
}

// PolygonDraft returns the vertices accumulated so far for an unfinished
// polygon.
func (m *Machine) PolygonDraft() []annotation.Vertex { return m.polyDraft }

// CancelDraft discards any accumulated polygon vertices.
func (m *Machine) CancelDraft() {
	if len(m.polyDraft) == 0 {
		return
	}
	m.polyDraft = nil
	m.redraw()
}

// PointerDown begins a gesture at p. extent is the current surface size,
// re-read by the host on every event since the surface may resize.
func (m *Machine) PointerDown(p geometry.Point2D, extent geometry.Size) {
	if extent.Width <= 0 || extent.Height <= 0 {
		return
	}
	m.extent = extent
	m.pressed = true
	m.moved = false
	m.anchor = p
	m.last = p
	m.hitDown = m.coll.HitTest(p)

	// Handle boxes extend past the shape body, so the focused shape's
	// handles are checked before the body hit result, in the same order
	// CursorAt resolves the hover affordance.
	if f := m.coll.Focused(); f != nil {
		if h := f.HandleAt(p, m.grabRadius(f)); h.Kind != annotation.HandleNone {
			m.snapshot = f.Clone()
			if h.Kind == annotation.HandleMidpoint {
				h = f.InsertVertex(h.Index, p)
			}
			m.state = StateResizing
			m.target = f
			m.handle = h
			return
		}
	}

	hit := m.hitDown
	if hit == nil || !hit.Focused {
		// Selection or deferred drawing: resolved on up or first move.
		return
	}

	m.state = StateMoving
	m.target = hit
	m.snapshot = hit.Clone()
}

// PointerMove advances the gesture. Outside a press it only refreshes the
// status readout for hover.
func (m *Machine) PointerMove(p geometry.Point2D, extent geometry.Size) {
	if extent.Width <= 0 || extent.Height <= 0 {
		return
	}
	m.extent = extent
	if !m.pressed {
		return
	}

	switch m.state {
	case StateIdle:
		// First move with the button held promotes a plain press into
		// a drawing gesture. A press that never moves stays a click.
		if m.cfg.Kind == annotation.KindPolygon {
			return
		}
		m.state = StateDrawing
		m.target = &annotation.Shape{Kind: m.cfg.Kind, Tag: m.activeTag.Name}
		m.updateDraft(p)
	case StateDrawing:
		m.updateDraft(p)
	case StateMoving:
		m.moved = true
		m.moveTarget(p)
	case StateResizing:
		m.moved = true
		m.handle = m.target.SetHandle(m.handle, m.clamp(p))
	}

	m.updateStatus()
	m.redraw()
}

// PointerUp resolves the gesture: focus toggle for a pure click, commit
// for a completed draw/move/resize.
func (m *Machine) PointerUp(p geometry.Point2D, extent geometry.Size) {
	if !m.pressed {
		return
	}
	m.pressed = false
	if extent.Width > 0 && extent.Height > 0 {
		m.extent = extent
	}

	switch m.state {
	case StateIdle:
		m.resolveClick(p)
	case StateDrawing:
		m.commitDrawing()
	case StateMoving, StateResizing:
		if m.moved {
			m.coll.Committed(m.target)
			break
		}
		// A press that never moved is a click, so the collection stays
		// untouched and no change notification fires. Undo any
		// handle-grab side effects (midpoint materialization) first.
		if m.snapshot != nil {
			m.target.Restore(m.snapshot)
		}
		m.coll.Focus(m.target)
	}

	m.state = StateIdle
	m.target = nil
	m.snapshot = nil
	m.handle = annotation.Handle{}
	m.hitDown = nil
	m.updateStatus()
	m.redraw()
}

// PointerLeave abandons the in-gesture draft. A drawing draft is dropped;
// a move or resize reverts the live shape to its pre-gesture snapshot.
// The committed collection is untouched.
func (m *Machine) PointerLeave() {
	if !m.pressed {
		return
	}
	m.pressed = false

	if (m.state == StateMoving || m.state == StateResizing) && m.snapshot != nil {
		m.target.Restore(m.snapshot)
	}

	m.state = StateIdle
	m.target = nil
	m.snapshot = nil
	m.handle = annotation.Handle{}
	m.hitDown = nil
	m.status = ""
	m.redraw()
}

// resolveClick handles a press that was never promoted to a drag.
func (m *Machine) resolveClick(p geometry.Point2D) {
	if m.cfg.Kind == annotation.KindPolygon && m.resolvePolygonClick(p) {
		return
	}

	if m.hitDown != nil {
		m.coll.Focus(m.hitDown)
	} else {
		m.coll.ClearFocus()
	}
}

// resolvePolygonClick accumulates polygon vertices. Returns false when the
// click should fall through to focus handling instead.
func (m *Machine) resolvePolygonClick(p geometry.Point2D) bool {
	if len(m.polyDraft) == 0 {
		if m.hitDown != nil {
			return false
		}
		if m.coll.Focused() != nil {
			// First empty-canvas click only clears the selection.
			return false
		}
		m.polyDraft = []annotation.Vertex{{Point2D: p}}
		return true
	}

	first := m.polyDraft[0].Point2D
	if geometry.NearPoint(p, first, m.cfg.HandleRadius) {
		// Closing click. Fewer than three vertices is not a polygon:
		// discard rather than commit a degenerate shape.
		if len(m.polyDraft) >= 3 {
			s := &annotation.Shape{
				Kind:     annotation.KindPolygon,
				Tag:      m.activeTag.Name,
				Vertices: m.polyDraft,
			}
			m.coll.Add(s)
		}
		m.polyDraft = nil
		return true
	}

	m.polyDraft = append(m.polyDraft, annotation.Vertex{Point2D: p})
	return true
}

// updateDraft spans the drawing draft between the anchor and the cursor.
// Recomputing from the anchor each move means a drag that crosses back
// over it naturally swaps which bound is being extended.
func (m *Machine) updateDraft(p geometry.Point2D) {
	q := m.clamp(p)
	s := m.target
	switch s.Kind {
	case annotation.KindInterval:
		if q.X >= m.anchor.X {
			s.Start, s.End = m.anchor.X, q.X
		} else {
			s.Start, s.End = q.X, m.anchor.X
		}
	case annotation.KindRectangle:
		s.X1, s.X2 = m.anchor.X, q.X
		if s.X1 > s.X2 {
			s.X1, s.X2 = s.X2, s.X1
		}
		s.Y1, s.Y2 = m.anchor.Y, q.Y
		if s.Y1 > s.Y2 {
			s.Y1, s.Y2 = s.Y2, s.Y1
		}
	}
}

// moveTarget translates the live shape by the cursor displacement. An
// axis whose new bound would leave the surface has its whole delta
// canceled, preserving the shape's size; the last-cursor position only
// advances on the accepted component.
func (m *Machine) moveTarget(p geometry.Point2D) {
	dx := p.X - m.last.X
	dy := p.Y - m.last.Y
	span := m.target.Span()

	if span.X+dx < 0 || span.MaxX()+dx > m.extent.Width {
		dx = 0
	} else {
		m.last.X = p.X
	}
	if span.Y+dy < 0 || span.MaxY()+dy > m.extent.Height {
		dy = 0
	} else {
		m.last.Y = p.Y
	}
	if m.target.Kind == annotation.KindInterval {
		dy = 0
	}

	m.target.Translate(dx, dy)
}

// commitDrawing finalizes the drawing draft, discarding spans below the
// minimum size.
func (m *Machine) commitDrawing() {
	s := m.target
	span := s.Span()
	switch s.Kind {
	case annotation.KindInterval:
		if span.Width < m.cfg.MinSize {
			return
		}
	case annotation.KindRectangle:
		if span.Width < m.cfg.MinSize || span.Height < m.cfg.MinSize {
			return
		}
	}
	m.coll.Add(s)
}

func (m *Machine) grabRadius(s *annotation.Shape) float64 {
	if s.Kind == annotation.KindInterval {
		return m.cfg.EdgeOffset
	}
	return m.cfg.HandleRadius
}

func (m *Machine) clamp(p geometry.Point2D) geometry.Point2D {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > m.extent.Width {
		p.X = m.extent.Width
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > m.extent.Height {
		p.Y = m.extent.Height
	}
	return p
}

// updateStatus refreshes the live readout for the shape under mutation.
func (m *Machine) updateStatus() {
	s := m.target
	if s == nil {
		m.status = ""
		return
	}
	label := m.activeTag.Label
	switch s.Kind {
	case annotation.KindInterval:
		lo, hi := s.Start, s.End
		if lo > hi {
			lo, hi = hi, lo
		}
		if pps := m.cfg.PixelsPerSecond; pps > 0 {
			m.status = fmt.Sprintf("%.2fs - %.2fs %s", lo/pps, hi/pps, label)
		} else {
			m.status = fmt.Sprintf("%.0f - %.0f %s", lo, hi, label)
		}
	case annotation.KindRectangle:
		span := s.Span()
		m.status = fmt.Sprintf("(%.0f, %.0f) %.0fx%.0f %s",
			span.X, span.Y, span.Width, span.Height, label)
	case annotation.KindPolygon:
		m.status = fmt.Sprintf("%d vertices %s", len(s.Vertices), label)
	}
}

func (m *Machine) redraw() {
	if m.onDraw != nil {
		m.onDraw()
	}
}
