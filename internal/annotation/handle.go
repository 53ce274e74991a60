package annotation

import "annotator/pkg/geometry"

// HandleKind identifies what part of a focused shape a grab lands on.
type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleStart
	HandleEnd
	HandleCorner
	HandleVertex
	HandleMidpoint
)

// Rectangle corner indices: bit 0 set means the right edge (x2), bit 1
// set means the bottom edge (y2).
const (
	CornerTopLeft     = 0
	CornerTopRight    = 1
	CornerBottomLeft  = 2
	CornerBottomRight = 3
)

// Handle is a resize grab point on a focused shape. Index is the corner
// index for rectangles or the vertex/midpoint index for polygons.
type Handle struct {
	Kind  HandleKind
	Index int
}

// HandleAt finds the resize handle at p, if any. radius is the half-size
// of the rendered handle box for point handles; for interval edges it is
// the 1-D grab offset.
func (s *Shape) HandleAt(p geometry.Point2D, radius float64) Handle {
	switch s.Kind {
	case KindInterval:
		// Start handle wins when the interval is narrower than the
		// grab zone.
		if geometry.NearEdge(p.X, s.Start, radius) {
			return Handle{Kind: HandleStart}
		}
		if geometry.NearEdge(p.X, s.End, radius) {
			return Handle{Kind: HandleEnd}
		}
	case KindRectangle:
		for i, c := range s.Corners() {
			if geometry.NearPoint(p, c, radius) {
				return Handle{Kind: HandleCorner, Index: i}
			}
		}
	case KindPolygon:
		// Real vertices take priority over midpoints.
		for i, v := range s.Vertices {
			if geometry.NearPoint(p, v.Point2D, radius) {
				return Handle{Kind: HandleVertex, Index: i}
			}
		}
		n := len(s.Vertices)
		if n >= 3 {
			for i, v := range s.Vertices {
				next := s.Vertices[(i+1)%n]
				mid := geometry.Point2D{X: (v.X + next.X) / 2, Y: (v.Y + next.Y) / 2}
				if geometry.NearPoint(p, mid, radius) {
					return Handle{Kind: HandleMidpoint, Index: i}
				}
			}
		}
	}
	return Handle{Kind: HandleNone}
}

// Corners returns the rectangle's four corners indexed per the Corner
// constants.
func (s *Shape) Corners() [4]geometry.Point2D {
	return [4]geometry.Point2D{
		{X: s.X1, Y: s.Y1},
		{X: s.X2, Y: s.Y1},
		{X: s.X1, Y: s.Y2},
		{X: s.X2, Y: s.Y2},
	}
}

// SetHandle moves the handle's coordinate(s) to p. When the dragged edge
// crosses the opposite edge the bounds are swapped and the returned
// handle identity flips, so the handle under the cursor always matches
// the edge actually moving.
func (s *Shape) SetHandle(h Handle, p geometry.Point2D) Handle {
	switch s.Kind {
	case KindInterval:
		switch h.Kind {
		case HandleStart:
			s.Start = p.X
			if s.Start > s.End {
				s.Start, s.End = s.End, s.Start
				h.Kind = HandleEnd
			}
		case HandleEnd:
			s.End = p.X
			if s.End < s.Start {
				s.Start, s.End = s.End, s.Start
				h.Kind = HandleStart
			}
		}
	case KindRectangle:
		if h.Kind != HandleCorner {
			return h
		}
		right := h.Index&1 != 0
		bottom := h.Index&2 != 0
		if right {
			s.X2 = p.X
			if s.X2 < s.X1 {
				s.X1, s.X2 = s.X2, s.X1
				right = false
			}
		} else {
			s.X1 = p.X
			if s.X1 > s.X2 {
				s.X1, s.X2 = s.X2, s.X1
				right = true
			}
		}
		if bottom {
			s.Y2 = p.Y
			if s.Y2 < s.Y1 {
				s.Y1, s.Y2 = s.Y2, s.Y1
				bottom = false
			}
		} else {
			s.Y1 = p.Y
			if s.Y1 > s.Y2 {
				s.Y1, s.Y2 = s.Y2, s.Y1
				bottom = true
			}
		}
		h.Index = 0
		if right {
			h.Index |= 1
		}
		if bottom {
			h.Index |= 2
		}
	case KindPolygon:
		if h.Kind == HandleVertex && h.Index < len(s.Vertices) {
			s.Vertices[h.Index].Point2D = p
		}
	}
	return h
}

// InsertVertex materializes the auxiliary midpoint after vertex index i
// as a real vertex at p and returns its handle for the ongoing resize.
func (s *Shape) InsertVertex(i int, p geometry.Point2D) Handle {
	if s.Kind != KindPolygon || i >= len(s.Vertices) {
		return Handle{Kind: HandleNone}
	}
	at := i + 1
	s.Vertices = append(s.Vertices, Vertex{})
	copy(s.Vertices[at+1:], s.Vertices[at:])
	s.Vertices[at] = Vertex{Point2D: p}
	return Handle{Kind: HandleVertex, Index: at}
}
