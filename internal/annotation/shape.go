// Package annotation provides the committed shape model and the collection
// manager that owns it for the lifetime of one annotator session.
package annotation

import (
	"math"

	"annotator/pkg/geometry"
)

// Kind discriminates the shape union.
type Kind int

const (
	KindInterval Kind = iota
	KindRectangle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindInterval:
		return "interval"
	case KindRectangle:
		return "rectangle"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Tag is immutable reference data supplied by the host. Shapes store the
// name only.
type Tag struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Vertex is a polygon point. Auxiliary vertices are synthetic midpoints
// offered as insertion handles; they exist only in the rendering and
// hit-test view, never in the committed vertex list.
type Vertex struct {
	geometry.Point2D
	Auxiliary bool `json:"-"`
}

// Shape is one committed annotation. Exactly one group of fields is
// meaningful depending on Kind; the rest stay zero.
type Shape struct {
	Kind    Kind
	Tag     string
	Focused bool

	// Interval extent on the time axis, in surface pixels.
	Start float64
	End   float64
	// Vertical band assigned by relayout. Intervals only.
	BandY      float64
	BandHeight float64

	// Rectangle corners. x1<=x2, y1<=y2 holds after commit, not
	// necessarily mid-drag.
	X1, Y1, X2, Y2 float64

	// Polygon vertices (committed vertices are never auxiliary) and
	// the cached bounding box used for cheap hit rejection.
	Vertices []Vertex
	Bounds   geometry.Rect
}

// Primary returns the shape's primary sort coordinate: start for
// intervals, left edge for rectangles and polygons.
func (s *Shape) Primary() float64 {
	switch s.Kind {
	case KindInterval:
		return math.Min(s.Start, s.End)
	case KindRectangle:
		return math.Min(s.X1, s.X2)
	default:
		return s.Bounds.X
	}
}

// Normalize orders inverted bounds and refreshes derived state. Called on
// commit; drafts may carry inverted bounds while a drag is in progress.
func (s *Shape) Normalize() {
	switch s.Kind {
	case KindInterval:
		if s.Start > s.End {
			s.Start, s.End = s.End, s.Start
		}
	case KindRectangle:
		if s.X1 > s.X2 {
			s.X1, s.X2 = s.X2, s.X1
		}
		if s.Y1 > s.Y2 {
			s.Y1, s.Y2 = s.Y2, s.Y1
		}
	case KindPolygon:
		s.RecomputeBounds()
	}
}

// RecomputeBounds refreshes the polygon bounding box from its committed
// vertices.
func (s *Shape) RecomputeBounds() {
	s.Bounds = geometry.BoundingBox(s.points())
}

// Span returns the shape's extent on both axes.
func (s *Shape) Span() geometry.Rect {
	switch s.Kind {
	case KindInterval:
		lo, hi := s.Start, s.End
		if lo > hi {
			lo, hi = hi, lo
		}
		return geometry.NewRect(lo, s.BandY, hi-lo, s.BandHeight)
	case KindRectangle:
		x1, x2 := s.X1, s.X2
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		y1, y2 := s.Y1, s.Y2
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		return geometry.NewRect(x1, y1, x2-x1, y2-y1)
	default:
		return s.Bounds
	}
}

// Contains reports whether the point hits the shape's body. Intervals use
// their layout band so stacked intervals sharing a time range remain
// individually addressable; a band of zero height falls back to the full
// column.
func (s *Shape) Contains(p geometry.Point2D) bool {
	switch s.Kind {
	case KindInterval:
		lo, hi := s.Start, s.End
		if lo > hi {
			lo, hi = hi, lo
		}
		if p.X < lo || p.X > hi {
			return false
		}
		if s.BandHeight <= 0 {
			return true
		}
		return p.Y >= s.BandY && p.Y <= s.BandY+s.BandHeight
	case KindRectangle:
		return s.Span().Contains(p)
	case KindPolygon:
		if !s.Bounds.Contains(p) {
			return false
		}
		return geometry.PointInPolygon(p, s.points())
	default:
		return false
	}
}

// Translate moves every coordinate of the shape by the given delta.
func (s *Shape) Translate(dx, dy float64) {
	switch s.Kind {
	case KindInterval:
		s.Start += dx
		s.End += dx
	case KindRectangle:
		s.X1 += dx
		s.X2 += dx
		s.Y1 += dy
		s.Y2 += dy
	case KindPolygon:
		for i := range s.Vertices {
			s.Vertices[i].X += dx
			s.Vertices[i].Y += dy
		}
		s.Bounds.X += dx
		s.Bounds.Y += dy
	}
}

// Clone returns a deep copy, used to snapshot a shape before a move or
// resize gesture so an abandoned gesture can revert it.
func (s *Shape) Clone() *Shape {
	c := *s
	c.Vertices = append([]Vertex(nil), s.Vertices...)
	return &c
}

// Restore overwrites the shape with a previously taken snapshot.
func (s *Shape) Restore(snapshot *Shape) {
	*s = *snapshot
	s.Vertices = append([]Vertex(nil), snapshot.Vertices...)
}

func (s *Shape) points() []geometry.Point2D {
	pts := make([]geometry.Point2D, len(s.Vertices))
	for i, v := range s.Vertices {
		pts[i] = v.Point2D
	}
	return pts
}

// ViewVertices returns the polygon's vertices interleaved with auxiliary
// midpoints, the sequence the renderer and handle hit tests operate on.
// Midpoint i sits between committed vertices i and i+1 (wrapping).
func (s *Shape) ViewVertices() []Vertex {
	n := len(s.Vertices)
	if n < 3 {
		return s.Vertices
	}
	out := make([]Vertex, 0, 2*n)
	for i, v := range s.Vertices {
		next := s.Vertices[(i+1)%n]
		out = append(out, v)
		out = append(out, Vertex{
			Point2D:   geometry.Point2D{X: (v.X + next.X) / 2, Y: (v.Y + next.Y) / 2},
			Auxiliary: true,
		})
	}
	return out
}
