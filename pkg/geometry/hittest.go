package geometry

import "math"

// PointInPolygon tests if a point is inside a polygon using the winding
// number. For each directed edge the winding count is incremented on an
// upward crossing with the point to the edge's left and decremented on a
// downward crossing with the point to its right. A non-zero count means
// the point is enclosed, which handles concave polygons correctly.
// Behavior for self-intersecting input is undefined.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	winding := 0
	n := len(polygon)

	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]

		if a.Y <= p.Y {
			if b.Y > p.Y && crossProduct(a, b, p) > 0 {
				winding++
			}
		} else {
			if b.Y <= p.Y && crossProduct(a, b, p) < 0 {
				winding--
			}
		}
	}

	return winding != 0
}

// NearPoint reports whether p falls within an axis-aligned box of the
// given radius centered on candidate. The box test (rather than true
// circular distance) matches the square handles the renderer draws.
// All four bounds are inclusive.
func NearPoint(p, candidate Point2D, radius float64) bool {
	return p.X >= candidate.X-radius && p.X <= candidate.X+radius &&
		p.Y >= candidate.Y-radius && p.Y <= candidate.Y+radius
}

// NearEdge reports whether x is within handleOffset of a vertical edge
// at edgeX. Used for grabbing interval resize handles.
func NearEdge(x, edgeX, handleOffset float64) bool {
	return math.Abs(edgeX-x) <= handleOffset
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
