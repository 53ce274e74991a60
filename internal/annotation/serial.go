package annotation

import "annotator/pkg/geometry"

// External wire format: what crosses the engine boundary on commit and in
// session files. Internal layout fields (bands, bounding boxes, focus)
// never appear here. One annotator instance produces items of one kind.

// IntervalItem is a serialized time-range annotation in domain units
// (seconds, not pixels).
type IntervalItem struct {
	Tag   string  `json:"tag"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// RectItem is a serialized rectangle annotation in surface pixels.
type RectItem struct {
	Tag string  `json:"tag"`
	X1  float64 `json:"x1"`
	Y1  float64 `json:"y1"`
	X2  float64 `json:"x2"`
	Y2  float64 `json:"y2"`
}

// PolygonItem is a serialized polygon annotation in surface pixels.
type PolygonItem struct {
	Tag      string             `json:"tag"`
	Vertices []geometry.Point2D `json:"vertices"`
}

// ExportIntervals serializes the committed intervals, converting the
// pixel axis to seconds with pixelsPerSecond.
func (c *Collection) ExportIntervals(pixelsPerSecond float64) []IntervalItem {
	if pixelsPerSecond == 0 {
		pixelsPerSecond = 1
	}
	var out []IntervalItem
	for _, s := range c.shapes {
		if s.Kind != KindInterval {
			continue
		}
		out = append(out, IntervalItem{
			Tag:   s.Tag,
			Start: s.Start / pixelsPerSecond,
			End:   s.End / pixelsPerSecond,
		})
	}
	return out
}

// ImportIntervals replaces the collection's intervals with the given
// items, converting seconds back to pixels.
func (c *Collection) ImportIntervals(items []IntervalItem, pixelsPerSecond float64) {
	if pixelsPerSecond == 0 {
		pixelsPerSecond = 1
	}
	c.shapes = nil
	for _, it := range items {
		c.shapes = append(c.shapes, &Shape{
			Kind:  KindInterval,
			Tag:   it.Tag,
			Start: it.Start * pixelsPerSecond,
			End:   it.End * pixelsPerSecond,
		})
	}
	c.commit()
}

// ExportRects serializes the committed rectangles.
func (c *Collection) ExportRects() []RectItem {
	var out []RectItem
	for _, s := range c.shapes {
		if s.Kind != KindRectangle {
			continue
		}
		out = append(out, RectItem{Tag: s.Tag, X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2})
	}
	return out
}

// ImportRects replaces the collection's rectangles with the given items.
func (c *Collection) ImportRects(items []RectItem) {
	c.shapes = nil
	for _, it := range items {
		c.shapes = append(c.shapes, &Shape{
			Kind: KindRectangle,
			Tag:  it.Tag,
			X1:   it.X1, Y1: it.Y1, X2: it.X2, Y2: it.Y2,
		})
	}
	c.commit()
}

// ExportPolygons serializes the committed polygons.
func (c *Collection) ExportPolygons() []PolygonItem {
	var out []PolygonItem
	for _, s := range c.shapes {
		if s.Kind != KindPolygon {
			continue
		}
		verts := make([]geometry.Point2D, len(s.Vertices))
		for i, v := range s.Vertices {
			verts[i] = v.Point2D
		}
		out = append(out, PolygonItem{Tag: s.Tag, Vertices: verts})
	}
	return out
}

// ImportPolygons replaces the collection's polygons with the given items.
func (c *Collection) ImportPolygons(items []PolygonItem) {
	c.shapes = nil
	for _, it := range items {
		verts := make([]Vertex, len(it.Vertices))
		for i, p := range it.Vertices {
			verts[i] = Vertex{Point2D: p}
		}
		s := &Shape{Kind: KindPolygon, Tag: it.Tag, Vertices: verts}
		s.RecomputeBounds()
		c.shapes = append(c.shapes, s)
	}
	c.commit()
}
