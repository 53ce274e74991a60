package geometry

import "testing"

func TestPointInPolygonConvex(t *testing.T) {
	square := []Point2D{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", Point2D{5, 5}, true},
		{"near left edge inside", Point2D{0.5, 5}, true},
		{"near top edge inside", Point2D{5, 0.5}, true},
		{"outside left", Point2D{-1, 5}, false},
		{"outside right", Point2D{11, 5}, false},
		{"outside above", Point2D{5, -1}, false},
		{"outside below", Point2D{5, 11}, false},
		{"far away", Point2D{100, 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, square); got != tt.want {
				t.Errorf("PointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// A "U" shape: the notch between the arms is outside.
	u := []Point2D{
		{0, 0}, {10, 0}, {10, 10}, {7, 10}, {7, 3}, {3, 3}, {3, 10}, {0, 10},
	}

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"left arm", Point2D{1.5, 8}, true},
		{"right arm", Point2D{8.5, 8}, true},
		{"bridge", Point2D{5, 1.5}, true},
		{"notch", Point2D{5, 8}, false},
		{"below", Point2D{5, 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, u); got != tt.want {
				t.Errorf("PointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point2D{0, 0}, nil) {
		t.Error("empty polygon should contain nothing")
	}
	if PointInPolygon(Point2D{1, 1}, []Point2D{{0, 0}, {2, 2}}) {
		t.Error("two-point polygon should contain nothing")
	}
}

func TestNearPoint(t *testing.T) {
	c := Point2D{10, 10}

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"exact", Point2D{10, 10}, true},
		{"left bound inclusive", Point2D{5, 10}, true},
		{"right bound inclusive", Point2D{15, 10}, true},
		{"top bound inclusive", Point2D{10, 5}, true},
		{"bottom bound inclusive", Point2D{10, 15}, true},
		{"corner of box", Point2D{15, 15}, true},
		{"just past right", Point2D{15.01, 10}, false},
		{"just past bottom", Point2D{10, 15.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearPoint(tt.p, c, 5); got != tt.want {
				t.Errorf("NearPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestNearEdge(t *testing.T) {
	if !NearEdge(97, 100, 3) {
		t.Error("97 should be within 3 of edge 100")
	}
	if !NearEdge(103, 100, 3) {
		t.Error("103 should be within 3 of edge 100")
	}
	if NearEdge(96.9, 100, 3) {
		t.Error("96.9 should be outside 3 of edge 100")
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{{3, 7}, {-1, 2}, {5, 4}}
	box := BoundingBox(pts)
	want := Rect{X: -1, Y: 2, Width: 6, Height: 5}
	if box != want {
		t.Errorf("BoundingBox = %+v, want %+v", box, want)
	}

	if (BoundingBox(nil) != Rect{}) {
		t.Error("BoundingBox of empty set should be zero rect")
	}
}
