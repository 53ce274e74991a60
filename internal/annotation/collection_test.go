package annotation

import (
	"testing"

	"annotator/pkg/geometry"
)

func interval(tag string, start, end float64) *Shape {
	return &Shape{Kind: KindInterval, Tag: tag, Start: start, End: end}
}

func TestAddSortsByPrimaryCoordinate(t *testing.T) {
	c := NewCollection(100)
	c.Add(interval("a", 50, 70))
	c.Add(interval("b", 10, 20))
	c.Add(interval("c", 30, 40))

	starts := []float64{}
	for _, s := range c.Shapes() {
		starts = append(starts, s.Start)
	}
	for i := 1; i < len(starts); i++ {
		if starts[i-1] > starts[i] {
			t.Fatalf("collection not sorted by start: %v", starts)
		}
	}
}

func TestFocusExclusivity(t *testing.T) {
	c := NewCollection(100)
	a := interval("a", 0, 10)
	b := interval("b", 20, 30)
	c.Add(a)
	c.Add(b)

	c.Focus(a)
	if !a.Focused || b.Focused {
		t.Fatal("focusing a should leave only a focused")
	}

	c.Focus(b)
	if a.Focused {
		t.Error("focusing b must unfocus a")
	}
	if !b.Focused {
		t.Error("b should be focused")
	}

	c.ClearFocus()
	if c.Focused() != nil {
		t.Error("clear focus should leave no shape focused")
	}
}

func TestChangeNotificationCarriesFullList(t *testing.T) {
	c := NewCollection(100)
	var gotLen int
	var calls int
	c.OnChange(func(shapes []*Shape) {
		calls++
		gotLen = len(shapes)
	})

	c.Add(interval("a", 0, 10))
	c.Add(interval("b", 20, 30))
	if calls != 2 || gotLen != 2 {
		t.Errorf("expected 2 notifications with full list, got calls=%d len=%d", calls, gotLen)
	}

	c.Focus(c.Shapes()[0])
	c.RemoveFocused()
	if calls != 3 || gotLen != 1 {
		t.Errorf("remove should notify with remaining list, got calls=%d len=%d", calls, gotLen)
	}

	c.RemoveAll()
	if gotLen != 0 {
		t.Errorf("remove all should notify with empty list, got len=%d", gotLen)
	}
}

func TestRelayoutMergesSameTagAndTransfersFocus(t *testing.T) {
	c := NewCollection(100)
	a := interval("a", 0, 20)
	b := interval("a", 15, 40)
	c.Add(a)
	c.Focus(a)
	c.Add(b)

	if c.Len() != 1 {
		t.Fatalf("touching same-tag intervals should merge, got %d shapes", c.Len())
	}
	merged := c.Shapes()[0]
	if merged.Start != 0 || merged.End != 40 {
		t.Errorf("merged extent = [%v,%v], want [0,40]", merged.Start, merged.End)
	}
	if c.Focused() == nil {
		t.Error("focus should survive a merge that absorbs the focused shape")
	}
}

func TestSetTagOnFocusedTriggersRelayout(t *testing.T) {
	c := NewCollection(100)
	a := interval("a", 0, 20)
	b := interval("b", 15, 40)
	c.Add(a)
	c.Add(b)
	if c.Len() != 2 {
		t.Fatalf("different tags must not merge, got %d shapes", c.Len())
	}

	c.Focus(b)
	c.SetTagOnFocused("a")
	if c.Len() != 1 {
		t.Fatalf("tag change should re-merge overlapping same-tag intervals, got %d", c.Len())
	}
	if s := c.Shapes()[0]; s.Start != 0 || s.End != 40 {
		t.Errorf("merged extent = [%v,%v], want [0,40]", s.Start, s.End)
	}
}

func TestHitTestPrefersFocusedShape(t *testing.T) {
	c := NewCollection(100)
	a := &Shape{Kind: KindRectangle, Tag: "a", X1: 0, Y1: 0, X2: 50, Y2: 50}
	b := &Shape{Kind: KindRectangle, Tag: "b", X1: 25, Y1: 25, X2: 75, Y2: 75}
	c.Add(a)
	c.Add(b)

	p := geometry.Point2D{X: 40, Y: 40} // inside both
	c.Focus(b)
	if got := c.HitTest(p); got != b {
		t.Errorf("hit test should prefer the focused shape")
	}
	c.Focus(a)
	if got := c.HitTest(p); got != a {
		t.Errorf("hit test should prefer the focused shape after refocus")
	}
	if got := c.HitTest(geometry.Point2D{X: 200, Y: 200}); got != nil {
		t.Errorf("hit test outside all shapes should return nil, got %+v", got)
	}
}

func TestIntervalBandsAssignedOnCommit(t *testing.T) {
	c := NewCollection(90)
	c.Add(interval("a", 0, 20))
	c.Add(interval("b", 10, 30))

	shapes := c.Shapes()
	if shapes[0].BandHeight == 0 || shapes[1].BandHeight == 0 {
		t.Fatal("overlapping intervals should carry layout bands after commit")
	}
	top, bottom := shapes[0], shapes[1]
	if top.BandY+top.BandHeight > bottom.BandY+1e-9 && bottom.BandY+bottom.BandHeight > top.BandY+1e-9 {
		if top.BandY < bottom.BandY+bottom.BandHeight && bottom.BandY < top.BandY+top.BandHeight {
			t.Errorf("overlapping intervals share band space: %+v vs %+v", top, bottom)
		}
	}
}

func TestPolygonBoundsRefreshedOnCommit(t *testing.T) {
	c := NewCollection(100)
	s := &Shape{Kind: KindPolygon, Tag: "a", Vertices: []Vertex{
		{Point2D: geometry.Point2D{X: 0, Y: 0}},
		{Point2D: geometry.Point2D{X: 10, Y: 0}},
		{Point2D: geometry.Point2D{X: 5, Y: 10}},
	}}
	c.Add(s)
	if s.Bounds.Width != 10 || s.Bounds.Height != 10 {
		t.Errorf("bounding box not recomputed on commit: %+v", s.Bounds)
	}
}
