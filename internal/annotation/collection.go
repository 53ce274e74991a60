package annotation

import (
	"sort"

	"annotator/internal/layout"
	"annotator/pkg/geometry"
)

// Collection owns the authoritative list of committed shapes for one
// annotator session. Every mutating operation re-sorts by primary
// coordinate, relayouts, and hands the complete list to the change
// listener. All access is single-threaded on the host's event loop.
type Collection struct {
	shapes []*Shape
	height float64

	onChange func([]*Shape)
}

// NewCollection creates an empty collection. height is the vertical
// extent available for interval layout bands.
func NewCollection(height float64) *Collection {
	return &Collection{height: height}
}

// OnChange registers the listener notified with the full shape list after
// every authoritative mutation.
func (c *Collection) OnChange(fn func([]*Shape)) {
	c.onChange = fn
}

// SetHeight updates the vertical extent and restacks interval bands.
func (c *Collection) SetHeight(h float64) {
	if h == c.height {
		return
	}
	c.height = h
	c.Relayout()
}

// Height returns the vertical extent used for interval bands.
func (c *Collection) Height() float64 { return c.height }

// Shapes returns the committed shapes in primary-coordinate order. The
// slice is owned by the collection; callers must not mutate it.
func (c *Collection) Shapes() []*Shape { return c.shapes }

// Len returns the number of committed shapes.
func (c *Collection) Len() int { return len(c.shapes) }

// Add commits a shape. The shape is normalized, the collection re-sorted
// and relaid out, and the listener notified.
func (c *Collection) Add(s *Shape) {
	s.Normalize()
	c.shapes = append(c.shapes, s)
	c.commit()
}

// Committed finalizes an in-place mutation of an already-committed shape
// (move or resize).
func (c *Collection) Committed(s *Shape) {
	s.Normalize()
	c.commit()
}

// RemoveFocused deletes the focused shape, if any.
func (c *Collection) RemoveFocused() {
	for i, s := range c.shapes {
		if s.Focused {
			c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
			c.commit()
			return
		}
	}
}

// RemoveAll resets the collection to empty.
func (c *Collection) RemoveAll() {
	if len(c.shapes) == 0 {
		return
	}
	c.shapes = nil
	c.commit()
}

// SetTagOnFocused reassigns the focused shape's tag. For intervals this
// can change the merge result, so a full relayout follows.
func (c *Collection) SetTagOnFocused(tag string) {
	for _, s := range c.shapes {
		if s.Focused {
			s.Tag = tag
			c.commit()
			return
		}
	}
}

// Focus gives s exclusive focus. A nil shape clears focus everywhere.
func (c *Collection) Focus(target *Shape) {
	for _, s := range c.shapes {
		s.Focused = s == target && target != nil
	}
}

// ClearFocus unfocuses every shape.
func (c *Collection) ClearFocus() {
	c.Focus(nil)
}

// Focused returns the focused shape, or nil.
func (c *Collection) Focused() *Shape {
	for _, s := range c.shapes {
		if s.Focused {
			return s
		}
	}
	return nil
}

// HitTest returns the shape whose body contains p. The focused shape is
// checked first so it keeps priority when shapes overlap.
func (c *Collection) HitTest(p geometry.Point2D) *Shape {
	if f := c.Focused(); f != nil && f.Contains(p) {
		return f
	}
	for _, s := range c.shapes {
		if s.Contains(p) {
			return s
		}
	}
	return nil
}

// commit re-sorts, relayouts, and notifies. Called after every
// authoritative mutation.
func (c *Collection) commit() {
	c.sortShapes()
	c.Relayout()
	c.notify()
}

func (c *Collection) sortShapes() {
	sort.SliceStable(c.shapes, func(i, j int) bool {
		return c.shapes[i].Primary() < c.shapes[j].Primary()
	})
}

// Relayout restacks interval bands via the layout engine and refreshes
// polygon bounding boxes. Interval merging can drop shapes from the
// collection; focus transfers to the absorbing survivor.
func (c *Collection) Relayout() {
	var intervals []layout.Interval
	byIndex := map[int]*Shape{}
	for i, s := range c.shapes {
		switch s.Kind {
		case KindInterval:
			intervals = append(intervals, layout.Interval{
				Start: s.Start,
				End:   s.End,
				Tag:   s.Tag,
				Seq:   i,
			})
			byIndex[i] = s
		case KindPolygon:
			s.RecomputeBounds()
		}
	}
	if len(intervals) == 0 {
		return
	}

	placed := layout.Stack(intervals, c.height)

	survivors := make(map[*Shape]layout.Placement, len(placed))
	for _, p := range placed {
		survivors[byIndex[p.Seq]] = p
	}

	var dropped *Shape
	kept := c.shapes[:0]
	for _, s := range c.shapes {
		if s.Kind != KindInterval {
			kept = append(kept, s)
			continue
		}
		p, ok := survivors[s]
		if !ok {
			if s.Focused {
				dropped = s
			}
			continue
		}
		s.Start = p.Start
		s.End = p.End
		s.BandY = p.Y
		s.BandHeight = p.Height
		kept = append(kept, s)
	}
	c.shapes = kept

	if dropped != nil {
		// The focused interval merged into a same-tag neighbor;
		// focus follows the merged range.
		for _, s := range c.shapes {
			if s.Kind == KindInterval && s.Tag == dropped.Tag &&
				dropped.Start >= s.Start && dropped.Start <= s.End {
				c.Focus(s)
				return
			}
		}
	}
}

func (c *Collection) notify() {
	if c.onChange != nil {
		c.onChange(c.shapes)
	}
}
