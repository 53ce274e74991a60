// Package session ties one annotator surface together: the tag palette,
// the committed collection, the gesture machine, and persistence of the
// annotation list. One session lives as long as its surface; no shape
// outlives it.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"annotator/internal/annotation"
	"annotator/internal/interaction"
	"annotator/internal/media"
)

// Session is the per-surface state. All access happens on the host's
// event loop; commits are atomic within one pointer-up, so no locking is
// needed.
type Session struct {
	Kind       annotation.Kind
	Tags       []annotation.Tag
	Collection *annotation.Collection
	Machine    *interaction.Machine
	Source     *media.Source

	// PixelsPerSecond maps the surface's horizontal axis to seconds for
	// interval sessions. Zero keeps everything in pixels.
	PixelsPerSecond float64

	Modified bool
	onCommit []func()
}

// New creates a session for the given shape kind. height is the vertical
// extent available for interval layout bands.
func New(cfg interaction.Config, tags []annotation.Tag, height float64) *Session {
	coll := annotation.NewCollection(height)
	s := &Session{
		Kind:            cfg.Kind,
		Tags:            tags,
		Collection:      coll,
		Machine:         interaction.NewMachine(coll, cfg),
		PixelsPerSecond: cfg.PixelsPerSecond,
	}
	if len(tags) > 0 {
		s.Machine.SetActiveTag(tags[0])
	}
	coll.OnChange(func([]*annotation.Shape) {
		s.Modified = true
		for _, fn := range s.onCommit {
			fn()
		}
	})
	return s
}

// OnCommit registers a listener invoked whenever the authoritative
// collection changes. Listeners read the serialized list through the
// Export accessors.
func (s *Session) OnCommit(fn func()) {
	s.onCommit = append(s.onCommit, fn)
}

// SetActiveTag switches the tag applied to new shapes, by name. Unknown
// names are ignored.
func (s *Session) SetActiveTag(name string) bool {
	for _, t := range s.Tags {
		if t.Name == name {
			s.Machine.SetActiveTag(t)
			return true
		}
	}
	return false
}

// TagByName resolves a tag from the palette, falling back to a gray
// placeholder for unknown names.
func (s *Session) TagByName(name string) annotation.Tag {
	for _, t := range s.Tags {
		if t.Name == name {
			return t
		}
	}
	return annotation.Tag{Name: name, Label: name, Color: "#808080"}
}

// fileFormat is the on-disk session file: the external wire format plus a
// kind discriminator so a file round-trips through the right importer.
type fileFormat struct {
	Kind      string                    `json:"kind"`
	Intervals []annotation.IntervalItem `json:"intervals,omitempty"`
	Rects     []annotation.RectItem     `json:"rectangles,omitempty"`
	Polygons  []annotation.PolygonItem  `json:"polygons,omitempty"`
}

// Save writes the committed annotations to path in the external format.
func (s *Session) Save(path string) error {
	f := fileFormat{Kind: s.Kind.String()}
	switch s.Kind {
	case annotation.KindInterval:
		f.Intervals = s.Collection.ExportIntervals(s.PixelsPerSecond)
	case annotation.KindRectangle:
		f.Rects = s.Collection.ExportRects()
	case annotation.KindPolygon:
		f.Polygons = s.Collection.ExportPolygons()
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal annotations: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write annotations: %w", err)
	}
	s.Modified = false
	return nil
}

// Load replaces the collection with the annotations stored at path.
func (s *Session) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read annotations: %w", err)
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal annotations: %w", err)
	}
	if f.Kind != "" && f.Kind != s.Kind.String() {
		return fmt.Errorf("annotation file kind %q does not match session kind %q",
			f.Kind, s.Kind)
	}

	switch s.Kind {
	case annotation.KindInterval:
		s.Collection.ImportIntervals(f.Intervals, s.PixelsPerSecond)
	case annotation.KindRectangle:
		s.Collection.ImportRects(f.Rects)
	case annotation.KindPolygon:
		s.Collection.ImportPolygons(f.Polygons)
	}
	s.Modified = false
	return nil
}
