// Package surface provides the Fyne widget hosting one annotator session:
// pointer events in, raster redraws out.
package surface

import (
	"time"

	"annotator/internal/interaction"
	"annotator/internal/session"
	"annotator/internal/waveform"
	"annotator/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	initRetryStart = 100 * time.Millisecond
	initRetryMax   = 2 * time.Second
)

// Surface is the annotator widget. It owns no annotation state of its
// own; everything flows through the session's machine and collection.
type Surface struct {
	widget.BaseWidget

	sess   *session.Session
	raster *fynecanvas.Raster

	// Cached waveform peaks, recomputed when the pixel width changes.
	peaks      []waveform.Peak
	peaksWidth int

	hover    geometry.Point2D
	onStatus func(string)

	initialized bool
	retryDelay  time.Duration
}

// New creates a surface widget over the given session.
func New(sess *session.Session) *Surface {
	s := &Surface{sess: sess, retryDelay: initRetryStart}
	s.raster = fynecanvas.NewRaster(s.draw)
	s.raster.ScaleMode = fynecanvas.ImageScalePixels
	s.ExtendBaseWidget(s)

	sess.Machine.OnDraw(func() {
		s.raster.Refresh()
		if s.onStatus != nil {
			s.onStatus(sess.Machine.Status())
		}
	})
	sess.OnCommit(func() {
		s.raster.Refresh()
	})
	return s
}

// OnStatus registers a listener for the live gesture readout.
func (s *Surface) OnStatus(fn func(string)) { s.onStatus = fn }

// Refresh redraws the surface.
func (s *Surface) Refresh() {
	s.raster.Refresh()
	s.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

// MinSize implements fyne.Widget.
func (s *Surface) MinSize() fyne.Size {
	return fyne.NewSize(200, 120)
}

func (s *Surface) extent() geometry.Size {
	size := s.Size()
	return geometry.NewSize(float64(size.Width), float64(size.Height))
}

func point(ev *desktop.MouseEvent) geometry.Point2D {
	return geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseDown implements desktop.Mouseable.
func (s *Surface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.sess.Machine.PointerDown(point(ev), s.extent())
}

// MouseUp implements desktop.Mouseable.
func (s *Surface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.sess.Machine.PointerUp(point(ev), s.extent())
}

// MouseIn implements desktop.Hoverable.
func (s *Surface) MouseIn(ev *desktop.MouseEvent) {
	s.hover = point(ev)
}

// MouseMoved implements desktop.Hoverable. Fyne delivers moves here with
// and without a button held, which is exactly the engine's event model.
func (s *Surface) MouseMoved(ev *desktop.MouseEvent) {
	s.hover = point(ev)
	s.sess.Machine.PointerMove(s.hover, s.extent())
}

// MouseOut implements desktop.Hoverable. Leaving the surface abandons any
// in-progress gesture without committing.
func (s *Surface) MouseOut() {
	s.sess.Machine.PointerLeave()
}

// Cursor implements desktop.Cursorable, mapping the engine's affordance
// at the last hover position onto Fyne's fixed cursor set.
func (s *Surface) Cursor() desktop.Cursor {
	switch s.sess.Machine.CursorAt(s.hover) {
	case interaction.CursorMove:
		return desktop.CrosshairCursor
	case interaction.CursorResizeH:
		return desktop.HResizeCursor
	case interaction.CursorResizeCorner:
		return desktop.HResizeCursor
	case interaction.CursorSelect:
		return desktop.PointerCursor
	default:
		return desktop.DefaultCursor
	}
}

// ensureInitialized marks the surface ready once it reports a usable
// size. Until then drawing is a no-op and a backoff timer retries.
func (s *Surface) ensureInitialized(w, h int) bool {
	if s.initialized {
		return true
	}
	if w > 0 && h > 0 {
		s.initialized = true
		return true
	}
	delay := s.retryDelay
	if s.retryDelay < initRetryMax {
		s.retryDelay *= 2
	}
	time.AfterFunc(delay, s.raster.Refresh)
	return false
}
