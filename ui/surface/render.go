package surface

import (
	"image"
	"image/color"

	"annotator/internal/annotation"
	"annotator/internal/waveform"
	"annotator/pkg/colorutil"
)

const (
	handleSize = 5 // half-size of drawn handle boxes, in pixels
	fillAlpha  = 70
	bandAlpha  = 110
)

// draw is the raster drawing function: backdrop, committed shapes,
// focused-shape handles, then the in-progress draft.
func (s *Surface) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	if !s.ensureInitialized(w, h) {
		return output
	}

	// Band layout tracks the rendered height.
	s.sess.Collection.SetHeight(float64(h))

	s.drawBackdrop(output, w, h)

	for _, shape := range s.sess.Collection.Shapes() {
		col := colorutil.Parse(s.sess.TagByName(shape.Tag).Color)
		s.drawShape(output, shape, col)
	}
	if f := s.sess.Collection.Focused(); f != nil {
		s.drawHandles(output, f)
	}

	if draft := s.sess.Machine.Draft(); draft != nil {
		col := colorutil.Parse(s.sess.Machine.ActiveTag().Color)
		s.drawShape(output, draft, col)
	}
	s.drawPolygonDraft(output)

	return output
}

// drawBackdrop composites the media source: a scaled image, or a waveform
// over black for audio sessions.
func (s *Surface) drawBackdrop(output *image.RGBA, w, h int) {
	src := s.sess.Source
	if src != nil && src.Image != nil {
		if scaled := src.Scaled(w, h); scaled != nil {
			copy(output.Pix, scaled.Pix)
			return
		}
	}

	// Opaque black background.
	for i := 3; i < len(output.Pix); i += 4 {
		output.Pix[i] = 255
	}

	if src == nil || len(src.Samples) == 0 {
		return
	}
	if s.peaksWidth != w {
		s.peaks = waveform.Compute(src.Samples, w)
		s.peaksWidth = w
	}

	mid := h / 2
	amp := float64(h) / 2
	peakCol := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	rmsCol := color.RGBA{R: 120, G: 180, B: 230, A: 255}
	for x, p := range s.peaks {
		y1 := mid - int(p.Max*amp)
		y2 := mid - int(p.Min*amp)
		drawVSpan(output, x, y1, y2, peakCol)
		r := int(p.RMS * amp)
		drawVSpan(output, x, mid-r, mid+r, rmsCol)
	}
}

func (s *Surface) drawShape(output *image.RGBA, shape *annotation.Shape, col color.RGBA) {
	switch shape.Kind {
	case annotation.KindInterval:
		span := shape.Span()
		x1, x2 := int(span.X), int(span.MaxX())
		y1, y2 := int(span.Y), int(span.MaxY())
		if shape.BandHeight <= 0 {
			y1, y2 = 0, output.Bounds().Dy()-1
		}
		fillRect(output, x1, y1, x2, y2, colorutil.WithAlpha(col, bandAlpha))
		// Solid edges double as the resize handles.
		drawVSpan(output, x1, y1, y2, col)
		drawVSpan(output, x2, y1, y2, col)
	case annotation.KindRectangle:
		span := shape.Span()
		x1, x2 := int(span.X), int(span.MaxX())
		y1, y2 := int(span.Y), int(span.MaxY())
		fillRect(output, x1, y1, x2, y2, colorutil.WithAlpha(col, fillAlpha))
		drawRectOutline(output, x1, y1, x2, y2, col)
	case annotation.KindPolygon:
		n := len(shape.Vertices)
		if n < 2 {
			return
		}
		for i := 0; i < n; i++ {
			a := shape.Vertices[i]
			b := shape.Vertices[(i+1)%n]
			drawLine(output, int(a.X), int(a.Y), int(b.X), int(b.Y), col)
		}
	}
}

// drawHandles marks the focused shape's grab points: interval edges,
// rectangle corners, or polygon vertices plus auxiliary midpoints.
func (s *Surface) drawHandles(output *image.RGBA, shape *annotation.Shape) {
	switch shape.Kind {
	case annotation.KindInterval:
		span := shape.Span()
		midY := int(span.Y + span.Height/2)
		drawHandle(output, int(span.X), midY, colorutil.White)
		drawHandle(output, int(span.MaxX()), midY, colorutil.White)
	case annotation.KindRectangle:
		for _, c := range shape.Corners() {
			drawHandle(output, int(c.X), int(c.Y), colorutil.White)
		}
	case annotation.KindPolygon:
		for _, v := range shape.ViewVertices() {
			col := colorutil.White
			if v.Auxiliary {
				col = colorutil.Gray
			}
			drawHandle(output, int(v.X), int(v.Y), col)
		}
	}
}

// drawPolygonDraft renders the open vertex chain of an unfinished
// polygon.
func (s *Surface) drawPolygonDraft(output *image.RGBA) {
	verts := s.sess.Machine.PolygonDraft()
	if len(verts) == 0 {
		return
	}
	col := colorutil.Parse(s.sess.Machine.ActiveTag().Color)
	for i := 0; i+1 < len(verts); i++ {
		drawLine(output, int(verts[i].X), int(verts[i].Y),
			int(verts[i+1].X), int(verts[i+1].Y), col)
	}
	for _, v := range verts {
		drawHandle(output, int(v.X), int(v.Y), colorutil.White)
	}
}

// fillRect blends a translucent fill over the region.
func fillRect(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := output.Bounds()
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	alpha := uint32(col.A)
	inv := 255 - alpha
	for y := y1; y <= y2; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			i := output.PixOffset(x, y)
			output.Pix[i] = uint8(uint32(col.R) + uint32(output.Pix[i])*inv/255)
			output.Pix[i+1] = uint8(uint32(col.G) + uint32(output.Pix[i+1])*inv/255)
			output.Pix[i+2] = uint8(uint32(col.B) + uint32(output.Pix[i+2])*inv/255)
		}
	}
}

// drawRectOutline draws a 2 pixel thick rectangle outline.
func drawRectOutline(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	for t := 0; t < 2; t++ {
		drawHSpan(output, x1, x2, y1+t, col)
		drawHSpan(output, x1, x2, y2-t, col)
		drawVSpan(output, x1+t, y1, y2, col)
		drawVSpan(output, x2-t, y1, y2, col)
	}
}

func drawHSpan(output *image.RGBA, x1, x2, y int, col color.RGBA) {
	bounds := output.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x >= bounds.Min.X && x < bounds.Max.X {
			output.SetRGBA(x, y, col)
		}
	}
}

func drawVSpan(output *image.RGBA, x, y1, y2 int, col color.RGBA) {
	bounds := output.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if y >= bounds.Min.Y && y < bounds.Max.Y {
			output.SetRGBA(x, y, col)
		}
	}
}

// drawLine draws a 1 pixel line using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := output.Bounds()
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			output.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// drawHandle draws a filled handle box with a dark border.
func drawHandle(output *image.RGBA, cx, cy int, col color.RGBA) {
	fillRectSolid(output, cx-handleSize, cy-handleSize, cx+handleSize, cy+handleSize, col)
	drawHSpan(output, cx-handleSize, cx+handleSize, cy-handleSize, colorutil.Black)
	drawHSpan(output, cx-handleSize, cx+handleSize, cy+handleSize, colorutil.Black)
	drawVSpan(output, cx-handleSize, cy-handleSize, cy+handleSize, colorutil.Black)
	drawVSpan(output, cx+handleSize, cy-handleSize, cy+handleSize, colorutil.Black)
}

func fillRectSolid(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := output.Bounds()
	for y := y1; y <= y2; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X {
				output.SetRGBA(x, y, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
