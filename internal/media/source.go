// Package media holds the already-decoded source an annotator surface
// renders behind its shapes: a still image or an audio sample buffer.
// Decoding binary formats is the host's job; this package only loads
// images through the standard registry and carries sample buffers it is
// handed.
package media

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"annotator/pkg/geometry"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Source is the backdrop for one annotator surface. Exactly one of Image
// or Samples is set.
type Source struct {
	Path string

	// Image backdrop for rectangle/polygon annotation.
	Image image.Image

	// Decoded mono samples for interval annotation, normalized to
	// [-1, 1], with the rate they were sampled at.
	Samples    []float64
	SampleRate float64
}

// LoadImage loads an image backdrop from disk (PNG, JPEG, or TIFF).
func LoadImage(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Source{Path: path, Image: img}, nil
}

// FromSamples wraps an already-decoded sample buffer.
func FromSamples(samples []float64, sampleRate float64) *Source {
	return &Source{Samples: samples, SampleRate: sampleRate}
}

// Size returns the image dimensions, or zero for an audio source.
func (s *Source) Size() geometry.Size {
	if s.Image == nil {
		return geometry.Size{}
	}
	b := s.Image.Bounds()
	return geometry.NewSize(float64(b.Dx()), float64(b.Dy()))
}

// Duration returns the audio length in seconds, or zero for an image
// source.
func (s *Source) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Samples)) / s.SampleRate
}

// Scaled renders the image backdrop at the given surface size.
func (s *Source) Scaled(w, h int) *image.RGBA {
	if s.Image == nil || w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.Image, s.Image.Bounds(), xdraw.Src, nil)
	return dst
}
