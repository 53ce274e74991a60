// Package waveform reduces decoded audio samples to per-pixel peaks for
// the backdrop drawn under interval annotations. Decoding itself happens
// upstream; this package only sees finished sample buffers.
package waveform

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Peak summarizes one pixel column of samples.
type Peak struct {
	Min float64
	Max float64
	RMS float64
}

// Compute reduces samples into width peaks, one per horizontal pixel.
// Samples are assumed normalized to [-1, 1]; use Normalize first if not.
// Returns nil when there is nothing to draw.
func Compute(samples []float64, width int) []Peak {
	if len(samples) == 0 || width <= 0 {
		return nil
	}

	peaks := make([]Peak, width)
	step := float64(len(samples)) / float64(width)
	for i := 0; i < width; i++ {
		lo := int(float64(i) * step)
		hi := int(float64(i+1) * step)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > len(samples) {
			hi = len(samples)
		}
		win := samples[lo:hi]
		peaks[i] = Peak{
			Min: floats.Min(win),
			Max: floats.Max(win),
			RMS: math.Sqrt(floats.Dot(win, win) / float64(len(win))),
		}
	}
	return peaks
}

// Normalize scales samples in place so the largest magnitude becomes 1.
// A silent buffer is left untouched.
func Normalize(samples []float64) {
	if len(samples) == 0 {
		return
	}
	peak := math.Max(math.Abs(floats.Max(samples)), math.Abs(floats.Min(samples)))
	if peak == 0 {
		return
	}
	floats.Scale(1/peak, samples)
}
