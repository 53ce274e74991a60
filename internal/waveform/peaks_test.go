package waveform

import (
	"math"
	"testing"
)

func TestComputePeakCountMatchesWidth(t *testing.T) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = math.Sin(float64(i) / 20)
	}

	for _, width := range []int{1, 50, 320, 1000, 2000} {
		peaks := Compute(samples, width)
		if len(peaks) != width {
			t.Errorf("width %d: got %d peaks", width, len(peaks))
		}
	}
}

func TestComputePeaksBoundSamples(t *testing.T) {
	samples := make([]float64, 512)
	for i := range samples {
		samples[i] = math.Sin(float64(i)/7) * 0.8
	}

	for i, p := range Compute(samples, 64) {
		if p.Min > p.Max {
			t.Errorf("peak %d: min %v > max %v", i, p.Min, p.Max)
		}
		if p.Min < -0.8-1e-9 || p.Max > 0.8+1e-9 {
			t.Errorf("peak %d exceeds sample range: %+v", i, p)
		}
		bound := math.Max(math.Abs(p.Min), math.Abs(p.Max))
		if p.RMS > bound+1e-9 {
			t.Errorf("peak %d: RMS %v exceeds amplitude bound %v", i, p.RMS, bound)
		}
	}
}

func TestComputeDegenerate(t *testing.T) {
	if Compute(nil, 100) != nil {
		t.Error("empty samples should yield nil")
	}
	if Compute([]float64{1, 2}, 0) != nil {
		t.Error("zero width should yield nil")
	}
}

func TestNormalize(t *testing.T) {
	samples := []float64{0.5, -2.0, 1.0}
	Normalize(samples)
	if samples[1] != -1.0 {
		t.Errorf("largest magnitude should become 1, got %v", samples[1])
	}
	if samples[0] != 0.25 || samples[2] != 0.5 {
		t.Errorf("remaining samples not scaled proportionally: %v", samples)
	}

	silent := []float64{0, 0, 0}
	Normalize(silent)
	for _, s := range silent {
		if s != 0 {
			t.Error("silence should be left untouched")
		}
	}
}
