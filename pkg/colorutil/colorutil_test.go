package colorutil

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want color.RGBA
	}{
		{"long hex", "#0078d4", color.RGBA{R: 0x00, G: 0x78, B: 0xd4, A: 255}},
		{"short hex", "#f0a", color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 255}},
		{"uppercase", "#FF0000", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"theme token", "$blue", color.RGBA{R: 0x00, G: 0x78, B: 0xd4, A: 255}},
		{"theme brown", "$brown", color.RGBA{R: 0x8e, G: 0x56, B: 0x2e, A: 255}},
		{"unknown token", "$plaid", Gray},
		{"garbage", "notacolor", Gray},
		{"bad hex digits", "#zzzzzz", Gray},
		{"wrong length", "#12345", Gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.spec); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 128)
	if got.A != 128 {
		t.Errorf("alpha = %d, want 128", got.A)
	}
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("channels should be premultiplied, got %+v", got)
	}
}
