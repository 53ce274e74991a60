// Package colorutil resolves tag color specifications to drawable colors.
package colorutil

import (
	"image/color"
	"strconv"
	"strings"
)

// Common overlay colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Theme tokens accepted in tag colors, in the "$name" form hosts use.
var themeColors = map[string]color.RGBA{
	"$red":    {R: 0xd1, G: 0x34, B: 0x38, A: 255},
	"$green":  {R: 0x10, G: 0x7c, B: 0x10, A: 255},
	"$blue":   {R: 0x00, G: 0x78, B: 0xd4, A: 255},
	"$yellow": {R: 0xff, G: 0xb9, B: 0x00, A: 255},
	"$orange": {R: 0xd8, G: 0x3b, B: 0x01, A: 255},
	"$purple": {R: 0x5c, G: 0x2e, B: 0x91, A: 255},
	"$brown":  {R: 0x8e, G: 0x56, B: 0x2e, A: 255},
	"$cyan":   {R: 0x03, G: 0x83, B: 0x87, A: 255},
	"$gray":   Gray,
}

// Parse resolves a tag color: "#rgb", "#rrggbb", or a "$name" theme
// token. Unknown specifications fall back to gray so a bad palette never
// breaks rendering.
func Parse(spec string) color.RGBA {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if c, ok := themeColors[spec]; ok {
		return c
	}
	if !strings.HasPrefix(spec, "#") {
		return Gray
	}
	hex := spec[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Gray
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Gray
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// WithAlpha returns the color with the given alpha, premultiplied the way
// image/color.RGBA expects.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := uint32(a)
	return color.RGBA{
		R: uint8(uint32(c.R) * scale / 255),
		G: uint8(uint32(c.G) * scale / 255),
		B: uint8(uint32(c.B) * scale / 255),
		A: a,
	}
}
