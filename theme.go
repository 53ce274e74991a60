package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// annotatorTheme darkens the chrome so annotation colors stand out.
type annotatorTheme struct{}

var _ fyne.Theme = (*annotatorTheme)(nil)

func (t *annotatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x00, G: 0x78, B: 0xD4, A: 0xFF}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x00, G: 0x78, B: 0xD4, A: 0x60}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *annotatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *annotatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *annotatorTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
