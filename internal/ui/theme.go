package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FormTheme is a compact theme that keeps disabled buttons clearly distinct
// from enabled ones.
type FormTheme struct{}

// NewFormTheme creates the form theme
func NewFormTheme() fyne.Theme {
	return &FormTheme{}
}

// Color returns theme colors
func (t *FormTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameDisabled:
		if variant == theme.VariantDark {
			return color.RGBA{R: 110, G: 110, B: 110, A: 255}
		}
		return color.RGBA{R: 170, G: 170, B: 170, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *FormTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FormTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *FormTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // default 4
	case theme.SizeNameInnerPadding:
		return 6 // default 8
	case theme.SizeNameText:
		return 13 // default 14
	case theme.SizeNameInputRadius:
		return 3 // default 5
	}

	return theme.DefaultTheme().Size(name)
}
