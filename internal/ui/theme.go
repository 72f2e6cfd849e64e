package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// swatchTheme is a compact theme that paints one background/foreground pair.
// Every themed node and the application itself get their own instance.
type swatchTheme struct {
	background color.Color
	foreground color.Color
}

func newSwatchTheme(background, foreground color.Color) fyne.Theme {
	return &swatchTheme{background: background, foreground: foreground}
}

// Color returns theme colors
func (t *swatchTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground,
		theme.ColorNameButton,
		theme.ColorNameInputBackground,
		theme.ColorNameMenuBackground,
		theme.ColorNameOverlayBackground,
		theme.ColorNameHeaderBackground:
		if t.background != nil {
			return t.background
		}
	case theme.ColorNameForeground, theme.ColorNamePlaceHolder:
		if t.foreground != nil {
			return t.foreground
		}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *swatchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *swatchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *swatchTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
