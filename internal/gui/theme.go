package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// triptychTheme is a custom theme for triptych.
// It forces a dark appearance regardless of OS dark/light mode
// preference so the panels look the same on every platform.
type triptychTheme struct{}

var (
	// Panel and window colors
	darkBackground  = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF} // window background
	panelBackground = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xCC} // translucent gray panels
	panelText       = color.NRGBA{R: 0x99, G: 0xFF, B: 0x00, A: 0xFF} // green panel captions

	// Navigation button colors
	buttonPink    = color.NRGBA{R: 0xFF, G: 0xC0, B: 0xCB, A: 0xFF}
	buttonHovered = color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	buttonText    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}

	// Image frame
	imageBorder = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	darkSeparator = color.NRGBA{R: 0x3C, G: 0x3C, B: 0x3C, A: 0xFF}
	darkDisabled  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

// Color returns the color for the specified name, forcing dark mode.
func (t *triptychTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	// Explicitly ignore variant - the appearance is fixed.
	_ = variant

	switch name {
	case theme.ColorNameBackground:
		return darkBackground
	case theme.ColorNameForeground:
		return panelText
	case theme.ColorNameButton:
		return buttonPink
	case theme.ColorNameHover:
		return buttonHovered
	case theme.ColorNameForegroundOnPrimary:
		return buttonText
	case theme.ColorNamePrimary:
		return buttonPink
	case theme.ColorNameSeparator:
		return darkSeparator
	case theme.ColorNameDisabled:
		return darkDisabled
	case theme.ColorNameInputBackground:
		return panelBackground
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return darkBackground
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

// Font delegates to the default theme fonts.
func (t *triptychTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon delegates to the default theme icons.
func (t *triptychTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size delegates to the default theme sizes.
func (t *triptychTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
