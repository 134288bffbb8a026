package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SplashyTheme pins the widget variant to the session's dark mode flag
// instead of the system setting, with a blue accent to match the
// selection chrome.
type SplashyTheme struct {
	Dark bool
}

var _ fyne.Theme = (*SplashyTheme)(nil)

func (t *SplashyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	v := theme.VariantLight
	if t.Dark {
		v = theme.VariantDark
	}
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x1E, G: 0x66, B: 0xF5, A: 0xFF} // Blue for ink accents
	default:
		return theme.DefaultTheme().Color(name, v)
	}
}

func (t *SplashyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *SplashyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *SplashyTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
