package theme

import (
	"image/color"

	"stretchtimer/internal/core/model"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors of one theme.
type Palette struct {
	Background     color.NRGBA
	Foreground     color.NRGBA
	Accent         color.NRGBA
	AccentHover    color.NRGBA
	Card           color.NRGBA
	Success        color.NRGBA
	Warning        color.NRGBA
	StepBackground color.NRGBA
	StepNumber     color.NRGBA
	Disabled       color.NRGBA
}

var palettes = map[model.Theme]Palette{
	model.ThemeLight: {
		Background:     mustHex("#f0f4f8"),
		Foreground:     mustHex("#1a202c"),
		Accent:         mustHex("#4299e1"),
		AccentHover:    mustHex("#3182ce"),
		Card:           mustHex("#ffffff"),
		Success:        mustHex("#48bb78"),
		Warning:        mustHex("#ed8936"),
		StepBackground: mustHex("#f7fafc"),
		StepNumber:     mustHex("#4299e1"),
		Disabled:       mustHex("#a0aec0"),
	},
	model.ThemeDark: {
		Background:     mustHex("#1a202c"),
		Foreground:     mustHex("#e2e8f0"),
		Accent:         mustHex("#63b3ed"),
		AccentHover:    mustHex("#4299e1"),
		Card:           mustHex("#2d3748"),
		Success:        mustHex("#68d391"),
		Warning:        mustHex("#f6ad55"),
		StepBackground: mustHex("#374151"),
		StepNumber:     mustHex("#63b3ed"),
		Disabled:       mustHex("#718096"),
	},
}

// PaletteFor returns the palette for theme, defaulting to light.
func PaletteFor(theme model.Theme) Palette {
	if palette, ok := palettes[theme]; ok {
		return palette
	}
	return palettes[model.ThemeLight]
}

// Theme adapts a Palette to fyne.Theme.
type Theme struct {
	palette Palette
	variant fyne.ThemeVariant
}

// New returns the fyne theme for the given setting.
func New(theme model.Theme) *Theme {
	variant := fynetheme.VariantLight
	if theme == model.ThemeDark {
		variant = fynetheme.VariantDark
	}
	return &Theme{palette: PaletteFor(theme), variant: variant}
}

// Palette returns the colors in use.
func (current *Theme) Palette() Palette {
	return current.palette
}

// Color implements fyne.Theme. The requested variant is ignored: the user's
// theme setting wins over the desktop preference.
func (current *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	palette := current.palette
	switch name {
	case fynetheme.ColorNameBackground:
		return palette.Background
	case fynetheme.ColorNameForeground:
		return palette.Foreground
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return palette.Accent
	case fynetheme.ColorNameHover:
		return withAlpha(palette.AccentHover, 0x40)
	case fynetheme.ColorNameButton, fynetheme.ColorNameInputBackground, fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return palette.Card
	case fynetheme.ColorNameSuccess:
		return palette.Success
	case fynetheme.ColorNameWarning:
		return palette.Warning
	case fynetheme.ColorNameDisabled, fynetheme.ColorNamePlaceHolder:
		return palette.Disabled
	}
	return fynetheme.DefaultTheme().Color(name, current.variant)
}

// Font implements fyne.Theme.
func (current *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

// Icon implements fyne.Theme.
func (current *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

// Size implements fyne.Theme.
func (current *Theme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

func mustHex(value string) color.NRGBA {
	parsed, err := colorful.Hex(value)
	if err != nil {
		panic(err)
	}
	red, green, blue := parsed.RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: 0xff}
}

func withAlpha(value color.NRGBA, alpha uint8) color.NRGBA {
	value.A = alpha
	return value
}
