package canvas

import (
	"image/color"

	"github.com/phanxgames/moodboard"
)

// Palette is the set of colors one theme draws with.
type Palette struct {
	Background      moodboard.Color
	Border          moodboard.Color
	PostIt          moodboard.Color
	PostItStroke    moodboard.Color
	PostItText      moodboard.Color
	Shadow          moodboard.Color
	SwatchCard      moodboard.Color
	SwatchText      moodboard.Color
	Text            moodboard.Color
	Placeholder     moodboard.Color
	SelectionBox    moodboard.Color
	SelectedRect    moodboard.Color
	DebugBackground moodboard.Color
}

// hex parses a known-good color literal.
func hex(s string) moodboard.Color {
	c, err := moodboard.ParseHexColor(s)
	if err != nil {
		panic("canvas: bad palette color " + s)
	}
	return c
}

var (
	darkPalette = Palette{
		Background:      hex("#0f172a"),
		Border:          hex("#94a3b8"),
		PostIt:          hex("#fde68a"),
		PostItStroke:    hex("#f59e0b"),
		PostItText:      hex("#1e293b"),
		Shadow:          hex("#020617").WithAlpha(0.6),
		SwatchCard:      hex("#1e293b"),
		SwatchText:      hex("#e2e8f0"),
		Text:            hex("#f1f5f9"),
		Placeholder:     hex("#334155"),
		SelectionBox:    hex("#60a5fa"),
		SelectedRect:    hex("#9333ea"),
		DebugBackground: hex("#000000").WithAlpha(0.5),
	}
	lightPalette = Palette{
		Background:      hex("#e2e8f0"),
		Border:          hex("#94a3b8"),
		PostIt:          hex("#fef08a"),
		PostItStroke:    hex("#eab308"),
		PostItText:      hex("#1e293b"),
		Shadow:          hex("#64748b").WithAlpha(0.5),
		SwatchCard:      hex("#f8fafc"),
		SwatchText:      hex("#0f172a"),
		Text:            hex("#0f172a"),
		Placeholder:     hex("#cbd5e1"),
		SelectionBox:    hex("#60a5fa"),
		SelectedRect:    hex("#9333ea"),
		DebugBackground: hex("#ffffff").WithAlpha(0.6),
	}
)

// PaletteFor returns the palette for a theme mode.
func PaletteFor(mode moodboard.ThemeMode) Palette {
	if mode == moodboard.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// toRGBA converts a straight-alpha color to premultiplied color.RGBA.
func toRGBA(c moodboard.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
