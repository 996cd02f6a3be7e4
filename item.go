package moodboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ItemKind distinguishes the placeable item types.
type ItemKind uint8

const (
	ItemPostIt ItemKind = iota // sticky note with wrapped text
	ItemSwatch                 // color swatch with hex label
	ItemText                   // free-standing single-line text box
	ItemImage                  // image loaded from a path, fitted into MaxImageSize
)

// Item geometry in world units.
var (
	PostItSize   = Vec2{400, 420}
	SwatchSize   = Vec2{220, 250}
	MaxImageSize = Vec2{800, 534}

	// TextPadding is added to the measured text size to get a text box.
	TextPadding = Vec2{20, 20}
)

// TextFontSize is the font size text boxes are measured and drawn at.
const TextFontSize = 48

// ErrUnknownItemKind is returned when an item kind name cannot be parsed.
var ErrUnknownItemKind = errors.New("moodboard: unknown item kind")

func (k ItemKind) String() string {
	switch k {
	case ItemPostIt:
		return "postit"
	case ItemSwatch:
		return "swatch"
	case ItemText:
		return "text"
	case ItemImage:
		return "image"
	default:
		return "unknown"
	}
}

// ParseItemKind converts a kind name ("postit", "post-it", "note",
// "swatch", "text", "image") into an ItemKind.
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postit", "post-it", "note":
		return ItemPostIt, nil
	case "swatch", "color":
		return ItemSwatch, nil
	case "text":
		return ItemText, nil
	case "image":
		return ItemImage, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownItemKind, s)
}

// ParseHexColor parses "#rrggbb", "rrggbb" or "#rgb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}

// Hex formats the color as lowercase "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// FitSize scales an image of size (w, h) to fit inside bound while keeping
// its aspect ratio. Degenerate sizes return bound unchanged.
func FitSize(bound Vec2, w, h float64) Vec2 {
	if w <= 0 || h <= 0 {
		return bound
	}
	ratio := bound.X / w
	if ry := bound.Y / h; ry < ratio {
		ratio = ry
	}
	return Vec2{w * ratio, h * ratio}
}

// TextMeasurer reports the rendered size of a string at TextFontSize.
// The canvas runtime supplies one backed by real font metrics.
type TextMeasurer interface {
	MeasureText(s string) (w, h float64)
}

// approxMeasurer estimates text size from rune count when no font is loaded.
type approxMeasurer struct{}

func (approxMeasurer) MeasureText(s string) (float64, float64) {
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > widest {
			widest = n
		}
	}
	return float64(widest) * TextFontSize * 0.55, float64(len(lines)) * TextFontSize * 1.2
}

// itemSize returns the full width and height an item of kind is created with.
func itemSize(kind ItemKind, content string, m TextMeasurer) Vec2 {
	switch kind {
	case ItemPostIt:
		return PostItSize
	case ItemSwatch:
		return SwatchSize
	case ItemImage:
		return MaxImageSize
	default:
		w, h := m.MeasureText(content)
		return Vec2{w, h}.Add(TextPadding)
	}
}
