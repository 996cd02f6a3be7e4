package canvas

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/moodboard"
	"golang.org/x/image/font/gofont/goregular"
)

// lineSpacing is the line advance as a multiple of the font size.
const lineSpacing = 1.2

// Text lays out and draws board text with the Go Regular font. It also
// measures text-box items for the board.
type Text struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewText loads the embedded font.
func NewText() (*Text, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Text{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// face returns a cached face for size, rounded to a quarter pixel so zoom
// changes do not grow the cache without bound.
func (t *Text) face(size float64) *text.GoTextFace {
	size = float64(int(size*4+0.5)) / 4
	if size < 1 {
		size = 1
	}
	if f, ok := t.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: t.source, Size: size}
	t.faces[size] = f
	return f
}

// MeasureText returns the size of s at the board's text item size.
func (t *Text) MeasureText(s string) (w, h float64) {
	return t.measure(s, moodboard.TextFontSize)
}

func (t *Text) measure(s string, size float64) (w, h float64) {
	return text.Measure(s, t.face(size), size*lineSpacing)
}

// Draw renders s with its top-left corner at (x, y), wrapped to width when
// width is positive.
func (t *Text) Draw(dst *ebiten.Image, s string, x, y, size, width float64, clr moodboard.Color) {
	if s == "" || size <= 0 {
		return
	}
	if width > 0 {
		lines := wrapLines(s, width, func(line string) float64 {
			w, _ := t.measure(line, size)
			return w
		})
		s = strings.Join(lines, "\n")
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(clr))
	op.LineSpacing = size * lineSpacing
	text.Draw(dst, s, t.face(size), op)
}

// DrawCentered renders a single line centered on (cx, cy).
func (t *Text) DrawCentered(dst *ebiten.Image, s string, cx, cy, size float64, clr moodboard.Color) {
	w, h := t.measure(s, size)
	t.Draw(dst, s, cx-w/2, cy-h/2, size, 0, clr)
}

// wrapLines breaks s at word boundaries so that no line measures wider
// than width. A single word wider than width gets its own line. Existing
// newlines are kept.
func wrapLines(s string, width float64, measure func(string) float64) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			out = append(out, line)
			line = w
		}
		out = append(out, line)
	}
	return out
}
