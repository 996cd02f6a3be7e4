package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/moodboard"
	"github.com/yohamta/donburi"
)

// Item styling in world units.
const (
	shadowOffset          = 10
	itemStrokeWidth       = 5
	selectedPostItStroke  = 10
	postItPadding         = 20
	postItFontSize        = 36
	swatchLabelFontSize   = 28
	swatchLabelOffset     = 73
	selectionBoxStroke    = 2
	selectionBoxFillAlpha = 0.3
	selectedRectStroke    = 5
	windowBorderWidth     = 5 // screen pixels
)

// swatchColorSection is the colored block at the top of a swatch card.
var swatchColorSection = moodboard.Vec2{X: 215, Y: 150}

func fillRect(dst *ebiten.Image, r moodboard.Rect, clr moodboard.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), toRGBA(clr), true)
}

func strokeRect(dst *ebiten.Image, r moodboard.Rect, width float64, clr moodboard.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), float32(width), toRGBA(clr), true)
}

// drawItems paints every item bottom to top.
func (c *Canvas) drawItems(screen *ebiten.Image) {
	visible := c.cam.VisibleBounds()
	z := c.cam.Zoom
	c.order = c.board.DrawOrder(c.order[:0])

	for _, e := range c.order {
		wr, ok := c.board.ItemRect(e)
		if !ok {
			continue
		}
		shadow := wr.Translate(moodboard.Vec2{X: shadowOffset, Y: shadowOffset})
		if !wr.Union(shadow).Intersects(visible) {
			continue
		}
		data := moodboard.Item.Get(c.board.World().Entry(e))
		sr := c.cam.RectToScreen(wr)

		if data.Kind != moodboard.ItemText {
			fillRect(screen, c.cam.RectToScreen(shadow), c.palette.Shadow)
		}

		switch data.Kind {
		case moodboard.ItemPostIt:
			stroke := float64(itemStrokeWidth)
			if c.board.IsSelected(e) {
				stroke = selectedPostItStroke
			}
			fillRect(screen, sr, c.palette.PostIt)
			strokeRect(screen, sr, stroke*z, c.palette.PostItStroke)
			pad := postItPadding * z
			c.text.Draw(screen, data.Content, sr.Min.X+pad, sr.Min.Y+pad, postItFontSize*z, sr.Width()-2*pad, c.palette.PostItText)

		case moodboard.ItemSwatch:
			fillRect(screen, sr, c.palette.SwatchCard)
			strokeRect(screen, sr, itemStrokeWidth*z, c.palette.PostItStroke)
			center := wr.Center()
			top := wr.Min.Y + 2 + swatchColorSection.Y/2
			block := moodboard.RectFromCenterHalfSize(moodboard.Vec2{X: center.X, Y: top}, swatchColorSection.Scale(0.5))
			fillRect(screen, c.cam.RectToScreen(block), data.Color)
			lx, ly := c.cam.WorldToScreen(center.X, center.Y+swatchLabelOffset)
			c.text.DrawCentered(screen, data.Content, lx, ly, swatchLabelFontSize*z, c.palette.SwatchText)

		case moodboard.ItemText:
			pad := moodboard.TextPadding.Scale(0.5 * z)
			c.text.Draw(screen, data.Content, sr.Min.X+pad.X, sr.Min.Y+pad.Y, moodboard.TextFontSize*z, 0, c.palette.Text)

		case moodboard.ItemImage:
			c.drawImage(screen, e, sr)
		}
	}
}

// drawImage scales a loaded image into its screen rect, or draws a
// placeholder while it is missing.
func (c *Canvas) drawImage(screen *ebiten.Image, e donburi.Entity, sr moodboard.Rect) {
	img, ok := c.images[e]
	if !ok {
		fillRect(screen, sr, c.palette.Placeholder)
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sr.Width()/float64(b.Dx()), sr.Height()/float64(b.Dy()))
	op.GeoM.Translate(sr.Min.X, sr.Min.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawSelection paints the group rect and the rubber band over the items.
func (c *Canvas) drawSelection(screen *ebiten.Image) {
	z := c.cam.Zoom
	if r, ok := c.board.GroupRect(); ok {
		strokeRect(screen, c.cam.RectToScreen(r.Rect), selectedRectStroke*z, c.palette.SelectedRect)
	}
	if box, ok := c.board.RubberBand(); ok {
		sr := c.cam.RectToScreen(box.Rect())
		fillRect(screen, sr, c.palette.SelectionBox.WithAlpha(selectionBoxFillAlpha))
		strokeRect(screen, sr, selectionBoxStroke*z, c.palette.SelectionBox)
	}
}

// drawBorder frames the window.
func (c *Canvas) drawBorder(screen *ebiten.Image) {
	w, h := c.cam.Viewport.X, c.cam.Viewport.Y
	half := windowBorderWidth / 2.0
	r := moodboard.Rect{Min: moodboard.Vec2{X: half, Y: half}, Max: moodboard.Vec2{X: w - half, Y: h - half}}
	strokeRect(screen, r, windowBorderWidth, c.palette.Border)
}
