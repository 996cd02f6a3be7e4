package canvas

import (
	"math"

	"github.com/phanxgames/moodboard"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view onto the board: the world point it centers on,
// the zoom factor, and the screen viewport it renders into.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// MinZoom and MaxZoom bound every zoom change.
	MinZoom, MaxZoom float64
	// Viewport is the screen size in pixels.
	Viewport moodboard.Vec2

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera at the world origin.
func NewCamera(width, height, minZoom, maxZoom float64) *Camera {
	return &Camera{
		Zoom:     1.0,
		MinZoom:  minZoom,
		MaxZoom:  maxZoom,
		Viewport: moodboard.Vec2{X: width, Y: height},
		dirty:    true,
	}
}

// SetViewport resizes the area the camera renders into.
func (c *Camera) SetViewport(width, height float64) {
	if c.Viewport.X == width && c.Viewport.Y == height {
		return
	}
	c.Viewport = moodboard.Vec2{X: width, Y: height}
	c.dirty = true
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Pan moves the camera by a screen-space delta, so content follows the
// cursor regardless of zoom.
func (c *Camera) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.scrollTween = nil
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
	c.dirty = true
}

// ZoomBy changes the zoom by step, clamped to [MinZoom, MaxZoom]. When
// anchored is set the world point under (sx, sy) stays put on screen;
// otherwise zoom is about the viewport center.
func (c *Camera) ZoomBy(step, sx, sy float64, anchored bool) {
	next := c.clampZoom(c.Zoom + step*c.Zoom)
	if next == c.Zoom {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = next
	c.dirty = true
	if !anchored {
		return
	}
	// Shift so (wx, wy) maps back to (sx, sy).
	nx, ny := c.WorldToScreen(wx, wy)
	c.X += (nx - sx) / c.Zoom
	c.Y += (ny - sy) / c.Zoom
	c.dirty = true
}

func (c *Camera) clampZoom(z float64) float64 {
	if c.MinZoom > 0 {
		z = math.Max(z, c.MinZoom)
	}
	if c.MaxZoom > 0 {
		z = math.Min(z, c.MaxZoom)
	}
	return z
}

// update advances the scroll animation. Called once per tick.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	prevX, prevY := c.X, c.Y
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X / 2
	cy := c.Viewport.Y / 2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// RectToScreen maps a world rectangle into screen space.
func (c *Camera) RectToScreen(r moodboard.Rect) moodboard.Rect {
	x0, y0 := c.WorldToScreen(r.Min.X, r.Min.Y)
	x1, y1 := c.WorldToScreen(r.Max.X, r.Max.Y)
	return moodboard.RectFromCorners(moodboard.Vec2{X: x0, Y: y0}, moodboard.Vec2{X: x1, Y: y1})
}

// VisibleBounds returns the world-space rectangle currently on screen.
func (c *Camera) VisibleBounds() moodboard.Rect {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	return moodboard.RectFromCorners(moodboard.Vec2{X: x0, Y: y0}, moodboard.Vec2{X: x1, Y: y1})
}
