package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/moodboard"
	"github.com/tanema/gween/ease"
)

// action is a keyboard command.
type action uint8

const (
	actionNone action = iota
	actionDelete
	actionTogglePan
	actionToggleZoomToCursor
	actionHome
	actionToggleDebug
)

// keyBindings maps keys to actions. Several keys may share an action.
var keyBindings = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyBackspace, actionDelete},
	{ebiten.KeyDelete, actionDelete},
	{ebiten.KeySpace, actionTogglePan},
	{ebiten.KeyT, actionToggleZoomToCursor},
	{ebiten.KeyHome, actionHome},
	{ebiten.KeyF3, actionToggleDebug},
}

func actionFor(k ebiten.Key) action {
	for _, b := range keyBindings {
		if b.key == k {
			return b.act
		}
	}
	return actionNone
}

// parseKey converts a key name such as "Space", "T" or "Delete" into a key.
func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// pointerSample is one frame of pointer state in screen coordinates.
type pointerSample struct {
	X, Y float64
	// Pressed is the selection button.
	Pressed bool
	// Pan is the pan button.
	Pan bool
}

// inputSource reads raw device state. ebitenSource is the live
// implementation; tests substitute their own.
type inputSource interface {
	Pointer(panButton ebiten.MouseButton) pointerSample
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	Wheel() float64
}

type ebitenSource struct {
	touches []ebiten.TouchID
}

// Pointer reads the mouse, or the first touch when the screen is touched.
func (s *ebitenSource) Pointer(panButton ebiten.MouseButton) pointerSample {
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	if len(s.touches) > 0 {
		tx, ty := ebiten.TouchPosition(s.touches[0])
		return pointerSample{X: float64(tx), Y: float64(ty), Pressed: true}
	}
	mx, my := ebiten.CursorPosition()
	return pointerSample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pan:     ebiten.IsMouseButtonPressed(panButton),
	}
}

func (s *ebitenSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (s *ebitenSource) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// --- Per-frame processing ---

// readInput gathers this frame's pointer and key state, applies camera
// navigation, and returns the board's input for the tick.
func (c *Canvas) readInput() moodboard.Input {
	del := false
	c.keys = c.src.AppendJustPressedKeys(c.keys[:0])
	c.keys = append(c.keys, c.injectedKeys...)
	c.injectedKeys = c.injectedKeys[:0]
	for _, k := range c.keys {
		switch actionFor(k) {
		case actionDelete:
			del = true
		case actionTogglePan:
			c.panMode = !c.panMode
			c.log.Debugf("input: pan mode %v", c.panMode)
		case actionToggleZoomToCursor:
			c.zoomToCursor = !c.zoomToCursor
			c.log.Debugf("input: zoom to cursor %v", c.zoomToCursor)
		case actionHome:
			c.cam.ScrollTo(0, 0, homeScrollSeconds, ease.OutCubic)
		case actionToggleDebug:
			c.showDebug = !c.showDebug
		}
	}

	sample, injected := c.nextPointer()

	if !injected {
		if dy := c.src.Wheel(); dy != 0 {
			c.cam.ZoomBy(dy*c.cfg.Camera.ZoomStep, sample.X, sample.Y, c.zoomToCursor)
		}
	}

	// Panning takes the pointer away from the board. A selection gesture
	// in progress sees a release.
	panning := sample.Pan || (c.panMode && sample.Pressed)
	if panning && c.panning {
		c.cam.Pan(sample.X-c.lastScreen.X, sample.Y-c.lastScreen.Y)
	}
	c.panning = panning
	c.lastScreen = moodboard.Vec2{X: sample.X, Y: sample.Y}
	pressed := sample.Pressed && !panning

	wx, wy := c.cam.ScreenToWorld(sample.X, sample.Y)
	in := moodboard.Input{
		Cursor:       moodboard.Vec2{X: wx, Y: wy},
		Pressed:      pressed,
		JustPressed:  pressed && !c.wasPressed,
		JustReleased: !pressed && c.wasPressed,
		Delete:       del,
	}
	c.wasPressed = pressed
	return in
}

// nextPointer returns an injected sample when one is queued and the live
// device state otherwise.
func (c *Canvas) nextPointer() (pointerSample, bool) {
	if len(c.injectQueue) > 0 {
		evt := c.injectQueue[0]
		copy(c.injectQueue, c.injectQueue[1:])
		c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
		return pointerSample{X: evt.screenX, Y: evt.screenY, Pressed: evt.pressed}, true
	}
	return c.src.Pointer(c.panButton), false
}
