package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// statsInterval is how often, in ticks, debug stats are logged.
const statsInterval = 120

// frameStats is what the debug overlay shows.
type frameStats struct {
	fps, tps      float64
	width, height int
	zoom          float64
	items         int
	selected      int
	state         string
	panMode       bool
	zoomToCursor  bool
}

func (s frameStats) String() string {
	return fmt.Sprintf("FPS: %.1f TPS: %.1f\n%dx%d zoom %.2f\nitems: %d selected: %d\nstate: %s pan: %v cursor-zoom: %v",
		s.fps, s.tps, s.width, s.height, s.zoom, s.items, s.selected, s.state, s.panMode, s.zoomToCursor)
}

func (c *Canvas) stats() frameStats {
	return frameStats{
		fps:          ebiten.ActualFPS(),
		tps:          ebiten.ActualTPS(),
		width:        int(c.cam.Viewport.X),
		height:       int(c.cam.Viewport.Y),
		zoom:         c.cam.Zoom,
		items:        c.board.ItemCount(),
		selected:     c.selected,
		state:        c.board.State().String(),
		panMode:      c.panMode,
		zoomToCursor: c.zoomToCursor,
	}
}

// logStats writes frame stats to the debug log every statsInterval ticks.
func (c *Canvas) logStats() {
	if !c.cfg.Debug || c.tick%statsInterval != 0 {
		return
	}
	s := c.stats()
	c.log.Debugf("stats: fps %.1f | tps %.1f | %dx%d | zoom %.2f | items %d | selected %d | %s",
		s.fps, s.tps, s.width, s.height, s.zoom, s.items, s.selected, s.state)
}

// drawDebug renders the overlay in the top-left corner.
func (c *Canvas) drawDebug(screen *ebiten.Image) {
	if !c.showDebug {
		return
	}
	msg := c.stats().String()
	vector.DrawFilledRect(screen, 8, 8, 260, 72, toRGBA(c.palette.DebugBackground), false)
	ebitenutil.DebugPrintAt(screen, msg, 12, 10)
}
