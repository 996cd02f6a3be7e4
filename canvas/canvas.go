// Package canvas runs a moodboard.Board inside an Ebitengine window: it
// samples mouse and keyboard input, drives the camera, and draws items,
// the group rect and the rubber band.
package canvas

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/moodboard"
	"github.com/phanxgames/moodboard/internal/config"
	"github.com/phanxgames/moodboard/internal/log"
	"github.com/yohamta/donburi"
)

// homeScrollSeconds is how long the Home key takes to recenter.
const homeScrollSeconds = 0.4

// Canvas implements ebiten.Game around a board.
type Canvas struct {
	board   *moodboard.Board
	shell   moodboard.Shell
	cfg     config.Config
	log     *log.Logger
	cam     *Camera
	text    *Text
	palette Palette
	theme   moodboard.ThemeMode
	src     inputSource

	panButton    ebiten.MouseButton
	panMode      bool
	panning      bool
	zoomToCursor bool
	wasPressed   bool
	lastScreen   moodboard.Vec2
	showDebug    bool

	images       map[donburi.Entity]*ebiten.Image
	loadImage    func(path string) (*ebiten.Image, error)
	resizeWindow func(w, h int)

	injectQueue     []syntheticPointerEvent
	injectedKeys    []ebiten.Key
	keys            []ebiten.Key
	runner          *ScriptRunner
	exitOnScriptEnd bool
	screenshotQueue []string

	listeners []func(moodboard.OutputEvent)
	tick      int
	order     []donburi.Entity
	selected  int
}

// New builds a board and the canvas around it. Extra board options are
// applied after the canvas's own.
func New(cfg config.Config, logger *log.Logger, opts ...moodboard.Option) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	mode, err := moodboard.ParseThemeMode(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	if logger == nil {
		logger = log.Discard()
	}
	txt, err := NewText()
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	shell, duplex := moodboard.NewDuplex()
	boardOpts := append([]moodboard.Option{
		moodboard.WithLogger(logger),
		moodboard.WithTextMeasurer(txt),
		moodboard.WithDuplex(duplex),
	}, opts...)

	c := &Canvas{
		board:        moodboard.NewBoard(boardOpts...),
		shell:        shell,
		cfg:          cfg,
		log:          logger,
		cam:          NewCamera(float64(cfg.Width), float64(cfg.Height), cfg.Camera.MinZoom, cfg.Camera.MaxZoom),
		text:         txt,
		palette:      PaletteFor(mode),
		theme:        mode,
		src:          &ebitenSource{},
		panButton:    ebiten.MouseButtonMiddle,
		showDebug:    cfg.ShowFPS,
		images:       make(map[donburi.Entity]*ebiten.Image),
		loadImage:    loadImageFile,
		resizeWindow: ebiten.SetWindowSize,
	}
	if cfg.Camera.PanButton == "right" {
		c.panButton = ebiten.MouseButtonRight
	}

	w := c.board.World()
	moodboard.ThemeChanged.Subscribe(w, c.onTheme)
	moodboard.Resized.Subscribe(w, c.onResize)
	moodboard.ItemAdded.Subscribe(w, c.onItemAdded)
	moodboard.SelectionChanged.Subscribe(w, c.onSelectionChanged)

	if cfg.SeedSwatches {
		c.board.SeedSwatches()
	}
	return c, nil
}

// Board returns the board the canvas drives.
func (c *Canvas) Board() *moodboard.Board {
	return c.board
}

// Camera returns the canvas camera.
func (c *Canvas) Camera() *Camera {
	return c.cam
}

// Theme returns the active theme.
func (c *Canvas) Theme() moodboard.ThemeMode {
	return c.theme
}

// Send queues a command for the next tick. Safe from any goroutine.
func (c *Canvas) Send(e moodboard.InputEvent) bool {
	return c.shell.Send(e)
}

// OnEvent registers fn to receive board notifications. Listeners run on
// the tick goroutine after the board updates.
func (c *Canvas) OnEvent(fn func(moodboard.OutputEvent)) {
	c.listeners = append(c.listeners, fn)
}

// ExitOnScriptEnd makes Update return ebiten.Termination once an attached
// script has finished.
func (c *Canvas) ExitOnScriptEnd(exit bool) {
	c.exitOnScriptEnd = exit
}

// Update advances one tick: script, camera, input, board, notifications.
func (c *Canvas) Update() error {
	c.tick++
	if c.runner != nil {
		if c.runner.Done() && c.exitOnScriptEnd && len(c.screenshotQueue) == 0 {
			c.log.Infof("script: finished after %d ticks", c.tick)
			return ebiten.Termination
		}
		c.runner.step(c)
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = c.cfg.TPS
	}
	c.cam.update(1 / float32(tps))

	c.board.Update(c.readInput())
	c.forwardEvents()
	c.logStats()
	return nil
}

// forwardEvents hands queued board notifications to the listeners.
func (c *Canvas) forwardEvents() {
	for {
		select {
		case e := <-c.shell.Events():
			if _, ok := e.(moodboard.ItemsDeletedEvent); ok {
				c.pruneImages()
			}
			if len(c.listeners) == 0 {
				c.log.Debugf("event: %#v", e)
			}
			for _, fn := range c.listeners {
				fn(e)
			}
		default:
			return
		}
	}
}

// Draw paints the board.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(c.palette.Background))
	c.drawItems(screen)
	c.drawSelection(screen)
	c.drawBorder(screen)
	c.drawDebug(screen)
	c.flushScreenshots(screen)
}

// Layout keeps a one-to-one mapping between window and screen pixels.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.cam.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// --- Subscribers ---

func (c *Canvas) onTheme(_ donburi.World, e moodboard.ThemeEvent) {
	c.theme = e.Mode
	c.palette = PaletteFor(e.Mode)
	c.log.Debugf("theme: %s", e.Mode)
}

func (c *Canvas) onResize(_ donburi.World, e moodboard.ResizeEvent) {
	if e.Width <= 0 || e.Height <= 0 {
		c.log.Warnf("resize: ignoring %vx%v", e.Width, e.Height)
		return
	}
	c.cam.SetViewport(e.Width, e.Height)
	c.resizeWindow(int(e.Width), int(e.Height))
	c.log.Debugf("resize: %vx%v", e.Width, e.Height)
}

func (c *Canvas) onSelectionChanged(_ donburi.World, e moodboard.SelectionChangedEvent) {
	c.selected = e.Count
	c.log.Debugf("selection: %d", e.Count)
}

// onItemAdded loads images as soon as their item exists and fits the item
// to the image's aspect ratio.
func (c *Canvas) onItemAdded(w donburi.World, e moodboard.ItemAddedEvent) {
	if e.Kind != moodboard.ItemImage || !w.Valid(e.ID) {
		return
	}
	path := moodboard.Item.Get(w.Entry(e.ID)).Content
	img, err := c.loadImage(path)
	if err != nil {
		c.log.Warnf("image: %v", err)
		return
	}
	b := img.Bounds()
	c.images[e.ID] = img
	c.board.SetItemSize(e.ID, moodboard.FitSize(moodboard.MaxImageSize, float64(b.Dx()), float64(b.Dy())))
	c.log.Debugf("image: loaded %s (%dx%d)", path, b.Dx(), b.Dy())
}

// pruneImages drops textures of items that no longer exist.
func (c *Canvas) pruneImages() {
	w := c.board.World()
	for e, img := range c.images {
		if !w.Valid(e) {
			img.Deallocate()
			delete(c.images, e)
		}
	}
}

func loadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Run opens the window and blocks until it is closed.
func Run(c *Canvas) error {
	ebiten.SetWindowTitle(c.cfg.Title)
	ebiten.SetWindowSize(c.cfg.Width, c.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(c.cfg.TPS)
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
