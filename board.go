package moodboard

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Logger receives debug diagnostics from the board.
type Logger interface {
	Debugf(format string, args ...any)
}

// noEntity is returned alongside errors.
var noEntity donburi.Entity

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures a Board.
type Option func(*Board)

// WithLogger routes board diagnostics to l.
func WithLogger(l Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// WithTextMeasurer sets the measurer used to size text boxes.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(b *Board) {
		if m != nil {
			b.measure = m
		}
	}
}

// WithDuplex attaches the canvas end of a duplex channel. Input events are
// drained at the start of every Update; output events are sent as they
// happen.
func WithDuplex(d *Duplex) Option {
	return func(b *Board) {
		b.duplex = d
	}
}

// Board is the interaction context: the donburi world holding every item,
// the pointer, the depth counter and the selection state machine. All
// methods must be called from the tick goroutine.
type Board struct {
	world   donburi.World
	pointer PointerState
	counter ItemCounter
	state   State
	measure TextMeasurer
	log     Logger
	duplex  *Duplex

	prevSelected map[donburi.Entity]struct{}
	rectDirty    bool

	candidates []Candidate
	hits       []donburi.Entity
	scratch    []donburi.Entity
}

// Queries over the board's world.
var (
	itemQuery       = donburi.NewQuery(filter.Contains(Item, Transform, Bounds))
	selectableQuery = donburi.NewQuery(filter.Contains(Selectable, Transform, Bounds))
	selectedQuery   = donburi.NewQuery(filter.Contains(Selected, Transform, Bounds))
	boxQuery        = donburi.NewQuery(filter.Contains(SelectionBox))
	rectQuery       = donburi.NewQuery(filter.Contains(SelectedRect))
)

// NewBoard creates an empty board.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		world:        donburi.NewWorld(),
		measure:      approxMeasurer{},
		log:          nopLogger{},
		prevSelected: make(map[donburi.Entity]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// World returns the underlying donburi world. Renderers read item
// components from it; subscribers attach to the event types in events.go.
func (b *Board) World() donburi.World {
	return b.world
}

// Pointer returns the pointer state as of the last Update.
func (b *Board) Pointer() *PointerState {
	return &b.pointer
}

// State returns the current selection state.
func (b *Board) State() State {
	return b.state
}

// Counter returns the last depth handed out.
func (b *Board) Counter() float64 {
	return b.counter.Count()
}

// --- Items ---

// AddItem places a new item of the given kind at the world origin.
func (b *Board) AddItem(kind ItemKind, content string) (donburi.Entity, error) {
	return b.AddItemAt(kind, content, Vec2{})
}

// AddItemAt places a new item centered on pos. The item gets the next
// depth value, and any existing selection is cleared. For swatches content
// is a hex color.
func (b *Board) AddItemAt(kind ItemKind, content string, pos Vec2) (donburi.Entity, error) {
	data := ItemData{Kind: kind, Content: content, Color: ColorWhite}
	switch kind {
	case ItemSwatch:
		c, err := ParseHexColor(content)
		if err != nil {
			return noEntity, fmt.Errorf("add swatch: %w", err)
		}
		data.Color = c
		data.Content = c.Hex()
	case ItemPostIt, ItemText, ItemImage:
	default:
		return noEntity, fmt.Errorf("add item: %w: %d", ErrUnknownItemKind, kind)
	}

	size := itemSize(kind, data.Content, b.measure)
	e := b.world.Create(Transform, Bounds, Item, Selectable)
	entry := b.world.Entry(e)
	Transform.SetValue(entry, TransformData{Position: pos, Z: b.counter.Next()})
	Bounds.SetValue(entry, BoundsData{HalfExtent: size.Scale(0.5)})
	Item.SetValue(entry, data)

	b.clearSelection()
	b.log.Debugf("item: added %s %v at %v z=%v", kind, e, pos, b.counter.Count())

	ItemAdded.Publish(b.world, ItemAddedEvent{ID: e, Kind: kind})
	b.emit(ItemAddedEvent{ID: e, Kind: kind})
	b.reconcile()
	return e, nil
}

// SeedSwatches places the red, green and blue starter swatches.
func (b *Board) SeedSwatches() {
	seeds := []struct {
		hex string
		pos Vec2
	}{
		{"#ef4444", Vec2{1000, 300}},
		{"#22c55e", Vec2{1000, 0}},
		{"#3b82f6", Vec2{1000, -300}},
	}
	for _, s := range seeds {
		if _, err := b.AddItemAt(ItemSwatch, s.hex, s.pos); err != nil {
			panic("moodboard: bad seed swatch: " + err.Error())
		}
	}
}

// DeleteSelected removes every selected item and returns how many were
// removed. Deletion is ignored mid-gesture.
func (b *Board) DeleteSelected() int {
	if b.state != StateIdle {
		return 0
	}
	ids := b.selectedIDs(b.scratch[:0])
	for _, e := range ids {
		b.world.Remove(e)
	}
	b.scratch = ids[:0]
	if len(ids) == 0 {
		return 0
	}
	b.log.Debugf("item: deleted %d", len(ids))
	b.emit(ItemsDeletedEvent{Count: len(ids)})
	b.reconcile()
	return len(ids)
}

// SetItemSize changes an item's full width and height, e.g. once an image
// has loaded and been fitted. The group rect follows if the item is
// selected.
func (b *Board) SetItemSize(e donburi.Entity, size Vec2) {
	if !b.world.Valid(e) {
		return
	}
	entry := b.world.Entry(e)
	if !entry.HasComponent(Bounds) {
		return
	}
	Bounds.SetValue(entry, BoundsData{HalfExtent: size.Scale(0.5)})
	if entry.HasComponent(Selected) {
		b.rectDirty = true
		b.reconcile()
	}
}

// ItemRect returns the world box of an item.
func (b *Board) ItemRect(e donburi.Entity) (Rect, bool) {
	if !b.world.Valid(e) {
		return Rect{}, false
	}
	entry := b.world.Entry(e)
	if !entry.HasComponent(Transform) || !entry.HasComponent(Bounds) {
		return Rect{}, false
	}
	return RectFromCenterHalfSize(Transform.Get(entry).Position, Bounds.Get(entry).HalfExtent), true
}

// ItemTransform returns the position and depth of an item.
func (b *Board) ItemTransform(e donburi.Entity) (TransformData, bool) {
	if !b.world.Valid(e) {
		return TransformData{}, false
	}
	entry := b.world.Entry(e)
	if !entry.HasComponent(Transform) {
		return TransformData{}, false
	}
	return *Transform.Get(entry), true
}

// IsSelected reports whether e is in the selected set.
func (b *Board) IsSelected(e donburi.Entity) bool {
	return b.world.Valid(e) && b.world.Entry(e).HasComponent(Selected)
}

// Selection appends the selected entities to buf and returns it.
func (b *Board) Selection(buf []donburi.Entity) []donburi.Entity {
	return b.selectedIDs(buf)
}

// ItemCount returns the number of items on the board.
func (b *Board) ItemCount() int {
	return itemQuery.Count(b.world)
}

// DrawOrder appends every item to buf ordered from bottom to top.
func (b *Board) DrawOrder(buf []donburi.Entity) []donburi.Entity {
	type ordered struct {
		id donburi.Entity
		z  float64
	}
	var items []ordered
	itemQuery.Each(b.world, func(e *donburi.Entry) {
		items = append(items, ordered{e.Entity(), Transform.Get(e).Z})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].z < items[j].z })
	for _, it := range items {
		buf = append(buf, it.id)
	}
	return buf
}

// GroupRect returns the bounding rect around the selection, if any.
func (b *Board) GroupRect() (SelectedRectData, bool) {
	if e, ok := b.single(rectQuery, "SelectedRect"); ok {
		return *SelectedRect.Get(e), true
	}
	return SelectedRectData{}, false
}

// RubberBand returns the live selection box, if any.
func (b *Board) RubberBand() (SelectionBoxData, bool) {
	if e, ok := b.single(boxQuery, "SelectionBox"); ok {
		return *SelectionBox.Get(e), true
	}
	return SelectionBoxData{}, false
}

// --- Commands ---

// processCommands drains the duplex channel. Add requests become items;
// theme and resize requests are republished in-world for the renderer.
func (b *Board) processCommands() {
	if b.duplex == nil {
		return
	}
	b.duplex.drain(func(ev InputEvent) {
		switch e := ev.(type) {
		case AddItemEvent:
			if _, err := b.AddItem(e.Kind, e.Content); err != nil {
				b.log.Debugf("command: %v", err)
			}
		case ThemeEvent:
			ThemeChanged.Publish(b.world, e)
		case ResizeEvent:
			Resized.Publish(b.world, e)
		}
	})
}

func (b *Board) emit(e OutputEvent) {
	if b.duplex == nil {
		return
	}
	if !b.duplex.emit(e) {
		b.log.Debugf("command: output queue full, dropped %T", e)
	}
}

// flushEvents runs every in-world subscriber for events published so far.
func (b *Board) flushEvents() {
	events.ProcessAllEvents(b.world)
}

// --- Helpers ---

type eacher interface {
	Each(w donburi.World, fn func(*donburi.Entry))
}

// single returns the only entry matched by q. More than one match breaks
// a board invariant and panics.
func (b *Board) single(q eacher, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	n := 0
	q.Each(b.world, func(e *donburi.Entry) {
		found = e
		n++
	})
	if n > 1 {
		panic(fmt.Sprintf("moodboard: %d live %s entities, want at most 1", n, name))
	}
	return found, n == 1
}

func (b *Board) selectedIDs(buf []donburi.Entity) []donburi.Entity {
	selectedQuery.Each(b.world, func(e *donburi.Entry) {
		buf = append(buf, e.Entity())
	})
	return buf
}
