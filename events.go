package moodboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// eventQueueCap bounds both directions of the duplex channel.
const eventQueueCap = 50

// ThemeMode selects the canvas color scheme.
type ThemeMode uint8

const (
	ThemeDark ThemeMode = iota
	ThemeLight
)

// ErrUnknownTheme is returned when a theme name cannot be parsed.
var ErrUnknownTheme = errors.New("moodboard: unknown theme")

func (m ThemeMode) String() string {
	if m == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseThemeMode converts "dark" or "light" into a ThemeMode.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// --- Inbound ---

// InputEvent is a discrete command sent by the UI shell. It is one of
// AddItemEvent, ThemeEvent or ResizeEvent.
type InputEvent interface {
	inputEvent()
}

// AddItemEvent asks the board to place a new item at the origin.
type AddItemEvent struct {
	Kind    ItemKind
	Content string
}

// ThemeEvent switches the color scheme.
type ThemeEvent struct {
	Mode ThemeMode
}

// ResizeEvent reports a new size for the host canvas element, in pixels.
type ResizeEvent struct {
	Width, Height float64
}

func (AddItemEvent) inputEvent() {}
func (ThemeEvent) inputEvent()   {}
func (ResizeEvent) inputEvent()  {}

// --- Outbound ---

// OutputEvent is a notification sent back to the UI shell. It is one of
// SelectionChangedEvent, ItemAddedEvent or ItemsDeletedEvent.
type OutputEvent interface {
	outputEvent()
}

// SelectionChangedEvent fires on the tick the selected set changes.
type SelectionChangedEvent struct {
	Count int
}

// ItemAddedEvent fires when an item is created.
type ItemAddedEvent struct {
	ID   donburi.Entity
	Kind ItemKind
}

// ItemsDeletedEvent fires when selected items are deleted.
type ItemsDeletedEvent struct {
	Count int
}

func (SelectionChangedEvent) outputEvent() {}
func (ItemAddedEvent) outputEvent()        {}
func (ItemsDeletedEvent) outputEvent()     {}

// In-world event types. The board publishes these on its donburi world and
// processes them at the end of every Update, so subscribers run on the
// tick goroutine.
var (
	ThemeChanged     = events.NewEventType[ThemeEvent]()
	Resized          = events.NewEventType[ResizeEvent]()
	SelectionChanged = events.NewEventType[SelectionChangedEvent]()
	ItemAdded        = events.NewEventType[ItemAddedEvent]()
)

// --- Duplex channel ---

// Shell is the UI side of the duplex channel. It is safe to use from any
// goroutine.
type Shell struct {
	in  chan<- InputEvent
	out <-chan OutputEvent
}

// Send queues an input event without blocking. It reports false when the
// queue is full and the event was dropped.
func (s Shell) Send(e InputEvent) bool {
	select {
	case s.in <- e:
		return true
	default:
		return false
	}
}

// Events returns the stream of notifications from the canvas.
func (s Shell) Events() <-chan OutputEvent {
	return s.out
}

// Duplex is the canvas side of the duplex channel. Attach it to a Board
// with WithDuplex; the board drains it once per tick.
type Duplex struct {
	in  <-chan InputEvent
	out chan<- OutputEvent
}

// NewDuplex creates a pair of bounded queues and returns both ends.
func NewDuplex() (Shell, *Duplex) {
	in := make(chan InputEvent, eventQueueCap)
	out := make(chan OutputEvent, eventQueueCap)
	return Shell{in: in, out: out}, &Duplex{in: in, out: out}
}

// drain calls fn for every queued input event without blocking.
func (d *Duplex) drain(fn func(InputEvent)) {
	for {
		select {
		case e := <-d.in:
			fn(e)
		default:
			return
		}
	}
}

// emit sends e to the shell, dropping it when the shell is not keeping up.
func (d *Duplex) emit(e OutputEvent) bool {
	select {
	case d.out <- e:
		return true
	default:
		return false
	}
}
