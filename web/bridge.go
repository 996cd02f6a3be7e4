//go:build js && wasm

package web

import (
	"sync"
	"syscall/js"

	"github.com/phanxgames/moodboard"
	"github.com/phanxgames/moodboard/canvas"
	"github.com/phanxgames/moodboard/internal/log"
)

// Register installs window.moodboard with addItem(kind, content),
// setTheme(mode), resize(width, height) and onEvent(callback). The first
// three return true when the command was queued and an error string when
// the arguments were rejected.
func Register(c *canvas.Canvas, logger *log.Logger) {
	var (
		mu        sync.Mutex
		callbacks []js.Value
	)
	c.OnEvent(func(e moodboard.OutputEvent) {
		mu.Lock()
		cbs := append([]js.Value(nil), callbacks...)
		mu.Unlock()
		p := js.ValueOf(payload(e))
		for _, cb := range cbs {
			cb.Invoke(p)
		}
	})

	obj := js.Global().Get("Object").New()
	obj.Set("addItem", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			return js.ValueOf("addItem(kind, content): missing arguments")
		}
		ev, err := parseAddItem(args[0].String(), args[1].String())
		if err != nil {
			return js.ValueOf(err.Error())
		}
		return js.ValueOf(c.Send(ev))
	}))
	obj.Set("setTheme", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return js.ValueOf("setTheme(mode): missing argument")
		}
		mode, err := moodboard.ParseThemeMode(args[0].String())
		if err != nil {
			return js.ValueOf(err.Error())
		}
		return js.ValueOf(c.Send(moodboard.ThemeEvent{Mode: mode}))
	}))
	obj.Set("resize", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			return js.ValueOf("resize(width, height): missing arguments")
		}
		return js.ValueOf(c.Send(moodboard.ResizeEvent{Width: args[0].Float(), Height: args[1].Float()}))
	}))
	obj.Set("onEvent", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeFunction {
			return js.ValueOf("onEvent(callback): callback must be a function")
		}
		mu.Lock()
		callbacks = append(callbacks, args[0])
		mu.Unlock()
		return js.ValueOf(true)
	}))
	js.Global().Set("moodboard", obj)
	logger.Infof("web: bridge registered")
}
