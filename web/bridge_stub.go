//go:build !js || !wasm

package web

import (
	"github.com/phanxgames/moodboard/canvas"
	"github.com/phanxgames/moodboard/internal/log"
)

// Register does nothing outside the browser.
func Register(*canvas.Canvas, *log.Logger) {}
