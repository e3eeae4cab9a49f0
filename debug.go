package jigsaw

import (
	"time"
)

// debugLogInterval is how many frames are aggregated per debug log line.
const debugLogInterval = 300

// frameStats accumulates per-frame timings. Only populated when the app is
// in debug mode.
type frameStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
}

// SetDebug turns on the FPS overlay and periodic frame timing logs.
func (a *App) SetDebug(on bool) {
	a.debug = on
	if !on {
		a.fps.dispose()
		a.stats = frameStats{}
	}
}

// Debug reports whether debug mode is on.
func (a *App) Debug() bool { return a.debug }

func (a *App) recordUpdate(d time.Duration) {
	a.stats.updateTime += d
	a.stats.frames++
	if a.stats.frames < debugLogInterval {
		return
	}
	a.debugLog()
	a.stats = frameStats{}
}

func (a *App) recordDraw(d time.Duration) {
	a.stats.drawTime += d
}

// debugLog writes the average frame timings and board state.
func (a *App) debugLog() {
	n := time.Duration(a.stats.frames)
	attrs := []any{
		"frames", a.stats.frames,
		"update", a.stats.updateTime / n,
		"draw", a.stats.drawTime / n,
		"screen", a.screen,
	}
	if b := a.Board(); b != nil {
		attrs = append(attrs,
			"placed", b.PlacedCount(),
			"pieces", len(b.Pieces()),
			"drag", b.DragState().String(),
		)
	}
	a.logger.Debug("frame stats", attrs...)
}
