package jigsaw

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when the pointer is pressed
	EventPointerUp                    // fires when the pointer is released
	EventPointerMove                  // fires when the pointer moves while pressed
)

// PointerHandler receives the events produced by pointerInput.
type PointerHandler interface {
	PointerEvent(ev EventType, x, y float64)
}

// pointerInput runs the press/move/release state machine for a single
// pointer. The mouse is used unless a touch is active; injected events take
// precedence over both.
type pointerInput struct {
	down         bool
	lastX, lastY float64

	touchActive  bool
	touchID      ebiten.TouchID
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// process consumes one frame of input and dispatches to h.
func (in *pointerInput) process(h PointerHandler) {
	if in.processInjected(h) {
		return
	}
	x, y, pressed := in.read()
	in.processPointer(h, x, y, pressed)
}

// read samples the real pointer. The first active touch wins over the mouse
// and stays tracked until it lifts.
func (in *pointerInput) read() (x, y float64, pressed bool) {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	if in.touchActive {
		for _, tid := range touchIDs {
			if tid == in.touchID {
				tx, ty := ebiten.TouchPosition(tid)
				return float64(tx), float64(ty), true
			}
		}
		in.touchActive = false
		return in.lastX, in.lastY, false
	}
	if len(touchIDs) > 0 && !in.down {
		in.touchActive = true
		in.touchID = touchIDs[0]
		tx, ty := ebiten.TouchPosition(in.touchID)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processPointer advances the state machine with one sample.
func (in *pointerInput) processPointer(h PointerHandler, x, y float64, pressed bool) {
	switch {
	case pressed && !in.down:
		in.down = true
		h.PointerEvent(EventPointerDown, x, y)
	case !pressed && in.down:
		in.down = false
		h.PointerEvent(EventPointerUp, x, y)
	case pressed && in.down:
		if x != in.lastX || y != in.lastY {
			h.PointerEvent(EventPointerMove, x, y)
		}
	}
	in.lastX = x
	in.lastY = y
}
