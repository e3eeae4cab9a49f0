package jigsaw

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's input pass.
func (a *App) InjectPress(x, y float64) {
	a.input.injectQueue = append(a.input.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (a *App) InjectMove(x, y float64) {
	a.input.injectQueue = append(a.input.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (a *App) InjectRelease(x, y float64) {
	a.input.injectQueue = append(a.input.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (a *App) InjectClick(x, y float64) {
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		a.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	a.InjectRelease(toX, toY)
}

// processInjected pops one queued event and feeds it through the pointer
// state machine. Returns true if an event was consumed, in which case real
// input is skipped for the frame.
func (in *pointerInput) processInjected(h PointerHandler) bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(h, evt.x, evt.y, evt.pressed)
	return true
}
