package jigsaw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInjectClick(t *testing.T) {
	a := newTestApp(t)
	a.InjectClick(100, 200)

	want := []syntheticPointerEvent{
		{x: 100, y: 200, pressed: true},
		{x: 100, y: 200, pressed: false},
	}
	if diff := cmp.Diff(want, a.input.injectQueue, cmp.AllowUnexported(syntheticPointerEvent{})); diff != "" {
		t.Errorf("queue mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectDrag(t *testing.T) {
	a := newTestApp(t)
	a.InjectDrag(0, 0, 100, 50, 5)

	q := a.input.injectQueue
	if len(q) != 5 {
		t.Fatalf("queue len = %d, want 5", len(q))
	}
	if !q[0].pressed || q[0].x != 0 || q[0].y != 0 {
		t.Errorf("first event = %+v, want press at origin", q[0])
	}
	if q[2].x != 50 || q[2].y != 25 || !q[2].pressed {
		t.Errorf("middle event = %+v, want held move to (50,25)", q[2])
	}
	if q[4].pressed || q[4].x != 100 || q[4].y != 50 {
		t.Errorf("last event = %+v, want release at (100,50)", q[4])
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	a := newTestApp(t)
	a.InjectDrag(0, 0, 10, 10, 0)
	if len(a.input.injectQueue) != 2 {
		t.Errorf("queue len = %d, want 2", len(a.input.injectQueue))
	}
}

func TestProcessInjected(t *testing.T) {
	var in pointerInput
	h := &recordingHandler{}
	if in.processInjected(h) {
		t.Fatal("empty queue reported an event")
	}

	in.injectQueue = []syntheticPointerEvent{
		{x: 1, y: 2, pressed: true},
		{x: 3, y: 4, pressed: true},
		{x: 3, y: 4, pressed: false},
	}
	for in.processInjected(h) {
	}
	want := []recordedEvent{
		{EventPointerDown, 1, 2},
		{EventPointerMove, 3, 4},
		{EventPointerUp, 3, 4},
	}
	if diff := cmp.Diff(want, h.events, cmp.AllowUnexported(recordedEvent{})); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
