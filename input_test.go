package jigsaw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcessPointerStateMachine(t *testing.T) {
	var in pointerInput
	h := &recordingHandler{}

	in.processPointer(h, 5, 5, false)   // hover: nothing
	in.processPointer(h, 10, 20, true)  // press
	in.processPointer(h, 10, 20, true)  // held still: nothing
	in.processPointer(h, 15, 25, true)  // move
	in.processPointer(h, 30, 40, false) // release
	in.processPointer(h, 30, 40, false) // still up: nothing

	want := []recordedEvent{
		{EventPointerDown, 10, 20},
		{EventPointerMove, 15, 25},
		{EventPointerUp, 30, 40},
	}
	if diff := cmp.Diff(want, h.events, cmp.AllowUnexported(recordedEvent{})); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if in.down {
		t.Error("pointer still down")
	}
}
