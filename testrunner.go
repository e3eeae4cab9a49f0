package jigsaw

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action     string  `json:"action"`
	Label      string  `json:"label,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	Frames     int     `json:"frames,omitempty"`
	GridX      int     `json:"gridX,omitempty"`
	GridY      int     `json:"gridY,omitempty"`
	Resolution int     `json:"resolution,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated play-throughs. Attach to an App via SetTestRunner.
//
// Besides the raw "click", "drag", "wait" and "screenshot" actions, a script
// can use "start" (begin a game, optionally at "resolution"), "restart",
// "exit", and "place" which drags piece (gridX, gridY) onto its home cell,
// moving other pieces out of the way first when they cover it.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// state of a "place" step in progress
	placing bool
	restore []*Piece // parked pieces to put back home
	parked  int      // slots used so far
}

// parkGap separates parking slots from the play area and from each other.
const parkGap = 20.0

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an App via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "wait", "start", "restart", "exit", "place":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the app. The runner advances once
// per Update, before input is processed. With quit set, Update returns
// ebiten.Termination once the script has finished.
func (a *App) SetTestRunner(runner *TestRunner, quit bool) {
	a.testRunner = runner
	a.quitAfterScript = quit
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for pending injections and image loads to drain before advancing.
	if len(a.input.injectQueue) > 0 || a.Loading() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "click":
		a.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		a.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "start":
		if st.Resolution != 0 {
			a.SetResolution(Resolution(st.Resolution))
		}
		a.StartGame()
	case "restart":
		a.RestartGame()
	case "exit":
		a.ExitGame()
	case "place":
		if !r.place(a, st) {
			r.cursor-- // run this step again once the drag lands
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.input.injectQueue) == 0 && !a.Loading() {
		r.done = true
	}
}

// place carries piece (gridX, gridY) onto its home cell. It spans several
// drags and returns false until the last one is queued:
//
//   - while the piece has no uncovered point, the piece on top of its center
//     is parked in a free slot right of the play area;
//   - the piece is then grabbed at an uncovered point and dropped home;
//   - parked pieces that were already placed are put back, last parked
//     first.
func (r *TestRunner) place(a *App, st testStep) bool {
	b := a.Board()
	if b == nil {
		r.resetPlace()
		return true
	}
	frames := st.Frames
	if frames < 2 {
		frames = 2
	}

	if !r.placing {
		p := b.Piece(st.GridX, st.GridY)
		if p == nil {
			return true
		}
		if grab, ok := b.GrabPoint(p); ok {
			r.dragHome(a, b, p, grab, frames)
			if len(r.restore) == 0 {
				r.resetPlace()
				return true
			}
			r.placing = true
			return false
		}
		return !r.park(a, b, p, frames)
	}

	for len(r.restore) > 0 {
		q := r.restore[len(r.restore)-1]
		r.restore = r.restore[:len(r.restore)-1]
		if grab, ok := b.GrabPoint(q); ok {
			r.dragHome(a, b, q, grab, frames)
			if len(r.restore) > 0 {
				return false
			}
			break
		}
	}
	r.resetPlace()
	return true
}

// dragHome queues a drag that grabs p at grab and drops it with its top-left
// corner on its home cell.
func (r *TestRunner) dragHome(a *App, b *Board, p *Piece, grab Vec2, frames int) {
	to := b.CorrectPosition(p).Add(grab.Sub(p.Position()))
	a.InjectDrag(grab.X, grab.Y, to.X, to.Y, frames)
}

// park moves the piece covering the center of p to the next free slot
// outside the play area. Slots never overlap, so every park uncovers a bit
// more of p. Returns false if nothing covers p.
func (r *TestRunner) park(a *App, b *Board, p *Piece, frames int) bool {
	c := p.Bounds()
	center := Vec2{X: c.X + c.Width/2, Y: c.Y + c.Height/2}
	q := b.PieceAt(center.X, center.Y)
	if q == nil || q == p {
		return false
	}
	if b.Placed(q) {
		r.restore = append(r.restore, q)
	}
	area := b.Area()
	slot := Vec2{X: area.Right() + parkGap + float64(r.parked)*(q.Size()+parkGap), Y: area.Y}
	r.parked++
	to := slot.Add(center.Sub(q.Position()))
	a.InjectDrag(center.X, center.Y, to.X, to.Y, frames)
	return true
}

func (r *TestRunner) resetPlace() {
	r.placing = false
	r.restore = r.restore[:0]
}
