package jigsaw

import "math"

// DragState is the state of the board's pointer interaction.
type DragState uint8

const (
	DragIdle     DragState = iota // no piece held
	DragDragging                  // a piece follows the pointer
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// drag holds the single active piece. Only one pointer is tracked.
type drag struct {
	state  DragState
	active *Piece
	offset Vec2 // piece position minus pointer position at pickup
}

// DragState returns the current interaction state.
func (b *Board) DragState() DragState { return b.drag.state }

// Active returns the piece being dragged, or nil.
func (b *Board) Active() *Piece { return b.drag.active }

// PieceAt returns the topmost piece whose bounds contain (x, y), or nil.
// Edges count as inside.
func (b *Board) PieceAt(x, y float64) *Piece {
	var top *Piece
	for _, p := range b.pieces {
		if !p.Bounds().Contains(x, y) {
			continue
		}
		if top == nil || p.z > top.z {
			top = p
		}
	}
	return top
}

// grabSamples is the side of the grid GrabPoint searches.
const grabSamples = 7

// GrabPoint returns a point inside p where p is the topmost piece, so that
// PointerDown there picks p up. The center is tried first, then a grid over
// the piece. ok is false when other pieces cover every sample.
func (b *Board) GrabPoint(p *Piece) (pt Vec2, ok bool) {
	r := p.Bounds()
	center := Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
	if b.PieceAt(center.X, center.Y) == p {
		return center, true
	}
	for j := 0; j < grabSamples; j++ {
		for i := 0; i < grabSamples; i++ {
			x := r.X + r.Width*(float64(i)+0.5)/grabSamples
			y := r.Y + r.Height*(float64(j)+0.5)/grabSamples
			if b.PieceAt(x, y) == p {
				return Vec2{X: x, Y: y}, true
			}
		}
	}
	return Vec2{}, false
}

// PointerDown picks up the topmost piece under (x, y). It raises the piece
// above every other piece and remembers where it was grabbed so it does not
// jump under the pointer. Returns false if nothing was hit or a drag is
// already in progress.
func (b *Board) PointerDown(x, y float64) bool {
	if b.disposed || b.drag.state == DragDragging {
		return false
	}
	p := b.PieceAt(x, y)
	if p == nil {
		return false
	}

	p.pickedUp = true
	p.z = b.nextZ
	b.nextZ++
	b.drag = drag{
		state:  DragDragging,
		active: p,
		offset: p.pos.Sub(Vec2{x, y}),
	}
	b.logger.Debug("piece picked up", "grid_x", p.gridX, "grid_y", p.gridY, "z", p.z)
	return true
}

// PointerMove drags the active piece so that it keeps its grab offset. The
// piece is not clamped to the play area.
func (b *Board) PointerMove(x, y float64) {
	if b.drag.state != DragDragging {
		return
	}
	b.drag.active.pos = Vec2{x, y}.Add(b.drag.offset)
}

// PointerUp drops the active piece, snapping it home when it lies within the
// snap threshold on both axes, then re-evaluates the win condition.
// Returns true if the piece snapped.
func (b *Board) PointerUp() bool {
	if b.drag.state != DragDragging {
		return false
	}
	p := b.drag.active
	p.pickedUp = false

	correct := b.CorrectPosition(p)
	dx := math.Abs(p.pos.X - correct.X)
	dy := math.Abs(p.pos.Y - correct.Y)
	snapped := dx < b.snap && dy < b.snap
	if snapped {
		p.pos = correct
	}
	b.drag = drag{}

	b.logger.Debug("piece released",
		"grid_x", p.gridX, "grid_y", p.gridY,
		"dx", dx, "dy", dy, "snapped", snapped)

	b.checkWin()
	return snapped
}
