package jigsaw

import "math"

// Placed reports whether p sits within the board's placement tolerance of
// its home cell on both axes.
func (b *Board) Placed(p *Piece) bool {
	correct := b.CorrectPosition(p)
	return math.Abs(p.pos.X-correct.X) < b.tolerance &&
		math.Abs(p.pos.Y-correct.Y) < b.tolerance
}

// IsSolved evaluates the current layout: true iff every piece is placed.
func (b *Board) IsSolved() bool {
	if len(b.pieces) == 0 {
		return false
	}
	for _, p := range b.pieces {
		if !b.Placed(p) {
			return false
		}
	}
	return true
}

// Won reports whether the board has been solved at some release. It stays
// true once set, and pieces remain draggable afterwards.
func (b *Board) Won() bool { return b.won }

// PlacedCount returns how many pieces are currently placed.
func (b *Board) PlacedCount() int {
	n := 0
	for _, p := range b.pieces {
		if b.Placed(p) {
			n++
		}
	}
	return n
}

// checkWin runs after every release.
func (b *Board) checkWin() {
	if b.won || !b.IsSolved() {
		return
	}
	b.won = true
	b.logger.Info("puzzle solved", "resolution", int(b.resolution))
	if b.onWin != nil {
		b.onWin()
	}
}
