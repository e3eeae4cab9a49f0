package jigsaw

// Rand is the randomness the shuffler needs. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// shuffle permutes pieces, restacks them in the new order, and drops each one
// at a uniformly random spot that keeps it fully inside area. Pieces may
// overlap.
func shuffle(pieces []*Piece, area Rect, rng Rand) {
	zs := make([]int, len(pieces))
	for i, p := range pieces {
		zs[i] = p.z
	}

	rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	for i, p := range pieces {
		p.z = zs[i]
		spanX := area.Width - p.size
		spanY := area.Height - p.size
		if spanX < 0 {
			spanX = 0
		}
		if spanY < 0 {
			spanY = 0
		}
		p.pos = Vec2{
			X: area.X + rng.Float64()*spanX,
			Y: area.Y + rng.Float64()*spanY,
		}
	}
}
