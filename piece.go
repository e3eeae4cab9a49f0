package jigsaw

import (
	"image"
)

// Piece is one grid cell of the puzzle: its cropped image, the offset at which
// it belongs, and where it currently sits.
type Piece struct {
	gridX, gridY int
	correct      Vec2 // relative to the play-area origin
	size         float64
	crop         image.Rectangle
	img          *image.RGBA

	pos      Vec2 // world coordinates of the top-left corner
	z        int
	pickedUp bool
}

// GridX returns the piece's column.
func (p *Piece) GridX() int { return p.gridX }

// GridY returns the piece's row.
func (p *Piece) GridY() int { return p.gridY }

// Correct returns the offset of the piece's home cell from the play-area
// origin.
func (p *Piece) Correct() Vec2 { return p.correct }

// Position returns the world position of the piece's top-left corner.
func (p *Piece) Position() Vec2 { return p.pos }

// Size returns the side length of the piece.
func (p *Piece) Size() float64 { return p.size }

// Z returns the stacking order. Higher values draw on top and win hit tests.
func (p *Piece) Z() int { return p.z }

// PickedUp reports whether the piece is the one being dragged.
func (p *Piece) PickedUp() bool { return p.pickedUp }

// Crop returns the rectangle of the normalized image the piece was cut from.
func (p *Piece) Crop() image.Rectangle { return p.crop }

// Image returns the piece's pixels. The image origin is Crop().Min.
func (p *Piece) Image() *image.RGBA { return p.img }

// Bounds returns the piece's world-space rectangle.
func (p *Piece) Bounds() Rect {
	return Rect{X: p.pos.X, Y: p.pos.Y, Width: p.size, Height: p.size}
}

// cellEdge returns the integer pixel edge of cell i. Integer division keeps
// neighbouring crops flush when areaSize is not a multiple of n.
func cellEdge(i, n, areaSize int) int {
	return i * areaSize / n
}

// newPieces cuts buf into n×n pieces in row-major order. Each piece starts at
// its correct position relative to origin, with z equal to its creation index.
func newPieces(buf *image.RGBA, n int, origin Vec2) []*Piece {
	areaSize := buf.Bounds().Dx()
	w := float64(areaSize) / float64(n)
	pieces := make([]*Piece, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			crop := image.Rect(
				cellEdge(x, n, areaSize), cellEdge(y, n, areaSize),
				cellEdge(x+1, n, areaSize), cellEdge(y+1, n, areaSize),
			)
			correct := Vec2{X: float64(x) * w, Y: float64(y) * w}
			pieces = append(pieces, &Piece{
				gridX:   x,
				gridY:   y,
				correct: correct,
				size:    w,
				crop:    crop,
				img:     buf.SubImage(crop).(*image.RGBA),
				pos:     origin.Add(correct),
				z:       len(pieces),
			})
		}
	}
	return pieces
}
