package jigsaw

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPiecesCorrectPositions(t *testing.T) {
	buf := image.NewRGBA(image.Rect(0, 0, 500, 500))
	origin := Vec2{X: 10, Y: 20}
	pieces := newPieces(buf, 2, origin)

	type cell struct {
		GridX, GridY int
		Correct      Vec2
		Pos          Vec2
		Z            int
	}
	var got []cell
	for _, p := range pieces {
		got = append(got, cell{p.GridX(), p.GridY(), p.Correct(), p.Position(), p.Z()})
	}
	want := []cell{
		{0, 0, Vec2{0, 0}, Vec2{10, 20}, 0},
		{1, 0, Vec2{250, 0}, Vec2{260, 20}, 1},
		{0, 1, Vec2{0, 250}, Vec2{10, 270}, 2},
		{1, 1, Vec2{250, 250}, Vec2{260, 270}, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pieces mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPiecesCount(t *testing.T) {
	buf := image.NewRGBA(image.Rect(0, 0, 500, 500))
	for _, n := range Resolutions {
		pieces := newPieces(buf, int(n), Vec2{})
		if len(pieces) != int(n)*int(n) {
			t.Fatalf("n=%d: got %d pieces, want %d", n, len(pieces), n*n)
		}
		seen := make(map[[2]int]bool)
		for _, p := range pieces {
			key := [2]int{p.GridX(), p.GridY()}
			if seen[key] {
				t.Fatalf("n=%d: duplicate cell %v", n, key)
			}
			seen[key] = true
			if p.Size() != 500/float64(n) {
				t.Errorf("n=%d: size = %v, want %v", n, p.Size(), 500/float64(n))
			}
		}
	}
}

func TestNewPiecesTileExactly(t *testing.T) {
	// 500 is not a multiple of 3, 4 or 6: crops must still tile the buffer
	// with no gaps and no overlap.
	buf := image.NewRGBA(image.Rect(0, 0, 500, 500))
	for _, n := range Resolutions {
		var covered [500][500]uint8
		for _, p := range newPieces(buf, int(n), Vec2{}) {
			c := p.Crop()
			for y := c.Min.Y; y < c.Max.Y; y++ {
				for x := c.Min.X; x < c.Max.X; x++ {
					covered[y][x]++
				}
			}
		}
		for y := range covered {
			for x := range covered[y] {
				if covered[y][x] != 1 {
					t.Fatalf("n=%d: pixel (%d,%d) covered %d times", n, x, y, covered[y][x])
				}
			}
		}
	}
}

func TestPieceImageMatchesBuffer(t *testing.T) {
	buf, err := Normalize(gradientImage(64, 64), 500)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range newPieces(buf, 3, Vec2{}) {
		img := p.Image()
		if img.Bounds() != p.Crop() {
			t.Fatalf("piece (%d,%d): image bounds %v != crop %v", p.GridX(), p.GridY(), img.Bounds(), p.Crop())
		}
		c := p.Crop()
		for _, pt := range []image.Point{c.Min, c.Max.Sub(image.Pt(1, 1))} {
			if img.RGBAAt(pt.X, pt.Y) != buf.RGBAAt(pt.X, pt.Y) {
				t.Errorf("piece (%d,%d): pixel %v differs from buffer", p.GridX(), p.GridY(), pt)
			}
		}
	}
}

func TestPieceBounds(t *testing.T) {
	p := &Piece{size: 100, pos: Vec2{X: 5, Y: 7}}
	want := Rect{X: 5, Y: 7, Width: 100, Height: 100}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}
