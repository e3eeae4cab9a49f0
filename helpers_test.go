package jigsaw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"testing"
)

// gradientImage returns a w×h image whose red channel encodes x and green
// channel encodes y.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 255 / max(w-1, 1)), G: uint8(y * 255 / max(h-1, 1)), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newTestBoard builds an n×n board over a 100×60 gradient with a fixed seed.
func newTestBoard(t *testing.T, n Resolution, cfg BoardConfig) *Board {
	t.Helper()
	cfg.Resolution = n
	if cfg.Rand == nil {
		cfg.Rand = seededRand(1)
	}
	b, err := NewBoard(gradientImage(100, 60), cfg)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

// spreadOut moves every piece outside the play area, in a row to the right,
// so no two pieces overlap.
func spreadOut(b *Board) {
	area := b.Area()
	for i, p := range b.Pieces() {
		p.pos = Vec2{X: area.Right() + 50 + float64(i)*(p.size+10), Y: area.Y}
	}
}

// dragTo presses at the center of p, moves so that p's top-left lands on
// target, and releases. Returns what PointerUp returned.
func dragTo(t *testing.T, b *Board, p *Piece, target Vec2) bool {
	t.Helper()
	half := p.Size() / 2
	from := p.Position()
	if !b.PointerDown(from.X+half, from.Y+half) {
		t.Fatalf("PointerDown on piece (%d,%d) missed", p.GridX(), p.GridY())
	}
	if b.Active() != p {
		t.Fatalf("picked up the wrong piece")
	}
	b.PointerMove(target.X+half, target.Y+half)
	return b.PointerUp()
}

// solve drags every piece home.
func solve(t *testing.T, b *Board) {
	t.Helper()
	spreadOut(b)
	for _, p := range b.Pieces() {
		dragTo(t, b, p, b.CorrectPosition(p))
	}
}

type recordedEvent struct {
	ev   EventType
	x, y float64
}

type recordingHandler struct {
	events []recordedEvent
}

func (h *recordingHandler) PointerEvent(ev EventType, x, y float64) {
	h.events = append(h.events, recordedEvent{ev, x, y})
}
