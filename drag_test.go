package jigsaw

import (
	"testing"
)

func TestPointerDownPicksTopmost(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	ps := b.Pieces()
	low, high := ps[0], ps[1]
	low.pos = Vec2{100, 100}
	high.pos = Vec2{150, 150}
	low.z, high.z = 10, 11
	b.nextZ = 12

	if !b.PointerDown(200, 200) {
		t.Fatal("PointerDown missed overlapping pieces")
	}
	if b.Active() != high {
		t.Fatal("expected the higher piece to be picked")
	}
	if !high.PickedUp() || low.PickedUp() {
		t.Error("PickedUp flags wrong")
	}
	if high.Z() != 12 || b.nextZ != 13 {
		t.Errorf("z = %d, nextZ = %d; want 12, 13", high.Z(), b.nextZ)
	}
	if b.DragState() != DragDragging {
		t.Errorf("state = %v, want dragging", b.DragState())
	}
}

func TestPointerDownOnEdge(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	p := b.Pieces()[0]
	p.pos = Vec2{1000, 1000}
	if !b.PointerDown(1000+p.Size(), 1000+p.Size()) {
		t.Error("bottom-right corner should count as inside")
	}
}

func TestPointerDownEmptySpace(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	zs := make(map[*Piece]int)
	for _, p := range b.Pieces() {
		zs[p] = p.Z()
	}

	if b.PointerDown(b.Area().X+1, b.Area().Y+1) {
		t.Fatal("PointerDown on empty space returned true")
	}
	if b.DragState() != DragIdle || b.Active() != nil {
		t.Error("board should stay idle")
	}
	for p, z := range zs {
		if p.Z() != z {
			t.Error("z changed on a miss")
		}
	}
	b.PointerMove(10, 10)
	if b.PointerUp() {
		t.Error("PointerUp while idle returned true")
	}
}

func TestPointerDownWhileDraggingIgnored(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	first, second := b.Pieces()[0], b.Pieces()[1]
	c1 := first.Bounds()
	c2 := second.Bounds()

	b.PointerDown(c1.X+1, c1.Y+1)
	if b.PointerDown(c2.X+1, c2.Y+1) {
		t.Fatal("second PointerDown should be ignored")
	}
	if b.Active() != first || second.PickedUp() {
		t.Error("active piece changed")
	}
}

func TestDragKeepsGrabOffset(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	p := b.Pieces()[0]
	p.pos = Vec2{700, 300}

	b.PointerDown(710, 315)
	b.PointerMove(300, 300)
	if want := (Vec2{290, 285}); p.Position() != want {
		t.Errorf("position = %+v, want %+v", p.Position(), want)
	}
	b.PointerMove(301, 302)
	if want := (Vec2{291, 287}); p.Position() != want {
		t.Errorf("position = %+v, want %+v", p.Position(), want)
	}
}

func TestDragNotClamped(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	p := b.Pieces()[0]
	start := p.Position()

	b.PointerDown(start.X, start.Y)
	b.PointerMove(-1000, 5000)
	b.PointerUp()
	if want := (Vec2{-1000, 5000}); p.Position() != want {
		t.Errorf("position = %+v, want %+v", p.Position(), want)
	}
	if p.PickedUp() || b.DragState() != DragIdle {
		t.Error("release should clear the drag")
	}
}

func TestReleaseSnapThreshold(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		snap   bool
	}{
		{"exact", 0, 0, true},
		{"inside", 12, -15, true},
		{"just inside", 19.9, 19.9, true},
		{"at threshold x", 20, 0, false},
		{"at threshold y", 0, -20, false},
		{"one axis outside", 5, 25, false},
		{"far", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, 2, BoardConfig{})
			spreadOut(b)
			p := b.Piece(1, 1)
			target := b.CorrectPosition(p).Add(Vec2{tt.dx, tt.dy})

			got := dragTo(t, b, p, target)
			if got != tt.snap {
				t.Fatalf("snapped = %v, want %v", got, tt.snap)
			}
			want := target
			if tt.snap {
				want = b.CorrectPosition(p)
			}
			if p.Position() != want {
				t.Errorf("position = %+v, want %+v", p.Position(), want)
			}
		})
	}
}

func TestPickupZMonotonic(t *testing.T) {
	b := newTestBoard(t, 3, BoardConfig{})
	spreadOut(b)
	last := -1
	for round := 0; round < 3; round++ {
		for _, p := range b.Pieces() {
			c := p.Bounds()
			b.PointerDown(c.X+1, c.Y+1)
			if p.Z() <= last {
				t.Fatalf("z %d not above previous pickup %d", p.Z(), last)
			}
			for _, o := range b.Pieces() {
				if o != p && o.Z() >= p.Z() {
					t.Fatalf("picked piece z %d not above piece z %d", p.Z(), o.Z())
				}
			}
			last = p.Z()
			b.PointerUp()
			if p.Z() != last {
				t.Error("release changed z")
			}
		}
	}
}

func TestDragStateString(t *testing.T) {
	if DragIdle.String() != "idle" || DragDragging.String() != "dragging" {
		t.Error("unexpected DragState strings")
	}
}

func TestGrabPoint(t *testing.T) {
	b := newTestBoard(t, 2, BoardConfig{})
	spreadOut(b)
	under, over := b.Piece(0, 0), b.Piece(1, 0)
	under.pos = Vec2{100, 100}
	under.z = 0
	over.z = b.nextZ
	b.nextZ++

	// Uncovered: the center.
	pt, ok := b.GrabPoint(under)
	if !ok || pt != (Vec2{225, 225}) {
		t.Fatalf("GrabPoint = %+v, %v; want center", pt, ok)
	}

	// Center covered: some other point that still hits the piece.
	over.pos = Vec2{200, 200}
	pt, ok = b.GrabPoint(under)
	if !ok {
		t.Fatal("partly covered piece has no grab point")
	}
	if b.PieceAt(pt.X, pt.Y) != under {
		t.Errorf("GrabPoint %+v hits another piece", pt)
	}
	if !b.PointerDown(pt.X, pt.Y) || b.Active() != under {
		t.Error("PointerDown at the grab point did not pick the piece")
	}
	b.PointerUp()

	// Fully covered.
	under.z = -1
	over.pos = under.pos
	if _, ok := b.GrabPoint(under); ok {
		t.Error("fully covered piece reported a grab point")
	}
}
