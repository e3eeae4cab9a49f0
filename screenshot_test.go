package jigsaw

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-win", "after-win"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	a := newTestApp(t)
	a.Screenshot("a")
	a.Screenshot("b")
	a.Screenshot("c")
	if len(a.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(a.screenshotQueue))
	}
	if a.screenshotQueue[0] != "a" || a.screenshotQueue[1] != "b" || a.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", a.screenshotQueue)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, gradientImage(12, 7)); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 12, 7) {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), gradientImage(1, 1)); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestScreenshotName(t *testing.T) {
	got := screenshotName("20260101_120000", 7, "after win!", "3x3_placed9of9_won")
	want := "20260101_120000_007_after_win__3x3_placed9of9_won.png"
	if got != want {
		t.Errorf("screenshotName = %q, want %q", got, want)
	}
}

func TestScreenshotState(t *testing.T) {
	a := newTestApp(t)
	if got := a.screenshotState(); got != "setup" {
		t.Errorf("setup screen state = %q", got)
	}

	a.SetSource(testSource(t))
	if err := a.SetResolution(2); err != nil {
		t.Fatal(err)
	}
	a.StartGame()
	if got := a.screenshotState(); got != "loading" {
		t.Errorf("state while loading = %q", got)
	}
	runUntil(t, a, func() bool { return a.view != nil })

	b := a.Board()
	spreadOut(b)
	if got := a.screenshotState(); got != "2x2_placed0of4" {
		t.Errorf("spread board state = %q", got)
	}
	solve(t, b)
	if got := a.screenshotState(); got != "2x2_placed4of4_won" {
		t.Errorf("solved board state = %q", got)
	}

	bad := newTestApp(t)
	bad.SetSource(FSSource{FS: fstest.MapFS{"x.png": {Data: []byte("nope")}}, Path: "x.png"})
	bad.StartGame()
	runUntil(t, bad, func() bool { return !bad.Loading() })
	if got := bad.screenshotState(); got != "failed" {
		t.Errorf("failed load state = %q", got)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque
		64, 32, 0, 128, // half transparent
		0, 0, 0, 0, // clear
		10, 20, 30, 40,
	}
	img := unpremultiply(pixels, 2, 2)
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
		63, 127, 191, 40,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
	if pixels[4] != 64 {
		t.Error("unpremultiply modified its input")
	}
}
