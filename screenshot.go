package jigsaw

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the frame being drawn. The PNG is
// written to the configured screenshot directory as
// <time>_<seq>_<label>_<state>.png, where state describes the game at the
// moment of capture, e.g. "setup", "loading" or "3x3_placed4of9_won".
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots writes every queued capture. Called at the end of Draw.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	dir := a.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.logger.Error("screenshot: mkdir failed", "dir", dir, "error", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	state := a.screenshotState()
	for _, label := range a.screenshotQueue {
		a.screenshotSeq++
		path := filepath.Join(dir, screenshotName(stamp, a.screenshotSeq, label, state))
		if err := writePNG(path, img); err != nil {
			a.logger.Error("screenshot failed", "error", err)
			continue
		}
		a.logger.Debug("screenshot written", "path", path, "state", state)
	}
}

// screenshotState summarizes what the app is showing.
func (a *App) screenshotState() string {
	if a.screen == ScreenSetup {
		return "setup"
	}
	switch {
	case a.mount == nil:
		return "game"
	case a.mount.Failed():
		return "failed"
	case a.Loading():
		return "loading"
	}
	b := a.Board()
	if b == nil {
		return "game"
	}
	n := int(b.Resolution())
	state := fmt.Sprintf("%dx%d_placed%dof%d", n, n, b.PlacedCount(), len(b.Pieces()))
	if b.Won() {
		state += "_won"
	}
	return state
}

func screenshotName(stamp string, seq int, label, state string) string {
	return fmt.Sprintf("%s_%03d_%s_%s.png", stamp, seq, sanitizeLabel(label), state)
}

// unpremultiply turns the premultiplied RGBA bytes from ReadPixels into a
// straight-alpha image, which is what PNG stores.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		al := int(img.Pix[i+3])
		if al == 0 || al == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/al, 255))
		}
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces anything else
// with '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
