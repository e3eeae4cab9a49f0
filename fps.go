package jigsaw

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the current FPS and TPS in the bottom-left corner.
// The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.img != nil && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	if o.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(0, float64(dst.Bounds().Dy()-o.img.Bounds().Dy()))
	dst.DrawImage(o.img, &op)
}

func (o *fpsOverlay) dispose() {
	if o.img != nil {
		o.img.Deallocate()
		o.img = nil
	}
}
