package jigsaw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const buttonTextSize = 16

// button is a clickable rectangle. A click is a press and release that both
// land inside the same button.
type button struct {
	label    string
	rect     Rect
	onClick  func()
	selected func() bool // optional highlight
}

func (b *button) draw(dst *ebiten.Image, fonts *Fonts, theme Theme, pressed bool) {
	fill := RGB(theme.Button)
	switch {
	case pressed:
		fill = Color{fill.R * 0.7, fill.G * 0.7, fill.B * 0.7, 1}
	case b.selected != nil && !b.selected():
		fill = Color{fill.R*0.5 + 0.4, fill.G*0.5 + 0.4, fill.B*0.5 + 0.4, 1}
	}
	vector.DrawFilledRect(dst, float32(b.rect.X), float32(b.rect.Y),
		float32(b.rect.Width), float32(b.rect.Height), fill.RGBA(), false)
	if b.selected != nil && b.selected() {
		vector.StrokeRect(dst, float32(b.rect.X), float32(b.rect.Y),
			float32(b.rect.Width), float32(b.rect.Height), 2, RGB(theme.Nav).RGBA(), false)
	}
	if fonts != nil {
		fonts.drawText(dst, b.label,
			b.rect.X+b.rect.Width/2, b.rect.Y+b.rect.Height/2,
			TextStyle{Size: buttonTextSize, Color: ColorWhite, Center: true})
	}
}

// buttonAt returns the last button containing (x, y), or nil.
func buttonAt(buttons []*button, x, y float64) *button {
	for i := len(buttons) - 1; i >= 0; i-- {
		if buttons[i].rect.Contains(x, y) {
			return buttons[i]
		}
	}
	return nil
}
