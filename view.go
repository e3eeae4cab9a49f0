package jigsaw

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

const (
	winText       = "You Win!"
	winTextSize   = 32
	winPopSeconds = 0.35
)

// banner is the "You Win!" overlay. scale and alpha are driven by a tween.
type banner struct {
	shown bool
	scale float64
	alpha float64
	tween *TweenGroup
}

func (bn *banner) show() {
	if bn.shown {
		return
	}
	bn.shown = true
	bn.scale = 0.5
	bn.alpha = 0
	bn.tween = TweenTo(&bn.scale, 1, winPopSeconds, ease.OutBack).
		Also(&bn.alpha, 1, winPopSeconds, ease.Linear)
}

func (bn *banner) update(dt float32) {
	if bn.tween != nil && !bn.tween.Done {
		bn.tween.Update(dt)
	}
}

// BoardView draws a Board: play area, grid, pieces in z order, and the win
// banner on top of everything.
type BoardView struct {
	board *Board
	theme Theme
	fonts *Fonts

	textures map[*Piece]*ebiten.Image // created lazily on first draw
	order    []*Piece                 // reused z-sorted buffer
	banner   banner
}

// NewBoardView creates a view of b. fonts may be nil, in which case the win
// banner is not drawn.
func NewBoardView(b *Board, theme Theme, fonts *Fonts) *BoardView {
	return &BoardView{
		board:    b,
		theme:    theme,
		fonts:    fonts,
		textures: make(map[*Piece]*ebiten.Image, len(b.Pieces())),
	}
}

// Board returns the board being drawn.
func (v *BoardView) Board() *Board { return v.board }

// Update advances the banner animation. The banner appears once the board
// has been won and stays up.
func (v *BoardView) Update(dt float32) {
	if v.board.Won() {
		v.banner.show()
	}
	v.banner.update(dt)
}

// Draw renders the board onto dst.
func (v *BoardView) Draw(dst *ebiten.Image) {
	b := v.board
	if b.IsDisposed() {
		return
	}
	area := b.Area()
	vector.DrawFilledRect(dst, float32(area.X), float32(area.Y),
		float32(area.Width), float32(area.Height), RGB(v.theme.Area).RGBA(), false)
	v.drawGrid(dst, area)

	v.order = append(v.order[:0], b.Pieces()...)
	slices.SortFunc(v.order, func(a, c *Piece) int { return a.Z() - c.Z() })

	var op ebiten.DrawImageOptions
	for _, p := range v.order {
		img := v.texture(p)
		crop := p.Crop()
		op.GeoM.Reset()
		op.GeoM.Scale(p.Size()/float64(crop.Dx()), p.Size()/float64(crop.Dy()))
		pos := p.Position()
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.Reset()
		if p.PickedUp() {
			op.ColorScale.ScaleWithColor(RGB(v.theme.PickupTint).RGBA())
		}
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, &op)
	}

	if v.banner.shown && v.fonts != nil {
		c := RGB(v.theme.Banner)
		c.A = v.banner.alpha
		v.fonts.drawText(dst, winText,
			area.X+area.Width/2, area.Y+area.Height/2,
			TextStyle{Size: winTextSize, Color: c, Center: true, Scale: v.banner.scale})
	}
}

func (v *BoardView) drawGrid(dst *ebiten.Image, area Rect) {
	n := int(v.board.Resolution())
	cell := v.board.PieceSize()
	clr := RGB(v.theme.Grid).RGBA()
	for i := 0; i <= n; i++ {
		x := float32(area.X + float64(i)*cell)
		vector.StrokeLine(dst, x, float32(area.Y), x, float32(area.Bottom()), 1, clr, false)
		y := float32(area.Y + float64(i)*cell)
		vector.StrokeLine(dst, float32(area.X), y, float32(area.Right()), y, 1, clr, false)
	}
}

func (v *BoardView) texture(p *Piece) *ebiten.Image {
	if img, ok := v.textures[p]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(p.Image())
	v.textures[p] = img
	return img
}

// Dispose deallocates the piece textures.
func (v *BoardView) Dispose() {
	for p, img := range v.textures {
		img.Deallocate()
		delete(v.textures, p)
	}
	v.order = nil
}
