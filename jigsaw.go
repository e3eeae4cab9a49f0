package jigsaw

import (
	"errors"
	"fmt"
	"image/color"
)

// Defaults for the play area and the two tolerances. A release within
// DefaultSnapThreshold pulls the piece home, but a piece only counts toward
// the win while it sits within DefaultPlaceTolerance.
const (
	DefaultAreaSize       = 500
	DefaultSnapThreshold  = 20.0
	DefaultPlaceTolerance = 10.0

	MinResolution     = 2
	MaxResolution     = 6
	DefaultResolution = MinResolution
)

// ErrInvalidResolution is returned when a resolution lies outside
// [MinResolution, MaxResolution].
var ErrInvalidResolution = errors.New("jigsaw: invalid resolution")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Resolution is the number of pieces along each side of the board.
type Resolution int

// Resolutions lists every playable resolution in ascending order.
var Resolutions = []Resolution{2, 3, 4, 5, 6}

var resolutionLabels = map[Resolution]string{
	2: "Easy",
	3: "Medium",
	4: "Hard",
	5: "Expert",
	6: "Master",
}

// Validate returns ErrInvalidResolution if r is not playable.
func (r Resolution) Validate() error {
	if r < MinResolution || r > MaxResolution {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidResolution, int(r), MinResolution, MaxResolution)
	}
	return nil
}

// String returns the setup-screen label, e.g. "3x3 (Medium)".
func (r Resolution) String() string {
	if label, ok := resolutionLabels[r]; ok {
		return fmt.Sprintf("%dx%d (%s)", r, r, label)
	}
	return fmt.Sprintf("%dx%d", r, r)
}
