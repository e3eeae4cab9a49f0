package jigsaw

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
)

// BoardConfig controls how a Board is built.
type BoardConfig struct {
	Resolution Resolution
	// AreaSize is the side of the square play area. Zero means DefaultAreaSize.
	AreaSize int
	// Origin is the world position of the play area's top-left corner.
	Origin Vec2
	// SnapThreshold and PlaceTolerance default to DefaultSnapThreshold and
	// DefaultPlaceTolerance when zero.
	SnapThreshold  float64
	PlaceTolerance float64
	// Rand drives the initial layout. Nil uses a system-seeded source.
	Rand   Rand
	Logger *slog.Logger
	// OnWin fires once, the first time a release leaves the board solved.
	OnWin func()
}

func (c *BoardConfig) defaults() {
	if c.AreaSize <= 0 {
		c.AreaSize = DefaultAreaSize
	}
	if c.SnapThreshold <= 0 {
		c.SnapThreshold = DefaultSnapThreshold
	}
	if c.PlaceTolerance <= 0 {
		c.PlaceTolerance = DefaultPlaceTolerance
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
}

// Board is one puzzle in progress. It owns the piece set from creation until
// Dispose; restarting a puzzle means building a new Board.
//
// A Board is not safe for concurrent use. All methods are expected to run on
// the game's update goroutine.
type Board struct {
	resolution Resolution
	area       Rect
	snap       float64
	tolerance  float64
	logger     *slog.Logger
	onWin      func()

	normalized *image.RGBA
	pieces     []*Piece // shuffled order; Z, not index, decides stacking
	nextZ      int

	drag drag
	won  bool

	disposed bool
}

// NewBoard normalizes src, cuts it into cfg.Resolution² pieces and scatters
// them over the play area.
func NewBoard(src image.Image, cfg BoardConfig) (*Board, error) {
	if err := cfg.Resolution.Validate(); err != nil {
		return nil, err
	}
	cfg.defaults()

	buf, err := Normalize(src, cfg.AreaSize)
	if err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}

	b := &Board{
		resolution: cfg.Resolution,
		area: Rect{
			X: cfg.Origin.X, Y: cfg.Origin.Y,
			Width: float64(cfg.AreaSize), Height: float64(cfg.AreaSize),
		},
		snap:       cfg.SnapThreshold,
		tolerance:  cfg.PlaceTolerance,
		logger:     cfg.Logger,
		onWin:      cfg.OnWin,
		normalized: buf,
	}
	b.pieces = newPieces(buf, int(cfg.Resolution), cfg.Origin)
	b.nextZ = len(b.pieces)
	shuffle(b.pieces, b.area, cfg.Rand)

	b.logger.Debug("board created",
		"resolution", int(b.resolution),
		"pieces", len(b.pieces),
		"piece_size", b.PieceSize(),
		"origin_x", b.area.X, "origin_y", b.area.Y)
	return b, nil
}

// Resolution returns the number of pieces per side.
func (b *Board) Resolution() Resolution { return b.resolution }

// Area returns the play area in world coordinates.
func (b *Board) Area() Rect { return b.area }

// PieceSize returns the side length shared by every piece.
func (b *Board) PieceSize() float64 {
	return b.area.Width / float64(b.resolution)
}

// Normalized returns the stretched square image the pieces were cut from.
func (b *Board) Normalized() *image.RGBA { return b.normalized }

// Pieces returns every piece. The returned slice MUST NOT be mutated.
func (b *Board) Pieces() []*Piece { return b.pieces }

// Piece returns the piece whose home cell is (gridX, gridY), or nil.
func (b *Board) Piece(gridX, gridY int) *Piece {
	for _, p := range b.pieces {
		if p.gridX == gridX && p.gridY == gridY {
			return p
		}
	}
	return nil
}

// CorrectPosition returns the world position p belongs at.
func (b *Board) CorrectPosition(p *Piece) Vec2 {
	return Vec2{X: b.area.X, Y: b.area.Y}.Add(p.correct)
}

// Dispose releases the image buffers and piece set. A disposed board ignores
// pointer input.
func (b *Board) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.drag = drag{}
	b.pieces = nil
	b.normalized = nil
	b.onWin = nil
}

// IsDisposed reports whether Dispose has been called.
func (b *Board) IsDisposed() bool { return b.disposed }
