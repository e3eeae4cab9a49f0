package jigsaw

import (
	"context"
	"fmt"
	"image"
	"log/slog"
)

// MountState tracks a Mount from image load to teardown.
type MountState uint8

const (
	MountIdle    MountState = iota // Start not called yet
	MountLoading                   // image load in flight
	MountReady                     // board built
	MountFailed                    // load or build failed; no board
	MountClosed                    // torn down
)

func (s MountState) String() string {
	switch s {
	case MountIdle:
		return "idle"
	case MountLoading:
		return "loading"
	case MountReady:
		return "ready"
	case MountFailed:
		return "failed"
	case MountClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type loadResult struct {
	img image.Image
	err error
}

// Mount bridges an image source to a Board. Start resolves the image on a
// background goroutine; Poll, called from the update loop, picks up the result
// and builds the board there, so the board itself is only ever touched on the
// update goroutine.
type Mount struct {
	src    ImageSource
	cfg    BoardConfig
	logger *slog.Logger

	state   MountState
	cancel  context.CancelFunc
	results chan loadResult

	img   image.Image
	board *Board
	err   error
}

// NewMount prepares a mount for src. cfg is used for every board the mount
// builds, including restarts.
func NewMount(src ImageSource, cfg BoardConfig) *Mount {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Mount{src: src, cfg: cfg, logger: logger}
}

// Start begins loading the image. It is a no-op unless the mount is idle.
func (m *Mount) Start(ctx context.Context) {
	if m.state != MountIdle {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.results = make(chan loadResult, 1)
	m.state = MountLoading

	src := m.src
	results := m.results
	go func() {
		img, err := LoadImage(ctx, src)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		results <- loadResult{img: img, err: err}
	}()
}

// Poll collects a finished load without blocking. It returns true if the
// mount changed state.
func (m *Mount) Poll() bool {
	if m.state != MountLoading {
		return false
	}
	select {
	case res := <-m.results:
		m.finish(res)
		return true
	default:
		return false
	}
}

// Wait blocks until the load finishes or ctx is done, then behaves like Poll.
func (m *Mount) Wait(ctx context.Context) error {
	if m.state != MountLoading {
		return m.err
	}
	select {
	case res := <-m.results:
		m.finish(res)
		return m.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mount) finish(res loadResult) {
	if res.err != nil {
		m.fail(res.err)
		return
	}
	m.img = res.img
	if err := m.build(); err != nil {
		m.fail(err)
		return
	}
	m.state = MountReady
}

func (m *Mount) fail(err error) {
	m.err = err
	m.state = MountFailed
	m.logger.Warn("image load failed", "source", sourceName(m.src), "error", err)
}

func (m *Mount) build() error {
	board, err := NewBoard(m.img, m.cfg)
	if err != nil {
		return fmt.Errorf("mount %s: %w", sourceName(m.src), err)
	}
	if m.board != nil {
		m.board.Dispose()
	}
	m.board = board
	return nil
}

// Restart discards the current board and builds a fresh one, re-randomizing
// the layout. It only applies to a ready mount. If the rebuild fails the old
// board is disposed too and the mount is left Failed with no board.
func (m *Mount) Restart() error {
	if m.state != MountReady {
		return fmt.Errorf("restart: mount is %s", m.state)
	}
	if err := m.build(); err != nil {
		m.dropBoard()
		m.fail(err)
		return err
	}
	return nil
}

func (m *Mount) dropBoard() {
	if m.board != nil {
		m.board.Dispose()
		m.board = nil
	}
}

// Close cancels any in-flight load and disposes the board.
func (m *Mount) Close() {
	if m.state == MountClosed {
		return
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.dropBoard()
	m.img = nil
	m.state = MountClosed
}

// State returns the mount's lifecycle state.
func (m *Mount) State() MountState { return m.state }

// Board returns the current board, or nil if none is built.
func (m *Mount) Board() *Board { return m.board }

// Failed reports whether the image could not be loaded.
func (m *Mount) Failed() bool { return m.state == MountFailed }

// Err returns the load error, if any.
func (m *Mount) Err() error { return m.err }

// Source returns the image source being mounted.
func (m *Mount) Source() ImageSource { return m.src }

func sourceName(src ImageSource) string {
	if src == nil {
		return "<none>"
	}
	return src.Name()
}
