package jigsaw

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	navHeight = 48

	titleText      = "Jigsaw Puzzle Game"
	noImageNotice  = "Please upload an image first!"
	loadErrorText  = "Error loading image. Please try again with a different image."
	loadingText    = "Loading image..."
	chooseHintText = "Drop an image onto this window, or start with --image PATH|URL"
)

// Screen is the page the app is showing.
type Screen uint8

const (
	ScreenSetup Screen = iota // image and resolution selection
	ScreenGame                // nav bar plus the puzzle
)

func (s Screen) String() string {
	switch s {
	case ScreenSetup:
		return "setup"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

// App is the host shell. It owns the setup state (image source, resolution),
// switches between the setup and game screens, and owns the lifetime of the
// current Mount and its Board. It implements ebiten.Game.
type App struct {
	ctx    context.Context
	cfg    *Config
	logger *slog.Logger
	fonts  *Fonts
	rng    Rand // nil gives every board a fresh system-seeded source

	screen     Screen
	source     ImageSource
	resolution Resolution
	notice     string

	mount          *Mount
	view           *BoardView
	restartPending bool

	input         pointerInput
	setupButtons  []*button
	gameButtons   []*button
	pressedButton *button

	testRunner      *TestRunner
	quitAfterScript bool
	screenshotQueue []string
	screenshotSeq   int

	debug bool
	fps   fpsOverlay
	stats frameStats
}

// NewApp creates the shell on the setup screen. ctx bounds every image load
// the app starts. A nil cfg uses DefaultConfig.
func NewApp(ctx context.Context, cfg *Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	a := &App{
		ctx:        ctx,
		cfg:        cfg,
		logger:     logger,
		fonts:      fonts,
		resolution: cfg.Board.DefaultResolution,
	}
	a.layoutButtons()
	return a, nil
}

func (a *App) layoutButtons() {
	w := float64(a.cfg.Window.Width)

	const resW, resH, gap = 120.0, 40.0, 10.0
	rowW := float64(len(Resolutions))*resW + float64(len(Resolutions)-1)*gap
	x := (w - rowW) / 2
	for _, r := range Resolutions {
		a.setupButtons = append(a.setupButtons, &button{
			label:    r.String(),
			rect:     Rect{X: x, Y: 260, Width: resW, Height: resH},
			onClick:  func() { a.SetResolution(r) },
			selected: func() bool { return a.resolution == r },
		})
		x += resW + gap
	}
	a.setupButtons = append(a.setupButtons, &button{
		label:   "Start Game",
		rect:    Rect{X: (w - 200) / 2, Y: 340, Width: 200, Height: 48},
		onClick: func() { a.StartGame() },
	})

	a.gameButtons = []*button{
		{label: "Restart", rect: Rect{X: 10, Y: 8, Width: 100, Height: navHeight - 16}, onClick: a.RestartGame},
		{label: "Exit", rect: Rect{X: 120, Y: 8, Width: 100, Height: navHeight - 16}, onClick: a.ExitGame},
	}
}

// SetSource selects the image for the next game.
func (a *App) SetSource(src ImageSource) {
	a.source = src
	if src != nil {
		a.notice = ""
		a.logger.Debug("image selected", "source", src.Name())
	}
}

// Source returns the selected image source, or nil.
func (a *App) Source() ImageSource { return a.source }

// SetResolution selects the grid resolution for the next game.
func (a *App) SetResolution(r Resolution) error {
	if err := r.Validate(); err != nil {
		return err
	}
	a.resolution = r
	return nil
}

// Resolution returns the selected grid resolution.
func (a *App) Resolution() Resolution { return a.resolution }

// Screen returns the current screen.
func (a *App) Screen() Screen { return a.screen }

// Notice returns the setup-screen notice, if any.
func (a *App) Notice() string { return a.notice }

// Mount returns the current game mount, or nil on the setup screen.
func (a *App) Mount() *Mount { return a.mount }

// Board returns the board in play, or nil.
func (a *App) Board() *Board {
	if a.mount == nil {
		return nil
	}
	return a.mount.Board()
}

// Loading reports whether an image load is in flight.
func (a *App) Loading() bool {
	return a.mount != nil && a.mount.State() == MountLoading
}

// BoardOrigin returns where the play area's top-left corner goes: centered
// horizontally, and vertically within the space below the nav bar.
func (a *App) BoardOrigin() Vec2 {
	size := float64(a.cfg.Board.AreaSize)
	w := float64(a.cfg.Window.Width)
	h := float64(a.cfg.Window.Height - navHeight)
	return Vec2{X: (w - size) / 2, Y: navHeight + (h-size)/2}
}

func (a *App) boardConfig() BoardConfig {
	return BoardConfig{
		Resolution:     a.resolution,
		AreaSize:       a.cfg.Board.AreaSize,
		Origin:         a.BoardOrigin(),
		SnapThreshold:  a.cfg.Board.SnapThreshold,
		PlaceTolerance: a.cfg.Board.PlaceTolerance,
		Rand:           a.rng,
		Logger:         a.logger,
	}
}

// StartGame switches to the game screen and begins loading the selected
// image. Without an image it stays on the setup screen, sets a notice and
// returns false.
func (a *App) StartGame() bool {
	if a.screen == ScreenGame {
		return true
	}
	if a.source == nil {
		a.notice = noImageNotice
		return false
	}
	a.notice = ""
	a.screen = ScreenGame
	a.mountGame()
	return true
}

func (a *App) mountGame() {
	a.unmountGame()
	a.mount = NewMount(a.source, a.boardConfig())
	a.mount.Start(a.ctx)
	a.logger.Info("game started", "source", a.source.Name(), "resolution", int(a.resolution))
}

func (a *App) unmountGame() {
	if a.view != nil {
		a.view.Dispose()
		a.view = nil
	}
	if a.mount != nil {
		a.mount.Close()
		a.mount = nil
	}
}

// ExitGame tears down the board and returns to the setup screen.
func (a *App) ExitGame() {
	if a.screen != ScreenGame {
		return
	}
	a.unmountGame()
	a.restartPending = false
	a.screen = ScreenSetup
	a.logger.Info("game exited")
}

// RestartGame rebuilds the board on the next frame.
func (a *App) RestartGame() {
	if a.screen == ScreenGame {
		a.restartPending = true
	}
}

func (a *App) restart() {
	a.restartPending = false
	if a.mount == nil || a.mount.State() != MountReady {
		// No decoded image to reuse: load it again.
		a.mountGame()
		return
	}
	if a.view != nil {
		a.view.Dispose()
		a.view = nil
	}
	if err := a.mount.Restart(); err != nil {
		a.logger.Error("game restart failed", "resolution", int(a.resolution), "error", err)
		return
	}
	a.view = NewBoardView(a.mount.Board(), a.cfg.Theme, a.fonts)
	a.logger.Info("game restarted", "resolution", int(a.resolution))
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	return a.update(true)
}

// update runs one frame. With live false only injected input is processed,
// so the frame is fully deterministic.
func (a *App) update(live bool) error {
	if a.debug {
		start := time.Now()
		defer func() { a.recordUpdate(time.Since(start)) }()
	}
	if a.testRunner != nil {
		// Quit one frame after the script ends so its last screenshot is drawn.
		if a.testRunner.Done() && a.quitAfterScript {
			return ebiten.Termination
		}
		a.testRunner.step(a)
	}
	if a.restartPending {
		a.restart()
	}
	if a.mount != nil && a.mount.Poll() && a.mount.State() == MountReady {
		a.view = NewBoardView(a.mount.Board(), a.cfg.Theme, a.fonts)
	}

	if live {
		a.handleDroppedFiles()
		a.handleKeys()
		a.input.process(a)
	} else {
		a.input.processInjected(a)
	}

	dt := 1.0 / float64(ebiten.TPS())
	if a.view != nil {
		a.view.Update(float32(dt))
	}
	if a.debug && live {
		a.fps.update(dt)
	}
	return nil
}

func (a *App) handleDroppedFiles() {
	if a.screen != ScreenSetup {
		return
	}
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return
	}
	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		a.logger.Warn("read dropped files", "error", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		// The dropped set is only valid for this tick, so keep the bytes.
		data, err := fs.ReadFile(dropped, e.Name())
		if err != nil {
			a.logger.Warn("read dropped file", "name", e.Name(), "error", err)
			return
		}
		a.SetSource(BytesSource{Label: e.Name(), Data: data})
		return
	}
}

func (a *App) handleKeys() {
	switch a.screen {
	case ScreenSetup:
		for i, key := range []ebiten.Key{ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6} {
			if inpututil.IsKeyJustPressed(key) {
				a.SetResolution(Resolutions[i])
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.StartGame()
		}
	case ScreenGame:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.RestartGame()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.ExitGame()
		}
	}
}

func (a *App) buttons() []*button {
	if a.screen == ScreenGame {
		return a.gameButtons
	}
	return a.setupButtons
}

// PointerEvent routes pointer input to the buttons of the current screen or,
// on the game screen, to the board.
func (a *App) PointerEvent(ev EventType, x, y float64) {
	switch ev {
	case EventPointerDown:
		if btn := buttonAt(a.buttons(), x, y); btn != nil {
			a.pressedButton = btn
			return
		}
		if b := a.Board(); b != nil && a.screen == ScreenGame {
			b.PointerDown(x, y)
		}
	case EventPointerMove:
		if b := a.Board(); b != nil {
			b.PointerMove(x, y)
		}
	case EventPointerUp:
		if btn := a.pressedButton; btn != nil {
			a.pressedButton = nil
			if btn.rect.Contains(x, y) {
				btn.onClick()
			}
			return
		}
		if b := a.Board(); b != nil {
			// The release sample may be the first at a new position.
			b.PointerMove(x, y)
			b.PointerUp()
		}
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if a.debug {
		start := time.Now()
		defer func() { a.recordDraw(time.Since(start)) }()
	}
	screen.Fill(RGB(a.cfg.Theme.Background).RGBA())
	switch a.screen {
	case ScreenSetup:
		a.drawSetup(screen)
	case ScreenGame:
		a.drawGame(screen)
	}
	if a.debug {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)
}

func (a *App) drawSetup(screen *ebiten.Image) {
	theme := a.cfg.Theme
	cx := float64(a.cfg.Window.Width) / 2
	textColor := RGB(theme.Text)

	a.fonts.drawText(screen, titleText, cx, 120, TextStyle{Size: 40, Color: RGB(theme.Nav), Center: true})

	choice := chooseHintText
	if a.source != nil {
		choice = "Image: " + a.source.Name()
	}
	a.fonts.drawText(screen, choice, cx, 200, TextStyle{Size: 16, Color: textColor, Center: true})
	a.fonts.drawText(screen, "Puzzle Size:", cx, 240, TextStyle{Size: 16, Color: textColor, Center: true})

	for _, btn := range a.setupButtons {
		btn.draw(screen, a.fonts, theme, btn == a.pressedButton)
	}
	if a.notice != "" {
		a.fonts.drawText(screen, a.notice, cx, 420, TextStyle{Size: 18, Color: RGB(theme.Error), Center: true})
	}
}

func (a *App) drawGame(screen *ebiten.Image) {
	theme := a.cfg.Theme
	vector.DrawFilledRect(screen, 0, 0, float32(a.cfg.Window.Width), navHeight, RGB(theme.Nav).RGBA(), false)
	for _, btn := range a.gameButtons {
		btn.draw(screen, a.fonts, theme, btn == a.pressedButton)
	}

	center := a.BoardOrigin().Add(Vec2{
		X: float64(a.cfg.Board.AreaSize) / 2,
		Y: float64(a.cfg.Board.AreaSize) / 2,
	})
	switch {
	case a.mount == nil:
	case a.mount.Failed():
		a.fonts.drawText(screen, loadErrorText, center.X, center.Y,
			TextStyle{Size: 18, Color: RGB(theme.Error), Center: true})
	case a.view != nil:
		a.view.Draw(screen)
		if b := a.Board(); b != nil {
			status := fmt.Sprintf("%s  placed %d/%d", b.Resolution(), b.PlacedCount(), len(b.Pieces()))
			a.fonts.drawText(screen, status, float64(a.cfg.Window.Width)-10-160, navHeight/2,
				TextStyle{Size: 14, Color: ColorWhite, Center: true})
		}
	default:
		a.fonts.drawText(screen, loadingText, center.X, center.Y,
			TextStyle{Size: 18, Color: RGB(theme.Text), Center: true})
	}
}

// Layout implements ebiten.Game. The logical screen is fixed to the
// configured window size; Ebitengine scales it to the real window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Close releases the current game, if any.
func (a *App) Close() {
	a.unmountGame()
	a.fps.dispose()
}

// Run opens the window and runs the app until the window is closed.
func Run(app *App) error {
	ebiten.SetWindowSize(app.cfg.Window.Width, app.cfg.Window.Height)
	ebiten.SetWindowTitle(app.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer app.Close()
	return ebiten.RunGame(app)
}
