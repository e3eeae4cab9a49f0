// Command jigsaw runs the jigsaw puzzle game.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/phanxgames/jigsaw"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "jigsaw",
		Usage: "drag the pieces back into place",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "image file path or http(s) URL",
			},
			&cli.IntFlag{
				Name:    "resolution",
				Aliases: []string{"n"},
				Usage:   "pieces per side (2-6)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: "JSON test script to play back",
			},
			&cli.BoolFlag{
				Name:  "quit",
				Usage: "close the window when the script finishes",
			},
			&cli.StringFlag{
				Name:  "screenshot-dir",
				Usage: "directory for script screenshots",
			},
			&cli.BoolFlag{
				Name:  "start",
				Usage: "skip the setup screen when --image is given",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging and the FPS overlay",
			},
		},
		Action: run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "jigsaw:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := jigsaw.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = jigsaw.LoadConfigFile(path); err != nil {
			return err
		}
	}
	if dir := cmd.String("screenshot-dir"); dir != "" {
		cfg.ScreenshotDir = dir
	}

	app, err := jigsaw.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	app.SetDebug(cmd.Bool("debug"))
	if n := cmd.Int("resolution"); n != 0 {
		if err := app.SetResolution(jigsaw.Resolution(n)); err != nil {
			return err
		}
	}
	if src := jigsaw.ParseSource(cmd.String("image")); src != nil {
		app.SetSource(src)
		if cmd.Bool("start") {
			app.StartGame()
		}
	}
	if path := cmd.String("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := jigsaw.LoadTestScript(data)
		if err != nil {
			return err
		}
		app.SetTestRunner(runner, cmd.Bool("quit"))
	}

	logger.Debug("starting", "resolution", app.Resolution().String(), "area", cfg.Board.AreaSize)
	return jigsaw.Run(app)
}
