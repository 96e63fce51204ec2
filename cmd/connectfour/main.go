// Package main is the entry point for Connect Four.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/connectfour/internal/config"
	"github.com/samdwyer/connectfour/internal/game"
	"github.com/samdwyer/connectfour/internal/gamedata"
	"github.com/samdwyer/connectfour/internal/logging"
	"github.com/samdwyer/connectfour/internal/telemetry"
	"github.com/samdwyer/connectfour/internal/ui"
)

func main() {
	// Load .env file for local development. Not fatal: variables may be set directly.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "connectfour",
		Usage:  "Connect Four for two players on one console",
		Flags:  config.Flags(),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("connectfour: %v", err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := c.Context
	if cfg.Telemetry {
		shutdown := setupTelemetry(ctx, cfg, logger)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	theme, err := gamedata.LoadTheme(cfg.ThemePath)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	console, closeConsole, err := openConsole(cfg, theme)
	if err != nil {
		return err
	}
	defer closeConsole()

	g := game.New(console, ui.NewRenderer(theme), game.WithLogger(logger))
	return g.Run(ctx)
}

// setupTelemetry starts the exporter. Failures are logged and the game runs without tracing.
func setupTelemetry(ctx context.Context, cfg config.Config, logger *zap.Logger) func(context.Context) error {
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{Endpoint: cfg.OTLPEndpoint})
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
		return func(context.Context) error { return nil }
	}
	return shutdown
}

// openConsole picks the front end. The returned func restores the terminal.
func openConsole(cfg config.Config, theme gamedata.Theme) (ui.Console, func(), error) {
	if cfg.UI == config.UIScreen {
		screen, err := ui.NewScreenConsole(theme.Palette(), os.Stdout)
		if err != nil {
			return nil, nil, fmt.Errorf("screen: %w", err)
		}
		return screen, screen.Close, nil
	}
	return ui.NewLineConsole(os.Stdin, os.Stdout), func() {}, nil
}
