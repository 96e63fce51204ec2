// Package config reads command line flags and their environment fallbacks.
package config

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"
)

// Console front ends.
const (
	UILine   = "line"
	UIScreen = "screen"
)

const envPrefix = "CONNECTFOUR_"

// Config is the resolved runtime configuration.
type Config struct {
	UI           string
	ThemePath    string
	LogFile      string
	LogLevel     string
	Telemetry    bool
	OTLPEndpoint string
}

// Flags returns the command line flags. Each flag also reads a CONNECTFOUR_* variable.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "ui",
			Value:   UILine,
			Usage:   "console front end: line or screen",
			EnvVars: []string{envPrefix + "UI"},
		},
		&cli.StringFlag{
			Name:    "theme",
			Usage:   "YAML file overriding the board glyphs and colors",
			EnvVars: []string{envPrefix + "THEME"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "write JSON logs to this file",
			EnvVars: []string{envPrefix + "LOG_FILE"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{envPrefix + "LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "telemetry",
			Usage:   "export traces over OTLP/HTTP",
			EnvVars: []string{envPrefix + "TELEMETRY"},
		},
		&cli.StringFlag{
			Name:    "otlp-endpoint",
			Usage:   "OTLP/HTTP collector URL, e.g. http://localhost:4318",
			EnvVars: []string{envPrefix + "OTLP_ENDPOINT"},
		},
	}
}

// FromContext builds a validated Config from parsed flags.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		UI:           c.String("ui"),
		ThemePath:    c.String("theme"),
		LogFile:      c.String("log-file"),
		LogLevel:     c.String("log-level"),
		Telemetry:    c.Bool("telemetry"),
		OTLPEndpoint: c.String("otlp-endpoint"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.UI != UILine && c.UI != UIScreen {
		errs = append(errs, fmt.Errorf("ui must be %q or %q, got %q", UILine, UIScreen, c.UI))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.OTLPEndpoint != "" && !c.Telemetry {
		errs = append(errs, errors.New("otlp-endpoint requires telemetry to be enabled"))
	}
	return errors.Join(errs...)
}
