package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pivolan/supply_plotter/plot"
)

const envPrefix = "SUPPLY_PLOT"

const (
	KeyOutputDir = "output-dir"
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyHTML      = "html"
	KeySummary   = "summary"
	KeyVerbose   = "verbose"
)

type Config struct {
	OutputDir string
	Width     int
	Height    int
	HTML      bool
	Summary   bool
	Verbose   bool
}

// RegisterFlags declares every configurable key on flags with its default.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyOutputDir, ".", "Directory the chart is written to (env: SUPPLY_PLOT_OUTPUT_DIR)")
	flags.Int(KeyWidth, plot.DefaultWidth, "Chart width in pixels (env: SUPPLY_PLOT_WIDTH)")
	flags.Int(KeyHeight, plot.DefaultHeight, "Chart height in pixels (env: SUPPLY_PLOT_HEIGHT)")
	flags.Bool(KeyHTML, false, "Also write an interactive HTML chart (env: SUPPLY_PLOT_HTML)")
	flags.Bool(KeySummary, false, "Print a summary table of the series to stdout (env: SUPPLY_PLOT_SUMMARY)")
	flags.BoolP(KeyVerbose, "v", false, "Debug logging on stderr (env: SUPPLY_PLOT_VERBOSE)")
}

// Load resolves the configuration. Precedence: changed flag, environment, .env, flag default.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// .env is optional; existing environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	config := &Config{
		OutputDir: v.GetString(KeyOutputDir),
		Width:     v.GetInt(KeyWidth),
		Height:    v.GetInt(KeyHeight),
		HTML:      v.GetBool(KeyHTML),
		Summary:   v.GetBool(KeySummary),
		Verbose:   v.GetBool(KeyVerbose),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("invalid width %d: must be positive", cfg.Width)
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("invalid height %d: must be positive", cfg.Height)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return nil
}
