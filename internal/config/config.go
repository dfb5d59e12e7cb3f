// Package config loads the chart configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/workchart/internal/heatmap"
)

// Defaults for the chart configuration.
const (
	DefaultDays          = 365
	DefaultBoxSize       = 11
	DefaultBoxSeparation = 2
	DefaultMargin        = 6
	DefaultOutput        = "work.svg"
	DefaultBackground    = "white"
)

// Validation errors.
var (
	ErrNonPositiveDays = errors.New("chart.days must be positive")
	ErrBadBoxSize      = errors.New("chart.box_size must be positive")
	ErrBadSpacing      = errors.New("chart.box_separation and chart.margin must be non-negative")
	ErrBadPalette      = errors.New("chart.palette must hold exactly one color per bucket")
	ErrEmptyOutput     = errors.New("chart.output must not be empty")
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Chart ChartConfig `mapstructure:"chart"`
}

// ChartConfig holds the chart tunables. All have defaults; the config file
// is optional and the CLI stays flag-free.
type ChartConfig struct {
	Days          int      `mapstructure:"days"`
	BoxSize       int      `mapstructure:"box_size"`
	BoxSeparation int      `mapstructure:"box_separation"`
	Margin        int      `mapstructure:"margin"`
	Output        string   `mapstructure:"output"`
	OpenViewer    bool     `mapstructure:"open_viewer"`
	Background    string   `mapstructure:"background"`
	Palette       []string `mapstructure:"palette"`
}

// Validate checks the configuration for values the chart cannot render.
func (c *Config) Validate() error {
	chart := c.Chart

	if chart.Days <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveDays, chart.Days)
	}

	if chart.BoxSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadBoxSize, chart.BoxSize)
	}

	if chart.BoxSeparation < 0 || chart.Margin < 0 {
		return ErrBadSpacing
	}

	if len(chart.Palette) != heatmap.NumBuckets {
		return fmt.Errorf("%w: got %d colors", ErrBadPalette, len(chart.Palette))
	}

	if chart.Output == "" {
		return ErrEmptyOutput
	}

	return nil
}

// Style converts the chart configuration to a render style.
func (c *Config) Style() heatmap.Style {
	return heatmap.Style{
		BoxSize:       c.Chart.BoxSize,
		BoxSeparation: c.Chart.BoxSeparation,
		Margin:        c.Chart.Margin,
		Background:    c.Chart.Background,
		Palette:       c.Chart.Palette,
	}
}
