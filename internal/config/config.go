// Package config loads arcana.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/phanxgames/arcana"
	"github.com/phanxgames/arcana/internal/backdrop"
	"github.com/phanxgames/arcana/internal/table"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the full settings file.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Grid        GridConfig        `yaml:"grid"`
	Interaction InteractionConfig `yaml:"interaction"`
	Motion      MotionConfig      `yaml:"motion"`
	Background  BackgroundConfig  `yaml:"background"`
	Deck        DeckConfig        `yaml:"deck"`
	Log         LogConfig         `yaml:"log"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	TPS       int    `yaml:"tps"`
}

type GridConfig struct {
	Columns    int     `yaml:"columns"`
	CardWidth  float64 `yaml:"card_width"`
	CardHeight float64 `yaml:"card_height"`
	SpacingX   float64 `yaml:"spacing_x"`
	SpacingY   float64 `yaml:"spacing_y"`
	Fit        bool    `yaml:"fit"` // shrink the grid to fit small windows
}

type InteractionConfig struct {
	DragThreshold float64       `yaml:"drag_threshold"`
	SwapRadius    float64       `yaml:"swap_radius"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
	HoverScale    float64       `yaml:"hover_scale"`
	HoverTilt     float64       `yaml:"hover_tilt"`
}

type MotionConfig struct {
	Base              time.Duration `yaml:"base"`
	Min               time.Duration `yaml:"min"`
	Max               time.Duration `yaml:"max"`
	ReferenceDistance float64       `yaml:"reference_distance"`
	FlipHalf          time.Duration `yaml:"flip_half"`
}

type BackgroundConfig struct {
	Stars int    `yaml:"stars"`
	Inner string `yaml:"inner"`
	Outer string `yaml:"outer"`
	Clear string `yaml:"clear"`
}

type DeckConfig struct {
	Path  string `yaml:"path"`
	Cards int    `yaml:"cards"` // faces dealt onto the table
	// RareOdds is the 1-in-N chance of a card getting the rare back.
	RareOdds int `yaml:"rare_odds"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in settings.
func Default() Config {
	tc := table.DefaultConfig()
	bc := backdrop.DefaultConfig()
	return Config{
		Window: WindowConfig{Width: 1024, Height: 768, Title: "Arcana", Resizable: true, TPS: 60},
		Grid: GridConfig{
			Columns:    3,
			CardWidth:  305,
			CardHeight: 550,
			SpacingX:   18,
			SpacingY:   24,
			Fit:        tc.Fit,
		},
		Interaction: InteractionConfig{
			DragThreshold: tc.DragThreshold,
			SwapRadius:    tc.SwapRadius,
			SettleDelay:   tc.SettleDelay,
			HoverScale:    tc.HoverScale,
			HoverTilt:     tc.HoverTilt,
		},
		Motion: MotionConfig{
			Base:              tc.Motion.Base,
			Min:               tc.Motion.Min,
			Max:               tc.Motion.Max,
			ReferenceDistance: tc.Motion.Reference,
			FlipHalf:          tc.FlipHalf,
		},
		Background: BackgroundConfig{
			Stars: bc.Stars,
			Inner: "#55305e",
			Outer: "#120110",
			Clear: "#0f010f",
		},
		Deck: DeckConfig{Path: "decks/major", Cards: 6, RareOdds: 200},
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default; a missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects settings the table cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TPS >= 0, "window.tps must not be negative")

	check(c.Grid.Columns > 0, "grid.columns must be positive")
	check(c.Grid.CardWidth > 0 && c.Grid.CardHeight > 0, "grid: card size must be positive")
	check(c.Grid.SpacingX >= 0 && c.Grid.SpacingY >= 0, "grid: spacing must not be negative")

	check(c.Interaction.DragThreshold > 0, "interaction.drag_threshold must be positive")
	check(c.Interaction.SwapRadius > 0, "interaction.swap_radius must be positive")
	check(c.Interaction.SettleDelay >= 0, "interaction.settle_delay must not be negative")
	check(c.Interaction.HoverScale > 0, "interaction.hover_scale must be positive")
	check(c.Interaction.HoverTilt >= 0, "interaction.hover_tilt must not be negative")

	m := c.Motion
	check(m.Base > 0 && m.Min > 0 && m.Max > 0 && m.FlipHalf > 0, "motion: durations must be positive")
	check(m.Min <= m.Max, "motion: min %s exceeds max %s", m.Min, m.Max)
	check(m.ReferenceDistance > 0, "motion.reference_distance must be positive")

	check(c.Background.Stars >= 0, "background.stars must not be negative")
	for _, f := range []struct{ name, value string }{
		{"inner", c.Background.Inner},
		{"outer", c.Background.Outer},
		{"clear", c.Background.Clear},
	} {
		_, err := arcana.ParseHexColor(f.value)
		check(err == nil, "background.%s: %v", f.name, err)
	}

	check(c.Deck.Path != "", "deck.path is required")
	check(c.Deck.Cards > 0, "deck.cards must be positive")
	check(c.Deck.RareOdds > 0, "deck.rare_odds must be positive")

	_, err := zapcore.ParseLevel(c.Log.Level)
	check(err == nil, "log.level: %v", err)

	return errors.Join(errs...)
}

// Table converts the interaction, motion and grid settings.
func (c *Config) Table() table.Config {
	tc := table.DefaultConfig()
	tc.DragThreshold = c.Interaction.DragThreshold
	tc.SwapRadius = c.Interaction.SwapRadius
	tc.SettleDelay = c.Interaction.SettleDelay
	tc.HoverScale = c.Interaction.HoverScale
	tc.HoverTilt = c.Interaction.HoverTilt
	tc.FlipHalf = c.Motion.FlipHalf
	tc.Motion = table.Motion{
		Base:      c.Motion.Base,
		Min:       c.Motion.Min,
		Max:       c.Motion.Max,
		Reference: c.Motion.ReferenceDistance,
	}
	tc.Fit = c.Grid.Fit
	return tc
}

// Layout builds the slot layout for count cards.
func (c *Config) Layout(count int) table.Layout {
	g := c.Grid
	return table.NewLayout(count, g.Columns, g.CardWidth, g.CardHeight, g.SpacingX, g.SpacingY)
}

// Backdrop converts the background settings. Colors were checked by
// Validate; an unparsable one falls back to the default.
func (c *Config) Backdrop() backdrop.Config {
	bc := backdrop.DefaultConfig()
	bc.Stars = c.Background.Stars
	if col, err := arcana.ParseHexColor(c.Background.Inner); err == nil {
		bc.Inner = col
	}
	if col, err := arcana.ParseHexColor(c.Background.Outer); err == nil {
		bc.Outer = col
	}
	return bc
}

// ClearColor is the screen fill behind the backdrop.
func (c *Config) ClearColor() arcana.Color {
	col, err := arcana.ParseHexColor(c.Background.Clear)
	if err != nil {
		return arcana.Color{A: 1}
	}
	return col
}

// Logger builds a zap logger from the log settings. level overrides
// Log.Level when non-empty.
func (c *Config) Logger(level string) (*zap.Logger, error) {
	if level == "" {
		level = c.Log.Level
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl
	return zc.Build()
}
