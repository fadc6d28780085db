package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/arcana"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	tc := cfg.Table()
	if tc.DragThreshold != 12 || tc.SwapRadius != 125 {
		t.Errorf("threshold/radius = %v/%v, want 12/125", tc.DragThreshold, tc.SwapRadius)
	}
	if tc.Motion.Min != 200*time.Millisecond || tc.Motion.Max != time.Second {
		t.Errorf("motion = %+v", tc.Motion)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcana.yaml")
	data := `
window:
  width: 800
interaction:
  settle_delay: 20ms
motion:
  max: 2s
background:
  clear: "#000000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != def.Window.Height {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Interaction.SettleDelay != 20*time.Millisecond {
		t.Errorf("settle_delay = %v, want 20ms", cfg.Interaction.SettleDelay)
	}
	if cfg.Motion.Max != 2*time.Second || cfg.Motion.Min != def.Motion.Min {
		t.Errorf("motion = %+v", cfg.Motion)
	}
	if got := cfg.ClearColor(); got != (arcana.Color{A: 1}) {
		t.Errorf("ClearColor = %v, want opaque black", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "window: [", "parse:"},
		{"columns", "grid: {columns: 0}", "grid.columns"},
		{"card size", "grid: {card_width: -1}", "card size"},
		{"threshold", "interaction: {drag_threshold: 0}", "drag_threshold"},
		{"min over max", "motion: {min: 2s, max: 1s}", "exceeds max"},
		{"bad duration", "motion: {base: soon}", "parse:"},
		{"color", "background: {inner: purple}", "background.inner"},
		{"odds", "deck: {rare_odds: 0}", "rare_odds"},
		{"level", "log: {level: loud}", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.yaml), &cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Grid.Columns = 0
	cfg.Deck.Path = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "grid.columns") || !strings.Contains(msg, "deck.path") {
		t.Errorf("err = %q, want both problems", msg)
	}
}

func TestLayoutAndBackdrop(t *testing.T) {
	cfg := Default()
	l := cfg.Layout(6)
	if l.Len() != 6 {
		t.Fatalf("Len = %d, want 6", l.Len())
	}
	if a := l.Anchor(3); a.X != 152.5 || a.Y != 849 {
		t.Errorf("Anchor(3) = %v, want (152.5, 849)", a)
	}

	cfg.Background.Stars = 7
	cfg.Background.Inner = "#ff0000"
	bc := cfg.Backdrop()
	if bc.Stars != 7 || bc.Inner != (arcana.Color{R: 1, A: 1}) {
		t.Errorf("backdrop = %+v", bc)
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	log, err := cfg.Logger("debug")
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	if !log.Core().Enabled(-1) {
		t.Error("debug level should be enabled")
	}
	if _, err := cfg.Logger("nonsense"); err == nil {
		t.Error("bad level should fail")
	}
}
