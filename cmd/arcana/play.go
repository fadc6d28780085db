package main

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"time"

	"github.com/phanxgames/arcana"
	"github.com/phanxgames/arcana/internal/backdrop"
	"github.com/phanxgames/arcana/internal/config"
	"github.com/phanxgames/arcana/internal/deck"
	"github.com/phanxgames/arcana/internal/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the table window (default)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

const labelSize = 22

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := cfg.Logger(opts.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	log.Info("starting", zap.Uint64("seed", seed), zap.String("deck", cfg.Deck.Path))

	d, err := deck.Load(deckFS(cfg), cfg.Deck.Cards, log.Named("deck"))
	if err != nil {
		log.Error("deck", zap.Error(err))
		return fmt.Errorf("load deck %s: %w", cfg.Deck.Path, err)
	}

	scene, _, err := newTable(cfg, d, rng, log)
	if err != nil {
		return err
	}
	scene.SetDebugMode(opts.debug)

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := arcana.LoadScript(data)
		if err != nil {
			return fmt.Errorf("%s: %w", opts.script, err)
		}
		scene.SetScript(runner)
	}

	return arcana.Run(scene, arcana.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
		ShowFPS:   opts.showFPS,
		TPS:       cfg.Window.TPS,
	})
}

// loadConfig reads the settings file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}
	if opts.deck != "" {
		cfg.Deck.Path = opts.deck
	}
	return cfg, nil
}

// tableRand is what the table and backdrop draw from.
type tableRand interface {
	table.Rand
	backdrop.Rand
}

// newTable builds the scene: backdrop underneath, then the card grid with
// one card per deck face.
func newTable(cfg *config.Config, d *deck.Deck, rng tableRand, log *zap.Logger) (*arcana.Scene, *table.Board, error) {
	scene := arcana.NewScene()
	scene.SetLogger(log.Named("scene"))
	scene.ClearColor = cfg.ClearColor()

	bg := backdrop.New(cfg.Backdrop(), rng, log.Named("backdrop"))
	scene.Root().AddChild(bg.Node())

	layout := cfg.Layout(len(d.Faces))
	board := table.NewBoard(scene, layout, cfg.Table(), rng, log.Named("table"))
	board.OnSwap = func(sw table.Swap) {
		log.Info("swap",
			zap.String("dragged", d.Cards[sw.Dragged].Name),
			zap.String("partner", d.Cards[sw.Partner].Name),
		)
	}

	font, err := arcana.DefaultFont(labelSize)
	if err != nil {
		return nil, nil, err
	}
	w, h := layout.CardSize()
	style := table.DefaultStyle(w, h, font)
	rare := 0
	for i, face := range d.Faces {
		back := d.Back
		if table.RareBack(rng, cfg.Deck.RareOdds) {
			back = d.RareBack
			rare++
		}
		name := d.Cards[i].Name
		if _, err := board.AddCard(name, table.NewVisual(style, name, face, back, rng)); err != nil {
			return nil, nil, fmt.Errorf("add card %s: %w", name, err)
		}
	}
	log.Debug("table dealt", zap.Int("cards", len(d.Faces)), zap.Int("rare_backs", rare))

	scene.SetResizeFunc(func(w, h int) {
		bg.Resize(w, h)
		board.Recenter(w, h)
	})
	return scene, board, nil
}

// deckFS opens the configured deck directory.
func deckFS(cfg *config.Config) fs.FS {
	return os.DirFS(cfg.Deck.Path)
}
