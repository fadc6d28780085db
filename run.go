package arcana

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// RunConfig configures the window created by [Run].
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// TPS sets ticks per second. Zero keeps Ebitengine's default of 60.
	TPS int
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene   *Scene
	showFPS bool
}

func (g *gameShell) Update() error {
	return g.scene.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout uses the window size as the logical screen size, so resizing the
// window resizes the scene.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window closes or an update
// callback returns an error. [ebiten.Termination] ends the loop without error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("arcana: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	scene.logger.Info("window",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("resizable", cfg.Resizable),
	)
	if err := ebiten.RunGame(&gameShell{scene: scene, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("arcana: run: %w", err)
	}
	return nil
}
