package arcana

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// debugLogEvery is how many frames pass between draw-stat log lines.
const debugLogEvery = 120

// debugStats holds per-frame draw metrics.
type debugStats struct {
	drawCalls int
	offscreen int
}

// debugLog logs draw stats every debugLogEvery frames when debug mode is on.
func (s *Scene) debugLog() {
	if !s.debug || s.frame%debugLogEvery != 0 {
		return
	}
	s.logger.Debug("frame stats",
		zap.Uint64("frame", s.frame),
		zap.Int("draw_calls", s.stats.drawCalls),
		zap.Int("offscreen", s.stats.offscreen),
		zap.Int("pooled_textures", s.rtPool.Idle()),
		zap.Int("tweens", s.anim.Len()),
		zap.Int("timers", len(s.timers)),
		zap.Float64("fps", ebiten.ActualFPS()),
		zap.Float64("tps", ebiten.ActualTPS()),
	)
}
