package arcana

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is the top-level object that owns the node tree, the animator, the
// timers, input state, and render buffers.
type Scene struct {
	root   *Node
	anim   *Animator
	timers []*Timer
	logger *zap.Logger
	debug  bool

	// ClearColor fills the screen before the tree is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	updateFunc func() error
	resizeFunc func(w, h int)
	width      int
	height     int
	frame      uint64

	// Render state
	rtPool     renderTexturePool
	rtDeferred []*ebiten.Image
	stats      debugStats

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	// Scripted runs
	script          *ScriptRunner
	screenshotQueue []string
	ScreenshotDir   string
}

// NewScene creates a new scene with a pre-created, interactable root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		anim:          NewAnimator(),
		logger:        zap.NewNop(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animator returns the scene's animator. Tweens started on it advance with
// every Update.
func (s *Scene) Animator() *Animator {
	return s.anim
}

// SetLogger replaces the scene's logger. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, pointer events
// and periodic draw stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetUpdateFunc registers a callback run at the end of every Update.
// A non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetResizeFunc registers a callback run whenever the layout size changes,
// including the first layout.
func (s *Scene) SetResizeFunc(fn func(w, h int)) {
	s.resizeFunc = fn
}

// Size returns the last layout size reported to the scene.
func (s *Scene) Size() (w, h int) {
	return s.width, s.height
}

// Resize records a new layout size and runs the resize callback if the size
// changed.
func (s *Scene) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.logger.Debug("resize", zap.Int("width", w), zap.Int("height", h))
	if s.resizeFunc != nil {
		s.resizeFunc(w, h)
	}
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Advance moves simulated time forward by dt seconds: due timers fire, then
// tweens step. Input is not read. Tests drive a scene headlessly with
// Advance and FeedPointer.
func (s *Scene) Advance(dt float32) {
	s.advanceTimers(float64(dt))
	s.anim.Update(dt)
}

// Update advances one tick, then runs the script step and processes input.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.Advance(dt)
	if s.script != nil {
		// Stop a frame after the last step so its screenshot gets drawn.
		if s.script.Done() && s.script.ExitWhenDone() {
			return ebiten.Termination
		}
		s.script.step(s)
	}
	s.processInput()
	s.frame++
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.stats = debugStats{}
	s.drawNode(screen, s.root, identityTransform, 1)

	// Release deferred pooled textures used during this frame.
	for _, img := range s.rtDeferred {
		s.rtPool.Release(img)
	}
	s.rtDeferred = s.rtDeferred[:0]

	s.flushScreenshots(screen)
	s.debugLog()
}
