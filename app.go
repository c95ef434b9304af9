package sinewalk

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Tween durations in seconds.
const (
	resetDuration = 0.5
	fadeDuration  = 0.25
)

// pathDotRadius is the radius of each dot drawn along the path.
const pathDotRadius = 1.0

// App owns the shared motion state, both drawable variants, the panel and
// the controller, and implements ebiten.Game.
type App struct {
	log   *zap.Logger
	runID string

	viewport Viewport
	motion   Motion
	triangle *Shape
	image    *Shape // nil when no image is configured

	panel        *Panel
	controller   *Controller
	lastUseImage bool

	resetTween  *TweenGroup
	resetTarget Motion
	fadeTween   *TweenGroup

	// Input state
	poll        func() hardwareInput
	pointer     pointerState
	injectQueue []syntheticEvent

	// Scripted runs and screenshots
	testRunner      *TestRunner
	exitAfterScript bool
	screenshotQueue []string
	// ScreenshotDir is the directory where screenshots are written.
	ScreenshotDir string

	debug   bool
	showFPS bool
	fps     fpsCounter
	stats   debugStats
	canvas  *ScreenCanvas
}

// NewApp builds an App from cfg. A configured image that cannot be loaded
// is returned as an error.
func NewApp(cfg Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	a := &App{
		log:           logger.With(zap.String("run", runID)),
		runID:         runID,
		viewport:      Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		ScreenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
		showFPS:       cfg.ShowFPS,
		poll:          pollHardware,
	}

	params := cfg.Params.Clamp()
	a.motion = StartMotion(params, a.viewport)
	a.triangle = NewTriangle(&a.motion, DefaultTriangle(), ColorBlue)
	if cfg.Image != "" {
		img, err := LoadImageShape(&a.motion, cfg.Image)
		if err != nil {
			return nil, err
		}
		a.image = img
		a.log.Info("image loaded", zap.String("path", cfg.Image),
			zap.Float64("width", img.Width), zap.Float64("height", img.Height))
	}

	a.panel = NewPanel(params, Vec2{X: 10, Y: 10})
	a.controller = NewController(&a.motion, a.triangle)
	a.lastUseImage = params.UseImage
	return a, nil
}

// RunID returns the uuid identifying this run in logs and screenshot names.
func (a *App) RunID() string { return a.runID }

// Controller returns the animation/interaction controller.
func (a *App) Controller() *Controller { return a.controller }

// Panel returns the parameter panel.
func (a *App) Panel() *Panel { return a.panel }

// activeShape returns the variant currently drawn. Without a loaded image
// the triangle is always used.
func (a *App) activeShape() *Shape {
	if a.panel.Params().UseImage && a.image != nil {
		return a.image
	}
	return a.triangle
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	if a.testRunner != nil {
		a.testRunner.step(a)
		if a.testRunner.Done() && a.exitAfterScript && len(a.screenshotQueue) == 0 && len(a.injectQueue) == 0 {
			a.log.Info("script complete")
			return ebiten.Termination
		}
	}
	a.processInput()
	a.step(float32(1.0 / float64(ebiten.TPS())))

	if a.debug {
		a.stats.updateTime += time.Since(t0)
	}
	return nil
}

// step advances tweens and the controller by one tick of dt seconds.
func (a *App) step(dt float32) {
	params := a.panel.Params()

	if params.UseImage != a.lastUseImage {
		a.lastUseImage = params.UseImage
		if params.UseImage && a.image == nil {
			a.log.Warn("use image requested but no image is loaded")
		}
		s := a.activeShape()
		s.Alpha = 0
		a.fadeTween = TweenAlpha(s, 1, fadeDuration, ease.OutQuad)
		a.log.Info("variant switched", zap.Stringer("kind", s.Kind))
	}
	a.fadeTween.Update(dt)

	if a.showFPS {
		a.fps.update(float64(dt))
	}

	if a.resetTween.Active() {
		a.resetTween.Update(dt)
		if a.resetTween.Done {
			a.motion = a.resetTarget
		}
		return
	}
	a.controller.Tick(params, a.viewport)
}

// reset stops the animation and eases the shape back to its start placement.
func (a *App) reset() {
	a.controller.Stop()
	a.resetTarget = StartMotion(a.panel.Params(), a.viewport)
	a.resetTween = TweenMotion(&a.motion, a.resetTarget, resetDuration, ease.InOutQuad)
	a.log.Info("reset")
}

func (a *App) toggleFullscreen() {
	fs := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fs)
	a.log.Info("fullscreen", zap.Bool("enabled", fs))
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	screen.Fill(ColorBlack.toRGBA())
	if a.canvas == nil {
		a.canvas = NewScreenCanvas(screen)
	} else {
		a.canvas.Reset(screen)
	}
	a.drawScene(a.canvas)

	if a.showFPS {
		a.fps.draw(a.canvas, a.viewport)
	}
	a.flushScreenshots(screen)

	if a.debug {
		a.stats.drawTime += time.Since(t0)
		a.debugLog()
	}
}

// drawScene draws the active shape, the path, the debug overlay and the panel.
func (a *App) drawScene(cv Canvas) {
	params := a.panel.Params()

	a.activeShape().Draw(cv)

	if params.ShowPath {
		for _, p := range SamplePath(params.Amplitude, params.Cycles, a.viewport, 1) {
			cv.FillCircle(p, pathDotRadius, ColorPurple)
		}
	}
	if a.debug {
		a.drawDebug(cv)
	}
	a.panel.Draw(cv)
}

// Layout implements ebiten.Game. The outside size is the viewport, so the
// path always spans the current window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.viewport = Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	}
	return outsideWidth, outsideHeight
}

// Viewport returns the current drawable size.
func (a *App) Viewport() Viewport { return a.viewport }

// Run opens the window and blocks until it is closed or a script with
// exit-after-script finishes.
func Run(cfg Config, logger *zap.Logger) error {
	a, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		a.SetTestRunner(runner)
		a.exitAfterScript = cfg.ExitAfterScript
		a.log.Info("script attached", zap.String("path", cfg.Script), zap.Int("steps", len(runner.steps)))
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	a.log.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("image", a.image != nil))

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
