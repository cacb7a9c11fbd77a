package gdan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RunConfig holds the window and app settings.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the FPS/TPS overlay in the top-right corner.
	ShowFPS bool
	// Debug enables per-second timing stats and debug log lines.
	Debug bool
	// InitialState is the first screen. Empty means StateMainMenu.
	InitialState State
	// AssetsDir is the root images are loaded from.
	AssetsDir string
	// ScreenshotDir is where F12 and scripted screenshots are written.
	ScreenshotDir string
	// Script is an optional JSON test script path.
	Script string
	// ExitAfterScript quits once the script has run.
	ExitAfterScript bool
	// ClearColor fills the screen before each frame.
	ClearColor Color
}

// DefaultRunConfig returns the settings used when a field is left zero.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "gdan",
		Width:         1280,
		Height:        720,
		InitialState:  StateMainMenu,
		AssetsDir:     "assets",
		ScreenshotDir: "screenshots",
		ClearColor:    Color{0.16, 0.16, 0.16, 1},
	}
}

func (c *RunConfig) fill() {
	d := DefaultRunConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.InitialState == "" {
		c.InitialState = d.InitialState
	}
	if c.AssetsDir == "" {
		c.AssetsDir = d.AssetsDir
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = d.ClearColor
	}
}

// App owns the entity world, the screen state machine, the system schedule
// and the per-frame services systems use. It implements ebiten.Game.
type App struct {
	World  donburi.World
	States *States
	Time   *Time
	Input  *Input
	Camera *Camera
	Gizmos *Gizmos
	Assets *Assets

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// ClearColor fills the screen before each frame.
	ClearColor Color

	config    RunConfig
	systems   map[Label][]*systemEntry
	renderers [layerCount][]*rendererEntry

	width, height int
	started       bool
	quit          bool

	debug      bool
	stats      debugStats
	statsTimer Timer
	fps        *fpsOverlay

	fonts map[float64]*Font

	screenshotQueue []string
	runner          *TestRunner
}

// NewApp creates an app with an empty schedule. Zero fields of cfg take
// their DefaultRunConfig values.
func NewApp(cfg RunConfig) *App {
	cfg.fill()
	a := &App{
		World:         donburi.NewWorld(),
		States:        newStates(cfg.InitialState),
		Time:          &Time{},
		Input:         NewInput(nil),
		Camera:        NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		Gizmos:        NewGizmos(),
		Assets:        NewAssets(cfg.AssetsDir),
		ScreenshotDir: cfg.ScreenshotDir,
		ClearColor:    cfg.ClearColor,
		config:        cfg,
		systems:       make(map[Label][]*systemEntry),
		width:         cfg.Width,
		height:        cfg.Height,
		debug:         cfg.Debug,
		statsTimer:    NewTimer(1, TimerRepeating),
		fonts:         make(map[float64]*Font),
	}
	if cfg.ShowFPS {
		a.fps = newFPSOverlay()
	}
	a.AddSystems(Update, updateButtons)
	a.AddRenderers(LayerUI, drawButtons, drawTexts)
	return a
}

// Config returns the settings the app was created with.
func (a *App) Config() RunConfig { return a.config }

// Size returns the current screen size in pixels.
func (a *App) Size() (w, h float64) { return float64(a.width), float64(a.height) }

// Quit stops the game loop at the end of the current frame.
func (a *App) Quit() { a.quit = true }

// SetDebugMode enables or disables per-second stats and Debugf output.
func (a *App) SetDebugMode(enabled bool) { a.debug = enabled }

// SetTestRunner attaches a script runner. Its step runs before input is
// polled each frame.
func (a *App) SetTestRunner(r *TestRunner) { a.runner = r }

// Update advances one fixed tick.
func (a *App) Update() error {
	if err := a.Step(1.0 / float64(ebiten.TPS())); err != nil {
		return err
	}
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// Step runs one frame of dt seconds: script, input, pending transition,
// Update systems, then queued events.
func (a *App) Step(dt float64) error {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	if a.runner != nil {
		a.runner.step(a)
		if a.runner.Done() && a.config.ExitAfterScript {
			a.quit = true
		}
	}
	a.Input.poll()
	a.Time.Advance(dt)
	a.Gizmos.clear()

	if !a.started {
		a.started = true
		a.runLabel(Startup)
		a.runLabel(OnEnter(a.States.Current()))
	}
	if err := a.applyTransition(); err != nil {
		return err
	}

	a.Camera.update(float32(dt))
	a.handleHotkeys()
	a.runLabel(Update)
	events.ProcessAllEvents(a.World)

	if a.debug {
		a.stats.updateTime += time.Since(t0)
		a.stats.frames++
		if a.statsTimer.Tick(dt).JustFinished() {
			a.stats.entities = a.World.Len()
			a.stats.gizmoLines = a.Gizmos.Len()
			a.debugLog(a.stats)
			a.stats = debugStats{}
		}
	}
	return nil
}

func (a *App) applyTransition() error {
	t, changed, err := a.States.apply(context.Background())
	if err != nil || !changed {
		return err
	}
	Logf("state: %s -> %s", t.from, t.to)
	a.runLabel(OnExit(t.from))
	a.Camera.Reset()
	StateChangedEvent.Publish(a.World, StateChanged{From: t.from, To: t.to})
	a.runLabel(OnEnter(t.to))
	return nil
}

func (a *App) handleHotkeys() {
	if a.Input.JustPressed(ebiten.KeyF12) {
		a.Screenshot(string(a.States.Current()))
	}
	if a.Input.JustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
		Logf("debug: %v", a.debug)
	}
}

// Draw renders every layer, then gizmos, overlays and queued screenshots.
func (a *App) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	screen.Fill(a.ClearColor.toRGBA())
	for layer := Layer(0); layer < layerCount; layer++ {
		if layer == LayerUI {
			a.Gizmos.flush(screen, a.Camera)
		}
		a.runLayer(layer, screen)
	}
	if a.fps != nil {
		a.fps.draw(screen, a.Time.Delta())
	}
	a.flushScreenshots(screen)

	if a.debug {
		a.stats.drawTime += time.Since(t0)
	}
}

// Layout keeps the camera viewport in sync with the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	a.Camera.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the app quits. When the config names
// a script it is loaded and attached first.
func Run(a *App) error {
	cfg := a.config
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("gdan: read script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return fmt.Errorf("gdan: %w", err)
		}
		a.SetTestRunner(runner)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if a.runner != nil {
		if fails := a.runner.Failures(); len(fails) > 0 && err == nil {
			err = fmt.Errorf("gdan: script: %d expectation(s) failed: %v", len(fails), fails)
		}
	}
	return err
}
