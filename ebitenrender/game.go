package ebitenrender

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/kinema"
	"github.com/phanxgames/kinema/colorspace"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int // defaults to 1280
	Height int // defaults to 720

	// Background fills the screen before each frame. The zero value is
	// transparent, which Run replaces with black.
	Background colorspace.Color

	Draw DrawOptions

	// ShowFPS overlays the current FPS and TPS.
	ShowFPS bool

	// ScreenshotDir receives captures queued with Game.Screenshot.
	// Defaults to DefaultScreenshotDir.
	ScreenshotDir string

	// CaptureOnFinish takes a screenshot labeled "final" on the first frame
	// after every animation has finished.
	CaptureOnFinish bool
}

func (c *RunConfig) defaults() {
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Background.A() == 0 {
		c.Background = colorspace.Black
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
}

// Game adapts a kinema Scene to ebiten.Game. Each tick advances the scene by
// one fixed timestep of 1/TPS seconds.
type Game struct {
	scene    *kinema.Scene
	cfg      RunConfig
	renderer *Renderer
	bg       color.Color
	shots    []string
	captured bool
}

// NewGame creates a Game that drives scene.
func NewGame(scene *kinema.Scene, cfg RunConfig) *Game {
	cfg.defaults()
	return &Game{
		scene:    scene,
		cfg:      cfg,
		renderer: NewRenderer(cfg.Draw),
		bg:       cfg.Background,
	}
}

// Update advances the scene.
func (g *Game) Update() error {
	g.scene.Update(tickSeconds(ebiten.TPS()))
	if g.cfg.CaptureOnFinish && !g.captured && !g.scene.Animating() {
		g.captured = true
		g.Screenshot("final")
	}
	return nil
}

// Draw renders the scene tree. Queued screenshots are taken before the FPS
// overlay is drawn.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.renderer.Draw(screen, g.scene.Root())
	g.flushScreenshots(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout returns the configured screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// tickSeconds returns the timestep for a tick rate. Ebiten reports
// SyncWithFPS as a negative rate; that case falls back to 60 Hz.
func tickSeconds(tps int) float64 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float64(tps)
}

// Run opens a window and plays scene until the window is closed.
func Run(scene *kinema.Scene, cfg RunConfig) error {
	g := NewGame(scene, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}
