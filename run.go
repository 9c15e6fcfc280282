package tilestack

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run. Zero fields fall back to
// defaults.
type RunConfig struct {
	Title   string
	Width   int // default 800
	Height  int // default 600
	ShowFPS bool
}

const (
	defaultWidth  = 800
	defaultHeight = 600
)

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
	fps   *fpsWidget // nil unless cfg.ShowFPS
}

func (g *game) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.tick()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.Draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) { return g.cfg.Width, g.cfg.Height }

// Run opens a window and drives scene until the window closes or the scene's
// update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	g := &game{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return ebiten.RunGame(g)
}
