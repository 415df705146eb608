// Package ebitenhost runs an entity inside an ebiten game loop. Start, Update
// and the fixed physics steps run from ebiten's Update; Render runs from Draw
// with the frame's screen published on a Surface.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/scenecore/config"
	"github.com/plus3/scenecore/ecs"
)

// Overlay is drawn on top of the entity, typically an immediate-mode debug UI.
// BeginFrame and EndFrame bracket the entity's Render so UI components can
// emit widgets from their Render hook.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game for a single scheduled entity.
type Game struct {
	scheduler *ecs.Scheduler
	surface   *Surface
	overlay   Overlay
	width     int
	height    int
	tickRate  int
}

type GameOption func(*Game)

// WithOverlay draws overlay after the entity each frame.
func WithOverlay(overlay Overlay) GameOption {
	return func(g *Game) {
		g.overlay = overlay
	}
}

// WithTickRate fixes the delta passed to Update at 1/tps seconds. By default,
// or when tps is not positive, the current ebiten TPS is used.
func WithTickRate(tps int) GameOption {
	return func(g *Game) {
		g.tickRate = tps
	}
}

func NewGame(scheduler *ecs.Scheduler, surface *Surface, window config.WindowConfig, opts ...GameOption) *Game {
	g := &Game{
		scheduler: scheduler,
		surface:   surface,
		width:     window.Width,
		height:    window.Height,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Update() error {
	g.scheduler.Tick(1.0 / g.ticksPerSecond())
	return nil
}

// ticksPerSecond resolves the update rate. With TPS synced to FPS ebiten
// reports SyncWithFPS, so the measured rate is used, or DefaultTPS until one
// has been measured.
func (g *Game) ticksPerSecond() float64 {
	if g.tickRate > 0 {
		return float64(g.tickRate)
	}
	if tps := ebiten.TPS(); tps > 0 {
		return float64(tps)
	}
	if actual := ebiten.ActualTPS(); actual > 0 {
		return actual
	}
	return ebiten.DefaultTPS
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.set(screen)
	defer g.surface.set(nil)

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.scheduler.RenderFrame()
	if g.overlay != nil {
		g.overlay.EndFrame()
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.width, g.height)
	}
	return g.width, g.height
}

// Run opens the window and blocks until the game ends, then destroys the entity.
func Run(g *Game, window config.WindowConfig) error {
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	defer g.scheduler.Destroy()
	return ebiten.RunGame(g)
}
