package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/plus3/scenecore/config"
	"github.com/plus3/scenecore/ebitenhost"
	"github.com/plus3/scenecore/ecs"
	"github.com/plus3/scenecore/ecs/debugui"
	imguiebiten "github.com/plus3/scenecore/ecs/debugui/ebiten"
	"github.com/plus3/scenecore/physics"
	"github.com/plus3/scenecore/script"
	"go.uber.org/zap"
)

const boxSize = 32

// spinnerSource pulses the sprite's scale while physics moves it.
const spinnerSource = `
math := import("math")

if phase == "start" {
	state.t = 0.0
}
if phase == "update" {
	state.t += dt
	s := 1.0 + 0.25 * math.sin(state.t * 4.0)
	scale = [s, s, 1.0]
}
`

func main() {
	configPath := flag.String("config", "", "Optional YAML or TOML config file.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector and timing windows.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log, *debug); err != nil {
		log.Fatal("scene demo failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger, debug bool) error {
	surface := ebitenhost.NewSurface()

	entity := ecs.NewEntity(ecs.WithName("crate"), ecs.WithLogger(log))
	entity.SetPosition(mgl32.Vec3{float32(cfg.Window.Width) / 2, 40, 0})

	// Screen space grows downwards, so gravity is positive y.
	world := ecs.AddComponent[physics.World](entity).Init(mgl32.Vec3{0, 400, 0})
	floor := cp.NewSegment(world.Space().StaticBody,
		cp.Vector{X: 0, Y: float64(cfg.Window.Height - 40)},
		cp.Vector{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height - 40)},
		2)
	floor.SetFriction(1)
	world.Space().AddShape(floor)

	body := ecs.AddComponent[physics.Body](entity)
	if err := body.Init(world, 1, boxSize, boxSize); err != nil {
		return err
	}
	body.SetVelocity(mgl32.Vec3{60, 0, 0})

	spinner := ecs.AddComponent[script.Component](entity)
	if err := spinner.Init([]byte(spinnerSource)); err != nil {
		return err
	}

	img := ebiten.NewImage(boxSize, boxSize)
	img.Fill(color.RGBA{R: 0xd0, G: 0x8c, B: 0x30, A: 0xff})
	ecs.AddComponent[ebitenhost.Sprite](entity).Init(surface, img)

	scheduler := ecs.NewScheduler(entity, cfg.Scheduler, ecs.WithSchedulerLogger(log))

	var opts []ebitenhost.GameOption
	if debug {
		ecs.AddComponent[debugui.InspectorComponent](entity)
		ecs.AddComponent[debugui.StatsComponent](entity).Init(scheduler, 120)
		opts = append(opts, ebitenhost.WithOverlay(imguiebiten.NewOverlay(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)))
	}

	log.Info("starting scene",
		zap.String("entity", entity.Name),
		zap.Int("components", entity.ComponentCount()),
		zap.Bool("debug", debug),
	)

	game := ebitenhost.NewGame(scheduler, surface, cfg.Window, opts...)
	return ebitenhost.Run(game, cfg.Window)
}
