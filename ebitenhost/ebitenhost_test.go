package ebitenhost_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/scenecore/config"
	"github.com/plus3/scenecore/ebitenhost"
	"github.com/plus3/scenecore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	ecs.BaseComponent
	starts, updates, physics, renders int
}

func (c *counter) Start()                          { c.starts++ }
func (c *counter) Update(deltaTime float32)        { c.updates++ }
func (c *counter) PhysicsUpdate(deltaTime float32) { c.physics++ }
func (c *counter) Render()                         { c.renders++ }

type recordingOverlay struct {
	events []string
	w, h   int
}

func (o *recordingOverlay) BeginFrame()               { o.events = append(o.events, "begin") }
func (o *recordingOverlay) EndFrame()                 { o.events = append(o.events, "end") }
func (o *recordingOverlay) Draw(screen *ebiten.Image) { o.events = append(o.events, "draw") }
func (o *recordingOverlay) Layout(width, height int)  { o.w, o.h = width, height }

// uiProbe records into the overlay log when it renders, to check bracketing.
type uiProbe struct {
	ecs.BaseComponent
	overlay *recordingOverlay
}

func (u *uiProbe) Render() { u.overlay.events = append(u.overlay.events, "widgets") }

type fakeShader struct {
	uses  int
	model mgl32.Mat4
}

func (s *fakeShader) Use() { s.uses++ }

func (s *fakeShader) SetMat4(name string, m mgl32.Mat4) {
	if name == ebitenhost.ModelUniform {
		s.model = m
	}
}

func window() config.WindowConfig {
	return config.WindowConfig{Width: 320, Height: 240, Title: "test"}
}

func TestGeoMMatchesTransform(t *testing.T) {
	tr := ecs.NewTransform()
	tr.SetPosition(mgl32.Vec3{10, -4, 7})
	tr.SetScale(mgl32.Vec3{2, 0.5, 3})

	g := ebitenhost.GeoMFromMat4(tr.GetModelMat())

	for _, p := range []mgl32.Vec3{{0, 0, 0}, {1, 1, 0}, {-3, 8, 0}} {
		x, y := g.Apply(float64(p.X()), float64(p.Y()))
		expected := tr.Apply(p)
		assert.InDelta(t, expected.X(), x, 1e-5)
		assert.InDelta(t, expected.Y(), y, 1e-5)
	}
}

func TestGameDrivesEntity(t *testing.T) {
	e := ecs.NewEntity()
	c := ecs.AddComponent[counter](e)

	cfg := config.SchedulerConfig{FrameInterval: 20 * time.Millisecond, PhysicsStep: 20 * time.Millisecond, MaxPhysicsSteps: 5}
	scheduler := ecs.NewScheduler(e, cfg)
	game := ebitenhost.NewGame(scheduler, ebitenhost.NewSurface(), window(), ebitenhost.WithTickRate(50))

	for i := 0; i < 3; i++ {
		require.NoError(t, game.Update())
	}
	assert.Equal(t, 1, c.starts)
	assert.Equal(t, 3, c.updates)
	assert.Equal(t, 3, c.physics)
	assert.Equal(t, 0, c.renders, "update never renders")

	game.Draw(nil)
	assert.Equal(t, 1, c.renders)

	w, h := game.Layout(1000, 1000)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGameUpdateWithTPSSyncedToFPS(t *testing.T) {
	ebiten.SetTPS(ebiten.SyncWithFPS)
	defer ebiten.SetTPS(ebiten.DefaultTPS)

	e := ecs.NewEntity()
	c := ecs.AddComponent[counter](e)
	scheduler := ecs.NewScheduler(e, config.DefaultScheduler())
	game := ebitenhost.NewGame(scheduler, ebitenhost.NewSurface(), window())

	for i := 0; i < 6; i++ {
		require.NoError(t, game.Update())
	}

	assert.Equal(t, 6, c.updates)
	assert.Positive(t, c.physics, "physics keeps stepping without a fixed TPS")
	assert.Zero(t, scheduler.GetStats().DroppedPhysicsTime)
}

func TestOverlayBracketsRender(t *testing.T) {
	overlay := &recordingOverlay{}
	e := ecs.NewEntity()
	ecs.AddComponent[uiProbe](e).overlay = overlay

	scheduler := ecs.NewScheduler(e, config.DefaultScheduler())
	game := ebitenhost.NewGame(scheduler, ebitenhost.NewSurface(), window(),
		ebitenhost.WithOverlay(overlay), ebitenhost.WithTickRate(60))

	game.Draw(nil)
	game.Layout(1, 1)

	assert.Equal(t, []string{"begin", "widgets", "end", "draw"}, overlay.events)
	assert.Equal(t, 320, overlay.w)
	assert.Equal(t, 240, overlay.h)
}

func TestSpriteUploadsModelWithoutScreen(t *testing.T) {
	e := ecs.NewEntity()
	e.SetPosition(mgl32.Vec3{5, 6, 0})
	shader := &fakeShader{}
	e.SetShader(shader)

	surface := ebitenhost.NewSurface()
	sprite := ecs.AddComponent[ebitenhost.Sprite](e).Init(surface, nil)

	e.Render()

	assert.Equal(t, 1, shader.uses)
	assert.Equal(t, e.GetModelMat(), shader.model)
	assert.Equal(t, 0, sprite.Draws(), "nothing is drawn without an image and a frame")
	assert.Nil(t, surface.Screen())
}
