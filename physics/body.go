package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"
	"github.com/plus3/scenecore/ecs"
)

var ErrNoSpace = errors.New("physics world has no space")

// Body is a dynamic box simulated in a World. Its entity's x/y position follows
// the body after every PhysicsUpdate.
type Body struct {
	ecs.BaseComponent
	world *World
	body  *cp.Body
	shape *cp.Shape
}

// Init creates a box body centered on the owning entity's current position and
// adds it to the world's space.
func (b *Body) Init(world *World, mass, width, height float64) error {
	if world == nil || world.Space() == nil {
		return ErrNoSpace
	}
	if mass <= 0 || width <= 0 || height <= 0 {
		return errors.Errorf("invalid body dimensions: mass=%g width=%g height=%g", mass, width, height)
	}

	pos := b.Entity().Transform().Position

	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: float64(pos.X()), Y: float64(pos.Y())})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)

	space := world.Space()
	space.AddBody(body)
	space.AddShape(shape)

	b.world = world
	b.body = body
	b.shape = shape
	return nil
}

// PhysicsUpdate copies the simulated position into the transform. The z
// coordinate is left as it is.
func (b *Body) PhysicsUpdate(deltaTime float32) {
	if b.body == nil {
		return
	}
	t := b.Entity().Transform()
	p := b.body.Position()
	t.SetPosition(mgl32.Vec3{float32(p.X), float32(p.Y), t.Position.Z()})
}

// OnDestroy removes the body and its shape from the world's space. If the
// world was destroyed first it has already released them.
func (b *Body) OnDestroy() {
	if b.body == nil {
		return
	}
	if space := b.world.Space(); space != nil {
		if space.ContainsShape(b.shape) {
			space.RemoveShape(b.shape)
		}
		if space.ContainsBody(b.body) {
			space.RemoveBody(b.body)
		}
	}
	b.body = nil
	b.shape = nil
}

func (b *Body) SetVelocity(v mgl32.Vec3) {
	if b.body != nil {
		b.body.SetVelocity(float64(v.X()), float64(v.Y()))
	}
}

// Position returns the simulated position. Z is always 0.
func (b *Body) Position() mgl32.Vec3 {
	if b.body == nil {
		return mgl32.Vec3{}
	}
	p := b.body.Position()
	return mgl32.Vec3{float32(p.X), float32(p.Y), 0}
}

// CPBody exposes the underlying chipmunk body, or nil if the component is not
// initialized or has been destroyed.
func (b *Body) CPBody() *cp.Body {
	return b.body
}
