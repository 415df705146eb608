// Package physics attaches chipmunk2d simulation to entities. A World component
// owns a space and steps it on every PhysicsUpdate; Body components live in a
// world's space and copy their simulated position back into their entity's
// transform.
//
// Simulation is two dimensional: only the x and y of a transform are driven.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/plus3/scenecore/ecs"
)

// World owns a cp.Space. Attach it ahead of any Body that should see the step
// in the same tick, or drive its entity first.
type World struct {
	ecs.BaseComponent
	space *cp.Space
	steps int
}

// Init creates the space with the given gravity. The z component is ignored.
func (w *World) Init(gravity mgl32.Vec3) *World {
	w.space = cp.NewSpace()
	w.space.SetGravity(cp.Vector{X: float64(gravity.X()), Y: float64(gravity.Y())})
	return w
}

func (w *World) PhysicsUpdate(deltaTime float32) {
	if w.space == nil {
		return
	}
	w.space.Step(float64(deltaTime))
	w.steps++
}

// OnDestroy removes every shape and body still in the space and drops it.
// Bodies destroyed afterwards, such as those attached after the world on the
// same entity, find nothing left to remove.
func (w *World) OnDestroy() {
	if w.space == nil {
		return
	}

	var shapes []*cp.Shape
	var bodies []*cp.Body
	w.space.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})
	w.space.EachBody(func(body *cp.Body) {
		if body != w.space.StaticBody {
			bodies = append(bodies, body)
		}
	})
	for _, shape := range shapes {
		w.space.RemoveShape(shape)
	}
	for _, body := range bodies {
		w.space.RemoveBody(body)
	}

	w.space = nil
}

// Space returns the underlying space, or nil before Init and after OnDestroy.
func (w *World) Space() *cp.Space {
	return w.space
}

// Steps returns how many times the space has been stepped.
func (w *World) Steps() int {
	return w.steps
}
