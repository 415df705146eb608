package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenecore/ecs"
)

// Spinner accumulates an angle every update.
type Spinner struct {
	ecs.BaseComponent
	Angle float32
	Speed float32
}

func (s *Spinner) Start() {
	s.Speed = 1.5
}

func (s *Spinner) Update(deltaTime float32) {
	s.Angle = float32(math.Mod(float64(s.Angle+s.Speed*deltaTime), 2*math.Pi))
}

// Integrator moves the owning entity with a constant velocity during physics steps.
type Integrator struct {
	ecs.BaseComponent
	Velocity mgl32.Vec3
	Steps    int
}

func (i *Integrator) PhysicsUpdate(deltaTime float32) {
	t := i.Entity().Transform()
	t.SetPosition(t.Position.Add(i.Velocity.Mul(deltaTime)))
	i.Steps++
}

// ModelCache recomputes the model matrix on every render.
type ModelCache struct {
	ecs.BaseComponent
	Model mgl32.Mat4
	Draws int
}

func (m *ModelCache) Render() {
	m.Model = m.Entity().GetModelMat()
	m.Draws++
}

// attach adds count components to e, cycling through the instrumented types.
func attach(e *ecs.Entity, count int) {
	for i := 0; i < count; i++ {
		switch i % 3 {
		case 0:
			ecs.AddComponent[Spinner](e)
		case 1:
			in := ecs.AddComponent[Integrator](e)
			in.Velocity = mgl32.Vec3{0.1, 0, 0}
		case 2:
			ecs.AddComponent[ModelCache](e)
		}
	}
}

// lookupRound resolves every instrumented type once and reports how many were found.
func lookupRound(e *ecs.Entity) int {
	found := 0
	if _, ok := ecs.GetComponent[Spinner](e); ok {
		found++
	}
	if _, ok := ecs.GetComponent[Integrator](e); ok {
		found++
	}
	if _, ok := ecs.GetComponent[ModelCache](e); ok {
		found++
	}
	return found
}
