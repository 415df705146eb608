package ecs_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/scenecore/ecs"
)

// Probe records every lifecycle call it receives into a shared log.
type Probe struct {
	ecs.BaseComponent
	Label string
	Calls *[]string

	LastDelta float32

	// SiblingsAtDestroy is the owner's component count when OnDestroy ran.
	SiblingsAtDestroy int
}

func (p *Probe) Init(label string, calls *[]string) *Probe {
	p.Label = label
	p.Calls = calls
	return p
}

func (p *Probe) record(event string) {
	if p.Calls != nil {
		*p.Calls = append(*p.Calls, p.Label+":"+event)
	}
}

func (p *Probe) Start() { p.record("start") }

func (p *Probe) Update(deltaTime float32) {
	p.LastDelta = deltaTime
	p.record(fmt.Sprintf("update(%g)", deltaTime))
}

func (p *Probe) PhysicsUpdate(deltaTime float32) {
	p.LastDelta = deltaTime
	p.record(fmt.Sprintf("physics(%g)", deltaTime))
}

func (p *Probe) Render() { p.record("render") }

func (p *Probe) OnDestroy() {
	p.SiblingsAtDestroy = p.Entity().ComponentCount()
	p.record("destroy")
}

// Marker has no behavior; it only relies on the BaseComponent hooks.
type Marker struct {
	ecs.BaseComponent
	Value int
}

// DerivedProbe embeds Probe. Lookups for Probe must not find it.
type DerivedProbe struct {
	Probe
	Extra string
}

// fakeShader counts uniform uploads.
type fakeShader struct {
	name     string
	uses     int
	uniforms map[string]mgl32.Mat4
}

func newFakeShader(name string) *fakeShader {
	return &fakeShader{name: name, uniforms: make(map[string]mgl32.Mat4)}
}

func (s *fakeShader) Use() { s.uses++ }

func (s *fakeShader) SetMat4(name string, m mgl32.Mat4) { s.uniforms[name] = m }
