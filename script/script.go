// Package script drives an entity from a tengo script. The script is compiled
// once and re-run for every lifecycle hook with these globals set:
//
//	phase     "start", "update", "physics_update", "render" or "destroy"
//	dt        seconds since the previous call of the same kind (0 for start, render, destroy)
//	position  [x, y, z] of the entity; written back after the run
//	scale     [x, y, z] of the entity; written back after the run
//	state     a map kept between runs
//
// The math and fmt stdlib modules are importable.
package script

import (
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/plus3/scenecore/ecs"
	"go.uber.org/zap"
)

const (
	PhaseStart         = "start"
	PhaseUpdate        = "update"
	PhasePhysicsUpdate = "physics_update"
	PhaseRender        = "render"
	PhaseDestroy       = "destroy"
)

// Component runs a compiled tengo script on every lifecycle hook. Runtime
// errors are logged through the owning entity's logger, once per distinct
// message.
type Component struct {
	ecs.BaseComponent
	compiled *tengo.Compiled
	state    *tengo.Map
	reported map[string]struct{}
	runs     int
}

// Init compiles source. Hooks do nothing until Init succeeds.
func (c *Component) Init(source []byte) error {
	s := tengo.NewScript(source)
	s.SetImports(stdlib.GetModuleMap("math", "fmt"))

	state := &tengo.Map{Value: map[string]tengo.Object{}}
	globals := map[string]any{
		"phase":    "",
		"dt":       0.0,
		"position": vecToArray(mgl32.Vec3{}),
		"scale":    vecToArray(mgl32.Vec3{}),
		"state":    state,
	}
	for name, value := range globals {
		if err := s.Add(name, value); err != nil {
			return errors.Wrapf(err, "declare script global %s", name)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return errors.Wrap(err, "compile script")
	}

	c.compiled = compiled
	c.state = state
	c.reported = make(map[string]struct{})
	return nil
}

func (c *Component) Start()                          { c.run(PhaseStart, 0) }
func (c *Component) Update(deltaTime float32)        { c.run(PhaseUpdate, deltaTime) }
func (c *Component) PhysicsUpdate(deltaTime float32) { c.run(PhasePhysicsUpdate, deltaTime) }
func (c *Component) Render()                         { c.run(PhaseRender, 0) }
func (c *Component) OnDestroy()                      { c.run(PhaseDestroy, 0) }

// Runs returns how many times the script completed without error.
func (c *Component) Runs() int {
	return c.runs
}

// State returns the value stored under key in the script's state map.
func (c *Component) State(key string) (any, bool) {
	if c.state == nil {
		return nil, false
	}
	obj, ok := c.state.Value[key]
	if !ok {
		return nil, false
	}
	return tengo.ToInterface(obj), true
}

func (c *Component) run(phase string, deltaTime float32) {
	if c.compiled == nil {
		return
	}
	if err := c.exec(phase, deltaTime); err != nil {
		c.report(phase, err)
		return
	}
	c.runs++
}

func (c *Component) exec(phase string, deltaTime float32) error {
	t := c.Entity().Transform()

	if err := c.compiled.Set("phase", phase); err != nil {
		return err
	}
	if err := c.compiled.Set("dt", float64(deltaTime)); err != nil {
		return err
	}
	if err := c.compiled.Set("position", vecToArray(t.Position)); err != nil {
		return err
	}
	if err := c.compiled.Set("scale", vecToArray(t.Scale)); err != nil {
		return err
	}
	if err := c.compiled.Set("state", c.state); err != nil {
		return err
	}

	if err := c.compiled.Run(); err != nil {
		return err
	}

	position, err := arrayToVec(c.compiled.Get("position"))
	if err != nil {
		return errors.Wrap(err, "position")
	}
	scale, err := arrayToVec(c.compiled.Get("scale"))
	if err != nil {
		return errors.Wrap(err, "scale")
	}
	t.SetPosition(position)
	t.SetScale(scale)
	return nil
}

func (c *Component) report(phase string, err error) {
	msg := err.Error()
	if _, seen := c.reported[msg]; seen {
		return
	}
	c.reported[msg] = struct{}{}

	c.Entity().Logger().Error("script failed",
		zap.String("entity", c.Entity().Name),
		zap.String("phase", phase),
		zap.Error(err),
	)
}

func vecToArray(v mgl32.Vec3) []any {
	return []any{float64(v.X()), float64(v.Y()), float64(v.Z())}
}

func arrayToVec(v *tengo.Variable) (mgl32.Vec3, error) {
	values := v.Array()
	if len(values) != 3 {
		return mgl32.Vec3{}, errors.Errorf("expected an array of 3 numbers, got %s", v.ValueType())
	}

	var out mgl32.Vec3
	for i, value := range values {
		switch n := value.(type) {
		case float64:
			out[i] = float32(n)
		case int64:
			out[i] = float32(n)
		default:
			return mgl32.Vec3{}, errors.Errorf("element %d is %T, not a number", i, value)
		}
	}
	return out, nil
}
