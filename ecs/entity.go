package ecs

import (
	"iter"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Entity owns a transform, an optional shader reference and an ordered set of
// components, and fans lifecycle calls out to those components in the order
// they were attached.
//
// Entities are not safe for concurrent use.
type Entity struct {
	Name string

	transform  Transform
	shader     Shader
	components []Component
	types      []reflect.Type

	// firstOfType maps a component type id to the index of the first
	// component of exactly that type.
	firstOfType *intmap.Map[int, int]

	started   bool
	destroyed bool
	log       *zap.Logger
}

// EntityOption configures an Entity at construction.
type EntityOption func(*Entity)

// WithLogger sets the logger used to report failed component lookups. A nil
// logger discards them.
func WithLogger(log *zap.Logger) EntityOption {
	return func(e *Entity) {
		if log == nil {
			log = zap.NewNop()
		}
		e.log = log
	}
}

// WithName labels the entity in log output and debug views.
func WithName(name string) EntityOption {
	return func(e *Entity) {
		e.Name = name
	}
}

// NewEntity creates an entity with no components, a default transform and no shader.
func NewEntity(opts ...EntityOption) *Entity {
	e := &Entity{
		transform:   NewTransform(),
		firstOfType: intmap.New[int, int](8),
		log:         zap.L(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start calls Start on every component. It is meant to be called once, after
// the initial components are attached.
func (e *Entity) Start() {
	e.started = true
	for _, c := range e.components {
		c.Start()
	}
}

// Update calls Update on every component. deltaTime is passed through unchecked.
func (e *Entity) Update(deltaTime float32) {
	for _, c := range e.components {
		c.Update(deltaTime)
	}
}

// PhysicsUpdate calls PhysicsUpdate on every component. It is driven at the
// fixed physics rate, separately from Update.
func (e *Entity) PhysicsUpdate(deltaTime float32) {
	for _, c := range e.components {
		c.PhysicsUpdate(deltaTime)
	}
}

// Render calls Render on every component. The entity issues no draw calls itself.
func (e *Entity) Render() {
	for _, c := range e.components {
		c.Render()
	}
}

// OnDestroy calls OnDestroy on every component exactly once and then releases
// them. Calling it again is a no-op.
func (e *Entity) OnDestroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true

	for _, c := range e.components {
		c.OnDestroy()
	}

	e.components = nil
	e.types = nil
	e.firstOfType.Clear()
}

// Destroyed reports whether OnDestroy has run.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// Started reports whether Start has run.
func (e *Entity) Started() bool {
	return e.started
}

// Transform returns the entity's transform. The pointer is valid for the
// lifetime of the entity.
func (e *Entity) Transform() *Transform {
	return &e.transform
}

func (e *Entity) SetPosition(position mgl32.Vec3) {
	e.transform.SetPosition(position)
}

func (e *Entity) SetScale(scale mgl32.Vec3) {
	e.transform.SetScale(scale)
}

func (e *Entity) GetTranslationMat() mgl32.Mat4 { return e.transform.GetTranslationMat() }
func (e *Entity) GetRotationMat() mgl32.Mat4    { return e.transform.GetRotationMat() }
func (e *Entity) GetScaleMat() mgl32.Mat4       { return e.transform.GetScaleMat() }
func (e *Entity) GetModelMat() mgl32.Mat4       { return e.transform.GetModelMat() }

// SetShader replaces the shader reference. The entity does not take ownership.
func (e *Entity) SetShader(shader Shader) {
	e.shader = shader
}

// Shader returns the current shader reference, which may be nil.
func (e *Entity) Shader() Shader {
	return e.shader
}

// Logger returns the logger the entity reports through.
func (e *Entity) Logger() *zap.Logger {
	return e.log
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// Components iterates over the attached components in attachment order.
func (e *Entity) Components() iter.Seq2[int, Component] {
	return func(yield func(int, Component) bool) {
		for i, c := range e.components {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ComponentTypes returns the concrete type of each attached component, in
// attachment order.
func (e *Entity) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, len(e.types))
	for i, t := range e.types {
		types[i] = t.Elem()
	}
	return types
}

func (e *Entity) insert(c Component, typ reflect.Type) {
	index := len(e.components)
	e.components = append(e.components, c)
	e.types = append(e.types, typ)

	id := typeId(typ)
	if _, ok := e.firstOfType.Get(id); !ok {
		e.firstOfType.Put(id, index)
	}
}
