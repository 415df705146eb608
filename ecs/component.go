package ecs

// Component is a behavior unit attached to exactly one Entity. Components are
// only created through AddComponent, which binds the owning entity before the
// component is stored. Embed BaseComponent to satisfy the interface.
type Component interface {
	Start()
	Update(deltaTime float32)
	PhysicsUpdate(deltaTime float32)
	Render()
	OnDestroy()

	bind(owner *Entity)
}

// ComponentPtr constrains the type parameters of the component access functions
// to pointers of component structs, so AddComponent[Foo] resolves to *Foo.
type ComponentPtr[C any] interface {
	*C
	Component
}

// BaseComponent carries the back-reference to the owning entity and provides
// no-op lifecycle hooks. Component types embed it and override the hooks they need.
type BaseComponent struct {
	entity *Entity
}

func (b *BaseComponent) bind(owner *Entity) {
	b.entity = owner
}

// Entity returns the entity that owns this component. It is fixed at construction.
func (b *BaseComponent) Entity() *Entity {
	return b.entity
}

func (b *BaseComponent) Start()                          {}
func (b *BaseComponent) Update(deltaTime float32)        {}
func (b *BaseComponent) PhysicsUpdate(deltaTime float32) {}
func (b *BaseComponent) Render()                         {}
func (b *BaseComponent) OnDestroy()                      {}
