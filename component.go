package dock

import "github.com/TheBitDrifter/dock/engine"

// Component is a typed handle for T on one world. Create it with
// FactoryNewComponent.
type Component[T any] struct {
	world *World
	id    engine.ID
}

func (c Component[T]) ID() engine.ID {
	return c.id
}

// Entity returns the component's own entity, which also holds its singleton.
func (c Component[T]) Entity() Entity {
	return Entity{world: c.world, id: c.id}
}

func (c Component[T]) Info() engine.ComponentInfo {
	return c.world.componentInfo(c.id)
}

func (c Component[T]) Get(e Entity) (*T, bool) {
	return Get[T](c.world, e)
}

func (c Component[T]) GetMut(e Entity) (*T, bool) {
	return GetMut[T](c.world, e)
}

func (c Component[T]) Set(e Entity, v T) {
	Set(c.world, e, v)
}

func (c Component[T]) Add(e Entity) {
	c.world.engine.Add(e.id, c.id)
}

func (c Component[T]) Has(e Entity) bool {
	return c.world.engine.Has(e.id, c.id)
}

func (c Component[T]) Remove(e Entity) {
	c.world.engine.Remove(e.id, c.id)
}
