package dock

import "github.com/TheBitDrifter/dock/engine"

// Entity pairs an entity id with the world it lives in. Builder methods return
// the handle so construction can be chained; they panic on engine errors.
type Entity struct {
	world *World
	id    engine.ID
}

func (e Entity) ID() engine.ID {
	return e.id
}

func (e Entity) World() *World {
	return e.world
}

func (e Entity) IsValid() bool {
	return e.world != nil && e.world.engine.IsValid(e.id)
}

func (e Entity) Named(name string) Entity {
	if err := e.world.engine.SetName(e.id, name); err != nil {
		panic(err)
	}
	return e
}

func (e Entity) Name() string {
	return e.world.engine.Name(e.id)
}

func (e Entity) Path() string {
	return e.world.engine.Path(e.id, PathSeparator)
}

// AddID attaches the component (or tag) id.
func (e Entity) AddID(id engine.ID) Entity {
	e.world.engine.Add(e.id, id)
	return e
}

func (e Entity) RemoveID(id engine.ID) Entity {
	e.world.engine.Remove(e.id, id)
	return e
}

func (e Entity) Has(id engine.ID) bool {
	return e.world.engine.Has(e.id, id)
}

// ChildOf moves e, and its name, under parent.
func (e Entity) ChildOf(parent Entity) Entity {
	if err := e.world.engine.SetParent(e.id, parent.id); err != nil {
		panic(err)
	}
	return e
}

func (e Entity) Parent() (Entity, bool) {
	parent := e.world.engine.Parent(e.id)
	if parent == engine.NullID {
		return Entity{}, false
	}
	return Entity{world: e.world, id: parent}, true
}

func (e Entity) IsPrefab() bool {
	return e.Has(engine.Prefab)
}

// Delete removes e and its children from the engine.
func (e Entity) Delete() {
	e.world.engine.Delete(e.id)
}

func (e Entity) String() string {
	if e.world == nil {
		return e.id.String()
	}
	if e.world.engine.Name(e.id) == "" {
		return e.id.String()
	}
	return e.Path()
}

// With sets v on e and returns e, for chaining typed sets during construction.
func With[T any](e Entity, v T) Entity {
	Set(e.world, e, v)
	return e
}
