package dock

import (
	"reflect"

	"github.com/TheBitDrifter/dock/engine"
)

// RegisterComponent returns the id of T on w, registering it on first use.
func RegisterComponent[T any](w *World) engine.ID {
	return w.registry.Register(reflect.TypeFor[T](), "")
}

// RegisterComponentNamed registers T under a hierarchical name. The name only
// applies the first time T is registered on w.
func RegisterComponentNamed[T any](w *World, name string) engine.ID {
	return w.registry.Register(reflect.TypeFor[T](), name)
}

// ID looks T up without registering it.
func ID[T any](w *World) (engine.ID, bool) {
	return w.registry.Lookup(reflect.TypeFor[T]())
}

// ComponentID is ID for callers that require T to be registered already.
func ComponentID[T any](w *World) engine.ID {
	typ := reflect.TypeFor[T]()
	id, ok := w.registry.Lookup(typ)
	if !ok {
		panic(ComponentNotRegisteredError{Type: typ})
	}
	return id
}

// Add attaches a zero T to e, registering T if needed.
func Add[T any](w *World, e Entity) {
	w.engine.Add(e.id, RegisterComponent[T](w))
}

// Set stores v as e's T, attaching and registering T if needed. It panics when
// e is not alive.
func Set[T any](w *World, e Entity, v T) {
	p := w.engine.GetMut(e.id, RegisterComponent[T](w))
	if p == nil {
		panic(engine.InvalidEntityError{ID: e.id})
	}
	*(*T)(p) = v
}

// Get returns e's T. The pointer refers to engine storage and is invalidated by
// any structural change to e.
func Get[T any](w *World, e Entity) (*T, bool) {
	p := w.engine.Get(e.id, ComponentID[T](w))
	if p == nil {
		return nil, false
	}
	return (*T)(p), true
}

// GetMut is Get but attaches a zero T when e lacks one.
func GetMut[T any](w *World, e Entity) (*T, bool) {
	p := w.engine.GetMut(e.id, ComponentID[T](w))
	if p == nil {
		return nil, false
	}
	return (*T)(p), true
}

func Has[T any](w *World, e Entity) bool {
	return w.engine.Has(e.id, ComponentID[T](w))
}

func Remove[T any](w *World, e Entity) {
	w.engine.Remove(e.id, ComponentID[T](w))
}

// SetSingleton stores v as the single T of w. Singletons live on the entity
// that is T's own component id.
func SetSingleton[T any](w *World, v T) {
	id := RegisterComponent[T](w)
	Set(w, Entity{world: w, id: id}, v)
}

// GetSingleton panics when T was never registered.
func GetSingleton[T any](w *World) (*T, bool) {
	id := ComponentID[T](w)
	return Get[T](w, Entity{world: w, id: id})
}

// GetSingletonMut registers T and attaches a zero singleton if needed.
func GetSingletonMut[T any](w *World) (*T, bool) {
	id := RegisterComponent[T](w)
	return GetMut[T](w, Entity{world: w, id: id})
}
