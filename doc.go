/*
Package dock provides a typed access layer over a column-oriented entity component engine.

The engine (package engine) stores components as raw, size and alignment described columns. Dock
maps Go types onto it: a type is registered once per world, after which it is read, written and
iterated through generic functions instead of byte slices.

Core Concepts:

  - World: owns or borrows one engine.Engine. Owned worlds finalize their engine on Close.
  - Registry: per engine mapping from reflect.Type (or a dynamic symbol) to a component id.
  - Entity: a (world, id) handle with chainable builder methods.
  - GroupN: a tuple of 1 to 8 component types that reinterprets a matched row positionally.
  - FilterN, QueryN, SystemBuilderN: typed iteration built from a group.

Basic Usage:

	w := dock.Factory.NewWorld()
	defer w.Close()

	for range 3 {
		e := w.Entity()
		dock.Set(w, e, Position{})
		dock.Set(w, e, Velocity{X: 1, Y: 1, Z: 1})
	}

	dock.EachMut2(w, func(e dock.Entity, v *Velocity, p *Position) {
		p.X += v.X
		p.Y += v.Y
		p.Z += v.Z
	})

Structural changes made inside an iteration (adding or removing components, deleting entities) are
deferred by the engine until the iteration ends. Pointers obtained from Get or a row are invalidated
by any structural change to their entity.
*/
package dock
