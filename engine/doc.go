/*
Package engine provides the untyped, column-oriented storage engine that dock's typed layer sits on.

The engine knows nothing about Go component types beyond what a ComponentDesc tells it: a byte size,
an alignment and, optionally, a column element type. Components are entities themselves, so a
component id can be used wherever an entity id is expected (this is how singletons work: a singleton
of component C lives on entity C).

Core Concepts:

  - Entity: a 64 bit id minted by NewID. Ids are never reused.
  - Component: an entity registered with NewComponent, carrying size and alignment.
  - Archetype: the set of entities sharing one component signature, stored column by column.
  - Filter: a term list matched against archetypes, yielding rows of raw column pointers.
  - System: a named filter plus callback run by Progress.

Structural changes (adding or removing components, deleting entities, renaming) requested while an
iteration is in flight are queued and replayed when the outermost iteration ends. AsyncStage returns a
view that always queues until Merge.

Basic Usage:

	eng := engine.New(engine.DefaultConfig())
	pos, _ := eng.NewComponent(engine.ComponentDesc{Name: "Position", Size: 16, Align: 8})
	e := eng.NewID()
	eng.Add(e, pos)

	f, _ := eng.BuildFilter([]engine.Term{{ID: pos}})
	for row := range f.Rows() {
		p := (*[2]float64)(row.Columns[0])
		p[0]++
	}
*/
package engine
