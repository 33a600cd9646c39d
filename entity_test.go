package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/dock/engine"
)

func TestEntityNaming(t *testing.T) {
	w := newTestWorld(t)
	ship := w.Entity().Named("ship")
	engineRoom := w.Entity().Named("engine").ChildOf(ship)
	anon := w.Entity().ChildOf(ship)

	assert.Equal(t, "ship", ship.Name())
	assert.Equal(t, "ship::engine", engineRoom.Path())
	assert.Equal(t, "ship::engine", engineRoom.String())
	assert.Equal(t, "ship::"+anon.ID().String(), anon.Path())
	assert.Equal(t, anon.ID().String(), anon.String())

	parent, ok := engineRoom.Parent()
	require.True(t, ok)
	assert.Equal(t, ship, parent)
	_, ok = ship.Parent()
	assert.False(t, ok)

	found, ok := w.Lookup("ship::" + anon.ID().String())
	require.True(t, ok)
	assert.Equal(t, anon, found)
}

func TestEntityNameConflictPanics(t *testing.T) {
	w := newTestWorld(t)
	first := w.Entity().Named("dup")

	assert.PanicsWithValue(t,
		engine.NameConflictError{Name: "dup", Scope: engine.NullID, Existing: first.ID()},
		func() { w.Entity().Named("dup") })

	other := w.Entity().Named("other")
	assert.NotPanics(t, func() { w.Entity().ChildOf(other).Named("dup") })
}

func TestEntityChildOfCyclePanics(t *testing.T) {
	w := newTestWorld(t)
	root := w.Entity()
	child := w.Entity().ChildOf(root)

	assert.Panics(t, func() { root.ChildOf(child) })
}

func TestEntityDeleteCascades(t *testing.T) {
	w := newTestWorld(t)
	root := w.Entity().Named("root")
	child := w.Entity().Named("child").ChildOf(root)

	root.Delete()
	assert.False(t, root.IsValid())
	assert.False(t, child.IsValid())
	_, ok := w.Lookup("root::child")
	assert.False(t, ok)
}

func TestEntityIDs(t *testing.T) {
	w := newTestWorld(t)
	tag := w.ComponentDynamic("tag", Layout{Align: 1})
	e := w.Entity().AddID(tag)

	assert.True(t, e.Has(tag))
	e.RemoveID(tag)
	assert.False(t, e.Has(tag))
	assert.Same(t, w, e.World())
	assert.False(t, Entity{}.IsValid())
}

func TestWithChains(t *testing.T) {
	w := newTestWorld(t)
	e := With(With(w.Entity(), Position{X: 1}), Velocity{Z: 2})

	pos, ok := Get[Position](w, e)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1}, *pos)
	vel, ok := Get[Velocity](w, e)
	require.True(t, ok)
	assert.Equal(t, Velocity{Z: 2}, *vel)
}

func TestPrefab(t *testing.T) {
	w := newTestWorld(t)
	orc := With(w.Prefab("orc"), Health{Max: 30})
	grunt := With(w.Entity(), Health{Max: 10})

	assert.True(t, orc.IsPrefab())
	assert.False(t, grunt.IsPrefab())
	found, ok := w.Lookup("orc")
	require.True(t, ok)
	assert.Equal(t, orc, found)

	var seen []Entity
	for e := range NewFilter1[Health](w).Entities() {
		seen = append(seen, e)
	}
	assert.Equal(t, []Entity{grunt}, seen)

	prefabs, err := w.FilterBuilder().
		Term(ComponentID[Health](w)).
		Term(engine.Prefab).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 1, prefabs.Count())
}

func TestPrefabTermsVisitOnlyPrefabs(t *testing.T) {
	w := newTestWorld(t)
	orc := With(w.Prefab("orc"), Health{Max: 30})
	troll := w.Prefab("troll")
	With(w.Entity(), Health{Max: 10})
	w.Entity()

	q, err := w.QueryBuilder().Term(engine.Prefab).Build()
	require.NoError(t, err)
	var seen []Entity
	for e := range q.Entities() {
		seen = append(seen, e)
	}
	assert.ElementsMatch(t, []Entity{orc, troll}, seen)

	hp := ComponentID[Health](w)
	withHealth, err := w.QueryBuilder().Term(hp).Term(engine.Prefab).Build()
	require.NoError(t, err)
	withHealth.Iter(func(e Entity, row engine.Row) bool {
		assert.Equal(t, orc, e)
		assert.Equal(t, 30, (*Health)(row.Columns[0]).Max)
		assert.NotNil(t, row.Columns[1])
		return true
	})
	assert.Equal(t, 1, withHealth.Count())

	var visited []Entity
	_, err = w.System("templates").Term(engine.Prefab).Iter(func(e Entity, _ engine.Row) {
		visited = append(visited, e)
	})
	require.NoError(t, err)
	w.Progress(0.1)
	assert.ElementsMatch(t, []Entity{orc, troll}, visited)
}
