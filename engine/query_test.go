package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawn(w *World, comps ...ID) ID {
	e := w.NewID()
	for _, c := range comps {
		w.Add(e, c)
	}
	return e
}

func TestFilterMatching(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	vel := register[velocity](t, w, "Velocity")
	lbl := register[label](t, w, "Label")

	both := []ID{spawn(w, pos, vel), spawn(w, vel, pos), spawn(w, pos, vel, lbl)}
	spawn(w, pos)
	spawn(w, vel)
	spawn(w, lbl)

	f, err := w.BuildFilter([]Term{{ID: vel}, {ID: pos, Access: AccessIn}})
	require.NoError(t, err)
	assert.Equal(t, 3, f.Count())
	assert.Equal(t, []Term{{ID: vel, Access: AccessInOut}, {ID: pos, Access: AccessIn}}, f.Terms())

	var visited []ID
	for row := range f.Rows() {
		require.Len(t, row.Columns, 2)
		assert.Equal(t, w.Get(row.Entity, vel), row.Columns[0])
		assert.Equal(t, w.Get(row.Entity, pos), row.Columns[1])
		visited = append(visited, row.Entity)
	}
	assert.ElementsMatch(t, both, visited)
}

func TestFilterBuildErrors(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	entity := w.NewID()

	tests := []struct {
		name  string
		terms []Term
		check func(t *testing.T, err error)
	}{
		{"empty", nil, func(t *testing.T, err error) {
			var unknown UnknownComponentError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, NullID, unknown.ID)
		}},
		{"not a component", []Term{{ID: entity}}, func(t *testing.T, err error) {
			var unknown UnknownComponentError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, entity, unknown.ID)
		}},
		{"duplicate", []Term{{ID: pos}, {ID: pos, Access: AccessIn}}, func(t *testing.T, err error) {
			var dup DuplicateTermError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, pos, dup.ID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := w.BuildFilter(tt.terms)
			assert.Nil(t, f)
			tt.check(t, err)
			q, err := w.BuildQuery(tt.terms)
			assert.Nil(t, q)
			tt.check(t, err)
		})
	}
}

func TestPrefabsAreSkipped(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	spawn(w, pos)
	template := spawn(w, pos, Prefab)

	f, err := w.BuildFilter([]Term{{ID: pos}})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count())

	withPrefab, err := w.BuildFilter([]Term{{ID: pos}, {ID: Prefab}})
	require.NoError(t, err)
	var visited []ID
	for row := range withPrefab.Rows() {
		assert.NotNil(t, row.Columns[1])
		visited = append(visited, row.Entity)
	}
	assert.Equal(t, []ID{template}, visited)
}

func TestQueryRefreshesOnNewArchetypes(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	vel := register[velocity](t, w, "Velocity")
	spawn(w, pos)

	q, err := w.BuildQuery([]Term{{ID: pos}})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Count())

	spawn(w, pos)
	assert.Equal(t, 2, q.Count(), "existing archetype grows")

	spawn(w, pos, vel)
	assert.Equal(t, 3, q.Count(), "new archetype is picked up")
}

func TestStructuralChangesDeferredDuringIteration(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	vel := register[velocity](t, w, "Velocity")

	entities := []ID{spawn(w, pos), spawn(w, pos), spawn(w, pos)}
	doomed := entities[2]

	f, err := w.BuildFilter([]Term{{ID: pos}})
	require.NoError(t, err)

	visits := 0
	for row := range f.Rows() {
		visits++
		if row.Entity == doomed {
			w.Delete(row.Entity)
			w.Add(row.Entity, vel)
			assert.True(t, w.IsValid(row.Entity), "delete waits for the iteration to end")
			continue
		}
		v := (*velocity)(w.GetMut(row.Entity, vel))
		require.NotNil(t, v)
		v.X = 3
		again := (*velocity)(w.GetMut(row.Entity, vel))
		assert.Same(t, v, again)
		assert.False(t, w.Has(row.Entity, vel))
	}
	assert.Equal(t, 3, visits)

	assert.False(t, w.IsValid(doomed))
	for _, e := range entities[:2] {
		require.True(t, w.Has(e, vel))
		assert.Equal(t, 3.0, get[velocity](w, e, vel).X)
	}
}

func TestNestedIterationReplaysOnce(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	vel := register[velocity](t, w, "Velocity")
	spawn(w, pos)
	spawn(w, pos)

	f, err := w.BuildFilter([]Term{{ID: pos}})
	require.NoError(t, err)

	for outer := range f.Rows() {
		for inner := range f.Rows() {
			w.Add(inner.Entity, vel)
		}
		assert.False(t, w.Has(outer.Entity, vel), "inner iteration must not replay")
	}

	velFilter, err := w.BuildFilter([]Term{{ID: vel}})
	require.NoError(t, err)
	assert.Equal(t, 2, velFilter.Count())
}

func TestEarlyBreakUnlocks(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	vel := register[velocity](t, w, "Velocity")
	e := spawn(w, pos)
	spawn(w, pos)

	f, err := w.BuildFilter([]Term{{ID: pos}})
	require.NoError(t, err)
	for row := range f.Rows() {
		w.Add(row.Entity, vel)
		break
	}
	assert.False(t, w.deferring())

	w.Add(e, vel)
	assert.True(t, w.Has(e, vel))
}
