package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetName(t *testing.T) {
	w := newTestWorld(t)
	a, b := w.NewID(), w.NewID()

	require.NoError(t, w.SetName(a, "player"))
	assert.Equal(t, "player", w.Name(a))

	var conflict NameConflictError
	require.ErrorAs(t, w.SetName(b, "player"), &conflict)
	assert.Equal(t, a, conflict.Existing)

	require.NoError(t, w.SetName(a, "hero"))
	require.NoError(t, w.SetName(b, "player"))
	assert.Equal(t, b, w.LookupPath(NullID, "player", "::", false))

	require.NoError(t, w.SetName(b, ""))
	assert.Empty(t, w.Name(b))
	assert.Equal(t, NullID, w.LookupPath(NullID, "player", "::", false))

	var invalid InvalidEntityError
	require.ErrorAs(t, w.SetName(ID(12345), "ghost"), &invalid)
}

func TestLookupPath(t *testing.T) {
	w := newTestWorld(t)
	level, room, door := w.NewID(), w.NewID(), w.NewID()
	require.NoError(t, w.SetName(level, "level"))
	require.NoError(t, w.SetName(room, "room"))
	require.NoError(t, w.SetName(door, "door"))
	require.NoError(t, w.SetParent(room, level))
	require.NoError(t, w.SetParent(door, room))
	unnamed := w.NewID()
	require.NoError(t, w.SetParent(unnamed, room))

	tests := []struct {
		name      string
		scope     ID
		path      string
		recursive bool
		want      ID
	}{
		{"root element", NullID, "level", false, level},
		{"nested", NullID, "level::room::door", false, door},
		{"anchored", room, "::level::room", true, room},
		{"relative", level, "room::door", false, door},
		{"not in scope", door, "level", false, NullID},
		{"recursive walks up", door, "level", true, level},
		{"missing", NullID, "level::hall", false, NullID},
		{"id element", NullID, "level::room::" + unnamed.String(), false, unnamed},
		{"id element wrong scope", NullID, unnamed.String(), false, NullID},
		{"empty", NullID, "", false, NullID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.LookupPath(tt.scope, tt.path, "::", tt.recursive))
		})
	}

	assert.Equal(t, "level::room::door", w.Path(door, "::"))
	assert.Equal(t, "level.room."+unnamed.String(), w.Path(unnamed, "."))
	assert.Equal(t, room, w.Parent(door))
}

func TestSetParentScopesNames(t *testing.T) {
	w := newTestWorld(t)
	a, b := w.NewID(), w.NewID()
	childA, childB := w.NewID(), w.NewID()
	require.NoError(t, w.SetName(childA, "child"))
	require.NoError(t, w.SetParent(childA, a))
	require.NoError(t, w.SetName(childB, "child"), "names are unique per scope")
	require.NoError(t, w.SetParent(childB, b))

	var conflict NameConflictError
	require.ErrorAs(t, w.SetParent(childB, a), &conflict)
	assert.Equal(t, b, w.Parent(childB))

	var invalid InvalidEntityError
	require.ErrorAs(t, w.SetParent(a, childA), &invalid, "cycles are rejected")

	require.NoError(t, w.SetParent(childA, NullID))
	assert.Equal(t, childA, w.LookupPath(NullID, "child", "::", false))
}

func TestDeleteCascades(t *testing.T) {
	w := newTestWorld(t)
	pos := register[position](t, w, "Position")
	parent, child, grandchild := w.NewID(), w.NewID(), w.NewID()
	for _, e := range []ID{parent, child, grandchild} {
		w.Add(e, pos)
	}
	require.NoError(t, w.SetName(parent, "parent"))
	require.NoError(t, w.SetName(child, "child"))
	require.NoError(t, w.SetParent(child, parent))
	require.NoError(t, w.SetParent(grandchild, child))
	bystander := w.NewID()
	(*position)(w.GetMut(bystander, pos)).Y = 7

	w.Delete(parent)

	assert.False(t, w.IsValid(parent))
	assert.False(t, w.IsValid(child))
	assert.False(t, w.IsValid(grandchild))
	assert.Equal(t, NullID, w.LookupPath(NullID, "parent::child", "::", false))
	assert.Equal(t, 7.0, get[position](w, bystander, pos).Y)

	require.NoError(t, w.SetName(w.NewID(), "parent"), "the name is free again")
}
