package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/dock/engine"
)

func TestTypedSystemIntegrates(t *testing.T) {
	w := newTestWorld(t)
	e := w.Entity()
	Set(w, e, Position{})
	Set(w, e, Velocity{X: 2, Y: 4})

	move, err := NewSystem2[Velocity, Position](w, "move").
		Access(0, engine.AccessIn).
		EachMut(func(_ Entity, v *Velocity, p *Position) {
			dt := w.DeltaTime()
			p.X += v.X * dt
			p.Y += v.Y * dt
		})
	require.NoError(t, err)
	assert.Equal(t, "move", move.Name())
	assert.Equal(t, []engine.Term{
		{ID: ComponentID[Velocity](w), Access: engine.AccessIn},
		{ID: ComponentID[Position](w), Access: engine.AccessInOut},
	}, move.Terms())

	require.True(t, w.Progress(0.5))
	require.True(t, w.Progress(0.5))
	pos, _ := Get[Position](w, e)
	assert.Equal(t, Position{X: 2, Y: 4}, *pos)

	found, ok := w.Lookup("move")
	require.True(t, ok)
	assert.Equal(t, move.Entity(), found)
}

func TestSystemsRunInOrder(t *testing.T) {
	w := newTestWorld(t)
	With(w.Entity(), Health{})

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		_, err := NewSystem1[Health](w, name).Each(func(Entity, Health) {
			order = append(order, name)
		})
		require.NoError(t, err)
	}

	w.Progress(0.1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSystemReadOnlyDefaultsToIn(t *testing.T) {
	w := newTestWorld(t)
	sys, err := NewSystem2[Position, Velocity](w, "observe").Each(func(Entity, Position, Velocity) {})
	require.NoError(t, err)
	for _, term := range sys.Terms() {
		assert.Equal(t, engine.AccessIn, term.Access)
	}
}

func TestSystemErrors(t *testing.T) {
	w := newTestWorld(t)
	noop := func(Entity, Position) {}

	b := NewSystem1[Position](w, "once")
	_, err := b.Each(noop)
	require.NoError(t, err)
	_, err = b.Each(noop)
	var reused BuilderReusedError
	require.ErrorAs(t, err, &reused)

	_, err = NewSystem1[Position](w, "once").Each(noop)
	var dup engine.DuplicateSystemError
	require.ErrorAs(t, err, &dup)

	_, err = NewSystem1[Position](w, "").Each(noop)
	require.ErrorIs(t, err, engine.ErrEmptySystemName)

	assert.PanicsWithValue(t, engine.DuplicateTermError{ID: ComponentID[Position](w)}, func() {
		NewSystem2[Position, Position](w, "twice").EachMut(func(Entity, *Position, *Position) {})
	})
}

func TestUntypedSystem(t *testing.T) {
	w := newTestWorld(t)
	pos := RegisterComponent[Position](w)
	e := With(w.Entity(), Position{})

	sys, err := w.System("raw").Term(pos).Iter(func(_ Entity, row engine.Row) {
		(*Position)(row.Columns[0]).X++
	})
	require.NoError(t, err)

	w.Progress(0.1)
	p, _ := Get[Position](w, e)
	assert.Equal(t, float32(1), p.X)

	require.NoError(t, sys.SetEnabled(false))
	w.Progress(0.1)
	p, _ = Get[Position](w, e)
	assert.Equal(t, float32(1), p.X, "disabled systems are skipped")

	require.NoError(t, sys.Run(0.1))
	p, _ = Get[Position](w, e)
	assert.Equal(t, float32(2), p.X)
}

func TestSystemDefersStructuralChanges(t *testing.T) {
	w := newTestWorld(t)
	RegisterComponent[Velocity](w)
	e := With(w.Entity(), Position{})

	_, err := NewSystem1[Position](w, "spawn").Each(func(e Entity, _ Position) {
		Add[Velocity](w, e)
		assert.False(t, Has[Velocity](w, e))
	})
	require.NoError(t, err)

	w.Progress(0.1)
	assert.True(t, Has[Velocity](w, e))
}

func TestDeletedSystemStopsRunning(t *testing.T) {
	w := newTestWorld(t)
	e := With(w.Entity(), Health{})

	sys, err := NewSystem1[Health](w, "heal").EachMut(func(_ Entity, h *Health) {
		h.Current++
	})
	require.NoError(t, err)
	w.Progress(0.1)
	sys.Entity().Delete()
	w.Progress(0.1)

	hp, _ := Get[Health](w, e)
	assert.Equal(t, 1, hp.Current)
	assert.Nil(t, sys.Terms())
	assert.Error(t, sys.Run(0.1))
}

func TestSystemAccessIndexOutOfRange(t *testing.T) {
	w := newTestWorld(t)
	b := NewSystem2[Position, Velocity](w, "bounded")

	assert.PanicsWithValue(t, AccessIndexError{Index: 2, Len: 2}, func() {
		b.Access(2, engine.AccessIn)
	})
	assert.PanicsWithValue(t, AccessIndexError{Index: -1, Len: 2}, func() {
		b.Access(-1, engine.AccessIn)
	})

	sys, err := b.Access(1, engine.AccessOut).EachMut(func(Entity, *Position, *Velocity) {})
	require.NoError(t, err)
	assert.Equal(t, engine.AccessOut, sys.Terms()[1].Access)
}
