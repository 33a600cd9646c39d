package dock

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/dock/engine"
)

func TestRegisterIsIdempotent(t *testing.T) {
	w := newTestWorld(t)

	first := RegisterComponent[Position](w)
	second := RegisterComponent[Position](w)
	assert.Equal(t, first, second)
	assert.Equal(t, first, ComponentID[Position](w))

	other := RegisterComponent[Velocity](w)
	assert.NotEqual(t, first, other)

	id, ok := ID[Position](w)
	require.True(t, ok)
	assert.Equal(t, first, id)
	_, ok = ID[Health](w)
	assert.False(t, ok)
}

func TestRegisterRecordsLayout(t *testing.T) {
	w := newTestWorld(t)
	id := RegisterComponentNamed[Position](w, "Position")

	info, ok := w.Registry().Info(id)
	require.True(t, ok)
	assert.Equal(t, uintptr(12), info.Size)
	assert.Equal(t, uintptr(4), info.Align)
	assert.Equal(t, "Position", info.Name)
	assert.Equal(t, reflect.TypeFor[Position]().String(), info.Symbol)

	found, ok := w.Lookup("Position")
	require.True(t, ok)
	assert.Equal(t, id, found.ID())
}

func TestRegisterPerWorld(t *testing.T) {
	a := newTestWorld(t)
	b := newTestWorld(t)
	RegisterComponent[Velocity](b)

	idA := RegisterComponent[Position](a)
	idB := RegisterComponent[Position](b)
	assert.NotEqual(t, idA, idB)
	_, ok := ID[Velocity](a)
	assert.False(t, ok)
}

func TestRegistrySharedAcrossViews(t *testing.T) {
	w := newTestWorld(t)
	id := RegisterComponent[Position](w)

	borrowed := Factory.WrapWorld(w.Raw())
	assert.Same(t, w.Registry(), borrowed.Registry())
	assert.Equal(t, id, ComponentID[Position](borrowed))

	stage := w.AsyncStage()
	defer stage.Close()
	assert.Same(t, w.Registry(), stage.Registry())
	vel := RegisterComponent[Velocity](stage)
	assert.Equal(t, vel, ComponentID[Velocity](w))
}

func TestRegisterDynamic(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWorld(t, WithLogger(zerolog.New(&buf)))
	layout := Layout{Size: 8, Align: 4}

	id := w.ComponentDynamic("blob", layout)
	assert.Equal(t, id, w.ComponentDynamic("blob", layout))
	found, ok := w.Registry().LookupSymbol("blob")
	require.True(t, ok)
	assert.Equal(t, id, found)
	_, ok = w.Registry().LookupSymbol("missing")
	assert.False(t, ok)

	buf.Reset()
	assert.Equal(t, id, w.ComponentDynamic("blob", Layout{Size: 16, Align: 8}))
	assert.Contains(t, buf.String(), "dynamic component re-registered with a different layout")

	named := w.ComponentDynamicNamed("rigid", "RigidBody", LayoutOf[[4]float64]())
	info, ok := w.Registry().Info(named)
	require.True(t, ok)
	assert.Equal(t, "RigidBody", info.Name)
	assert.Equal(t, uintptr(32), info.Size)
	assert.Equal(t, uintptr(8), info.Align)
}

func TestRegistryComponents(t *testing.T) {
	w := newTestWorld(t)
	pos := RegisterComponent[Position](w)
	blob := w.ComponentDynamic("blob", Layout{Size: 4, Align: 4})
	vel := RegisterComponent[Velocity](w)

	infos := w.Registry().Components()
	ids := make([]engine.ID, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	assert.Equal(t, []engine.ID{pos, blob, vel}, ids)
}

func TestRegisterPanicsWhenEngineRefuses(t *testing.T) {
	w := newTestWorld(t, WithSettings(Settings{MaxComponents: 2}))
	RegisterComponent[Position](w)

	assert.PanicsWithValue(t, engine.ComponentLimitError{Max: 2}, func() {
		RegisterComponent[Velocity](w)
	})
	assert.Panics(t, func() {
		w.ComponentDynamic("bad", Layout{Size: 3, Align: 3})
	})
}

func TestUnregisteredTypePanics(t *testing.T) {
	w := newTestWorld(t)
	e := w.Entity()
	want := ComponentNotRegisteredError{Type: reflect.TypeFor[Health]()}

	assert.PanicsWithValue(t, want, func() { Get[Health](w, e) })
	assert.PanicsWithValue(t, want, func() { GetMut[Health](w, e) })
	assert.PanicsWithValue(t, want, func() { Has[Health](w, e) })
	assert.PanicsWithValue(t, want, func() { Remove[Health](w, e) })
	assert.PanicsWithValue(t, want, func() { GetSingleton[Health](w) })
	assert.PanicsWithValue(t, want, func() { ComponentID[Health](w) })
}
