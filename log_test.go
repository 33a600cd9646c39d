package dock

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedWorld(t *testing.T) (*World, *zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	w := newTestWorld(t)
	RegisterComponent[Position](w)
	RegisterComponent[Velocity](w)
	_, err := NewSystem2[Velocity, Position](w, "move").EachMut(func(Entity, *Velocity, *Position) {})
	require.NoError(t, err)

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	return w, &bufLogger, &buf
}

func TestLogWorld(t *testing.T) {
	w, logger, buf := newLoggedWorld(t)

	LogWorld(logger, w, zerolog.InfoLevel)
	assert.JSONEq(t, `{
		"level":"info",
		"total_components":2,
		"components":[
			{"component_id":2,"component_name":"dock.Position"},
			{"component_id":3,"component_name":"dock.Velocity"}
		],
		"total_systems":1,
		"systems":["move"]
	}`, buf.String())
}

func TestLogComponentsAndSystems(t *testing.T) {
	w, logger, buf := newLoggedWorld(t)

	LogComponents(logger, w, zerolog.DebugLevel)
	assert.JSONEq(t, `{
		"level":"debug",
		"total_components":2,
		"components":[
			{"component_id":2,"component_name":"dock.Position"},
			{"component_id":3,"component_name":"dock.Velocity"}
		]
	}`, buf.String())

	buf.Reset()
	LogSystems(logger, w, zerolog.InfoLevel)
	assert.JSONEq(t, `{"level":"info","total_systems":1,"systems":["move"]}`, buf.String())
}

func TestLogEntity(t *testing.T) {
	w, logger, buf := newLoggedWorld(t)
	e := With(w.Entity().Named("player"), Position{})

	LogEntity(logger, e, zerolog.InfoLevel)
	assert.JSONEq(t, `{
		"level":"info",
		"components":[{"component_id":2,"component_name":"dock.Position"}],
		"path":"player",
		"entity_id":5
	}`, buf.String())
}
