package dock

import (
	"strconv"
	"testing"

	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/dock/engine"
)

func restoreConfig(t *testing.T) {
	t.Helper()
	saved := Config
	t.Cleanup(func() { Config = saved })
}

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, Settings{
		InitialCapacity: DefaultInitialCapacity,
		MaxComponents:   DefaultMaxComponents,
		LogLevel:        DefaultLogLevel,
	}, DefaultSettings())
	assert.Equal(t, DefaultSettings(), Settings{}.normalized())
	assert.Equal(t, zerolog.InfoLevel, Settings{LogLevel: "bogus"}.level())
	assert.Equal(t, mask.MaxBits, Settings{MaxComponents: mask.MaxBits + 36}.normalized().MaxComponents)
}

func TestWorldComponentLimitCappedAtMaskWidth(t *testing.T) {
	w := newTestWorld(t, WithSettings(Settings{MaxComponents: mask.MaxBits + 36}))
	e := w.Entity()
	for i := 1; i < mask.MaxBits; i++ {
		id := w.ComponentDynamic("blob"+strconv.Itoa(i), Layout{Size: 4, Align: 4})
		e.AddID(id)
	}
	assert.Len(t, w.Raw().Type(e.ID()), mask.MaxBits-1)
	assert.PanicsWithValue(t, engine.ComponentLimitError{Max: mask.MaxBits}, func() {
		w.ComponentDynamic("overflow", Layout{Size: 4, Align: 4})
	})
}

func TestLoadEnv(t *testing.T) {
	restoreConfig(t)
	Config.SetSettings(DefaultSettings())
	t.Setenv("DOCK_INITIAL_CAPACITY", "32")
	t.Setenv("DOCK_MAX_COMPONENTS", "16")
	t.Setenv("DOCK_LOG_LEVEL", "debug")

	require.NoError(t, Config.LoadEnv())
	assert.Equal(t, Settings{
		InitialCapacity: 32,
		MaxComponents:   16,
		LogLevel:        "debug",
	}, Config.Settings())
	assert.Equal(t, zerolog.DebugLevel, Config.Logger().GetLevel())
}

func TestLoadEnvRejectsBadLevel(t *testing.T) {
	restoreConfig(t)
	Config.SetSettings(DefaultSettings())
	t.Setenv("DOCK_LOG_LEVEL", "loud")

	assert.Error(t, Config.LoadEnv())
	assert.Equal(t, DefaultSettings(), Config.Settings())
}

func TestNewWorldUsesConfig(t *testing.T) {
	restoreConfig(t)
	Config.SetSettings(Settings{MaxComponents: 2})
	Config.SetLogger(zerolog.Nop())

	w := Factory.NewWorld()
	defer w.Close()
	RegisterComponent[Position](w)
	assert.Panics(t, func() { RegisterComponent[Velocity](w) })
}
