package dock

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	X, Y, Z float32
}

type Health struct {
	Current, Max int
}

type Name struct {
	Value string
}

func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	w := Factory.NewWorld(opts...)
	t.Cleanup(func() {
		if err := w.Close(); err != nil {
			require.ErrorIs(t, err, ErrWorldClosed)
		}
	})
	return w
}
