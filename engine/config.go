package engine

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultInitialCapacity = 1024
	defaultMaxComponents   = 64

	// columnCapacity is the row capacity a fresh archetype column starts with.
	columnCapacity = 16
)

// Config holds the settings of one engine world
type Config struct {
	// InitialCapacity sizes the entity index up front.
	InitialCapacity int
	// MaxComponents caps the number of registered components, builtins included.
	// Values above the width of mask.Mask are lowered to mask.MaxBits.
	MaxComponents int
	Logger        zerolog.Logger
}

// DefaultConfig returns the engine defaults logging through the global zerolog logger
func DefaultConfig() Config {
	return Config{
		InitialCapacity: defaultInitialCapacity,
		MaxComponents:   defaultMaxComponents,
		Logger:          log.Logger,
	}
}

func (c Config) normalized() Config {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = defaultInitialCapacity
	}
	if c.MaxComponents <= 0 {
		c.MaxComponents = defaultMaxComponents
	}
	c.MaxComponents = min(c.MaxComponents, mask.MaxBits)
	return c
}
