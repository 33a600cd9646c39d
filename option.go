package dock

import (
	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/dock/engine"
)

type Option func(*options)

type options struct {
	logger   *zerolog.Logger
	settings *Settings
	engine   engine.Engine
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

func WithSettings(s Settings) Option {
	return func(o *options) {
		s = s.normalized()
		o.settings = &s
	}
}

// WithEngine makes the world own e instead of creating an in-process engine.
// The world finalizes e when it is closed.
func WithEngine(e engine.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}
