package dock

import (
	"github.com/TheBitDrifter/dock/engine"
)

type factory struct{}

var Factory factory

// NewWorld creates a world that owns its engine. Without WithEngine the engine
// is a fresh in-process engine.World.
func (f factory) NewWorld(opts ...Option) *World {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	settings := Config.Settings()
	if o.settings != nil {
		settings = *o.settings
	}
	logger := Config.Logger()
	if o.logger != nil {
		logger = *o.logger
	}
	e := o.engine
	if e == nil {
		e = engine.New(engine.Config{
			InitialCapacity: settings.InitialCapacity,
			MaxComponents:   settings.MaxComponents,
			Logger:          logger,
		})
	}
	return newWorld(e, true, logger, settings.MaxComponents)
}

// WrapWorld borrows e. The returned world never finalizes it.
func (f factory) WrapWorld(e engine.Engine) *World {
	return newWorld(e, false, Config.Logger(), Config.Settings().MaxComponents)
}

// FactoryNewComponent registers T on w and returns its typed handle.
func FactoryNewComponent[T any](w *World) Component[T] {
	return Component[T]{world: w, id: RegisterComponent[T](w)}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		items:       make([]T, 0, cap),
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
