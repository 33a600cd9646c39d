package dock

import (
	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/dock/engine"
)

func loadComponentIntoArrayLogger(info engine.ComponentInfo, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Uint64("component_id", uint64(info.ID))
	dictLogger = dictLogger.Str("component_name", info.Name)
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, w *World) *zerolog.Event {
	components := w.registry.Components()
	zeroLoggerEvent.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, info := range components {
		arrayLogger = loadComponentIntoArrayLogger(info, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func loadSystemsToEvent(zeroLoggerEvent *zerolog.Event, w *World) *zerolog.Event {
	systems := w.engine.Systems()
	zeroLoggerEvent.Int("total_systems", len(systems))
	arrayLogger := zerolog.Arr()
	for _, s := range systems {
		arrayLogger = arrayLogger.Str(s.Name)
	}
	return zeroLoggerEvent.Array("systems", arrayLogger)
}

// LogComponents logs every component registered through w's registry.
func LogComponents(logger *zerolog.Logger, w *World, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, w)
	zeroLoggerEvent.Send()
}

// LogSystems logs the names of w's systems in run order.
func LogSystems(logger *zerolog.Logger, w *World, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadSystemsToEvent(zeroLoggerEvent, w)
	zeroLoggerEvent.Send()
}

// LogEntity logs e's id, path and attached components.
func LogEntity(logger *zerolog.Logger, e Entity, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	arrayLogger := zerolog.Arr()
	for _, id := range e.world.engine.Type(e.id) {
		if info, ok := e.world.engine.ComponentInfo(id); ok {
			arrayLogger = loadComponentIntoArrayLogger(info, arrayLogger)
		}
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Str("path", e.Path())
	zeroLoggerEvent.Uint64("entity_id", uint64(e.id)).Send()
}

// LogWorld logs components and systems in one event.
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, w)
	zeroLoggerEvent = loadSystemsToEvent(zeroLoggerEvent, w)
	zeroLoggerEvent.Send()
}
