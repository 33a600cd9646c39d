package dock

import (
	"unsafe"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/dock/engine"
)

// PathSeparator separates the elements of hierarchical entity names.
const PathSeparator = "::"

// World is the typed view of one engine. An owned world finalizes its engine
// on Close; a borrowed one never does.
type World struct {
	engine   engine.Engine
	owned    bool
	closed   bool
	registry *Registry
	logger   zerolog.Logger
}

func newWorld(e engine.Engine, owned bool, logger zerolog.Logger, capacity int) *World {
	w := &World{
		engine:   e,
		owned:    owned,
		registry: registryFor(e, logger, capacity),
		logger:   logger,
	}
	logger.Debug().Bool("owned", owned).Bool("async_stage", e.IsAsyncStage()).Msg("world created")
	return w
}

func (w *World) Raw() engine.Engine {
	return w.engine
}

func (w *World) Registry() *Registry {
	return w.registry
}

func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

func (w *World) Owned() bool {
	return w.owned
}

// Close releases an owned engine: async stages are freed, anything else is
// finalized. Closing a borrowed world does nothing.
func (w *World) Close() error {
	if !w.owned {
		return nil
	}
	if w.closed {
		return ErrWorldClosed
	}
	w.closed = true
	w.logger.Debug().Bool("owned", w.owned).Bool("async_stage", w.engine.IsAsyncStage()).Msg("world closed")
	if w.engine.IsAsyncStage() {
		w.engine.FreeAsyncStage()
		return nil
	}
	if err := w.engine.Fini(); err != nil {
		return eris.Wrap(err, "failed to finalize engine")
	}
	return nil
}

// AsyncStage returns an owned world over a new async stage of w's engine.
// Structural changes made through it apply on Merge; Close discards the rest.
func (w *World) AsyncStage() *World {
	return &World{
		engine:   w.engine.AsyncStage(),
		owned:    true,
		registry: w.registry,
		logger:   w.logger,
	}
}

func (w *World) IsAsyncStage() bool {
	return w.engine.IsAsyncStage()
}

func (w *World) Merge() error {
	return w.engine.Merge()
}

// Entity mints a new entity. It panics with engine.ErrFinalized after the
// engine is finalized.
func (w *World) Entity() Entity {
	return Entity{world: w, id: w.engine.NewID()}
}

// Prefab mints a named template entity. Filters skip prefabs unless they ask
// for engine.Prefab explicitly.
func (w *World) Prefab(name string) Entity {
	return w.Entity().Named(name).AddID(engine.Prefab)
}

// FindEntity returns a handle for id if the engine still knows it.
func (w *World) FindEntity(id engine.ID) (Entity, bool) {
	e := Entity{world: w, id: id}
	if !e.IsValid() {
		return Entity{}, false
	}
	return e, true
}

// Lookup resolves a PathSeparator delimited path from the root.
func (w *World) Lookup(path string) (Entity, bool) {
	id := w.engine.LookupPath(engine.NullID, path, PathSeparator, true)
	if id == engine.NullID {
		return Entity{}, false
	}
	return Entity{world: w, id: id}, true
}

func (w *World) Name(e Entity) string {
	return w.engine.Name(e.id)
}

// Progress runs one frame of registered systems and reports whether the
// application should keep going.
func (w *World) Progress(deltaTime float32) bool {
	return w.engine.Progress(deltaTime)
}

func (w *World) DeltaTime() float32 {
	return w.engine.DeltaTime()
}

func (w *World) Quit() {
	w.engine.Quit()
}

func (w *World) ShouldQuit() bool {
	return w.engine.ShouldQuit()
}

// componentInfo panics for ids that are not components.
func (w *World) componentInfo(c engine.ID) engine.ComponentInfo {
	info, ok := w.engine.ComponentInfo(c)
	if !ok {
		panic(engine.UnknownComponentError{ID: c})
	}
	return info
}

// SetComponent copies data into entity's component c, attaching it first if
// needed. data must be exactly the registered size. Components whose Go type
// holds pointers must not be written through this path.
func (w *World) SetComponent(entity, c engine.ID, data []byte) error {
	info := w.componentInfo(c)
	if len(data) != int(info.Size) {
		err := SizeMismatchError{Component: c, Expected: int(info.Size), Actual: len(data)}
		w.logger.Warn().Err(err).Uint64("entity_id", uint64(entity)).Msg("untyped set rejected")
		return err
	}
	p := w.engine.GetMut(entity, c)
	if p == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(p), info.Size), data)
	return nil
}

// ReadComponent returns the bytes of entity's component c. The slice aliases
// storage and is valid until the next structural change.
func (w *World) ReadComponent(entity, c engine.ID) ([]byte, bool) {
	info := w.componentInfo(c)
	if !w.engine.IsValid(entity) {
		return nil, false
	}
	p := w.engine.Get(entity, c)
	if p == nil {
		return nil, false
	}
	return unsafe.Slice((*byte)(p), info.Size), true
}

// WriteComponent hands writer the bytes of entity's component c, attaching it
// first if needed. It reports false when entity is not alive.
func (w *World) WriteComponent(entity, c engine.ID, writer func([]byte)) bool {
	info := w.componentInfo(c)
	p := w.engine.GetMut(entity, c)
	if p == nil {
		return false
	}
	writer(unsafe.Slice((*byte)(p), info.Size))
	return true
}

// ComponentDynamic registers a component known only by symbol and layout.
func (w *World) ComponentDynamic(symbol string, layout Layout) engine.ID {
	return w.registry.RegisterDynamic(symbol, "", layout)
}

func (w *World) ComponentDynamicNamed(symbol, name string, layout Layout) engine.ID {
	return w.registry.RegisterDynamic(symbol, name, layout)
}

func (w *World) FilterBuilder() *FilterBuilder {
	return &FilterBuilder{termBuilder: termBuilder{world: w}}
}

func (w *World) QueryBuilder() *QueryBuilder {
	return &QueryBuilder{termBuilder: termBuilder{world: w}}
}

// System starts building a system registered under name.
func (w *World) System(name string) *SystemBuilder {
	return &SystemBuilder{termBuilder: termBuilder{world: w}, name: name}
}
