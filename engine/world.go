package engine

import (
	"reflect"
	"time"
	"unsafe"

	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

var _ Engine = &World{}

// World is the in-process engine. It is not safe for concurrent use.
type World struct {
	cfg    Config
	logger zerolog.Logger

	nextID     ID
	records    map[ID]record
	components map[ID]*componentType
	archetypes *archetypes
	hierarchy  hierarchy
	systems    *systemManager

	lockDepth int
	opQueue   opQueue

	ctx        any
	quit       bool
	finalized  bool
	deltaTime  float32
	frameCount uint64
	lastFrame  time.Time
}

// record locates an entity's row. Entities without components have no archetype.
type record struct {
	arch *archetype
	row  int
}

type componentType struct {
	info ComponentInfo
	typ  reflect.Type
	bit  uint32
}

// New creates an engine world with the builtin components registered.
func New(cfg Config) *World {
	cfg = cfg.normalized()
	w := &World{
		cfg:        cfg,
		logger:     cfg.Logger,
		records:    make(map[ID]record, cfg.InitialCapacity),
		components: make(map[ID]*componentType),
		archetypes: newArchetypes(),
		hierarchy:  newHierarchy(),
		systems:    newSystemManager(),
		opQueue:    newOpQueue(),
	}
	prefab, err := w.NewComponent(ComponentDesc{Symbol: "Prefab", Align: 1})
	if err != nil || prefab != Prefab {
		panic("engine: builtin Prefab component could not be registered")
	}
	w.logger.Debug().Int("max_components", cfg.MaxComponents).Msg("engine world created")
	return w
}

// Fini tears the world down. Every id, filter and system becomes unusable.
func (w *World) Fini() error {
	if w.finalized {
		return ErrFinalized
	}
	w.finalized = true
	w.records = nil
	w.components = nil
	w.archetypes = newArchetypes()
	w.hierarchy = newHierarchy()
	w.systems = newSystemManager()
	w.opQueue.clear()
	w.ctx = nil
	w.logger.Debug().Uint64("frames", w.frameCount).Msg("engine world finalized")
	return nil
}

func (w *World) Quit() {
	w.quit = true
}

func (w *World) ShouldQuit() bool {
	return w.quit
}

func (w *World) DeltaTime() float32 {
	return w.deltaTime
}

func (w *World) FrameCount() uint64 {
	return w.frameCount
}

func (w *World) Context() any {
	return w.ctx
}

func (w *World) SetContext(ctx any) {
	w.ctx = ctx
}

// NewID mints an entity id. It panics with ErrFinalized once the world is torn
// down.
func (w *World) NewID() ID {
	if w.finalized {
		panic(ErrFinalized)
	}
	w.nextID++
	w.records[w.nextID] = record{}
	return w.nextID
}

func (w *World) IsValid(id ID) bool {
	if id == NullID {
		return false
	}
	_, ok := w.records[id]
	return ok
}

// Type lists the components attached to id in ascending order.
func (w *World) Type(id ID) []ID {
	rec, ok := w.records[id]
	if !ok || rec.arch == nil {
		return nil
	}
	return append([]ID(nil), rec.arch.comps...)
}

func (w *World) NewComponent(desc ComponentDesc) (ID, error) {
	if w.finalized {
		return NullID, ErrFinalized
	}
	if len(w.components) >= w.cfg.MaxComponents {
		return NullID, ComponentLimitError{Max: w.cfg.MaxComponents}
	}
	typ, err := columnType(desc)
	if err != nil {
		return NullID, err
	}
	id := w.NewID()
	if desc.Name != "" {
		if err := w.setName(id, desc.Name); err != nil {
			delete(w.records, id)
			return NullID, err
		}
	}
	name := desc.Name
	if name == "" {
		name = desc.Symbol
	}
	w.components[id] = &componentType{
		info: ComponentInfo{
			ID:     id,
			Name:   name,
			Symbol: desc.Symbol,
			Size:   desc.Size,
			Align:  desc.Align,
		},
		typ: typ,
		bit: uint32(len(w.components)),
	}
	w.logger.Debug().
		Uint64("component_id", uint64(id)).
		Str("component_name", name).
		Uint64("size", uint64(desc.Size)).
		Uint64("align", uint64(desc.Align)).
		Msg("component registered")
	return id, nil
}

func (w *World) ComponentInfo(id ID) (ComponentInfo, bool) {
	ct, ok := w.components[id]
	if !ok {
		return ComponentInfo{}, false
	}
	return ct.info, true
}

func (w *World) mustComponent(id ID) *componentType {
	ct, ok := w.components[id]
	if !ok {
		panic(UnknownComponentError{ID: id})
	}
	return ct
}

func (w *World) Has(entity, component ID) bool {
	rec, ok := w.records[entity]
	return ok && rec.arch != nil && rec.arch.has(component)
}

// Get returns a pointer into component storage, or nil when entity lacks the
// component. The pointer is invalidated by any structural change.
func (w *World) Get(entity, component ID) unsafe.Pointer {
	rec, ok := w.records[entity]
	if !ok || rec.arch == nil {
		return nil
	}
	return rec.arch.ptr(component, rec.row)
}

// GetMut behaves like Get but attaches a zero value first when the component
// is missing. While deferring, the returned pointer refers to a scratch value
// copied into storage on replay.
func (w *World) GetMut(entity, component ID) unsafe.Pointer {
	if !w.IsValid(entity) {
		return nil
	}
	ct := w.mustComponent(component)
	if p := w.Get(entity, component); p != nil {
		return p
	}
	if w.deferring() {
		return w.opQueue.scratch(entity, ct)
	}
	w.add(entity, ct)
	return w.Get(entity, component)
}

func (w *World) Add(entity, component ID) {
	ct := w.mustComponent(component)
	if w.deferring() {
		w.opQueue.enqueueComponentOp(operation{typ: opAddComponent, entity: entity, comp: component})
		return
	}
	w.add(entity, ct)
}

func (w *World) Remove(entity, component ID) {
	ct := w.mustComponent(component)
	if w.deferring() {
		w.opQueue.enqueueComponentOp(operation{typ: opRemoveComponent, entity: entity, comp: component})
		return
	}
	w.remove(entity, ct)
}

func (w *World) Delete(id ID) {
	if !w.IsValid(id) {
		return
	}
	if _, ok := w.components[id]; ok {
		w.logger.Warn().Uint64("entity_id", uint64(id)).Err(ErrComponentDeleted).Msg("delete refused")
		return
	}
	if w.deferring() {
		w.opQueue.enqueueDestroy(id)
		return
	}
	w.destroy(id)
}

// AsyncStage returns a view of w that queues every structural change until
// Merge.
func (w *World) AsyncStage() Engine {
	return newStage(w)
}

func (w *World) IsAsyncStage() bool {
	return false
}

// Merge replays operations deferred on the world itself. It is a no-op while
// an iteration is still running.
func (w *World) Merge() error {
	if w.finalized {
		return ErrFinalized
	}
	if !w.deferring() {
		w.opQueue.replay(w)
	}
	return nil
}

func (w *World) FreeAsyncStage() {}

func (w *World) deferring() bool {
	return w.lockDepth > 0
}

func (w *World) lock() {
	w.lockDepth++
}

func (w *World) unlock() {
	w.lockDepth--
	if w.lockDepth == 0 {
		w.opQueue.replay(w)
	}
}

// signature builds the mask of a component set.
func (w *World) signature(comps []ID) mask.Mask {
	var m mask.Mask
	for _, c := range comps {
		m.Mark(w.components[c].bit)
	}
	return m
}
