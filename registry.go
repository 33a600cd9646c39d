package dock

import (
	"reflect"
	"slices"

	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/dock/engine"
)

// Layout describes a component with no Go type behind it.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the size and alignment of T.
func LayoutOf[T any]() Layout {
	typ := reflect.TypeFor[T]()
	return Layout{Size: typ.Size(), Align: uintptr(typ.Align())}
}

// Registry resolves component types and dynamic symbols to engine ids for one
// engine. Entries are never removed; the registry lives as long as its engine.
type Registry struct {
	engine  engine.Engine
	logger  zerolog.Logger
	byType  map[reflect.Type]engine.ID
	symbols Cache[engine.ID]
	layouts map[engine.ID]Layout
	order   []engine.ID
}

func newRegistry(e engine.Engine, logger zerolog.Logger, capacity int) *Registry {
	return &Registry{
		engine:  e,
		logger:  logger,
		byType:  make(map[reflect.Type]engine.ID),
		symbols: FactoryNewCache[engine.ID](capacity),
		layouts: make(map[engine.ID]Layout),
	}
}

// registryFor returns the registry bound to e, binding a new one on first use.
// Every World wrapping e shares it.
func registryFor(e engine.Engine, logger zerolog.Logger, capacity int) *Registry {
	if r, ok := e.Context().(*Registry); ok {
		return r
	}
	r := newRegistry(e, logger, capacity)
	e.SetContext(r)
	return r
}

// Register returns the id of typ, minting one sized from typ on first use.
// It panics if the engine refuses the component.
func (r *Registry) Register(typ reflect.Type, name string) engine.ID {
	if id, ok := r.byType[typ]; ok {
		return id
	}
	id, err := r.engine.NewComponent(engine.ComponentDesc{
		Name:   name,
		Symbol: typ.String(),
		Size:   typ.Size(),
		Align:  uintptr(typ.Align()),
		Type:   typ,
	})
	if err != nil {
		panic(err)
	}
	r.byType[typ] = id
	r.record(id, Layout{Size: typ.Size(), Align: uintptr(typ.Align())})
	return id
}

// RegisterDynamic returns the id registered under symbol, minting one with the
// given layout on first use.
func (r *Registry) RegisterDynamic(symbol, name string, layout Layout) engine.ID {
	if idx, ok := r.symbols.GetIndex(symbol); ok {
		id := *r.symbols.GetItem(idx)
		if existing := r.layouts[id]; existing != layout {
			r.logger.Warn().
				Str("symbol", symbol).
				Uint64("size", uint64(layout.Size)).
				Uint64("registered_size", uint64(existing.Size)).
				Msg("dynamic component re-registered with a different layout")
		}
		return id
	}
	id, err := r.engine.NewComponent(engine.ComponentDesc{
		Name:   name,
		Symbol: symbol,
		Size:   layout.Size,
		Align:  layout.Align,
	})
	if err != nil {
		panic(err)
	}
	if _, err := r.symbols.Register(symbol, id); err != nil {
		panic(err)
	}
	r.record(id, layout)
	return id
}

func (r *Registry) record(id engine.ID, layout Layout) {
	r.layouts[id] = layout
	r.order = append(r.order, id)
}

func (r *Registry) Lookup(typ reflect.Type) (engine.ID, bool) {
	id, ok := r.byType[typ]
	return id, ok
}

// LookupSymbol finds a component registered through RegisterDynamic.
func (r *Registry) LookupSymbol(symbol string) (engine.ID, bool) {
	idx, ok := r.symbols.GetIndex(symbol)
	if !ok {
		return engine.NullID, false
	}
	return *r.symbols.GetItem(idx), true
}

func (r *Registry) Info(id engine.ID) (engine.ComponentInfo, bool) {
	return r.engine.ComponentInfo(id)
}

// Components lists every component registered through r, ordered by id.
func (r *Registry) Components() []engine.ComponentInfo {
	ids := slices.Clone(r.order)
	slices.Sort(ids)
	infos := make([]engine.ComponentInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := r.engine.ComponentInfo(id); ok {
			infos = append(infos, info)
		}
	}
	return infos
}
