package dock

import (
	"iter"

	"github.com/TheBitDrifter/dock/engine"
)

// SystemBuilder describes an untyped system. Its callback receives raw rows.
type SystemBuilder struct {
	termBuilder
	name string
}

func (b *SystemBuilder) Term(id engine.ID) *SystemBuilder {
	b.add(id, engine.AccessDefault)
	return b
}

func (b *SystemBuilder) TermAccess(id engine.ID, access engine.Access) *SystemBuilder {
	b.add(id, access)
	return b
}

func (b *SystemBuilder) Group(g Group) *SystemBuilder {
	b.addGroup(g)
	return b
}

// Iter registers the system with fn as its per-row callback.
func (b *SystemBuilder) Iter(fn func(Entity, engine.Row)) (*System, error) {
	if err := b.finish("system builder"); err != nil {
		return nil, err
	}
	spec := systemSpec{world: b.world, name: b.name}
	return spec.register(b.terms, fn)
}

// systemSpec carries what typed system builders share.
type systemSpec struct {
	world *World
	name  string
	built bool
}

func (s *systemSpec) register(terms []engine.Term, each func(Entity, engine.Row)) (*System, error) {
	w := s.world
	id, err := w.engine.NewSystem(engine.SystemDesc{
		Name:  s.name,
		Terms: terms,
		Run: func(_ engine.Engine, _ float32, rows iter.Seq[engine.Row]) {
			for row := range rows {
				each(Entity{world: w, id: row.Entity}, row)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	return &System{world: w, id: id, name: s.name}, nil
}

// terms pairs ids with access modes. An AccessDefault override falls back to
// mode. Duplicate ids panic.
func (s *systemSpec) terms(ids []engine.ID, overrides []engine.Access, mode engine.Access) ([]engine.Term, error) {
	if s.built {
		return nil, BuilderReusedError{Builder: "system builder"}
	}
	s.built = true
	terms := groupTerms(ids, mode)
	for i, access := range overrides {
		if access != engine.AccessDefault {
			terms[i].Access = access
		}
	}
	return terms, nil
}

// System is a registered system. It runs on every World.Progress while enabled.
type System struct {
	world *World
	id    engine.ID
	name  string
}

func (s *System) ID() engine.ID {
	return s.id
}

func (s *System) Entity() Entity {
	return Entity{world: s.world, id: s.id}
}

func (s *System) Name() string {
	return s.name
}

func (s *System) Terms() []engine.Term {
	for _, info := range s.world.engine.Systems() {
		if info.ID == s.id {
			return info.Terms
		}
	}
	return nil
}

// Run executes the system once outside of Progress.
func (s *System) Run(deltaTime float32) error {
	return s.world.engine.RunSystem(s.id, deltaTime)
}

func (s *System) SetEnabled(enabled bool) error {
	return s.world.engine.SetSystemEnabled(s.id, enabled)
}
