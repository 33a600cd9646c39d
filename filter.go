package dock

import (
	"iter"

	"github.com/TheBitDrifter/dock/engine"
)

// termBuilder collects the ordered term list shared by every builder.
type termBuilder struct {
	world *World
	terms []engine.Term
	built bool
}

func (b *termBuilder) add(id engine.ID, access engine.Access) {
	b.terms = append(b.terms, engine.Term{ID: id, Access: access})
}

func (b *termBuilder) addGroup(g Group) {
	for _, id := range g.ComponentIDs(b.world) {
		b.add(id, engine.AccessDefault)
	}
}

// finish marks the builder used, reporting an error on the second call.
func (b *termBuilder) finish(kind string) error {
	if b.built {
		return BuilderReusedError{Builder: kind}
	}
	b.built = true
	return nil
}

type FilterBuilder struct {
	termBuilder
}

func (b *FilterBuilder) Term(id engine.ID) *FilterBuilder {
	b.add(id, engine.AccessDefault)
	return b
}

func (b *FilterBuilder) TermAccess(id engine.ID, access engine.Access) *FilterBuilder {
	b.add(id, access)
	return b
}

// Group appends one term per element of g, in order.
func (b *FilterBuilder) Group(g Group) *FilterBuilder {
	b.addGroup(g)
	return b
}

func (b *FilterBuilder) Build() (*Filter, error) {
	if err := b.finish("filter builder"); err != nil {
		return nil, err
	}
	raw, err := b.world.engine.BuildFilter(b.terms)
	if err != nil {
		return nil, err
	}
	return &Filter{world: b.world, raw: raw}, nil
}

type QueryBuilder struct {
	termBuilder
}

func (b *QueryBuilder) Term(id engine.ID) *QueryBuilder {
	b.add(id, engine.AccessDefault)
	return b
}

func (b *QueryBuilder) TermAccess(id engine.ID, access engine.Access) *QueryBuilder {
	b.add(id, access)
	return b
}

func (b *QueryBuilder) Group(g Group) *QueryBuilder {
	b.addGroup(g)
	return b
}

func (b *QueryBuilder) Build() (*Query, error) {
	if err := b.finish("query builder"); err != nil {
		return nil, err
	}
	raw, err := b.world.engine.BuildQuery(b.terms)
	if err != nil {
		return nil, err
	}
	return &Query{Filter: Filter{world: b.world, raw: raw}}, nil
}

// Filter iterates the entities holding every one of its terms. Matching is
// redone on each iteration.
type Filter struct {
	world *World
	raw   engine.Filter
}

func (f *Filter) Raw() engine.Filter {
	return f.raw
}

func (f *Filter) Terms() []engine.Term {
	return f.raw.Terms()
}

// Iter calls fn for every matching row until fn returns false. Row columns
// line up with Terms.
func (f *Filter) Iter(fn func(Entity, engine.Row) bool) {
	for row := range f.raw.Rows() {
		if !fn(Entity{world: f.world, id: row.Entity}, row) {
			return
		}
	}
}

func (f *Filter) Count() int {
	return f.raw.Count()
}

func (f *Filter) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for row := range f.raw.Rows() {
			if !yield(Entity{world: f.world, id: row.Entity}) {
				return
			}
		}
	}
}

// Query is a Filter whose archetype matches are cached between iterations.
type Query struct {
	Filter
}

// mustBuild builds the terms of a typed group. Invalid groups are programming
// errors and panic.
func mustBuild(w *World, terms []engine.Term, cached bool) engine.Filter {
	var (
		raw engine.Filter
		err error
	)
	if cached {
		raw, err = w.engine.BuildQuery(terms)
	} else {
		raw, err = w.engine.BuildFilter(terms)
	}
	if err != nil {
		panic(err)
	}
	return raw
}
