package engine

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

var _ Filter = &filter{}

// filter matches archetypes holding every term. Cached filters (queries) keep
// their matched archetypes until the world creates a new one.
type filter struct {
	world   *World
	terms   []Term
	with    mask.Mask
	without mask.Mask
	cached  bool

	matched []*archetype
	version uint64
	primed  bool
}

func (w *World) BuildFilter(terms []Term) (Filter, error) {
	f, err := w.buildFilter(terms, false)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (w *World) BuildQuery(terms []Term) (Filter, error) {
	f, err := w.buildFilter(terms, true)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (w *World) buildFilter(terms []Term, cached bool) (*filter, error) {
	if w.finalized {
		return nil, ErrFinalized
	}
	if len(terms) == 0 {
		return nil, UnknownComponentError{ID: NullID}
	}
	f := &filter{
		world:  w,
		terms:  make([]Term, len(terms)),
		cached: cached,
	}
	seen := make(map[ID]struct{}, len(terms))
	includePrefab := false
	for i, term := range terms {
		ct, ok := w.components[term.ID]
		if !ok {
			return nil, UnknownComponentError{ID: term.ID}
		}
		if _, dup := seen[term.ID]; dup {
			return nil, DuplicateTermError{ID: term.ID}
		}
		seen[term.ID] = struct{}{}
		if term.Access == AccessDefault {
			term.Access = AccessInOut
		}
		if term.ID == Prefab {
			includePrefab = true
		}
		f.terms[i] = term
		f.with.Mark(ct.bit)
	}
	if !includePrefab {
		f.without.Mark(w.components[Prefab].bit)
	}
	return f, nil
}

func (f *filter) Terms() []Term {
	return append([]Term(nil), f.terms...)
}

func (f *filter) Evaluate(a *archetype) bool {
	// ContainsNone is false for an empty argument
	return a.mask.ContainsAll(f.with) && (f.without.IsEmpty() || a.mask.ContainsNone(f.without))
}

// archetypes returns the archetypes currently matching f.
func (f *filter) archetypes() []*archetype {
	all := f.world.archetypes
	if f.cached && f.primed && f.version == all.version {
		return f.matched
	}
	matched := make([]*archetype, 0, len(f.matched))
	for _, arch := range all.asSlice {
		if f.Evaluate(arch) {
			matched = append(matched, arch)
		}
	}
	if f.cached {
		f.matched = matched
		f.version = all.version
		f.primed = true
	}
	return matched
}

// Rows locks the world for the duration of the iteration. Structural changes
// made meanwhile are replayed once the outermost iteration ends.
func (f *filter) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if f.world.finalized {
			return
		}
		c := newCursor(f)
		defer c.Reset()
		for c.Next() {
			if !yield(c.Row()) {
				return
			}
		}
	}
}

func (f *filter) Count() int {
	if f.world.finalized {
		return 0
	}
	total := 0
	for _, arch := range f.archetypes() {
		total += arch.length()
	}
	return total
}
