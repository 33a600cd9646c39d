package engine

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/TheBitDrifter/mask"
)

type archetypeID uint32

// archetype stores every entity sharing one component signature. Columns run
// parallel to comps; a nil column is a component without storage.
type archetype struct {
	id       archetypeID
	mask     mask.Mask
	comps    []ID
	columns  []*column
	index    map[ID]int
	entities []ID
}

type archetypes struct {
	nextID           archetypeID
	asSlice          []*archetype
	idsGroupedByMask map[mask.Mask]archetypeID
	// version changes whenever an archetype is created so cached queries
	// know to rematch.
	version uint64
}

func newArchetypes() *archetypes {
	return &archetypes{
		nextID:           1,
		idsGroupedByMask: make(map[mask.Mask]archetypeID),
	}
}

func newArchetype(id archetypeID, signature mask.Mask, comps []ID, types map[ID]*componentType) *archetype {
	sorted := slices.Clone(comps)
	slices.Sort(sorted)
	a := &archetype{
		id:      id,
		mask:    signature,
		comps:   sorted,
		columns: make([]*column, len(sorted)),
		index:   make(map[ID]int, len(sorted)),
	}
	for i, c := range sorted {
		a.index[c] = i
		if typ := types[c].typ; typ != nil {
			a.columns[i] = newColumn(typ, columnCapacity)
		}
	}
	return a
}

func (a *archetype) ID() uint32 {
	return uint32(a.id)
}

func (a *archetype) Mask() mask.Mask {
	return a.mask
}

// Components yields the component ids of the signature in ascending order.
func (a *archetype) Components() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, c := range a.comps {
			if !yield(c) {
				return
			}
		}
	}
}

func (a *archetype) length() int {
	return len(a.entities)
}

func (a *archetype) has(c ID) bool {
	_, ok := a.index[c]
	return ok
}

// column returns the storage for c and whether c is part of the signature.
func (a *archetype) column(c ID) (*column, bool) {
	i, ok := a.index[c]
	if !ok {
		return nil, false
	}
	return a.columns[i], true
}

func (a *archetype) ptr(c ID, row int) unsafe.Pointer {
	col, ok := a.column(c)
	if !ok {
		return nil
	}
	if col == nil {
		return zeroPtr()
	}
	return col.ptr(row)
}

// pushRow appends e with zero values in every column.
func (a *archetype) pushRow(e ID) int {
	for _, col := range a.columns {
		if col != nil {
			col.push()
		}
	}
	a.entities = append(a.entities, e)
	return len(a.entities) - 1
}

// removeRow swap-removes row and reports the entity that now occupies it.
func (a *archetype) removeRow(row int) (ID, bool) {
	last := len(a.entities) - 1
	for _, col := range a.columns {
		if col != nil {
			col.swapRemove(row)
		}
	}
	moved := a.entities[last]
	a.entities[row] = moved
	a.entities = a.entities[:last]
	if row == last {
		return NullID, false
	}
	return moved, true
}
