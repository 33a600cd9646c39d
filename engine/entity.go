package engine

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

func (w *World) add(entity ID, ct *componentType) {
	rec, ok := w.records[entity]
	if !ok {
		return
	}
	if rec.arch != nil && rec.arch.has(ct.info.ID) {
		return
	}
	var destMask mask.Mask
	if rec.arch != nil {
		destMask = rec.arch.mask
	}
	destMask.Mark(ct.bit)

	dest := w.getOrCreateArchetype(destMask, rec.arch, ct.info.ID)
	w.migrate(entity, rec, dest)
}

func (w *World) remove(entity ID, ct *componentType) {
	rec, ok := w.records[entity]
	if !ok || rec.arch == nil || !rec.arch.has(ct.info.ID) {
		return
	}
	destMask := rec.arch.mask
	destMask.Unmark(ct.bit)

	dest := w.getOrCreateArchetypeWithout(destMask, rec.arch, ct.info.ID)
	w.migrate(entity, rec, dest)
}

// assign attaches the component if needed and copies value into its slot.
func (w *World) assign(entity ID, ct *componentType, value reflect.Value) {
	w.add(entity, ct)
	rec, ok := w.records[entity]
	if !ok || rec.arch == nil || !value.IsValid() {
		return
	}
	if col, _ := rec.arch.column(ct.info.ID); col != nil {
		col.set(rec.row, value)
	}
}

// migrate moves entity from its current row into dest, carrying over every
// component both signatures share. A nil dest leaves the entity without storage.
func (w *World) migrate(entity ID, rec record, dest *archetype) {
	if dest == nil {
		w.removeRow(rec.arch, rec.row)
		w.records[entity] = record{}
		return
	}
	row := dest.pushRow(entity)
	if src := rec.arch; src != nil {
		for i, c := range src.comps {
			col := src.columns[i]
			if col == nil {
				continue
			}
			if destCol, _ := dest.column(c); destCol != nil {
				destCol.copyFrom(row, col, rec.row)
			}
		}
		w.removeRow(src, rec.row)
	}
	w.records[entity] = record{arch: dest, row: row}
}

func (w *World) removeRow(a *archetype, row int) {
	if moved, ok := a.removeRow(row); ok {
		rec := w.records[moved]
		rec.row = row
		w.records[moved] = rec
	}
}

func (w *World) getOrCreateArchetype(destMask mask.Mask, from *archetype, newComp ID) *archetype {
	if id, found := w.archetypes.idsGroupedByMask[destMask]; found {
		return w.archetypes.asSlice[id-1]
	}
	var comps []ID
	if from != nil {
		comps = iter_util.Collect(from.Components())
	}
	comps = append(comps, newComp)
	return w.createArchetype(destMask, comps)
}

func (w *World) getOrCreateArchetypeWithout(destMask mask.Mask, from *archetype, removed ID) *archetype {
	if len(from.comps) == 1 {
		return nil
	}
	if id, found := w.archetypes.idsGroupedByMask[destMask]; found {
		return w.archetypes.asSlice[id-1]
	}
	comps := make([]ID, 0, len(from.comps)-1)
	for _, c := range iter_util.Collect(from.Components()) {
		if c != removed {
			comps = append(comps, c)
		}
	}
	return w.createArchetype(destMask, comps)
}

func (w *World) createArchetype(signature mask.Mask, comps []ID) *archetype {
	created := newArchetype(w.archetypes.nextID, signature, comps, w.components)
	w.archetypes.asSlice = append(w.archetypes.asSlice, created)
	w.archetypes.idsGroupedByMask[signature] = w.archetypes.nextID
	w.archetypes.nextID++
	w.archetypes.version++

	event := w.logger.Debug().Uint32("archetype_id", created.ID())
	if event.Enabled() {
		names := make([]string, len(created.comps))
		for i, c := range created.comps {
			names[i] = w.components[c].info.Name
		}
		event.Strs("components", names).Msg("archetype created")
	}
	return created
}

// destroy removes id, its row, its name and every descendant.
func (w *World) destroy(id ID) {
	if !w.IsValid(id) {
		return
	}
	for _, child := range w.hierarchy.childrenOf(id) {
		if _, isComponent := w.components[child]; isComponent {
			w.hierarchy.detach(child)
			continue
		}
		w.destroy(child)
	}
	// children may have shared the archetype, so the row is read afterwards
	if rec := w.records[id]; rec.arch != nil {
		w.removeRow(rec.arch, rec.row)
	}
	w.hierarchy.forget(id)
	w.systems.forget(id)
	delete(w.records, id)
}
