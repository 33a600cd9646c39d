package engine

import (
	"reflect"
	"unsafe"
)

type operation struct {
	typ    operationType
	entity ID
	comp   ID
	name   string
	parent ID
	value  reflect.Value
}

type operationType int

const (
	opNone operationType = iota
	opAddComponent
	opRemoveComponent
	opSetComponent
	opSetName
	opSetParent
	opDestroy
)

type opKey struct {
	entity ID
	comp   ID
}

// opQueue holds structural changes made while a world is locked. Component
// and naming operations replay in order, destroys last.
type opQueue struct {
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[ID]struct{}
	pendingSets    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[ID]struct{}),
		pendingSets:    make(map[opKey]int),
	}
}

func (q *opQueue) empty() bool {
	return len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (q *opQueue) enqueueComponentOp(op operation) {
	// If entity is pending destroy, ignore component operations
	if _, doomed := q.pendingDestroy[op.entity]; doomed {
		return
	}
	if op.typ == opRemoveComponent {
		delete(q.pendingSets, opKey{entity: op.entity, comp: op.comp})
	}
	q.componentOps = append(q.componentOps, op)
}

func (q *opQueue) enqueueDestroy(entity ID) {
	if _, exists := q.pendingDestroy[entity]; exists {
		return
	}
	q.pendingDestroy[entity] = struct{}{}
	q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entity: entity})
}

// enqueueSet records value as the pending contents of the entity's component.
func (q *opQueue) enqueueSet(entity ID, ct *componentType, value reflect.Value) {
	if _, doomed := q.pendingDestroy[entity]; doomed {
		return
	}
	key := opKey{entity: entity, comp: ct.info.ID}
	if idx, exists := q.pendingSets[key]; exists {
		q.componentOps[idx].value.Set(value)
		return
	}
	scratch := reflect.New(ct.typ).Elem()
	scratch.Set(value)
	q.pendingSets[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{typ: opSetComponent, entity: entity, comp: ct.info.ID, value: scratch})
}

// scratch hands out a writable zero value that lands in storage on replay.
// Repeated calls for the same entity and component share one value.
func (q *opQueue) scratch(entity ID, ct *componentType) unsafe.Pointer {
	if ct.typ == nil {
		q.enqueueComponentOp(operation{typ: opAddComponent, entity: entity, comp: ct.info.ID})
		return zeroPtr()
	}
	key := opKey{entity: entity, comp: ct.info.ID}
	if idx, exists := q.pendingSets[key]; exists {
		return q.componentOps[idx].value.Addr().UnsafePointer()
	}
	value := reflect.New(ct.typ).Elem()
	if _, doomed := q.pendingDestroy[entity]; !doomed {
		q.pendingSets[key] = len(q.componentOps)
		q.componentOps = append(q.componentOps, operation{typ: opSetComponent, entity: entity, comp: ct.info.ID, value: value})
	}
	return value.Addr().UnsafePointer()
}

// replay applies every queued operation to w. Operations queued while replaying
// run in a later round.
func (q *opQueue) replay(w *World) {
	for !q.empty() {
		componentOps, destroyOps := q.componentOps, q.destroyOps
		doomed := q.pendingDestroy
		q.componentOps, q.destroyOps = nil, nil
		q.pendingDestroy = make(map[ID]struct{})
		clear(q.pendingSets)

		for _, op := range componentOps {
			if _, skip := doomed[op.entity]; skip || op.typ == opNone {
				continue
			}
			w.apply(op)
		}
		for _, op := range destroyOps {
			w.apply(op)
		}
	}
}

func (q *opQueue) clear() {
	q.componentOps = nil
	q.destroyOps = nil
	clear(q.pendingDestroy)
	clear(q.pendingSets)
}

func (w *World) apply(op operation) {
	if !w.IsValid(op.entity) {
		return
	}
	switch op.typ {
	case opAddComponent:
		w.Add(op.entity, op.comp)
	case opRemoveComponent:
		w.Remove(op.entity, op.comp)
	case opSetComponent:
		ct, ok := w.components[op.comp]
		if !ok {
			return
		}
		if w.deferring() {
			w.opQueue.enqueueSet(op.entity, ct, op.value)
			return
		}
		w.assign(op.entity, ct, op.value)
	case opSetName:
		if err := w.SetName(op.entity, op.name); err != nil {
			w.logger.Warn().Err(err).Uint64("entity_id", uint64(op.entity)).Msg("deferred rename dropped")
		}
	case opSetParent:
		if err := w.SetParent(op.entity, op.parent); err != nil {
			w.logger.Warn().Err(err).Uint64("entity_id", uint64(op.entity)).Msg("deferred reparent dropped")
		}
	case opDestroy:
		w.Delete(op.entity)
	}
}
