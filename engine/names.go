package engine

import (
	"slices"
	"strconv"
	"strings"
)

// hierarchy indexes entity names per parent scope. The root scope is NullID.
type hierarchy struct {
	names    map[ID]string
	parents  map[ID]ID
	scopes   map[ID]map[string]ID
	children map[ID]map[ID]struct{}
}

func newHierarchy() hierarchy {
	return hierarchy{
		names:    make(map[ID]string),
		parents:  make(map[ID]ID),
		scopes:   make(map[ID]map[string]ID),
		children: make(map[ID]map[ID]struct{}),
	}
}

func (h *hierarchy) lookup(scope ID, name string) ID {
	return h.scopes[scope][name]
}

func (h *hierarchy) index(scope ID, name string, id ID) {
	named, ok := h.scopes[scope]
	if !ok {
		named = make(map[string]ID)
		h.scopes[scope] = named
	}
	named[name] = id
}

func (h *hierarchy) unindex(id ID) {
	name, ok := h.names[id]
	if !ok {
		return
	}
	scope := h.parents[id]
	if h.scopes[scope][name] == id {
		delete(h.scopes[scope], name)
	}
}

func (h *hierarchy) childrenOf(id ID) []ID {
	kids := make([]ID, 0, len(h.children[id]))
	for child := range h.children[id] {
		kids = append(kids, child)
	}
	slices.Sort(kids)
	return kids
}

// detach moves child to the root scope, dropping its name if the root already
// uses it.
func (h *hierarchy) detach(child ID) {
	parent, ok := h.parents[child]
	if !ok {
		return
	}
	h.unindex(child)
	delete(h.children[parent], child)
	delete(h.parents, child)
	if name, named := h.names[child]; named {
		if h.lookup(NullID, name) != NullID {
			delete(h.names, child)
			return
		}
		h.index(NullID, name, child)
	}
}

func (h *hierarchy) forget(id ID) {
	h.unindex(id)
	if parent, ok := h.parents[id]; ok {
		delete(h.children[parent], id)
	}
	delete(h.names, id)
	delete(h.parents, id)
	delete(h.scopes, id)
	delete(h.children, id)
}

// SetName names id within its parent's scope. An empty name clears it.
func (w *World) SetName(id ID, name string) error {
	if !w.IsValid(id) {
		return InvalidEntityError{ID: id}
	}
	if w.deferring() {
		w.opQueue.enqueueComponentOp(operation{typ: opSetName, entity: id, name: name})
		return nil
	}
	return w.setName(id, name)
}

func (w *World) setName(id ID, name string) error {
	scope := w.hierarchy.parents[id]
	if name != "" {
		if existing := w.hierarchy.lookup(scope, name); existing != NullID && existing != id {
			return NameConflictError{Name: name, Scope: scope, Existing: existing}
		}
	}
	w.hierarchy.unindex(id)
	if name == "" {
		delete(w.hierarchy.names, id)
		return nil
	}
	w.hierarchy.names[id] = name
	w.hierarchy.index(scope, name, id)
	return nil
}

func (w *World) Name(id ID) string {
	return w.hierarchy.names[id]
}

// SetParent makes child a direct child of parent, carrying its name into the
// parent's scope. A NullID parent moves child back to the root.
func (w *World) SetParent(child, parent ID) error {
	if !w.IsValid(child) {
		return InvalidEntityError{ID: child}
	}
	if parent != NullID && !w.IsValid(parent) {
		return InvalidEntityError{ID: parent}
	}
	if w.deferring() {
		w.opQueue.enqueueComponentOp(operation{typ: opSetParent, entity: child, parent: parent})
		return nil
	}
	return w.setParent(child, parent)
}

func (w *World) setParent(child, parent ID) error {
	for p := parent; p != NullID; p = w.hierarchy.parents[p] {
		if p == child {
			return InvalidEntityError{ID: parent}
		}
	}
	name, named := w.hierarchy.names[child]
	if named {
		if existing := w.hierarchy.lookup(parent, name); existing != NullID && existing != child {
			return NameConflictError{Name: name, Scope: parent, Existing: existing}
		}
	}
	w.hierarchy.unindex(child)
	if old, ok := w.hierarchy.parents[child]; ok {
		delete(w.hierarchy.children[old], child)
	}
	if parent == NullID {
		delete(w.hierarchy.parents, child)
	} else {
		w.hierarchy.parents[child] = parent
		kids, ok := w.hierarchy.children[parent]
		if !ok {
			kids = make(map[ID]struct{})
			w.hierarchy.children[parent] = kids
		}
		kids[child] = struct{}{}
	}
	if named {
		w.hierarchy.index(parent, name, child)
	}
	return nil
}

func (w *World) Parent(id ID) ID {
	return w.hierarchy.parents[id]
}

// Path joins the names from the root down to id with sep. Unnamed entities
// appear as "#<id>".
func (w *World) Path(id ID, sep string) string {
	if !w.IsValid(id) {
		return ""
	}
	var parts []string
	for cur := id; cur != NullID; cur = w.hierarchy.parents[cur] {
		name, ok := w.hierarchy.names[cur]
		if !ok {
			name = cur.String()
		}
		parts = append(parts, name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, sep)
}

// LookupPath resolves a sep-delimited path. A leading sep anchors the path at
// the root. The first element is searched in scope and, when recursive, in each
// enclosing scope; later elements must be direct children.
func (w *World) LookupPath(scope ID, path, sep string, recursive bool) ID {
	if path == "" {
		return NullID
	}
	if sep != "" && strings.HasPrefix(path, sep) {
		scope, recursive = NullID, false
		path = path[len(sep):]
	}
	parts := []string{path}
	if sep != "" {
		parts = strings.Split(path, sep)
	}

	cur := w.findInScope(scope, parts[0])
	for cur == NullID && recursive && scope != NullID {
		scope = w.hierarchy.parents[scope]
		cur = w.findInScope(scope, parts[0])
	}
	for _, part := range parts[1:] {
		if cur == NullID {
			break
		}
		cur = w.findInScope(cur, part)
	}
	return cur
}

func (w *World) findInScope(scope ID, name string) ID {
	if raw, ok := strings.CutPrefix(name, "#"); ok {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || !w.IsValid(ID(n)) {
			return NullID
		}
		if w.hierarchy.parents[ID(n)] != scope {
			return NullID
		}
		return ID(n)
	}
	return w.hierarchy.lookup(scope, name)
}
