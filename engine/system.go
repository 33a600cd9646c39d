package engine

import (
	"time"

	"github.com/TheBitDrifter/dock/statsd"
)

type system struct {
	id      ID
	name    string
	query   *filter
	run     SystemFunc
	enabled bool
}

// systemManager keeps systems in registration order, which is also the order
// Progress runs them in.
type systemManager struct {
	ordered []*system
	byID    map[ID]*system
	byName  map[string]*system
}

func newSystemManager() *systemManager {
	return &systemManager{
		byID:   make(map[ID]*system),
		byName: make(map[string]*system),
	}
}

func (m *systemManager) forget(id ID) {
	s, ok := m.byID[id]
	if !ok {
		return
	}
	delete(m.byID, id)
	delete(m.byName, s.name)
	for i, other := range m.ordered {
		if other == s {
			m.ordered = append(m.ordered[:i], m.ordered[i+1:]...)
			break
		}
	}
}

// NewSystem registers a named system backed by a cached query. The system is
// an entity named desc.Name in the root scope.
func (w *World) NewSystem(desc SystemDesc) (ID, error) {
	if w.finalized {
		return NullID, ErrFinalized
	}
	if desc.Name == "" {
		return NullID, ErrEmptySystemName
	}
	if desc.Run == nil {
		return NullID, ErrNilSystemFunc
	}
	if _, exists := w.systems.byName[desc.Name]; exists {
		return NullID, DuplicateSystemError{Name: desc.Name}
	}
	query, err := w.buildFilter(desc.Terms, true)
	if err != nil {
		return NullID, err
	}
	id := w.NewID()
	if err := w.setName(id, desc.Name); err != nil {
		delete(w.records, id)
		return NullID, err
	}
	s := &system{id: id, name: desc.Name, query: query, run: desc.Run, enabled: true}
	w.systems.ordered = append(w.systems.ordered, s)
	w.systems.byID[id] = s
	w.systems.byName[desc.Name] = s

	terms := make([]uint64, len(query.terms))
	for i, term := range query.terms {
		terms[i] = uint64(term.ID)
	}
	w.logger.Debug().Str("system", desc.Name).Uints64("terms", terms).Msg("system registered")
	return id, nil
}

func (w *World) RunSystem(id ID, deltaTime float32) error {
	if w.finalized {
		return ErrFinalized
	}
	s, ok := w.systems.byID[id]
	if !ok {
		return InvalidEntityError{ID: id}
	}
	w.runSystem(s, deltaTime)
	return nil
}

func (w *World) SetSystemEnabled(id ID, enabled bool) error {
	s, ok := w.systems.byID[id]
	if !ok {
		return InvalidEntityError{ID: id}
	}
	s.enabled = enabled
	return nil
}

func (w *World) Systems() []SystemInfo {
	infos := make([]SystemInfo, 0, len(w.systems.ordered))
	for _, s := range w.systems.ordered {
		infos = append(infos, SystemInfo{
			ID:      s.id,
			Name:    s.name,
			Terms:   s.query.Terms(),
			Enabled: s.enabled,
		})
	}
	return infos
}

// runSystem holds the world lock for the whole call so changes made by the
// system land once it returns.
func (w *World) runSystem(s *system, deltaTime float32) {
	start := time.Now()
	w.lock()
	defer func() {
		w.unlock()
		statsd.TimeSystem(start, s.name)
	}()
	s.run(w, deltaTime, s.query.Rows())
}

// Progress runs every enabled system once. A zero deltaTime is replaced by the
// wall time elapsed since the previous frame.
func (w *World) Progress(deltaTime float32) bool {
	if w.finalized {
		return false
	}
	now := time.Now()
	if deltaTime == 0 && !w.lastFrame.IsZero() {
		deltaTime = float32(now.Sub(w.lastFrame).Seconds())
	}
	w.lastFrame = now
	w.deltaTime = deltaTime

	for _, s := range append([]*system(nil), w.systems.ordered...) {
		if !s.enabled {
			continue
		}
		w.runSystem(s, deltaTime)
	}
	w.frameCount++
	statsd.TimeFrame(now)
	return !w.quit
}
