package engine

import "unsafe"

var _ Engine = &Stage{}

// Stage is an asynchronous view of a World. Reads see the world directly while
// structural changes wait in the stage's own queue until Merge.
type Stage struct {
	world   *World
	opQueue opQueue
	freed   bool
}

func newStage(w *World) *Stage {
	return &Stage{world: w, opQueue: newOpQueue()}
}

func (s *Stage) Fini() error {
	return StageError{Op: "Fini"}
}

func (s *Stage) Progress(float32) bool {
	return false
}

func (s *Stage) Quit()              { s.world.Quit() }
func (s *Stage) ShouldQuit() bool   { return s.world.ShouldQuit() }
func (s *Stage) DeltaTime() float32 { return s.world.DeltaTime() }
func (s *Stage) FrameCount() uint64 { return s.world.FrameCount() }
func (s *Stage) NewID() ID          { return s.world.NewID() }
func (s *Stage) IsValid(id ID) bool { return s.world.IsValid(id) }
func (s *Stage) Type(id ID) []ID    { return s.world.Type(id) }
func (s *Stage) Name(id ID) string  { return s.world.Name(id) }
func (s *Stage) Parent(id ID) ID    { return s.world.Parent(id) }
func (s *Stage) Context() any       { return s.world.Context() }
func (s *Stage) SetContext(ctx any) { s.world.SetContext(ctx) }
func (s *Stage) IsAsyncStage() bool { return true }
func (s *Stage) AsyncStage() Engine { return s.world.AsyncStage() }

func (s *Stage) LookupPath(scope ID, path, sep string, recursive bool) ID {
	return s.world.LookupPath(scope, path, sep, recursive)
}

func (s *Stage) Path(id ID, sep string) string {
	return s.world.Path(id, sep)
}

func (s *Stage) NewComponent(desc ComponentDesc) (ID, error) {
	return s.world.NewComponent(desc)
}

func (s *Stage) ComponentInfo(id ID) (ComponentInfo, bool) {
	return s.world.ComponentInfo(id)
}

func (s *Stage) Has(entity, component ID) bool {
	return s.world.Has(entity, component)
}

func (s *Stage) Get(entity, component ID) unsafe.Pointer {
	return s.world.Get(entity, component)
}

// GetMut writes through to storage when the component is already attached and
// hands out a queued scratch value otherwise.
func (s *Stage) GetMut(entity, component ID) unsafe.Pointer {
	if s.freed || !s.world.IsValid(entity) {
		return nil
	}
	ct := s.world.mustComponent(component)
	if p := s.world.Get(entity, component); p != nil {
		return p
	}
	return s.opQueue.scratch(entity, ct)
}

func (s *Stage) Add(entity, component ID) {
	s.world.mustComponent(component)
	if s.freed {
		return
	}
	s.opQueue.enqueueComponentOp(operation{typ: opAddComponent, entity: entity, comp: component})
}

func (s *Stage) Remove(entity, component ID) {
	s.world.mustComponent(component)
	if s.freed {
		return
	}
	s.opQueue.enqueueComponentOp(operation{typ: opRemoveComponent, entity: entity, comp: component})
}

func (s *Stage) Delete(id ID) {
	if s.freed || !s.world.IsValid(id) {
		return
	}
	s.opQueue.enqueueDestroy(id)
}

func (s *Stage) SetName(id ID, name string) error {
	if s.freed {
		return ErrStageFreed
	}
	if !s.world.IsValid(id) {
		return InvalidEntityError{ID: id}
	}
	s.opQueue.enqueueComponentOp(operation{typ: opSetName, entity: id, name: name})
	return nil
}

func (s *Stage) SetParent(child, parent ID) error {
	if s.freed {
		return ErrStageFreed
	}
	if !s.world.IsValid(child) {
		return InvalidEntityError{ID: child}
	}
	if parent != NullID && !s.world.IsValid(parent) {
		return InvalidEntityError{ID: parent}
	}
	s.opQueue.enqueueComponentOp(operation{typ: opSetParent, entity: child, parent: parent})
	return nil
}

func (s *Stage) BuildFilter(terms []Term) (Filter, error) {
	return s.world.BuildFilter(terms)
}

func (s *Stage) BuildQuery(terms []Term) (Filter, error) {
	return s.world.BuildQuery(terms)
}

func (s *Stage) NewSystem(desc SystemDesc) (ID, error) {
	return s.world.NewSystem(desc)
}

func (s *Stage) RunSystem(id ID, deltaTime float32) error {
	return s.world.RunSystem(id, deltaTime)
}

func (s *Stage) SetSystemEnabled(id ID, enabled bool) error {
	return s.world.SetSystemEnabled(id, enabled)
}

func (s *Stage) Systems() []SystemInfo {
	return s.world.Systems()
}

// Merge replays the stage's queue into the world. When the world is itself
// iterating, the operations join the world's own deferred queue.
func (s *Stage) Merge() error {
	if s.freed {
		return ErrStageFreed
	}
	if s.world.finalized {
		return ErrFinalized
	}
	s.opQueue.replay(s.world)
	return nil
}

// FreeAsyncStage drops every pending operation. The stage is unusable afterwards.
func (s *Stage) FreeAsyncStage() {
	if s.freed {
		return
	}
	s.opQueue.clear()
	s.freed = true
}
