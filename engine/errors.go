package engine

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	ErrFinalized        = eris.New("engine world already finalized")
	ErrEmptySystemName  = eris.New("system name must not be empty")
	ErrNilSystemFunc    = eris.New("system run function must not be nil")
	ErrStageFreed       = eris.New("async stage already freed")
	ErrComponentDeleted = eris.New("component entities cannot be deleted")
)

type UnknownComponentError struct {
	ID ID
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("id %v is not a registered component", e.ID)
}

type DuplicateTermError struct {
	ID ID
}

func (e DuplicateTermError) Error() string {
	return fmt.Sprintf("component %v appears more than once in the term list", e.ID)
}

type ComponentLimitError struct {
	Max int
}

func (e ComponentLimitError) Error() string {
	return fmt.Sprintf("component limit reached (%d)", e.Max)
}

type LayoutError struct {
	Size, Align uintptr
	Reason      string
}

func (e LayoutError) Error() string {
	return fmt.Sprintf("invalid component layout (size %d, align %d): %s", e.Size, e.Align, e.Reason)
}

type NameConflictError struct {
	Name     string
	Scope    ID
	Existing ID
}

func (e NameConflictError) Error() string {
	return fmt.Sprintf("name %q already used by %v in scope %v", e.Name, e.Existing, e.Scope)
}

type DuplicateSystemError struct {
	Name string
}

func (e DuplicateSystemError) Error() string {
	return fmt.Sprintf("system %q is already registered", e.Name)
}

type InvalidEntityError struct {
	ID ID
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %v is not alive", e.ID)
}

type StageError struct {
	Op string
}

func (e StageError) Error() string {
	return fmt.Sprintf("%s is not supported on an async stage", e.Op)
}
