package dock

import (
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"

	"github.com/TheBitDrifter/dock/engine"
)

var ErrWorldClosed = eris.New("world already closed")

// SizeMismatchError reports untyped data whose length differs from the
// registered component size. Storage is left untouched.
type SizeMismatchError struct {
	Component engine.ID
	Expected  int
	Actual    int
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("component %v holds %d bytes, got %d", e.Component, e.Expected, e.Actual)
}

type ComponentNotRegisteredError struct {
	Type reflect.Type
}

func (e ComponentNotRegisteredError) Error() string {
	return fmt.Sprintf("component type %v is not registered", e.Type)
}

type BuilderReusedError struct {
	Builder string
}

func (e BuilderReusedError) Error() string {
	return fmt.Sprintf("%s already built", e.Builder)
}

// AccessIndexError reports a system builder access override for a position
// outside its component tuple.
type AccessIndexError struct {
	Index int
	Len   int
}

func (e AccessIndexError) Error() string {
	return fmt.Sprintf("access index %d out of range for %d components", e.Index, e.Len)
}
