package engine

import (
	"iter"
	"reflect"
	"strconv"
	"unsafe"
)

// ID identifies an entity. Component and system ids are entity ids too.
type ID uint64

// NullID is never minted and names nothing.
const NullID ID = 0

// Prefab is the builtin tag marking template entities. Filters skip archetypes
// holding it unless one of their terms names it.
const Prefab ID = 1

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Access annotates how a term's column is used by whoever iterates it.
type Access uint8

const (
	// AccessDefault lets the builder pick; the engine treats it as AccessInOut.
	AccessDefault Access = iota
	AccessInOut
	AccessIn
	AccessOut
)

func (a Access) String() string {
	switch a {
	case AccessIn:
		return "in"
	case AccessOut:
		return "out"
	default:
		return "inout"
	}
}

type Engine interface {
	Fini() error
	Progress(deltaTime float32) bool
	Quit()
	ShouldQuit() bool
	DeltaTime() float32
	FrameCount() uint64

	NewID() ID
	IsValid(id ID) bool
	Delete(id ID)
	Type(id ID) []ID

	LookupPath(scope ID, path, sep string, recursive bool) ID
	Name(id ID) string
	SetName(id ID, name string) error
	Path(id ID, sep string) string
	SetParent(child, parent ID) error
	Parent(id ID) ID

	NewComponent(desc ComponentDesc) (ID, error)
	ComponentInfo(id ID) (ComponentInfo, bool)
	Has(entity, component ID) bool
	Add(entity, component ID)
	Remove(entity, component ID)
	Get(entity, component ID) unsafe.Pointer
	GetMut(entity, component ID) unsafe.Pointer

	BuildFilter(terms []Term) (Filter, error)
	BuildQuery(terms []Term) (Filter, error)

	NewSystem(desc SystemDesc) (ID, error)
	RunSystem(id ID, deltaTime float32) error
	SetSystemEnabled(id ID, enabled bool) error
	Systems() []SystemInfo

	Context() any
	SetContext(ctx any)

	AsyncStage() Engine
	IsAsyncStage() bool
	Merge() error
	FreeAsyncStage()
}

type Filter interface {
	Terms() []Term
	Rows() iter.Seq[Row]
	Count() int
}

// ComponentDesc describes the storage layout of a component. Type is optional;
// when set it becomes the column element type so the garbage collector sees any
// pointers the component holds.
type ComponentDesc struct {
	Name   string
	Symbol string
	Size   uintptr
	Align  uintptr
	Type   reflect.Type
}

type ComponentInfo struct {
	ID     ID
	Name   string
	Symbol string
	Size   uintptr
	Align  uintptr
}

type Term struct {
	ID     ID
	Access Access
}

// Row is one matched entity. Columns line up with the filter's terms and both
// the row and its column slice are only valid until the iterator advances.
type Row struct {
	Entity  ID
	Columns []unsafe.Pointer
}

type SystemFunc func(world Engine, deltaTime float32, rows iter.Seq[Row])

type SystemDesc struct {
	Name  string
	Terms []Term
	Run   SystemFunc
}

type SystemInfo struct {
	ID      ID
	Name    string
	Terms   []Term
	Enabled bool
}
