package engine

import (
	"reflect"
	"unsafe"
)

// zeroSized backs the pointer handed out for components without storage.
var zeroSized struct{}

func zeroPtr() unsafe.Pointer {
	return unsafe.Pointer(&zeroSized)
}

// column is the storage of one component within one archetype. The backing
// slice is allocated through reflect with the component's element type so the
// collector keeps scanning pointer fields.
type column struct {
	typ  reflect.Type
	size uintptr
	data reflect.Value
	base unsafe.Pointer
}

func newColumn(typ reflect.Type, capacity int) *column {
	c := &column{
		typ:  typ,
		size: typ.Size(),
		data: reflect.MakeSlice(reflect.SliceOf(typ), 0, capacity),
	}
	c.base = c.data.UnsafePointer()
	return c
}

func (c *column) len() int {
	return c.data.Len()
}

func (c *column) ptr(row int) unsafe.Pointer {
	return unsafe.Add(c.base, uintptr(row)*c.size)
}

// push appends a zero value and returns its row. Growing reallocates, which
// invalidates every pointer previously handed out for this column.
func (c *column) push() int {
	n := c.data.Len()
	if n == c.data.Cap() {
		c.reserve(max(2*n, columnCapacity))
	}
	c.data = c.data.Slice(0, n+1)
	return n
}

func (c *column) reserve(capacity int) {
	grown := reflect.MakeSlice(c.data.Type(), c.data.Len(), capacity)
	reflect.Copy(grown, c.data)
	c.data = grown
	c.base = grown.UnsafePointer()
}

// swapRemove moves the last row into row and zeroes the vacated slot.
func (c *column) swapRemove(row int) {
	last := c.data.Len() - 1
	if row != last {
		c.data.Index(row).Set(c.data.Index(last))
	}
	c.data.Index(last).SetZero()
	c.data = c.data.Slice(0, last)
}

func (c *column) copyFrom(row int, src *column, srcRow int) {
	c.data.Index(row).Set(src.data.Index(srcRow))
}

func (c *column) set(row int, value reflect.Value) {
	c.data.Index(row).Set(value)
}

// columnType picks the element type for a component layout. Components that
// only describe size and alignment get an array of the integer type matching
// their alignment.
func columnType(desc ComponentDesc) (reflect.Type, error) {
	if desc.Type != nil {
		if desc.Type.Size() != desc.Size || uintptr(desc.Type.Align()) != desc.Align {
			return nil, LayoutError{Size: desc.Size, Align: desc.Align, Reason: "does not match type " + desc.Type.String()}
		}
		if desc.Size == 0 {
			return nil, nil
		}
		return desc.Type, nil
	}
	if desc.Align == 0 || desc.Align&(desc.Align-1) != 0 {
		return nil, LayoutError{Size: desc.Size, Align: desc.Align, Reason: "alignment must be a power of two"}
	}
	if desc.Align > 8 {
		return nil, LayoutError{Size: desc.Size, Align: desc.Align, Reason: "alignment above 8 is not supported"}
	}
	if desc.Size%desc.Align != 0 {
		return nil, LayoutError{Size: desc.Size, Align: desc.Align, Reason: "size must be a multiple of alignment"}
	}
	if desc.Size == 0 {
		return nil, nil
	}
	var word reflect.Type
	switch desc.Align {
	case 1:
		word = reflect.TypeFor[uint8]()
	case 2:
		word = reflect.TypeFor[uint16]()
	case 4:
		word = reflect.TypeFor[uint32]()
	default:
		word = reflect.TypeFor[uint64]()
	}
	return reflect.ArrayOf(int(desc.Size/desc.Align), word), nil
}
