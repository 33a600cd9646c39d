package engine

import "unsafe"

type cursor struct {
	filter *filter

	matched      []*archetype
	columns      []*column
	archIndex    int
	entityIndex  int
	remaining    int
	initialized  bool
	rowColumns   []unsafe.Pointer
	currentArche *archetype
}

func newCursor(f *filter) *cursor {
	return &cursor{
		filter:     f,
		columns:    make([]*column, len(f.terms)),
		rowColumns: make([]unsafe.Pointer, len(f.terms)),
	}
}

// Next advances to the next matched row.
func (c *cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	} else {
		c.entityIndex++
	}
	for c.currentArche != nil {
		if c.entityIndex < c.remaining {
			return true
		}
		c.archIndex++
		c.entityIndex = 0
		c.bind()
	}
	return false
}

func (c *cursor) initialize() {
	c.filter.world.lock()
	c.matched = c.filter.archetypes()
	c.archIndex = 0
	c.entityIndex = 0
	c.bind()
	c.initialized = true
}

// bind points the cursor at matched[archIndex], or at nothing once exhausted.
func (c *cursor) bind() {
	for c.archIndex < len(c.matched) {
		arch := c.matched[c.archIndex]
		if arch.length() == 0 {
			c.archIndex++
			continue
		}
		c.currentArche = arch
		c.remaining = arch.length()
		for i, term := range c.filter.terms {
			c.columns[i], _ = arch.column(term.ID)
		}
		return
	}
	c.currentArche = nil
	c.remaining = 0
}

// Row returns the current row. Its column slice is reused by the next call.
func (c *cursor) Row() Row {
	for i, col := range c.columns {
		if col == nil {
			c.rowColumns[i] = zeroPtr()
			continue
		}
		c.rowColumns[i] = col.ptr(c.entityIndex)
	}
	return Row{
		Entity:  c.currentArche.entities[c.entityIndex],
		Columns: c.rowColumns,
	}
}

// Reset releases the world lock taken by the first Next.
func (c *cursor) Reset() {
	if !c.initialized {
		return
	}
	c.archIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.matched = nil
	c.currentArche = nil
	c.initialized = false
	c.filter.world.unlock()
}
