// ==============================================================================================
// FILE: object/table.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The Table value: a mapping from Value keys to Value values, doubling as
//          both user-level tables and environment frames (§4.4.1/§4.4.5).
// ==============================================================================================

package object

import (
	"fmt"
	"math"
)

// Table is a heap-allocated mapping from Value keys to Value values. Its own
// *Table pointer is the opaque handle spec.md describes: identity already
// gives the right equality/hashing semantics, so no separate handle type is
// needed. Environment frames are ordinary Tables that are never registered
// with a Heap (see heap.go), so they are walked during GC but never swept.
type Table struct {
	fields map[Value]Value
}

// NewTable allocates an empty, unregistered table. Use Heap.NewTable for
// tables that must participate in garbage collection (i.e. every table a
// molua program can observe through a Value).
func NewTable() *Table {
	return &Table{fields: make(map[Value]Value)}
}

func (t *Table) Type() ValueType { return TABLE }
func (t *Table) Display() string { return "<table>" }

// RawGet looks up key directly, ignoring any __index metamethod.
func (t *Table) RawGet(key Value) Value {
	if v, ok := t.fields[key]; ok {
		return v
	}
	return Nil{}
}

// RawSet stores key/val directly, ignoring any __newindex metamethod. Nil
// and NaN keys are rejected; every other key/value combination, including a
// Nil value, is accepted and round-trips through RawGet.
func (t *Table) RawSet(key, val Value) error {
	if _, ok := key.(Nil); ok {
		return fmt.Errorf("table index is nil")
	}
	if n, ok := key.(Number); ok && math.IsNaN(float64(n)) {
		return fmt.Errorf("table index is NaN")
	}
	t.fields[key] = val
	return nil
}

// Metatable returns t's metatable, or nil if it has none.
func (t *Table) Metatable() *Table {
	if mt, ok := t.RawGet(MetaKey).(*Table); ok {
		return mt
	}
	return nil
}

// SetMetatable installs mt as t's metatable.
func (t *Table) SetMetatable(mt *Table) {
	t.fields[MetaKey] = mt
}

// Len implements the '#' operator: a forward scan from index 1 stopping at
// the first absent key. On sparse tables this finds some boundary, not
// necessarily the largest one, which spec.md explicitly permits.
func (t *Table) Len() int {
	n := 0
	for {
		if _, ok := t.fields[Number(float64(n+1))]; !ok {
			break
		}
		n++
	}
	return n
}

// Entries exposes the raw key/value pairs for GC marking and iteration helpers.
func (t *Table) Entries() map[Value]Value {
	return t.fields
}
