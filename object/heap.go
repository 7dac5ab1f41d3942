// ==============================================================================================
// FILE: object/heap.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The table heap and its mark-sweep collector (§4.4.5).
// ==============================================================================================

package object

// Heap owns every table a molua program can reach through a Value::Table.
// Environment frames are deliberately never registered here (see table.go):
// they are still visited as roots/reachable nodes during Collect, but they
// are never candidates for sweeping.
type Heap struct {
	tables map[*Table]struct{}
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{tables: make(map[*Table]struct{})}
}

// NewTable allocates a fresh table and registers it with the heap.
func (h *Heap) NewTable() *Table {
	t := NewTable()
	h.tables[t] = struct{}{}
	return t
}

// Live reports how many tables the heap currently holds.
func (h *Heap) Live() int {
	return len(h.tables)
}

// Collect runs one synchronous mark-sweep pass. roots are the tables that
// are always reachable: _G and every frame currently on the evaluator's
// scope stack. Collect returns the number of tables swept.
func (h *Heap) Collect(roots []*Table) int {
	marked := make(map[*Table]struct{})
	var mark func(t *Table)
	mark = func(t *Table) {
		if t == nil {
			return
		}
		if _, ok := marked[t]; ok {
			return
		}
		marked[t] = struct{}{}
		for k, v := range t.fields {
			markValue(k, mark)
			markValue(v, mark)
		}
	}
	for _, r := range roots {
		mark(r)
	}

	swept := 0
	for t := range h.tables {
		if _, ok := marked[t]; !ok {
			delete(h.tables, t)
			swept++
		}
	}
	return swept
}

// markValue visits a single Value during Collect: tables are marked
// directly, and a function's captured frames are walked too, since a live
// function reachable from the roots keeps its whole closure alive.
func markValue(v Value, mark func(*Table)) {
	switch vv := v.(type) {
	case *Table:
		mark(vv)
	case *Function:
		for _, frame := range vv.Scope {
			mark(frame)
		}
	}
}
