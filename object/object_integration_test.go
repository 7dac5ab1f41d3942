// ==============================================================================================
// FILE: object/object_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the object system. Validates the interaction
//          between tables, environments, metatables, and heap-registered values.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationTableStoredInEnvironment(t *testing.T) {
	t1 := NewTable()
	require.NoError(t, t1.RawSet(String("name"), String("Alice")))
	require.NoError(t, t1.RawSet(String("age"), Number(30)))

	env := NewEnvironment()
	env.PushNew()
	env.DeclareLocal("user", t1)

	v := env.Find("user")
	retrieved, ok := v.(*Table)
	require.True(t, ok, "value is not a *Table")
	assert.Equal(t, String("Alice"), retrieved.RawGet(String("name")))
}

// TestIntegrationTableAsMapKey verifies that using Go's own map[Value]Value
// (no separate hashing machinery) correctly round-trips a value stored under
// a string key looked up via a freshly constructed, equal string.
func TestIntegrationTableAsMapKey(t *testing.T) {
	m := NewTable()
	key1 := String("key")
	require.NoError(t, m.RawSet(key1, Number(100)))

	env := NewEnvironment()
	env.PushNew()
	env.DeclareLocal("myMap", m)

	v := env.Find("myMap")
	retrieved, ok := v.(*Table)
	require.True(t, ok, "value is not a *Table")

	lookupKey := String("key") // distinct allocation, equal value
	assert.Equal(t, Number(100), retrieved.RawGet(lookupKey),
		"table lookup via an equal-but-distinct string key should succeed")
}

func TestIntegrationMetatableRoundTrip(t *testing.T) {
	base := NewTable()
	mt := NewTable()
	require.NoError(t, mt.RawSet(String("__index"), base))

	derived := NewTable()
	derived.SetMetatable(mt)

	assert.Same(t, mt, derived.Metatable(), "Metatable() did not return the installed metatable")
}

func TestIntegrationHeapSweepsUnreachableTable(t *testing.T) {
	h := NewHeap()
	root := h.NewTable()
	orphan := h.NewTable()
	_ = orphan // kept only to be swept; never rooted

	swept := h.Collect([]*Table{root})
	require.Equal(t, 1, swept, "expected exactly 1 unreachable table swept")
	assert.Equal(t, 1, h.Live(), "expected 1 live table after sweep")
}
