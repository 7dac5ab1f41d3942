// ==============================================================================================
// FILE: evaluator/evaluator_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for specific evaluation rules.
//          Validates simple arithmetic, comparisons, and basic statement execution.
//          Also contains helper functions shared by the other evaluator tests.
// ==============================================================================================

package evaluator

import (
	"testing"

	"molua/object"
)

// testEval runs src against a fresh Interpreter and returns the chunk's
// result value. Any evaluation error fails the calling test immediately.
func testEval(t *testing.T, src string) object.Value {
	t.Helper()
	v, err := Execute(src)
	if err != nil {
		t.Fatalf("unexpected evaluation error for %q: %v", src, err)
	}
	return v
}

func testNumber(t *testing.T, v object.Value, expected float64) {
	t.Helper()
	n, ok := v.(object.Number)
	if !ok {
		t.Fatalf("expected object.Number, got %T (%v)", v, v)
	}
	if float64(n) != expected {
		t.Errorf("expected %v, got %v", expected, float64(n))
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"return 1 + 2", 3},
		{"return 10 - 4", 6},
		{"return 3 * 4", 12},
		{"return 7 / 2", 3.5},
		{"return 7 % 2", 1},
		{"return -5 + 10", 5},
		{"return 2 + 3 * 4", 14},
		{"return (2 + 3) * 4", 20},
	}
	for _, tt := range tests {
		testNumber(t, testEval(t, tt.input), tt.expected)
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"return 1 < 2", true},
		{"return 2 < 1", false},
		{"return 1 <= 1", true},
		{"return 2 > 1", true},
		{"return 1 == 1", true},
		{"return 1 ~= 2", true},
		{`return "a" < "b"`, true},
	}
	for _, tt := range tests {
		v := testEval(t, tt.input)
		b, ok := v.(object.Boolean)
		if !ok {
			t.Fatalf("expected object.Boolean, got %T", v)
		}
		if bool(b) != tt.expected {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.expected, bool(b))
		}
	}
}

func TestEvalLogicalOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Value
	}{
		{"return nil and 1", object.Nil{}},
		{"return false and 1", object.Boolean(false)},
		{"return 1 and 2", object.Number(2)},
		{"return nil or 5", object.Number(5)},
		{"return 1 or 2", object.Number(1)},
		{"return not nil", object.Boolean(true)},
		{"return not 0", object.Boolean(false)}, // 0 is truthy
	}
	for _, tt := range tests {
		v := testEval(t, tt.input)
		if v != tt.expected {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.expected, v)
		}
	}
}

func TestEvalLocalAndAssign(t *testing.T) {
	v := testEval(t, `
local x = 1
x = x + 1
return x
`)
	testNumber(t, v, 2)
}

func TestEvalWhileLoop(t *testing.T) {
	v := testEval(t, `
local i = 0
local sum = 0
while i < 5 do
  sum = sum + i
  i = i + 1
end
return sum
`)
	testNumber(t, v, 10)
}

func TestEvalNumericFor(t *testing.T) {
	v := testEval(t, `
local sum = 0
for i = 1, 5 do
  sum = sum + i
end
return sum
`)
	testNumber(t, v, 15)
}

func TestEvalStringConcat(t *testing.T) {
	v := testEval(t, `return "a" .. "b" .. 1`)
	s, ok := v.(object.String)
	if !ok {
		t.Fatalf("expected object.String, got %T", v)
	}
	if string(s) != "ab1" {
		t.Errorf("expected 'ab1', got %q", s)
	}
}

func TestEvalTableIndexing(t *testing.T) {
	v := testEval(t, `
local t = {10, 20, 30}
return t[2]
`)
	testNumber(t, v, 20)
}

func TestEvalTableDotAndLen(t *testing.T) {
	v := testEval(t, `
local t = {}
t.x = 5
return t.x
`)
	testNumber(t, v, 5)

	v = testEval(t, `
local t = {1, 2, 3}
return #t
`)
	testNumber(t, v, 3)
}
