// ==============================================================================================
// FILE: object/object_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for Value methods. Verifies that Display() produces correct
//          string representations and Type() returns the correct constants.
// ==============================================================================================

package object

import (
	"math"
	"testing"
)

func TestValueDisplay(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{Number(10), "10"},
		{Number(3.14), "3.14"},
		{Boolean(true), "true"},
		{Boolean(false), "false"},
		{String("hello"), "hello"},
		{Nil{}, "nil"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{Number(math.NaN()), "nan"},
	}

	for _, tt := range tests {
		if got := tt.v.Display(); got != tt.expected {
			t.Errorf("Display() wrong. expected=%q, got=%q", tt.expected, got)
		}
	}
}

func TestValueType(t *testing.T) {
	tests := []struct {
		v            Value
		expectedType ValueType
	}{
		{Number(5), NUMBER},
		{Boolean(true), BOOLEAN},
		{String("x"), STRING},
		{Nil{}, NIL},
		{NewTable(), TABLE},
	}

	for _, tt := range tests {
		if tt.v.Type() != tt.expectedType {
			t.Errorf("Type() wrong. expected=%q, got=%q", tt.expectedType, tt.v.Type())
		}
	}
}

// TestEqualsIsNativeComparison verifies that Equals implements structural
// equality for primitives and identity equality for pointer-backed values
// entirely through Go's native == on the Value interface.
func TestEqualsIsNativeComparison(t *testing.T) {
	if !Equals(Number(5), Number(5)) {
		t.Error("equal numbers should compare equal")
	}
	if Equals(Number(5), Number(6)) {
		t.Error("distinct numbers should not compare equal")
	}
	if !Equals(String("hi"), String("hi")) {
		t.Error("equal strings should compare equal")
	}

	t1, t2 := NewTable(), NewTable()
	if Equals(t1, t2) {
		t.Error("two distinct table allocations should not compare equal")
	}
	if !Equals(t1, t1) {
		t.Error("a table should compare equal to itself")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Nil{}, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Number(0), true}, // zero is truthy, unlike many other languages
		{String(""), true},
		{NewTable(), true},
	}
	for _, tt := range tests {
		if got := Truthy(tt.v); got != tt.want {
			t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsCallable(t *testing.T) {
	if IsCallable(Number(1)) {
		t.Error("a number must not be callable")
	}
	fn := &Function{}
	if !IsCallable(fn) {
		t.Error("a Function must be callable")
	}
	nf := &NativeFunction{}
	if !IsCallable(nf) {
		t.Error("a NativeFunction must be callable")
	}
}
