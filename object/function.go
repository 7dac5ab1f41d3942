// ==============================================================================================
// FILE: object/function.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The two callable Value kinds: user-defined Function and host-provided
//          NativeFunction (§3, §4.4.4).
// ==============================================================================================

package object

import "molua/ast"

// Function is an immutable record produced by evaluating a function literal:
// its parameter list, body, optional name, and the scope snapshot captured
// at the point of literal evaluation. Two Functions are never equal even if
// evaluated from the same literal twice (§8 invariant 7) because each one is
// a distinct *Function allocation.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Vararg     bool
	Body       *ast.Block
	Scope      []*Table // captured frames, shared by reference with the defining scope
}

func (f *Function) Type() ValueType { return FUNCTION }
func (f *Function) Display() string { return "<function>" }

// NativeFunction is a host-provided callable. Its Fn closes over whatever
// host state it needs (the interpreter, the output sink, the heap) rather
// than receiving it as a parameter, which keeps this package free of any
// dependency on the evaluator package that constructs these values. Fn
// returns a value list directly so builtins like assert (which returns its
// whole argument list) need no separate multi-value carrier.
type NativeFunction struct {
	Name string
	Fn   func(args []Value) ([]Value, error)
}

func (n *NativeFunction) Type() ValueType { return NATIVE_FUNCTION }
func (n *NativeFunction) Display() string { return "<native function>" }
