// ==============================================================================================
// FILE: ast/ast_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the AST package.
//          Tests extreme cases like empty chunks and deep nesting to ensure
//          no panics or stack overflows occur during stringification.
// ==============================================================================================

package ast

import (
	"testing"

	"molua/token"
)

// TestDeeplyNestedExpressions creates a highly recursive expression
// (not not not ... 1) to ensure the AST doesn't crash on deep traversal.
func TestDeeplyNestedExpressions(t *testing.T) {
	depth := 100
	var expr Expression = &NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: "1"}, Value: 1}

	for i := 0; i < depth; i++ {
		expr = &UnaryExpression{
			Token:    token.Token{Type: token.NOT, Literal: "not"},
			Operator: "not",
			Right:    expr,
		}
	}

	if expr.String() == "" {
		t.Fatal("nested expression produced empty string")
	}
}

// TestEmptyChunkSanity verifies that an empty chunk produces an empty string
// rather than a nil pointer dereference.
func TestEmptyChunkSanity(t *testing.T) {
	chunk := &Chunk{Body: &Block{Statements: []Statement{}}}
	if chunk.String() != "" {
		t.Fatalf("expected empty string for empty chunk, got %s", chunk.String())
	}
}

// TestEmptyReturnSanity verifies a bare `return` with no values stringifies
// without panicking on a nil Values slice.
func TestEmptyReturnSanity(t *testing.T) {
	ret := &ReturnStatement{Token: token.Token{Type: token.RETURN, Literal: "return"}}
	if ret.String() != "return " {
		t.Fatalf("expected 'return ', got %q", ret.String())
	}
}
