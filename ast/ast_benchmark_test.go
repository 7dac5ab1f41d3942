// ==============================================================================================
// FILE: ast/ast_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the Abstract Syntax Tree (AST).
//          These tests measure the efficiency of the .String() methods, which involves
//          recursive tree traversal and string concatenation.
// ==============================================================================================

package ast

import (
	"testing"

	"molua/token"
)

// BenchmarkBinaryExpressionString measures the allocation and speed cost of
// converting a binary expression (e.g., "100 + 200") back to its string representation.
func BenchmarkBinaryExpressionString(b *testing.B) {
	left := &NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: "100"}, Value: 100}
	right := &NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: "200"}, Value: 200}
	expr := &BinaryExpression{
		Token:    token.Token{Type: token.PLUS, Literal: "+"},
		Left:     left,
		Operator: "+",
		Right:    right,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = expr.String()
	}
}

// BenchmarkLargeChunkString measures the performance of the root Chunk node
// when iterating over a large slice of statements, simulating the overhead
// of printing a moderately sized source file.
func BenchmarkLargeChunkString(b *testing.B) {
	count := 1000
	chunk := &Chunk{Body: &Block{Statements: make([]Statement, count)}}

	// print(1)
	stmt := &ExpressionStatement{
		Token: token.Token{Type: token.IDENT, Literal: "print"},
		Expression: &CallExpression{
			Token: token.Token{Type: token.LPAREN, Literal: "("},
			Function: &Identifier{
				Token: token.Token{Type: token.IDENT, Literal: "print"},
				Value: "print",
			},
			Args: []Expression{
				&NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: "1"}, Value: 1},
			},
		},
	}

	for i := 0; i < count; i++ {
		chunk.Body.Statements[i] = stmt
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chunk.String()
	}
}
