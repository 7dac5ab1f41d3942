// ==============================================================================================
// FILE: parser/parser_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for individual parser components.
//          Verifies that specific grammar rules (assignments, math, logic) are parsed
//          correctly into isolated AST nodes.
// ==============================================================================================

package parser

import (
	"testing"

	"molua/ast"
	"molua/lexer"
)

// Helper: Initializes a parser from an input string.
func newParser(input string) *Parser {
	l := lexer.New(input)
	return New(l)
}

// Helper: Fails the test if the parser encountered errors.
func checkParserErrors(t *testing.T, p *Parser) {
	errors := p.Errors()
	if len(errors) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errors))
	for _, msg := range errors {
		t.Errorf("parser error: %s", msg)
	}
	t.FailNow()
}

func firstStatement(t *testing.T, src string) ast.Statement {
	p := newParser(src)
	chunk := p.ParseChunk()
	checkParserErrors(t, p)
	if len(chunk.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(chunk.Body.Statements))
	}
	return chunk.Body.Statements[0]
}

func TestParseLocalStatement(t *testing.T) {
	stmt := firstStatement(t, `local x = 5`)
	local, ok := stmt.(*ast.LocalStatement)
	if !ok {
		t.Fatalf("expected *ast.LocalStatement, got %T", stmt)
	}
	if len(local.Names) != 1 || local.Names[0].Value != "x" {
		t.Fatalf("unexpected names: %+v", local.Names)
	}
	num, ok := local.Values[0].(*ast.NumberLiteral)
	if !ok || num.Value != 5 {
		t.Fatalf("unexpected value: %+v", local.Values[0])
	}
}

func TestParseLocalMultipleNamesAndValues(t *testing.T) {
	stmt := firstStatement(t, `local a, b = 1, 2`)
	local := stmt.(*ast.LocalStatement)
	if len(local.Names) != 2 || len(local.Values) != 2 {
		t.Fatalf("expected 2 names and 2 values, got %d/%d", len(local.Names), len(local.Values))
	}
}

func TestParseAssignStatement(t *testing.T) {
	stmt := firstStatement(t, `x = 10`)
	assign, ok := stmt.(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected *ast.AssignStatement, got %T", stmt)
	}
	if len(assign.Targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(assign.Targets))
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmt := firstStatement(t, `x = 1 + 2 * 3`)
	assign := stmt.(*ast.AssignStatement)
	bin, ok := assign.Values[0].(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpression, got %T", assign.Values[0])
	}
	if bin.Operator != "+" {
		t.Fatalf("expected top-level operator '+', got %q", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected '*' to bind tighter than '+', got %+v", bin.Right)
	}
}

func TestParseConcatIsRightAssociative(t *testing.T) {
	stmt := firstStatement(t, `x = "a" .. "b" .. "c"`)
	assign := stmt.(*ast.AssignStatement)
	top, ok := assign.Values[0].(*ast.BinaryExpression)
	if !ok || top.Operator != ".." {
		t.Fatalf("expected top-level '..', got %+v", assign.Values[0])
	}
	if _, ok := top.Right.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected concat to associate to the right, got left-leaning tree: %+v", top)
	}
	if _, ok := top.Left.(*ast.StringLiteral); !ok {
		t.Fatalf("expected left operand to be a single string literal, got %+v", top.Left)
	}
}

func TestParseLogicalOperators(t *testing.T) {
	stmt := firstStatement(t, `x = a and b or c`)
	assign := stmt.(*ast.AssignStatement)
	top, ok := assign.Values[0].(*ast.BinaryExpression)
	if !ok || top.Operator != "or" {
		t.Fatalf("expected top-level 'or' (lowest precedence), got %+v", assign.Values[0])
	}
}

func TestParseIfElseifElse(t *testing.T) {
	stmt := firstStatement(t, `
if a then
  return 1
elseif b then
  return 2
else
  return 3
end
`)
	ifStmt, ok := stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", stmt)
	}
	if len(ifStmt.Clauses) != 2 {
		t.Fatalf("expected 2 clauses (if + elseif), got %d", len(ifStmt.Clauses))
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else block")
	}
}

func TestParseFunctionLiteral(t *testing.T) {
	stmt := firstStatement(t, `local f = function(a, b) return a + b end`)
	local := stmt.(*ast.LocalStatement)
	fn, ok := local.Values[0].(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected *ast.FunctionLiteral, got %T", local.Values[0])
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
}

func TestParseLocalFunctionStatement(t *testing.T) {
	stmt := firstStatement(t, `local function fact(n) return n end`)
	lf, ok := stmt.(*ast.LocalFunctionStatement)
	if !ok {
		t.Fatalf("expected *ast.LocalFunctionStatement, got %T", stmt)
	}
	if lf.Name.Value != "fact" {
		t.Fatalf("expected name 'fact', got %q", lf.Name.Value)
	}
}

func TestParseFunctionStatementDesugarsToAssign(t *testing.T) {
	stmt := firstStatement(t, `function obj.method() return 1 end`)
	assign, ok := stmt.(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected function-statement to desugar to *ast.AssignStatement, got %T", stmt)
	}
	if _, ok := assign.Targets[0].(*ast.DotExpression); !ok {
		t.Fatalf("expected dotted assignment target, got %+v", assign.Targets[0])
	}
}

func TestParseTableConstructor(t *testing.T) {
	stmt := firstStatement(t, `t = {1, 2, name = "x", [10] = true}`)
	assign := stmt.(*ast.AssignStatement)
	table, ok := assign.Values[0].(*ast.TableLiteral)
	if !ok {
		t.Fatalf("expected *ast.TableLiteral, got %T", assign.Values[0])
	}
	if len(table.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(table.Fields))
	}
}

func TestParseCallChain(t *testing.T) {
	stmt := firstStatement(t, `x = t.a[1]("arg")`)
	assign := stmt.(*ast.AssignStatement)
	if _, ok := assign.Values[0].(*ast.CallExpression); !ok {
		t.Fatalf("expected outermost node to be a call, got %T", assign.Values[0])
	}
}

func TestParseForNumericWithStep(t *testing.T) {
	stmt := firstStatement(t, `for i = 1, 10, 2 do end`)
	forStmt, ok := stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", stmt)
	}
	if forStmt.Step == nil {
		t.Fatalf("expected an explicit step expression")
	}
}
