// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Defines the statement and expression node types produced by the parser
//          and consumed by the evaluator.
// ==============================================================================================

package ast

import (
	"strings"

	"molua/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is any node that can appear in a block.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// ==============================================================================================
// CHUNK & BLOCK
// ==============================================================================================

// Chunk is the top-level compiled unit. Executing a Chunk turns an
// unresolved break into a runtime error, while Block propagates it.
type Chunk struct {
	Body *Block
}

func (c *Chunk) TokenLiteral() string { return "" }
func (c *Chunk) String() string       { return c.Body.String() }

// Block is a sequence of statements, as found inside do/while/if/for/function bodies.
type Block struct {
	Statements []Statement
}

func (b *Block) TokenLiteral() string {
	if len(b.Statements) > 0 {
		return b.Statements[0].TokenLiteral()
	}
	return ""
}
func (b *Block) String() string {
	var out strings.Builder
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// ==============================================================================================
// STATEMENTS
// ==============================================================================================

type DoStatement struct {
	Token token.Token
	Body  *Block
}

func (s *DoStatement) statementNode()       {}
func (s *DoStatement) TokenLiteral() string { return s.Token.Literal }
func (s *DoStatement) String() string {
	return "do " + s.Body.String() + " end"
}

type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *Block
}

func (s *WhileStatement) statementNode()       {}
func (s *WhileStatement) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStatement) String() string {
	return "while " + s.Condition.String() + " do " + s.Body.String() + " end"
}

type RepeatStatement struct {
	Token     token.Token
	Body      *Block
	Condition Expression
}

func (s *RepeatStatement) statementNode()       {}
func (s *RepeatStatement) TokenLiteral() string { return s.Token.Literal }
func (s *RepeatStatement) String() string {
	return "repeat " + s.Body.String() + " until " + s.Condition.String()
}

// IfClause is one `if`/`elseif` branch: a condition guarding a block.
type IfClause struct {
	Condition Expression
	Body      *Block
}

type IfStatement struct {
	Token   token.Token
	Clauses []IfClause // first is the `if`, remaining are `elseif`
	Else    *Block     // nil when there is no `else`
}

func (s *IfStatement) statementNode()       {}
func (s *IfStatement) TokenLiteral() string { return s.Token.Literal }
func (s *IfStatement) String() string {
	var out strings.Builder
	for i, c := range s.Clauses {
		if i == 0 {
			out.WriteString("if ")
		} else {
			out.WriteString("elseif ")
		}
		out.WriteString(c.Condition.String())
		out.WriteString(" then ")
		out.WriteString(c.Body.String())
		out.WriteString(" ")
	}
	if s.Else != nil {
		out.WriteString("else ")
		out.WriteString(s.Else.String())
		out.WriteString(" ")
	}
	out.WriteString("end")
	return out.String()
}

type ForStatement struct {
	Token token.Token
	Name  *Identifier
	Start Expression
	Stop  Expression
	Step  Expression // nil when absent (defaults to 1 at evaluation)
	Body  *Block
}

func (s *ForStatement) statementNode()       {}
func (s *ForStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ForStatement) String() string {
	var out strings.Builder
	out.WriteString("for ")
	out.WriteString(s.Name.String())
	out.WriteString(" = ")
	out.WriteString(s.Start.String())
	out.WriteString(", ")
	out.WriteString(s.Stop.String())
	if s.Step != nil {
		out.WriteString(", ")
		out.WriteString(s.Step.String())
	}
	out.WriteString(" do ")
	out.WriteString(s.Body.String())
	out.WriteString(" end")
	return out.String()
}

type LocalStatement struct {
	Token  token.Token
	Names  []*Identifier
	Values []Expression // may be shorter than Names, or nil
}

func (s *LocalStatement) statementNode()       {}
func (s *LocalStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LocalStatement) String() string {
	var out strings.Builder
	out.WriteString("local ")
	out.WriteString(joinExpressions(identifiersToExpressions(s.Names), ", "))
	if len(s.Values) > 0 {
		out.WriteString(" = ")
		out.WriteString(joinExpressions(s.Values, ", "))
	}
	return out.String()
}

// LocalFunctionStatement is `local function Name funcbody`: the name is bound
// in the current frame before the function literal is evaluated, so the
// function's captured scope already contains its own name (enabling
// self-recursion), unlike plain `local Name = function...end`.
type LocalFunctionStatement struct {
	Token    token.Token
	Name     *Identifier
	Function *FunctionLiteral
}

func (s *LocalFunctionStatement) statementNode()       {}
func (s *LocalFunctionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LocalFunctionStatement) String() string {
	return "local " + s.Function.String()
}

type ReturnStatement struct {
	Token  token.Token
	Values []Expression
}

func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) String() string {
	return "return " + joinExpressions(s.Values, ", ")
}

type BreakStatement struct {
	Token token.Token
}

func (s *BreakStatement) statementNode()       {}
func (s *BreakStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BreakStatement) String() string       { return "break" }

// AssignStatement covers both `exprlist = exprlist` assignment and the
// desugared form of `function funcname funcbody`.
type AssignStatement struct {
	Token   token.Token
	Targets []Expression // identifiers or accessor chains
	Values  []Expression
}

func (s *AssignStatement) statementNode()       {}
func (s *AssignStatement) TokenLiteral() string { return s.Token.Literal }
func (s *AssignStatement) String() string {
	return joinExpressions(s.Targets, ", ") + " = " + joinExpressions(s.Values, ", ")
}

// ExpressionStatement wraps a bare expression used for its side effects (a call).
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) String() string {
	if s.Expression == nil {
		return ""
	}
	return s.Expression.String()
}

// ==============================================================================================
// EXPRESSIONS
// ==============================================================================================

type Identifier struct {
	Token token.Token
	Value string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Value }

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (e *NumberLiteral) expressionNode()      {}
func (e *NumberLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NumberLiteral) String() string       { return e.Token.Literal }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) String() string       { return "\"" + e.Value + "\"" }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) String() string       { return e.Token.Literal }

type NilLiteral struct {
	Token token.Token
}

func (e *NilLiteral) expressionNode()      {}
func (e *NilLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NilLiteral) String() string       { return "nil" }

// VarargExpression is `...`, valid only inside a function body that declared it.
type VarargExpression struct {
	Token token.Token
}

func (e *VarargExpression) expressionNode()      {}
func (e *VarargExpression) TokenLiteral() string { return e.Token.Literal }
func (e *VarargExpression) String() string       { return "..." }

// ParenExpression is `( e )`; grouping truncates a multi-value result to its first value.
type ParenExpression struct {
	Token token.Token
	Inner Expression
}

func (e *ParenExpression) expressionNode()      {}
func (e *ParenExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ParenExpression) String() string       { return "(" + e.Inner.String() + ")" }

type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

type UnaryExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *UnaryExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

type FunctionLiteral struct {
	Token      token.Token
	Name       string // non-empty only for the `function name` and `local function name` statement forms
	Parameters []*Identifier
	Vararg     bool
	Body       *Block
}

func (e *FunctionLiteral) expressionNode()      {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionLiteral) String() string {
	var out strings.Builder
	out.WriteString("function(")
	out.WriteString(joinExpressions(identifiersToExpressions(e.Parameters), ", "))
	if e.Vararg {
		if len(e.Parameters) > 0 {
			out.WriteString(", ")
		}
		out.WriteString("...")
	}
	out.WriteString(") ")
	out.WriteString(e.Body.String())
	out.WriteString(" end")
	return out.String()
}

// TableField is one entry of a table constructor. Key is nil for positional
// fields (which take successive integer keys starting at 1).
type TableField struct {
	Key   Expression
	Value Expression
}

type TableLiteral struct {
	Token  token.Token
	Fields []TableField
}

func (e *TableLiteral) expressionNode()      {}
func (e *TableLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *TableLiteral) String() string {
	var out strings.Builder
	out.WriteString("{")
	for i, f := range e.Fields {
		if i > 0 {
			out.WriteString(", ")
		}
		if f.Key != nil {
			out.WriteString("[")
			out.WriteString(f.Key.String())
			out.WriteString("] = ")
		}
		out.WriteString(f.Value.String())
	}
	out.WriteString("}")
	return out.String()
}

type CallExpression struct {
	Token    token.Token
	Function Expression
	Args     []Expression
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) String() string {
	return e.Function.String() + "(" + joinExpressions(e.Args, ", ") + ")"
}

// IndexExpression is `t[k]`.
type IndexExpression struct {
	Token token.Token
	Left  Expression
	Index Expression
}

func (e *IndexExpression) expressionNode()      {}
func (e *IndexExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpression) String() string {
	return e.Left.String() + "[" + e.Index.String() + "]"
}

// DotExpression is `t.Name`, sugar for t["Name"].
type DotExpression struct {
	Token token.Token
	Left  Expression
	Name  *Identifier
}

func (e *DotExpression) expressionNode()      {}
func (e *DotExpression) TokenLiteral() string { return e.Token.Literal }
func (e *DotExpression) String() string {
	return e.Left.String() + "." + e.Name.String()
}

// ==============================================================================================
// HELPERS
// ==============================================================================================

func joinExpressions(exprs []Expression, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		if e == nil {
			continue
		}
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func identifiersToExpressions(ids []*Identifier) []Expression {
	exprs := make([]Expression, len(ids))
	for i, id := range ids {
		exprs[i] = id
	}
	return exprs
}
