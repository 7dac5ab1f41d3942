// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Implements a Recursive Descent Parser with Pratt Parsing for expressions.
//          It converts a stream of Tokens (from the Lexer) into an Abstract Syntax Tree (AST).
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"

	"molua/ast"
	"molua/lexer"
	"molua/token"
)

// Precedence constants determine the order of operations in expressions.
// Higher values mean the operator binds more tightly.
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	COMPARE_PREC
	CONCAT_PREC
	SUM_PREC
	PRODUCT_PREC
	UNARY_PREC
	ACCESSOR_PREC // '.', '[...]', call-args, '{...}' and string-literal call sugar
)

// precedences maps token types to their integer precedence level.
var precedences = map[token.TokenType]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       COMPARE_PREC,
	token.NOT_EQ:   COMPARE_PREC,
	token.LT:       COMPARE_PREC,
	token.GT:       COMPARE_PREC,
	token.LT_EQ:    COMPARE_PREC,
	token.GT_EQ:    COMPARE_PREC,
	token.CONCAT:   CONCAT_PREC,
	token.PLUS:     SUM_PREC,
	token.MINUS:    SUM_PREC,
	token.STAR:     PRODUCT_PREC,
	token.SLASH:    PRODUCT_PREC,
	token.PERCENT:  PRODUCT_PREC,
	token.DOT:      ACCESSOR_PREC,
	token.LBRACKET: ACCESSOR_PREC,
	token.LPAREN:   ACCESSOR_PREC,
	token.STRING:   ACCESSOR_PREC,
	token.LBRACE:   ACCESSOR_PREC,
}

// Function types for Pratt Parsing
type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser struct holds the state of the parsing process.
type Parser struct {
	l         *lexer.Lexer // Pointer to the lexer
	curToken  token.Token  // The current token under examination
	peekToken token.Token  // The next token (lookahead)
	errors    []string     // Collection of syntax errors found

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New initializes a new Parser instance.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	// Register Prefix Parsing Functions (nuds)
	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NIL, p.parseNilLiteral)
	p.registerPrefix(token.VARARG, p.parseVarargExpression)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.NOT, p.parseUnaryExpression)
	p.registerPrefix(token.LEN, p.parseUnaryExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACE, p.parseTableLiteral)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteralExpression)

	// Register Infix Parsing Functions (leds)
	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerInfix(token.OR, p.parseBinaryExpression)
	p.registerInfix(token.AND, p.parseBinaryExpression)
	p.registerInfix(token.EQ, p.parseBinaryExpression)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.LT, p.parseBinaryExpression)
	p.registerInfix(token.GT, p.parseBinaryExpression)
	p.registerInfix(token.LT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.GT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.CONCAT, p.parseConcatExpression)
	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.STAR, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.PERCENT, p.parseBinaryExpression)
	p.registerInfix(token.DOT, p.parseDotExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.STRING, p.parseCallWithStringArg)
	p.registerInfix(token.LBRACE, p.parseCallWithTableArg)

	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) curTokenIsAny(types ...token.TokenType) bool {
	for _, t := range types {
		if p.curToken.Type == t {
			return true
		}
	}
	return false
}

// expectPeek asserts that the next token is of a specific type.
// If it is, it advances the parser. If not, it records an error.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	msg := fmt.Sprintf("line %d:%d - expected next token to be %s, got %s instead",
		p.peekToken.Line, p.peekToken.Column, t, p.peekToken.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseChunk is the entry point for parsing. It produces the single Chunk
// node wrapping the top-level block.
func (p *Parser) ParseChunk() *ast.Chunk {
	return &ast.Chunk{Body: p.parseBlock(token.EOF)}
}

// parseBlock parses statements until the current token matches one of the
// given terminators (or EOF).
func (p *Parser) parseBlock(terminators ...token.TokenType) *ast.Block {
	block := &ast.Block{Statements: []ast.Statement{}}

	for !p.curTokenIsAny(terminators...) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMI) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

// parseStatement determines the type of statement based on the current token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.DO:
		return p.parseDoStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.REPEAT:
		return p.parseRepeatStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FUNCTION:
		return p.parseFunctionStatement()
	case token.LOCAL:
		return p.parseLocalStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case token.GOTO:
		p.errors = append(p.errors, fmt.Sprintf("line %d:%d - goto is not supported", p.curToken.Line, p.curToken.Column))
		return nil
	default:
		return p.parseExprOrAssignStatement()
	}
}

func (p *Parser) parseDoStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	body := p.parseBlock(token.END)
	if !p.curTokenIs(token.END) {
		p.peekError(token.END)
		return nil
	}
	return &ast.DoStatement{Token: tok, Body: body}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlock(token.END)
	if !p.curTokenIs(token.END) {
		p.peekError(token.END)
		return nil
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseRepeatStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	body := p.parseBlock(token.UNTIL)
	if !p.curTokenIs(token.UNTIL) {
		p.peekError(token.UNTIL)
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	return &ast.RepeatStatement{Token: tok, Body: body, Condition: cond}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.IfStatement{Token: tok}

	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.nextToken()
	body := p.parseBlock(token.END, token.ELSE, token.ELSEIF)
	stmt.Clauses = append(stmt.Clauses, ast.IfClause{Condition: cond, Body: body})

	for p.curTokenIs(token.ELSEIF) {
		p.nextToken()
		c := p.parseExpression(LOWEST)
		if !p.expectPeek(token.THEN) {
			return nil
		}
		p.nextToken()
		b := p.parseBlock(token.END, token.ELSE, token.ELSEIF)
		stmt.Clauses = append(stmt.Clauses, ast.IfClause{Condition: c, Body: b})
	}

	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseBlock(token.END)
	}

	if !p.curTokenIs(token.END) {
		p.peekError(token.END)
		return nil
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	start := p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	p.nextToken()
	stop := p.parseExpression(LOWEST)

	var step ast.Expression
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		step = p.parseExpression(LOWEST)
	}

	if !p.expectPeek(token.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlock(token.END)
	if !p.curTokenIs(token.END) {
		p.peekError(token.END)
		return nil
	}
	return &ast.ForStatement{Token: tok, Name: name, Start: start, Stop: stop, Step: step, Body: body}
}

// parseFunctionStatement handles `function funcname funcbody`, which is sugar
// for `funcname = function(...) ... end`.
func (p *Parser) parseFunctionStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	nameTok := p.curToken
	var target ast.Expression = &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
	fnName := nameTok.Literal

	for p.peekTokenIs(token.DOT) {
		p.nextToken()
		dotTok := p.curToken
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		fieldName := p.curToken.Literal
		target = &ast.DotExpression{Token: dotTok, Left: target, Name: &ast.Identifier{Token: p.curToken, Value: fieldName}}
		fnName += "." + fieldName
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fn := &ast.FunctionLiteral{Token: tok, Name: fnName}
	fn.Parameters, fn.Vararg = p.parseFunctionParameters()
	p.nextToken()
	fn.Body = p.parseBlock(token.END)
	if !p.curTokenIs(token.END) {
		p.peekError(token.END)
		return nil
	}
	return &ast.AssignStatement{Token: tok, Targets: []ast.Expression{target}, Values: []ast.Expression{fn}}
}

// parseLocalStatement handles `local namelist ['=' exprlist]` and the
// `local function Name funcbody` form.
func (p *Parser) parseLocalStatement() ast.Statement {
	tok := p.curToken

	if p.peekTokenIs(token.FUNCTION) {
		p.nextToken()
		fnTok := p.curToken
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		fn := &ast.FunctionLiteral{Token: fnTok, Name: name.Value}
		fn.Parameters, fn.Vararg = p.parseFunctionParameters()
		p.nextToken()
		fn.Body = p.parseBlock(token.END)
		if !p.curTokenIs(token.END) {
			p.peekError(token.END)
			return nil
		}
		return &ast.LocalFunctionStatement{Token: tok, Name: name, Function: fn}
	}

	p.nextToken()
	names := []*ast.Identifier{{Token: p.curToken, Value: p.curToken.Literal}}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		names = append(names, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	var values []ast.Expression
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		values = p.parseExpressionListLowest()
	}
	return &ast.LocalStatement{Token: tok, Names: names, Values: values}
}

// blockTerminators that legally end a return statement's expression list.
func (p *Parser) returnEndsBlock() bool {
	switch p.peekToken.Type {
	case token.END, token.ELSE, token.ELSEIF, token.UNTIL, token.EOF, token.SEMI:
		return true
	}
	return false
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.ReturnStatement{Token: tok}
	if p.returnEndsBlock() {
		return stmt
	}
	p.nextToken()
	stmt.Values = p.parseExpressionListLowest()
	return stmt
}

// parseExprOrAssignStatement handles `exprlist ['=' exprlist]`: either an
// assignment or a bare expression statement (normally a function call).
func (p *Parser) parseExprOrAssignStatement() ast.Statement {
	tok := p.curToken
	first := p.parseExpression(LOWEST)
	targets := []ast.Expression{first}

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		targets = append(targets, p.parseExpression(LOWEST))
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		values := p.parseExpressionListLowest()
		for _, t := range targets {
			if !isAssignable(t) {
				p.errors = append(p.errors, fmt.Sprintf("line %d:%d - cannot assign to this expression", tok.Line, tok.Column))
			}
		}
		return &ast.AssignStatement{Token: tok, Targets: targets, Values: values}
	}

	if len(targets) != 1 {
		p.errors = append(p.errors, fmt.Sprintf("line %d:%d - syntax error: unexpected ','", tok.Line, tok.Column))
	}
	return &ast.ExpressionStatement{Token: tok, Expression: first}
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.IndexExpression, *ast.DotExpression:
		return true
	}
	return false
}

// parseExpressionListLowest parses a comma-separated list of expressions,
// each at LOWEST precedence, with no surrounding delimiters.
func (p *Parser) parseExpressionListLowest() []ast.Expression {
	list := []ast.Expression{p.parseExpression(LOWEST)}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	return list
}

// parseExpression manages precedence to parse expressions correctly.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors = append(p.errors, fmt.Sprintf("line %d:%d - no prefix parse function for %s",
			p.curToken.Line, p.curToken.Column, p.curToken.Type))
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

// --- Prefix Parsing Functions ---

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}
	val, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as number", p.curToken.Literal))
		return nil
	}
	lit.Value = val
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseVarargExpression() ast.Expression {
	return &ast.VarargExpression{Token: p.curToken}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	exp := &ast.UnaryExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	exp.Right = p.parseExpression(UNARY_PREC)
	return exp
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.ParenExpression{Token: tok, Inner: inner}
}

func (p *Parser) parseFunctionLiteralExpression() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters, lit.Vararg = p.parseFunctionParameters()
	p.nextToken()
	lit.Body = p.parseBlock(token.END)
	if !p.curTokenIs(token.END) {
		p.peekError(token.END)
		return nil
	}
	return lit
}

// parseFunctionParameters parses `(namelist [',' '...'] | '...')`.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}
	vararg := false

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, vararg
	}
	p.nextToken()
	if p.curTokenIs(token.VARARG) {
		vararg = true
	} else {
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}
	for !vararg && p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		if p.curTokenIs(token.VARARG) {
			vararg = true
			break
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, vararg
}

func (p *Parser) parseTableLiteral() ast.Expression {
	tbl := &ast.TableLiteral{Token: p.curToken}
	tbl.Fields = []ast.TableField{}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()

		var field ast.TableField
		switch {
		case p.curTokenIs(token.LBRACKET):
			p.nextToken()
			key := p.parseExpression(LOWEST)
			if !p.expectPeek(token.RBRACKET) {
				return nil
			}
			if !p.expectPeek(token.ASSIGN) {
				return nil
			}
			p.nextToken()
			val := p.parseExpression(LOWEST)
			field = ast.TableField{Key: key, Value: val}
		case p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN):
			nameTok := p.curToken
			p.nextToken() // at '='
			p.nextToken() // at value
			val := p.parseExpression(LOWEST)
			field = ast.TableField{
				Key:   &ast.StringLiteral{Token: nameTok, Value: nameTok.Literal},
				Value: val,
			}
		default:
			val := p.parseExpression(LOWEST)
			field = ast.TableField{Value: val}
		}

		tbl.Fields = append(tbl.Fields, field)

		if p.peekTokenIs(token.COMMA) || p.peekTokenIs(token.SEMI) {
			p.nextToken()
		} else {
			break
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return tbl
}

// --- Infix Parsing Functions ---

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	exp := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	return exp
}

// parseConcatExpression parses `..`, which is right-associative: the right
// operand is parsed at CONCAT_PREC-1 so a following `..` binds to it instead
// of terminating the chain here.
func (p *Parser) parseConcatExpression(left ast.Expression) ast.Expression {
	exp := &ast.BinaryExpression{Token: p.curToken, Operator: "..", Left: left}
	p.nextToken()
	exp.Right = p.parseExpression(CONCAT_PREC - 1)
	return exp
}

func (p *Parser) parseDotExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.DotExpression{Token: tok, Left: left, Name: name}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Token: tok, Left: left, Index: idx}
}

func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: left}
	exp.Args = p.parseExpressionList(token.RPAREN)
	return exp
}

// parseCallWithStringArg handles `f "str"` sugar for `f("str")`.
func (p *Parser) parseCallWithStringArg(left ast.Expression) ast.Expression {
	arg := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.CallExpression{Token: p.curToken, Function: left, Args: []ast.Expression{arg}}
}

// parseCallWithTableArg handles `f {...}` sugar for `f({...})`.
func (p *Parser) parseCallWithTableArg(left ast.Expression) ast.Expression {
	tbl := p.parseTableLiteral()
	return &ast.CallExpression{Token: p.curToken, Function: left, Args: []ast.Expression{tbl}}
}

// parseExpressionList parses a comma-separated list of expressions up to
// (and consuming) the given end token. Used for call arguments.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}
