// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Walks the AST produced by the parser against molua's runtime value
//          universe (package object). Holds the single Interpreter type that owns
//          a persistent _G, heap, and scope stack across REPL lines.
// ==============================================================================================

package evaluator

import (
	"fmt"
	"math"
	"strings"

	"molua/ast"
	"molua/lexer"
	"molua/object"
	"molua/parser"
)

// signalKind is the result of executing a statement: normal continuation, a
// return unwinding to the enclosing call, or an interrupt from break.
type signalKind int

const (
	sigNone signalKind = iota
	sigReturn
	sigBreak
)

type signal struct {
	kind   signalKind
	values []object.Value
}

// callFrame tracks the varargs available to the currently executing function
// call, if any, so VarargExpression can resolve '...' without threading it
// through every evalMulti call.
type callFrame struct {
	varargs  []object.Value
	isVararg bool
}

// Interpreter is the persistent handle spec.md's REPL form requires: one _G,
// one heap, shared across every Execute call made on it.
type Interpreter struct {
	Env       *object.Environment
	Heap      *object.Heap
	Output    func(string)
	callStack []callFrame
}

// NewInterpreter builds an Interpreter with a fresh _G, heap, and every
// built-in global installed. A nil output writes to standard output.
func NewInterpreter(output func(string)) *Interpreter {
	if output == nil {
		output = func(s string) { fmt.Print(s) }
	}
	in := &Interpreter{
		Env:    object.NewEnvironment(),
		Heap:   object.NewHeap(),
		Output: output,
	}
	installBuiltins(in)
	return in
}

// Execute parses and evaluates src against this interpreter's existing state.
func (in *Interpreter) Execute(src string) (object.Value, error) {
	l := lexer.New(src)
	p := parser.New(l)
	chunk := p.ParseChunk()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("parse error: %s", strings.Join(errs, "; "))
	}
	return in.evalChunk(chunk)
}

// Execute runs src against a fresh Interpreter with a default stdout sink.
func Execute(src string) (object.Value, error) {
	return NewInterpreter(nil).Execute(src)
}

// CollectGarbage runs one mark-sweep pass rooted at _G and the live scope stack.
func (in *Interpreter) CollectGarbage() int {
	roots := append([]*object.Table{in.Env.Global}, in.Env.Frames()...)
	return in.Heap.Collect(roots)
}

// evalChunk executes the top-level block. A Chunk differs from a Block in
// that an Interrupt reaching here (an unresolved break) becomes an error.
func (in *Interpreter) evalChunk(chunk *ast.Chunk) (object.Value, error) {
	in.Env.PushNew()
	sig, err := in.evalBlock(chunk.Body)
	in.Env.Pop()
	if err != nil {
		return nil, err
	}
	switch sig.kind {
	case sigBreak:
		return nil, fmt.Errorf("break outside loop")
	case sigReturn:
		if len(sig.values) == 0 {
			return object.Nil{}, nil
		}
		return sig.values[0], nil
	default:
		return object.Nil{}, nil
	}
}

// evalBlock executes each statement in order, stopping and propagating as
// soon as one yields a non-normal signal.
func (in *Interpreter) evalBlock(block *ast.Block) (signal, error) {
	for _, stmt := range block.Statements {
		sig, err := in.evalStmt(stmt)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return signal{}, nil
}

// ==============================================================================================
// STATEMENTS
// ==============================================================================================

func (in *Interpreter) evalStmt(stmt ast.Statement) (signal, error) {
	switch st := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := in.evalExpr(st.Expression)
		return signal{}, err

	case *ast.DoStatement:
		depth := in.Env.Depth()
		in.Env.PushNew()
		sig, err := in.evalBlock(st.Body)
		in.Env.TruncateTo(depth)
		return sig, err

	case *ast.WhileStatement:
		return in.evalWhile(st)

	case *ast.RepeatStatement:
		return in.evalRepeat(st)

	case *ast.IfStatement:
		return in.evalIf(st)

	case *ast.ForStatement:
		return in.evalFor(st)

	case *ast.LocalStatement:
		return in.evalLocal(st)

	case *ast.LocalFunctionStatement:
		return in.evalLocalFunction(st)

	case *ast.ReturnStatement:
		values, err := in.evalExprList(st.Values)
		if err != nil {
			return signal{}, err
		}
		return signal{kind: sigReturn, values: values}, nil

	case *ast.BreakStatement:
		return signal{kind: sigBreak}, nil

	case *ast.AssignStatement:
		return in.evalAssign(st)
	}
	return signal{}, fmt.Errorf("unsupported statement %T", stmt)
}

func (in *Interpreter) evalWhile(st *ast.WhileStatement) (signal, error) {
	for {
		cond, err := in.evalExpr(st.Condition)
		if err != nil {
			return signal{}, err
		}
		if !object.Truthy(cond) {
			return signal{}, nil
		}
		depth := in.Env.Depth()
		in.Env.PushNew()
		sig, err := in.evalBlock(st.Body)
		in.Env.TruncateTo(depth)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == sigBreak {
			return signal{}, nil
		}
		if sig.kind == sigReturn {
			return sig, nil
		}
	}
}

// evalRepeat keeps the loop body's frame live for the until-condition
// evaluation, so locals the body declared are visible to cond; a fresh frame
// is still pushed at the top of every iteration.
func (in *Interpreter) evalRepeat(st *ast.RepeatStatement) (signal, error) {
	for {
		depth := in.Env.Depth()
		in.Env.PushNew()
		sig, err := in.evalBlock(st.Body)
		if err != nil {
			in.Env.TruncateTo(depth)
			return signal{}, err
		}
		if sig.kind == sigBreak {
			in.Env.TruncateTo(depth)
			return signal{}, nil
		}
		if sig.kind == sigReturn {
			in.Env.TruncateTo(depth)
			return sig, nil
		}
		cond, err := in.evalExpr(st.Condition)
		in.Env.TruncateTo(depth)
		if err != nil {
			return signal{}, err
		}
		if object.Truthy(cond) {
			return signal{}, nil
		}
	}
}

func (in *Interpreter) evalIf(st *ast.IfStatement) (signal, error) {
	for _, clause := range st.Clauses {
		cond, err := in.evalExpr(clause.Condition)
		if err != nil {
			return signal{}, err
		}
		if object.Truthy(cond) {
			depth := in.Env.Depth()
			in.Env.PushNew()
			sig, err := in.evalBlock(clause.Body)
			in.Env.TruncateTo(depth)
			return sig, err
		}
	}
	if st.Else != nil {
		depth := in.Env.Depth()
		in.Env.PushNew()
		sig, err := in.evalBlock(st.Else)
		in.Env.TruncateTo(depth)
		return sig, err
	}
	return signal{}, nil
}

func (in *Interpreter) evalFor(st *ast.ForStatement) (signal, error) {
	startV, err := in.evalExpr(st.Start)
	if err != nil {
		return signal{}, err
	}
	stopV, err := in.evalExpr(st.Stop)
	if err != nil {
		return signal{}, err
	}
	var stepV object.Value = object.Number(1)
	if st.Step != nil {
		stepV, err = in.evalExpr(st.Step)
		if err != nil {
			return signal{}, err
		}
	}
	sn, ok1 := startV.(object.Number)
	en, ok2 := stopV.(object.Number)
	stn, ok3 := stepV.(object.Number)
	if !ok1 || !ok2 || !ok3 {
		return signal{}, fmt.Errorf("'for' initial value, limit, and step must all be numbers")
	}
	if stn == 0 {
		return signal{}, fmt.Errorf("'for' step is zero")
	}

	for cur := sn; (stn > 0 && cur <= en) || (stn < 0 && cur >= en); cur += stn {
		depth := in.Env.Depth()
		in.Env.PushNew()
		in.Env.DeclareLocal(st.Name.Value, cur)
		sig, err := in.evalBlock(st.Body)
		in.Env.TruncateTo(depth)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == sigBreak {
			return signal{}, nil
		}
		if sig.kind == sigReturn {
			return sig, nil
		}
	}
	return signal{}, nil
}

func (in *Interpreter) evalLocal(st *ast.LocalStatement) (signal, error) {
	values, err := in.evalExprList(st.Values)
	if err != nil {
		return signal{}, err
	}
	for idx, name := range st.Names {
		var v object.Value = object.Nil{}
		if idx < len(values) {
			v = values[idx]
		}
		in.Env.DeclareLocal(name.Value, v)
	}
	return signal{}, nil
}

// evalLocalFunction binds the name to Nil before evaluating the function
// literal, then rebinds it to the resulting closure in the same frame. Since
// the closure's captured scope shares that frame by pointer, the name
// resolves to the finished function by the time the body runs, enabling
// self-recursion.
func (in *Interpreter) evalLocalFunction(st *ast.LocalFunctionStatement) (signal, error) {
	in.Env.DeclareLocal(st.Name.Value, object.Nil{})
	fn := &object.Function{
		Name:       st.Name.Value,
		Parameters: st.Function.Parameters,
		Vararg:     st.Function.Vararg,
		Body:       st.Function.Body,
		Scope:      in.Env.Snapshot(),
	}
	in.Env.DeclareLocal(st.Name.Value, fn)
	return signal{}, nil
}

func (in *Interpreter) evalAssign(st *ast.AssignStatement) (signal, error) {
	values, err := in.evalExprList(st.Values)
	if err != nil {
		return signal{}, err
	}
	for idx, target := range st.Targets {
		var v object.Value = object.Nil{}
		if idx < len(values) {
			v = values[idx]
		}
		if err := in.assignTo(target, v); err != nil {
			return signal{}, err
		}
	}
	return signal{}, nil
}

func (in *Interpreter) assignTo(target ast.Expression, v object.Value) error {
	switch t := target.(type) {
	case *ast.Identifier:
		in.Env.Assign(t.Value, v)
		return nil
	case *ast.IndexExpression:
		tv, err := in.evalExpr(t.Left)
		if err != nil {
			return err
		}
		kv, err := in.evalExpr(t.Index)
		if err != nil {
			return err
		}
		return in.newindex(tv, kv, v)
	case *ast.DotExpression:
		tv, err := in.evalExpr(t.Left)
		if err != nil {
			return err
		}
		return in.newindex(tv, object.String(t.Name.Value), v)
	}
	return fmt.Errorf("cannot assign to this expression")
}

// ==============================================================================================
// EXPRESSIONS
// ==============================================================================================

// evalExpr evaluates e to a single value, truncating a multi-valued result
// to its first element (or Nil if it produced none).
func (in *Interpreter) evalExpr(e ast.Expression) (object.Value, error) {
	vs, err := in.evalMulti(e)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return object.Nil{}, nil
	}
	return vs[0], nil
}

// evalExprList evaluates a comma-separated expression list: every element
// but the last is truncated to one value; the last is expanded in full.
func (in *Interpreter) evalExprList(exprs []ast.Expression) ([]object.Value, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	var out []object.Value
	last := len(exprs) - 1
	for idx, e := range exprs {
		if idx == last {
			vs, err := in.evalMulti(e)
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
			continue
		}
		v, err := in.evalExpr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// evalMulti evaluates e to its full value list. Only calls and '...' can
// produce more than one value; every other expression returns a single-element list.
func (in *Interpreter) evalMulti(e ast.Expression) ([]object.Value, error) {
	switch node := e.(type) {
	case *ast.NumberLiteral:
		return []object.Value{object.Number(node.Value)}, nil
	case *ast.StringLiteral:
		return []object.Value{object.String(node.Value)}, nil
	case *ast.BooleanLiteral:
		return []object.Value{object.Boolean(node.Value)}, nil
	case *ast.NilLiteral:
		return []object.Value{object.Nil{}}, nil
	case *ast.Identifier:
		return []object.Value{in.Env.Find(node.Value)}, nil
	case *ast.VarargExpression:
		return in.currentVarargs()
	case *ast.ParenExpression:
		v, err := in.evalExpr(node.Inner)
		if err != nil {
			return nil, err
		}
		return []object.Value{v}, nil
	case *ast.UnaryExpression:
		v, err := in.evalUnary(node)
		if err != nil {
			return nil, err
		}
		return []object.Value{v}, nil
	case *ast.BinaryExpression:
		v, err := in.evalBinary(node)
		if err != nil {
			return nil, err
		}
		return []object.Value{v}, nil
	case *ast.FunctionLiteral:
		fn := &object.Function{
			Name:       node.Name,
			Parameters: node.Parameters,
			Vararg:     node.Vararg,
			Body:       node.Body,
			Scope:      in.Env.Snapshot(),
		}
		return []object.Value{fn}, nil
	case *ast.TableLiteral:
		v, err := in.evalTableLiteral(node)
		if err != nil {
			return nil, err
		}
		return []object.Value{v}, nil
	case *ast.CallExpression:
		return in.evalCall(node)
	case *ast.IndexExpression:
		tv, err := in.evalExpr(node.Left)
		if err != nil {
			return nil, err
		}
		kv, err := in.evalExpr(node.Index)
		if err != nil {
			return nil, err
		}
		v, err := in.index(tv, kv)
		if err != nil {
			return nil, err
		}
		return []object.Value{v}, nil
	case *ast.DotExpression:
		tv, err := in.evalExpr(node.Left)
		if err != nil {
			return nil, err
		}
		v, err := in.index(tv, object.String(node.Name.Value))
		if err != nil {
			return nil, err
		}
		return []object.Value{v}, nil
	}
	return nil, fmt.Errorf("unsupported expression %T", e)
}

func (in *Interpreter) currentVarargs() ([]object.Value, error) {
	if len(in.callStack) == 0 || !in.callStack[len(in.callStack)-1].isVararg {
		return nil, fmt.Errorf("cannot use '...' outside a vararg function")
	}
	top := in.callStack[len(in.callStack)-1]
	out := make([]object.Value, len(top.varargs))
	copy(out, top.varargs)
	return out, nil
}

func (in *Interpreter) evalTableLiteral(node *ast.TableLiteral) (object.Value, error) {
	t := in.Heap.NewTable()
	nextIndex := 1
	last := len(node.Fields) - 1
	for idx, field := range node.Fields {
		if field.Key == nil {
			if idx == last {
				vs, err := in.evalMulti(field.Value)
				if err != nil {
					return nil, err
				}
				for _, v := range vs {
					_ = t.RawSet(object.Number(float64(nextIndex)), v)
					nextIndex++
				}
				continue
			}
			v, err := in.evalExpr(field.Value)
			if err != nil {
				return nil, err
			}
			_ = t.RawSet(object.Number(float64(nextIndex)), v)
			nextIndex++
			continue
		}
		kv, err := in.evalExpr(field.Key)
		if err != nil {
			return nil, err
		}
		vv, err := in.evalExpr(field.Value)
		if err != nil {
			return nil, err
		}
		if err := t.RawSet(kv, vv); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (in *Interpreter) evalCall(node *ast.CallExpression) ([]object.Value, error) {
	fn, err := in.evalExpr(node.Function)
	if err != nil {
		return nil, err
	}
	args, err := in.evalExprList(node.Args)
	if err != nil {
		return nil, err
	}
	if !object.IsCallable(fn) {
		return nil, fmt.Errorf("attempt to call a %s value", fn.Type())
	}
	return in.call(fn, args)
}

// call dispatches to either callable kind. Used both for direct call
// expressions and for metamethod invocation.
func (in *Interpreter) call(fn object.Value, args []object.Value) ([]object.Value, error) {
	switch f := fn.(type) {
	case *object.NativeFunction:
		return f.Fn(args)
	case *object.Function:
		return in.callFunction(f, args)
	default:
		return nil, fmt.Errorf("attempt to call a %s value", fn.Type())
	}
}

// callFunction implements the seven-step call sequence of §4.4.4.
func (in *Interpreter) callFunction(f *object.Function, args []object.Value) ([]object.Value, error) {
	baseDepth := in.Env.Depth()
	for _, frame := range f.Scope {
		in.Env.Push(frame)
	}
	in.Env.PushNew()

	for idx, param := range f.Parameters {
		var v object.Value = object.Nil{}
		if idx < len(args) {
			v = args[idx]
		}
		in.Env.DeclareLocal(param.Value, v)
	}
	var extra []object.Value
	if f.Vararg && len(args) > len(f.Parameters) {
		extra = append(extra, args[len(f.Parameters):]...)
	}
	in.callStack = append(in.callStack, callFrame{varargs: extra, isVararg: f.Vararg})

	sig, err := in.evalBlock(f.Body)

	in.callStack = in.callStack[:len(in.callStack)-1]
	in.Env.TruncateTo(baseDepth)

	if err != nil {
		return nil, err
	}
	switch sig.kind {
	case sigReturn:
		return sig.values, nil
	case sigBreak:
		return nil, fmt.Errorf("break outside loop")
	default:
		return nil, nil
	}
}

// ==============================================================================================
// OPERATORS
// ==============================================================================================

func (in *Interpreter) evalUnary(e *ast.UnaryExpression) (object.Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "-":
		if n, ok := right.(object.Number); ok {
			return -n, nil
		}
		if mm := in.lookupMetamethod(right, right, "__unm"); mm != nil {
			return in.callMetamethod(mm, right, right)
		}
		return nil, fmt.Errorf("attempt to perform arithmetic on a %s value", right.Type())
	case "not":
		return object.Boolean(!object.Truthy(right)), nil
	case "#":
		switch v := right.(type) {
		case object.String:
			return object.Number(float64(len(v))), nil
		case *object.Table:
			return object.Number(float64(v.Len())), nil
		}
		return nil, fmt.Errorf("attempt to get length of a %s value", right.Type())
	}
	return nil, fmt.Errorf("unknown unary operator %q", e.Operator)
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpression) (object.Value, error) {
	switch e.Operator {
	case "and":
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(left) {
			return left, nil
		}
		return in.evalExpr(e.Right)
	case "or":
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		if object.Truthy(left) {
			return left, nil
		}
		return in.evalExpr(e.Right)
	}

	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	return in.applyBinary(e.Operator, left, right)
}

var arithMetamethods = map[string]string{
	"+": "__add",
	"-": "__sub",
	"*": "__mul",
	"/": "__div",
	"%": "__mod",
}

func (in *Interpreter) applyBinary(op string, left, right object.Value) (object.Value, error) {
	switch op {
	case "+", "-", "*", "/", "%":
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return arithmetic(op, ln, rn)
			}
		}
		if mm := in.lookupMetamethod(left, right, arithMetamethods[op]); mm != nil {
			return in.callMetamethod(mm, left, right)
		}
		return nil, fmt.Errorf("attempt to perform arithmetic (%s) on non-number values", op)
	case "..":
		if isConcatable(left) && isConcatable(right) {
			return object.String(concatDisplay(left) + concatDisplay(right)), nil
		}
		if mm := in.lookupMetamethod(left, right, "__concat"); mm != nil {
			return in.callMetamethod(mm, left, right)
		}
		return nil, fmt.Errorf("attempt to concatenate a non-string, non-number value")
	case "==", "~=":
		eq := in.valuesEqual(left, right)
		if op == "~=" {
			eq = !eq
		}
		return object.Boolean(eq), nil
	case "<":
		return in.lessThan(left, right)
	case ">":
		return in.lessThan(right, left)
	case "<=":
		return in.lessOrEqual(left, right)
	case ">=":
		return in.lessOrEqual(right, left)
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}

func arithmetic(op string, a, b object.Number) (object.Value, error) {
	x, y := float64(a), float64(b)
	switch op {
	case "+":
		return object.Number(x + y), nil
	case "-":
		return object.Number(x - y), nil
	case "*":
		return object.Number(x * y), nil
	case "/":
		return object.Number(x / y), nil
	case "%":
		return object.Number(math.Mod(x, y)), nil
	}
	return nil, fmt.Errorf("unknown arithmetic operator %q", op)
}

func isConcatable(v object.Value) bool {
	switch v.(type) {
	case object.String, object.Number:
		return true
	default:
		return false
	}
}

func concatDisplay(v object.Value) string {
	return v.Display()
}

func (in *Interpreter) lessThan(left, right object.Value) (object.Value, error) {
	if ln, ok := left.(object.Number); ok {
		if rn, ok := right.(object.Number); ok {
			return object.Boolean(ln < rn), nil
		}
	}
	if ls, ok := left.(object.String); ok {
		if rs, ok := right.(object.String); ok {
			return object.Boolean(ls < rs), nil
		}
	}
	if mm := in.lookupMetamethod(left, right, "__lt"); mm != nil {
		v, err := in.callMetamethod(mm, left, right)
		if err != nil {
			return nil, err
		}
		return object.Boolean(object.Truthy(v)), nil
	}
	return nil, fmt.Errorf("attempt to compare incompatible values")
}

func (in *Interpreter) lessOrEqual(left, right object.Value) (object.Value, error) {
	if ln, ok := left.(object.Number); ok {
		if rn, ok := right.(object.Number); ok {
			return object.Boolean(ln <= rn), nil
		}
	}
	if ls, ok := left.(object.String); ok {
		if rs, ok := right.(object.String); ok {
			return object.Boolean(ls <= rs), nil
		}
	}
	if mm := in.lookupMetamethod(left, right, "__le"); mm != nil {
		v, err := in.callMetamethod(mm, left, right)
		if err != nil {
			return nil, err
		}
		return object.Boolean(object.Truthy(v)), nil
	}
	lt, err := in.lessThan(right, left)
	if err != nil {
		return nil, err
	}
	return object.Boolean(!object.Truthy(lt)), nil
}

// valuesEqual implements ==. __eq only fires when both operands are tables
// and share the identical __eq metamethod value.
func (in *Interpreter) valuesEqual(left, right object.Value) bool {
	if object.Equals(left, right) {
		return true
	}
	lt, lok := left.(*object.Table)
	rt, rok := right.(*object.Table)
	if !lok || !rok {
		return false
	}
	lmt, rmt := lt.Metatable(), rt.Metatable()
	if lmt == nil || rmt == nil {
		return false
	}
	lmm := lmt.RawGet(object.String("__eq"))
	rmm := rmt.RawGet(object.String("__eq"))
	if lmm.Type() == object.NIL || !object.Equals(lmm, rmm) {
		return false
	}
	v, err := in.callMetamethod(lmm, left, right)
	if err != nil {
		return false
	}
	return object.Truthy(v)
}

func (in *Interpreter) lookupMetamethod(left, right object.Value, name string) object.Value {
	if t, ok := left.(*object.Table); ok {
		if mt := t.Metatable(); mt != nil {
			if v := mt.RawGet(object.String(name)); v.Type() != object.NIL {
				return v
			}
		}
	}
	if t, ok := right.(*object.Table); ok {
		if mt := t.Metatable(); mt != nil {
			if v := mt.RawGet(object.String(name)); v.Type() != object.NIL {
				return v
			}
		}
	}
	return nil
}

func (in *Interpreter) callMetamethod(fn object.Value, args ...object.Value) (object.Value, error) {
	if !object.IsCallable(fn) {
		return nil, fmt.Errorf("attempt to call a %s value", fn.Type())
	}
	vs, err := in.call(fn, args)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return object.Nil{}, nil
	}
	return vs[0], nil
}

// index implements t[k] read access, including __index dispatch.
func (in *Interpreter) index(t object.Value, key object.Value) (object.Value, error) {
	tbl, ok := t.(*object.Table)
	if !ok {
		return nil, fmt.Errorf("attempt to index a %s value", t.Type())
	}
	v := tbl.RawGet(key)
	if v.Type() != object.NIL {
		return v, nil
	}
	mt := tbl.Metatable()
	if mt == nil {
		return object.Nil{}, nil
	}
	idx := mt.RawGet(object.String("__index"))
	switch idx.(type) {
	case *object.Table:
		return in.index(idx, key)
	case *object.Function, *object.NativeFunction:
		return in.callMetamethod(idx, t, key)
	}
	return object.Nil{}, nil
}

// newindex implements t[k] = v write access, including __newindex dispatch.
func (in *Interpreter) newindex(t object.Value, key, val object.Value) error {
	tbl, ok := t.(*object.Table)
	if !ok {
		return fmt.Errorf("attempt to index a %s value", t.Type())
	}
	if tbl.RawGet(key).Type() == object.NIL {
		if mt := tbl.Metatable(); mt != nil {
			if h := mt.RawGet(object.String("__newindex")); h.Type() != object.NIL {
				switch hh := h.(type) {
				case *object.Table:
					return in.newindex(hh, key, val)
				case *object.Function, *object.NativeFunction:
					_, err := in.callMetamethod(hh, t, key, val)
					return err
				}
			}
		}
	}
	return tbl.RawSet(key, val)
}
