// ==============================================================================================
// FILE: evaluator/builtins.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The host-provided globals installed into every fresh Interpreter:
//          print, assert, setmetatable, getmetatable, collectgarbage, plus
//          tostring/tonumber (needed so tonumber(tostring(n)) == n holds).
// ==============================================================================================

package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"molua/object"
)

// register installs a NativeFunction named name into in's globals.
func register(in *Interpreter, name string, fn func(args []object.Value) ([]object.Value, error)) {
	in.Env.Global.RawSet(object.String(name), &object.NativeFunction{Name: name, Fn: fn})
}

// installBuiltins wires every spec-mandated global plus the conversion
// helpers tostring/tonumber into a freshly constructed Interpreter.
func installBuiltins(in *Interpreter) {
	register(in, "print", builtinPrint(in))
	register(in, "assert", builtinAssert)
	register(in, "setmetatable", builtinSetmetatable)
	register(in, "getmetatable", builtinGetmetatable)
	register(in, "collectgarbage", builtinCollectgarbage(in))
	register(in, "tostring", builtinTostring)
	register(in, "tonumber", builtinTonumber)
}

func builtinPrint(in *Interpreter) func([]object.Value) ([]object.Value, error) {
	return func(args []object.Value) ([]object.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Display()
		}
		in.Output(strings.Join(parts, "\t") + "\n")
		return nil, nil
	}
}

// builtinAssert returns its whole argument list untouched when the first
// argument is truthy; otherwise it errors with the second argument's display
// form, or a default message if none was given.
func builtinAssert(args []object.Value) ([]object.Value, error) {
	if len(args) == 0 || !object.Truthy(args[0]) {
		if len(args) > 1 {
			return nil, fmt.Errorf("%s", args[1].Display())
		}
		return nil, fmt.Errorf("assertion failed!")
	}
	return args, nil
}

func builtinSetmetatable(args []object.Value) ([]object.Value, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("bad argument #1 to 'setmetatable' (table expected)")
	}
	t, ok := args[0].(*object.Table)
	if !ok {
		return nil, fmt.Errorf("bad argument #1 to 'setmetatable' (table expected, got %s)", args[0].Type())
	}
	if len(args) < 2 {
		t.SetMetatable(nil)
		return []object.Value{t}, nil
	}
	switch mt := args[1].(type) {
	case object.Nil:
		t.SetMetatable(nil)
	case *object.Table:
		t.SetMetatable(mt)
	default:
		return nil, fmt.Errorf("bad argument #2 to 'setmetatable' (nil or table expected)")
	}
	return []object.Value{t}, nil
}

func builtinGetmetatable(args []object.Value) ([]object.Value, error) {
	if len(args) < 1 {
		return []object.Value{object.Nil{}}, nil
	}
	t, ok := args[0].(*object.Table)
	if !ok {
		return []object.Value{object.Nil{}}, nil
	}
	mt := t.Metatable()
	if mt == nil {
		return []object.Value{object.Nil{}}, nil
	}
	return []object.Value{mt}, nil
}

func builtinCollectgarbage(in *Interpreter) func([]object.Value) ([]object.Value, error) {
	return func(args []object.Value) ([]object.Value, error) {
		in.CollectGarbage()
		return []object.Value{object.Nil{}}, nil
	}
}

func builtinTostring(args []object.Value) ([]object.Value, error) {
	if len(args) == 0 {
		return []object.Value{object.String("nil")}, nil
	}
	return []object.Value{object.String(args[0].Display())}, nil
}

func builtinTonumber(args []object.Value) ([]object.Value, error) {
	if len(args) == 0 {
		return []object.Value{object.Nil{}}, nil
	}
	switch v := args[0].(type) {
	case object.Number:
		return []object.Value{v}, nil
	case object.String:
		s := strings.TrimSpace(string(v))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return []object.Value{object.Nil{}}, nil
		}
		return []object.Value{object.Number(f)}, nil
	default:
		return []object.Value{object.Nil{}}, nil
	}
}
