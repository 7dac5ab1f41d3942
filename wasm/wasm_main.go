// ==============================================================================================
// FILE: wasm/wasm_main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm wasm/wasm_main.go
// ==============================================================================================

//go:build js

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"molua/evaluator"
)

// outputBuffer captures everything print() writes during one runCode call.
var outputBuffer strings.Builder

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("runMolua", js.FuncOf(runCode))

	fmt.Println("molua WASM engine loaded.")
	<-c
}

// runCode is the bridge between JS and Go: each call gets a fresh
// Interpreter, so a script cannot see state left over from a prior run.
func runCode(this js.Value, p []js.Value) interface{} {
	code := p[0].String()
	outputBuffer.Reset()

	interp := evaluator.NewInterpreter(func(s string) { outputBuffer.WriteString(s) })

	result, err := interp.Execute(code)
	if err != nil {
		return map[string]interface{}{
			"error": []interface{}{err.Error()},
		}
	}

	return map[string]interface{}{
		"logs":   outputBuffer.String(),
		"result": result.Display(),
	}
}
