package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"

	"molua/evaluator"
	"molua/lexer"
	"molua/parser"
	"molua/repl"
	"molua/token"
)

// Options is the CLI surface: a single positional script path plus a debug
// toggle that turns on token/AST tracing in both script and REPL mode.
type Options struct {
	Debug bool `short:"d" long:"debug" description:"trace tokens and AST before evaluating each chunk"`
	Args  struct {
		File string `positional-arg-name:"file"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	fp := flags.NewParser(&opts, flags.Default)
	fp.Name = "molua"
	if _, err := fp.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Args.File != "" {
		runFile(opts.Args.File, opts.Debug)
		return
	}

	repl.Start(os.Stdin, os.Stdout, opts.Debug)
}

func runFile(filename string, debug bool) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}
	src := string(data)

	if debug {
		traceTokens(src)
	}

	l := lexer.New(src)
	p := parser.New(l)
	chunk := p.ParseChunk()

	if errs := p.Errors(); len(errs) != 0 {
		fmt.Println("Parser Errors:")
		for _, msg := range errs {
			fmt.Printf("\t%s\n", msg)
		}
		os.Exit(1)
	}

	if debug {
		pp.Println(chunk)
	}

	in := evaluator.NewInterpreter(nil)
	if _, err := in.Execute(src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func traceTokens(src string) {
	l := lexer.New(src)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		pp.Printf("%-15s %q\n", tok.Type, tok.Literal)
	}
}
