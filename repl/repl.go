// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface.
//          It connects the user input stream to the compiler pipeline (Lexer->Parser->Evaluator)
//          and manages the persistent session state across lines.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp/v3"

	"molua/evaluator"
	"molua/lexer"
	"molua/object"
	"molua/parser"
	"molua/token"
)

// ----------------------------------------------------------------------------
// UI CONSTANTS & CONFIGURATION
// ----------------------------------------------------------------------------

const (
	PROMPT = ">> "
	LOGO   = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  _ __ ___   ___  | |_   _  __ _                    ┃
┃ | '_ ` + "`" + ` _ \ / _ \ | | | | |/ _` + "`" + ` |                   ┃
┃ | | | | | | (_) || | |_| | (_| |                   ┃
┃ |_| |_| |_|\___/ |_|\__,_|\__,_|                   ┃
┃                                                     ┃
┃ The molua language v0.1                            ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

// ANSI Color Codes for terminal output
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"
	Bold   = "\033[1m"
)

// ----------------------------------------------------------------------------
// REPL LOGIC
// ----------------------------------------------------------------------------

// Start launches the Read-Eval-Print Loop. It listens to in, evaluates each
// line against one persistent Interpreter, and writes results to out.
// debugStart enables token/AST tracing from the first prompt onward; '.debug'
// still toggles it mid-session.
func Start(in io.Reader, out io.Writer, debugStart bool) {
	scanner := bufio.NewScanner(in)
	interp := evaluator.NewInterpreter(func(s string) { fmt.Fprint(out, s) })
	debugMode := debugStart

	fmt.Fprint(out, LOGO)
	printHelp(out)

	for {
		fmt.Fprint(out, Cyan+PROMPT+Reset)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit", "quit":
				fmt.Fprintln(out, Yellow+"Goodbye!"+Reset)
				return
			case ".clear":
				interp = evaluator.NewInterpreter(func(s string) { fmt.Fprint(out, s) })
				fmt.Fprintln(out, Green+"Environment cleared (memory reset)."+Reset)
				continue
			case ".debug":
				debugMode = !debugMode
				status := "DISABLED"
				if debugMode {
					status = "ENABLED"
				}
				fmt.Fprintf(out, Gray+"Debug mode %s\n"+Reset, status)
				continue
			case ".help":
				printHelp(out)
				continue
			default:
				fmt.Fprintf(out, Red+"Unknown command: %s. Type .help for info.\n"+Reset, line)
				continue
			}
		}
		if line == "quit" {
			fmt.Fprintln(out, Yellow+"Goodbye!"+Reset)
			return
		}

		if debugMode {
			printTokens(out, line)
		}

		l := lexer.New(line)
		p := parser.New(l)
		chunk := p.ParseChunk()

		if errs := p.Errors(); len(errs) != 0 {
			printParserErrors(out, errs)
			continue
		}

		if debugMode {
			fmt.Fprintln(out, Gray+"┌── [ AST ] ─────────────────────────────────────────────┐"+Reset)
			pp.Println(chunk)
			fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
		}

		value, err := interp.Execute(line)
		if err != nil {
			printEvalError(out, err)
			continue
		}
		printEvalResult(out, value)
	}
}

// ----------------------------------------------------------------------------
// HELPER FUNCTIONS
// ----------------------------------------------------------------------------

func printHelp(out io.Writer) {
	fmt.Fprintln(out, Gray+"Commands:")
	fmt.Fprintln(out, "  .exit, quit  Quit the REPL")
	fmt.Fprintln(out, "  .clear       Reset memory")
	fmt.Fprintln(out, "  .debug       Toggle verbose AST/Token output")
	fmt.Fprintln(out, "  .help        Show this message"+Reset)
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, line string) {
	fmt.Fprintln(out, Gray+"┌── [ TOKENS ] ──────────────────────────────────────────┐"+Reset)
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	fmt.Fprintln(out, Gray+"└────────────────────────────────────────────────────────┘"+Reset)
}

func printParserErrors(out io.Writer, errors []string) {
	fmt.Fprintln(out, Red+Bold+"Whoops! Parser Errors:"+Reset)
	for _, msg := range errors {
		fmt.Fprintf(out, Red+"  ✖ %s\n"+Reset, msg)
	}
}

func printEvalError(out io.Writer, err error) {
	fmt.Fprintf(out, Red+Bold+"ERROR: "+Reset+Red+"%s\n"+Reset, err.Error())
}

// printEvalResult formats the result based on value kind. A bare nil result
// from a statement-only line prints nothing, matching a real Lua REPL.
func printEvalResult(out io.Writer, v object.Value) {
	if v == nil {
		return
	}
	if _, ok := v.(object.Nil); ok {
		return
	}

	switch val := v.(type) {
	case object.Number:
		fmt.Fprintf(out, Yellow+"%s\n"+Reset, val.Display())
	case object.Boolean:
		color := Green
		if !bool(val) {
			color = Red
		}
		fmt.Fprintf(out, color+"%s\n"+Reset, val.Display())
	case object.String:
		fmt.Fprintf(out, Green+"%s\n"+Reset, val.Display())
	case *object.Function, *object.NativeFunction:
		fmt.Fprintf(out, Purple+"%s\n"+Reset, val.Display())
	case *object.Table:
		fmt.Fprintf(out, Blue+"%s\n"+Reset, val.Display())
	default:
		fmt.Fprintf(out, "%s\n", v.Display())
	}
}
