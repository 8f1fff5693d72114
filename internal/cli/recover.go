package cli

import (
	"io"

	"github.com/akashmaji946/minilang/evaluator"
	"github.com/akashmaji946/minilang/object"
	"github.com/akashmaji946/minilang/parser"
)

// Run parses and evaluates source against env, writing parse errors and the
// final value's Display form through palette-colored output. It reports
// failed=true for a parse failure, a terminal runtime *object.Error, or a
// recovered Go panic — the signal a non-interactive caller uses to pick an
// exit code, the same way go-mix's executeFileWithRecovery/
// executeWithRecovery turn any of those into a reported message instead of
// a crash. A Go stack overflow from pathological recursion is a fatal
// runtime error, not a panic, so it is not recovered here and still ends
// the process.
func Run(src string, e *evaluator.Evaluator, env *object.Environment, w io.Writer, p Palette) (result object.Object, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			p.Error.Fprintf(w, "[runtime error] %v\n", r)
			failed = true
		}
	}()

	program, errs := parser.Parse(src)
	if len(errs) > 0 {
		for _, msg := range errs {
			p.Error.Fprintf(w, "[parse error] %s\n", msg)
		}
		return nil, true
	}

	result = e.Eval(program, env)
	if result == nil {
		return nil, false
	}

	if IsError(result) {
		p.Error.Fprintln(w, Display(result))
		return result, true
	}
	p.Result.Fprintln(w, Display(result))
	return result, false
}
