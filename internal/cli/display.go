// Package cli is the ambient presentation layer shared by the file runner
// and the REPL: a fatih/color palette matching go-mix's repl.Repl / main
// color scheme, a panic-to-message recovery boundary grounded on go-mix's
// executeFileWithRecovery/executeWithRecovery, and the final-value display
// format from spec.md's value display table.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/akashmaji946/minilang/object"
)

// Palette mirrors go-mix's four-color scheme: green for banners, cyan for
// informational text, yellow for successful results, red for errors.
type Palette struct {
	Banner *color.Color
	Info   *color.Color
	Result *color.Color
	Error  *color.Color
}

// NewPalette builds the standard four-color scheme. When enabled is false
// every color is disabled, so output degrades to plain text (the
// --no-color flag / config.Color=false path).
func NewPalette(enabled bool) Palette {
	p := Palette{
		Banner: color.New(color.FgGreen),
		Info:   color.New(color.FgCyan),
		Result: color.New(color.FgYellow),
		Error:  color.New(color.FgRed),
	}
	if !enabled {
		for _, c := range []*color.Color{p.Banner, p.Info, p.Result, p.Error} {
			c.DisableColor()
		}
	}
	return p
}

// Display renders obj exactly as spec.md's value display table prescribes,
// which is not the same string object.Object.Inspect() produces for every
// type: Inspect is the internal representation builtins like `puts` print,
// while Display is the final value a file run or REPL line shows the user
// (quoted strings, array/hash elements shown in Display form with no
// padding inside the brackets, named-or-anonymous function literal text).
func Display(obj object.Object) string {
	switch obj := obj.(type) {
	case nil:
		return "null"
	case *object.Null:
		return "null"
	case *object.Integer:
		return fmt.Sprintf("%d", obj.Value)
	case *object.Boolean:
		return fmt.Sprintf("%t", obj.Value)
	case *object.String:
		return fmt.Sprintf("%q", obj.Value)
	case *object.Array:
		elems := make([]string, len(obj.Elements))
		for i, e := range obj.Elements {
			elems[i] = Display(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *object.Hash:
		pairs := make([]string, 0, len(obj.Keys))
		for _, key := range obj.Keys {
			pair := obj.Pairs[key]
			pairs = append(pairs, fmt.Sprintf("%s: %s", Display(pair.Key), Display(pair.Value)))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	case *object.Function:
		return obj.Inspect()
	case *object.Builtin:
		return obj.Inspect()
	case *object.Error:
		return "error: " + obj.Message
	default:
		return obj.Inspect()
	}
}

// IsError reports whether obj is a runtime error value, the signal both
// the file runner and the REPL use to pick the error color and (in file
// mode) a non-zero exit code.
func IsError(obj object.Object) bool {
	_, ok := obj.(*object.Error)
	return ok
}
