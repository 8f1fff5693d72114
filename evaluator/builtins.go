/*
File    : minilang/evaluator/builtins.go
Adapted from go-mix's objects/builtins.go registration pattern (a name ->
callback table), narrowed to the six builtins spec.md §4.3 names: `len`,
`first`, `last` are required; `rest`, `push`, `puts` are the explicitly-
optional additions this implementation includes.
*/
package evaluator

import (
	"fmt"

	"github.com/akashmaji946/minilang/object"
)

// builtins holds the writer-independent builtins; `puts` is bound
// per-Evaluator in New (it writes through e.Writer, which SetWriter can
// redirect after construction).
var builtins = map[string]object.BuiltinFunction{
	"len":   builtinLen,
	"first": builtinFirst,
	"last":  builtinLast,
	"rest":  builtinRest,
	"push":  builtinPush,
}

func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

// builtinRest returns a new Array of every element but the first, copying
// rather than aliasing the backing slice so the original Array is never
// mutated through the result.
func builtinRest(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	rest := make([]object.Object, length-1)
	copy(rest, arr.Elements[1:length])
	return &object.Array{Elements: rest}
}

// builtinPush returns a new Array with val appended, leaving the original
// Array untouched (minilang arrays are otherwise immutable from the
// language's point of view).
func builtinPush(args ...object.Object) object.Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]object.Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &object.Array{Elements: newElements}
}

// putsBuiltin prints each argument's Inspect() form on its own line to the
// Evaluator's current writer (re-read on every call, so SetWriter takes
// effect even after registration).
func (e *Evaluator) putsBuiltin(args ...object.Object) object.Object {
	for _, arg := range args {
		fmt.Fprintln(e.Writer, arg.Inspect())
	}
	return NULL
}
