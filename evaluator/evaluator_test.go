/*
File    : minilang/evaluator/evaluator_test.go
Adapted from go-mix's eval/evaluator_test.go style (testify assertions,
table-driven input/output cases), covering spec.md §8's required
properties and its seven concrete scenarios.
*/
package evaluator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/minilang/object"
	"github.com/akashmaji946/minilang/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	program, errs := parser.Parse(input)
	require.Empty(t, errs, input)

	e := New()
	env := e.NewRootEnvironment()
	return e.Eval(program, env)
}

func testIntegerObject(t *testing.T, obj object.Object, expected int64) {
	t.Helper()
	result, ok := obj.(*object.Integer)
	require.True(t, ok, "expected *object.Integer, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}
	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{"true && true", true},
		{"true && false", false},
		{"false || true", true},
		{"false || false", false},
	}
	for _, tt := range tests {
		result, ok := testEval(t, tt.input).(*object.Boolean)
		require.True(t, ok, tt.input)
		assert.Equal(t, tt.expected, result.Value, tt.input)
	}
}

func TestShortCircuitEvaluation(t *testing.T) {
	// the right operand of && / || must not be evaluated when the left
	// operand already decides the result; an identifier-not-found error
	// on the right side must not surface if short-circuited away.
	result := testEval(t, "false && undefinedIdentifier")
	b, ok := result.(*object.Boolean)
	require.True(t, ok)
	assert.False(t, b.Value)

	result = testEval(t, "true || undefinedIdentifier")
	b, ok = result.(*object.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value)
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!!true", true},
		{"!!false", false},
	}
	for _, tt := range tests {
		result, ok := testEval(t, tt.input).(*object.Boolean)
		require.True(t, ok)
		assert.Equal(t, tt.expected, result.Value)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		if expected, ok := tt.expected.(int64); ok {
			testIntegerObject(t, result, expected)
		} else {
			assert.Equal(t, NULL, result)
		}
	}
}

func TestIfConditionMustBeBoolean(t *testing.T) {
	result := testEval(t, "if (1) { 10 }")
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "condition did not evaluate to boolean", errObj.Message)
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
	}
	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", "Can only perform operation + on numbers, got: INTEGER and BOOLEAN"},
		{"5 + true; 5;", "Can only perform operation + on numbers, got: INTEGER and BOOLEAN"},
		{"-true", "expected Number, got: BOOLEAN"},
		{"true + false;", "Can only perform operation + on (numbers | boolean), got: BOOLEAN and BOOLEAN"},
		{"5; true + false; 5", "Can only perform operation + on (numbers | boolean), got: BOOLEAN and BOOLEAN"},
		{"if (10 > 1) { true + false; }", "Can only perform operation + on (numbers | boolean), got: BOOLEAN and BOOLEAN"},
		{
			`if (10 > 1) {
  if (10 > 1) {
    return true + false;
  }
  return 1;
}`,
			"Can only perform operation + on (numbers | boolean), got: BOOLEAN and BOOLEAN",
		},
		{"foobar", "identifier not found: foobar"},
		{`"hello" - "world"`, "Can only perform operation - on numbers, got: STRING and STRING"},
		{"5 / 0", "division by zero"},
	}
	for _, tt := range tests {
		errObj, ok := testEval(t, tt.input).(*object.Error)
		require.True(t, ok, "expected error for %q, got %+v", tt.input, testEval(t, tt.input))
		assert.Equal(t, tt.expected, errObj.Message, tt.input)
	}
}

func TestErrorPropagationThroughSubExpression(t *testing.T) {
	result := testEval(t, "let x = 5 + true; x")
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.Message, "Can only perform operation")
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}
	for _, tt := range tests {
		testIntegerObject(t, testEval(t, tt.input), tt.expected)
	}
}

func TestFunctionScopeIsolation(t *testing.T) {
	// spec.md §8: parameters must not leak across calls.
	input := `fn f(x){x}; f(1); f(2)`
	testIntegerObject(t, testEval(t, input), 2)
}

func TestClosures(t *testing.T) {
	input := `
let newAdder = fn(x) {
  fn(y) { x + y };
};
let addTwo = newAdder(2);
addTwo(2);
`
	testIntegerObject(t, testEval(t, input), 4)
}

func TestClosureCaptureFromSpec(t *testing.T) {
	input := `let add = fn(a){ fn(b){ a + b } }; let add2 = add(2); add2(3)`
	testIntegerObject(t, testEval(t, input), 5)
}

func TestRecursiveNamedFunction(t *testing.T) {
	input := `
let fact = fn fact(n) {
  if (n == 0) { return 1; }
  return n * fact(n - 1);
};
fact(5);
`
	testIntegerObject(t, testEval(t, input), 120)
}

func TestStringLiteral(t *testing.T) {
	result, ok := testEval(t, `"Hello World!"`).(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", result.Value)
}

func TestArrayLiterals(t *testing.T) {
	result, ok := testEval(t, "[1, 2 * 2, 3 + 3]").(*object.Array)
	require.True(t, ok)
	require.Len(t, result.Elements, 3)
	testIntegerObject(t, result.Elements[0], 1)
	testIntegerObject(t, result.Elements[1], 4)
	testIntegerObject(t, result.Elements[2], 6)
}

func TestArrayIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"[1, 2, 3][0]", int64(1)},
		{"[1, 2, 3][1]", int64(2)},
		{"let i = 0; [1][i];", int64(1)},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", "error"},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		switch expected := tt.expected.(type) {
		case int64:
			testIntegerObject(t, result, expected)
		case string:
			_, ok := result.(*object.Error)
			assert.True(t, ok, tt.input)
		default:
			assert.Equal(t, NULL, result)
		}
	}
}

func TestHashLiterals(t *testing.T) {
	input := `let two = "two";
	{
		"one": 10 - 9,
		two: 1 + 1,
		"three": 6 / 2,
		4: 4,
		true: 5,
		false: 6
	}`
	result, ok := testEval(t, input).(*object.Hash)
	require.True(t, ok)

	expected := map[object.HashKey]int64{
		(&object.String{Value: "one"}).HashKey():   1,
		(&object.String{Value: "two"}).HashKey():   2,
		(&object.String{Value: "three"}).HashKey(): 3,
		(&object.Integer{Value: 4}).HashKey():      4,
		TRUE.HashKey():                             5,
		FALSE.HashKey():                            6,
	}

	require.Len(t, result.Pairs, len(expected))
	for key, expectedValue := range expected {
		pair, ok := result.Pairs[key]
		require.True(t, ok)
		testIntegerObject(t, pair.Value, expectedValue)
	}
}

func TestHashIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`{"foo": 5}["foo"]`, int64(5)},
		{`{"foo": 5}["bar"]`, nil},
		{`let key = "foo"; {"foo": 5}[key]`, int64(5)},
		{`{}["foo"]`, nil},
		{`{5: 5}[5]`, int64(5)},
		{`{true: 5}[true]`, int64(5)},
		{`{false: 5}[false]`, int64(5)},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		if expected, ok := tt.expected.(int64); ok {
			testIntegerObject(t, result, expected)
		} else {
			assert.Equal(t, NULL, result)
		}
	}
}

func TestUnhashableKeyIsError(t *testing.T) {
	result := testEval(t, `{[1]: 1}`)
	_, ok := result.(*object.Error)
	assert.True(t, ok)
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`len("")`, int64(0)},
		{`len("four")`, int64(4)},
		{`len("hello world")`, int64(11)},
		{`len(1)`, "error"},
		{`len("one", "two")`, "error"},
		{`len([1, 2, 3])`, int64(3)},
		{`len([])`, int64(0)},
		{`first([1, 2, 3])`, int64(1)},
		{`first([])`, nil},
		{`last([1, 2, 3])`, int64(3)},
		{`last([])`, nil},
		{`rest([1, 2, 3])`, []int64{2, 3}},
		{`rest([])`, nil},
		{`push([1, 2], 3)`, []int64{1, 2, 3}},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		switch expected := tt.expected.(type) {
		case int64:
			testIntegerObject(t, result, expected)
		case string:
			_, ok := result.(*object.Error)
			assert.True(t, ok, tt.input)
		case []int64:
			arr, ok := result.(*object.Array)
			require.True(t, ok, tt.input)
			require.Len(t, arr.Elements, len(expected))
			for i, v := range expected {
				testIntegerObject(t, arr.Elements[i], v)
			}
		default:
			assert.Equal(t, NULL, result, tt.input)
		}
	}
}

func TestPushDoesNotMutateOriginalArray(t *testing.T) {
	program, errs := parser.Parse(`let a = [1, 2]; let b = push(a, 3); a`)
	require.Empty(t, errs)
	e := New()
	result := e.Eval(program, e.NewRootEnvironment())
	arr, ok := result.(*object.Array)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 2)
}

func TestPutsWritesToEvaluatorWriter(t *testing.T) {
	var buf bytes.Buffer
	program, errs := parser.Parse(`puts("hello")`)
	require.Empty(t, errs)

	e := New()
	e.SetWriter(&buf)
	e.Eval(program, e.NewRootEnvironment())
	assert.Equal(t, "hello\n", buf.String())
}

func TestFunctionObject(t *testing.T) {
	input := "fn(x) { x + 2; };"
	result, ok := testEval(t, input).(*object.Function)
	require.True(t, ok)
	require.Len(t, result.Parameters, 1)
	assert.Equal(t, "x", result.Parameters[0].String())
	assert.Equal(t, "(x + 2)", result.Body.String())
}

func TestWrappingIntegerOverflow(t *testing.T) {
	// Open Question #1: overflow wraps per Go int64 semantics rather than
	// erroring or saturating.
	big := testEval(t, "9223372036854775807 + 1")
	testIntegerObject(t, big, -9223372036854775808)
}
