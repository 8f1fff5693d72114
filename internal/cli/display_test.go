package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/minilang/object"
)

func TestDisplayScalars(t *testing.T) {
	assert.Equal(t, "null", Display(nil))
	assert.Equal(t, "null", Display(&object.Null{}))
	assert.Equal(t, "50", Display(&object.Integer{Value: 50}))
	assert.Equal(t, "true", Display(&object.Boolean{Value: true}))
	assert.Equal(t, `"hello"`, Display(&object.String{Value: "hello"}))
}

func TestDisplayArray(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{
		&object.Integer{Value: 1},
		&object.String{Value: "two"},
	}}
	assert.Equal(t, `[1, "two"]`, Display(arr))
}

func TestDisplayHashPreservesInsertionOrder(t *testing.T) {
	h := object.NewHash()
	oneKey := &object.String{Value: "one"}
	h.Set(oneKey, oneKey, &object.Integer{Value: 1})
	twoKey := &object.String{Value: "two"}
	h.Set(twoKey, twoKey, &object.Integer{Value: 2})

	assert.Equal(t, `{"one": 1, "two": 2}`, Display(h))
}

func TestDisplayError(t *testing.T) {
	assert.Equal(t, "error: identifier not found: foobar", Display(&object.Error{Message: "identifier not found: foobar"}))
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(&object.Error{Message: "boom"}))
	assert.False(t, IsError(&object.Integer{Value: 1}))
}

func TestNewPaletteDisabledSuppressesColorCodes(t *testing.T) {
	p := NewPalette(false)
	assert.Equal(t, "ok", p.Result.Sprint("ok"))
}
