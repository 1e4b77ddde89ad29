package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeNull, "null"},
		{TypeBool, "bool"},
		{TypeNumber, "number"},
		{TypeString, "string"},
		{TypeArray, "array"},
		{TypeObject, "object"},
		{Type(42), "Type(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestValue_ZeroIsNull(t *testing.T) {
	t.Parallel()

	var v Value

	assert.Equal(t, TypeNull, v.Type())
	assert.True(t, v.IsNull())
	assert.Equal(t, "null", v.String())
}

func TestValue_Scalars(t *testing.T) {
	t.Parallel()

	var v Value

	v.SetBool(true)
	assert.Equal(t, TypeBool, v.Type())
	assert.True(t, v.Bool())

	v.SetBool(false)
	assert.False(t, v.Bool())

	v.SetNumber(1234.5)
	assert.Equal(t, TypeNumber, v.Type())
	assert.InDelta(t, 1234.5, v.Number(), 0)

	v.SetString("")
	assert.Equal(t, TypeString, v.Type())
	assert.Equal(t, 0, v.StringLen())
	assert.Empty(t, v.StringBytes())

	v.SetString("Hello")
	assert.Equal(t, "Hello", string(v.StringBytes()))
	assert.Equal(t, 5, v.StringLen())

	v.SetNull()
	assert.True(t, v.IsNull())
}

func TestValue_SetStringCopies(t *testing.T) {
	t.Parallel()

	src := []byte("abc")

	var v Value

	v.SetStringBytes(src)
	src[0] = 'x'
	assert.Equal(t, "abc", string(v.StringBytes()))

	s := v.StringBytes()
	assert.Equal(t, byte(0), s[:len(s)+1][len(s)])

	// Replacing a string with a slice of itself must not read freed storage.
	v.SetStringBytes(v.StringBytes()[1:])
	assert.Equal(t, "bc", string(v.StringBytes()))
}

func TestValue_SettersReplacePayload(t *testing.T) {
	t.Parallel()

	v, err := ParseString(`{"a":[1,2,{"b":"c"}]}`)
	require.NoError(t, err)

	v.SetNumber(7)
	assert.Equal(t, TypeNumber, v.Type())
	assert.Nil(t, v.m)
	assert.Nil(t, v.a)
	assert.Nil(t, v.s)

	v.SetString("s")
	v.SetArray(0)
	assert.Nil(t, v.s)
	assert.Equal(t, 0, v.ArraySize())
}

func TestValue_WrongTypePanics(t *testing.T) {
	t.Parallel()

	var v Value

	v.SetNumber(1)

	assert.PanicsWithValue(t, "jsonvalue: bool accessor called on number value", func() { v.Bool() })
	assert.Panics(t, func() { v.StringBytes() })
	assert.Panics(t, func() { v.StringLen() })
	assert.Panics(t, func() { v.ArraySize() })
	assert.Panics(t, func() { v.ObjectSize() })
	assert.Panics(t, func() { v.FindObjectIndex("a") })

	v.SetString("x")
	assert.Panics(t, func() { v.Number() })
}

func TestMember_Accessors(t *testing.T) {
	t.Parallel()

	v, err := ParseString(`{"key":"val"}`)
	require.NoError(t, err)

	m := v.ObjectMember(0)
	assert.Equal(t, "key", m.Key())
	assert.Equal(t, "val", string(m.Value().StringBytes()))

	m.Value().SetBool(true)
	assert.True(t, v.ObjectValue(0).Bool())
}
