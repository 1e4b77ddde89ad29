package jsonvalue

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Build(t *testing.T) {
	t.Parallel()

	var v Value

	for _, capacity := range []int{0, 5} {
		v.SetObject(capacity)
		assert.Equal(t, 0, v.ObjectSize())
		assert.Equal(t, capacity, v.ObjectCapacity())

		for i := range 10 {
			key := string(rune('a' + i))
			v.SetObjectValue(key).SetNumber(float64(i))
		}

		assert.Equal(t, 10, v.ObjectSize())

		for i := range 10 {
			key := string(rune('a' + i))
			idx := v.FindObjectIndex(key)
			require.NotEqual(t, KeyNotExist, idx)
			assert.Equal(t, i, idx)
			assert.Equal(t, key, v.ObjectKey(idx))
			assert.Equal(t, []byte(key), v.ObjectKeyBytes(idx))
			assert.InDelta(t, float64(i), v.ObjectValue(idx).Number(), 0)
		}

		// Existing keys are reused, not duplicated.
		v.SetObjectValue("j").SetString("J")
		assert.Equal(t, 10, v.ObjectSize())
		assert.Equal(t, "J", string(v.FindObjectValue("j").StringBytes()))

		idx := v.FindObjectIndex("j")
		v.RemoveObjectValue(idx)
		assert.Equal(t, KeyNotExist, v.FindObjectIndex("j"))
		assert.Nil(t, v.FindObjectValue("j"))
		assert.Equal(t, 9, v.ObjectSize())

		// Removal keeps the order of the remaining members.
		v.RemoveObjectValue(0)
		assert.Equal(t, "b", v.ObjectKey(0))
		assert.Equal(t, "i", v.ObjectKey(v.ObjectSize()-1))

		capBefore := v.ObjectCapacity()
		v.ClearObject()
		assert.Equal(t, 0, v.ObjectSize())
		assert.Equal(t, capBefore, v.ObjectCapacity())
	}
}

func TestObject_ReserveAndShrink(t *testing.T) {
	t.Parallel()

	var v Value

	v.SetObject(0)
	v.ReserveObject(16)
	assert.GreaterOrEqual(t, v.ObjectCapacity(), 16)

	v.SetObjectValue("x").SetNumber(1)
	v.ShrinkObject()
	assert.Equal(t, 1, v.ObjectCapacity())
	assert.Equal(t, `{"x":1}`, v.String())
}

func TestObject_KeysWithNUL(t *testing.T) {
	t.Parallel()

	v, err := ParseString(`{"a\u0000b":1,"a":2}`)
	require.NoError(t, err)

	assert.Equal(t, 3, v.ObjectKeyLen(0))
	assert.Equal(t, 0, v.FindObjectIndex("a\x00b"))
	assert.Equal(t, 1, v.FindObjectIndex("a"))
}

func TestObject_ManyMembers(t *testing.T) {
	t.Parallel()

	var v Value

	v.SetObject(0)

	for i := range 500 {
		v.SetObjectValue(strconv.Itoa(i)).SetNumber(float64(i))
	}

	back, err := Parse(Stringify(&v))
	require.NoError(t, err)
	require.Equal(t, 500, back.ObjectSize())
	assert.InDelta(t, 499.0, back.FindObjectValue("499").Number(), 0)
	assert.True(t, Equal(&v, &back))
}

func TestObject_Misuse(t *testing.T) {
	t.Parallel()

	var v Value

	v.SetObject(0)

	assert.Panics(t, func() { v.ObjectKey(0) })
	assert.Panics(t, func() { v.ObjectValue(0) })
	assert.Panics(t, func() { v.RemoveObjectValue(0) })

	v.SetArray(0)
	assert.Panics(t, func() { v.SetObjectValue("a") })
}
