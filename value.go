package jsonvalue

import (
	"fmt"
)

// Type identifies which variant a [Value] holds.
type Type uint8

const (
	TypeNull   Type = iota // The zero Value.
	TypeBool               // true or false.
	TypeNumber             // An IEEE-754 double.
	TypeString             // An owned byte string.
	TypeArray              // An ordered sequence of Values.
	TypeObject             // An ordered sequence of Members.
)

// String returns the JSON name of the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}

	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Value is one node of a JSON document tree.
//
// The zero Value is null. A Value exclusively owns its string, array or object
// payload: [Copy] always deep-clones and [Move] transfers ownership, so no two
// Values ever share a payload. Plain assignment (a = b) bypasses that and
// should be avoided for non-scalar values; use [Copy], [Move] or [Swap].
//
// Accessors panic when called on a Value of the wrong type or with an
// out-of-range index. Those are programming errors, not recoverable conditions.
//
// A Value is not safe for concurrent mutation.
//
//nolint:govet //Field order keeps slices together
type Value struct {
	s []byte   // TypeString, a zero byte always follows s in its backing array
	a []Value  // TypeArray
	m []Member // TypeObject
	n float64  // TypeNumber
	t Type
	b bool // TypeBool
}

// Member is a key/value pair inside an object Value.
type Member struct {
	key []byte // zero terminated like string payloads
	val Value
}

// Key returns the member key.
func (m *Member) Key() string {
	return string(m.key)
}

// Value returns a pointer to the member value.
func (m *Member) Value() *Value {
	return &m.val
}

// ownedBytes copies b into fresh storage with a trailing zero byte past its length.
func ownedBytes(b []byte) []byte {
	s := make([]byte, len(b), len(b)+1)
	copy(s, b)

	return s
}

func (v *Value) mustBe(t Type) {
	if v.t != t {
		panic(fmt.Sprintf("jsonvalue: %s accessor called on %s value", t, v.t))
	}
}

// Type returns the type of v.
func (v *Value) Type() Type {
	return v.t
}

// IsNull reports whether v is null.
func (v *Value) IsNull() bool {
	return v.t == TypeNull
}

// Bool returns the boolean held by v.
func (v *Value) Bool() bool {
	v.mustBe(TypeBool)
	return v.b
}

// SetBool releases any payload held by v and sets it to b.
func (v *Value) SetBool(b bool) {
	v.Free()
	v.t = TypeBool
	v.b = b
}

// Number returns the number held by v.
func (v *Value) Number() float64 {
	v.mustBe(TypeNumber)
	return v.n
}

// SetNumber releases any payload held by v and sets it to n.
func (v *Value) SetNumber(n float64) {
	v.Free()
	v.t = TypeNumber
	v.n = n
}

// StringBytes returns the string payload of v without copying.
// The returned slice must not be modified.
func (v *Value) StringBytes() []byte {
	v.mustBe(TypeString)
	return v.s
}

// StringLen returns the length in bytes of the string payload of v.
func (v *Value) StringLen() int {
	v.mustBe(TypeString)
	return len(v.s)
}

// SetString releases any payload held by v and stores a copy of s.
func (v *Value) SetString(s string) {
	b := make([]byte, len(s), len(s)+1)
	copy(b, s)
	v.Free()
	v.t = TypeString
	v.s = b
}

// SetStringBytes releases any payload held by v and stores a copy of b.
// b may alias the current payload of v.
func (v *Value) SetStringBytes(b []byte) {
	s := ownedBytes(b)
	v.Free()
	v.t = TypeString
	v.s = s
}
