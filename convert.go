package jsonvalue

import (
	"fmt"
)

// FromGo converts an arbitrary Go value into a [Value] by marshaling it with
// [Marshal] and parsing the result.
//
// Marshal failures are wrapped with [ErrEncoding].
func FromGo(x any) (Value, error) {
	switch v := x.(type) {
	case *Value:
		if v == nil {
			return Value{}, nil
		}

		return v.Clone(), nil
	case Value:
		return v.Clone(), nil
	}

	buf, err := Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("%w (%w)", ErrEncoding, err)
	}

	return Parse(buf)
}

// Interface returns v as plain Go data: nil, bool, float64, string, []any or
// map[string]any. When an object has duplicate keys the last one wins.
func (v *Value) Interface() any {
	switch v.t {
	case TypeBool:
		return v.b
	case TypeNumber:
		return v.n
	case TypeString:
		return string(v.s)
	case TypeArray:
		out := make([]any, len(v.a))
		for i := range v.a {
			out[i] = v.a[i].Interface()
		}

		return out
	case TypeObject:
		out := make(map[string]any, len(v.m))
		for i := range v.m {
			out[string(v.m[i].key)] = v.m[i].val.Interface()
		}

		return out
	}

	return nil
}

// Decode stores the contents of v into dst, which must be a pointer, using
// [Unmarshal] on the JSON text of v.
//
// Unmarshal failures are wrapped with [ErrDecoding].
func (v *Value) Decode(dst any) error {
	if err := Unmarshal(Stringify(v), dst); err != nil {
		return fmt.Errorf("%w (%w)", ErrDecoding, err)
	}

	return nil
}
