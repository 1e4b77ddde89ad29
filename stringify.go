package jsonvalue

import (
	"math"
	"strconv"
)

const hexDigits = "0123456789abcdef"

// Stringify renders v as compact JSON text.
//
// The returned slice is owned by the caller. Its backing array holds a zero
// byte right after the text, so text[:len(text)+1] is NUL terminated.
//
// Numbers use the shortest representation that parses back to the same
// float64. NaN and infinities, which JSON cannot express, render as null.
func Stringify(v *Value) []byte {
	var s stack[byte]

	stringifyValue(&s, v)

	n := s.len()
	*s.pushOne() = 0

	return s.buf[:n:n+1]
}

// StringifyString is [Stringify] returning a string.
func StringifyString(v *Value) string {
	return string(Stringify(v))
}

// String implements [fmt.Stringer] by returning the JSON text of v.
func (v *Value) String() string {
	return StringifyString(v)
}

// MarshalJSON implements [json.Marshaler].
func (v *Value) MarshalJSON() ([]byte, error) {
	return Stringify(v), nil
}

func putString(s *stack[byte], str string) {
	copy(s.push(len(str)), str)
}

func stringifyValue(s *stack[byte], v *Value) {
	switch v.t {
	case TypeNull:
		putString(s, "null")
	case TypeBool:
		if v.b {
			putString(s, "true")
		} else {
			putString(s, "false")
		}
	case TypeNumber:
		stringifyNumber(s, v.n)
	case TypeString:
		stringifyString(s, v.s)
	case TypeArray:
		*s.pushOne() = '['

		for i := range v.a {
			if i > 0 {
				*s.pushOne() = ','
			}

			stringifyValue(s, &v.a[i])
		}

		*s.pushOne() = ']'
	case TypeObject:
		*s.pushOne() = '{'

		for i := range v.m {
			if i > 0 {
				*s.pushOne() = ','
			}

			stringifyString(s, v.m[i].key)
			*s.pushOne() = ':'
			stringifyValue(s, &v.m[i].val)
		}

		*s.pushOne() = '}'
	}
}

func stringifyNumber(s *stack[byte], n float64) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		putString(s, "null")
		return
	}

	var num [32]byte

	out := strconv.AppendFloat(num[:0], n, 'g', -1, 64)
	copy(s.push(len(out)), out)
}

// stringifyString reserves the worst case of six output bytes per input byte
// plus quotes, writes in place and gives back the unused tail.
func stringifyString(s *stack[byte], str []byte) {
	region := s.push(len(str)*6 + 2)
	w := 0

	region[w] = '"'
	w++

	for _, ch := range str {
		switch ch {
		case '"', '\\':
			region[w], region[w+1] = '\\', ch
			w += 2
		case '\b':
			region[w], region[w+1] = '\\', 'b'
			w += 2
		case '\f':
			region[w], region[w+1] = '\\', 'f'
			w += 2
		case '\n':
			region[w], region[w+1] = '\\', 'n'
			w += 2
		case '\r':
			region[w], region[w+1] = '\\', 'r'
			w += 2
		case '\t':
			region[w], region[w+1] = '\\', 't'
			w += 2
		default:
			if ch < 0x20 {
				copy(region[w:], `\u00`)
				region[w+4] = hexDigits[ch>>4]
				region[w+5] = hexDigits[ch&0xF]
				w += 6
			} else {
				region[w] = ch
				w++
			}
		}
	}

	region[w] = '"'
	w++

	s.rewind(s.len() - (len(region) - w))
}
