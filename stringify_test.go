package jsonvalue

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringify_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []string{
		"null",
		"false",
		"true",
		"0",
		"-0",
		"1",
		"-1",
		"1.5",
		"-1.5",
		"3.25",
		"0.0001",
		"1e-05",
		"1e+20",
		"1.234e+20",
		"1.234e-20",
		"1.0000000000000002",
		`""`,
		`"Hello"`,
		`"Hello\nWorld"`,
		`"\" \\ / \b \f \n \r \t"`,
		`"Hello\u0000World"`,
		`"\u001f\u0001"`,
		`"日本"`,
		"[]",
		`[null,false,true,123,"abc",[1,2,3]]`,
		"{}",
		`{"n":null,"f":false,"t":true,"i":123,"s":"abc","a":[1,2,3],"o":{"1":1,"2":2,"3":3}}`,
		`{"":""}`,
		`[[[]],{"a":{"b":[{}]}}]`,
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			v, err := ParseString(in)
			require.NoError(t, err)
			assert.Equal(t, in, StringifyString(&v))
		})
	}
}

func TestStringify_CanonicalizesInput(t *testing.T) {
	t.Parallel()

	//nolint:govet //Do not reorder struct
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Whitespace dropped", " [ 1 , { \"a\" : true } ] ", `[1,{"a":true}]`},
		{"Solidus unescaped", `"\/"`, `"/"`},
		{"Unicode escape decoded", `"\u0041"`, `"A"`},
		{"Surrogate pair decoded", `"\uD834\uDD1E"`, "\"\xF0\x9D\x84\x9E\""},
		{"Exponent normalized", "1E2", "100"},
		{"Trailing zeros dropped", "1.500", "1.5"},
		{"Uppercase control escape lowered", `"\u001F"`, `"\u001f"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, StringifyString(&v))
		})
	}
}

func TestStringify_Numbers(t *testing.T) {
	t.Parallel()

	nums := []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		0.1,
		1.0 / 3.0,
		math.Pi,
		math.E,
		1e300,
		1.0000000000000002,
		4.9406564584124654e-324,
		2.2250738585072009e-308,
		2.2250738585072014e-308,
		math.MaxFloat64,
		-math.MaxFloat64,
	}

	for _, n := range nums {
		var v Value

		v.SetNumber(n)

		back, err := Parse(Stringify(&v))
		require.NoError(t, err)
		assert.Equal(t, n, back.Number()) //nolint:testifylint //exact round trip is intended
		assert.Equal(t, math.Signbit(n), math.Signbit(back.Number()))
	}
}

func TestStringify_NonFiniteIsNull(t *testing.T) {
	t.Parallel()

	for _, n := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var v Value

		v.SetNumber(n)
		assert.Equal(t, "null", StringifyString(&v))
	}
}

func TestStringify_EscapesControlBytes(t *testing.T) {
	t.Parallel()

	var v Value

	v.SetString("a\x01b\x1fc\x7f")
	assert.Equal(t, `"a\u0001b\u001fc`+"\x7f\"", StringifyString(&v))
}

func TestStringify_Terminated(t *testing.T) {
	t.Parallel()

	v, err := ParseString(`{"a":[1,2]}`)
	require.NoError(t, err)

	text := Stringify(&v)
	require.Equal(t, `{"a":[1,2]}`, string(text))
	require.Equal(t, len(text)+1, cap(text))
	assert.Equal(t, byte(0), text[:len(text)+1][len(text)])
}

func TestStringify_GrowsPastInitialStack(t *testing.T) {
	t.Parallel()

	var v Value

	// Every byte escapes to six, well past the initial stack size.
	v.SetString(strings.Repeat("\x01", 1000))

	text := Stringify(&v)
	assert.Len(t, text, 6002)
	assert.Equal(t, `"\u0001`, string(text[:7]))

	back, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, Equal(&v, &back))
}

func TestValue_StringAndMarshalJSON(t *testing.T) {
	t.Parallel()

	v, err := ParseString(`[true, "x"]`)
	require.NoError(t, err)

	assert.Equal(t, `[true,"x"]`, v.String())

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[true,"x"]`, string(out))
}
