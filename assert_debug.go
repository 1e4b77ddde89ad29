//go:build debug

package jsonvalue

import "fmt"

// assertf panics with a formatted message when cond is false.
// It is compiled in only with the debug build tag.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("jsonvalue: assertion failed: "+format, args...))
	}
}
