//go:build !debug

package jsonvalue

// assertf is a no-op without the debug build tag.
func assertf(bool, string, ...any) {}
