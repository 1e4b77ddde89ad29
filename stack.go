package jsonvalue

// DefaultStackSize is the initial capacity of a scratch stack on its first push.
const DefaultStackSize = 256

// stack is the growable scratch buffer used while parsing and stringifying.
//
// Regions returned by push and pop alias the backing array and are only valid
// until the next push, which may reallocate. Callers copy out or commit first.
type stack[T any] struct {
	buf []T
	top int
}

// push reserves n slots at the top of the stack and returns them for writing.
func (s *stack[T]) push(n int) []T {
	if s.top+n > len(s.buf) {
		size := len(s.buf)
		if size == 0 {
			size = DefaultStackSize
		}

		for s.top+n > size {
			size += size >> 1
		}

		grown := make([]T, size)
		copy(grown, s.buf[:s.top])
		s.buf = grown
	}

	region := s.buf[s.top : s.top+n]
	s.top += n

	return region
}

// pushOne is push(1) returning a pointer to the slot.
func (s *stack[T]) pushOne() *T {
	return &s.push(1)[0]
}

// pop removes the top n slots and returns them.
func (s *stack[T]) pop(n int) []T {
	if n > s.top {
		panic("jsonvalue: scratch stack underflow")
	}

	s.top -= n

	return s.buf[s.top : s.top+n]
}

// rewind discards everything above mark.
func (s *stack[T]) rewind(mark int) {
	assertf(mark <= s.top, "rewind to %d above top %d", mark, s.top)
	s.top = mark
}

// len returns the current logical size.
func (s *stack[T]) len() int {
	return s.top
}

// cap returns the allocated capacity.
func (s *stack[T]) cap() int {
	return len(s.buf)
}

// reset empties the stack and zeroes the whole backing array. Popped regions
// are not cleared by pop, so this is what keeps a pooled stack from pinning
// payloads it once held.
func (s *stack[T]) reset() {
	clear(s.buf)
	s.top = 0
}
