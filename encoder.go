package jsonvalue

import (
	"io"
)

// Encoder writes the JSON text of [Value]s to an [io.Writer], one document
// per line.
//
// An Encoder reuses its scratch buffer between calls, so encoding many values
// through one Encoder allocates only when a document is larger than any seen
// before. It is not safe for concurrent use.
type Encoder struct {
	w   io.Writer
	buf stack[byte]
}

// NewEncoder returns a new [*Encoder] utilizing w as the output.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the JSON text of v followed by a newline.
func (e *Encoder) Encode(v *Value) error {
	e.buf.rewind(0)

	stringifyValue(&e.buf, v)
	*e.buf.pushOne() = '\n'

	_, err := e.w.Write(e.buf.buf[:e.buf.len()])

	return err
}

// Close will close the underlying writer if it supports [io.Closer].
func (e *Encoder) Close() error {
	if c, ok := e.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
