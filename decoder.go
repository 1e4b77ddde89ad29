package jsonvalue

import (
	"io"
)

// Decoder reads a complete JSON document from an [io.Reader] and parses it
// into a [Value]. It is not an incremental parser: Decode consumes the reader
// up to EOF (or the configured limit) before parsing.
type Decoder struct {
	r io.Reader // Underlying reader
	n int64     // Read limit in bytes (0 means no limit)
}

// NewDecoder creates and returns a new [*Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// SetLimit configures a maximum number of bytes (n) to read for a single
// document. If the document exceeds this limit, [Decoder.Decode] returns
// [ErrJSONTooLarge]. A limit of 0 or less disables the read limit.
//
// Example:
//
//	dec := jsonvalue.NewDecoder(body)
//	dec.SetLimit(1024 * 1024) // Limit reads to 1 MiB
func (d *Decoder) SetLimit(n int64) {
	d.n = max(n, 0)
}

// Decode reads the remaining input and parses it into v, freeing whatever v
// held before. On any error v is null.
func (d *Decoder) Decode(v *Value) error {
	v.Free()

	r := d.r
	if d.n > 0 {
		// Read one byte past the limit to tell "exactly n" from "more than n".
		r = io.LimitReader(d.r, d.n+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if d.n > 0 && int64(len(data)) > d.n {
		return ErrJSONTooLarge
	}

	var p parser

	return p.parse(v, data)
}

// Close attempts to close the underlying [io.Reader] if it implements [io.Closer].
// Returns nil if the reader does not implement [io.Closer].
func (d *Decoder) Close() error {
	if c, ok := d.r.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
