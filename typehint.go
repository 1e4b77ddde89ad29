package jsonvalue

// TypeHint is a quick classification of the JSON value that likely starts a
// text, based solely on its first non-whitespace byte. The parser dispatches
// on it; callers can use [HintType] to peek at a document without parsing it.
//
// Note: This is only a hint and does not guarantee the text is valid JSON of
// that type.
type TypeHint int

const (
	HintUnknown TypeHint = iota // The first byte cannot start a JSON value.
	HintArray                   // Likely a JSON array (starts with '[').
	HintObject                  // Likely a JSON object (starts with '{').
	HintBool                    // Likely a JSON boolean (starts with 't' or 'f').
	HintNumber                  // Likely a JSON number (starts with '-', '0'-'9').
	HintString                  // Likely a JSON string (starts with '"').
	HintNull                    // Likely the JSON null value (starts with 'n').

	// HintEmpty is returned when the text is empty or whitespace only.
	HintEmpty
)

// String returns a short name for the hint.
func (h TypeHint) String() string {
	switch h {
	case HintArray:
		return "array"
	case HintObject:
		return "object"
	case HintBool:
		return "bool"
	case HintNumber:
		return "number"
	case HintString:
		return "string"
	case HintNull:
		return "null"
	case HintEmpty:
		return "empty"
	}

	return "unknown"
}

// HintType examines the first non-whitespace byte of data and returns a
// [TypeHint] for the value it would start. Like [Parse], data ends at its
// first NUL byte.
func HintType(data []byte) TypeHint {
	for _, c := range data {
		if !isWhitespace(c) {
			return hintByte(c)
		}
	}

	return HintEmpty
}

// hintByte classifies a single lead byte. A NUL byte marks end of text.
func hintByte(c byte) TypeHint {
	switch c {
	case 0:
		return HintEmpty
	case '[':
		return HintArray
	case '{':
		return HintObject
	case 't', 'f':
		return HintBool
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return HintNumber
	case '"':
		return HintString
	case 'n':
		return HintNull
	}

	return HintUnknown
}

// isWhitespace reports whether c is JSON insignificant whitespace.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
