package jsonvalue

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding     = errors.New("jsonvalue: encoding error")
	ErrDecoding     = errors.New("jsonvalue: decoding error")
	ErrJSONTooLarge = errors.New("jsonvalue: JSON text larger than configured read limit")
)

// ErrorKind classifies why a parse failed.
type ErrorKind int

const (
	NoError                  ErrorKind = iota // The parse succeeded.
	ExpectValue                               // Empty or whitespace-only input where a value was required.
	InvalidValue                              // A malformed literal or number.
	RootNotSingular                           // Non-whitespace bytes after the root value.
	NumberTooBig                              // A number outside float64 range.
	MissQuotationMark                         // The text ended inside a string.
	InvalidStringEscape                       // An unknown backslash escape.
	InvalidStringChar                         // A raw control byte inside a string.
	InvalidUnicodeHex                         // A \u escape without four hex digits.
	InvalidUnicodeSurrogate                   // A high surrogate not followed by a low surrogate.
	MissCommaOrSquareBracket                  // An array element not followed by ',' or ']'.
	MissKey                                   // An object member not starting with a string key.
	MissColon                                 // An object key not followed by ':'.
	MissCommaOrCurlyBracket                   // An object member not followed by ',' or '}'.
)

var errorKindNames = [...]string{
	NoError:                  "no error",
	ExpectValue:              "expect value",
	InvalidValue:             "invalid value",
	RootNotSingular:          "root not singular",
	NumberTooBig:             "number too big",
	MissQuotationMark:        "miss quotation mark",
	InvalidStringEscape:      "invalid string escape",
	InvalidStringChar:        "invalid string char",
	InvalidUnicodeHex:        "invalid unicode hex",
	InvalidUnicodeSurrogate:  "invalid unicode surrogate",
	MissCommaOrSquareBracket: "miss comma or square bracket",
	MissKey:                  "miss key",
	MissColon:                "miss colon",
	MissCommaOrCurlyBracket:  "miss comma or curly bracket",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel parse errors for use with [errors.Is]. Errors returned by [Parse]
// carry an offset and match these by kind.
var (
	ErrExpectValue              = newSentinel(ExpectValue)
	ErrInvalidValue             = newSentinel(InvalidValue)
	ErrRootNotSingular          = newSentinel(RootNotSingular)
	ErrNumberTooBig             = newSentinel(NumberTooBig)
	ErrMissQuotationMark        = newSentinel(MissQuotationMark)
	ErrInvalidStringEscape      = newSentinel(InvalidStringEscape)
	ErrInvalidStringChar        = newSentinel(InvalidStringChar)
	ErrInvalidUnicodeHex        = newSentinel(InvalidUnicodeHex)
	ErrInvalidUnicodeSurrogate  = newSentinel(InvalidUnicodeSurrogate)
	ErrMissCommaOrSquareBracket = newSentinel(MissCommaOrSquareBracket)
	ErrMissKey                  = newSentinel(MissKey)
	ErrMissColon                = newSentinel(MissColon)
	ErrMissCommaOrCurlyBracket  = newSentinel(MissCommaOrCurlyBracket)
)

// ParseError reports a grammar violation found by [Parse].
type ParseError struct {
	// Kind is the class of the violation.
	Kind ErrorKind
	// Offset is the byte offset into the input where the violation was
	// detected, or -1 for the package sentinels.
	Offset int
}

func newSentinel(k ErrorKind) ParseError {
	return ParseError{Kind: k, Offset: -1}
}

// Error implements the error interface.
func (e ParseError) Error() string {
	if e.Offset < 0 {
		return "jsonvalue: " + e.Kind.String()
	}

	return fmt.Sprintf("jsonvalue: %s at offset %d", e.Kind, e.Offset)
}

// Is returns true if t is a [ParseError] of the same kind.
func (e ParseError) Is(t error) bool {
	if perr, ok := t.(ParseError); ok {
		return e.Kind == perr.Kind
	}

	if perr, ok := t.(*ParseError); ok {
		return e.Kind == perr.Kind
	}

	return false
}

// KindOf returns the [ErrorKind] carried by err, [NoError] for a nil err, and
// false when err is not nil and not a [ParseError].
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return NoError, true
	}

	var perr ParseError
	if errors.As(err, &perr) {
		return perr.Kind, true
	}

	return NoError, false
}
