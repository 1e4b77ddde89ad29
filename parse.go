package jsonvalue

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// parser holds the state of a single parse: the input text and the scratch
// stacks shared by every nesting level.
//
// The stacks are strictly LIFO. A nested value pushes and pops its own slots
// before its parent commits, so a single set of stacks serves the whole tree.
type parser struct {
	json    []byte
	pos     int
	bytes   stack[byte]   // decoded string bytes
	values  stack[Value]  // array elements awaiting commit
	members stack[Member] // object members awaiting commit
}

// Parse parses text as exactly one JSON value surrounded by optional
// whitespace. The text ends at len(text) or at its first NUL byte.
//
// On failure the returned Value is null and the error is a [ParseError];
// use [errors.Is] with the Err* sentinels or [KindOf] to classify it.
//
// Example:
//
//	v, err := jsonvalue.Parse([]byte(`{"a":[1,2,3]}`))
//	if errors.Is(err, jsonvalue.ErrMissColon) {
//		// ...
//	}
func Parse(text []byte) (Value, error) {
	var (
		p parser
		v Value
	)

	if err := p.parse(&v, text); err != nil {
		return Value{}, err
	}

	return v, nil
}

// ParseString is [Parse] for string input.
func ParseString(text string) (Value, error) {
	return Parse([]byte(text))
}

// UnmarshalJSON implements [json.Unmarshaler]. It frees the prior payload of v
// and parses data into it. On error v is null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var p parser

	v.Free()

	return p.parse(v, data)
}

// parse parses text into v, which must be null. On failure v is left null.
func (p *parser) parse(v *Value, text []byte) error {
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}

	p.json, p.pos = text, 0
	defer func() { p.json = nil }()

	p.skipWhitespace()

	if err := p.parseValue(v); err != nil {
		v.Free()
		return err
	}

	p.skipWhitespace()

	if p.pos < len(p.json) {
		v.Free()
		return p.fail(RootNotSingular)
	}

	assertf(p.bytes.len() == 0 && p.values.len() == 0 && p.members.len() == 0,
		"scratch stacks not drained: bytes=%d values=%d members=%d", p.bytes.len(), p.values.len(), p.members.len())

	return nil
}

func (p *parser) fail(kind ErrorKind) error {
	return ParseError{Kind: kind, Offset: p.pos}
}

func (p *parser) failAt(kind ErrorKind, offset int) error {
	return ParseError{Kind: kind, Offset: offset}
}

// peek returns the byte at the read position, or 0 at end of text.
func (p *parser) peek() byte {
	if p.pos < len(p.json) {
		return p.json[p.pos]
	}

	return 0
}

// at returns the byte i positions ahead of the read position, or 0 past the end.
func (p *parser) at(i int) byte {
	if p.pos+i < len(p.json) {
		return p.json[p.pos+i]
	}

	return 0
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.json) && isWhitespace(p.json[p.pos]) {
		p.pos++
	}
}

func (p *parser) parseValue(v *Value) error {
	switch hintByte(p.peek()) {
	case HintNull:
		return p.parseLiteral(v, "null", Value{})
	case HintBool:
		if p.peek() == 't' {
			return p.parseLiteral(v, "true", Value{t: TypeBool, b: true})
		}

		return p.parseLiteral(v, "false", Value{t: TypeBool})
	case HintString:
		return p.parseString(v)
	case HintArray:
		return p.parseArray(v)
	case HintObject:
		return p.parseObject(v)
	case HintEmpty:
		return p.fail(ExpectValue)
	}

	return p.parseNumber(v)
}

func (p *parser) parseLiteral(v *Value, literal string, lv Value) error {
	if !bytes.HasPrefix(p.json[p.pos:], []byte(literal)) {
		return p.fail(InvalidValue)
	}

	p.pos += len(literal)
	*v = lv

	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseNumber validates the number grammar first and only then converts the
// validated span.
func (p *parser) parseNumber(v *Value) error {
	i := 0

	if p.at(i) == '-' {
		i++
	}

	switch c := p.at(i); {
	case c == '0':
		i++
		if isDigit(p.at(i)) {
			return p.failAt(InvalidValue, p.pos+i)
		}
	case c >= '1' && c <= '9':
		for i++; isDigit(p.at(i)); i++ {
		}
	default:
		return p.failAt(InvalidValue, p.pos+i)
	}

	if p.at(i) == '.' {
		i++
		if !isDigit(p.at(i)) {
			return p.failAt(InvalidValue, p.pos+i)
		}

		for i++; isDigit(p.at(i)); i++ {
		}
	}

	if c := p.at(i); c == 'e' || c == 'E' {
		i++
		if c := p.at(i); c == '+' || c == '-' {
			i++
		}

		if !isDigit(p.at(i)) {
			return p.failAt(InvalidValue, p.pos+i)
		}

		for i++; isDigit(p.at(i)); i++ {
		}
	}

	n, err := strconv.ParseFloat(string(p.json[p.pos:p.pos+i]), 64)
	if math.IsInf(n, 0) {
		return p.fail(NumberTooBig)
	}

	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return p.fail(InvalidValue)
	}

	p.pos += i
	*v = Value{t: TypeNumber, n: n}

	return nil
}

func (p *parser) parseString(v *Value) error {
	raw, err := p.parseStringRaw()
	if err != nil {
		return err
	}

	*v = Value{t: TypeString, s: ownedBytes(raw)}

	return nil
}

// parseStringRaw decodes the string token at the read position onto the byte
// stack and pops it. The returned slice aliases the stack and is only valid
// until the next push. On error the byte stack is rewound to where it started.
func (p *parser) parseStringRaw() ([]byte, error) {
	head := p.bytes.len()
	p.pos++ // opening quote

	for {
		if p.pos >= len(p.json) {
			p.bytes.rewind(head)
			return nil, p.fail(MissQuotationMark)
		}

		ch := p.json[p.pos]
		p.pos++

		switch {
		case ch == '"':
			return p.bytes.pop(p.bytes.len() - head), nil
		case ch == '\\':
			if err := p.parseEscape(); err != nil {
				p.bytes.rewind(head)
				return nil, err
			}
		case ch < 0x20:
			p.bytes.rewind(head)
			return nil, p.failAt(InvalidStringChar, p.pos-1)
		default:
			*p.bytes.pushOne() = ch
		}
	}
}

// parseEscape decodes the escape following a backslash.
func (p *parser) parseEscape() error {
	esc := p.peek()
	p.pos++

	switch esc {
	case '"', '\\', '/':
		*p.bytes.pushOne() = esc
	case 'b':
		*p.bytes.pushOne() = '\b'
	case 'f':
		*p.bytes.pushOne() = '\f'
	case 'n':
		*p.bytes.pushOne() = '\n'
	case 'r':
		*p.bytes.pushOne() = '\r'
	case 't':
		*p.bytes.pushOne() = '\t'
	case 'u':
		u, ok := p.parseHex4()
		if !ok {
			return p.fail(InvalidUnicodeHex)
		}

		if u >= 0xD800 && u <= 0xDBFF {
			if p.peek() != '\\' || p.at(1) != 'u' {
				return p.fail(InvalidUnicodeSurrogate)
			}

			p.pos += 2

			lo, ok := p.parseHex4()
			if !ok {
				return p.fail(InvalidUnicodeHex)
			}

			if lo < 0xDC00 || lo > 0xDFFF {
				return p.failAt(InvalidUnicodeSurrogate, p.pos-4)
			}

			u = ((u - 0xD800) << 10) + (lo - 0xDC00) + 0x10000
		}

		p.encodeUTF8(u)
	default:
		return p.failAt(InvalidStringEscape, p.pos-1)
	}

	return nil
}

// parseHex4 reads exactly four hex digits.
func (p *parser) parseHex4() (uint32, bool) {
	var u uint32

	for i := range 4 {
		c := p.at(i)

		switch {
		case c >= '0' && c <= '9':
			u = u<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			u = u<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			u = u<<4 | uint32(c-'A'+10)
		default:
			return 0, false
		}
	}

	p.pos += 4

	return u, true
}

// encodeUTF8 pushes the UTF-8 encoding of u. Lone low surrogates are encoded
// as their three byte form rather than replaced.
func (p *parser) encodeUTF8(u uint32) {
	switch {
	case u <= 0x7F:
		*p.bytes.pushOne() = byte(u)
	case u <= 0x7FF:
		b := p.bytes.push(2)
		b[0] = 0xC0 | byte(u>>6)
		b[1] = 0x80 | byte(u&0x3F)
	case u <= 0xFFFF:
		b := p.bytes.push(3)
		b[0] = 0xE0 | byte(u>>12)
		b[1] = 0x80 | byte((u>>6)&0x3F)
		b[2] = 0x80 | byte(u&0x3F)
	default:
		b := p.bytes.push(4)
		b[0] = 0xF0 | byte(u>>18)
		b[1] = 0x80 | byte((u>>12)&0x3F)
		b[2] = 0x80 | byte((u>>6)&0x3F)
		b[3] = 0x80 | byte(u&0x3F)
	}
}

// parseArray accumulates elements on the value stack and commits them into a
// freshly sized slice at the closing bracket. On failure only the elements
// already on the stack are owned, and each is freed.
func (p *parser) parseArray(v *Value) error {
	p.pos++ // [
	p.skipWhitespace()

	if p.peek() == ']' {
		p.pos++
		*v = Value{t: TypeArray}

		return nil
	}

	mark := p.values.len()
	size := 0

	var err error

	for {
		var e Value

		if err = p.parseValue(&e); err != nil {
			break
		}

		*p.values.pushOne() = e
		size++

		p.skipWhitespace()

		if p.peek() == ',' {
			p.pos++
			p.skipWhitespace()

			continue
		}

		if p.peek() == ']' {
			p.pos++

			elems := make([]Value, size)
			copy(elems, p.values.pop(size))
			*v = Value{t: TypeArray, a: elems}

			assertf(p.values.len() == mark, "value stack at %d after array commit, want %d", p.values.len(), mark)

			return nil
		}

		err = p.fail(MissCommaOrSquareBracket)

		break
	}

	for range size {
		p.values.pop(1)[0].Free()
	}

	assertf(p.values.len() == mark, "value stack at %d after array cleanup, want %d", p.values.len(), mark)

	return err
}

// parseObject mirrors parseArray with members. Keys are copied out of the
// byte stack before the member value is parsed.
func (p *parser) parseObject(v *Value) error {
	p.pos++ // {
	p.skipWhitespace()

	if p.peek() == '}' {
		p.pos++
		*v = Value{t: TypeObject}

		return nil
	}

	mark := p.members.len()
	size := 0

	var err error

	for {
		if p.peek() != '"' {
			err = p.fail(MissKey)
			break
		}

		var raw []byte

		if raw, err = p.parseStringRaw(); err != nil {
			break
		}

		key := ownedBytes(raw)

		p.skipWhitespace()

		if p.peek() != ':' {
			err = p.fail(MissColon)
			break
		}

		p.pos++
		p.skipWhitespace()

		var val Value

		if err = p.parseValue(&val); err != nil {
			break
		}

		*p.members.pushOne() = Member{key: key, val: val}
		size++

		p.skipWhitespace()

		if p.peek() == ',' {
			p.pos++
			p.skipWhitespace()

			continue
		}

		if p.peek() == '}' {
			p.pos++

			members := make([]Member, size)
			copy(members, p.members.pop(size))
			*v = Value{t: TypeObject, m: members}

			assertf(p.members.len() == mark, "member stack at %d after object commit, want %d", p.members.len(), mark)

			return nil
		}

		err = p.fail(MissCommaOrCurlyBracket)

		break
	}

	for range size {
		p.members.pop(1)[0].free()
	}

	assertf(p.members.len() == mark, "member stack at %d after object cleanup, want %d", p.members.len(), mark)

	return err
}
