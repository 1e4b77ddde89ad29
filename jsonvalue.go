// Package jsonvalue provides a self-contained JSON value engine: it parses
// JSON text into an in-memory tree of [Value]s, exposes typed accessors and
// mutators over the tree, and serializes the tree back to JSON text.
//
// # Overview
//
// The parser is a strict recursive-descent decoder for RFC 8259 JSON. It does
// not accept comments, trailing commas, leading zeros, or any literal other
// than null, true and false. Strings are decoded to UTF-8, including \u
// surrogate pairs. Every failure is reported as a [ParseError] whose kind
// names the violated rule, and a failed parse never exposes a partial tree.
//
// A [Value] exclusively owns its payload. [Copy] deep-clones, [Move]
// transfers ownership and leaves its source null, [Swap] exchanges two
// values, and [Equal] compares structurally (object member order does not
// matter, array order does).
//
// # Features
//
//   - [Parse] / [ParseString] and [Stringify] / [StringifyString] for text conversion.
//   - Accessors and construction helpers for every JSON type ([Value.SetArray], [Value.PushBackArrayElement], [Value.SetObjectValue], ...).
//   - [encoding/json] interop: [Value] implements [json.Marshaler] and [json.Unmarshaler].
//   - Conversion to and from native Go values via [FromGo], [Value.Interface] and [Value.Decode].
//   - Pluggable JSON Libraries for that conversion: Replace [Marshal] and [Unmarshal].
//   - [Encoder] and [Decoder] for writing to an [io.Writer] and reading a whole document from an [io.Reader].
//   - [Pool] for bounding and reusing scratch memory across many concurrent parses.
//
// # Basic Usage
//
//	v, err := jsonvalue.ParseString(`{"name":"gopher","tags":["a","b"]}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tags := v.FindObjectValue("tags")
//	fmt.Println(tags.ArraySize()) // 2
//
//	tags.PushBackArrayElement().SetString("c")
//	fmt.Println(v.String()) // {"name":"gopher","tags":["a","b","c"]}
//
// # Concurrency
//
// Parse and Stringify share no state between calls and may run concurrently
// on different trees. A single tree must not be mutated from more than one
// goroutine without external synchronization.
//
// Parsing recurses once per nesting level, so a pathologically deep document
// uses stack proportional to its depth.
package jsonvalue

import (
	"encoding/json"
)

// Marshal defines the function used by [FromGo] to turn Go values into JSON
// text before parsing. By default, it uses [encoding/json.Marshal].
// Applications can replace this variable *at startup* with a compatible
// function from another JSON library.
//
// Example (using goccy/go-json):
//
//	import gojson "github.com/goccy/go-json"
//
//	func init() {
//	    jsonvalue.Marshal = gojson.Marshal
//	}
var Marshal = json.Marshal

// Unmarshal defines the function used by [Value.Decode] to fill Go values
// from the JSON text of a [Value]. By default, it uses [encoding/json.Unmarshal].
// Applications can replace this variable *at startup*.
//
// Example (using goccy/go-json):
//
//	import gojson "github.com/goccy/go-json"
//
//	func init() {
//	    jsonvalue.Unmarshal = gojson.Unmarshal
//	}
var Unmarshal = json.Unmarshal
