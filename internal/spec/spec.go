// Package spec implements the declarative field descriptors that
// drive ID3v2 frame payload parsing. Each concrete frame type is
// defined as an ordered list of Specs; a Spec knows how to read one
// value from a byte cursor (given the frame's current text encoding)
// and how to write it back.
package spec

import "fmt"

// Encoding is an ID3v2 text encoding byte.
type Encoding byte

const (
	Latin1  Encoding = 0
	UTF16   Encoding = 1
	UTF16BE Encoding = 2
	UTF8    Encoding = 3
)

func (e Encoding) Valid() bool {
	return e <= UTF8
}

// Context threads the state a frame's spec list shares while decoding
// or encoding: the tag version (3 or 4; no spec in this package reads
// it today) and the current text encoding, set by an EncodingSpec and
// read by every EncodedTextSpec/MultiSpec that follows it.
type Context struct {
	Version  int
	Encoding Encoding
}

// Spec is a typed field descriptor for one part of a frame payload.
type Spec interface {
	// Name is the field name the decoded value is stored under.
	Name() string
	// Read consumes a value from the front of data, returning the
	// value, the unconsumed remainder, and an error only for
	// conditions the frame engine should treat as corrupt-frame (most
	// specs are lenient and return a zero value instead of an error).
	Read(ctx *Context, data []byte) (value any, rest []byte, err error)
	// Write renders value back into wire bytes.
	Write(ctx *Context, value any) ([]byte, error)
}

// ReadAll drives a spec list over data in declaration order, as
// internal/frame does for each concrete frame. Returned in its own
// function so tests can exercise the engine without a Frame.
func ReadAll(ctx *Context, specs []Spec, data []byte) (map[string]any, error) {
	fields := make(map[string]any, len(specs))
	for _, s := range specs {
		v, rest, err := s.Read(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("spec %s: %w", s.Name(), err)
		}
		fields[s.Name()] = v
		data = rest
	}
	return fields, nil
}

// WriteAll renders a spec list back to wire bytes in declaration order.
func WriteAll(ctx *Context, specs []Spec, fields map[string]any) ([]byte, error) {
	var out []byte
	for i, s := range specs {
		b, err := s.Write(ctx, fields[s.Name()])
		if err != nil {
			return nil, fmt.Errorf("spec %s: %w", s.Name(), err)
		}
		if _, ok := s.(Latin1TextSpec); ok && i < len(specs)-1 {
			b = append(b, 0x00)
		}
		out = append(out, b...)
	}
	return out, nil
}
