package spec

import (
	"fmt"
)

// EncodingSpec reads the single encoding byte at the head of most
// text-bearing frames and sets ctx.Encoding for every later spec.
type EncodingSpec struct{ FieldName string }

func (s EncodingSpec) Name() string { return s.FieldName }

func (s EncodingSpec) Read(ctx *Context, data []byte) (any, []byte, error) {
	if len(data) == 0 {
		// BrokenButParsed lenience: a short text frame with no
		// encoding byte defaults to Latin-1.
		ctx.Encoding = Latin1
		return Latin1, nil, nil
	}
	enc := Encoding(data[0])
	if !enc.Valid() {
		enc = Latin1
	}
	ctx.Encoding = enc
	return enc, data[1:], nil
}

func (s EncodingSpec) Write(ctx *Context, value any) ([]byte, error) {
	enc, _ := value.(Encoding)
	ctx.Encoding = enc
	return []byte{byte(enc)}, nil
}

// ByteSpec reads a single raw byte.
type ByteSpec struct{ FieldName string }

func (s ByteSpec) Name() string { return s.FieldName }

func (s ByteSpec) Read(_ *Context, data []byte) (any, []byte, error) {
	if len(data) == 0 {
		return byte(0), nil, nil
	}
	return data[0], data[1:], nil
}

func (s ByteSpec) Write(_ *Context, value any) ([]byte, error) {
	b, _ := value.(byte)
	return []byte{b}, nil
}

// StringSpec reads exactly Length raw bytes (e.g. the 3-letter COMM
// language code).
type StringSpec struct {
	FieldName string
	Length    int
}

func (s StringSpec) Name() string { return s.FieldName }

func (s StringSpec) Read(_ *Context, data []byte) (any, []byte, error) {
	n := s.Length
	if n > len(data) {
		n = len(data)
	}
	value := string(data[:n])
	return value, data[n:], nil
}

func (s StringSpec) Write(_ *Context, value any) ([]byte, error) {
	str, _ := value.(string)
	out := make([]byte, s.Length)
	copy(out, str)
	return out, nil
}

// Latin1TextSpec reads bytes up to a single 0x00, decoded as Latin-1.
// Write renders the text alone; WriteAll appends the 0x00 terminator
// unless this is the last spec in a frame's list.
type Latin1TextSpec struct{ FieldName string }

func (s Latin1TextSpec) Name() string { return s.FieldName }

func (s Latin1TextSpec) Read(_ *Context, data []byte) (any, []byte, error) {
	i := findTerminator(data, Latin1)
	if i < 0 {
		return decodeText(data, Latin1), nil, nil
	}
	return decodeText(data[:i], Latin1), data[i+1:], nil
}

func (s Latin1TextSpec) Write(_ *Context, value any) ([]byte, error) {
	str, _ := value.(string)
	return encodeText(str, Latin1)
}

// EncodedTextSpec reads bytes up to the encoding-appropriate
// terminator (00, or 00 00 aligned to an even offset for UTF-16),
// decoded per ctx.Encoding. Write appends that terminator.
type EncodedTextSpec struct{ FieldName string }

func (s EncodedTextSpec) Name() string { return s.FieldName }

func (s EncodedTextSpec) Read(ctx *Context, data []byte) (any, []byte, error) {
	i := findTerminator(data, ctx.Encoding)
	if i < 0 {
		return decodeText(data, ctx.Encoding), nil, nil
	}
	rest := data[i+terminatorSize(ctx.Encoding):]
	return decodeText(data[:i], ctx.Encoding), rest, nil
}

func (s EncodedTextSpec) Write(ctx *Context, value any) ([]byte, error) {
	str, _ := value.(string)
	b, err := encodeText(str, ctx.Encoding)
	if err != nil {
		return nil, err
	}
	return append(b, make([]byte, terminatorSize(ctx.Encoding))...), nil
}

// BinaryDataSpec consumes all remaining bytes.
type BinaryDataSpec struct{ FieldName string }

func (s BinaryDataSpec) Name() string { return s.FieldName }

func (s BinaryDataSpec) Read(_ *Context, data []byte) (any, []byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil, nil
}

func (s BinaryDataSpec) Write(_ *Context, value any) ([]byte, error) {
	b, _ := value.([]byte)
	return b, nil
}

// IntegerSpec reads a big-endian unsigned integer of Width bytes.
type IntegerSpec struct {
	FieldName string
	Width     int
}

func (s IntegerSpec) Name() string { return s.FieldName }

func (s IntegerSpec) Read(_ *Context, data []byte) (any, []byte, error) {
	n := s.Width
	if n > len(data) {
		n = len(data)
	}
	var v uint64
	for _, b := range data[:n] {
		v = v<<8 | uint64(b)
	}
	return v, data[n:], nil
}

func (s IntegerSpec) Write(_ *Context, value any) ([]byte, error) {
	v, _ := value.(uint64)
	out := make([]byte, s.Width)
	for i := s.Width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out, nil
}

// TimeStampSpec reads an EncodedTextSpec and parses it into a
// TimeStamp.
type TimeStampSpec struct{ FieldName string }

func (s TimeStampSpec) Name() string { return s.FieldName }

func (s TimeStampSpec) Read(ctx *Context, data []byte) (any, []byte, error) {
	raw, rest, err := (EncodedTextSpec{}).Read(ctx, data)
	if err != nil {
		return nil, nil, err
	}
	ts, _ := ParseTimeStamp(raw.(string))
	return ts, rest, nil
}

func (s TimeStampSpec) Write(ctx *Context, value any) ([]byte, error) {
	ts, _ := value.(TimeStamp)
	return (EncodedTextSpec{}).Write(ctx, ts.String())
}

// MultiSpec repeats a tuple of sub-specs until the input is
// exhausted. A singleton MultiSpec (one sub-spec) flattens its result
// to a plain slice of values instead of a slice of one-element
// tuples.
type MultiSpec struct {
	FieldName string
	Subspecs  []Spec
}

func (s MultiSpec) Name() string { return s.FieldName }

func (s MultiSpec) Read(ctx *Context, data []byte) (any, []byte, error) {
	if len(s.Subspecs) == 1 {
		var out []any
		sub := s.Subspecs[0]
		for len(data) > 0 {
			v, rest, err := sub.Read(ctx, data)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, v)
			if len(rest) == len(data) {
				// No progress: avoid an infinite loop on a
				// misbehaving spec.
				break
			}
			data = rest
		}
		return out, nil, nil
	}

	var out [][]any
	for len(data) > 0 {
		tuple := make([]any, 0, len(s.Subspecs))
		for _, sub := range s.Subspecs {
			v, rest, err := sub.Read(ctx, data)
			if err != nil {
				return nil, nil, err
			}
			tuple = append(tuple, v)
			data = rest
		}
		out = append(out, tuple)
	}
	return out, nil, nil
}

func (s MultiSpec) Write(ctx *Context, value any) ([]byte, error) {
	var out []byte
	if len(s.Subspecs) == 1 {
		values, _ := value.([]any)
		sub := s.Subspecs[0]
		for _, v := range values {
			b, err := sub.Write(ctx, v)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
		return out, nil
	}

	tuples, _ := value.([][]any)
	for _, tuple := range tuples {
		if len(tuple) != len(s.Subspecs) {
			return nil, fmt.Errorf("multispec %s: tuple has %d values, want %d", s.FieldName, len(tuple), len(s.Subspecs))
		}
		for i, sub := range s.Subspecs {
			b, err := sub.Write(ctx, tuple[i])
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
	}
	return out, nil
}

// Latin1TextListSpec reads repeated null-separated Latin-1 strings
// until the input is exhausted, independent of the frame's current
// encoding (used by frames defined before encoding bytes existed).
type Latin1TextListSpec struct{ FieldName string }

func (s Latin1TextListSpec) Name() string { return s.FieldName }

func (s Latin1TextListSpec) Read(_ *Context, data []byte) (any, []byte, error) {
	var out []string
	for len(data) > 0 {
		i := findTerminator(data, Latin1)
		if i < 0 {
			out = append(out, decodeText(data, Latin1))
			data = nil
			break
		}
		out = append(out, decodeText(data[:i], Latin1))
		data = data[i+1:]
	}
	return out, nil, nil
}

func (s Latin1TextListSpec) Write(_ *Context, value any) ([]byte, error) {
	values, _ := value.([]string)
	var out []byte
	for i, v := range values {
		if i > 0 {
			out = append(out, 0x00)
		}
		b, err := encodeText(v, Latin1)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
