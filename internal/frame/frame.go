// Package frame implements the abstract ID3v2 frame: flag-driven
// (de)compression and unsynchronisation around a payload decoded by a
// frame class's declarative spec.Spec list, plus the equality and
// numeric-coercion rules every concrete frame shares.
package frame

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/simonhull/id3v2/internal/spec"
	"github.com/simonhull/id3v2/internal/unsynch"
)

// Kind distinguishes the small number of equality/coercion shapes a
// frame's primary field can take.
type Kind int

const (
	KindText Kind = iota
	KindURL
	KindBinary
	KindPairs
	KindTimeStamp
)

// Class is a registered frame type: its spec list plus the metadata
// the generic equality, numeric-coercion, and canonical-text logic
// need to treat every frame without a type switch per frame ID.
type Class struct {
	ID      string
	Specs   []spec.Spec
	Primary string
	Kind    Kind

	// Normalize converts the raw spec.ReadAll() output (MultiSpec
	// fields come back as []any or [][]any) into the concrete types a
	// frame family's own accessors expect, e.g. []string or
	// [][2]string. Optional; nil means the raw fields are used as-is.
	Normalize func(fields map[string]any)
	// Denormalize is Normalize's inverse, run before spec.WriteAll so
	// a MultiSpec sees the []any/[][]any shape it was written against.
	Denormalize func(fields map[string]any)
}

// Frame is one decoded ID3v2 frame.
type Frame struct {
	ID     string
	Class  *Class
	Flags  Flags
	Fields map[string]any
}

// ErrEncrypted signals a frame using an encryption method this package
// does not implement; callers store such frames as opaque unknowns
// rather than failing the whole tag.
var ErrEncrypted = fmt.Errorf("frame: encrypted frame, cannot decode")

// FromData decodes one frame's raw payload (the bytes after the
// 10-byte frame header) per class's spec list, applying unsynch
// reversal, the data-length-indicator skip, and zlib decompression as
// flags dictate.
func FromData(class *Class, version int, rawFlags uint16, data []byte) (*Frame, error) {
	flags := DecodeFlags(version, rawFlags)

	if flags.Encryption {
		return nil, ErrEncrypted
	}

	if flags.Unsynchronisation {
		decoded, err := unsynch.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("frame %s: unsynch: %w", class.ID, err)
		}
		data = decoded
	}

	if flags.DataLengthIndicator && len(data) >= 4 {
		data = data[4:]
	}

	if flags.Compression {
		inflated, err := zlibInflate(data)
		if err != nil {
			return nil, fmt.Errorf("frame %s: zlib: %w", class.ID, err)
		}
		data = inflated
	}

	ctx := &spec.Context{Version: version}
	fields, err := spec.ReadAll(ctx, class.Specs, data)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", class.ID, err)
	}
	if class.Normalize != nil {
		class.Normalize(fields)
	}

	return &Frame{ID: class.ID, Class: class, Flags: flags, Fields: fields}, nil
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func zlibInflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteData renders the frame payload back to wire bytes: the inverse
// of FromData's spec decode, compression, and unsynchronisation.
func (f *Frame) WriteData(version int) ([]byte, error) {
	ctx := &spec.Context{Version: version}
	fields := f.Fields
	if f.Class.Denormalize != nil {
		fields = cloneFields(fields)
		f.Class.Denormalize(fields)
	}
	data, err := spec.WriteAll(ctx, f.Class.Specs, fields)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", f.ID, err)
	}

	if f.Flags.Compression {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("frame %s: zlib: %w", f.ID, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("frame %s: zlib: %w", f.ID, err)
		}
		data = buf.Bytes()
	}

	if f.Flags.Unsynchronisation {
		data = unsynch.Encode(data)
	}

	return data, nil
}

// Equal implements the frame's payload-equality rule: a frame equals
// its primary payload. For text frames a single-element text list
// equals its sole string, and a multi-element list equals the
// equivalent []string; URL and binary frames compare their one field
// directly; pair frames (IPLS-family) compare the full [][2]string.
func (f *Frame) Equal(other any) bool {
	v := f.Fields[f.Class.Primary]

	switch f.Class.Kind {
	case KindText:
		texts, _ := v.([]string)
		if len(texts) == 1 {
			if s, ok := other.(string); ok {
				return texts[0] == s
			}
		}
		if s, ok := other.([]string); ok {
			return stringsEqual(texts, s)
		}
		return false

	case KindTimeStamp:
		timestamps, _ := v.([]spec.TimeStamp)
		texts := make([]string, len(timestamps))
		for i, ts := range timestamps {
			texts[i] = ts.String()
		}
		if len(texts) == 1 {
			if s, ok := other.(string); ok {
				return texts[0] == s
			}
		}
		if s, ok := other.([]string); ok {
			return stringsEqual(texts, s)
		}
		return false

	case KindURL:
		s, ok := other.(string)
		return ok && v == s

	case KindBinary:
		b, ok := other.([]byte)
		if !ok {
			return false
		}
		vb, _ := v.([]byte)
		return bytes.Equal(vb, b)

	case KindPairs:
		pairs, _ := v.([][2]string)
		want, ok := other.([][2]string)
		if !ok || len(pairs) != len(want) {
			return false
		}
		for i := range pairs {
			if pairs[i] != want[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Genres returns the decoded genre names for a TCON frame. It returns
// nil for any other frame, since only TCON's Class.Normalize populates
// a "Genres" field.
func (f *Frame) Genres() []string {
	g, _ := f.Fields["Genres"].([]string)
	return g
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToInteger returns the numeric value of the frame's primary text
// field: the leading run of decimal digits in its first element (so
// "02/10" yields 2, and "2004" yields 2004). It fails for frames with
// no digit prefix, or whose primary field isn't text.
func (f *Frame) ToInteger() (int64, error) {
	if f.Class.Kind != KindText {
		return 0, fmt.Errorf("frame %s: not a numeric text frame", f.ID)
	}
	texts, _ := f.Fields[f.Class.Primary].([]string)
	if len(texts) == 0 {
		return 0, fmt.Errorf("frame %s: no text to coerce", f.ID)
	}
	s := texts[0]
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("frame %s: %q has no leading digits", f.ID, s)
	}
	var n int64
	for _, c := range s[:i] {
		n = n*10 + int64(c-'0')
	}
	return n, nil
}
