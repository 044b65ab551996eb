package frame

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/simonhull/id3v2/internal/spec"
)

// CanonicalText renders the frame's fields as a self-describing,
// parseable text form: the frame ID followed by a JSON object mapping
// each field name to {"t": type tag, "v": value}. It exists so
// ParseCanonical(f.CanonicalText()) reconstructs an equal Frame,
// independent of how any single field happens to be typed.
func (f *Frame) CanonicalText() (string, error) {
	names := make([]string, 0, len(f.Fields))
	for name := range f.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	tagged := make(map[string]taggedValue, len(names))
	for _, name := range names {
		tv, err := encodeTagged(f.Fields[name])
		if err != nil {
			return "", fmt.Errorf("frame %s: field %s: %w", f.ID, name, err)
		}
		tagged[name] = tv
	}

	body, err := json.Marshal(tagged)
	if err != nil {
		return "", fmt.Errorf("frame %s: %w", f.ID, err)
	}
	return f.ID + string(body), nil
}

// ParseCanonical parses CanonicalText's output back into a Frame
// belonging to class. The type tags restore each field's normalized Go
// type directly, so Normalize is not run again; Flags are not part of
// the text form and come back zero.
func ParseCanonical(class *Class, text string) (*Frame, error) {
	if len(text) < len(class.ID) || text[:len(class.ID)] != class.ID {
		return nil, fmt.Errorf("frame: canonical text %q does not start with %s", text, class.ID)
	}
	body := text[len(class.ID):]

	var tagged map[string]taggedValue
	if err := json.Unmarshal([]byte(body), &tagged); err != nil {
		return nil, fmt.Errorf("frame %s: %w", class.ID, err)
	}

	fields := make(map[string]any, len(tagged))
	for name, tv := range tagged {
		v, err := decodeTagged(tv)
		if err != nil {
			return nil, fmt.Errorf("frame %s: field %s: %w", class.ID, name, err)
		}
		fields[name] = v
	}

	return &Frame{ID: class.ID, Class: class, Fields: fields}, nil
}

type taggedValue struct {
	Type  string          `json:"t"`
	Value json.RawMessage `json:"v"`
}

func encodeTagged(v any) (taggedValue, error) {
	var typ string
	switch v.(type) {
	case []string:
		typ = "strs"
	case spec.Encoding:
		typ = "enc"
	case []spec.TimeStamp:
		typ = "ts_list"
	case spec.TimeStamp:
		typ = "ts"
	case [][2]string:
		typ = "pairs"
	case byte:
		typ = "byte"
	case uint64:
		typ = "uint64"
	case string:
		typ = "str"
	case []byte:
		typ = "bytes"
	case nil:
		typ = "nil"
	default:
		return taggedValue{}, fmt.Errorf("unsupported field type %T", v)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return taggedValue{}, err
	}
	return taggedValue{Type: typ, Value: raw}, nil
}

func decodeTagged(tv taggedValue) (any, error) {
	switch tv.Type {
	case "strs":
		var v []string
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "enc":
		var v spec.Encoding
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "ts_list":
		var v []spec.TimeStamp
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "ts":
		var v spec.TimeStamp
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "pairs":
		var v [][2]string
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "byte":
		var v byte
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "uint64":
		var v uint64
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "str":
		var v string
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "bytes":
		var v []byte
		err := json.Unmarshal(tv.Value, &v)
		return v, err
	case "nil":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown tagged type %q", tv.Type)
	}
}
