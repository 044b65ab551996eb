package frame

import (
	"bytes"
	"testing"

	"github.com/simonhull/id3v2/internal/spec"
)

func textClass(id string) *Class {
	return &Class{
		ID:      id,
		Primary: "Text",
		Kind:    KindText,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.MultiSpec{FieldName: "Text", Subspecs: []spec.Spec{spec.EncodedTextSpec{FieldName: "value"}}},
		},
		Normalize:   func(f map[string]any) { NormalizeStrings(f, "Text") },
		Denormalize: func(f map[string]any) { DenormalizeStrings(f, "Text") },
	}
}

func TestFromData_PlainText(t *testing.T) {
	class := textClass("TALB")
	data := []byte("\x00a/b")

	f, err := FromData(class, 3, 0, data)
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}
	if !f.Equal("a/b") {
		t.Errorf("Equal(%q) = false, want true", "a/b")
	}
}

func TestFromData_ZlibCompressed(t *testing.T) {
	class := textClass("TPE1")
	// mutagen's zlib_latin1 fixture: compression flag (0x0080, v2.3),
	// decompresses to "\x00this is a/test".
	data := []byte{
		0x78, 0x9c, 0x63, 0x28, 0xc9, 0xc8, 0x2c, 0x56, 0x00, 0xa2,
		0x44, 0xfd, 0x92, 0xd4, 0xe2, 0x12, 0x00, 0x26, 0x7f, 0x05, 0x25,
	}

	f, err := FromData(class, 3, 0x0080, data)
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}
	if !f.Equal("this is a/test") {
		t.Errorf("decompressed text mismatch, fields=%v", f.Fields)
	}
}

func TestFrame_ToInteger(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"2004", 2004},
		{"02/10", 2},
	}

	for _, c := range cases {
		class := textClass("TRCK")
		f := &Frame{ID: "TRCK", Class: class, Fields: map[string]any{
			"Encoding": spec.Latin1,
			"Text":     []string{c.text},
		}}
		got, err := f.ToInteger()
		if err != nil {
			t.Fatalf("ToInteger(%q): %v", c.text, err)
		}
		if got != c.want {
			t.Errorf("ToInteger(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestWriteData_RoundTrip(t *testing.T) {
	class := textClass("TPE2")
	orig, err := FromData(class, 4, 0, []byte("\x00ab\x00cd\x00ef"))
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}

	data, err := orig.WriteData(4)
	if err != nil {
		t.Fatalf("WriteData: %v", err)
	}

	again, err := FromData(class, 4, 0, data)
	if err != nil {
		t.Fatalf("FromData(round trip): %v", err)
	}

	if !reflectEqual(orig.Fields, again.Fields) {
		t.Errorf("round trip mismatch: %v != %v", orig.Fields, again.Fields)
	}
}

func TestCanonicalText_RoundTrip(t *testing.T) {
	class := textClass("TIT2")
	f, err := FromData(class, 4, 0, []byte("\x00ab\x00cd"))
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}

	text, err := f.CanonicalText()
	if err != nil {
		t.Fatalf("CanonicalText: %v", err)
	}

	parsed, err := ParseCanonical(class, text)
	if err != nil {
		t.Fatalf("ParseCanonical: %v", err)
	}

	if !reflectEqual(f.Fields, parsed.Fields) {
		t.Errorf("canonical round trip mismatch: %v != %v", f.Fields, parsed.Fields)
	}
}

func reflectEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		switch vv := v.(type) {
		case []string:
			bs, ok := bv.([]string)
			if !ok || len(vv) != len(bs) {
				return false
			}
			for i := range vv {
				if vv[i] != bs[i] {
					return false
				}
			}
		case []byte:
			bs, ok := bv.([]byte)
			if !ok || !bytes.Equal(vv, bs) {
				return false
			}
		default:
			if v != bv {
				return false
			}
		}
	}
	return true
}
