package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// APIC (attached picture): encoding, a Latin-1 MIME type, a picture
// type byte, an encoded description, and the raw image bytes.
func newAPICClass() *frame.Class {
	return &frame.Class{
		ID:      "APIC",
		Primary: "Data",
		Kind:    frame.KindBinary,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.Latin1TextSpec{FieldName: "MIMEType"},
			spec.ByteSpec{FieldName: "PictureType"},
			spec.EncodedTextSpec{FieldName: "Description"},
			spec.BinaryDataSpec{FieldName: "Data"},
		},
	}
}

func init() {
	registry.Register(newAPICClass())
}
