package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// MCDI (music CD identifier) is a bare binary blob, the TOC bytes from
// the CD the track was ripped from.
func newMCDIClass() *frame.Class {
	return &frame.Class{
		ID:      "MCDI",
		Primary: "Data",
		Kind:    frame.KindBinary,
		Specs: []spec.Spec{
			spec.BinaryDataSpec{FieldName: "Data"},
		},
	}
}

// UFID (unique file identifier) and PRIV (private frame) share the
// same shape: a Latin-1 owner identifier followed by raw data.
func newOwnerDataClass(id string) *frame.Class {
	return &frame.Class{
		ID:      id,
		Primary: "Data",
		Kind:    frame.KindBinary,
		Specs: []spec.Spec{
			spec.Latin1TextSpec{FieldName: "Owner"},
			spec.BinaryDataSpec{FieldName: "Data"},
		},
	}
}

// GEOB (general encapsulated object): encoding, a Latin-1 MIME type,
// an encoded filename, an encoded description, and the raw object
// bytes.
func newGEOBClass() *frame.Class {
	return &frame.Class{
		ID:      "GEOB",
		Primary: "Data",
		Kind:    frame.KindBinary,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.Latin1TextSpec{FieldName: "MIMEType"},
			spec.EncodedTextSpec{FieldName: "Filename"},
			spec.EncodedTextSpec{FieldName: "Description"},
			spec.BinaryDataSpec{FieldName: "Data"},
		},
	}
}

func init() {
	registry.Register(newMCDIClass())
	registry.Register(newOwnerDataClass("UFID"))
	registry.Register(newOwnerDataClass("PRIV"))
	registry.Register(newGEOBClass())
}
