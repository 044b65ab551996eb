package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// TXXX is a user-defined text frame: an encoding byte, an encoded
// description, and one or more null-separated encoded text values.
func newTXXXClass() *frame.Class {
	return &frame.Class{
		ID:      "TXXX",
		Primary: "Text",
		Kind:    frame.KindText,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.EncodedTextSpec{FieldName: "Description"},
			spec.MultiSpec{
				FieldName: "Text",
				Subspecs:  []spec.Spec{spec.EncodedTextSpec{FieldName: "value"}},
			},
		},
		Normalize:   func(f map[string]any) { frame.NormalizeStrings(f, "Text") },
		Denormalize: func(f map[string]any) { frame.DenormalizeStrings(f, "Text") },
	}
}

func init() {
	registry.Register(newTXXXClass())
}
