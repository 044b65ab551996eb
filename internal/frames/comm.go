package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// COMM (comment) and USLT (unsynchronised lyrics) share the same
// shape: encoding, a 3-letter language code, an encoded description,
// and one or more encoded text values.
func newCommentClass(id string) *frame.Class {
	return &frame.Class{
		ID:      id,
		Primary: "Text",
		Kind:    frame.KindText,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.StringSpec{FieldName: "Language", Length: 3},
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

// USER (terms of use) has no description: encoding, language, and
// text.
func newUSERClass() *frame.Class {
	return &frame.Class{
		ID:      "USER",
		Primary: "Text",
		Kind:    frame.KindText,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.StringSpec{FieldName: "Language", Length: 3},
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
	registry.Register(newCommentClass("COMM"))
	registry.Register(newCommentClass("USLT"))
	registry.Register(newUSERClass())
}
