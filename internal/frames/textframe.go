// Package frames registers the concrete ID3v2 frame classes — one
// frame.Class per frame ID — with internal/registry, grouped here by
// family (plain text, timestamp, URL, comment, binary, people-list).
package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// textFrameIDs are every plain repeated-text frame this package
// registers: a single encoding byte followed by one or more
// null-separated encoded text values.
// TCON is registered separately (tcon.go) since it carries a derived
// decoded-genre view on top of the plain repeated-text shape.
var textFrameIDs = []string{
	"TALB", "TBPM", "TCOM", "TCOP", "TENC", "TEXT", "TFLT",
	"TIT1", "TIT2", "TIT3", "TKEY", "TLAN", "TLEN", "TMED", "TMOO",
	"TOAL", "TOFN", "TOLY", "TOPE", "TOWN", "TPE1", "TPE2", "TPE3",
	"TPE4", "TPOS", "TPRO", "TPUB", "TRCK", "TRSN", "TRSO", "TSOA",
	"TSOP", "TSOT", "TSO2", "TSOC", "TSRC", "TSSE", "TSST", "TYER",
}

func newTextClass(id string) *frame.Class {
	return &frame.Class{
		ID:      id,
		Primary: "Text",
		Kind:    frame.KindText,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
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
	for _, id := range textFrameIDs {
		registry.Register(newTextClass(id))
	}
}
