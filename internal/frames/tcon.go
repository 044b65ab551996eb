package frames

import (
	"strconv"

	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/genre"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// newTCONClass is TCON: wire-identical to a plain repeated-text frame
// (newTextClass), plus a derived "Genres" field holding each text
// entry's decoded genre names per internal/genre's parenthesized-
// reference grammar.
func newTCONClass() *frame.Class {
	return &frame.Class{
		ID:      "TCON",
		Primary: "Text",
		Kind:    frame.KindText,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.MultiSpec{
				FieldName: "Text",
				Subspecs:  []spec.Spec{spec.EncodedTextSpec{FieldName: "value"}},
			},
		},
		Normalize:   normalizeTCON,
		Denormalize: denormalizeTCON,
	}
}

func normalizeTCON(f map[string]any) {
	frame.NormalizeStrings(f, "Text")
	text, _ := f["Text"].([]string)
	f["Genres"] = genre.Decode(text)
}

// denormalizeTCON lets a frame be built directly from a Genres list
// (no Text set) by re-encoding each name to its parenthesized numeric
// form where the name is a known table entry, and to the bare name
// otherwise. A frame with Text already set (e.g. one just read back)
// keeps its original entries untouched, since genre.Decode is lossy
// (it can split one entry into several names).
func denormalizeTCON(f map[string]any) {
	if _, hasText := f["Text"]; !hasText {
		if genres, ok := f["Genres"].([]string); ok {
			text := make([]string, len(genres))
			for i, g := range genres {
				if n, found := genre.Index(g); found {
					text[i] = "(" + strconv.Itoa(n) + ")"
				} else {
					text[i] = g
				}
			}
			f["Text"] = text
		}
	}
	frame.DenormalizeStrings(f, "Text")
}

func init() {
	registry.Register(newTCONClass())
}
