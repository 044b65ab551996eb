package frames

import (
	"strings"

	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// pairSpecs is the wire shape IPLS, TIPL, and TMCL all share: an
// encoding byte followed by role/person string pairs repeated to the
// end of the frame.
func pairSpecs(fieldName string) []spec.Spec {
	return []spec.Spec{
		spec.EncodingSpec{FieldName: "Encoding"},
		spec.MultiSpec{
			FieldName: fieldName,
			Subspecs: []spec.Spec{
				spec.EncodedTextSpec{FieldName: "role"},
				spec.EncodedTextSpec{FieldName: "person"},
			},
		},
	}
}

// newPeopleClass is IPLS (involved people list, v2.3): equality
// compares the full [][2]string of (role, person) pairs.
func newPeopleClass(id string) *frame.Class {
	return &frame.Class{
		ID:          id,
		Primary:     "People",
		Kind:        frame.KindPairs,
		Specs:       pairSpecs("People"),
		Normalize:   func(f map[string]any) { frame.NormalizePairs(f, "People") },
		Denormalize: func(f map[string]any) { frame.DenormalizePairs(f, "People") },
	}
}

// newCreditsClass is TIPL (involved people, v2.4) and TMCL (musician
// credits, v2.4): same wire shape as IPLS, but equality flattens each
// (role, person) pair into a single "role\x00person" string, matching
// mutagen's own TIPL/TMCL comparison (a fixture pair like ("a", "b")
// equals the plain string "a\x00b", not a tuple).
func newCreditsClass(id string) *frame.Class {
	return &frame.Class{
		ID:          id,
		Primary:     "Text",
		Kind:        frame.KindText,
		Specs:       pairSpecs("People"),
		Normalize:   normalizeCredits,
		Denormalize: denormalizeCredits,
	}
}

func normalizeCredits(f map[string]any) {
	frame.NormalizePairs(f, "People")
	pairs, _ := f["People"].([][2]string)
	text := make([]string, len(pairs))
	for i, p := range pairs {
		text[i] = p[0] + "\x00" + p[1]
	}
	f["Text"] = text
}

// denormalizeCredits lets a frame be built directly from a flattened
// Text list (no People set) by splitting each entry back into a pair
// on its first NUL.
func denormalizeCredits(f map[string]any) {
	if _, hasPeople := f["People"]; !hasPeople {
		if text, ok := f["Text"].([]string); ok {
			pairs := make([][2]string, len(text))
			for i, t := range text {
				role, person, _ := strings.Cut(t, "\x00")
				pairs[i] = [2]string{role, person}
			}
			f["People"] = pairs
		}
	}
	frame.DenormalizePairs(f, "People")
}

func init() {
	registry.Register(newPeopleClass("IPLS"))
	registry.Register(newCreditsClass("TIPL"))
	registry.Register(newCreditsClass("TMCL"))
}
