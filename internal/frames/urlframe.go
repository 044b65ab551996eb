package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// urlFrameIDs are the plain URL frames: no encoding byte, a single
// Latin-1 URL field with no terminator required.
var urlFrameIDs = []string{
	"WCOM", "WCOP", "WOAF", "WOAR", "WOAS", "WORS", "WPAY", "WPUB",
}

func newURLClass(id string) *frame.Class {
	return &frame.Class{
		ID:      id,
		Primary: "URL",
		Kind:    frame.KindURL,
		Specs: []spec.Spec{
			spec.Latin1TextSpec{FieldName: "URL"},
		},
	}
}

// WXXX carries a user-described URL: an encoding byte, an encoded
// description, and a Latin-1 URL.
func newWXXXClass() *frame.Class {
	return &frame.Class{
		ID:      "WXXX",
		Primary: "URL",
		Kind:    frame.KindURL,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.EncodedTextSpec{FieldName: "Description"},
			spec.Latin1TextSpec{FieldName: "URL"},
		},
	}
}

func init() {
	for _, id := range urlFrameIDs {
		registry.Register(newURLClass(id))
	}
	registry.Register(newWXXXClass())
}
