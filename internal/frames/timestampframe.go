package frames

import (
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// timestampFrameIDs are the ID3v2.4 frames whose text values are
// ID3v2.4 timestamps rather than free text.
var timestampFrameIDs = []string{"TDEN", "TDOR", "TDRC", "TDRL", "TDTG"}

func newTimeStampClass(id string) *frame.Class {
	return &frame.Class{
		ID:      id,
		Primary: "Text",
		Kind:    frame.KindTimeStamp,
		Specs: []spec.Spec{
			spec.EncodingSpec{FieldName: "Encoding"},
			spec.MultiSpec{
				FieldName: "Text",
				Subspecs:  []spec.Spec{spec.TimeStampSpec{FieldName: "value"}},
			},
		},
		Normalize:   func(f map[string]any) { frame.NormalizeTimeStamps(f, "Text") },
		Denormalize: func(f map[string]any) { frame.DenormalizeTimeStamps(f, "Text") },
	}
}

func init() {
	for _, id := range timestampFrameIDs {
		registry.Register(newTimeStampClass(id))
	}
}
