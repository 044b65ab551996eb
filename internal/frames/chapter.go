package frames

import (
	"github.com/simonhull/id3v2/internal/bitpad"
	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/spec"
)

// newChapterClass is CHAP, the chapter frame (iTunes/Podcasting
// extension to ID3v2): a null-terminated element ID, four raw
// (non-synchsafe) big-endian millisecond/byte-offset fields, and a
// tail of embedded sub-frames — typically a TIT2 title — in the tag's
// own frame-header format.
func newChapterClass() *frame.Class {
	return &frame.Class{
		ID:      "CHAP",
		Primary: "SubFrames",
		Kind:    frame.KindBinary,
		Specs: []spec.Spec{
			spec.Latin1TextSpec{FieldName: "ElementID"},
			spec.IntegerSpec{FieldName: "StartTime", Width: 4},
			spec.IntegerSpec{FieldName: "EndTime", Width: 4},
			spec.IntegerSpec{FieldName: "StartOffset", Width: 4},
			spec.IntegerSpec{FieldName: "EndOffset", Width: 4},
			spec.BinaryDataSpec{FieldName: "SubFrames"},
		},
	}
}

func init() {
	registry.Register(newChapterClass())
}

// ChapterTitle decodes f's embedded TIT2 sub-frame, if any, falling
// back to the chapter's ElementID. Sub-frames are laid out exactly
// like top-level frames (10-byte header + payload), so this walks them
// the same way Tag.parseFrames walks the top-level frame loop.
func ChapterTitle(f *frame.Frame, version int) string {
	elementID, _ := f.Fields["ElementID"].(string)
	data, _ := f.Fields["SubFrames"].([]byte)

	for len(data) >= 10 {
		id := string(data[0:4])
		if data[0] == 0x00 {
			break
		}

		var size int
		if version >= 4 {
			size = int(bitpad.Decode(data[4:8], 7, true))
		} else {
			size = int(bitpad.Decode(data[4:8], 8, true))
		}
		flags := uint16(data[8])<<8 | uint16(data[9])
		if size < 0 || 10+size > len(data) {
			break
		}
		payload := data[10 : 10+size]

		if id == "TIT2" {
			if class := registry.Get(id); class != nil {
				if sub, err := frame.FromData(class, version, flags, payload); err == nil {
					if texts, ok := sub.Fields["Text"].([]string); ok && len(texts) > 0 {
						return texts[0]
					}
				}
			}
		}
		data = data[10+size:]
	}
	return elementID
}
