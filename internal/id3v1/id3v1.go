// Package id3v1 parses the 128-byte ID3v1/ID3v1.1 trailer appended to
// the end of many MP3 files, projecting it into the same frame
// vocabulary ID3v2 tags use.
package id3v1

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/simonhull/id3v2/internal/genre"
)

// Size is the fixed length of an ID3v1 trailer.
const Size = 128

// Tag is a decoded ID3v1/ID3v1.1 trailer.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	// Track is the ID3v1.1 track number, or 0 if the trailer predates
	// it (or the track byte position held a non-zero comment byte).
	Track int
	// Genre is the raw ID3v1 genre byte, resolved through genre.Table.
	Genre byte
}

// ErrNoTag is returned by Parse when data does not begin with the
// "TAG" magic.
var ErrNoTag = fmt.Errorf("id3v1: no TAG marker")

// Parse decodes a 128-byte ID3v1 trailer. data must be exactly Size
// bytes, as read from the final 128 bytes of a file.
func Parse(data []byte) (*Tag, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("id3v1: trailer must be %d bytes, got %d", Size, len(data))
	}
	if !bytes.HasPrefix(data, []byte("TAG")) {
		return nil, ErrNoTag
	}

	t := &Tag{
		Title:  trim(data[3:33]),
		Artist: trim(data[33:63]),
		Album:  trim(data[63:93]),
		Year:   trim(data[93:97]),
		Genre:  data[127],
	}

	commentField := data[97:127]
	if commentField[28] == 0x00 && commentField[29] != 0x00 {
		t.Comment = trim(commentField[:28])
		t.Track = int(commentField[29])
	} else {
		t.Comment = trim(commentField)
	}

	return t, nil
}

func trim(b []byte) string {
	i := bytes.IndexByte(b, 0x00)
	if i >= 0 {
		b = b[:i]
	}
	// ID3v1 text is Latin-1: each byte is the code point of the same value.
	runes := make([]rune, len(b))
	for j, c := range b {
		runes[j] = rune(c)
	}
	return strings.TrimRight(string(runes), " ")
}

// GenreName resolves t.Genre through the ID3v1/Winamp genre table.
func (t *Tag) GenreName() string {
	return genre.Lookup(int(t.Genre))
}

// ToFrameFields projects the trailer into the field maps the ID3v2
// frame classes for TIT2, TPE1, TALB, TYER, COMM, TRCK, and TCON use,
// keyed by frame ID, from which the root package's ID3v1 fallback
// builds a tag's frames when the file has no ID3v2 header.
func (t *Tag) ToFrameFields() map[string]map[string]any {
	out := map[string]map[string]any{
		"TIT2": {"Encoding": byte(0), "Text": []string{t.Title}},
		"TPE1": {"Encoding": byte(0), "Text": []string{t.Artist}},
		"TALB": {"Encoding": byte(0), "Text": []string{t.Album}},
		"TYER": {"Encoding": byte(0), "Text": []string{t.Year}},
		"COMM": {
			"Encoding":    byte(0),
			"Language":    "eng",
			"Description": "",
			"Text":        []string{t.Comment},
		},
		"TCON": {"Encoding": byte(0), "Text": []string{t.GenreName()}},
	}
	if t.Track > 0 {
		out["TRCK"] = map[string]any{"Encoding": byte(0), "Text": []string{strconv.Itoa(t.Track)}}
	}
	return out
}
