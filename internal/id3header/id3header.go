// Package id3header decodes the fixed 10-byte ID3v2 tag header using
// internal/binary's bounds-checked SafeReader/ChainReader, for callers
// that have random access to the underlying file (Open, as opposed to
// ReadFrom's streaming io.ReadSeeker path).
package id3header

import (
	"fmt"
	"io"

	"github.com/simonhull/id3v2/internal/binary"
	"github.com/simonhull/id3v2/internal/bitpad"
)

// Size is the fixed length of an ID3v2 tag header.
const Size = 10

// Header is the decoded form of the 10-byte ID3v2 header.
type Header struct {
	Major byte
	Minor byte
	Flags byte
	// BodySize is the synchsafe-decoded size of the tag body that
	// follows the header (everything up to, but not including, any
	// footer).
	BodySize int
}

// Write encodes h to w as the fixed 10-byte ID3v2 header, using the
// same offset-tracked SafeWriter that Read's SafeReader counterpart
// uses for decoding.
func Write(w io.Writer, h Header) error {
	sizeBytes, err := bitpad.Encode(uint64(h.BodySize), 7, true, 4)
	if err != nil {
		return fmt.Errorf("id3header: %w", err)
	}

	sw := binary.NewSafeWriter(w)
	if err := sw.WriteString("ID3"); err != nil {
		return err
	}
	for _, b := range []byte{h.Major, h.Minor, h.Flags} {
		if err := binary.Write(sw, b); err != nil {
			return err
		}
	}
	for _, b := range sizeBytes {
		if err := binary.Write(sw, b); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes the header at the start of ra, which must be at least
// Size bytes long.
func Read(ra io.ReaderAt, size int64, path string) (*Header, error) {
	sr := binary.NewSafeReader(ra, size, path)
	r := binary.NewReader(sr, 0)
	cr := binary.NewChainReader(r)

	magic := cr.String(3, "ID3 magic")
	major := binary.ReadChained[uint8](cr, "major version")
	minor := binary.ReadChained[uint8](cr, "minor version")
	flags := binary.ReadChained[uint8](cr, "header flags")
	sizeBytes := [4]byte{
		binary.ReadChained[uint8](cr, "tag size byte 0"),
		binary.ReadChained[uint8](cr, "tag size byte 1"),
		binary.ReadChained[uint8](cr, "tag size byte 2"),
		binary.ReadChained[uint8](cr, "tag size byte 3"),
	}
	if err := cr.Error(); err != nil {
		return nil, err
	}
	if magic != "ID3" {
		return nil, fmt.Errorf("id3header: no ID3 magic at start of %s", path)
	}

	return &Header{
		Major:    major,
		Minor:    minor,
		Flags:    flags,
		BodySize: int(bitpad.Decode(sizeBytes[:], 7, true)),
	}, nil
}
