// Package types holds the error and warning types shared between the
// public id3v2 package and its internal decoders.
package types

import "fmt"

// OutOfBoundsError is returned when a read would reach past the end
// of the tag or file.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedVersionError is returned when a tag header names an
// ID3v2 major version this package does not decode.
type UnsupportedVersionError struct {
	Path  string
	Major byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: unsupported ID3v2.%d", e.Path, e.Major)
}

// CorruptedFileError is returned when the tag header or frame
// structure is invalid beyond what strict mode can route around.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// JunkFrameError is returned by strict parsing when a frame's header
// or declared size cannot be trusted (e.g. a size that would run past
// the end of the tag).
type JunkFrameError struct {
	Path    string
	FrameID string
	Reason  string
}

func (e *JunkFrameError) Error() string {
	return fmt.Sprintf("%s: junk frame %q: %s", e.Path, e.FrameID, e.Reason)
}

// Warning represents a non-fatal issue encountered while loading a
// tag: an unknown frame, a frame that failed to parse and was kept
// raw, or a lenient reinterpretation of malformed data.
type Warning struct {
	// Stage where the warning occurred: "header", "frame", "id3v1".
	Stage string

	// Message is a human-readable description.
	Message string

	// Offset is the byte offset where the issue occurred, if known.
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// UnsupportedWriteError indicates a tag cannot be saved as requested.
type UnsupportedWriteError struct {
	Reason string
}

func (e *UnsupportedWriteError) Error() string {
	return fmt.Sprintf("cannot save tag: %s", e.Reason)
}
