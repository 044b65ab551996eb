package id3v2

import (
	"github.com/simonhull/id3v2/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type UnsupportedVersionError = types.UnsupportedVersionError

// CorruptedFileError is an alias to types.CorruptedFileError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type CorruptedFileError = types.CorruptedFileError

// JunkFrameError is an alias to types.JunkFrameError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type JunkFrameError = types.JunkFrameError

// UnsupportedWriteError is an alias to types.UnsupportedWriteError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type UnsupportedWriteError = types.UnsupportedWriteError

// Warning is an alias to types.Warning for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning

// ErrNoHeader is returned when a file or reader has no ID3v2 header
// at all (no "ID3" magic at the start of the stream).
var ErrNoHeader = noHeaderError{}

type noHeaderError struct{}

func (noHeaderError) Error() string { return "id3v2: no ID3 header found" }
