package id3v2

// SaveOption configures behavior when saving a tag.
//
// Options use the functional options pattern.
//
// Example:
//
//	err := tag.Save("song.mp3",
//	    id3v2.WithBackup(".bak"),
//	    id3v2.WithPadding(2048),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving a tag.
type saveOptions struct {
	backupSuffix    string // suffix for backup file (e.g., ".bak")
	validate        bool   // re-read after write to verify
	preserveModTime bool   // keep original modification time
	version         int    // ID3v2 major version to write: 3 or 4
	padding         int    // bytes of trailing zero padding after the last frame
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		version: 4,
		padding: 0,
	}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the
// original filename. For example, WithBackup(".bak") will create
// "song.mp3.bak" before modifying "song.mp3". An existing backup is
// overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify the saved
// tag parses back correctly.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time
// instead of updating it to the save time.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithVersion selects the ID3v2 major version to write: 3 (ID3v2.3)
// or 4 (ID3v2.4, the default). Frames that only exist in one version
// (e.g. TYER in v2.3 vs TDRC in v2.4) are not translated automatically.
func WithVersion(major int) SaveOption {
	return func(o *saveOptions) {
		o.version = major
	}
}

// WithPadding reserves n bytes of zero padding after the last frame.
// Save still rewrites the whole file on every call; it does not reuse
// existing padding to update a tag in place.
func WithPadding(n int) SaveOption {
	return func(o *saveOptions) {
		o.padding = n
	}
}
