package id3v2

// Option configures behavior when loading an ID3v2 tag.
//
// Options use the functional options pattern.
//
// Example:
//
//	tag, err := id3v2.Open("song.mp3",
//	    id3v2.WithStrictParsing(),
//	)
type Option func(*openOptions)

// LoadedFrameHook is called once per successfully decoded frame,
// before it is stored on the Tag. Returning false discards the frame
// (it is neither kept nor counted as unknown); this mirrors mutagen's
// load_frame hook used by its own multiframe-hack regression test.
type LoadedFrameHook func(id string, f any) bool

// openOptions holds configuration for loading a tag.
type openOptions struct {
	strictParsing   bool // fail the whole load on an unknown, undecodable, or oversized frame
	ignoreWarnings  bool // suppress all warnings
	knownFrameIDs   map[string]bool
	loadedFrameHook LoadedFrameHook
	v1Fallback      bool // fall back to the ID3v1 trailer if no ID3v2 header is found
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		v1Fallback:     true,
	}
}

// WithStrictParsing treats frame-level problems as fatal errors.
//
// By default, Open continues past issues like unknown frame IDs, a
// frame whose payload fails to decode, or a frame whose declared size
// runs past the end of the tag, recording a Warning. With strict
// parsing enabled, the first such issue fails the whole load. A
// truncated frame header at the end of the tag body, and the notice
// that a tag came from the ID3v1 trailer, stay warnings.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, non-fatal issues are collected in Tag.Warnings. This
// option discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithKnownFrames restricts frame decoding to the given set of frame
// IDs; any other frame ID present in the tag is kept as an unknown
// frame (its raw bytes preserved, not parsed). Passing no IDs keeps
// every frame as unknown; leaving the option out decodes every
// registered frame class.
func WithKnownFrames(ids ...string) Option {
	return func(o *openOptions) {
		m := make(map[string]bool, len(ids))
		for _, id := range ids {
			m[id] = true
		}
		o.knownFrameIDs = m
	}
}

// WithLoadedFrameHook installs hook, called after each frame decodes
// successfully and before it is stored on the Tag.
func WithLoadedFrameHook(hook LoadedFrameHook) Option {
	return func(o *openOptions) {
		o.loadedFrameHook = hook
	}
}

// WithoutID3v1Fallback disables falling back to the trailing 128-byte
// ID3v1 tag when a file has no ID3v2 header.
func WithoutID3v1Fallback() Option {
	return func(o *openOptions) {
		o.v1Fallback = false
	}
}
