// Package id3v2 reads and writes ID3v2.3 and ID3v2.4 tags (with a
// best-effort ID3v1/ID3v1.1 trailer fallback), following the frame
// registry in internal/registry and the declarative spec engine in
// internal/spec.
package id3v2

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3v2/internal/bitpad"
	"github.com/simonhull/id3v2/internal/frame"
	_ "github.com/simonhull/id3v2/internal/frames" // registers every frame class
	"github.com/simonhull/id3v2/internal/id3header"
	"github.com/simonhull/id3v2/internal/id3v1"
	"github.com/simonhull/id3v2/internal/registry"
	"github.com/simonhull/id3v2/internal/types"
	"github.com/simonhull/id3v2/internal/unsynch"
)

// headerSize is the fixed length of the ID3v2 tag header.
const headerSize = 10

// UnknownFrame is a frame whose ID either has no registered Class, or
// whose payload this package's Class could not decode (kept so a
// round-tripped Save doesn't silently drop data it doesn't understand).
type UnknownFrame struct {
	ID    string
	Flags uint16
	Data  []byte
}

// Tag is a decoded ID3v2 tag.
type Tag struct {
	// Version is the ID3v2 major version the tag was read as (3 or
	// 4). Save and WriteTo write ID3v2.4 unless WithVersion says
	// otherwise, whatever this field holds.
	Version int

	frames  map[string][]*frame.Frame
	unknown []UnknownFrame

	// Warnings collects non-fatal issues found while loading, unless
	// WithIgnoreWarnings was given.
	Warnings []Warning
}

func newTag(version int) *Tag {
	return &Tag{Version: version, frames: make(map[string][]*frame.Frame)}
}

// FramesByID returns every decoded frame with the given ID (most
// frame IDs appear at most once; TXXX, COMM, WXXX, UFID, and similar
// "multiple instances allowed" frames may have several).
func (t *Tag) FramesByID(id string) []*frame.Frame {
	return t.frames[id]
}

// Frames iterates over every decoded frame in the tag, keyed by frame
// ID. A frame ID with multiple stored instances (TXXX, COMM, WXXX,
// UFID, and similar) yields once per instance, each time under the
// same key.
//
// Example:
//
//	for id, f := range tag.Frames() {
//		fmt.Printf("%s: %v\n", id, f.Fields)
//	}
func (t *Tag) Frames() iter.Seq2[string, *frame.Frame] {
	return func(yield func(string, *frame.Frame) bool) {
		for id, fs := range t.frames {
			for _, f := range fs {
				if !yield(id, f) {
					return
				}
			}
		}
	}
}

// Frame returns the first decoded frame with the given ID, or nil.
func (t *Tag) Frame(id string) *frame.Frame {
	fs := t.frames[id]
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}

// UnknownFrames returns every frame the loader could not decode,
// preserved verbatim so Save round-trips them.
func (t *Tag) UnknownFrames() []UnknownFrame {
	return t.unknown
}

// SetFrame replaces every existing frame with f.ID with a single
// instance, f.
func (t *Tag) SetFrame(f *frame.Frame) {
	t.frames[f.ID] = []*frame.Frame{f}
}

// AddFrame appends f alongside any existing frames sharing its ID.
func (t *Tag) AddFrame(f *frame.Frame) {
	t.frames[f.ID] = append(t.frames[f.ID], f)
}

// DeleteFrames removes every frame with the given ID.
func (t *Tag) DeleteFrames(id string) {
	delete(t.frames, id)
}

func (t *Tag) warn(stage, message string, offset int64) {
	t.Warnings = append(t.Warnings, Warning{Stage: stage, Message: message, Offset: offset})
}

// Open reads the ID3v2 tag (and, if absent and allowed by options,
// the ID3v1 trailer) from the file at path.
func Open(path string, opts ...Option) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("id3v2: open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("id3v2: stat %s: %w", path, err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	header, err := id3header.Read(f, stat.Size(), path)
	if err != nil || (header.Major != 3 && header.Major != 4) {
		if options.v1Fallback {
			if tag, ferr := readID3v1Fallback(f); ferr == nil {
				return tag, nil
			}
		}
		if err == nil {
			return nil, &UnsupportedVersionError{Path: path, Major: header.Major}
		}
		return nil, ErrNoHeader
	}

	if _, err := f.Seek(id3header.Size, io.SeekStart); err != nil {
		return nil, err
	}
	body := make([]byte, header.BodySize)
	if _, err := io.ReadFull(f, body); err != nil {
		return nil, &CorruptedFileError{Path: path, Reason: "tag body shorter than declared size", Offset: id3header.Size}
	}

	tag := newTag(int(header.Major))
	if err := tag.parseFrames(body, header.Flags, options); err != nil {
		return nil, err
	}
	if options.ignoreWarnings {
		tag.Warnings = nil
	}
	return tag, nil
}

// ReadFrom reads a tag from r, which must support seeking to the end
// of the stream for the ID3v1 fallback.
func ReadFrom(r io.ReadSeeker, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if options.v1Fallback {
			if tag, err := readID3v1Fallback(r); err == nil {
				return tag, nil
			}
		}
		return nil, ErrNoHeader
	}

	if !bytes.Equal(header[0:3], []byte("ID3")) {
		if options.v1Fallback {
			if tag, err := readID3v1Fallback(r); err == nil {
				return tag, nil
			}
		}
		return nil, ErrNoHeader
	}

	major := header[3]
	if major != 3 && major != 4 {
		return nil, &UnsupportedVersionError{Major: major}
	}

	flags := header[5]
	size := int(bitpad.Decode(header[6:10], 7, true))

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, &CorruptedFileError{Reason: "tag body shorter than declared size", Offset: headerSize}
	}

	tag := newTag(int(major))
	if err := tag.parseFrames(body, flags, options); err != nil {
		return nil, err
	}

	if options.ignoreWarnings {
		tag.Warnings = nil
	}
	return tag, nil
}

const (
	headerFlagUnsync           = 1 << 7
	headerFlagExtendedHeader   = 1 << 6
	headerFlagExperimental     = 1 << 5
	headerFlagFooter           = 1 << 4
)

func (t *Tag) parseFrames(body []byte, headerFlags byte, options *openOptions) error {
	data := body
	if headerFlags&headerFlagUnsync != 0 && t.Version < 4 {
		decoded, err := unsynch.Decode(data)
		if err != nil {
			return &CorruptedFileError{Reason: fmt.Sprintf("tag unsynchronisation: %v", err)}
		}
		data = decoded
	}
	if headerFlags&headerFlagExtendedHeader != 0 {
		extSize := int(bitpad.Decode(data[0:4], 7, true))
		if extSize > len(data) {
			return &CorruptedFileError{Reason: "extended header size exceeds tag body"}
		}
		data = data[extSize:]
	}

	offset := int64(headerSize)
	for len(data) > 0 {
		if data[0] == 0x00 {
			// Padding: the rest of the tag body is zero-filled.
			break
		}

		frameHeaderSize := 10
		if len(data) < frameHeaderSize {
			t.warn("frame", "truncated frame header", offset)
			break
		}

		id := string(bytes.TrimRight(data[0:4], "\x00"))
		var frameSize int
		if t.Version >= 4 {
			frameSize = int(bitpad.Decode(data[4:8], 7, true))
		} else {
			frameSize = int(bitpad.Decode(data[4:8], 8, true))
		}
		rawFlags := uint16(data[8])<<8 | uint16(data[9])

		if frameSize < 0 || frameHeaderSize+frameSize > len(data) {
			if options.strictParsing {
				return &JunkFrameError{FrameID: id, Reason: "declared size exceeds remaining tag body"}
			}
			t.warn("frame", fmt.Sprintf("frame %s: declared size exceeds remaining tag body", id), offset)
			break
		}

		payload := data[frameHeaderSize : frameHeaderSize+frameSize]
		if err := t.decodeOneFrame(id, rawFlags, payload, options, offset); err != nil {
			return err
		}

		data = data[frameHeaderSize+frameSize:]
		offset += int64(frameHeaderSize + frameSize)
	}
	return nil
}

// decodeOneFrame decodes a single frame and stores it on t. It returns
// an error only when options.strictParsing is set and the frame could
// not be decoded, failing the whole load; otherwise an undecodable
// frame is kept as an UnknownFrame and recorded as a Warning.
func (t *Tag) decodeOneFrame(id string, rawFlags uint16, payload []byte, options *openOptions, offset int64) error {
	if options.knownFrameIDs != nil && !options.knownFrameIDs[id] {
		t.unknown = append(t.unknown, UnknownFrame{ID: id, Flags: rawFlags, Data: append([]byte(nil), payload...)})
		return nil
	}

	class := registry.Get(id)
	if class == nil {
		if options.strictParsing {
			return &JunkFrameError{FrameID: id, Reason: "unknown frame id"}
		}
		t.unknown = append(t.unknown, UnknownFrame{ID: id, Flags: rawFlags, Data: append([]byte(nil), payload...)})
		t.warn("frame", fmt.Sprintf("unknown frame id %s", id), offset)
		return nil
	}

	f, err := frame.FromData(class, t.Version, rawFlags, payload)
	if err != nil {
		if options.strictParsing {
			return &JunkFrameError{FrameID: id, Reason: err.Error()}
		}
		t.unknown = append(t.unknown, UnknownFrame{ID: id, Flags: rawFlags, Data: append([]byte(nil), payload...)})
		t.warn("frame", fmt.Sprintf("frame %s failed to decode: %v", id, err), offset)
		return nil
	}

	if options.loadedFrameHook != nil && !options.loadedFrameHook(id, f) {
		return nil
	}

	t.AddFrame(f)
	return nil
}

func readID3v1Fallback(r io.ReadSeeker) (*Tag, error) {
	if _, err := r.Seek(-id3v1.Size, io.SeekEnd); err != nil {
		return nil, err
	}
	buf := make([]byte, id3v1.Size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	v1, err := id3v1.Parse(buf)
	if err != nil {
		return nil, err
	}

	tag := newTag(3)
	for id, fields := range v1.ToFrameFields() {
		class := registry.Get(id)
		if class == nil {
			continue
		}
		f := &frame.Frame{ID: id, Class: class, Fields: fields}
		tag.AddFrame(f)
	}
	tag.warn("id3v1", "loaded from ID3v1 trailer, no ID3v2 header present", 0)
	return tag, nil
}

// Save writes the tag back to the file at path, replacing any
// existing ID3v2 header and frames at the start of the file while
// preserving the audio data that follows.
func (t *Tag) Save(path string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	original, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("id3v2: open %s: %w", path, err)
	}
	defer original.Close()

	if options.backupSuffix != "" {
		if err := copyFile(path, path+options.backupSuffix); err != nil {
			return fmt.Errorf("id3v2: backup: %w", err)
		}
	}

	existingHeaderLen, err := existingTagLength(original)
	if err != nil {
		return err
	}
	if _, err := original.Seek(existingHeaderLen, io.SeekStart); err != nil {
		return err
	}

	tmpPath := path + ".id3v2tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("id3v2: create temp file: %w", err)
	}

	if err := t.writeTagTo(out, options); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return err
	}
	if _, err := io.Copy(out, original); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("id3v2: copy audio data: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	var mtime os.FileInfo
	if options.preserveModTime {
		mtime, _ = os.Stat(path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("id3v2: replace %s: %w", path, err)
	}
	if mtime != nil {
		os.Chtimes(path, mtime.ModTime(), mtime.ModTime())
	}

	if options.validate {
		if _, err := Open(path); err != nil {
			return &types.UnsupportedWriteError{Reason: fmt.Sprintf("saved tag failed to re-read: %v", err)}
		}
	}
	return nil
}

// existingTagLength returns the byte length of r's current ID3v2 tag
// (header + body), or 0 if r has no ID3v2 header.
func existingTagLength(r io.ReadSeeker) (int64, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if _, serr := r.Seek(0, io.SeekStart); serr != nil {
			return 0, serr
		}
		return 0, nil
	}
	if !bytes.Equal(header[0:3], []byte("ID3")) {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return 0, err
		}
		return 0, nil
	}
	size := int64(bitpad.Decode(header[6:10], 7, true))
	return headerSize + size, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

// WriteTo renders the tag header and every frame to w using the
// default save options (ID3v2.4, no padding), implementing
// io.WriterTo. Use Save for backup/padding/version control.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := t.writeTagTo(&buf, defaultSaveOptions()); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func (t *Tag) writeTagTo(w io.Writer, options *saveOptions) error {
	body, err := t.renderFrames(options.version)
	if err != nil {
		return err
	}
	if options.padding > 0 {
		body = append(body, make([]byte, options.padding)...)
	}

	header := id3header.Header{
		Major:    byte(options.version),
		Minor:    0,
		Flags:    0,
		BodySize: len(body),
	}
	if err := id3header.Write(w, header); err != nil {
		return fmt.Errorf("id3v2: tag too large to encode: %w", err)
	}
	_, err = w.Write(body)
	return err
}

func (t *Tag) renderFrames(version int) ([]byte, error) {
	ids := make([]string, 0, len(t.frames))
	for id := range t.frames {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []byte
	for _, id := range ids {
		for _, f := range t.frames[id] {
			payload, err := f.WriteData(version)
			if err != nil {
				return nil, err
			}
			out = append(out, encodeFrameHeader(id, version, frame.EncodeFlags(version, f.Flags), len(payload))...)
			out = append(out, payload...)
		}
	}
	for _, uf := range t.unknown {
		out = append(out, encodeFrameHeader(uf.ID, version, uf.Flags, len(uf.Data))...)
		out = append(out, uf.Data...)
	}
	return out, nil
}

func encodeFrameHeader(id string, version int, flags uint16, payloadLen int) []byte {
	header := make([]byte, 10)
	copy(header[0:4], id)
	var sizeBytes []byte
	if version >= 4 {
		sizeBytes, _ = bitpad.Encode(uint64(payloadLen), 7, true, 4)
	} else {
		sizeBytes, _ = bitpad.Encode(uint64(payloadLen), 8, true, 4)
	}
	copy(header[4:8], sizeBytes)
	header[8] = byte(flags >> 8)
	header[9] = byte(flags)
	return header
}

// LoadMany opens multiple files concurrently, using up to
// runtime.NumCPU() goroutines, and returns their tags in the same
// order as paths. If any file fails to open, the error identifies
// which path failed.
func LoadMany(ctx context.Context, paths []string, opts ...Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
