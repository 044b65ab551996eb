// Package id3v2 reads and writes ID3v2.3/ID3v2.4 tags, with a
// best-effort ID3v1/ID3v1.1 trailer fallback.
//
// id3v2 aims to be the inevitable choice for MP3 metadata in Go: a
// unified frame API that makes simple things simple (read the title,
// set the artist) and complex things possible (walk every frame,
// preserve unknown ones, control exactly what gets written back).
//
// # Quick Start
//
// Reading a tag:
//
//	tag, err := id3v2.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(tag.Frame("TPE1").Fields["Text"])
//	fmt.Println(tag.Frame("TIT2").Fields["Text"])
//
// Writing one back:
//
//	tag.SetFrame(myTitleFrame)
//	if err := tag.Save("song.mp3", id3v2.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Philosophy
//
// id3v2 embodies three principles:
//
// 1. Graceful degradation: a frame this package cannot decode is kept
// as raw bytes rather than dropped, so Save still round-trips it.
//
// 2. Lenience by default: real-world files violate the ID3v2 spec in
// ways that are harmless to tolerate (a missing encoding byte, a
// misaligned UTF-16 terminator), and those are always tolerated.
// WithStrictParsing makes frame-level problems (unknown frame IDs,
// undecodable or oversized frames) fatal when you need to detect
// corruption instead of surviving it.
//
// 3. Zero surprises: every concrete frame is a declarative list of
// field descriptors (internal/spec), not a hand-rolled parser per
// frame, so every frame behaves the same way under compression,
// encryption, grouping, and unsynchronisation.
//
// # Architecture
//
//	[Tag]                - Entry point with Open()/ReadFrom()
//	  ├─ [frame.Frame]   - One decoded frame, keyed by 4-char ID
//	  ├─ [UnknownFrame]  - Raw bytes for anything undecodable
//	  └─ [Warnings]      - Non-fatal issues found while loading
//
// Frame classes register themselves into internal/registry during
// init(), the same pattern used to add new frame families without
// touching the Tag type.
//
// # Advanced Usage
//
// Load many files concurrently:
//
//	ctx := context.Background()
//	tags, err := id3v2.LoadMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Walk every frame, including frames this package doesn't recognise:
//
//	for id, f := range tag.Frames() {
//		fmt.Printf("%s: %v\n", id, f.Fields)
//	}
//	for _, uf := range tag.UnknownFrames() {
//		fmt.Printf("unknown frame %s (%d bytes)\n", uf.ID, len(uf.Data))
//	}
//
// # Error Handling
//
// id3v2 distinguishes fatal errors from warnings:
//
//   - Fatal errors stop loading entirely: ErrNoHeader, UnsupportedVersionError,
//     CorruptedFileError, and (only with WithStrictParsing) JunkFrameError.
//   - Warnings describe a frame that was skipped or fell back to its raw
//     bytes; they never stop a load by default.
//
// Always check Tag.Warnings for issues found while loading:
//
//	for _, w := range tag.Warnings {
//		log.Printf("warning: %s", w)
//	}
package id3v2
