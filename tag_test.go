package id3v2

import (
	"bytes"
	"testing"

	"github.com/simonhull/id3v2/internal/bitpad"
)

// buildTagBytes assembles a minimal ID3v2.3 tag: header + one frame.
func buildTagBytes(t *testing.T, frameID string, frameFlags uint16, payload []byte) []byte {
	t.Helper()
	frameHeader := make([]byte, 10)
	copy(frameHeader[0:4], frameID)
	sizeBytes, err := bitpad.Encode(uint64(len(payload)), 8, true, 4)
	if err != nil {
		t.Fatalf("bitpad.Encode: %v", err)
	}
	copy(frameHeader[4:8], sizeBytes)
	frameHeader[8] = byte(frameFlags >> 8)
	frameHeader[9] = byte(frameFlags)

	body := append(frameHeader, payload...)

	headerSizeBytes, err := bitpad.Encode(uint64(len(body)), 7, true, 4)
	if err != nil {
		t.Fatalf("bitpad.Encode: %v", err)
	}
	header := []byte{'I', 'D', '3', 3, 0, 0}
	header = append(header, headerSizeBytes...)

	return append(header, body...)
}

func TestReadFrom_SimpleTag(t *testing.T) {
	data := buildTagBytes(t, "TIT2", 0, []byte("\x00Silence"))
	tag, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if tag.Version != 3 {
		t.Errorf("Version = %d, want 3", tag.Version)
	}
	f := tag.Frame("TIT2")
	if f == nil {
		t.Fatal("TIT2 frame missing")
	}
	if !f.Equal("Silence") {
		t.Errorf("TIT2 = %v, want Silence", f.Fields)
	}
}

func TestReadFrom_UnknownFrame(t *testing.T) {
	data := buildTagBytes(t, "ZYXW", 0, []byte("whatever"))
	tag, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(tag.UnknownFrames()) != 1 {
		t.Fatalf("UnknownFrames() = %v, want 1 entry", tag.UnknownFrames())
	}
	if tag.UnknownFrames()[0].ID != "ZYXW" {
		t.Errorf("unknown frame id = %q", tag.UnknownFrames()[0].ID)
	}
}

func TestReadFrom_NoHeader(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader(make([]byte, 200)), WithoutID3v1Fallback())
	if err != ErrNoHeader {
		t.Errorf("ReadFrom() error = %v, want ErrNoHeader", err)
	}
}

func TestWriteTo_RoundTrip(t *testing.T) {
	data := buildTagBytes(t, "TALB", 0, []byte("\x00a/b"))
	tag, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	again, err := ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadFrom(round trip): %v", err)
	}
	f := again.Frame("TALB")
	if f == nil || !f.Equal("a/b") {
		t.Errorf("round trip TALB = %v", f)
	}
}

func TestReadFrom_StrictParsingFailsOnJunk(t *testing.T) {
	// A frame header claiming a size far larger than the tag body.
	frameHeader := []byte{'T', 'I', 'T', '2', 0x7f, 0x7f, 0x7f, 0x7f, 0, 0}
	header := []byte{'I', 'D', '3', 3, 0, 0}
	sizeBytes, _ := bitpad.Encode(uint64(len(frameHeader)), 7, true, 4)
	header = append(header, sizeBytes...)
	data := append(header, frameHeader...)

	_, err := ReadFrom(bytes.NewReader(data), WithStrictParsing(), WithoutID3v1Fallback())
	if err == nil {
		t.Error("ReadFrom() with strict parsing: expected error on junk frame size")
	}
}
