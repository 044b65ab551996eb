package id3header

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	h := Header{Major: 4, Minor: 0, Flags: 0, BodySize: 1234}

	var buf bytes.Buffer
	if err := Write(&buf, h); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != Size {
		t.Fatalf("Write produced %d bytes, want %d", buf.Len(), Size)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()), "test")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if *got != h {
		t.Errorf("Read() = %+v, want %+v", *got, h)
	}
}

func TestRead_BadMagic(t *testing.T) {
	data := []byte{'X', 'Y', 'Z', 3, 0, 0, 0, 0, 0, 0}
	_, err := Read(bytes.NewReader(data), int64(len(data)), "test")
	if err == nil {
		t.Fatal("Read() with bad magic: expected error")
	}
}

func TestRead_TooShort(t *testing.T) {
	data := []byte{'I', 'D', '3'}
	_, err := Read(bytes.NewReader(data), int64(len(data)), "test")
	if err == nil {
		t.Fatal("Read() on truncated header: expected error")
	}
	if !strings.Contains(err.Error(), "test") {
		t.Errorf("Read() error = %v, want it to mention the path", err)
	}
}
