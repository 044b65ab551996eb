package unsynch

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0xFF, 0xF0, 0x0F, 0x00},
		{0xFF, 0x00, 0x0F, 0xF0},
	}

	for _, d := range cases {
		enc := Encode(d)
		if bytes.Equal(enc, d) {
			t.Errorf("Encode(%v) left data unchanged", d)
		}

		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", d, err)
		}
		if !bytes.Equal(dec, d) {
			t.Errorf("Decode(Encode(%v)) = %v, want %v", d, dec, d)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	cases := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0xFF, 0xF0, 0x0F, 0x00},
	}

	for _, d := range cases {
		if _, err := Decode(d); err == nil {
			t.Errorf("Decode(%v): expected error", d)
		}
	}
}

func TestDecodeTerminalFF(t *testing.T) {
	dec, err := Decode([]byte{0x41, 0xFF})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec, []byte{0x41, 0xFF}) {
		t.Errorf("Decode trailing 0xFF = %v", dec)
	}
}
