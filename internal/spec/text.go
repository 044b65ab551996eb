package spec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeText decodes data per the ID3v2 encoding byte, matching the
// lenience real-world files require: invalid byte sequences are
// returned best-effort rather than failing the whole frame.
func decodeText(data []byte, enc Encoding) string {
	if len(data) == 0 {
		return ""
	}

	switch enc {
	case Latin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)

	case UTF16:
		// unicode.UseBOM defaults to big-endian when no BOM is
		// present, matching real-world encoders that omit it.
		d := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, err := d.Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)

	case UTF16BE:
		d := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := d.Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)

	case UTF8:
		if utf8.Valid(data) {
			return string(data)
		}
		return string(data)

	default:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)
	}
}

// encodeText renders s back to bytes for the given encoding. UTF-16
// (encoding 1) writes a leading byte-order mark, matching the wire
// format mutagen and every other ID3v2 writer emits.
func encodeText(s string, enc Encoding) ([]byte, error) {
	var e encoding.Encoding
	switch enc {
	case Latin1:
		e = charmap.ISO8859_1
	case UTF16:
		e = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case UTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF8:
		return []byte(s), nil
	default:
		e = charmap.ISO8859_1
	}
	return e.NewEncoder().Bytes([]byte(s))
}

// terminatorSize returns the width of the null terminator for enc.
func terminatorSize(enc Encoding) int {
	switch enc {
	case UTF16, UTF16BE:
		return 2
	default:
		return 1
	}
}

// findTerminator locates the encoding-appropriate null terminator in
// data, or -1 if none is present (the field then consumes the rest of
// the buffer — the lenience real files require, e.g. a short text
// frame with no terminator at all, or the misaligned single-null
// UTF-16 terminator mutagen's test suite exercises).
func findTerminator(data []byte, enc Encoding) int {
	switch enc {
	case UTF16, UTF16BE:
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	default:
		for i, b := range data {
			if b == 0 {
				return i
			}
		}
		return -1
	}
}
