package frame

// Flags is the decoded form of a frame's 2-byte status/format flags,
// normalised across the v2.3 and v2.4 bit layouts (which place the
// same concerns at different bit positions).
type Flags struct {
	TagAlterPreservation  bool
	FileAlterPreservation bool
	ReadOnly              bool
	GroupingIdentity      bool
	Compression           bool
	Encryption            bool
	Unsynchronisation     bool
	DataLengthIndicator   bool
}

const (
	v23TagAlter    = 1 << 15
	v23FileAlter   = 1 << 14
	v23ReadOnly    = 1 << 13
	v23Compression = 1 << 7
	v23Encryption  = 1 << 6
	v23Grouping    = 1 << 5

	v24TagAlter    = 1 << 14
	v24FileAlter   = 1 << 13
	v24ReadOnly    = 1 << 12
	v24Grouping    = 1 << 6
	v24Compression = 1 << 3
	v24Encryption  = 1 << 2
	v24Unsync      = 1 << 1
	v24DataLength  = 1 << 0
)

// DecodeFlags interprets raw per the frame's tag version.
func DecodeFlags(version int, raw uint16) Flags {
	if version <= 3 {
		return Flags{
			TagAlterPreservation:  raw&v23TagAlter != 0,
			FileAlterPreservation: raw&v23FileAlter != 0,
			ReadOnly:              raw&v23ReadOnly != 0,
			Compression:           raw&v23Compression != 0,
			Encryption:            raw&v23Encryption != 0,
			GroupingIdentity:      raw&v23Grouping != 0,
		}
	}
	return Flags{
		TagAlterPreservation:  raw&v24TagAlter != 0,
		FileAlterPreservation: raw&v24FileAlter != 0,
		ReadOnly:              raw&v24ReadOnly != 0,
		GroupingIdentity:      raw&v24Grouping != 0,
		Compression:           raw&v24Compression != 0,
		Encryption:            raw&v24Encryption != 0,
		Unsynchronisation:     raw&v24Unsync != 0,
		DataLengthIndicator:   raw&v24DataLength != 0,
	}
}

// EncodeFlags renders f back to the wire layout for version.
func EncodeFlags(version int, f Flags) uint16 {
	var raw uint16
	if version <= 3 {
		if f.TagAlterPreservation {
			raw |= v23TagAlter
		}
		if f.FileAlterPreservation {
			raw |= v23FileAlter
		}
		if f.ReadOnly {
			raw |= v23ReadOnly
		}
		if f.Compression {
			raw |= v23Compression
		}
		if f.Encryption {
			raw |= v23Encryption
		}
		if f.GroupingIdentity {
			raw |= v23Grouping
		}
		return raw
	}
	if f.TagAlterPreservation {
		raw |= v24TagAlter
	}
	if f.FileAlterPreservation {
		raw |= v24FileAlter
	}
	if f.ReadOnly {
		raw |= v24ReadOnly
	}
	if f.GroupingIdentity {
		raw |= v24Grouping
	}
	if f.Compression {
		raw |= v24Compression
	}
	if f.Encryption {
		raw |= v24Encryption
	}
	if f.Unsynchronisation {
		raw |= v24Unsync
	}
	if f.DataLengthIndicator {
		raw |= v24DataLength
	}
	return raw
}
