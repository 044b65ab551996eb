package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeStamp is an ID3v2.4 timestamp: a prefix of YYYY-MM-DDTHH:MM:SS
// with any suffix of fields absent. Its textual form is the longest
// prefix with all leading components present, and ordering is
// lexicographic on that text.
type TimeStamp struct {
	Year, Month, Day, Hour, Minute, Second *int
}

// ParseTimeStamp parses the ID3v2.4 timestamp grammar: YYYY optionally
// followed by -MM, -DD, THH, :MM, :SS, each only meaningful if every
// earlier component is present.
func ParseTimeStamp(s string) (TimeStamp, error) {
	var ts TimeStamp
	if len(s) < 4 {
		return ts, fmt.Errorf("spec: timestamp %q too short", s)
	}

	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return ts, fmt.Errorf("spec: invalid timestamp year in %q: %w", s, err)
	}
	ts.Year = &year
	rest := s[4:]

	fields := []struct {
		sep    byte
		target **int
	}{
		{'-', &ts.Month},
		{'-', &ts.Day},
	}
	for _, f := range fields {
		if len(rest) == 0 || rest[0] != f.sep {
			return ts, nil
		}
		n, adv, ok := leadingInt(rest[1:])
		if !ok {
			return ts, nil
		}
		*f.target = &n
		rest = rest[1+adv:]
	}

	if len(rest) == 0 || (rest[0] != 'T' && rest[0] != ' ') {
		return ts, nil
	}
	n, adv, ok := leadingInt(rest[1:])
	if !ok {
		return ts, nil
	}
	ts.Hour = &n
	rest = rest[1+adv:]

	for _, target := range []**int{&ts.Minute, &ts.Second} {
		if len(rest) == 0 || rest[0] != ':' {
			return ts, nil
		}
		n, adv, ok := leadingInt(rest[1:])
		if !ok {
			return ts, nil
		}
		*target = &n
		rest = rest[1+adv:]
	}

	return ts, nil
}

func leadingInt(s string) (value int, consumed int, ok bool) {
	i := 0
	for i < len(s) && i < 2 && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, false
	}
	return n, i, true
}

// String renders the canonical textual form: the longest prefix of
// YYYY-MM-DDTHH:MM:SS with every leading field present, truncating at
// the first absent field.
func (t TimeStamp) String() string {
	if t.Year == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%04d", *t.Year)

	if t.Month == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", *t.Month)

	if t.Day == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", *t.Day)

	if t.Hour == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "T%02d", *t.Hour)

	if t.Minute == nil {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", *t.Minute)

	if t.Second == nil {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", *t.Second)

	return b.String()
}

// Compare orders two TimeStamps lexicographically on their canonical
// text, matching the ordering contract in spec.md.
func (t TimeStamp) Compare(other TimeStamp) int {
	return strings.Compare(t.String(), other.String())
}

// MarshalJSON stores a TimeStamp as its canonical text, used by the
// frame canonical-text round trip.
func (t TimeStamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON parses a TimeStamp from its canonical text.
func (t *TimeStamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := ParseTimeStamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
