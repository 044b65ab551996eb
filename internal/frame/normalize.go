package frame

import "github.com/simonhull/id3v2/internal/spec"

// NormalizeStrings converts a singleton-MultiSpec field (decoded as
// []any of string) into []string in place. Frame families whose
// primary field is repeated plain text (TPE1, TCOM, ...) call this
// from their Class.Normalize.
func NormalizeStrings(fields map[string]any, name string) {
	raw, _ := fields[name].([]any)
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i], _ = v.(string)
	}
	fields[name] = out
}

// DenormalizeStrings is NormalizeStrings's inverse.
func DenormalizeStrings(fields map[string]any, name string) {
	strs, _ := fields[name].([]string)
	out := make([]any, len(strs))
	for i, v := range strs {
		out[i] = v
	}
	fields[name] = out
}

// NormalizeTimeStamps converts a singleton-MultiSpec field of
// spec.TimeStamp (decoded as []any) into []spec.TimeStamp.
func NormalizeTimeStamps(fields map[string]any, name string) {
	raw, _ := fields[name].([]any)
	out := make([]spec.TimeStamp, len(raw))
	for i, v := range raw {
		out[i], _ = v.(spec.TimeStamp)
	}
	fields[name] = out
}

// DenormalizeTimeStamps is NormalizeTimeStamps's inverse.
func DenormalizeTimeStamps(fields map[string]any, name string) {
	ts, _ := fields[name].([]spec.TimeStamp)
	out := make([]any, len(ts))
	for i, v := range ts {
		out[i] = v
	}
	fields[name] = out
}

// NormalizePairs converts a 2-subspec MultiSpec field (decoded as
// [][]any) into [][2]string, used by the IPLS-family frames.
func NormalizePairs(fields map[string]any, name string) {
	raw, _ := fields[name].([][]any)
	out := make([][2]string, len(raw))
	for i, tuple := range raw {
		if len(tuple) == 2 {
			a, _ := tuple[0].(string)
			b, _ := tuple[1].(string)
			out[i] = [2]string{a, b}
		}
	}
	fields[name] = out
}

// DenormalizePairs is NormalizePairs's inverse.
func DenormalizePairs(fields map[string]any, name string) {
	pairs, _ := fields[name].([][2]string)
	out := make([][]any, len(pairs))
	for i, p := range pairs {
		out[i] = []any{p[0], p[1]}
	}
	fields[name] = out
}
