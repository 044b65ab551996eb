// Package genre implements the ID3v1/Winamp genre table and the
// TCON frame's parenthesized-reference grammar.
package genre

import "strings"

// Table is the canonical ID3v1 genre list (0-79) extended with the
// Winamp de-facto additions (80-191), indexed by the numeric genre
// reference TCON and the ID3v1 trailer both use.
var Table = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel",
	"Noise", "AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic",
	"Darkwave", "Techno-Industrial", "Electronic", "Pop-Folk",
	"Eurodance", "Dream", "Southern Rock", "Comedy", "Cult", "Gangsta",
	"Top 40", "Christian Rap", "Pop/Funk", "Jungle", "Native American",
	"Cabaret", "New Wave", "Psychedelic", "Rave", "Showtunes", "Trailer",
	"Lo-Fi", "Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro",
	"Musical", "Rock & Roll", "Hard Rock",
	"Folk", "Folk-Rock", "National Folk", "Swing", "Fast Fusion", "Bebob",
	"Latin", "Revival", "Celtic", "Bluegrass", "Avantgarde", "Gothic Rock",
	"Progressive Rock", "Psychedelic Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour", "Speech",
	"Chanson", "Opera", "Chamber Music", "Sonata", "Symphony",
	"Booty Bass", "Primus", "Porn Groove", "Satire", "Slow Jam", "Club",
	"Tango", "Samba", "Folklore", "Ballad", "Power Ballad",
	"Rhythmic Soul", "Freestyle", "Duet", "Punk Rock", "Drum Solo",
	"A Capella", "Euro-House", "Dance Hall", "Goa", "Drum & Bass",
	"Club-House", "Hardcore", "Terror", "Indie", "BritPop", "Negerpunk",
	"Polsk Punk", "Beat", "Christian Gangsta Rap", "Heavy Metal",
	"Black Metal", "Crossover", "Contemporary Christian", "Christian Rock",
	"Merengue", "Salsa", "Thrash Metal", "Anime", "JPop", "Synthpop",
	"Abstract", "Art Rock", "Baroque", "Bhangra", "Big Beat", "Breakbeat",
	"Chillout", "Downtempo", "Dub", "EBM", "Eclectic", "Electro",
	"Electroclash", "Emo", "Experimental", "Garage", "Global", "IDM",
	"Illbient", "Industro-Goth", "Jam Band", "Krautrock", "Leftfield",
	"Lounge", "Math Rock", "New Romantic", "Nu-Breakz", "Post-Punk",
	"Post-Rock", "Psytrance", "Shoegaze", "Space Rock", "Trop Rock",
	"World Music", "Neoclassical", "Audiobook", "Audio Theatre",
	"Neue Deutsche Welle", "Podcast", "Indie Rock", "G-Funk", "Dubstep",
	"Garage Rock", "Psybient",
}

// Lookup returns Table[i], or "Unknown" if i is out of range.
func Lookup(i int) string {
	if i < 0 || i >= len(Table) {
		return "Unknown"
	}
	return Table[i]
}

// Index returns the position of name in Table, for re-encoding a
// decoded genre name back to its parenthesized numeric form.
func Index(name string) (int, bool) {
	for i, g := range Table {
		if g == name {
			return i, true
		}
	}
	return 0, false
}

// Decode expands a TCON frame's raw text fields into resolved genre
// names: bare numeric fields and "CR"/"RX" fields resolve whole, and
// any other field is scanned left to right for "(n)"/"(CR)"/"(RX)"
// references interleaved with literal text, with a leading "((" read
// as an escaped literal "(" rather than the start of a reference.
func Decode(text []string) []string {
	var out []string
	for _, field := range text {
		out = append(out, decodeField(field)...)
	}
	return out
}

func decodeField(field string) []string {
	if field == "" {
		return nil
	}
	if isDigits(field) {
		return []string{Lookup(atoi(field))}
	}
	if field == "CR" {
		return []string{"Cover"}
	}
	if field == "RX" {
		return []string{"Remix"}
	}

	var out []string
	rest := field
	for rest != "" {
		if strings.HasPrefix(rest, "((") {
			out = append(out, rest[1:])
			break
		}
		if ref, n, ok := matchRef(rest); ok {
			out = append(out, ref)
			rest = rest[n:]
			continue
		}
		i := strings.IndexByte(rest, '(')
		if i < 0 {
			out = append(out, rest)
			break
		}
		if i > 0 {
			out = append(out, rest[:i])
			rest = rest[i:]
			continue
		}
		// rest starts with '(' but matchRef above already rejected it
		// (not "((", not a valid numeric/CR/RX reference): emit the
		// paren literally to make progress.
		out = append(out, rest[:1])
		rest = rest[1:]
	}
	return out
}

// matchRef recognises a leading "(n)", "(CR)", or "(RX)" reference.
func matchRef(s string) (resolved string, consumed int, ok bool) {
	if len(s) < 3 || s[0] != '(' {
		return "", 0, false
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return "", 0, false
	}
	inner := s[1:end]
	switch {
	case inner == "CR":
		return "Cover", end + 1, true
	case inner == "RX":
		return "Remix", end + 1, true
	case isDigits(inner):
		return Lookup(atoi(inner)), end + 1, true
	default:
		return "", 0, false
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
