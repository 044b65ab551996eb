package frames

import (
	"testing"

	"github.com/simonhull/id3v2/internal/frame"
	"github.com/simonhull/id3v2/internal/registry"
)

func decode(t *testing.T, id string, version int, flags uint16, data []byte) *frame.Frame {
	t.Helper()
	class := registry.Get(id)
	if class == nil {
		t.Fatalf("no class registered for %s", id)
	}
	f, err := frame.FromData(class, version, flags, data)
	if err != nil {
		t.Fatalf("FromData(%s): %v", id, err)
	}
	return f
}

func TestTextFrame_SingleValue(t *testing.T) {
	f := decode(t, "TALB", 3, 0, []byte("\x00a/b"))
	if !f.Equal("a/b") {
		t.Errorf("TALB fields = %v, want a/b", f.Fields)
	}
}

func TestTextFrame_MultiValue(t *testing.T) {
	f := decode(t, "TPE1", 4, 0, []byte("\x00ab\x00cd\x00ef"))
	if !f.Equal([]string{"ab", "cd", "ef"}) {
		t.Errorf("TPE1 fields = %v", f.Fields)
	}
}

func TestTXXX(t *testing.T) {
	f := decode(t, "TXXX", 3, 0, []byte("\x00replaygain_track_gain\x00-6.48 dB"))
	if f.Fields["Description"] != "replaygain_track_gain" {
		t.Errorf("Description = %v", f.Fields["Description"])
	}
	if !f.Equal("-6.48 dB") {
		t.Errorf("Text = %v", f.Fields["Text"])
	}
}

func TestWXXX(t *testing.T) {
	f := decode(t, "WXXX", 3, 0, []byte("\x00foo\x00http://example.com"))
	if f.Fields["Description"] != "foo" {
		t.Errorf("Description = %v", f.Fields["Description"])
	}
	if !f.Equal("http://example.com") {
		t.Errorf("URL = %v", f.Fields["URL"])
	}
}

func TestWCOM(t *testing.T) {
	f := decode(t, "WCOM", 3, 0, []byte("http://example.com"))
	if !f.Equal("http://example.com") {
		t.Errorf("URL = %v", f.Fields["URL"])
	}
}

func TestCOMM(t *testing.T) {
	f := decode(t, "COMM", 3, 0, []byte("\x00engdesc\x00hello"))
	if f.Fields["Language"] != "eng" {
		t.Errorf("Language = %v", f.Fields["Language"])
	}
	if f.Fields["Description"] != "desc" {
		t.Errorf("Description = %v", f.Fields["Description"])
	}
	if !f.Equal("hello") {
		t.Errorf("Text = %v", f.Fields["Text"])
	}
}

func TestAPIC(t *testing.T) {
	data := append([]byte("\x00image/png\x00"), byte(PictureCoverFront))
	data = append(data, "desc\x00"...)
	data = append(data, []byte{0x01, 0x02, 0x03}...)

	f := decode(t, "APIC", 3, 0, data)
	if f.Fields["MIMEType"] != "image/png" {
		t.Errorf("MIMEType = %v", f.Fields["MIMEType"])
	}
	if f.Fields["PictureType"] != byte(PictureCoverFront) {
		t.Errorf("PictureType = %v", f.Fields["PictureType"])
	}
	if !f.Equal([]byte{0x01, 0x02, 0x03}) {
		t.Errorf("Data = %v", f.Fields["Data"])
	}
}

func TestUFID(t *testing.T) {
	f := decode(t, "UFID", 3, 0, append([]byte("http://musicbrainz.org\x00"), 0xAB, 0xCD))
	if f.Fields["Owner"] != "http://musicbrainz.org" {
		t.Errorf("Owner = %v", f.Fields["Owner"])
	}
	if !f.Equal([]byte{0xAB, 0xCD}) {
		t.Errorf("Data = %v", f.Fields["Data"])
	}
}

func TestIPLS(t *testing.T) {
	f := decode(t, "IPLS", 3, 0, []byte("\x00a\x00A\x00b\x00B\x00"))
	if !f.Equal([][2]string{{"a", "A"}, {"b", "B"}}) {
		t.Errorf("People = %v", f.Fields["People"])
	}
}

func TestTIPL_FlatEquality(t *testing.T) {
	// mutagen fixture: encoding=2 (UTF-16BE), one ("a", "b") pair,
	// compared against the plain string "a\x00b" rather than a tuple.
	data := []byte{0x02, 0x00, 'a', 0x00, 0x00, 0x00, 'b'}
	f := decode(t, "TIPL", 3, 0, data)
	if !f.Equal("a\x00b") {
		t.Errorf("TIPL fields = %v, want flattened \"a\\x00b\"", f.Fields)
	}
	if people, _ := f.Fields["People"].([][2]string); len(people) != 1 || people[0] != [2]string{"a", "b"} {
		t.Errorf("People = %v, want [[a b]]", f.Fields["People"])
	}
}

func TestTMCL_FlatEquality(t *testing.T) {
	f := decode(t, "TMCL", 3, 0, []byte("\x00guitar\x00Page\x00drums\x00Bonham\x00"))
	if !f.Equal([]string{"guitar\x00Page", "drums\x00Bonham"}) {
		t.Errorf("TMCL fields = %v", f.Fields)
	}
}

func TestTCON_Genres(t *testing.T) {
	f := decode(t, "TCON", 3, 0, []byte("\x00(21)"))
	if !f.Equal("(21)") {
		t.Errorf("TCON Text = %v, want raw entry preserved", f.Fields["Text"])
	}
	if got := f.Genres(); len(got) != 1 || got[0] != "Ska" {
		t.Errorf("Genres() = %v, want [Ska]", got)
	}
}

func TestTCON_ParenEscapeGrammar(t *testing.T) {
	f := decode(t, "TCON", 3, 0, []byte("\x00(20)(CR)\x0030\x00\x00Another\x00(51)Hooray"))
	want := []string{"Alternative", "Cover", "Fusion", "Another", "Techno-Industrial", "Hooray"}
	got := f.Genres()
	if len(got) != len(want) {
		t.Fatalf("Genres() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Genres()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTDRC(t *testing.T) {
	f := decode(t, "TDRC", 4, 0, []byte("\x002004-01-02T12:30:00"))
	if !f.Equal("2004-01-02T12:30:00") {
		t.Errorf("TDRC fields = %v", f.Fields)
	}
}

func TestCHAP(t *testing.T) {
	// element ID "chp0", start=0ms, end=5000ms, offsets left at
	// 0xFFFFFFFF (unused), followed by an embedded TIT2 "Intro".
	data := []byte("chp0\x00")
	data = append(data, 0x00, 0x00, 0x00, 0x00) // StartTime
	data = append(data, 0x00, 0x00, 0x13, 0x88) // EndTime = 5000
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF) // StartOffset
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF) // EndOffset

	tit2Payload := []byte("\x00Intro")
	subHeader := []byte{'T', 'I', 'T', '2', 0, 0, 0, byte(len(tit2Payload)), 0, 0}
	data = append(data, subHeader...)
	data = append(data, tit2Payload...)

	f := decode(t, "CHAP", 3, 0, data)
	if f.Fields["ElementID"] != "chp0" {
		t.Errorf("ElementID = %v", f.Fields["ElementID"])
	}
	if f.Fields["EndTime"] != uint64(5000) {
		t.Errorf("EndTime = %v, want 5000", f.Fields["EndTime"])
	}
	if title := ChapterTitle(f, 3); title != "Intro" {
		t.Errorf("ChapterTitle() = %q, want Intro", title)
	}
}

func TestCHAP_NoSubframesFallsBackToElementID(t *testing.T) {
	data := append([]byte("chp1\x00"), make([]byte, 16)...)
	f := decode(t, "CHAP", 3, 0, data)
	if title := ChapterTitle(f, 3); title != "chp1" {
		t.Errorf("ChapterTitle() = %q, want chp1", title)
	}
}

func TestTRCK_ToInteger(t *testing.T) {
	f := decode(t, "TRCK", 3, 0, []byte("\x0002/10"))
	n, err := f.ToInteger()
	if err != nil {
		t.Fatalf("ToInteger: %v", err)
	}
	if n != 2 {
		t.Errorf("ToInteger() = %d, want 2", n)
	}
}
