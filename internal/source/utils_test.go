package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{name: "no carriage returns", in: "a\nb\n", want: "a\nb\n", wantChanged: false},
		{name: "crlf pairs replaced", in: "a\r\nb\r\n", want: "a\nb\n", wantChanged: true},
		{name: "lone cr untouched", in: "a\rb", want: "a\rb", wantChanged: false},
		{name: "mixed", in: "a\r\nb\rc\n", want: "a\nb\rc\n", wantChanged: true},
		{name: "cr at end", in: "a\r", want: "a\r", wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("hi")) {
		t.Errorf("removeBOM(BOM+hi) = %q, %v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Errorf("removeBOM(hi) = %q, %v", got, had)
	}
}

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []uint32
	}{
		{name: "two newlines", content: "ab\ncd\n", want: []uint32{2, 5}},
		{name: "no newline", content: "abc", want: nil},
		{name: "empty", content: "", want: nil},
		{name: "leading newline", content: "\nx", want: []uint32{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLineIndex([]byte(tt.content))
			if len(got) != len(tt.want) {
				t.Fatalf("index = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("index[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToLineCol(t *testing.T) {
	// "hello\nworld\n" -> newlines at 5 and 11
	lineIdx := []uint32{5, 11}

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{off: 0, want: LineCol{Line: 1, Col: 1}},
		{off: 4, want: LineCol{Line: 1, Col: 5}},
		{off: 5, want: LineCol{Line: 1, Col: 6}}, // the newline ends line 1
		{off: 6, want: LineCol{Line: 2, Col: 1}},
		{off: 10, want: LineCol{Line: 2, Col: 5}},
		{off: 11, want: LineCol{Line: 2, Col: 6}},
		{off: 12, want: LineCol{Line: 3, Col: 1}}, // just past the buffer
	}

	for _, tt := range tests {
		if got := toLineCol(lineIdx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	if got := toLineCol(nil, 7); got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("toLineCol(nil, 7) = %+v, want 1:8", got)
	}
}
