package snippet

import (
	"errors"
	"testing"

	"caret/internal/source"
)

func testFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.src", []byte(content))
	return fs.Get(id)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		span      source.Span
		wantStart Pos
		wantEnd   Pos
	}{
		{
			name:      "span inside first line",
			content:   "hello\nworld\n",
			span:      source.Span{Start: 1, End: 4},
			wantStart: Pos{Line: 0, Col: 1},
			wantEnd:   Pos{Line: 0, Col: 4},
		},
		{
			name:      "span inside second line",
			content:   "hello\nworld\n",
			span:      source.Span{Start: 7, End: 11},
			wantStart: Pos{Line: 1, Col: 1},
			wantEnd:   Pos{Line: 1, Col: 5},
		},
		{
			// The walk uses pos+len(line) >= offset, so an offset sitting
			// exactly on a line boundary resolves to the end of the line
			// before it. Original behavior, kept as-is.
			name:      "start offset on line boundary",
			content:   "hello\nworld\n",
			span:      source.Span{Start: 6, End: 7},
			wantStart: Pos{Line: 0, Col: 6},
			wantEnd:   Pos{Line: 1, Col: 1},
		},
		{
			name:      "span across adjacent lines",
			content:   "x\ny\n",
			span:      source.Span{Start: 0, End: 3},
			wantStart: Pos{Line: 0, Col: 0},
			wantEnd:   Pos{Line: 1, Col: 1},
		},
		{
			name:      "span across several lines",
			content:   "a\nb\nc\nd\n",
			span:      source.Span{Start: 0, End: 7},
			wantStart: Pos{Line: 0, Col: 0},
			wantEnd:   Pos{Line: 3, Col: 1},
		},
		{
			name:      "span ending exactly at newline",
			content:   "hello\nworld\n",
			span:      source.Span{Start: 0, End: 6},
			wantStart: Pos{Line: 0, Col: 0},
			wantEnd:   Pos{Line: 0, Col: 6},
		},
		{
			name:      "empty span mid-line",
			content:   "hello\nworld\n",
			span:      source.Span{Start: 2, End: 2},
			wantStart: Pos{Line: 0, Col: 2},
			wantEnd:   Pos{Line: 0, Col: 2},
		},
		{
			name:      "empty span at end of buffer",
			content:   "hello\nworld\n",
			span:      source.Span{Start: 12, End: 12},
			wantStart: Pos{Line: 1, Col: 6},
			wantEnd:   Pos{Line: 1, Col: 6},
		},
		{
			name:      "span to end of unterminated last line",
			content:   "ab",
			span:      source.Span{Start: 0, End: 2},
			wantStart: Pos{Line: 0, Col: 0},
			wantEnd:   Pos{Line: 0, Col: 2},
		},
		{
			name:      "empty span in empty buffer",
			content:   "",
			span:      source.Span{Start: 0, End: 0},
			wantStart: Pos{Line: 0, Col: 0},
			wantEnd:   Pos{Line: 0, Col: 0},
		},
		{
			name:      "crlf terminator counted in line length",
			content:   "a\r\nbc",
			span:      source.Span{Start: 4, End: 5},
			wantStart: Pos{Line: 1, Col: 1},
			wantEnd:   Pos{Line: 1, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFile(t, tt.content)
			start, end, err := Resolve(f, tt.span)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if start != tt.wantStart {
				t.Errorf("start = %+v, want %+v", start, tt.wantStart)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %+v, want %+v", end, tt.wantEnd)
			}
			if start.Line > end.Line {
				t.Errorf("start.Line %d > end.Line %d", start.Line, end.Line)
			}
		})
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		span    source.Span
	}{
		{
			name:    "end past buffer",
			content: "hello\nworld\n",
			span:    source.Span{Start: 0, End: 13},
		},
		{
			name:    "start past buffer",
			content: "hello\nworld\n",
			span:    source.Span{Start: 13, End: 14},
		},
		{
			name:    "non-empty span in empty buffer",
			content: "",
			span:    source.Span{Start: 0, End: 1},
		},
		{
			name:    "inverted span",
			content: "hello\n",
			span:    source.Span{Start: 4, End: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFile(t, tt.content)
			_, _, err := Resolve(f, tt.span)
			if err == nil {
				t.Fatalf("Resolve() succeeded, want error")
			}
			if !errors.Is(err, ErrSpanOutOfBounds) {
				t.Errorf("error = %v, want ErrSpanOutOfBounds", err)
			}
		})
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		lastLine uint32
		want     int
	}{
		{lastLine: 0, want: 1},
		{lastLine: 8, want: 1},
		{lastLine: 9, want: 2},
		{lastLine: 98, want: 2},
		{lastLine: 99, want: 3},
		{lastLine: 9998, want: 4},
	}

	for _, tt := range tests {
		if got := gutterWidth(tt.lastLine); got != tt.want {
			t.Errorf("gutterWidth(%d) = %d, want %d", tt.lastLine, got, tt.want)
		}
	}
}
