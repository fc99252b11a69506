package snippet

import (
	"fmt"
	"io"
	"strings"

	"caret/internal/source"
)

// Control characters embedded in a line's own content would corrupt the
// rendered layout, so they become visible glyphs before display. The mapping
// is one source character to one glyph character.
var whitespaceViz = strings.NewReplacer("\n", "␊", "\r", "␍")

// Render writes a gutter-aligned snippet for sp to w. The layout is chosen
// from the resolved positions: a caret underline when both endpoints share a
// line, otherwise boundary lines with lead-in/trailing markers and an
// ellipsis row when at least one middle line is elided.
//
// An empty span is legal input and renders a marker row with zero carets.
// A span outside the buffer returns ErrSpanOutOfBounds; a failed write to w
// (or a failing hook) aborts the render immediately, so partial output may
// remain in the sink.
func Render(w io.Writer, f *source.File, sp source.Span, opts Options) error {
	if f == nil {
		return fmt.Errorf("render span %s: nil file", sp)
	}
	start, end, err := Resolve(f, sp)
	if err != nil {
		return err
	}

	startLine, endLine := boundaryLines(f, start.Line, end.Line)
	r := renderer{w: w, opts: opts.withDefaults()}
	digits := gutterWidth(end.Line)

	if start.Line == end.Line {
		return r.singleLine(digits, startLine, posSpan{
			line:     start.Line,
			colStart: start.Col,
			colEnd:   end.Col,
		})
	}
	return r.multiLine(digits, startLine, endLine, start, end)
}

// boundaryLines walks the buffer once more to fetch the physical text of the
// start and end lines; middle lines are never materialized.
func boundaryLines(f *source.File, startIdx, endIdx uint32) (startLine, endLine string) {
	it := f.Lines()
	var index uint32
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		if index == startIdx {
			startLine = line
		}
		if index == endIdx {
			endLine = line
			break
		}
		index++
	}
	return startLine, endLine
}

// gutterWidth is the decimal digit count of the 1-based display number of
// the last rendered line. Spacer rows pad with exactly this many spaces.
func gutterWidth(lastLine uint32) int {
	digits := 1
	for i := lastLine + 1; i >= 10; i /= 10 {
		digits++
	}
	return digits
}

type renderer struct {
	w    io.Writer
	opts Options
}

func (r *renderer) raw(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// spacerGutter emits the unnumbered gutter: padding spaces and the separator.
func (r *renderer) spacerGutter(digits int) error {
	if err := r.raw(strings.Repeat(" ", digits) + " "); err != nil {
		return err
	}
	return r.opts.Number(r.w, "|")
}

// numberedGutter emits a right-aligned 1-based line number and the separator,
// both through the Number hook.
func (r *renderer) numberedGutter(digits int, line uint32) error {
	if err := r.opts.Number(r.w, fmt.Sprintf("%*d", digits, line+1)); err != nil {
		return err
	}
	if err := r.raw(" "); err != nil {
		return err
	}
	return r.opts.Number(r.w, "|")
}

// singleLine lays out three rows: a spacer, the numbered source line with
// the highlighted range routed through the Span hook, and a caret row whose
// caret count equals the highlighted byte length.
func (r *renderer) singleLine(digits int, line string, ps posSpan) error {
	if err := r.spacerGutter(digits); err != nil {
		return err
	}
	if err := r.raw("\n"); err != nil {
		return err
	}

	if err := r.numberedGutter(digits, ps.line); err != nil {
		return err
	}
	if err := r.raw(" " + whitespaceViz.Replace(line[:ps.colStart])); err != nil {
		return err
	}
	if err := r.opts.Span(r.w, whitespaceViz.Replace(line[ps.colStart:ps.colEnd])); err != nil {
		return err
	}
	if err := r.raw(whitespaceViz.Replace(line[ps.colEnd:]) + "\n"); err != nil {
		return err
	}

	if err := r.spacerGutter(digits); err != nil {
		return err
	}
	if err := r.raw(" " + strings.Repeat(" ", int(ps.colStart))); err != nil {
		return err
	}
	if err := r.opts.Marker(r.w, strings.Repeat("^", int(ps.colEnd-ps.colStart))); err != nil {
		return err
	}
	return r.raw("\n")
}

// multiLine lays out the boundary lines only: a lead-in row pointing a "v"
// at the start column, the numbered start and end lines, an ellipsis row
// when more than one line separates them, and a trailing caret under the
// final highlighted byte.
func (r *renderer) multiLine(digits int, startLine, endLine string, start, end Pos) error {
	if err := r.spacerGutter(digits); err != nil {
		return err
	}
	if err := r.raw(" " + strings.Repeat(" ", int(start.Col))); err != nil {
		return err
	}
	if err := r.opts.Marker(r.w, "v"); err != nil {
		return err
	}
	if err := r.raw("\n"); err != nil {
		return err
	}

	if err := r.numberedGutter(digits, start.Line); err != nil {
		return err
	}
	if err := r.raw(" " + whitespaceViz.Replace(startLine[:start.Col])); err != nil {
		return err
	}
	if err := r.opts.Span(r.w, whitespaceViz.Replace(startLine[start.Col:])); err != nil {
		return err
	}
	if err := r.raw("\n"); err != nil {
		return err
	}

	if end.Line-start.Line > 1 {
		if err := r.spacerGutter(digits); err != nil {
			return err
		}
		if err := r.raw(" ...\n"); err != nil {
			return err
		}
	}

	if err := r.numberedGutter(digits, end.Line); err != nil {
		return err
	}
	if err := r.raw(" "); err != nil {
		return err
	}
	if err := r.opts.Span(r.w, whitespaceViz.Replace(endLine[:end.Col])); err != nil {
		return err
	}
	if err := r.raw(whitespaceViz.Replace(endLine[end.Col:]) + "\n"); err != nil {
		return err
	}

	if err := r.spacerGutter(digits); err != nil {
		return err
	}
	pad := int(end.Col)
	if pad > 0 {
		pad--
	}
	if err := r.raw(" " + strings.Repeat(" ", pad)); err != nil {
		return err
	}
	if err := r.opts.Marker(r.w, "^"); err != nil {
		return err
	}
	return r.raw("\n")
}
