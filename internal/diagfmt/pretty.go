package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"caret/internal/diag"
	"caret/internal/snippet"
	"caret/internal/source"
)

// Pretty formats diagnostics in human-readable form. It walks bag.Items()
// (call bag.Sort() beforehand for deterministic order) and prints, for each
// diagnostic:
//
//	<path>:<line>:<col>: <SEV>: <message>
//
// followed by the snippet for its primary span, then notes in the same shape
// when opts.ShowNotes is set. Diagnostics without a resolvable location get
// the header only. A write failure aborts immediately.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	for _, d := range bag.Items() {
		if err := prettyOne(w, fs, theme, opts, d.Severity, d.Primary, d.Message); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			if err := prettyOne(w, fs, theme, opts, diag.SevInfo, note.Span, "note: "+note.Msg); err != nil {
				return err
			}
		}
	}

	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "... and %d more diagnostics not shown\n", n); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, fs *source.FileSet, theme *Theme, opts PrettyOpts, sev diag.Severity, sp source.Span, msg string) error {
	label := theme.severityLabel(sev, opts.Color)

	// The zero span is the convention for findings with no location, e.g.
	// a file that failed to load.
	file := fs.Get(sp.File)
	if file == nil || sp == (source.Span{}) {
		_, err := fmt.Fprintf(w, "%s: %s\n", label, msg)
		return err
	}

	if _, _, err := snippet.Resolve(file, sp); err != nil {
		_, werr := fmt.Fprintf(w, "%s:?:?: %s: %s (%v)\n", file.Path, label, msg, err)
		return werr
	}

	start, _ := fs.Resolve(sp)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file.Path, start.Line, start.Col, label, msg); err != nil {
		return err
	}

	var body strings.Builder
	if err := snippet.Render(&body, file, sp, theme.SnippetOptions(opts.Color)); err != nil {
		return err
	}
	out := body.String()
	if opts.Width > 0 && !opts.Color {
		out = TruncateLines(out, opts.Width)
	}
	_, err := io.WriteString(w, out)
	return err
}

// TruncateLines caps every line of s at the given display width, appending
// an ellipsis to lines that were cut. Width is measured in terminal cells
// (go-runewidth), so it only makes sense for unstyled text: ANSI escapes
// would count toward the limit.
func TruncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = runewidth.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
