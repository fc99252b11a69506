package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color enables ANSI styling through the theme. Off means every hook is
	// a plain pass-through.
	Color bool
	// Theme selects the color roles; nil falls back to DefaultTheme.
	Theme *Theme
	// Width caps the display width of every rendered row, 0 = unlimited.
	// This is a terminal concern: byte columns inside the snippet are not
	// recomputed, long rows are truncated with an ellipsis.
	Width int
	// ShowNotes renders each diagnostic's notes with their own snippets.
	ShowNotes bool
}
