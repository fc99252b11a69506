package diag

import (
	"caret/internal/source"
)

// Note attaches secondary context to a diagnostic, anchored at its own span.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding: where, how bad, and what to tell the user.
type Diagnostic struct {
	Severity Severity
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New constructs a diagnostic without notes.
func New(sev Severity, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Primary: primary, Message: msg}
}

// WithNote returns a copy of d with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, 0, len(d.Notes)+1)
	notes = append(notes, d.Notes...)
	notes = append(notes, Note{Span: sp, Msg: msg})
	d.Notes = notes
	return d
}
