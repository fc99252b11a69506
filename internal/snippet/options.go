package snippet

import (
	"io"
)

// FormatFunc transforms and emits one piece of text. Implementations may
// wrap the text in styling escapes, but must write it exactly once; the
// renderer's column arithmetic assumes nothing is added between calls.
type FormatFunc func(w io.Writer, text string) error

// Options bundles the three formatting hooks a render call goes through:
// Span for the highlighted source text, Marker for caret/arrow glyphs,
// Number for line numbers and the gutter separator. A nil hook means
// pass-through. Options are consumed per call and never retained.
type Options struct {
	Span   FormatFunc
	Marker FormatFunc
	Number FormatFunc
}

func passthrough(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

func (o Options) withDefaults() Options {
	if o.Span == nil {
		o.Span = passthrough
	}
	if o.Marker == nil {
		o.Marker = passthrough
	}
	if o.Number == nil {
		o.Number = passthrough
	}
	return o
}
