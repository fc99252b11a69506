// Package testkit provides invariant checks shared by tests across packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"caret/internal/diag"
	"caret/internal/source"
)

// CheckBagSpans verifies that every diagnostic in the bag carries a span the
// renderer can work with against its file:
// 1) the span's file ID resolves in the set
// 2) Start <= End
// 3) End is within the file's content bounds
// The zero span is exempt; it is the convention for location-less findings.
func CheckBagSpans(fs *source.FileSet, bag *diag.Bag) error {
	if fs == nil || bag == nil {
		return fmt.Errorf("nil file set or bag")
	}
	for _, d := range bag.Items() {
		sp := d.Primary
		if sp == (source.Span{}) {
			continue
		}
		f := fs.Get(sp.File)
		if f == nil {
			return fmt.Errorf("span %v points to unknown file", sp)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("inverted span: %v", sp)
		}
		lenContent, err := safecast.Conv[uint32](len(f.Content))
		if err != nil {
			return fmt.Errorf("len content overflow: %w", err)
		}
		if sp.End > lenContent {
			return fmt.Errorf("span end beyond content: %d > %d in %s", sp.End, lenContent, f.Path)
		}
		for _, note := range d.Notes {
			if note.Span == (source.Span{}) {
				continue
			}
			if nf := fs.Get(note.Span.File); nf == nil {
				return fmt.Errorf("note span %v points to unknown file", note.Span)
			}
		}
	}
	return nil
}
