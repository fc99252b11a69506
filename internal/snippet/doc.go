// Package snippet renders a human-readable excerpt for a highlighted byte
// range inside a source buffer, the way compilers point at offending code:
//
//	3 | let x = foo(bar;
//	  |         ^^^^^^^
//
// # Scope
//
//   - Resolve the span's byte offsets to (line, column) coordinates by
//     walking the buffer's lines in order.
//   - Lay out either a single-line rendering (caret underline) or a
//     multi-line one (lead-in marker, boundary lines, optional ellipsis,
//     trailing caret), with a line-number gutter sized to the last line.
//   - Emit all text through three caller-supplied formatting hooks (span,
//     marker, gutter) so styling can be injected without this package
//     knowing anything about colors or terminals.
//
// Columns are byte offsets; no grapheme or display-width arithmetic happens
// here. Middle lines of a multi-line span are never printed in full: only
// the boundary lines and an explicit "..." row, which bounds output size for
// arbitrarily large spans.
//
// Rendering is a pure, single-pass transformation with no state between
// calls. Options values are intended to be built fresh per call.
package snippet
