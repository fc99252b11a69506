// Package diag defines the diagnostic data model the snippet renderer
// exists to serve: a finding with a severity, a message, a primary span,
// and optional notes pointing at related spans.
//
// The package is data-only. Producers emit through a Reporter so they stay
// decoupled from storage; Bag is the standard capped container with a
// deterministic sort order. Formatting lives in internal/diagfmt.
package diag
