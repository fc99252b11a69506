package diag

import (
	"testing"

	"caret/internal/source"
)

func TestBagCapacity(t *testing.T) {
	b := NewBag(2)

	if !b.Add(New(SevInfo, source.Span{}, "first")) {
		t.Fatalf("first Add rejected")
	}
	if !b.Add(New(SevInfo, source.Span{}, "second")) {
		t.Fatalf("second Add rejected")
	}
	if b.Add(New(SevInfo, source.Span{}, "third")) {
		t.Fatalf("Add over capacity accepted")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if b.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", b.Dropped())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevInfo, source.Span{}, "note to self"))

	if b.HasWarnings() || b.HasErrors() {
		t.Fatalf("info-only bag reports warnings/errors")
	}

	b.Add(New(SevWarning, source.Span{}, "suspicious"))
	if !b.HasWarnings() {
		t.Errorf("HasWarnings() = false after warning added")
	}
	if b.HasErrors() {
		t.Errorf("HasErrors() = true without errors")
	}

	b.Add(New(SevError, source.Span{}, "broken"))
	if !b.HasErrors() {
		t.Errorf("HasErrors() = false after error added")
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevInfo, source.Span{File: 1, Start: 5, End: 6}, "later file"))
	b.Add(New(SevInfo, source.Span{File: 0, Start: 9, End: 10}, "later offset"))
	b.Add(New(SevError, source.Span{File: 0, Start: 2, End: 4}, "error first"))
	b.Add(New(SevInfo, source.Span{File: 0, Start: 2, End: 4}, "info second"))

	b.Sort()

	want := []string{"error first", "info second", "later offset", "later file"}
	for i, d := range b.Items() {
		if d.Message != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	a.Add(New(SevInfo, source.Span{}, "a"))

	other := NewBag(2)
	other.Add(New(SevInfo, source.Span{}, "b"))
	other.Add(New(SevInfo, source.Span{}, "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("Len() after merge = %d, want 3", a.Len())
	}
	// Capacity grew to hold the merged items; further adds are over limit.
	if a.Add(New(SevInfo, source.Span{}, "d")) {
		t.Errorf("Add after merge accepted beyond grown capacity")
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	var r Reporter = BagReporter{Bag: b}

	r.Report(New(SevWarning, source.Span{Start: 1, End: 2}, "reported"))
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if got := b.Items()[0].Message; got != "reported" {
		t.Errorf("message = %q, want %q", got, "reported")
	}

	// Nil bag must be a safe sink.
	BagReporter{}.Report(New(SevError, source.Span{}, "dropped"))
}
