package snippet

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"caret/internal/source"
)

// ErrSpanOutOfBounds reports a span whose offsets cannot be matched to any
// line of the buffer. It is a caller contract violation, surfaced as a
// recoverable error rather than a panic.
var ErrSpanOutOfBounds = errors.New("span out of bounds")

// Pos is a resolved coordinate: 0-based line index and 0-based byte column
// within that line.
type Pos struct {
	Line uint32
	Col  uint32
}

// posSpan is the single-line case: both span endpoints on one physical line.
type posSpan struct {
	line     uint32
	colStart uint32
	colEnd   uint32
}

// Resolve maps the span's start and end offsets to line/column coordinates
// by scanning the buffer's lines in order with a running byte offset. Line
// lengths include terminator bytes, so the accumulated offset tracks raw
// buffer positions exactly. The end search resumes on the start line itself,
// which is how a span contained in one line resolves to start.Line == end.Line.
func Resolve(f *source.File, sp source.Span) (start, end Pos, err error) {
	if sp.End < sp.Start {
		return Pos{}, Pos{}, fmt.Errorf("%w: start %d after end %d", ErrSpanOutOfBounds, sp.Start, sp.End)
	}
	// An empty buffer has no lines to match; an empty span at offset 0 is
	// still a valid position in it.
	if len(f.Content) == 0 {
		if sp.Start == 0 && sp.End == 0 {
			return Pos{}, Pos{}, nil
		}
		return Pos{}, Pos{}, outOfBounds(f, sp)
	}

	it := f.Lines()
	var (
		index    uint32
		pos      uint32
		line     string
		ok       bool
		hasStart bool
	)
	for line, ok = it.Next(); ok; line, ok = it.Next() {
		if pos+lineLen(line) >= sp.Start {
			start = Pos{Line: index, Col: sp.Start - pos}
			hasStart = true
			break
		}
		pos += lineLen(line)
		index++
	}
	if !hasStart {
		return Pos{}, Pos{}, outOfBounds(f, sp)
	}

	// The start line is still current: a span ending on it resolves here
	// before the iterator moves on.
	for {
		if pos+lineLen(line) >= sp.End {
			return start, Pos{Line: index, Col: sp.End - pos}, nil
		}
		pos += lineLen(line)
		index++
		if line, ok = it.Next(); !ok {
			return Pos{}, Pos{}, outOfBounds(f, sp)
		}
	}
}

func outOfBounds(f *source.File, sp source.Span) error {
	return fmt.Errorf("%w: [%d, %d) in %q (%d bytes)", ErrSpanOutOfBounds, sp.Start, sp.End, f.Path, len(f.Content))
}

func lineLen(line string) uint32 {
	n, err := safecast.Conv[uint32](len(line))
	if err != nil {
		panic(fmt.Errorf("line length overflow: %w", err))
	}
	return n
}
