package source

import (
	"bytes"
)

// LineIter lazily walks a buffer line by line. Every yielded line INCLUDES
// its terminating '\n' (and any '\r' preceding it), so summing the lengths of
// yielded lines reproduces raw buffer offsets exactly. A final line without a
// trailing newline is yielded as-is; an empty buffer yields nothing.
type LineIter struct {
	content []byte
	off     int
}

// Lines returns an iterator over the file's lines.
func (f *File) Lines() LineIter {
	return LineIter{content: f.Content}
}

// NewLineIter returns an iterator over raw bytes not owned by a FileSet.
func NewLineIter(content []byte) LineIter {
	return LineIter{content: content}
}

// Next yields the next line and reports whether one was available.
func (it *LineIter) Next() (string, bool) {
	if it.off >= len(it.content) {
		return "", false
	}
	rest := it.content[it.off:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		it.off = len(it.content)
		return string(rest), true
	}
	it.off += i + 1
	return string(rest[:i+1]), true
}
