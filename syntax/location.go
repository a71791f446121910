package syntax

import "sort"

// Locator maps absolute byte offsets into a source buffer to 1-indexed
// (row, column) pairs, precomputing line-start offsets the way the
// teacher's Lines type does for Source, but shedding the incremental-edit
// machinery that accompanies it there: this toolkit never reparses a
// buffer after an edit, only ever locates offsets in a finished one.
type Locator struct {
	text       string
	lineStarts []int
}

// NewLocator precomputes the byte offset of the start of every line in
// text, splitting on '\n'. A line's terminator counts toward the line it
// ends, per the source-location contract.
func NewLocator(text string) *Locator {
	starts := make([]int, 1, 16)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Locator{text: text, lineStarts: starts}
}

// Locate returns the 1-indexed (row, column) of offset. ok is false if
// offset is out of range ([0, len(text))).
func (l *Locator) Locate(offset int) (row, col int, ok bool) {
	if offset < 0 || offset >= len(l.text) {
		return 0, 0, false
	}
	// Find the last line start <= offset.
	row0 := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	}) - 1
	lineStart := l.lineStarts[row0]
	return row0 + 1, offset - lineStart + 1, true
}
