package text

import (
	"sort"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LineCol is a zero-based line plus a byte column within that line.
type LineCol struct {
	Line int
	Col  int
}

// LineIndex maps byte offsets of a document to LSP positions and back.
// LSP characters are UTF-16 code units.
type LineIndex struct {
	text       string
	lineStarts []int
}

func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, lineStarts: starts}
}

func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}

// LineCol returns the line of offset and its byte column.
func (li *LineIndex) LineCol(offset int) LineCol {
	offset = li.clampOffset(offset)
	line := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1
	return LineCol{Line: line, Col: offset - li.lineStarts[line]}
}

// Position converts a byte offset to an LSP position.
func (li *LineIndex) Position(offset int) protocol.Position {
	lc := li.LineCol(offset)
	start := li.lineStarts[lc.Line]
	return protocol.Position{
		Line:      uint32(lc.Line),
		Character: uint32(utf16Len(li.text[start : start+lc.Col])),
	}
}

// Offset converts an LSP position to a byte offset. Characters past the end
// of the line clamp to the line end; a line past the end of the document
// fails.
func (li *LineIndex) Offset(pos protocol.Position) (int, bool) {
	line := int(pos.Line)
	if line >= len(li.lineStarts) {
		return 0, false
	}
	start := li.lineStarts[line]
	end := li.lineEnd(line)

	units := 0
	offset := start
	for offset < end {
		r, size := utf8.DecodeRuneInString(li.text[offset:end])
		width := 1
		if r > 0xFFFF {
			width = 2
		}
		if uint32(units+width) > pos.Character {
			break
		}
		units += width
		offset += size
	}
	return offset, true
}

// Range converts a half-open byte range to an LSP range.
func (li *LineIndex) Range(start, end int) protocol.Range {
	return protocol.Range{Start: li.Position(start), End: li.Position(end)}
}

// lineEnd is the offset of the line terminator of line, or the end of text.
func (li *LineIndex) lineEnd(line int) int {
	if line+1 < len(li.lineStarts) {
		end := li.lineStarts[line+1] - 1
		if end > li.lineStarts[line] && li.text[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(li.text)
}

func (li *LineIndex) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(li.text) {
		offset = len(li.text)
	}
	for offset > 0 && offset < len(li.text) && !utf8.RuneStart(li.text[offset]) {
		offset--
	}
	return offset
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
