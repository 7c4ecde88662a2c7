package text

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// CharStream walks a string rune by rune while tracking the current
// line/character position. Characters are counted in runes.
type CharStream struct {
	text string

	index    int
	position protocol.Position

	startIndex    int
	startPosition protocol.Position
}

func NewCharStream(text string) *CharStream {
	return &CharStream{text: text}
}

// Peek returns the next rune without consuming it.
func (s *CharStream) Peek() (rune, bool) {
	if s.index >= len(s.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.index:])
	return r, true
}

// PeekAt returns the rune n runes ahead of the current one.
func (s *CharStream) PeekAt(n int) (rune, bool) {
	i := s.index
	for ; n > 0 && i < len(s.text); n-- {
		_, size := utf8.DecodeRuneInString(s.text[i:])
		i += size
	}
	if i >= len(s.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.text[i:])
	return r, true
}

// Next consumes and returns the next rune.
func (s *CharStream) Next() (rune, bool) {
	if s.index >= len(s.text) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.text[s.index:])
	s.index += size
	if r == '\n' {
		s.position.Line++
		s.position.Character = 0
	} else {
		s.position.Character++
	}
	return r, true
}

func (s *CharStream) Satisfies(predicate func(rune) bool) bool {
	r, ok := s.Peek()
	return ok && predicate(r)
}

// SkipRestOfLine consumes everything up to and including the next line feed.
func (s *CharStream) SkipRestOfLine() {
	for {
		r, ok := s.Next()
		if !ok || r == '\n' {
			return
		}
	}
}

func (s *CharStream) StartSpan() {
	s.startIndex = s.index
	s.startPosition = s.position
}

func (s *CharStream) EndSpan() Span {
	return Span{
		Range: protocol.Range{Start: s.startPosition, End: s.position},
		Text:  s.text[s.startIndex:s.index],
	}
}

// Seek advances the stream until it reaches position or the end of input.
func (s *CharStream) Seek(position protocol.Position) {
	for Less(s.position, position) {
		if _, ok := s.Next(); !ok {
			return
		}
	}
}

// Index is the byte offset of the next rune.
func (s *CharStream) Index() int {
	return s.index
}

// SpanStart is the byte offset recorded by the last StartSpan.
func (s *CharStream) SpanStart() int {
	return s.startIndex
}

func (s *CharStream) Position() protocol.Position {
	return s.position
}

func (s *CharStream) EOF() bool {
	return s.index >= len(s.text)
}
