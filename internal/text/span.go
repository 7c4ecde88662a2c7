package text

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Span is a slice of source text together with its range.
type Span struct {
	Range protocol.Range
	Text  string
}

func NewSpan(rng protocol.Range, text string) Span {
	return Span{Range: rng, Text: text}
}

func (s Span) Start() protocol.Position {
	return s.Range.Start
}

func (s Span) End() protocol.Position {
	return s.Range.End
}

// NewRange builds a protocol range from line/character pairs.
func NewRange(startLine, startChar, endLine, endChar uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

// Less reports whether a comes before b.
func Less(a, b protocol.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}
