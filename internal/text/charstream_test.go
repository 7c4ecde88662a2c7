package text_test

import (
	"testing"
	"unicode"

	"github.com/efoerster/texlab/internal/text"
	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCharStreamPeek(t *testing.T) {
	stream := text.NewCharStream("ab\nc")
	for _, want := range []rune{'a', 'b', '\n', 'c'} {
		r, ok := stream.Peek()
		assert.True(t, ok)
		assert.Equal(t, want, r)
		r, ok = stream.Next()
		assert.True(t, ok)
		assert.Equal(t, want, r)
	}
	_, ok := stream.Peek()
	assert.False(t, ok)
	_, ok = stream.Next()
	assert.False(t, ok)
}

func TestCharStreamSpan(t *testing.T) {
	stream := text.NewCharStream("abc\ndef")
	stream.Next()
	stream.StartSpan()
	stream.Next()
	stream.Next()
	span := stream.EndSpan()

	assert.Equal(t, text.NewSpan(text.NewRange(0, 1, 0, 3), "bc"), span)
	assert.Equal(t, protocol.Position{Line: 0, Character: 1}, span.Start())
	assert.Equal(t, protocol.Position{Line: 0, Character: 3}, span.End())
}

func TestCharStreamSpanUnicode(t *testing.T) {
	stream := text.NewCharStream("😀😃😄😁")
	stream.Next()
	stream.StartSpan()
	stream.Next()
	stream.Next()
	span := stream.EndSpan()

	assert.Equal(t, text.NewSpan(text.NewRange(0, 1, 0, 3), "😃😄"), span)
	assert.Equal(t, 4, stream.SpanStart())
	assert.Equal(t, 12, stream.Index())
}

func TestCharStreamSatisfies(t *testing.T) {
	stream := text.NewCharStream("aBc")
	assert.True(t, stream.Satisfies(unicode.IsLower))
	stream.Next()
	assert.False(t, stream.Satisfies(unicode.IsLower))
}

func TestCharStreamSkipRestOfLine(t *testing.T) {
	stream := text.NewCharStream("abc\ndef")
	stream.SkipRestOfLine()
	r, ok := stream.Next()
	assert.True(t, ok)
	assert.Equal(t, 'd', r)

	stream.SkipRestOfLine()
	_, ok = stream.Next()
	assert.False(t, ok)

	stream.SkipRestOfLine()
	_, ok = stream.Next()
	assert.False(t, ok)
}

func TestCharStreamSeek(t *testing.T) {
	stream := text.NewCharStream("abc\ndefghi")
	stream.Seek(protocol.Position{Line: 1, Character: 2})
	r, ok := stream.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'f', r)
}

func TestCharStreamSeekPastEnd(t *testing.T) {
	stream := text.NewCharStream("ab")
	stream.Seek(protocol.Position{Line: 4, Character: 0})
	assert.True(t, stream.EOF())
}
