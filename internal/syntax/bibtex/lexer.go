package bibtex

import (
	"strings"
	"unicode"

	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/text"
)

type token struct {
	kind   syntax.Kind
	length int
}

func lex(source string) []token {
	stream := text.NewCharStream(source)
	var tokens []token
	for !stream.EOF() {
		stream.StartSpan()
		kind := lexToken(stream)
		tokens = append(tokens, token{kind: kind, length: stream.Index() - stream.SpanStart()})
	}
	return tokens
}

func lexToken(stream *text.CharStream) syntax.Kind {
	c, _ := stream.Next()
	switch c {
	case '\n':
		return KindLineBreak
	case '\r':
		if stream.Satisfies(func(r rune) bool { return r == '\n' }) {
			stream.Next()
		}
		return KindLineBreak
	case '{':
		return KindLCurly
	case '}':
		return KindRCurly
	case '(':
		return KindLParen
	case ')':
		return KindRParen
	case ',':
		return KindComma
	case '#':
		return KindHash
	case '"':
		return KindQuote
	case '=':
		return KindEqualitySign
	case '@':
		return lexType(stream)
	case '\\':
		if stream.Satisfies(unicode.IsLetter) {
			for stream.Satisfies(unicode.IsLetter) {
				stream.Next()
			}
		} else if stream.Satisfies(func(r rune) bool { return r != '\n' && r != '\r' }) {
			stream.Next()
		}
		return KindCommandName
	}

	if isBlank(c) {
		for stream.Satisfies(isBlank) {
			stream.Next()
		}
		return KindWhitespace
	}
	for stream.Satisfies(isWordChar) {
		stream.Next()
	}
	return KindWord
}

func lexType(stream *text.CharStream) syntax.Kind {
	if !stream.Satisfies(unicode.IsLetter) {
		for stream.Satisfies(isWordChar) {
			stream.Next()
		}
		return KindWord
	}
	for stream.Satisfies(unicode.IsLetter) {
		stream.Next()
	}
	switch strings.ToLower(stream.EndSpan().Text) {
	case "@preamble":
		return KindPreambleType
	case "@string":
		return KindStringType
	case "@comment":
		return KindCommentType
	default:
		return KindEntryType
	}
}

func isBlank(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}

func isWordChar(r rune) bool {
	switch r {
	case '{', '}', '(', ')', ',', '#', '"', '=', '@', '\\':
		return false
	default:
		return !unicode.IsSpace(r)
	}
}
