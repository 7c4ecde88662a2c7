// Package bibtex implements the BibTeX grammar on top of package syntax.
package bibtex

import "github.com/efoerster/texlab/internal/syntax"

const (
	// tokens
	KindWhitespace syntax.Kind = iota
	KindLineBreak
	KindPreambleType
	KindStringType
	KindCommentType
	KindEntryType
	KindWord
	KindLCurly
	KindRCurly
	KindLParen
	KindRParen
	KindComma
	KindHash
	KindQuote
	KindEqualitySign
	KindCommandName

	// nodes
	KindRoot
	KindJunk
	KindPreamble
	KindString
	KindEntry
	KindKey
	KindField
	KindConcat
	KindBraceGroup
	KindQuoteGroup
	KindLiteral
	KindCommand
)

var kindNames = map[syntax.Kind]string{
	KindWhitespace:   "WHITESPACE",
	KindLineBreak:    "LINE_BREAK",
	KindPreambleType: "PREAMBLE_TYPE",
	KindStringType:   "STRING_TYPE",
	KindCommentType:  "COMMENT_TYPE",
	KindEntryType:    "ENTRY_TYPE",
	KindWord:         "WORD",
	KindLCurly:       "L_CURLY",
	KindRCurly:       "R_CURLY",
	KindLParen:       "L_PAREN",
	KindRParen:       "R_PAREN",
	KindComma:        "COMMA",
	KindHash:         "HASH",
	KindQuote:        "QUOTE",
	KindEqualitySign: "EQUALITY_SIGN",
	KindCommandName:  "COMMAND_NAME",
	KindRoot:         "ROOT",
	KindJunk:         "JUNK",
	KindPreamble:     "PREAMBLE",
	KindString:       "STRING",
	KindEntry:        "ENTRY",
	KindKey:          "KEY",
	KindField:        "FIELD",
	KindConcat:       "CONCAT",
	KindBraceGroup:   "BRACE_GROUP",
	KindQuoteGroup:   "QUOTE_GROUP",
	KindLiteral:      "LITERAL",
	KindCommand:      "COMMAND",
}

func KindName(kind syntax.Kind) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return "UNKNOWN"
}

func IsTrivia(kind syntax.Kind) bool {
	return kind == KindWhitespace || kind == KindLineBreak
}

// IsType reports whether kind is an @-prefixed entry keyword.
func IsType(kind syntax.Kind) bool {
	switch kind {
	case KindPreambleType, KindStringType, KindCommentType, KindEntryType:
		return true
	default:
		return false
	}
}
