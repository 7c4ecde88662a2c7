package latex

import (
	"unicode"

	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/text"
)

type token struct {
	kind   syntax.Kind
	length int
}

var commandKinds = map[string]syntax.Kind{
	`\newacronym`: KindAcronymDefinitionName,

	`\color`:     KindColorReferenceName,
	`\colorbox`:  KindColorReferenceName,
	`\textcolor`: KindColorReferenceName,
	`\pagecolor`: KindColorReferenceName,

	`\include`:        KindLatexIncludeName,
	`\input`:          KindLatexIncludeName,
	`\subfile`:        KindLatexIncludeName,
	`\subfileinclude`: KindLatexIncludeName,
	`\addbibresource`: KindBiblatexIncludeName,
	`\bibliography`:   KindBibtexIncludeName,
	`\usepackage`:     KindPackageIncludeName,
	`\RequirePackage`: KindPackageIncludeName,
	`\documentclass`:  KindClassIncludeName,
	`\usetikzlibrary`: KindTikzLibraryImportName,
	`\usepgflibrary`:  KindTikzLibraryImportName,
}

var acronymReferences = []string{
	"acrshort", "Acrshort", "ACRshort", "acrshortpl", "Acrshortpl", "ACRshortpl",
	"acrlong", "Acrlong", "ACRlong", "acrlongpl", "Acrlongpl", "ACRlongpl",
	"acrfull", "Acrfull", "ACRfull", "acrfullpl", "Acrfullpl", "ACRfullpl",
	"acs", "Acs", "acsp", "Acsp", "acl", "Acl", "aclp", "Aclp",
	"acf", "Acf", "acfp", "Acfp", "ac", "Ac", "acp",
	"glsentrylong", "Glsentrylong", "glsentrylongpl", "Glsentrylongpl",
	"glsentryshort", "Glsentryshort", "glsentryshortpl", "Glsentryshortpl",
	"glsentryfullpl", "Glsentryfullpl",
}

var citations = []string{
	"cite", "cite*", "Cite", "nocite", "citet", "citet*", "citep", "citep*",
	"citeauthor", "citeauthor*", "Citeauthor", "citeyear", "citeyearpar",
	"citetitle", "citetitle*", "citeurl", "parencite", "parencite*", "Parencite",
	"footcite", "footcitetext", "textcite", "Textcite", "smartcite", "Smartcite",
	"supercite", "autocite", "autocite*", "Autocite", "Autocite*", "fullcite",
	"footfullcite", "volcite", "pvolcite", "fvolcite", "tvolcite", "avolcite",
	"notecite", "pnotecite", "fnotecite", "citedate", "citedate*",
}

func init() {
	for _, name := range acronymReferences {
		commandKinds[`\`+name] = KindAcronymReferenceName
	}
	for _, name := range citations {
		commandKinds[`\`+name] = KindCitationName
	}
}

func commandKind(name string) syntax.Kind {
	if kind, ok := commandKinds[name]; ok {
		return kind
	}
	return KindGenericCommandName
}

// lex splits source into tokens covering the whole text.
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
	case ' ', '\t':
		for stream.Satisfies(func(r rune) bool { return r == ' ' || r == '\t' }) {
			stream.Next()
		}
		return KindWhitespace
	case '\n':
		return KindLineBreak
	case '\r':
		if stream.Satisfies(func(r rune) bool { return r == '\n' }) {
			stream.Next()
		}
		return KindLineBreak
	case '%':
		for stream.Satisfies(func(r rune) bool { return r != '\n' && r != '\r' }) {
			stream.Next()
		}
		return KindComment
	case '{':
		return KindLCurly
	case '}':
		return KindRCurly
	case '[':
		return KindLBrack
	case ']':
		return KindRBrack
	case '(':
		return KindLParen
	case ')':
		return KindRParen
	case ',':
		return KindComma
	case '=':
		return KindEqualitySign
	case '$':
		return KindDollar
	case '\\':
		return lexCommand(stream)
	default:
		if unicode.IsSpace(c) {
			return KindWhitespace
		}
		for stream.Satisfies(isWordChar) {
			stream.Next()
		}
		return KindWord
	}
}

func lexCommand(stream *text.CharStream) syntax.Kind {
	switch {
	case stream.Satisfies(isCommandChar):
		for stream.Satisfies(isCommandChar) {
			stream.Next()
		}
		if stream.Satisfies(func(r rune) bool { return r == '*' }) {
			stream.Next()
		}
	case stream.Satisfies(func(r rune) bool { return r != '\n' && r != '\r' }):
		stream.Next()
	}
	return commandKind(stream.EndSpan().Text)
}

func isCommandChar(r rune) bool {
	return r == '@' || r == ':' || r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isWordChar(r rune) bool {
	switch r {
	case '\\', '%', '{', '}', '[', ']', '(', ')', ',', '=', '$', '\r', '\n':
		return false
	default:
		return !unicode.IsSpace(r)
	}
}
