// Package latex implements the LaTeX grammar: a lexer, a recursive-descent
// parser building a syntax.Tree and typed views over its nodes.
package latex

import "github.com/efoerster/texlab/internal/syntax"

const (
	// tokens
	KindWhitespace syntax.Kind = iota
	KindLineBreak
	KindComment
	KindLCurly
	KindRCurly
	KindLBrack
	KindRBrack
	KindLParen
	KindRParen
	KindComma
	KindEqualitySign
	KindDollar
	KindWord
	KindGenericCommandName
	KindAcronymDefinitionName
	KindAcronymReferenceName
	KindColorReferenceName
	KindLatexIncludeName
	KindBiblatexIncludeName
	KindBibtexIncludeName
	KindPackageIncludeName
	KindClassIncludeName
	KindCitationName
	KindTikzLibraryImportName

	// nodes
	KindRoot
	KindText
	KindKey
	KindCurlyGroup
	KindCurlyGroupWord
	KindCurlyGroupWordList
	KindBrackGroup
	KindGenericCommand
	KindAcronymDefinition
	KindAcronymReference
	KindColorReference
	KindLatexInclude
	KindBiblatexInclude
	KindBibtexInclude
	KindPackageInclude
	KindClassInclude
	KindCitation
	KindTikzLibraryImport
)

var kindNames = map[syntax.Kind]string{
	KindWhitespace:            "WHITESPACE",
	KindLineBreak:             "LINE_BREAK",
	KindComment:               "COMMENT",
	KindLCurly:                "L_CURLY",
	KindRCurly:                "R_CURLY",
	KindLBrack:                "L_BRACK",
	KindRBrack:                "R_BRACK",
	KindLParen:                "L_PAREN",
	KindRParen:                "R_PAREN",
	KindComma:                 "COMMA",
	KindEqualitySign:          "EQUALITY_SIGN",
	KindDollar:                "DOLLAR",
	KindWord:                  "WORD",
	KindGenericCommandName:    "GENERIC_COMMAND_NAME",
	KindAcronymDefinitionName: "ACRONYM_DEFINITION_NAME",
	KindAcronymReferenceName:  "ACRONYM_REFERENCE_NAME",
	KindColorReferenceName:    "COLOR_REFERENCE_NAME",
	KindLatexIncludeName:      "LATEX_INCLUDE_NAME",
	KindBiblatexIncludeName:   "BIBLATEX_INCLUDE_NAME",
	KindBibtexIncludeName:     "BIBTEX_INCLUDE_NAME",
	KindPackageIncludeName:    "PACKAGE_INCLUDE_NAME",
	KindClassIncludeName:      "CLASS_INCLUDE_NAME",
	KindCitationName:          "CITATION_NAME",
	KindTikzLibraryImportName: "TIKZ_LIBRARY_IMPORT_NAME",
	KindRoot:                  "ROOT",
	KindText:                  "TEXT",
	KindKey:                   "KEY",
	KindCurlyGroup:            "CURLY_GROUP",
	KindCurlyGroupWord:        "CURLY_GROUP_WORD",
	KindCurlyGroupWordList:    "CURLY_GROUP_WORD_LIST",
	KindBrackGroup:            "BRACK_GROUP",
	KindGenericCommand:        "GENERIC_COMMAND",
	KindAcronymDefinition:     "ACRONYM_DEFINITION",
	KindAcronymReference:      "ACRONYM_REFERENCE",
	KindColorReference:        "COLOR_REFERENCE",
	KindLatexInclude:          "LATEX_INCLUDE",
	KindBiblatexInclude:       "BIBLATEX_INCLUDE",
	KindBibtexInclude:         "BIBTEX_INCLUDE",
	KindPackageInclude:        "PACKAGE_INCLUDE",
	KindClassInclude:          "CLASS_INCLUDE",
	KindCitation:              "CITATION",
	KindTikzLibraryImport:     "TIKZ_LIBRARY_IMPORT",
}

// KindName returns the debug name of a LaTeX kind.
func KindName(kind syntax.Kind) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsCommandName reports whether kind is one of the command name tokens.
func IsCommandName(kind syntax.Kind) bool {
	return kind >= KindGenericCommandName && kind <= KindTikzLibraryImportName
}

// IsTrivia reports whether kind carries no meaning for the parser.
func IsTrivia(kind syntax.Kind) bool {
	switch kind {
	case KindWhitespace, KindLineBreak, KindComment:
		return true
	default:
		return false
	}
}
