// Package cursor resolves what a position inside a document points at.
package cursor

import (
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/bibtex"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/workspace"
)

// Cursor is the token a position is considered to be on.
type Cursor struct {
	token    syntax.Token
	language workspace.Language
}

func (c Cursor) Token() syntax.Token {
	return c.token
}

func (c Cursor) AsLatex() (syntax.Token, bool) {
	if !c.token.IsValid() || c.language != workspace.LanguageLatex {
		return syntax.Token{}, false
	}
	return c.token, true
}

func (c Cursor) AsBibtex() (syntax.Token, bool) {
	if !c.token.IsValid() || c.language != workspace.LanguageBibtex {
		return syntax.Token{}, false
	}
	return c.token, true
}

// CommandRange returns the range of the LaTeX command name under the cursor
// without its backslash. A cursor placed right before the backslash does
// not count.
func (c Cursor) CommandRange(offset int) (syntax.TextRange, bool) {
	tok, ok := c.AsLatex()
	if !ok || !latex.IsCommandName(tok.Kind()) || tok.Range().Start == offset {
		return syntax.TextRange{}, false
	}
	r := tok.Range()
	return syntax.NewRange(r.Start+1, r.End), true
}

// Find picks the token at offset. On a boundary between two tokens the
// left one wins unless the right one is more specific.
func Find(doc *workspace.Document, offset int) (Cursor, bool) {
	if doc == nil || doc.Data == nil {
		return Cursor{}, false
	}
	left, right, ok := doc.Data.Root().Tree().TokenAtOffset(offset)
	if !ok {
		return Cursor{}, false
	}

	var tok syntax.Token
	switch doc.Language {
	case workspace.LanguageBibtex:
		tok = pickBibtex(left, right)
	default:
		tok = pickLatex(left, right)
	}
	return Cursor{token: tok, language: doc.Language}, true
}

func pickLatex(left, right syntax.Token) syntax.Token {
	switch {
	case latex.IsCommandName(left.Kind()):
		return left
	case right.Kind() == latex.KindWord:
		return right
	case left.Kind() == latex.KindWord:
		return left
	case latex.IsCommandName(right.Kind()):
		return right
	case !latex.IsTrivia(left.Kind()):
		return left
	default:
		return right
	}
}

func pickBibtex(left, right syntax.Token) syntax.Token {
	special := func(kind syntax.Kind) bool {
		return bibtex.IsType(kind) || kind == bibtex.KindCommandName
	}
	switch {
	case special(left.Kind()):
		return left
	case right.Kind() == bibtex.KindWord:
		return right
	case left.Kind() == bibtex.KindWord:
		return left
	case special(right.Kind()):
		return right
	case !bibtex.IsTrivia(left.Kind()):
		return left
	default:
		return right
	}
}
