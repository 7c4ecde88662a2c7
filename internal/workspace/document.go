// Package workspace holds parsed documents and the include relation
// between them.
package workspace

import (
	"path"
	"strings"

	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/bibtex"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/text"
)

type Language int

const (
	LanguageLatex Language = iota
	LanguageBibtex
)

func (l Language) String() string {
	if l == LanguageBibtex {
		return "bibtex"
	}
	return "latex"
}

// LanguageFromURI guesses the grammar of a document by its extension.
func LanguageFromURI(uri string) (Language, bool) {
	switch strings.ToLower(path.Ext(uri)) {
	case ".tex", ".sty", ".cls", ".ltx", ".dtx", ".def":
		return LanguageLatex, true
	case ".bib":
		return LanguageBibtex, true
	default:
		return 0, false
	}
}

// Data is the parsed content of a document: *LatexData or *BibtexData.
type Data interface {
	Root() syntax.Node
	isData()
}

type LatexData struct {
	tree  *syntax.Tree
	Links []Link
}

func (d *LatexData) Root() syntax.Node {
	return d.tree.Root()
}

func (*LatexData) isData() {}

type BibtexData struct {
	tree *syntax.Tree
}

func (d *BibtexData) Root() syntax.Node {
	return d.tree.Root()
}

func (*BibtexData) isData() {}

// Document is an immutable parsed text.
type Document struct {
	URI       string
	Text      string
	Language  Language
	LineIndex *text.LineIndex
	Data      Data
}

// NewDocument parses text with the grammar of language.
func NewDocument(uri, content string, language Language) *Document {
	doc := &Document{
		URI:       uri,
		Text:      content,
		Language:  language,
		LineIndex: text.NewLineIndex(content),
	}
	switch language {
	case LanguageBibtex:
		doc.Data = &BibtexData{tree: bibtex.Parse(content)}
	default:
		tree := latex.Parse(content)
		doc.Data = &LatexData{tree: tree, Links: extractLinks(uri, tree.Root())}
	}
	return doc
}

func (d *Document) Latex() (*LatexData, bool) {
	data, ok := d.Data.(*LatexData)
	return data, ok
}

func (d *Document) Bibtex() (*BibtexData, bool) {
	data, ok := d.Data.(*BibtexData)
	return data, ok
}
