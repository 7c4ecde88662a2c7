package cursor

import (
	"github.com/efoerster/texlab/internal/feature"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/workspace"
)

// Context bundles a request with its resolved offset and cursor.
type Context struct {
	Request  feature.Request
	Document *workspace.Document
	Offset   int

	cursor    Cursor
	hasCursor bool
}

// NewContext resolves req. It fails only when the position lies outside
// the main document; an empty document yields a context without cursor.
func NewContext(req feature.Request) (*Context, bool) {
	doc := req.MainDocument()
	if doc == nil {
		return nil, false
	}
	offset, ok := doc.LineIndex.Offset(req.Position)
	if !ok {
		return nil, false
	}
	c := &Context{Request: req, Document: doc, Offset: offset}
	c.cursor, c.hasCursor = Find(doc, offset)
	return c, true
}

func (c *Context) Cursor() (Cursor, bool) {
	return c.cursor, c.hasCursor
}

func (c *Context) AsLatex() (syntax.Token, bool) {
	if !c.hasCursor {
		return syntax.Token{}, false
	}
	return c.cursor.AsLatex()
}

func (c *Context) AsBibtex() (syntax.Token, bool) {
	if !c.hasCursor {
		return syntax.Token{}, false
	}
	return c.cursor.AsBibtex()
}

func (c *Context) CommandRange() (syntax.TextRange, bool) {
	if !c.hasCursor {
		return syntax.TextRange{}, false
	}
	return c.cursor.CommandRange(c.Offset)
}

// IsInsideLatexCurly reports whether the offset lies within the braces of
// group. A closed group covers its small range up to the closing brace; an
// unclosed group covers everything after the opening brace up to its last
// non-trivia token.
func (c *Context) IsInsideLatexCurly(group latex.HasCurly) bool {
	small := latex.SmallRange(group.Syntax())
	if _, closed := group.RightCurly(); closed {
		return small.Contains(c.Offset)
	}
	return c.Offset > small.Start && c.Offset <= small.End
}

// groupOf returns the key under the cursor, if any, and the node that
// would be its enclosing group.
func (c *Context) groupOf() (latex.Key, bool, syntax.Node, bool) {
	tok, ok := c.AsLatex()
	if !ok {
		return latex.Key{}, false, syntax.Node{}, false
	}
	group := tok.Parent()
	key, isKey := latex.CastKey(group)
	if isKey {
		parent, ok := key.Parent()
		if !ok {
			return latex.Key{}, false, syntax.Node{}, false
		}
		group = parent
	}
	return key, isKey, group, true
}

// FindCurlyGroupWord returns the word under the cursor inside a single-word
// group, its range and the group. Without a word the range is empty at the
// offset.
func (c *Context) FindCurlyGroupWord() (string, syntax.TextRange, latex.CurlyGroupWord, bool) {
	key, isKey, node, ok := c.groupOf()
	if !ok {
		return "", syntax.TextRange{}, latex.CurlyGroupWord{}, false
	}
	group, ok := latex.CastCurlyGroupWord(node)
	if !ok || !c.IsInsideLatexCurly(group) {
		return "", syntax.TextRange{}, latex.CurlyGroupWord{}, false
	}
	if isKey {
		return key.String(), latex.SmallRange(key.Node), group, true
	}
	return "", syntax.EmptyRange(c.Offset), group, true
}

// FindCurlyGroupWordList is FindCurlyGroupWord for comma separated lists.
func (c *Context) FindCurlyGroupWordList() (string, syntax.TextRange, latex.CurlyGroupWordList, bool) {
	key, isKey, node, ok := c.groupOf()
	if !ok {
		return "", syntax.TextRange{}, latex.CurlyGroupWordList{}, false
	}
	group, ok := latex.CastCurlyGroupWordList(node)
	if !ok || !c.IsInsideLatexCurly(group) {
		return "", syntax.TextRange{}, latex.CurlyGroupWordList{}, false
	}
	if isKey {
		return key.String(), latex.SmallRange(key.Node), group, true
	}
	return "", syntax.EmptyRange(c.Offset), group, true
}
