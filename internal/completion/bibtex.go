package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/bibtex"
)

// completeEntryTypes offers entry types while the cursor is on an @type
// token, after the @.
func completeEntryTypes(ctx context.Context, src *Sources, c *cursor.Context) []Item {
	if ctx.Err() != nil {
		return nil
	}

	tok, ok := c.AsBibtex()
	if !ok || !bibtex.IsType(tok.Kind()) {
		return nil
	}
	tr := tok.Range()
	if c.Offset <= tr.Start {
		return nil
	}
	r := syntax.NewRange(tr.Start+1, tr.End)

	items := make([]Item, 0, len(src.Language.EntryTypes))
	for _, t := range src.Language.EntryTypes {
		items = append(items, Item{Range: r, Data: EntryType{Name: t.Name, Documentation: t.Documentation}})
	}
	return items
}

// completeFields offers field names on a field name or between the fields
// of an entry.
func completeFields(ctx context.Context, src *Sources, c *cursor.Context) []Item {
	if ctx.Err() != nil {
		return nil
	}

	tok, ok := c.AsBibtex()
	if !ok {
		return nil
	}

	var r syntax.TextRange
	switch tok.Kind() {
	case bibtex.KindWord:
		key, ok := bibtex.CastKey(tok.Parent())
		if !ok {
			return nil
		}
		parent, ok := key.Parent()
		if !ok {
			return nil
		}
		if _, ok := bibtex.CastField(parent); !ok {
			return nil
		}
		r = tok.Range()
	case bibtex.KindWhitespace, bibtex.KindLineBreak, bibtex.KindComma, bibtex.KindRCurly, bibtex.KindRParen:
		if (tok.Kind() == bibtex.KindRCurly || tok.Kind() == bibtex.KindRParen) && c.Offset >= tok.Range().End {
			return nil
		}
		parent := tok.Parent()
		if _, ok := bibtex.CastEntry(parent); !ok {
			return nil
		}
		if _, hasKey := afterKey(parent, c.Offset); !hasKey {
			return nil
		}
		r = syntax.EmptyRange(c.Offset)
	default:
		return nil
	}

	items := make([]Item, 0, len(src.Language.Fields))
	for _, f := range src.Language.Fields {
		items = append(items, Item{Range: r, Data: Field{Name: f.Name, Documentation: f.Documentation}})
	}
	return items
}

// afterKey reports whether offset lies after the comma that ends the
// citation key of entry.
func afterKey(entry syntax.Node, offset int) (syntax.Token, bool) {
	for _, tok := range entry.ChildTokens() {
		if tok.Kind() == bibtex.KindComma && tok.Range().End <= offset {
			return tok, true
		}
	}
	return syntax.Token{}, false
}
