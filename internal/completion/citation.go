package completion

import (
	"context"
	"strings"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax/bibtex"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

func completeCitations(ctx context.Context, _ *Sources, c *cursor.Context) []Item {
	if ctx.Err() != nil {
		return nil
	}

	_, r, group, ok := c.FindCurlyGroupWordList()
	if !ok {
		return nil
	}
	parent, ok := group.Parent()
	if !ok {
		return nil
	}
	if _, ok := latex.CastCitation(parent); !ok {
		return nil
	}

	var items []Item
	for _, doc := range c.Request.Subset.Documents {
		data, ok := doc.Bibtex()
		if !ok {
			continue
		}
		for _, n := range data.Root().Children() {
			entry, ok := bibtex.CastEntry(n)
			if !ok {
				continue
			}
			key, ok := entry.Key()
			if !ok {
				continue
			}
			var entryType string
			if tok, ok := entry.Type(); ok {
				entryType = strings.ToLower(tok.Text()[1:])
			}
			items = append(items, Item{Range: r, Data: Citation{Key: key.Text(), EntryType: entryType}})
		}
	}
	return items
}
