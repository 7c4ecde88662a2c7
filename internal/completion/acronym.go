package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

func completeAcronyms(ctx context.Context, _ *Sources, c *cursor.Context) []Item {
	if ctx.Err() != nil {
		return nil
	}

	_, r, group, ok := c.FindCurlyGroupWord()
	if !ok {
		return nil
	}
	parent, ok := group.Parent()
	if !ok {
		return nil
	}
	if _, ok := latex.CastAcronymReference(parent); !ok {
		return nil
	}

	var items []Item
	for _, doc := range c.Request.Subset.Documents {
		data, ok := doc.Latex()
		if !ok {
			continue
		}
		for _, n := range data.Root().Descendants() {
			def, ok := latex.CastAcronymDefinition(n)
			if !ok {
				continue
			}
			name, ok := def.Name()
			if !ok {
				continue
			}
			key, ok := name.Key()
			if !ok {
				continue
			}
			items = append(items, Item{Range: r, Data: Acronym{Name: key.String()}})
		}
	}
	return items
}
