package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

func completeColors(ctx context.Context, src *Sources, c *cursor.Context) []Item {
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
	if _, ok := latex.CastColorReference(parent); !ok {
		return nil
	}

	items := make([]Item, 0, len(src.Language.Colors))
	for _, name := range src.Language.Colors {
		items = append(items, Item{Range: r, Data: Color{Name: name}})
	}
	return items
}
