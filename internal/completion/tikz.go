package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

func completeTikzLibraries(ctx context.Context, src *Sources, c *cursor.Context) []Item {
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
	imp, ok := latex.CastTikzLibraryImport(parent)
	if !ok {
		return nil
	}
	name, ok := latex.CommandName(imp.Node)
	if !ok {
		return nil
	}

	libraries := src.Language.TikzLibraries
	if name.Text() == `\usepgflibrary` {
		libraries = src.Language.PgfLibraries
	}

	items := make([]Item, 0, len(libraries))
	for _, lib := range libraries {
		items = append(items, Item{Range: r, Data: TikzLibrary{Name: lib}})
	}
	return items
}
