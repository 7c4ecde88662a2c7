package completion

import (
	"context"
	"path"
	"strings"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

// completeImports offers package names inside \usepackage and class names
// inside \documentclass.
func completeImports(ctx context.Context, src *Sources, c *cursor.Context) []Item {
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

	var ext string
	if _, ok := latex.CastPackageInclude(parent); ok {
		ext = ".sty"
	} else if _, ok := latex.CastClassInclude(parent); ok {
		ext = ".cls"
	} else {
		return nil
	}

	var items []Item
	seen := make(map[string]bool)
	for _, fileName := range src.Components.FileNames(ext) {
		name := strings.TrimSuffix(fileName, path.Ext(fileName))
		if seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, Item{Range: r, Data: Component{Name: name, Ext: ext}})
	}
	return items
}
