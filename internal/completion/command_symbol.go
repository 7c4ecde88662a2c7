package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
)

// completeCommandSymbols offers kernel symbols and the symbols of
// components loaded by the subset.
func completeCommandSymbols(ctx context.Context, src *Sources, c *cursor.Context) []Item {
	if ctx.Err() != nil {
		return nil
	}

	r, ok := c.CommandRange()
	if !ok {
		return nil
	}

	linked := src.Components.LinkedComponents(c.Request.Subset)
	loaded := func(fileName string) bool {
		for _, component := range linked {
			if component.HasFile(fileName) {
				return true
			}
		}
		return false
	}

	var items []Item
	for _, symbol := range src.Symbols.Commands {
		if symbol.Component != "" && !loaded(symbol.Component) {
			continue
		}
		items = append(items, Item{Range: r, Data: CommandSymbol{
			Name:      symbol.Command,
			Component: symbol.Component,
			Image:     symbol.Image,
		}})
	}
	return items
}
