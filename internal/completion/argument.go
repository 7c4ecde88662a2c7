package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/latex"
)

// completeArguments offers the values a linked component declares for the
// brace group argument under the cursor.
func completeArguments(ctx context.Context, src *Sources, c *cursor.Context) []Item {
	if ctx.Err() != nil {
		return nil
	}

	tok, ok := c.AsLatex()
	if !ok {
		return nil
	}

	r := syntax.EmptyRange(c.Offset)
	if tok.Kind() == latex.KindWord {
		r = tok.Range()
	}

	group, ok := latex.CastCurlyGroup(tok.Parent())
	if !ok {
		grandparent, hasParent := tok.Parent().Parent()
		if !hasParent {
			return nil
		}
		if group, ok = latex.CastCurlyGroup(grandparent); !ok {
			return nil
		}
	}
	if !c.IsInsideLatexCurly(group) {
		return nil
	}

	parent, ok := group.Parent()
	if !ok {
		return nil
	}
	command, ok := latex.CastGenericCommand(parent)
	if !ok {
		return nil
	}

	index := -1
	for i, g := range command.CurlyGroups() {
		if g.Range() == group.Range() {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	name, ok := command.Name()
	if !ok {
		return nil
	}
	commandName := name.Text()[1:]

	var items []Item
	for _, component := range src.Components.LinkedComponents(c.Request.Subset) {
		for _, cmd := range component.Commands {
			if cmd.Name != commandName || index >= len(cmd.Parameters) {
				continue
			}
			for _, arg := range cmd.Parameters[index] {
				items = append(items, Item{
					Range: r,
					Data:  Argument{Name: arg.Name, Image: arg.Image},
				})
			}
		}
	}
	return items
}
