// Package rename renames LaTeX commands across related documents.
package rename

import (
	"context"

	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/syntax/latex"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("texlab.rename")

// PrepareCommandRename returns the range of the command name under the
// cursor, without its backslash.
func PrepareCommandRename(c *cursor.Context) (protocol.Range, bool) {
	r, ok := c.CommandRange()
	if !ok {
		return protocol.Range{}, false
	}
	return c.Document.LineIndex.Range(r.Start, r.End), true
}

// RenameCommand replaces every command name equal to the one under the
// cursor in the documents related to it. Matching is purely textual.
// Documents without occurrences are left out of the edit.
func RenameCommand(ctx context.Context, c *cursor.Context, newName string) (*protocol.WorkspaceEdit, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	if _, ok := PrepareCommandRename(c); !ok {
		return nil, false
	}
	tok, ok := c.AsLatex()
	if !ok {
		return nil, false
	}
	name := tok.Text()

	changes := make(map[protocol.DocumentUri][]protocol.TextEdit)
	for _, doc := range c.Request.Subset.Documents {
		if ctx.Err() != nil {
			log.Debugf("rename of %s canceled", name)
			return nil, false
		}

		data, ok := doc.Latex()
		if !ok {
			continue
		}

		var edits []protocol.TextEdit
		for _, element := range data.Root().DescendantsWithTokens() {
			tok, ok := element.AsToken()
			if !ok || !latex.IsCommandName(tok.Kind()) || tok.Text() != name {
				continue
			}
			r := tok.Range()
			r = syntax.NewRange(r.Start+1, r.End)
			edits = append(edits, protocol.TextEdit{
				Range:   doc.LineIndex.Range(r.Start, r.End),
				NewText: newName,
			})
		}
		if len(edits) > 0 {
			changes[doc.URI] = edits
		}
	}

	return &protocol.WorkspaceEdit{Changes: changes}, true
}
