// Package completion produces completion candidates for LaTeX and BibTeX
// documents.
package completion

import (
	"context"

	"github.com/efoerster/texlab/internal/componentdb"
	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/feature"
	"github.com/efoerster/texlab/internal/langdata"
	"github.com/efoerster/texlab/internal/symbols"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("texlab.completion")

// Sources are the databases providers draw candidates from.
type Sources struct {
	Components *componentdb.Database
	Symbols    *symbols.Database
	Language   *langdata.LanguageData
}

// DefaultSources uses the databases embedded in the binary.
func DefaultSources() *Sources {
	return &Sources{
		Components: componentdb.Default(),
		Symbols:    symbols.Get(),
		Language:   langdata.Get(),
	}
}

// Provider appends nothing unless the cursor sits inside its construct.
type Provider func(ctx context.Context, src *Sources, c *cursor.Context) []Item

// Providers is the fixed roster; merge order follows it.
var Providers = []Provider{
	completeEntryTypes,
	completeFields,
	completeArguments,
	completeAcronyms,
	completeCitations,
	completeImports,
	completeColors,
	completeTikzLibraries,
	completeCommandSymbols,
}

// Complete runs every provider for req and orders the merged candidates
// by how well they match the text at the cursor. Providers that have not
// started when ctx is canceled contribute nothing.
func Complete(ctx context.Context, src *Sources, req feature.Request) []Item {
	c, ok := cursor.NewContext(req)
	if !ok {
		log.Debugf("no completion context at %d:%d", req.Position.Line, req.Position.Character)
		return nil
	}

	var items []Item
	for _, provider := range Providers {
		if ctx.Err() != nil {
			log.Debugf("completion canceled after %d items", len(items))
			break
		}
		items = append(items, provider(ctx, src, c)...)
	}

	query, hasQuery := Query(c.Document, c.Offset)
	OrderByQuality(items, query, hasQuery)
	return items
}
