package completion_test

import (
	"context"
	"testing"

	"github.com/efoerster/texlab/internal/completion"
	"github.com/efoerster/texlab/internal/feature/featuretest"
	"github.com/efoerster/texlab/internal/syntax"
	"github.com/efoerster/texlab/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestQuality(t *testing.T) {
	tests := []struct {
		query    string
		hasQuery bool
		label    string
		want     int
	}{
		{"foo", true, "foo", 7},
		{"foo", true, "FOO", 6},
		{"foo", true, "foobar", 5},
		{"foo", true, "FOOBAR", 4},
		{"foo", true, "barfoo", 3},
		{"foo", true, "BARFOO", 2},
		{"foo", true, "bar", 1},
		{"", true, "bar", 5},
		{"foo", false, "foo", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, completion.Quality(tt.query, tt.hasQuery, tt.label), "%q vs %q", tt.query, tt.label)
	}
}

func TestOrderByQualityIsStable(t *testing.T) {
	items := []completion.Item{
		{Data: completion.Color{Name: "bar"}},
		{Data: completion.Color{Name: "xfoo"}},
		{Data: completion.Color{Name: "foo"}},
		{Data: completion.Color{Name: "baz"}},
		{Data: completion.Color{Name: "foox"}},
	}
	completion.OrderByQuality(items, "foo", true)
	assert.Equal(t, []string{"foo", "foox", "xfoo", "bar", "baz"}, labels(items))
}

func TestOrderByQualityWithoutQuery(t *testing.T) {
	items := []completion.Item{
		{Data: completion.Color{Name: "b"}},
		{Data: completion.Color{Name: "a"}},
	}
	completion.OrderByQuality(items, "", false)
	assert.Equal(t, []string{"b", "a"}, labels(items))
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		text   string
		offset int
		want   string
		ok     bool
	}{
		{"empty latex", "main.tex", "", 0, "", true},
		{"command", "main.tex", `\foo`, 2, "foo", true},
		{"command end", "main.tex", `\foo`, 4, "foo", true},
		{"text", "main.tex", "hello wor", 9, "wor", true},
		{"text start", "main.tex", "hello ", 0, "", false},
		{"key", "main.tex", `\color{Re}`, 9, "Re", true},
		{"group", "main.tex", `\foo{}`, 5, "", true},
		{"entry type", "main.bib", `@arti`, 3, "arti", true},
		{"entry body", "main.bib", `@article{foo, }`, 14, "", true},
		{"field name", "main.bib", `@article{foo, tit}`, 17, "tit", true},
		{"junk", "main.bib", `junk`, 2, "junk", true},
		{"literal", "main.bib", `@article{foo, title = bar}`, 24, "bar", true},
		{"command", "main.bib", `@article{foo, title = \bar}`, 24, "bar", true},
		{"past end", "main.tex", `\foo`, 10, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			language, _ := workspace.LanguageFromURI(tt.uri)
			doc := workspace.NewDocument(featuretest.URI(tt.uri), tt.text, language)
			got, ok := completion.Query(doc, tt.offset)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompleteOrdersByQuality(t *testing.T) {
	req := featuretest.New().
		File("main.tex", `\color{Re}`).
		Main("main.tex").
		Position(0, 9).
		Request()

	items := completion.Complete(context.Background(), completion.DefaultSources(), req)
	require.NotEmpty(t, items)
	assert.Equal(t, "Red", items[0].Data.Label())
	assert.Equal(t, "RedOrange", items[1].Data.Label())
}

func TestCompleteMergesProviders(t *testing.T) {
	req := featuretest.New().
		File("main.tex", `\usepackage{amssymb}\mathbb{}`).
		Main("main.tex").
		Position(0, 28).
		Request()

	items := completion.Complete(context.Background(), completion.DefaultSources(), req)
	for _, item := range items {
		assert.IsType(t, completion.Argument{}, item.Data)
	}
	assert.Contains(t, labels(items), "R")
}

func TestCompleteCanceled(t *testing.T) {
	req := featuretest.New().
		File("main.tex", `\color{}`).
		Main("main.tex").
		Position(0, 7).
		Request()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, completion.Complete(ctx, completion.DefaultSources(), req))
}

func TestCompleteOutsideDocument(t *testing.T) {
	req := featuretest.New().
		File("main.tex", `\color{}`).
		Main("main.tex").
		Position(5, 0).
		Request()

	assert.Empty(t, completion.Complete(context.Background(), completion.DefaultSources(), req))
}

func TestToProtocol(t *testing.T) {
	doc := workspace.NewDocument(featuretest.URI("main.tex"), "x\n\\usepackage{am}", workspace.LanguageLatex)
	item := completion.Item{
		Range: syntax.NewRange(14, 16),
		Data:  completion.Component{Name: "amsmath", Ext: ".sty"},
	}

	result := completion.ToProtocol(doc, item)
	assert.Equal(t, "amsmath", result.Label)
	require.NotNil(t, result.Kind)
	assert.Equal(t, protocol.CompletionItemKindModule, *result.Kind)
	assert.Equal(t, protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 12},
			End:   protocol.Position{Line: 1, Character: 14},
		},
		NewText: "amsmath",
	}, result.TextEdit)
	assert.Equal(t, completion.ResolveData{Component: "amsmath"}, result.Data)
}

func TestToProtocolDocumentation(t *testing.T) {
	doc := workspace.NewDocument(featuretest.URI("main.bib"), "@a", workspace.LanguageBibtex)
	result := completion.ToProtocol(doc, completion.Item{
		Range: syntax.NewRange(1, 2),
		Data:  completion.EntryType{Name: "article", Documentation: "An article."},
	})
	assert.Equal(t, protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: "An article."}, result.Documentation)
	assert.Nil(t, result.Detail)
}
