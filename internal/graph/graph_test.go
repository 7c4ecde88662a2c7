package graph_test

import (
	"strings"
	"testing"

	"github.com/efoerster/texlab/internal/feature/featuretest"
	"github.com/efoerster/texlab/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	ws := featuretest.New().
		File("main.tex", `\include{chapter}\bibliography{refs}\input{missing}`).
		File("chapter.tex", "").
		File("refs.bib", "").
		Workspace()

	g := graph.Build(ws.Documents())
	assert.Equal(t, []graph.Node{
		{ID: 0, Label: "main.tex", URI: featuretest.URI("main.tex")},
		{ID: 1, Label: "chapter.tex", URI: featuretest.URI("chapter.tex")},
		{ID: 2, Label: "refs.bib", URI: featuretest.URI("refs.bib")},
	}, g.Nodes)
	assert.Equal(t, []graph.Link{
		{Source: 0, Target: 1, Kind: "latex"},
		{Source: 0, Target: 2, Kind: "bibtex"},
	}, g.Links)
}

func TestBuildEmpty(t *testing.T) {
	g := graph.Build(nil)
	assert.NotNil(t, g.Nodes)
	assert.NotNil(t, g.Links)
}

func TestWriteDOT(t *testing.T) {
	g := graph.GraphData{
		Nodes: []graph.Node{
			{ID: 0, Label: "main.tex", URI: "file:///main.tex"},
			{ID: 1, Label: "refs.bib", URI: "file:///refs.bib"},
		},
		Links: []graph.Link{{Source: 0, Target: 1, Kind: "biblatex"}},
	}

	var b strings.Builder
	require.NoError(t, graph.WriteDOT(&b, g))
	assert.Equal(t, `digraph includes {
	n0 [label="main.tex", tooltip="file:///main.tex"];
	n1 [label="refs.bib", tooltip="file:///refs.bib"];
	n0 -> n1 [style=dashed];
}
`, b.String())
}
