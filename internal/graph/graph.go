// Package graph exports the include graph of a set of documents.
package graph

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/efoerster/texlab/internal/syntax/latex"
	"github.com/efoerster/texlab/internal/workspace"
)

// GraphData holds the nodes and links of the graph.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node represents a document.
// ID must be unique.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

// Link represents a directed include edge between two nodes.
type Link struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Kind   string `json:"kind"`
}

// Build creates the graph of docs. Links whose targets are not part of
// docs are left out.
func Build(docs []*workspace.Document) GraphData {
	graph := GraphData{Nodes: []Node{}, Links: []Link{}}
	ids := make(map[string]int, len(docs))
	for i, doc := range docs {
		ids[doc.URI] = i
		graph.Nodes = append(graph.Nodes, Node{ID: i, Label: path.Base(doc.URI), URI: doc.URI})
	}

	for _, doc := range docs {
		data, ok := doc.Latex()
		if !ok {
			continue
		}
		for _, link := range data.Links {
			for _, target := range link.Targets {
				id, ok := ids[target]
				if !ok {
					continue
				}
				graph.Links = append(graph.Links, Link{
					Source: ids[doc.URI],
					Target: id,
					Kind:   kindName(link.Kind),
				})
				break
			}
		}
	}
	return graph
}

func kindName(kind latex.IncludeKind) string {
	switch kind {
	case latex.IncludeBiblatex:
		return "biblatex"
	case latex.IncludeBibtex:
		return "bibtex"
	default:
		return "latex"
	}
}

// WriteDOT renders graph in the Graphviz DOT language.
func WriteDOT(w io.Writer, graph GraphData) error {
	var b strings.Builder
	b.WriteString("digraph includes {\n")
	for _, n := range graph.Nodes {
		fmt.Fprintf(&b, "\tn%d [label=%q, tooltip=%q];\n", n.ID, n.Label, n.URI)
	}
	for _, l := range graph.Links {
		style := "solid"
		if l.Kind != "latex" {
			style = "dashed"
		}
		fmt.Fprintf(&b, "\tn%d -> n%d [style=%s];\n", l.Source, l.Target, style)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
