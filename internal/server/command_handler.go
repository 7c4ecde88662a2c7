package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/efoerster/texlab/internal/graph"
	"github.com/efoerster/texlab/internal/workspace"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// CommandDependencyGraph renders the include graph as DOT. An optional
// URI argument restricts the graph to the documents related to it.
const CommandDependencyGraph = "texlab.dependencyGraph"

func (s *Server) workspaceExecuteCommand(
	context *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	result := resultError
	defer track("workspace/executeCommand", time.Now(), &result)

	switch params.Command {
	case CommandDependencyGraph:
		dot, err := s.dependencyGraph(params.Arguments)
		if err != nil {
			return nil, err
		}
		result = resultOK
		return dot, nil
	default:
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
}

func (s *Server) dependencyGraph(args []any) (string, error) {
	docs := s.Workspace().Documents()
	if len(args) > 0 {
		uri, ok := args[0].(string)
		if !ok {
			return "", fmt.Errorf("expected a document uri, got %T", args[0])
		}
		subset, ok := s.Workspace().Subset(uri)
		if !ok {
			return "", fmt.Errorf("unknown document %s", uri)
		}
		docs = subset.Documents
	}
	return renderGraph(docs)
}

func renderGraph(docs []*workspace.Document) (string, error) {
	var b strings.Builder
	if err := graph.WriteDOT(&b, graph.Build(docs)); err != nil {
		return "", err
	}
	return b.String(), nil
}
