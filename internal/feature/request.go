// Package feature carries the inputs shared by every language feature.
package feature

import (
	"github.com/efoerster/texlab/internal/workspace"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Request is a position inside the main document of a subset.
type Request struct {
	Subset   workspace.Subset
	Position protocol.Position
}

func NewRequest(w *workspace.Workspace, uri string, position protocol.Position) (Request, bool) {
	subset, ok := w.Subset(uri)
	if !ok {
		return Request{}, false
	}
	return Request{Subset: subset, Position: position}, true
}

// MainDocument is the document the request was issued for.
func (r Request) MainDocument() *workspace.Document {
	doc, _ := r.Subset.Main()
	return doc
}

// Offset converts the request position to a byte offset in the main document.
func (r Request) Offset() (int, bool) {
	doc := r.MainDocument()
	if doc == nil {
		return 0, false
	}
	return doc.LineIndex.Offset(r.Position)
}
