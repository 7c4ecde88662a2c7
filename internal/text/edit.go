package text

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ApplyChange splices an incremental LSP change into document.
// A change without a range replaces the whole document.
func ApplyChange(document string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}

	index := NewLineIndex(document)
	start, ok := index.Offset(change.Range.Start)
	if !ok {
		start = len(document)
	}
	end, ok := index.Offset(change.Range.End)
	if !ok {
		end = len(document)
	}
	if end < start {
		start, end = end, start
	}
	return document[:start] + change.Text + document[end:]
}
