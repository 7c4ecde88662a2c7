package completion

import (
	"fmt"

	"github.com/efoerster/texlab/internal/workspace"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ResolveData travels with component items so that completionItem/resolve
// can look up their metadata.
type ResolveData struct {
	Component string `json:"component"`
}

// ToProtocol converts item into an LSP completion item replacing its range
// in doc.
func ToProtocol(doc *workspace.Document, item Item) protocol.CompletionItem {
	label := item.Data.Label()
	result := protocol.CompletionItem{
		Label: label,
		TextEdit: protocol.TextEdit{
			Range:   doc.LineIndex.Range(item.Range.Start, item.Range.End),
			NewText: label,
		},
	}

	var kind protocol.CompletionItemKind
	var detail string
	switch data := item.Data.(type) {
	case Acronym:
		kind = protocol.CompletionItemKindConstant
	case Argument:
		kind = protocol.CompletionItemKindValue
		result.Documentation = image(data.Name, data.Image)
	case Color:
		kind = protocol.CompletionItemKindColor
	case CommandSymbol:
		kind = protocol.CompletionItemKindFunction
		detail = "built-in"
		if data.Component != "" {
			detail = data.Component
		}
		result.Documentation = image(data.Name, data.Image)
	case Citation:
		kind = protocol.CompletionItemKindReference
		detail = data.EntryType
	case Component:
		kind = protocol.CompletionItemKindModule
		if data.Ext == ".cls" {
			kind = protocol.CompletionItemKindClass
		}
		result.Data = ResolveData{Component: data.Name}
	case TikzLibrary:
		kind = protocol.CompletionItemKindModule
	case EntryType:
		kind = protocol.CompletionItemKindInterface
		result.Documentation = markdown(data.Documentation)
	case Field:
		kind = protocol.CompletionItemKindField
		result.Documentation = markdown(data.Documentation)
	}

	result.Kind = &kind
	if detail != "" {
		result.Detail = &detail
	}
	return result
}

func markdown(value string) any {
	if value == "" {
		return nil
	}
	return protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: value}
}

// image renders a base64 encoded PNG as markdown.
func image(name, data string) any {
	if data == "" {
		return nil
	}
	return markdown(fmt.Sprintf("![%s](data:image/png;base64,%s|width=48,height=48)", name, data))
}
