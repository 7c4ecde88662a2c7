// Package featuretest builds feature requests from in-memory documents.
package featuretest

import (
	"github.com/efoerster/texlab/internal/feature"
	"github.com/efoerster/texlab/internal/workspace"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// URI returns the URI used for a test file name.
func URI(name string) string {
	return "file:///" + name
}

type file struct {
	name string
	text string
}

type Builder struct {
	files     []file
	main      string
	line      uint32
	character uint32
}

func New() *Builder {
	return &Builder{}
}

// File adds a document. The language follows the file extension.
func (b *Builder) File(name, text string) *Builder {
	b.files = append(b.files, file{name: name, text: text})
	return b
}

func (b *Builder) Main(name string) *Builder {
	b.main = name
	return b
}

func (b *Builder) Position(line, character uint32) *Builder {
	b.line = line
	b.character = character
	return b
}

func (b *Builder) Workspace() *workspace.Workspace {
	w := workspace.New()
	for _, f := range b.files {
		language, ok := workspace.LanguageFromURI(f.name)
		if !ok {
			language = workspace.LanguageLatex
		}
		w.Open(workspace.NewDocument(URI(f.name), f.text, language))
	}
	return w
}

// Request builds the request for the main file. It panics when the main
// file was not added.
func (b *Builder) Request() feature.Request {
	req, ok := feature.NewRequest(b.Workspace(), URI(b.main), protocol.Position{
		Line:      b.line,
		Character: b.character,
	})
	if !ok {
		panic("featuretest: main document " + b.main + " not found")
	}
	return req
}
