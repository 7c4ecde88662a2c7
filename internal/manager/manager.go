package manager

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/efoerster/texlab/internal/text"
	"github.com/efoerster/texlab/internal/workspace"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("texlab.manager")

var (
	// ErrNotOpen is returned for documents the client has not opened
	ErrNotOpen = fmt.Errorf("document not open")

	// ErrUnsupported is returned for URIs the loader cannot read
	ErrUnsupported = fmt.Errorf("unsupported uri")
)

// Loader reads the content of a document that is not open in the client.
type Loader func(uri string) (string, error)

// FileLoader reads file URIs from disk.
func FileLoader(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, uri)
	}
	content, err := os.ReadFile(u.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", uri, err)
	}
	return string(content), nil
}

// DocumentManager tracks the documents opened by the client and keeps the
// workspace in sync with them. Included documents that are not open are
// loaded through the loader.
type DocumentManager struct {
	mu   sync.Mutex
	ws   *workspace.Workspace
	open map[string]bool
	load Loader
}

// NewDocumentManager creates a manager for ws. A nil loader disables
// loading of included documents.
func NewDocumentManager(ws *workspace.Workspace, load Loader) *DocumentManager {
	return &DocumentManager{
		ws:   ws,
		open: make(map[string]bool),
		load: load,
	}
}

func (dm *DocumentManager) Workspace() *workspace.Workspace {
	return dm.ws
}

// SetLoader replaces the loader used for included documents.
func (dm *DocumentManager) SetLoader(load Loader) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.load = load
}

// Open parses content and adds it to the workspace. languageID is the LSP
// language identifier; unknown identifiers fall back to the extension.
func (dm *DocumentManager) Open(uri, languageID, content string) *workspace.Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := workspace.NewDocument(uri, content, detectLanguage(uri, languageID))
	dm.ws.Open(doc)
	dm.open[uri] = true
	dm.loadIncludes(doc)
	return doc
}

// GetDocument returns the current state of an open document.
func (dm *DocumentManager) GetDocument(uri string) (*workspace.Document, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if !dm.open[uri] {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, uri)
	}
	doc, ok := dm.ws.Get(uri)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, uri)
	}
	return doc, nil
}

// ApplyIncrementalEdit applies the content changes of a didChange
// notification in order and reparses the document.
func (dm *DocumentManager) ApplyIncrementalEdit(uri string, changes []any) (*workspace.Document, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	old, ok := dm.ws.Get(uri)
	if !ok || !dm.open[uri] {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, uri)
	}

	content := old.Text
	for _, raw := range changes {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEvent:
			content = text.ApplyChange(content, change)
		case protocol.TextDocumentContentChangeEventWhole:
			content = change.Text
		default:
			return nil, fmt.Errorf("unexpected change event type %T", raw)
		}
	}

	doc := workspace.NewDocument(uri, content, old.Language)
	dm.ws.Open(doc)
	dm.loadIncludes(doc)
	return doc, nil
}

// Release closes uri. Documents that are still included by another
// document are reloaded from disk.
func (dm *DocumentManager) Release(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	delete(dm.open, uri)
	dm.ws.Close(uri)
	for _, doc := range dm.ws.Documents() {
		dm.loadIncludes(doc)
	}
}

// CloseAll forgets every document.
func (dm *DocumentManager) CloseAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	for _, doc := range dm.ws.Documents() {
		dm.ws.Close(doc.URI)
	}
	dm.open = make(map[string]bool)
}

// loadIncludes reads the missing include targets of doc and, transitively,
// of the documents loaded that way.
func (dm *DocumentManager) loadIncludes(doc *workspace.Document) {
	if dm.load == nil {
		return
	}

	queue := []*workspace.Document{doc}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, candidates := range dm.ws.UnresolvedTargets(current) {
			for _, uri := range candidates {
				content, err := dm.load(uri)
				if err != nil {
					if !errors.Is(err, ErrUnsupported) {
						log.Debugf("%s", err)
					}
					continue
				}
				language, ok := workspace.LanguageFromURI(uri)
				if !ok {
					language = workspace.LanguageLatex
				}
				loaded := workspace.NewDocument(uri, content, language)
				dm.ws.Open(loaded)
				queue = append(queue, loaded)
				break
			}
		}
	}
}

func detectLanguage(uri, languageID string) workspace.Language {
	switch strings.ToLower(languageID) {
	case "latex", "tex":
		return workspace.LanguageLatex
	case "bibtex", "bib":
		return workspace.LanguageBibtex
	}
	if language, ok := workspace.LanguageFromURI(uri); ok {
		return language
	}
	return workspace.LanguageLatex
}
