package workspace

import "sync"

// Workspace is the set of known documents. Documents keep the order in
// which they were first opened.
type Workspace struct {
	mu    sync.RWMutex
	docs  map[string]*Document
	order []string
}

func New() *Workspace {
	return &Workspace{docs: make(map[string]*Document)}
}

// Open adds doc or replaces the document with the same URI.
func (w *Workspace) Open(doc *Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.docs[doc.URI]; !ok {
		w.order = append(w.order, doc.URI)
	}
	w.docs[doc.URI] = doc
}

func (w *Workspace) Get(uri string) (*Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, ok := w.docs[uri]
	return doc, ok
}

func (w *Workspace) Close(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.docs[uri]; !ok {
		return
	}
	delete(w.docs, uri)
	for i, u := range w.order {
		if u == uri {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Documents returns a snapshot of all documents.
func (w *Workspace) Documents() []*Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Document, 0, len(w.order))
	for _, uri := range w.order {
		result = append(result, w.docs[uri])
	}
	return result
}

// Subset is the main document followed by the documents related to it.
type Subset struct {
	Documents []*Document
}

func (s Subset) Main() (*Document, bool) {
	if len(s.Documents) == 0 {
		return nil, false
	}
	return s.Documents[0], true
}

// Subset collects every document reachable from uri through include links
// in either direction, breadth first.
func (w *Workspace) Subset(uri string) (Subset, bool) {
	docs := w.Documents()
	byURI := make(map[string]*Document, len(docs))
	for _, doc := range docs {
		byURI[doc.URI] = doc
	}
	main, ok := byURI[uri]
	if !ok {
		return Subset{}, false
	}

	edges := make(map[string][]string)
	for _, doc := range docs {
		data, ok := doc.Latex()
		if !ok {
			continue
		}
		for _, link := range data.Links {
			for _, target := range link.Targets {
				if _, ok := byURI[target]; ok && target != doc.URI {
					edges[doc.URI] = append(edges[doc.URI], target)
					edges[target] = append(edges[target], doc.URI)
					break
				}
			}
		}
	}

	visited := map[string]bool{main.URI: true}
	queue := []*Document{main}
	var result []*Document
	for len(queue) > 0 {
		doc := queue[0]
		queue = queue[1:]
		result = append(result, doc)
		for _, next := range edges[doc.URI] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, byURI[next])
			}
		}
	}
	return Subset{Documents: result}, true
}

// UnresolvedTargets returns link targets of doc that are not part of the
// workspace, one candidate list per link.
func (w *Workspace) UnresolvedTargets(doc *Document) [][]string {
	data, ok := doc.Latex()
	if !ok {
		return nil
	}
	var result [][]string
	for _, link := range data.Links {
		found := false
		for _, target := range link.Targets {
			if _, ok := w.Get(target); ok {
				found = true
				break
			}
		}
		if !found {
			result = append(result, link.Targets)
		}
	}
	return result
}
