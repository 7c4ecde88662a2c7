package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/efoerster/texlab/internal/completion"
	"github.com/efoerster/texlab/internal/cursor"
	"github.com/efoerster/texlab/internal/feature"
	"github.com/efoerster/texlab/internal/metadata"
	"github.com/efoerster/texlab/internal/rename"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	s.manager.Open(params.TextDocument.URI, params.TextDocument.LanguageID, params.TextDocument.Text)
	openDocuments.Set(float64(len(s.Workspace().Documents())))
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	_, err := s.manager.ApplyIncrementalEdit(params.TextDocument.URI, params.ContentChanges)
	openDocuments.Set(float64(len(s.Workspace().Documents())))
	return err
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	s.manager.Release(params.TextDocument.URI)
	openDocuments.Set(float64(len(s.Workspace().Documents())))
	return nil
}

// contextAt resolves the cursor context of a position request.
func (s *Server) contextAt(uri string, position protocol.Position) (*cursor.Context, bool) {
	req, ok := feature.NewRequest(s.Workspace(), uri, position)
	if !ok {
		return nil, false
	}
	return cursor.NewContext(req)
}

func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	result := resultEmpty
	defer track("textDocument/completion", time.Now(), &result)

	ctx, cancel := s.requestContext()
	defer cancel()

	req, ok := feature.NewRequest(s.Workspace(), params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	cfg, sources, _ := s.settings()
	items := completion.Complete(ctx, sources, req)
	if ctx.Err() != nil {
		result = resultCanceled
	}

	incomplete := false
	if cfg.CompletionLimit > 0 && len(items) > cfg.CompletionLimit {
		items = items[:cfg.CompletionLimit]
		incomplete = true
	}
	completionItems.Observe(float64(len(items)))

	doc := req.MainDocument()
	list := &protocol.CompletionList{
		IsIncomplete: incomplete,
		Items:        make([]protocol.CompletionItem, 0, len(items)),
	}
	for _, item := range items {
		list.Items = append(list.Items, completion.ToProtocol(doc, item))
	}
	if len(items) > 0 && result != resultCanceled {
		result = resultOK
	}
	return list, nil
}

// completionItemResolve attaches CTAN metadata to package and class items.
func (s *Server) completionItemResolve(
	context *glsp.Context,
	params *protocol.CompletionItem,
) (*protocol.CompletionItem, error) {
	result := resultEmpty
	defer track("completionItem/resolve", time.Now(), &result)

	_, _, provider := s.settings()
	if provider == nil || params.Data == nil {
		return params, nil
	}

	raw, err := json.Marshal(params.Data)
	if err != nil {
		return params, nil
	}
	var data completion.ResolveData
	if err := json.Unmarshal(raw, &data); err != nil || data.Component == "" {
		return params, nil
	}

	ctx, cancel := s.requestContext()
	defer cancel()

	meta, err := provider.Get(ctx, data.Component)
	if err != nil {
		if !errors.Is(err, metadata.ErrNotFound) {
			result = resultError
			log.Warningf("metadata of %s: %s", data.Component, err)
		}
		return params, nil
	}

	params.Detail = &meta.Caption
	params.Documentation = protocol.MarkupContent{
		Kind:  protocol.MarkupKindMarkdown,
		Value: meta.Documentation,
	}
	result = resultOK
	return params, nil
}

func (s *Server) textDocumentPrepareRename(
	context *glsp.Context,
	params *protocol.PrepareRenameParams,
) (any, error) {
	result := resultEmpty
	defer track("textDocument/prepareRename", time.Now(), &result)

	c, ok := s.contextAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	r, ok := rename.PrepareCommandRename(c)
	if !ok {
		return nil, nil
	}
	result = resultOK
	return r, nil
}

func (s *Server) textDocumentRename(
	context *glsp.Context,
	params *protocol.RenameParams,
) (*protocol.WorkspaceEdit, error) {
	result := resultEmpty
	defer track("textDocument/rename", time.Now(), &result)

	ctx, cancel := s.requestContext()
	defer cancel()

	c, ok := s.contextAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	edit, ok := rename.RenameCommand(ctx, c, params.NewName)
	if !ok {
		if ctx.Err() != nil {
			result = resultCanceled
		}
		return nil, nil
	}

	total := 0
	for _, edits := range edit.Changes {
		total += len(edits)
	}
	renameEdits.Observe(float64(total))
	result = resultOK
	return edit, nil
}
