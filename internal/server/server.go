package server

import (
	"context"
	"sync"
	"time"

	"github.com/efoerster/texlab/internal/completion"
	"github.com/efoerster/texlab/internal/componentdb"
	"github.com/efoerster/texlab/internal/config"
	"github.com/efoerster/texlab/internal/manager"
	"github.com/efoerster/texlab/internal/metadata"
	"github.com/efoerster/texlab/internal/workspace"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "texlab"

var Version = "dev"

var log = commonlog.GetLogger("texlab.server")

type Server struct {
	handler *protocol.Handler
	manager *manager.DocumentManager
	load    manager.Loader

	mu       sync.RWMutex
	config   config.Config
	sources  *completion.Sources
	metadata *metadata.Provider
	store    *componentdb.Store
}

// New creates a server whose included documents are read through load.
func New(load manager.Loader) *Server {
	ls := &Server{
		manager: manager.NewDocumentManager(workspace.New(), load),
		load:    load,
		config:  config.Default(),
		sources: completion.DefaultSources(),
	}
	ls.handler = &protocol.Handler{
		Initialize:                ls.initialize,
		Initialized:               ls.initialized,
		Shutdown:                  ls.shutdown,
		SetTrace:                  ls.setTrace,
		TextDocumentDidOpen:       ls.textDocumentDidOpen,
		TextDocumentDidChange:     ls.textDocumentDidChange,
		TextDocumentDidClose:      ls.textDocumentDidClose,
		TextDocumentCompletion:    ls.textDocumentCompletion,
		CompletionItemResolve:     ls.completionItemResolve,
		TextDocumentPrepareRename: ls.textDocumentPrepareRename,
		TextDocumentRename:        ls.textDocumentRename,
		WorkspaceExecuteCommand:   ls.workspaceExecuteCommand,
	}
	return ls
}

// NewServer creates the language server reading included files from disk.
func NewServer() *server.Server {
	ls := New(manager.FileLoader)
	return server.NewServer(ls.handler, lsName, false)
}

func (s *Server) Handler() *protocol.Handler {
	return s.handler
}

func (s *Server) Workspace() *workspace.Workspace {
	return s.manager.Workspace()
}

func (s *Server) settings() (config.Config, *completion.Sources, *metadata.Provider) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.sources, s.metadata
}

// configure applies cfg. A component database that cannot be read is
// logged and the built-in database is used instead.
func (s *Server) configure(cfg config.Config) {
	sources := completion.DefaultSources()

	var store *componentdb.Store
	if cfg.ComponentDatabase != "" {
		var err error
		store, err = componentdb.OpenStore(cfg.ComponentDatabase)
		if err != nil {
			log.Errorf("component database %s: %s", cfg.ComponentDatabase, err)
		} else if db, err := store.Load(); err != nil {
			log.Errorf("component database %s: %s", cfg.ComponentDatabase, err)
		} else {
			sources.Components = sources.Components.Merge(db)
			log.Infof("loaded %d components from %s", len(db.Components), cfg.ComponentDatabase)
		}
	}

	var provider *metadata.Provider
	if cfg.FetchMetadata {
		provider = metadata.NewProvider(cfg.CtanURL)
	}

	if cfg.LoadIncludes {
		s.manager.SetLoader(s.load)
	} else {
		s.manager.SetLoader(nil)
	}

	s.mu.Lock()
	old := s.store
	s.config = cfg
	s.sources = sources
	s.metadata = provider
	s.store = store
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// requestContext bounds a request by the configured timeout.
func (s *Server) requestContext() (context.Context, context.CancelFunc) {
	cfg, _, _ := s.settings()
	if timeout := cfg.Timeout(); timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// track records the outcome of a request once it returns.
func track(method string, start time.Time, result *string) {
	requestsTotal.WithLabelValues(method, *result).Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
