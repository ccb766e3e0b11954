package stubserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"healthshop-client/internal/config"
)

const sessionTTL = 24 * time.Hour

// api bundles the handler dependencies shared across routes.
type api struct {
	store    *memStore
	sessions *sessionManager
	logger   *log.Logger
}

// Server is the in-memory HTTP backend used by the CLI and the tests.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	store      *memStore
}

func New(cfg config.Stub, logger *log.Logger) *Server {
	store := newMemStore()
	a := &api{
		store:    store,
		sessions: newSessionManager(sessionTTL),
		logger:   logger,
	}
	router := buildRouter(logger, a)
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		store:  store,
	}
}

// Handler exposes the router for httptest based tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Seed loads the built-in demo catalog, users and coupons.
func (s *Server) Seed() {
	seedStore(s.store)
}

// LoadCatalog replaces the built-in catalog with products from a JSON file.
func (s *Server) LoadCatalog(path string) error {
	return loadCatalog(s.store, path)
}

func (s *Server) ListenAndServe() error {
	s.logger.Printf("listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
