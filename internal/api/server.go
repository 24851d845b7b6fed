// Package api exposes the layout pipeline over HTTP.
//
// The server is a thin shell around [pipeline.Runner]: requests carry
// pipeline options, responses carry the assembled geometry and rendered
// artifacts. All layout semantics live in the pipeline; nothing here
// computes geometry.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/chronoline/chronoline/pkg/pipeline"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 60 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second

	// maxRequestBody bounds inline rosters. Even very large rosters are
	// tiny; anything beyond this is not a roster.
	maxRequestBody = 4 << 20
)

// Server serves the chart pipeline over HTTP.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	addr   string
}

// NewServer creates a server around an existing runner.
func NewServer(runner *pipeline.Runner, addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, addr: addr}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/radial", s.handleRadial)
		r.Post("/grid", s.handleGrid)
	})
	return r
}

// Start runs the server and blocks until the context is cancelled or the
// listener fails. Shutdown is graceful with a bounded drain period.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("api shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
