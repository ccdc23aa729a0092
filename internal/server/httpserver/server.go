package httpserver

import (
	"context"
	"net/http"
)

// Server wraps the stdlib HTTP server so the application layer can start and
// stop it without knowing net/http details.
type Server struct {
	httpServer *http.Server
}

// New creates a new HTTP server bound to addr.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
