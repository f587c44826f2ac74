package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ShutdownTimeout bounds how long a graceful shutdown may take before
// in-flight requests are abandoned.
var ShutdownTimeout = 10 * time.Second

// Server wraps http.Server with the timeouts the service runs with.
type Server struct {
	inner *http.Server
}

// New constructs a server bound to the provided port. Write and idle
// timeouts are generous enough for the simulated network delay on the
// auth and feed endpoints.
func New(port int, handler http.Handler) *Server {
	return &Server{
		inner: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start blocks serving HTTP traffic until Shutdown is called or the
// listener fails.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight
// requests, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
