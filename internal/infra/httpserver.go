package infra

import (
	"context"
	"net/http"
	"time"
)

// Generation requests block for the simulated processing window, so the
// write timeout must stay comfortably above GENERATE_DELAY_MAX_MS.
const readHeaderTimeout = 5 * time.Second

// HTTPServer runs the API with the timeouts from Config and drains in-flight
// generations on shutdown.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer builds the server for the given handler.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{server: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}}
}

// Addr reports the listen address.
func (s *HTTPServer) Addr() string { return s.server.Addr }

// Start blocks serving requests until Shutdown is called or the listener
// fails.
func (s *HTTPServer) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for active requests up to
// the context deadline.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
