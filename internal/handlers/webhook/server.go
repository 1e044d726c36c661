// Package webhook exposes the detection service over HTTP: the Helius
// webhook receiver plus health, test, debug and metrics endpoints.
package webhook

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/etiwatch/internal/detection"
	"github.com/gabapcia/etiwatch/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrServerAlreadyStarted = errors.New("server already started")

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second

	// maxBodySize caps webhook and debug payloads.
	maxBodySize = 10 << 20
)

// Server serves the HTTP surface of the detector.
type Server struct {
	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener

	addr     string
	detector detection.Service
	gatherer prometheus.Gatherer
	now      func() time.Time
}

// Start listens on the configured address and serves in the background.
// Serve errors after a successful listen are logged.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return ErrServerAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "http server stopped unexpectedly", "error", err)
		}
	}()

	s.httpServer = srv
	s.listener = ln

	logger.Info(ctx, "http server listening", "http.addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Close gracefully shuts the server down, waiting for in-flight requests
// until ctx is done. Closing a server that is not running is a no-op.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}

	err := s.httpServer.Shutdown(ctx)
	s.httpServer = nil
	s.listener = nil
	return err
}

type config struct {
	gatherer prometheus.Gatherer
	now      func() time.Time
}

type Option func(*config)

// New builds a Server for addr ("host:port", ":5000") routing batches to
// detector.
func New(addr string, detector detection.Service, opts ...Option) *Server {
	cfg := config{
		gatherer: prometheus.DefaultGatherer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		addr:     addr,
		detector: detector,
		gatherer: cfg.gatherer,
		now:      cfg.now,
	}
}

// WithGatherer sets the registry exposed on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *config) {
		c.gatherer = g
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
