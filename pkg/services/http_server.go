package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

type httpServer struct {
	srv             *http.Server
	ln              net.Listener
	shutdownTimeout time.Duration
}

type HTTPServerOption func(*httpServer)

func WithShutdownTimeout(d time.Duration) HTTPServerOption {
	return func(s *httpServer) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithListener serves on ln instead of listening on the configured address.
func WithListener(ln net.Listener) HTTPServerOption {
	return func(s *httpServer) { s.ln = ln }
}

// NewHTTPServer serves handler over HTTP/1.1 and cleartext HTTP/2.
func NewHTTPServer(addr string, handler http.Handler, opts ...HTTPServerOption) (*httpServer, error) {
	if handler == nil {
		return nil, errors.New("http handler is required")
	}

	s := &httpServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h2c.NewHandler(handler, &http2.Server{}),
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *httpServer) Name() string { return "http server" }

func (s *httpServer) Run(ctx context.Context) error {
	ln := s.ln
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.srv.Addr); err != nil {
			return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", ln.Addr().String())
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
