package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
)

// Server wraps http.Server with signal handling and graceful shutdown.
// Request contexts derive from the Run context, so long-lived streams end
// when the server stops.
type Server struct {
	cfg    Config
	logger *slog.Logger

	mu  sync.Mutex
	srv *http.Server
}

// New returns a server for cfg. Zero fields fall back to DefaultConfig.
func New(cfg Config, log *slog.Logger) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{cfg: cfg, logger: log}
}

// Run listens on cfg.Addr and serves handler until ctx is done or the
// process receives SIGINT or SIGTERM.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, l, handler)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, l net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		_ = l.Close()
		return ErrAlreadyRunning
	}
	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelBase)
	s.srv = srv
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "http server started", slog.String("addr", l.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.WithoutCancel(ctx))
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = errors.Join(runErr, err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = errors.Join(ErrStart, err)
		}
	}

	s.logger.InfoContext(ctx, "http server stopped")
	return runErr
}

// Shutdown stops accepting connections and waits up to cfg.ShutdownTimeout
// for in-flight requests. Calling it before Run or twice is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
