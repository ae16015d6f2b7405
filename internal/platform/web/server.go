package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *Service, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := &handlers{svc: s, logger: logger}
	r.Get("/healthz", h.health)
	r.Post("/games", h.create)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Delete("/", h.remove)
		r.Post("/commands/{command}", h.command)
	})
	return r
}

// requestLogger logs one line per request with its status and duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Config holds the HTTP server settings.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// IdleTimeout expires games nobody has touched for this long; 0 keeps
	// them until deleted.
	IdleTimeout time.Duration

	// MaxGames caps live games; 0 uses DefaultMaxGames.
	MaxGames int
}

// DefaultConfig listens on :8080 and expires games after 30 idle minutes.
func DefaultConfig() Config {
	return Config{
		Address:     ":8080",
		IdleTimeout: 30 * time.Minute,
		MaxGames:    DefaultMaxGames,
	}
}

// ListenAndServe serves svc until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, cfg Config, svc *Service, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("web")
	if cfg.MaxGames > 0 {
		svc.SetMaxGames(cfg.MaxGames)
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewServer(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	if cfg.IdleTimeout > 0 {
		go expireLoop(ctx, svc, cfg.IdleTimeout, logger)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "address", cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// expireLoop drops idle games every minute until ctx ends.
func expireLoop(ctx context.Context, svc *Service, idle time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(min(idle, time.Minute))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := svc.Expire(idle); n > 0 {
				logger.Info("expired idle games", "count", n, "live", svc.Len())
			}
		}
	}
}
