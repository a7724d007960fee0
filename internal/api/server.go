package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
)

const shutdownTimeout = 10 * time.Second

// Routes mounts every endpoint behind the request-ID and rate-limit middleware.
func Routes(h *Handler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	limited := func(f http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, f)
	}
	mux.Handle("/calculate", limited(h.Calculate))
	mux.Handle("/compare", limited(h.Compare))
	mux.Handle("/sweep", limited(h.Sweep))
	mux.Handle("/scenarios", limited(h.Scenarios))
	mux.HandleFunc("/healthz", h.Health)
	return RequestIDMiddleware(mux)
}

// NewServer wires the engine, cache and rate limiter described by cfg. The returned cleanup
// stops the limiter and closes the cache connection.
func NewServer(cfg config.ServerConfig, engine *calculation.CalculationEngine, logger calculation.Logger) (*http.Server, func()) {
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	var cache CacheRepository
	var closeCache func() error
	if cfg.RedisAddr != "" {
		rc := NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		cache, closeCache = rc, rc.Close
		logger.Infof("using redis cache at %s (ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
	} else {
		mc := NewMemoryCache(cfg.CacheTTL)
		cache, closeCache = mc, func() error { mc.Stop(); return nil }
		logger.Infof("using in-memory cache (ttl %s)", cfg.CacheTTL)
	}

	handler := NewHandler(engine, cache, logger)
	handler.Locale = output.ReportLocale{Tag: cfg.Locale, Symbol: cfg.CurrencySymbol}
	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      Routes(handler, limiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	cleanup := func() {
		limiter.Stop()
		if closeCache != nil {
			if err := closeCache(); err != nil {
				logger.Warnf("closing cache: %v", err)
			}
		}
	}
	return server, cleanup
}

// Serve runs server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, server *http.Server, logger calculation.Logger) error {
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Infof("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Infof("server exited")
	return nil
}
