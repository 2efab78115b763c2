package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nrt-dosing/config"
	httpLayer "nrt-dosing/http"
	"nrt-dosing/repository"
	"nrt-dosing/service"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dosing HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// newCache builds the configured cache. The returned close func is never nil.
func newCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (repository.CacheRepository, func() error, error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		cache := repository.NewRedisCache(cfg.RedisAddr, cfg.KeyPrefix, cfg.TTL, logger)
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, nil, err
		}
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
		return cache, cache.Close, nil
	default:
		return repository.NewMemoryCache(), func() error { return nil }, nil
	}
}

func (a *app) serve(ctx context.Context) error {
	cache, closeCache, err := newCache(ctx, a.cfg.Cache, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer func() {
		if err := closeCache(); err != nil {
			a.logger.Warn("error closing cache", zap.Error(err))
		}
	}()

	dosingService := service.NewDosingService(cache, a.logger)

	var limiter *httpLayer.RateLimiter
	if a.cfg.RateLimit.Capacity > 0 {
		limiter = httpLayer.NewRateLimiter(a.cfg.RateLimit.Capacity, a.cfg.RateLimit.Window)
		defer limiter.Stop()
	}

	server := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(dosingService, limiter, a.logger),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("server exited")
	return nil
}
