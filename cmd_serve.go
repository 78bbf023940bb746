package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mortgage-calc/config"
	httpLayer "mortgage-calc/http"
	"mortgage-calc/repository"
	"mortgage-calc/service"
)

const redisPingTimeout = 3 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		log, err := newLogger(cfg.Logging)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, log)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, closeCache := newCache(ctx, cfg.Cache, log)
	defer closeCache()

	loanService := service.NewLoanService(
		repository.NewCalculationRepositoryMemory(cfg.History.MaxRecords),
		cache,
		log,
		serviceOptions(cfg),
	)
	termService := service.NewTermRecommendationService(loanService, log)

	var limiter *httpLayer.RateLimiter
	if cfg.RateLimit.Capacity > 0 {
		limiter = httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
		defer limiter.Stop()
	}

	router := httpLayer.NewRouter(
		httpLayer.NewLoanHandler(loanService, log),
		httpLayer.NewTermRecommendationHandler(termService, log),
		limiter,
		httpLayer.RouterConfig{
			CORSOrigins:    cfg.Server.CORSOrigins,
			RequestTimeout: cfg.Server.WriteTimeout,
		},
		log,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", server.Addr).Info("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped with error")
		return err
	}
	log.Info("server exited")
	return nil
}

// newCache uses Redis when an address is configured and reachable, and
// falls back to an in-process cache otherwise.
func newCache(ctx context.Context, c config.CacheConfig, log *logrus.Logger) (repository.CacheRepository, func()) {
	if c.RedisAddr == "" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(c.RedisAddr, log)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := redisCache.Ping(pingCtx); err != nil {
		log.WithError(err).WithField("addr", c.RedisAddr).Warn("redis unavailable, using memory cache")
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	log.WithField("addr", c.RedisAddr).Info("using redis cache")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.WithError(err).Warn("failed to close redis client")
		}
	}
}
