package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"mockapi/src/config"
	"mockapi/src/infra/logger"
	"mockapi/src/infra/metrics"
	"mockapi/src/infra/redis"
	"mockapi/src/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),

		// Providers
		fx.Provide(
			newLogger,
			newServerMetrics,
			newArtifactStore,
			newServer,
		),

		// Invocations
		fx.Invoke(registerServerHooks),
	)

	app.Run()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.AppEnv, cfg.LogLevel)
}

func newServerMetrics() *metrics.ServerMetrics {
	return metrics.NewServerMetrics("mockapi")
}

// newArtifactStore lê do diretório de saída; com Redis configurado, usa cache read-through.
func newArtifactStore(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) server.ArtifactStore {
	dir := server.NewDirStore(cfg.Pipeline.OutputDir)
	if !cfg.Redis.Enabled() {
		return dir
	}

	client := redis.NewRedisClient(cfg.Redis.Addrs, cfg.Redis.PoolSize, cfg.Redis.TTL)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.HealthCheck(ctx); err != nil {
				log.Warn("redis unavailable, serving from disk until it recovers", zap.Error(err))
			}
			return nil
		},
		OnStop: func(context.Context) error { return client.Close() },
	})
	return server.NewCachedStore(client, dir, log)
}

func newServer(cfg config.Config, log *zap.Logger, store server.ArtifactStore, m *metrics.ServerMetrics) *server.Server {
	return server.NewServer(log, cfg.ServerPort, store, m)
}

// registerServerHooks registers lifecycle hooks for the HTTP server
func registerServerHooks(lc fx.Lifecycle, srv *server.Server, log *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("server forced to shutdown", zap.Error(err))
				return err
			}
			log.Info("server exited gracefully")
			return nil
		},
	})
}
