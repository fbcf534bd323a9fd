package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"mockapi/src/config"
	"mockapi/src/infra/kafka"
	"mockapi/src/infra/logger"
	"mockapi/src/infra/metrics"
	"mockapi/src/infra/postgres"
	"mockapi/src/infra/redis"
	"mockapi/src/pipeline"
	"mockapi/src/writer"
)

const (
	exitOK      = 0
	exitFatal   = 1
	exitPartial = 2
)

type sinks struct {
	records   []writer.RecordSink
	artifacts []writer.ArtifactSink
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return exitFatal
	}

	var (
		p          *pipeline.Pipeline
		log        *zap.Logger
		runMetrics *metrics.RunMetrics
	)

	app := fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(
			newLogger,
			newRunMetrics,
			newSinks,
			newPipeline,
		),
		fx.Populate(&p, &log, &runMetrics),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		return exitFatal
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			log.Warn("failed to stop cleanly", zap.Error(err))
		}
		_ = log.Sync()
	}()

	report, err := p.Run(context.Background())

	if cfg.MetricsTextfile != "" {
		if werr := runMetrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.Warn("failed to write metrics textfile", zap.String("path", cfg.MetricsTextfile), zap.Error(werr))
		}
	}

	if err != nil {
		var genErr *pipeline.GenerationError
		if errors.As(err, &genErr) {
			log.Error("generation aborted", zap.String("entity", string(genErr.Entity)), zap.Error(genErr.Err))
		} else {
			log.Error("run aborted", zap.Error(err))
		}
		return exitFatal
	}

	if report.Partial() {
		for _, f := range report.Failures {
			log.Warn("partial artifact set",
				zap.String("entity", string(f.Entity)),
				zap.String("format", f.Format),
				zap.String("stage", string(f.Stage)),
				zap.String("error", f.Error))
		}
		if cfg.Strict {
			return exitPartial
		}
	}
	return exitOK
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.AppEnv, cfg.LogLevel)
}

func newRunMetrics() *metrics.RunMetrics {
	return metrics.NewRunMetrics("mockapi")
}

// newSinks abre só os clientes configurados; cada um é fechado no OnStop.
func newSinks(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (sinks, error) {
	var out sinks

	if cfg.Postgres.Enabled() {
		pg := cfg.Postgres
		pool, err := postgres.NewPostgresClient(pg.Host, pg.Port, pg.Name, pg.User, pg.Password, pg.MaxConns)
		if err != nil {
			return sinks{}, fmt.Errorf("postgres sink: %w", err)
		}
		lc.Append(fx.StopHook(pool.Close))
		out.records = append(out.records, writer.NewPostgresSink(postgres.NewCollectionLoader(pool), pg.TablePrefix))
		log.Info("postgres sink enabled", zap.String("host", pg.Host), zap.String("db", pg.Name))
	}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewKafkaProducer(cfg.Kafka.Brokers)
		if err != nil {
			return sinks{}, fmt.Errorf("kafka sink: %w", err)
		}
		lc.Append(fx.StopHook(producer.Close))
		out.records = append(out.records, writer.NewKafkaSink(producer, cfg.Kafka.TopicPrefix, cfg.Kafka.BatchSize))
		log.Info("kafka sink enabled", zap.String("brokers", cfg.Kafka.Brokers))
	}

	if cfg.Redis.Enabled() {
		client := redis.NewRedisClient(cfg.Redis.Addrs, cfg.Redis.PoolSize, cfg.Redis.TTL)
		lc.Append(fx.Hook{
			OnStart: client.HealthCheck,
			OnStop:  func(context.Context) error { return client.Close() },
		})
		out.artifacts = append(out.artifacts, writer.NewRedisSink(client))
		log.Info("redis sink enabled", zap.String("addrs", cfg.Redis.Addrs))
	}

	return out, nil
}

func newPipeline(cfg config.Config, log *zap.Logger, m *metrics.RunMetrics, s sinks) (*pipeline.Pipeline, error) {
	return pipeline.New(cfg.Pipeline,
		pipeline.WithLogger(log),
		pipeline.WithMetrics(m),
		pipeline.WithRecordSinks(s.records...),
		pipeline.WithArtifactSinks(s.artifacts...),
	)
}
