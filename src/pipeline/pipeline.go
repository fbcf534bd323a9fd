package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mockapi/src/domain"
	"mockapi/src/encoders"
	"mockapi/src/generators"
	"mockapi/src/infra/metrics"
	"mockapi/src/writer"
)

type artifactWriter interface {
	Write(name string, content []byte) error
}

// Pipeline generates every registered collection in dependency order and
// fans each one out to the configured encoders, writer and sinks.
type Pipeline struct {
	cfg           Config
	registry      *generators.Registry
	encoders      []encoders.Encoder
	writer        artifactWriter
	artifactSinks []writer.ArtifactSink
	recordSinks   []writer.RecordSink
	metrics       *metrics.RunMetrics
	logger        *zap.Logger
	now           func() time.Time
}

type Option func(*Pipeline)

func WithRegistry(registry *generators.Registry) Option {
	return func(p *Pipeline) { p.registry = registry }
}

// WithEncoders replaces the encoder set derived from Config.Formats.
func WithEncoders(encs ...encoders.Encoder) Option {
	return func(p *Pipeline) { p.encoders = encs }
}

func WithWriter(w artifactWriter) Option {
	return func(p *Pipeline) { p.writer = w }
}

func WithArtifactSinks(sinks ...writer.ArtifactSink) Option {
	return func(p *Pipeline) { p.artifactSinks = append(p.artifactSinks, sinks...) }
}

func WithRecordSinks(sinks ...writer.RecordSink) Option {
	return func(p *Pipeline) { p.recordSinks = append(p.recordSinks, sinks...) }
}

func WithMetrics(m *metrics.RunMetrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

func New(cfg Config, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg:    cfg.clone(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.registry == nil {
		p.registry = generators.DefaultRegistry()
	}
	if p.writer == nil {
		p.writer = writer.NewFileWriter(p.cfg.OutputDir)
	}
	if p.encoders == nil {
		set, err := encoders.NewSet(p.cfg.Formats, p.cfg.CSVFlatten)
		if err != nil {
			return nil, fmt.Errorf("pipeline.New - %w", err)
		}
		p.encoders = set
	}
	if p.cfg.Workers <= 0 {
		p.cfg.Workers = 1
	}
	return p, nil
}

// Run executes one full generation. A non-nil error means the run aborted;
// the returned report is still filled with whatever was produced before.
// Per-artifact problems never abort a run, they end up in Report.Failures.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	plan, err := p.registry.Plan()
	if err != nil {
		return nil, fmt.Errorf("Pipeline.Run - %w", err)
	}
	if err := p.cfg.Validate(plan); err != nil {
		return nil, fmt.Errorf("Pipeline.Run - %w", err)
	}

	src := generators.NewSource(p.cfg.Seed)
	report := &Report{
		RunID:     uuid.NewString(),
		Seed:      src.Seed(),
		StartedAt: p.now().UTC(),
		Counts:    make(map[domain.EntityKey]int, len(plan)),
		Formats:   p.formats(),
		Artifacts: []ArtifactSummary{},
		Failures:  []Failure{},
	}
	log := p.logger.With(zap.String("runId", report.RunID))
	log.Info("starting generation run",
		zap.Int64("seed", report.Seed),
		zap.Any("counts", p.cfg.Counts),
		zap.Int("workers", p.cfg.Workers))

	collections, err := p.generateAll(ctx, log, src, plan, report)
	if err != nil {
		return report, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for _, key := range plan {
		records := collections[key]
		for _, sink := range p.recordSinks {
			g.Go(func() error {
				p.loadRecords(gctx, log, sink, key, records, report)
				return nil
			})
		}
		for _, enc := range p.encoders {
			g.Go(func() error {
				p.emit(gctx, log, enc, key, records, report)
				return nil
			})
		}
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("Pipeline.Run - %w", err)
	}

	p.publish(ctx, log, encoders.Artifact{Name: encoders.SchemaFile, Format: encoders.GraphQL, Content: []byte(GraphQLSchema)}, report)

	report.sortBy(plan, report.Formats)
	report.FinishedAt = p.now().UTC()
	p.writeManifest(log, report)

	log.Info("generation run finished",
		zap.Int("artifacts", len(report.Artifacts)),
		zap.Int("failures", len(report.Failures)),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))
	return report, nil
}

func (p *Pipeline) formats() []encoders.Format {
	formats := make([]encoders.Format, len(p.encoders))
	for i, enc := range p.encoders {
		formats[i] = enc.Format()
	}
	return formats
}

func (p *Pipeline) generateAll(ctx context.Context, log *zap.Logger, src *generators.Source, plan []domain.EntityKey, report *Report) (map[domain.EntityKey][]domain.Record, error) {
	parents := make(generators.Parents, len(plan))

	for _, key := range plan {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Pipeline.Run - %w", err)
		}

		gen, ok := p.registry.Get(key)
		if !ok {
			return nil, &GenerationError{Entity: key, Err: domain.ErrUnknownEntity}
		}

		started := time.Now()
		records, err := gen.Generate(src, p.cfg.Count(key), parents)
		if err != nil {
			log.Error("generation failed", zap.String("entity", string(key)), zap.Error(err))
			return nil, &GenerationError{Entity: key, Err: err}
		}

		parents[key] = records
		report.Counts[key] = len(records)
		if p.metrics != nil {
			p.metrics.RecordsGenerated.WithLabelValues(string(key)).Add(float64(len(records)))
		}
		log.Info("entity generated",
			zap.String("entity", string(key)),
			zap.Int("count", len(records)),
			zap.Duration("duration", time.Since(started)))
	}
	return parents, nil
}

func (p *Pipeline) loadRecords(ctx context.Context, log *zap.Logger, sink writer.RecordSink, key domain.EntityKey, records []domain.Record, report *Report) {
	if err := sink.LoadRecords(ctx, key, records); err != nil {
		p.fail(log, report, Failure{Entity: key, Sink: sink.Name(), Stage: StageSink, Err: err})
		return
	}
	log.Debug("collection loaded", zap.String("entity", string(key)), zap.String("sink", sink.Name()))
}

// emit handles a single (entity, format) pair. Every failure stays inside it.
func (p *Pipeline) emit(ctx context.Context, log *zap.Logger, enc encoders.Encoder, key domain.EntityKey, records []domain.Record, report *Report) {
	started := time.Now()
	artifact, err := encoders.Encode(enc, key, records)
	if p.metrics != nil {
		p.metrics.EncodeDuration.WithLabelValues(string(enc.Format())).Observe(time.Since(started).Seconds())
	}
	if err != nil {
		p.fail(log, report, Failure{Entity: key, Format: string(enc.Format()), Stage: StageEncode, Err: err})
		return
	}
	p.publish(ctx, log, artifact, report)
}

// publish writes the artifact and then offers it to every artifact sink.
func (p *Pipeline) publish(ctx context.Context, log *zap.Logger, artifact encoders.Artifact, report *Report) {
	format := string(artifact.Format)
	if err := p.writer.Write(artifact.Name, artifact.Content); err != nil {
		p.fail(log, report, Failure{Entity: artifact.Entity, Format: format, Stage: StageWrite, Err: err})
		return
	}

	report.addArtifact(ArtifactSummary{
		Name:        artifact.Name,
		Entity:      artifact.Entity,
		Format:      format,
		Bytes:       len(artifact.Content),
		ContentType: artifact.ContentType(),
	})
	if p.metrics != nil {
		p.metrics.ArtifactsWritten.WithLabelValues(format).Inc()
		p.metrics.ArtifactBytes.WithLabelValues(string(artifact.Entity), format).Set(float64(len(artifact.Content)))
	}
	log.Debug("artifact written", zap.String("artifact", artifact.Name), zap.Int("bytes", len(artifact.Content)))

	for _, sink := range p.artifactSinks {
		if err := sink.PutArtifact(ctx, artifact); err != nil {
			p.fail(log, report, Failure{Entity: artifact.Entity, Format: format, Sink: sink.Name(), Stage: StageSink, Err: err})
		}
	}
}

func (p *Pipeline) fail(log *zap.Logger, report *Report, f Failure) {
	report.addFailure(f)
	if p.metrics != nil {
		p.metrics.ArtifactFailures.WithLabelValues(f.Format, string(f.Stage)).Inc()
	}
	log.Error("artifact failed",
		zap.String("entity", string(f.Entity)),
		zap.String("format", f.Format),
		zap.String("sink", f.Sink),
		zap.String("stage", string(f.Stage)),
		zap.Error(f.Err))
}

// writeManifest is the last write of a run. Its own failure is reported but
// cannot be listed inside the file.
func (p *Pipeline) writeManifest(log *zap.Logger, report *Report) {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		p.fail(log, report, Failure{Format: string(encoders.JSON), Stage: StageEncode, Err: fmt.Errorf("manifest: %w", err)})
		return
	}

	if err := p.writer.Write(encoders.ManifestFile, content); err != nil {
		p.fail(log, report, Failure{Format: string(encoders.JSON), Stage: StageWrite, Err: fmt.Errorf("manifest: %w", err)})
		return
	}
	log.Debug("artifact written", zap.String("artifact", encoders.ManifestFile), zap.Int("bytes", len(content)))
}
