package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"mockapi/src/domain"
	"mockapi/src/encoders"
	"mockapi/src/infra/kafka"
)

// ArtifactSink receives every artifact after it reached the output directory.
type ArtifactSink interface {
	Name() string
	PutArtifact(ctx context.Context, artifact encoders.Artifact) error
}

// RecordSink receives every generated collection before encoding starts.
type RecordSink interface {
	Name() string
	LoadRecords(ctx context.Context, key domain.EntityKey, records []domain.Record) error
}

type artifactCache interface {
	SetArtifact(ctx context.Context, name string, contentType string, content []byte) error
}

// RedisSink mirrors artifacts into Redis so the server can answer without disk reads.
type RedisSink struct {
	cache artifactCache
}

func NewRedisSink(cache artifactCache) *RedisSink {
	return &RedisSink{cache: cache}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) PutArtifact(ctx context.Context, artifact encoders.Artifact) error {
	if err := s.cache.SetArtifact(ctx, artifact.Name, artifact.ContentType(), artifact.Content); err != nil {
		return fmt.Errorf("RedisSink.PutArtifact - %s: %w", artifact.Name, err)
	}
	return nil
}

type collectionLoader interface {
	ReplaceCollection(ctx context.Context, table string, rows [][]any) error
}

// PostgresSink loads each collection into mock_<entity>(id, document jsonb).
type PostgresSink struct {
	loader      collectionLoader
	tablePrefix string
}

func NewPostgresSink(loader collectionLoader, tablePrefix string) *PostgresSink {
	return &PostgresSink{loader: loader, tablePrefix: tablePrefix}
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) TableName(key domain.EntityKey) string {
	return s.tablePrefix + string(key)
}

func (s *PostgresSink) LoadRecords(ctx context.Context, key domain.EntityKey, records []domain.Record) error {
	rows := make([][]any, len(records))
	for i, record := range records {
		document, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("PostgresSink.LoadRecords - marshal %s #%d: %w", key, record.RecordID(), err)
		}
		rows[i] = []any{record.RecordID(), json.RawMessage(document)}
	}

	if err := s.loader.ReplaceCollection(ctx, s.TableName(key), rows); err != nil {
		return fmt.Errorf("PostgresSink.LoadRecords - %s: %w", key, err)
	}
	return nil
}

type publisher interface {
	Publish(topic string, messages []kafka.Message) error
}

// KafkaSink streams one message per record to <prefix>.<entity>, keyed by id.
type KafkaSink struct {
	publisher   publisher
	topicPrefix string
	batchSize   int
}

func NewKafkaSink(publisher publisher, topicPrefix string, batchSize int) *KafkaSink {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &KafkaSink{publisher: publisher, topicPrefix: topicPrefix, batchSize: batchSize}
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Topic(key domain.EntityKey) string {
	return s.topicPrefix + "." + string(key)
}

func (s *KafkaSink) LoadRecords(ctx context.Context, key domain.EntityKey, records []domain.Record) error {
	topic := s.Topic(key)
	batch := make([]kafka.Message, 0, s.batchSize)

	flush := func() error {
		if err := s.publisher.Publish(topic, batch); err != nil {
			return fmt.Errorf("KafkaSink.LoadRecords - %s: %w", topic, err)
		}
		batch = batch[:0]
		return nil
	}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("KafkaSink.LoadRecords - marshal %s #%d: %w", key, record.RecordID(), err)
		}
		batch = append(batch, kafka.Message{Key: strconv.Itoa(record.RecordID()), Value: value})
		if len(batch) >= s.batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if len(batch) > 0 {
		return flush()
	}
	return nil
}
