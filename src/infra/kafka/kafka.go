package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

type Message struct {
	Key   string
	Value []byte
}

type KafkaProducer struct {
	producer sarama.SyncProducer
	brokers  []string
}

func NewKafkaProducer(brokers string) (*KafkaProducer, error) {
	brokerList := strings.Split(brokers, ",")

	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0

	// Producer config - otimizado para envio em lote
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 50 * time.Millisecond
	config.Producer.Flush.Messages = 500
	config.Producer.Flush.Bytes = 512 * 1024
	config.Producer.MaxMessageBytes = 1024 * 1024

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		brokers:  brokerList,
	}, nil
}

// Publish sends the whole batch to topic and reports how many messages failed.
func (k *KafkaProducer) Publish(topic string, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	kafkaMessages := make([]*sarama.ProducerMessage, len(messages))
	for i, msg := range messages {
		kafkaMessages[i] = &sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(msg.Key),
			Value: sarama.ByteEncoder(msg.Value),
		}
	}

	if err := k.producer.SendMessages(kafkaMessages); err != nil {
		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) {
			return fmt.Errorf("batch send failed: %d/%d messages failed: %w", len(producerErrs), len(messages), producerErrs[0].Err)
		}
		return fmt.Errorf("batch send failed: %w", err)
	}

	return nil
}

func (k *KafkaProducer) Close() error {
	if err := k.producer.Close(); err != nil {
		return fmt.Errorf("failed to close producer: %w", err)
	}
	return nil
}
