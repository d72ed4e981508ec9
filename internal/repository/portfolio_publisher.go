package repository

import (
	"context"

	"HedgeFolio/internal/domain/models"
	"HedgeFolio/internal/domain/repository"
	pkgkafka "HedgeFolio/pkg/kafka"
)

// KafkaInstructionPublisher hands optimized portfolios to the execution
// layer over Kafka, keyed by account so one account's instructions stay in
// order on a single partition.
type KafkaInstructionPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaInstructionPublisher creates a Kafka-backed instruction publisher.
func NewKafkaInstructionPublisher(producer *pkgkafka.Producer, topic string) repository.InstructionPublisher {
	return &KafkaInstructionPublisher{producer: producer, topic: topic}
}

func (p *KafkaInstructionPublisher) PublishPortfolio(ctx context.Context, account string, resp *models.PortfolioResponse) error {
	return p.producer.Publish(ctx, p.topic, []byte(account), resp)
}

func (p *KafkaInstructionPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NoopInstructionPublisher is used when Kafka hand-off is disabled; callers
// then act on the HTTP response alone.
type NoopInstructionPublisher struct{}

func (NoopInstructionPublisher) PublishPortfolio(context.Context, string, *models.PortfolioResponse) error {
	return nil
}

func (NoopInstructionPublisher) Close() error { return nil }
