package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/config"
)

const (
	TopicAccountEvents   = "account.events"
	TopicPortfolioEvents = "portfolio.events"
)

type KafkaProducerClient struct {
	AccountEventsWriter   *kafka.Writer
	PortfolioEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	accountWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicAccountEvents,
		Balancer: &kafka.LeastBytes{},
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		AccountEventsWriter:   accountWriter,
		PortfolioEventsWriter: portfolioWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishAccountEvent(ctx context.Context, e service.Event) error {
	return c.publish(ctx, c.AccountEventsWriter, e)
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, e service.Event) error {
	return c.publish(ctx, c.PortfolioEventsWriter, e)
}

func (c *KafkaProducerClient) publish(ctx context.Context, w *kafka.Writer, e service.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.AccountID.String()),
		Value: payload,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event failed: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AccountEventsWriter != nil {
		c.AccountEventsWriter.Close()
	}
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
}
