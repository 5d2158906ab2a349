// Package kafka publishes the engine's domain events.
package kafka

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// Topic names.
const (
	TopicDecisionApplied        = "ga.decision.applied"
	TopicNotificationDispatched = "ga.notification.dispatched"
)

// WriterInterface abstracts kafka.Writer so tests can capture messages.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes messages to kafka.  It is safe for concurrent use.
type Producer struct {
	writer WriterInterface
	logger logging.Logger
	closed atomic.Bool
	sent   atomic.Int64
	failed atomic.Int64
}

// NewProducer builds a Producer over the configured brokers.
func NewProducer(cfg config.KafkaConfig, logger logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.InvalidParam("at least one kafka broker is required")
	}

	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 100 * time.Millisecond
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: batchTimeout,
		WriteTimeout: writeTimeout,
		MaxAttempts:  maxRetries,
	}
	return &Producer{writer: writer, logger: logger.Named("kafka.producer")}, nil
}

// NewProducerWithWriter wires an explicit writer.  Used by tests.
func NewProducerWithWriter(writer WriterInterface, logger logging.Logger) *Producer {
	return &Producer{writer: writer, logger: logger}
}

// Publish writes one keyed message to topic.  The key drives partition
// assignment, so events for one case stay ordered.
func (p *Producer) Publish(ctx context.Context, topic, key string, value []byte) error {
	if p.closed.Load() {
		return errors.New(errors.ErrCodeInternal, "kafka producer is closed")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.failed.Add(1)
		return errors.Wrap(err, errors.ErrCodeExternalService, "publish to "+topic)
	}
	p.sent.Add(1)
	return nil
}

// Sent returns the number of successfully written messages.
func (p *Producer) Sent() int64 { return p.sent.Load() }

// Failed returns the number of failed writes.
func (p *Producer) Failed() int64 { return p.failed.Load() }

// Close flushes and closes the writer.  Further publishes fail fast.
func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "close kafka writer")
	}
	p.logger.Info("kafka producer closed",
		logging.Int("sent", int(p.sent.Load())),
		logging.Int("failed", int(p.failed.Load())))
	return nil
}
