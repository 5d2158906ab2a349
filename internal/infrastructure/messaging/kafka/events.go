package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/GenApp-Engine/internal/application/notification"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// Envelope is the common wrapper around every published event.
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// DecisionAppliedPayload describes a processed judicial decision.
type DecisionAppliedPayload struct {
	Reference string                `json:"reference"`
	State     gacase.State          `json:"state"`
	Decision  gacase.DecisionOption `json:"decision"`
	Cloaked   bool                  `json:"cloaked"`
}

// EventPublisher adapts the Producer to the notification event port.
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher wraps producer.
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// DecisionApplied publishes a decision event keyed by case reference.
func (p *EventPublisher) DecisionApplied(ctx context.Context, snapshot *gacase.CaseSnapshot) error {
	if snapshot == nil || snapshot.Decision == nil {
		return errors.InvalidParam("snapshot with a decision is required")
	}
	payload := DecisionAppliedPayload{
		Reference: snapshot.Reference,
		State:     snapshot.State,
		Decision:  snapshot.Decision.Option,
		Cloaked:   snapshot.IsCloaked(),
	}
	value, err := envelope("ga.decision.applied", payload)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, TopicDecisionApplied, snapshot.Reference, value)
}

// NotificationDispatched publishes one dispatched-notification event.
func (p *EventPublisher) NotificationDispatched(ctx context.Context, intent notification.NotificationIntent) error {
	value, err := envelope("ga.notification.dispatched", intent)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, TopicNotificationDispatched, intent.Reference, value)
}

func envelope(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "encode "+eventType+" payload")
	}
	value, err := json.Marshal(Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "encode "+eventType+" envelope")
	}
	return value, nil
}
