package notification

import (
	"context"

	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
)

// CaseStore loads and persists case snapshots.  Implemented by the postgres
// repository; tests substitute an in-memory fake.
type CaseStore interface {
	GetByReference(ctx context.Context, reference string) (*gacase.CaseSnapshot, error)
	Save(ctx context.Context, snapshot *gacase.CaseSnapshot) error
}

// Notifier sends one templated email per call.  Implemented by the notify
// gateway client.
type Notifier interface {
	SendEmail(ctx context.Context, recipient, templateID string, parameters map[string]string, reference string) error
}

// EventPublisher emits domain events for downstream consumers.  Implemented
// by the kafka producer.
type EventPublisher interface {
	DecisionApplied(ctx context.Context, snapshot *gacase.CaseSnapshot) error
	NotificationDispatched(ctx context.Context, intent NotificationIntent) error
}
