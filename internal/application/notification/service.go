package notification

import (
	"context"
	"time"

	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// Service orchestrates the effects around a judicial decision: it loads the
// case, resolves the next lifecycle state, plans the notifications, sends
// them, persists the updated snapshot, and publishes domain events.  All the
// branching lives in the pure planner; the service only sequences I/O.
type Service struct {
	store     CaseStore
	notifier  Notifier
	publisher EventPublisher
	planner   *Planner
	metrics   *prometheus.Metrics
	logger    logging.Logger
}

// NewService wires a Service.  metrics may be nil for offline tooling.
func NewService(store CaseStore, notifier Notifier, publisher EventPublisher, planner *Planner, metrics *prometheus.Metrics, logger logging.Logger) *Service {
	return &Service{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		planner:   planner,
		metrics:   metrics,
		logger:    logger.Named("notification.service"),
	}
}

// Result summarises one processed decision.
type Result struct {
	Reference     string                      `json:"reference"`
	PreviousState gacase.State                `json:"previousState"`
	NextState     gacase.State                `json:"nextState"`
	Intents       []NotificationIntent        `json:"intents"`
	Snapshot      *gacase.CaseSnapshot        `json:"-"`
	DispatchedAt  time.Time                   `json:"dispatchedAt"`
}

// ApplyDecision records decision on the referenced case and carries out the
// resulting state transition and notifications.
//
// Notification dispatch is best-effort per intent: a failed send is logged
// and counted but does not abort the remaining intents or the persistence of
// the updated snapshot.  Re-running the same decision regenerates the same
// intents, so delivery dedup belongs to the caller's workflow layer.
func (s *Service) ApplyDecision(ctx context.Context, reference string, decision *gacase.JudicialDecision) (*Result, error) {
	if decision == nil {
		return nil, errors.New(errors.ErrCodeDecisionMissing, "a judicial decision is required")
	}

	snapshot, err := s.store.GetByReference(ctx, reference)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCaseNotFound, "load case "+reference)
	}

	snapshot = snapshot.Clone()
	snapshot.Decision = decision

	intents, updated, err := s.planner.PlanAll(snapshot)
	if err != nil {
		return nil, err
	}

	previous := updated.State
	updated.State = gacase.NextState(decision, updated.State)

	if err := s.store.Save(ctx, updated); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "persist case "+reference)
	}

	s.metrics.ObserveDecision(string(decision.Option))
	s.logger.Info("judicial decision applied",
		logging.String("reference", reference),
		logging.String("decision", string(decision.Option)),
		logging.String("previous_state", string(previous)),
		logging.String("next_state", string(updated.State)),
		logging.Int("intents", len(intents)))

	s.dispatch(ctx, intents)

	if s.publisher != nil {
		if err := s.publisher.DecisionApplied(ctx, updated); err != nil {
			s.logger.Warn("decision event publish failed",
				logging.String("reference", reference), logging.Err(err))
		}
	}

	return &Result{
		Reference:     reference,
		PreviousState: previous,
		NextState:     updated.State,
		Intents:       intents,
		Snapshot:      updated,
		DispatchedAt:  time.Now().UTC(),
	}, nil
}

// PlanOnly runs the planner against the stored case without sending,
// persisting, or publishing anything.  Used by the dry-run CLI and the
// preview endpoint.
func (s *Service) PlanOnly(ctx context.Context, reference string, decision *gacase.JudicialDecision) ([]NotificationIntent, gacase.State, error) {
	snapshot, err := s.store.GetByReference(ctx, reference)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeCaseNotFound, "load case "+reference)
	}

	snapshot = snapshot.Clone()
	if decision != nil {
		snapshot.Decision = decision
	}

	intents, _, err := s.planner.PlanAll(snapshot)
	if err != nil {
		return nil, "", err
	}
	return intents, gacase.NextState(snapshot.Decision, snapshot.State), nil
}

func (s *Service) dispatch(ctx context.Context, intents []NotificationIntent) {
	for _, intent := range intents {
		err := s.notifier.SendEmail(ctx, intent.Recipient, intent.TemplateID, intent.Parameters, intent.Reference)
		if err != nil {
			s.metrics.ObserveNotification(string(intent.Role), "failed")
			s.logger.Error("notification dispatch failed",
				logging.String("reference", intent.Reference),
				logging.String("template", intent.TemplateID),
				logging.String("role", string(intent.Role)),
				logging.Err(err))
			continue
		}
		s.metrics.ObserveNotification(string(intent.Role), "sent")
		if s.publisher != nil {
			if perr := s.publisher.NotificationDispatched(ctx, intent); perr != nil {
				s.logger.Warn("notification event publish failed",
					logging.String("reference", intent.Reference), logging.Err(perr))
			}
		}
	}
}
