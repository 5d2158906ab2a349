package kafka

import (
	"context"
	"encoding/json"
	"testing"

	segmentio "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GenApp-Engine/internal/application/notification"
	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/internal/testutil"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

type capturingWriter struct {
	messages []segmentio.Message
	err      error
	closed   bool
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...segmentio.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *capturingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(config.KafkaConfig{}, testutil.NewRecordingLogger())
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestPublish(t *testing.T) {
	w := &capturingWriter{}
	p := NewProducerWithWriter(w, testutil.NewRecordingLogger())

	require.NoError(t, p.Publish(context.Background(), TopicDecisionApplied, "GA-1", []byte(`{}`)))
	require.Len(t, w.messages, 1)
	assert.Equal(t, TopicDecisionApplied, w.messages[0].Topic)
	assert.Equal(t, []byte("GA-1"), w.messages[0].Key)
	assert.Equal(t, int64(1), p.Sent())
}

func TestPublish_WriterFailure(t *testing.T) {
	w := &capturingWriter{err: errors.New(errors.ErrCodeExternalService, "broker down")}
	p := NewProducerWithWriter(w, testutil.NewRecordingLogger())

	err := p.Publish(context.Background(), TopicDecisionApplied, "GA-1", []byte(`{}`))
	assert.True(t, errors.IsCode(err, errors.ErrCodeExternalService))
	assert.Equal(t, int64(1), p.Failed())
}

func TestPublish_AfterClose(t *testing.T) {
	w := &capturingWriter{}
	p := NewProducerWithWriter(w, testutil.NewRecordingLogger())

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	assert.Error(t, p.Publish(context.Background(), TopicDecisionApplied, "GA-1", nil))
}

func TestEventPublisher_DecisionApplied(t *testing.T) {
	w := &capturingWriter{}
	publisher := NewEventPublisher(NewProducerWithWriter(w, testutil.NewRecordingLogger()))

	snapshot := &gacase.CaseSnapshot{
		Reference:           "GA-2025-0042",
		State:               gacase.StateAwaitingAdditionalInformation,
		Decision:            &gacase.JudicialDecision{Option: gacase.DecisionRequestMoreInfo},
		RespondentAgreement: &gacase.RespondentAgreement{HasAgreed: false},
		InformOtherParty:    &gacase.InformOtherParty{IsWithNotice: false},
	}
	require.NoError(t, publisher.DecisionApplied(context.Background(), snapshot))

	require.Len(t, w.messages, 1)
	var env Envelope
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &env))
	assert.Equal(t, "ga.decision.applied", env.Type)
	assert.NotEmpty(t, env.ID)

	var payload DecisionAppliedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "GA-2025-0042", payload.Reference)
	assert.Equal(t, gacase.DecisionRequestMoreInfo, payload.Decision)
	assert.True(t, payload.Cloaked)
}

func TestEventPublisher_NotificationDispatched(t *testing.T) {
	w := &capturingWriter{}
	publisher := NewEventPublisher(NewProducerWithWriter(w, testutil.NewRecordingLogger()))

	intent := notification.NotificationIntent{
		Recipient:  "sol@firm.example",
		TemplateID: "tpl-1",
		Reference:  "GA-1",
		Role:       notification.RoleApplicant,
	}
	require.NoError(t, publisher.NotificationDispatched(context.Background(), intent))

	require.Len(t, w.messages, 1)
	assert.Equal(t, TopicNotificationDispatched, w.messages[0].Topic)
	assert.Equal(t, []byte("GA-1"), w.messages[0].Key)
}
