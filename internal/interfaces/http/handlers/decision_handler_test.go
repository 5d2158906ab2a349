package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GenApp-Engine/internal/application/notification"
	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/internal/testutil"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

type memStore struct {
	cases map[string]*gacase.CaseSnapshot
}

func (s *memStore) GetByReference(_ context.Context, reference string) (*gacase.CaseSnapshot, error) {
	if snap, ok := s.cases[reference]; ok {
		return snap, nil
	}
	return nil, errors.NotFound("case " + reference)
}

func (s *memStore) Save(_ context.Context, snapshot *gacase.CaseSnapshot) error {
	s.cases[snapshot.Reference] = snapshot
	return nil
}

type countingNotifier struct{ sent int }

func (n *countingNotifier) SendEmail(context.Context, string, string, map[string]string, string) error {
	n.sent++
	return nil
}

var handlerTemplates = config.TemplatesConfig{
	HearingListedApplicant:  "tpl-hearing-app",
	HearingListedRespondent: "tpl-hearing-resp",
	MoreInfoApplicant:       "tpl-moreinfo-app",
	MoreInfoRespondent:      "tpl-moreinfo-resp",
}

func newDecisionRouter(t *testing.T, store *memStore, notifier *countingNotifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testutil.NewRecordingLogger()
	cal := calendar.NewWorkingDayCalendar(context.Background(), calendar.StaticHolidaySource{}, logger)
	calc := calendar.NewDeadlineCalculator(cal, calendar.DefaultEndOfBusinessHour)
	planner := notification.NewPlanner(handlerTemplates, calc, 5, func() time.Time {
		return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	})
	service := notification.NewService(store, notifier, nil, planner, nil, logger)

	h := NewDecisionHandler(service)
	engine := gin.New()
	engine.POST("/api/v1/cases/:reference/decision", h.Apply)
	engine.POST("/api/v1/cases/:reference/decision/preview", h.Preview)
	return engine
}

func storedCase() *gacase.CaseSnapshot {
	return &gacase.CaseSnapshot{
		Reference:          "GA-1",
		State:              gacase.StateApplicationSubmitted,
		ApplicationTypes:   gacase.TypeSet{gacase.TypeStrikeOut},
		ApplicantSolicitor: &gacase.SolicitorParty{ID: "a", Email: "a@firm.example"},
		RespondentSolicitors: []gacase.SolicitorParty{
			{ID: "r", Email: "r@firm.example"},
		},
		InformOtherParty: &gacase.InformOtherParty{IsWithNotice: true},
		BusinessProcess:  &gacase.BusinessProcess{CamundaEvent: "MAKE_DECISION"},
	}
}

func postJSON(t *testing.T, engine *gin.Engine, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestApplyDecision(t *testing.T) {
	store := &memStore{cases: map[string]*gacase.CaseSnapshot{"GA-1": storedCase()}}
	notifier := &countingNotifier{}
	engine := newDecisionRouter(t, store, notifier)

	w := postJSON(t, engine, "/api/v1/cases/GA-1/decision", gacase.JudicialDecision{
		Option:          gacase.DecisionRequestMoreInfo,
		RequestMoreInfo: &gacase.RequestMoreInfoDetails{Option: gacase.MoreInfoRequest},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result notification.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, gacase.StateAwaitingAdditionalInformation, result.NextState)
	assert.Len(t, result.Intents, 2)
	assert.Equal(t, 2, notifier.sent)
	assert.Equal(t, gacase.StateAwaitingAdditionalInformation, store.cases["GA-1"].State)
}

func TestApplyDecision_UnknownCase(t *testing.T) {
	engine := newDecisionRouter(t, &memStore{cases: map[string]*gacase.CaseSnapshot{}}, &countingNotifier{})

	w := postJSON(t, engine, "/api/v1/cases/GA-404/decision", gacase.JudicialDecision{
		Option: gacase.DecisionListForHearing,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "GA_001", body.Code)
}

func TestApplyDecision_MalformedBody(t *testing.T) {
	engine := newDecisionRouter(t, &memStore{cases: map[string]*gacase.CaseSnapshot{}}, &countingNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cases/GA-1/decision", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewDecision_HasNoSideEffects(t *testing.T) {
	store := &memStore{cases: map[string]*gacase.CaseSnapshot{"GA-1": storedCase()}}
	notifier := &countingNotifier{}
	engine := newDecisionRouter(t, store, notifier)

	w := postJSON(t, engine, "/api/v1/cases/GA-1/decision/preview", gacase.JudicialDecision{
		Option: gacase.DecisionListForHearing,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body previewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Intents, 2)
	assert.Equal(t, gacase.StateApplicationSubmitted, body.NextState)

	assert.Zero(t, notifier.sent)
	assert.Equal(t, gacase.StateApplicationSubmitted, store.cases["GA-1"].State)
}
