package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/internal/testutil"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

var testTemplates = config.TemplatesConfig{
	WrittenRepsConcurrentApplicant:  "tpl-wr-con-app",
	WrittenRepsConcurrentRespondent: "tpl-wr-con-resp",
	WrittenRepsSequentialApplicant:  "tpl-wr-seq-app",
	WrittenRepsSequentialRespondent: "tpl-wr-seq-resp",
	HearingListedApplicant:          "tpl-hearing-app",
	HearingListedRespondent:         "tpl-hearing-resp",
	OrderMadeApplicant:              "tpl-order-app",
	OrderMadeRespondent:             "tpl-order-resp",
	DismissedApplicant:              "tpl-dismissed-app",
	DismissedRespondent:             "tpl-dismissed-resp",
	DirectionsApplicant:             "tpl-directions-app",
	DirectionsRespondent:            "tpl-directions-resp",
	MoreInfoApplicant:               "tpl-moreinfo-app",
	MoreInfoRespondent:              "tpl-moreinfo-resp",
	UncloakApplicant:                "tpl-uncloak-app",
	UncloakRespondent:               "tpl-uncloak-resp",
	LipApplicant:                    "tpl-lip-app",
	LipRespondent:                   "tpl-lip-resp",
}

// Tuesday 10 June 2025, 12:00 UTC.
var fixedNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	cal := calendar.NewWorkingDayCalendar(context.Background(), calendar.StaticHolidaySource{}, testutil.NewRecordingLogger())
	calc := calendar.NewDeadlineCalculator(cal, calendar.DefaultEndOfBusinessHour)
	return NewPlanner(testTemplates, calc, 5, func() time.Time { return fixedNow })
}

func twoRespondentSnapshot() *gacase.CaseSnapshot {
	return &gacase.CaseSnapshot{
		Reference:        "GA-2025-0042",
		State:            gacase.StateApplicationSubmitted,
		ApplicationTypes: gacase.TypeSet{gacase.TypeStrikeOut},
		ApplicantSolicitor: &gacase.SolicitorParty{
			ID: "app-1", Email: "applicant@lawfirm.example", OrganisationID: "org-a",
		},
		RespondentSolicitors: []gacase.SolicitorParty{
			{ID: "resp-1", Email: "one@firstfirm.example", OrganisationID: "org-b"},
			{ID: "resp-2", Email: "two@secondfirm.example", OrganisationID: "org-c"},
		},
		ClaimantName:    "Holt",
		DefendantName:   "Mercer",
		BusinessProcess: &gacase.BusinessProcess{CamundaEvent: "MAKE_DECISION", Status: "STARTED"},
	}
}

func TestPlan_NoBusinessProcessIsNoOp(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.BusinessProcess = nil
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, updated, err := p.Plan(s, RoleApplicant)
	require.NoError(t, err)
	assert.Empty(t, intents)
	assert.Same(t, s, updated)
}

func TestPlan_MissingDecision(t *testing.T) {
	p := newTestPlanner(t)
	_, _, err := p.Plan(twoRespondentSnapshot(), RoleApplicant)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDecisionMissing))
}

func TestPlan_UnsupportedRole(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	_, _, err := p.Plan(s, Role("JUDGE"))
	assert.True(t, errors.IsCode(err, errors.ErrCodePlanRoleUnsupported))
}

func TestPlanAll_HearingWithNotice(t *testing.T) {
	// Scenario: list for a hearing, served with notice, two respondent firms.
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: true}
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, _, err := p.PlanAll(s)
	require.NoError(t, err)
	require.Len(t, intents, 3)

	assert.Equal(t, "applicant@lawfirm.example", intents[0].Recipient)
	assert.Equal(t, "tpl-hearing-app", intents[0].TemplateID)
	assert.Equal(t, "Strike out", intents[0].Parameters[ParamApplicationType])
	assert.Equal(t, "GA-2025-0042", intents[0].Parameters[ParamCaseReference])

	assert.Equal(t, "one@firstfirm.example", intents[1].Recipient)
	assert.Equal(t, "two@secondfirm.example", intents[2].Recipient)
	for _, in := range intents[1:] {
		assert.Equal(t, "tpl-hearing-resp", in.TemplateID)
		assert.Equal(t, "Strike out", in.Parameters[ParamApplicationType])
	}
}

func TestPlanAll_HearingWithoutNotice(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: false}
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, _, err := p.PlanAll(s)
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, RoleApplicant, intents[0].Role)
}

func TestPlanAll_DismissalCloaked(t *testing.T) {
	// Scenario: dismissal of a cloaked application without consent notifies
	// the applicant only.
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.RespondentAgreement = &gacase.RespondentAgreement{HasAgreed: false}
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: false}
	s.Decision = &gacase.JudicialDecision{
		Option:    gacase.DecisionMakeAnOrder,
		MakeOrder: &gacase.MakeOrderDetails{Option: gacase.OrderDismissApplication},
	}

	intents, _, err := p.PlanAll(s)
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, "tpl-dismissed-app", intents[0].TemplateID)
}

func TestPlan_ConsentOrderNotifiesBothSides(t *testing.T) {
	// Scenario: the same dismissal with a consent order yields three intents
	// across the two per-role planning calls.
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.RespondentAgreement = &gacase.RespondentAgreement{HasAgreed: true}
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: false}
	s.Decision = &gacase.JudicialDecision{
		Option:    gacase.DecisionMakeAnOrder,
		MakeOrder: &gacase.MakeOrderDetails{Option: gacase.OrderDismissApplication},
	}

	applicant, _, err := p.Plan(s, RoleApplicant)
	require.NoError(t, err)
	respondent, _, err := p.Plan(s, RoleRespondent)
	require.NoError(t, err)

	assert.Len(t, applicant, 1)
	assert.Len(t, respondent, 2)
}

func TestPlanAll_UncloakGatedOnPayment(t *testing.T) {
	// Scenario: uncloak-and-request before payment notifies the applicant
	// only and stamps no deadline.
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.AdditionalFeeRequired = true
	s.AdditionalPaymentStatus = gacase.PaymentStatusPending
	s.Decision = &gacase.JudicialDecision{
		Option:          gacase.DecisionRequestMoreInfo,
		RequestMoreInfo: &gacase.RequestMoreInfoDetails{Option: gacase.MoreInfoSendToOtherParty},
	}

	intents, updated, err := p.PlanAll(s)
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, "tpl-uncloak-app", intents[0].TemplateID)
	assert.Nil(t, updated.Decision.RequestMoreInfo.DeadlineForSubmission)
}

func TestPlanAll_UncloakAfterPaymentStampsDeadline(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.AdditionalFeeRequired = true
	s.AdditionalPaymentStatus = gacase.PaymentStatusSuccess
	s.Decision = &gacase.JudicialDecision{
		Option:          gacase.DecisionRequestMoreInfo,
		RequestMoreInfo: &gacase.RequestMoreInfoDetails{Option: gacase.MoreInfoSendToOtherParty},
	}

	intents, updated, err := p.PlanAll(s)
	require.NoError(t, err)
	assert.Len(t, intents, 3)

	// Tue 10 June + 5 working days = Tue 17 June 16:00.
	want := time.Date(2025, time.June, 17, 16, 0, 0, 0, time.UTC)
	require.NotNil(t, updated.Decision.RequestMoreInfo.DeadlineForSubmission)
	assert.Equal(t, want, *updated.Decision.RequestMoreInfo.DeadlineForSubmission)

	// The input snapshot itself is untouched.
	assert.Nil(t, s.Decision.RequestMoreInfo.DeadlineForSubmission)
}

func TestPlanAll_UncloakNoFeeNeeded(t *testing.T) {
	// No additional fee required releases respondent notification without a
	// payment.
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.AdditionalFeeRequired = false
	s.Decision = &gacase.JudicialDecision{
		Option:          gacase.DecisionRequestMoreInfo,
		RequestMoreInfo: &gacase.RequestMoreInfoDetails{Option: gacase.MoreInfoSendToOtherParty},
	}

	intents, updated, err := p.PlanAll(s)
	require.NoError(t, err)
	assert.Len(t, intents, 3)
	assert.NotNil(t, updated.Decision.RequestMoreInfo.DeadlineForSubmission)
}

func TestPlanAll_DirectRequestMoreInfoNotGated(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.AdditionalFeeRequired = true
	s.AdditionalPaymentStatus = gacase.PaymentStatusPending
	s.Decision = &gacase.JudicialDecision{
		Option:          gacase.DecisionRequestMoreInfo,
		RequestMoreInfo: &gacase.RequestMoreInfoDetails{Option: gacase.MoreInfoRequest},
	}

	intents, _, err := p.PlanAll(s)
	require.NoError(t, err)
	assert.Len(t, intents, 3)
	assert.Equal(t, "tpl-moreinfo-app", intents[0].TemplateID)
	assert.Equal(t, "tpl-moreinfo-resp", intents[1].TemplateID)
}

func TestPlanAll_WrittenRepresentations(t *testing.T) {
	p := newTestPlanner(t)

	for _, tt := range []struct {
		option       gacase.WrittenRepOption
		appTemplate  string
		respTemplate string
	}{
		{gacase.WrittenRepConcurrent, "tpl-wr-con-app", "tpl-wr-con-resp"},
		{gacase.WrittenRepSequential, "tpl-wr-seq-app", "tpl-wr-seq-resp"},
	} {
		s := twoRespondentSnapshot()
		s.Decision = &gacase.JudicialDecision{
			Option:                 gacase.DecisionWrittenRepresentations,
			WrittenRepresentations: &gacase.WrittenRepresentationsDetails{Option: tt.option},
		}

		intents, _, err := p.PlanAll(s)
		require.NoError(t, err)
		require.Len(t, intents, 3)
		assert.Equal(t, tt.appTemplate, intents[0].TemplateID)
		assert.Equal(t, tt.respTemplate, intents[1].TemplateID)
	}
}

func TestPlan_LitigantInPersonVariant(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.IsApplicantLIP = true
	s.IsRespondentLIP = true
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: true}
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, _, err := p.PlanAll(s)
	require.NoError(t, err)
	require.Len(t, intents, 3)

	assert.Equal(t, "tpl-lip-app", intents[0].TemplateID)
	assert.Equal(t, "Holt v Mercer", intents[0].Parameters[ParamCaseTitle])
	assert.NotContains(t, intents[0].Parameters, ParamApplicationType)

	assert.Equal(t, "tpl-lip-resp", intents[1].TemplateID)
	assert.Equal(t, "Holt v Mercer", intents[1].Parameters[ParamCaseTitle])
}

func TestPlan_TypePrecedenceDrivesLabel(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.ApplicationTypes = gacase.TypeSet{gacase.TypeAdjournHearing, gacase.TypeVaryOrder}
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: true}
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, _, err := p.PlanAll(s)
	require.NoError(t, err)
	assert.Equal(t, "Vary order or judgment", intents[0].Parameters[ParamApplicationType])
}

func TestPlan_Purity(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: true}
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	first, _, err := p.PlanAll(s)
	require.NoError(t, err)
	second, _, err := p.PlanAll(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlan_NoApplicantSolicitor(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.ApplicantSolicitor = nil
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, _, err := p.Plan(s, RoleApplicant)
	require.NoError(t, err)
	assert.Empty(t, intents)
}

func TestPlan_NoRespondentSolicitors(t *testing.T) {
	p := newTestPlanner(t)
	s := twoRespondentSnapshot()
	s.RespondentSolicitors = nil
	s.InformOtherParty = &gacase.InformOtherParty{IsWithNotice: true}
	s.Decision = &gacase.JudicialDecision{Option: gacase.DecisionListForHearing}

	intents, _, err := p.Plan(s, RoleRespondent)
	require.NoError(t, err)
	assert.Empty(t, intents)
}
