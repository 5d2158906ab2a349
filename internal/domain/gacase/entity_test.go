package gacase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasDirections(t *testing.T) {
	assert.False(t, (*MakeOrderDetails)(nil).HasDirections())
	assert.False(t, (&MakeOrderDetails{DirectionsText: "  \n"}).HasDirections())
	assert.True(t, (&MakeOrderDetails{DirectionsText: "serve evidence"}).HasDirections())
}

func TestCaseTitle(t *testing.T) {
	s := &CaseSnapshot{ClaimantName: "Smith", DefendantName: "Jones"}
	assert.Equal(t, "Smith v Jones", s.CaseTitle())
}

func TestAdditionalFeeSettled(t *testing.T) {
	assert.True(t, (&CaseSnapshot{AdditionalFeeRequired: false}).AdditionalFeeSettled())
	assert.False(t, (&CaseSnapshot{AdditionalFeeRequired: true, AdditionalPaymentStatus: PaymentStatusPending}).AdditionalFeeSettled())
	assert.True(t, (&CaseSnapshot{AdditionalFeeRequired: true, AdditionalPaymentStatus: PaymentStatusSuccess}).AdditionalFeeSettled())
}

func TestClone_IsDeep(t *testing.T) {
	by := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	src := &CaseSnapshot{
		Reference:        "GA-0001",
		State:            StateApplicationSubmitted,
		ApplicationTypes: TypeSet{TypeStrikeOut},
		Decision: &JudicialDecision{
			Option:          DecisionRequestMoreInfo,
			RequestMoreInfo: &RequestMoreInfoDetails{Option: MoreInfoRequest, ByDate: &by},
		},
		RespondentAgreement:  &RespondentAgreement{HasAgreed: true},
		InformOtherParty:     &InformOtherParty{IsWithNotice: true},
		ApplicantSolicitor:   &SolicitorParty{ID: "a1", Email: "a@example.com"},
		RespondentSolicitors: []SolicitorParty{{ID: "r1", Email: "r@example.com"}},
		BusinessProcess:      &BusinessProcess{CamundaEvent: "JUDGE_MAKES_DECISION"},
	}

	cp := src.Clone()
	assert.Equal(t, src, cp)

	// Mutating the clone must not leak into the source.
	deadline := time.Date(2025, time.June, 27, 16, 0, 0, 0, time.UTC)
	cp.Decision.RequestMoreInfo.DeadlineForSubmission = &deadline
	cp.RespondentSolicitors[0].Email = "changed@example.com"
	cp.ApplicationTypes[0] = TypeVaryOrder
	cp.State = StateAwaitingAdditionalInformation

	assert.Nil(t, src.Decision.RequestMoreInfo.DeadlineForSubmission)
	assert.Equal(t, "r@example.com", src.RespondentSolicitors[0].Email)
	assert.Equal(t, TypeStrikeOut, src.ApplicationTypes[0])
	assert.Equal(t, StateApplicationSubmitted, src.State)
}

func TestClone_Nil(t *testing.T) {
	var s *CaseSnapshot
	assert.Nil(t, s.Clone())
}
