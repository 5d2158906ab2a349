// Package gacase defines the general-application case snapshot and the pure
// decision logic evaluated against it: visibility (cloaking), lifecycle state
// transitions, and application-type categorisation.
package gacase

import (
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Judicial decision enumerations
// ─────────────────────────────────────────────────────────────────────────────

// DecisionOption identifies the judge's top-level decision on an application.
type DecisionOption string

const (
	DecisionMakeAnOrder            DecisionOption = "MAKE_AN_ORDER"
	DecisionListForHearing         DecisionOption = "LIST_FOR_A_HEARING"
	DecisionRequestMoreInfo        DecisionOption = "REQUEST_MORE_INFO"
	DecisionWrittenRepresentations DecisionOption = "MAKE_ORDER_FOR_WRITTEN_REPRESENTATIONS"
)

// OrderOption refines DecisionMakeAnOrder.
type OrderOption string

const (
	OrderApproveOrEdit            OrderOption = "APPROVE_OR_EDIT"
	OrderDismissApplication       OrderOption = "DISMISS_THE_APPLICATION"
	OrderDirectionsWithoutHearing OrderOption = "GIVE_DIRECTIONS_WITHOUT_HEARING"
)

// MoreInfoOption refines DecisionRequestMoreInfo.
type MoreInfoOption string

const (
	MoreInfoRequest          MoreInfoOption = "REQUEST_MORE_INFORMATION"
	MoreInfoSendToOtherParty MoreInfoOption = "SEND_APP_TO_OTHER_PARTY"
)

// WrittenRepOption refines DecisionWrittenRepresentations.
type WrittenRepOption string

const (
	WrittenRepConcurrent WrittenRepOption = "CONCURRENT_REPRESENTATIONS"
	WrittenRepSequential WrittenRepOption = "SEQUENTIAL_REPRESENTATIONS"
)

// ─────────────────────────────────────────────────────────────────────────────
// Judicial decision details
// ─────────────────────────────────────────────────────────────────────────────

// MakeOrderDetails carries the sub-option and free text of a make-an-order
// decision.  OrderText and DirectionsText are optional.
type MakeOrderDetails struct {
	Option         OrderOption `json:"option"`
	OrderText      string      `json:"orderText,omitempty"`
	DirectionsText string      `json:"directionsText,omitempty"`
}

// HasDirections reports whether DirectionsText carries content.  Blank or
// whitespace-only text is treated identically to absent text.
func (d *MakeOrderDetails) HasDirections() bool {
	return d != nil && strings.TrimSpace(d.DirectionsText) != ""
}

// RequestMoreInfoDetails carries the sub-option and request text of a
// request-more-information decision.  DeadlineForSubmission is the single
// field the engine writes: the planner stamps the computed applicant-response
// deadline into it before returning the updated snapshot.
type RequestMoreInfoDetails struct {
	Option                MoreInfoOption `json:"option"`
	RequestText           string         `json:"requestText,omitempty"`
	ByDate                *time.Time     `json:"byDate,omitempty"`
	DeadlineForSubmission *time.Time     `json:"deadlineForSubmission,omitempty"`
}

// WrittenRepresentationsDetails carries the sequencing sub-option of a
// written-representations order.
type WrittenRepresentationsDetails struct {
	Option WrittenRepOption `json:"option"`
}

// JudicialDecision is the judge's decision on an application.  It is created
// once per judicial event and, apart from the deadline stamp noted above, is
// a read-only input to the engine.
type JudicialDecision struct {
	Option                 DecisionOption                 `json:"option"`
	MakeOrder              *MakeOrderDetails              `json:"makeOrder,omitempty"`
	RequestMoreInfo        *RequestMoreInfoDetails        `json:"requestMoreInfo,omitempty"`
	WrittenRepresentations *WrittenRepresentationsDetails `json:"writtenRepresentations,omitempty"`
	DecidedAt              time.Time                      `json:"decidedAt"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Consent, notice, parties, payment
// ─────────────────────────────────────────────────────────────────────────────

// RespondentAgreement records whether the respondent consented to the
// application.  Absence of the object is not equivalent to HasAgreed=false.
type RespondentAgreement struct {
	HasAgreed bool `json:"hasAgreed"`
}

// InformOtherParty records whether the application was made with notice to
// the other party.  Absence of the object is not equivalent to
// IsWithNotice=false.
type InformOtherParty struct {
	IsWithNotice bool `json:"isWithNotice"`
}

// SolicitorParty identifies a notifiable party representative.
type SolicitorParty struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	OrganisationID string `json:"organisationId"`
	DisplayName    string `json:"displayName"`
}

// PaymentStatus is the state of the additional application fee.
type PaymentStatus string

const (
	PaymentStatusNone    PaymentStatus = ""
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// BusinessProcess marks the workflow event currently driving the case.  A
// snapshot without a business process has nothing to notify about; the
// planner treats it as a no-op input, not an error.
type BusinessProcess struct {
	CamundaEvent string `json:"camundaEvent"`
	Status       string `json:"status"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Case lifecycle states
// ─────────────────────────────────────────────────────────────────────────────

// State names a case lifecycle state.
type State string

const (
	StateApplicationSubmitted           State = "APPLICATION_SUBMITTED"
	StateApplicationAddPayment          State = "APPLICATION_ADD_PAYMENT"
	StateAwaitingRespondentResponse     State = "AWAITING_RESPONDENT_RESPONSE"
	StateAwaitingAdditionalInformation  State = "AWAITING_ADDITIONAL_INFORMATION"
	StateAwaitingWrittenRepresentations State = "AWAITING_WRITTEN_REPRESENTATIONS"
	StateAwaitingDirectionsOrderDocs    State = "AWAITING_DIRECTIONS_ORDER_DOCS"
	StateListedForHearing               State = "LISTED_FOR_A_HEARING"
	StateOrderMade                      State = "ORDER_MADE"
	StateApplicationDismissed           State = "APPLICATION_DISMISSED"
)

// ─────────────────────────────────────────────────────────────────────────────
// Case snapshot
// ─────────────────────────────────────────────────────────────────────────────

// CaseSnapshot is the engine's read model of a general application at the
// moment a judicial decision is processed.  All fields except the stamped
// deadline are immutable inputs; the planner returns a modified copy rather
// than mutating in place.
type CaseSnapshot struct {
	Reference string `json:"reference"`
	State     State  `json:"state"`

	ApplicationTypes TypeSet `json:"applicationTypes"`

	Decision            *JudicialDecision    `json:"decision,omitempty"`
	RespondentAgreement *RespondentAgreement `json:"respondentAgreement,omitempty"`
	InformOtherParty    *InformOtherParty    `json:"informOtherParty,omitempty"`

	ApplicantSolicitor   *SolicitorParty  `json:"applicantSolicitor,omitempty"`
	RespondentSolicitors []SolicitorParty `json:"respondentSolicitors,omitempty"`

	// Litigant-in-person flags; a LIP party receives the dedicated template
	// variant with the case title parameter instead of the type label.
	IsApplicantLIP  bool `json:"isApplicantLip"`
	IsRespondentLIP bool `json:"isRespondentLip"`

	ClaimantName  string `json:"claimantName"`
	DefendantName string `json:"defendantName"`

	AdditionalPaymentStatus PaymentStatus `json:"additionalPaymentStatus,omitempty"`

	// AdditionalFeeRequired is false when the judge's uncloaking carries no
	// additional fee, which releases respondent notification without waiting
	// for a payment.
	AdditionalFeeRequired bool `json:"additionalFeeRequired"`

	BusinessProcess *BusinessProcess `json:"businessProcess,omitempty"`
}

// Clone returns a deep copy of the snapshot.  The planner works on a clone
// so that two calls with the same input remain independent.
func (s *CaseSnapshot) Clone() *CaseSnapshot {
	if s == nil {
		return nil
	}
	out := *s

	if s.ApplicationTypes != nil {
		out.ApplicationTypes = append(TypeSet{}, s.ApplicationTypes...)
	}
	if s.RespondentAgreement != nil {
		v := *s.RespondentAgreement
		out.RespondentAgreement = &v
	}
	if s.InformOtherParty != nil {
		v := *s.InformOtherParty
		out.InformOtherParty = &v
	}
	if s.ApplicantSolicitor != nil {
		v := *s.ApplicantSolicitor
		out.ApplicantSolicitor = &v
	}
	if s.RespondentSolicitors != nil {
		out.RespondentSolicitors = append([]SolicitorParty{}, s.RespondentSolicitors...)
	}
	if s.BusinessProcess != nil {
		v := *s.BusinessProcess
		out.BusinessProcess = &v
	}
	if s.Decision != nil {
		d := *s.Decision
		if s.Decision.MakeOrder != nil {
			v := *s.Decision.MakeOrder
			d.MakeOrder = &v
		}
		if s.Decision.RequestMoreInfo != nil {
			v := *s.Decision.RequestMoreInfo
			if v.ByDate != nil {
				bd := *v.ByDate
				v.ByDate = &bd
			}
			if v.DeadlineForSubmission != nil {
				dl := *v.DeadlineForSubmission
				v.DeadlineForSubmission = &dl
			}
			d.RequestMoreInfo = &v
		}
		if s.Decision.WrittenRepresentations != nil {
			v := *s.Decision.WrittenRepresentations
			d.WrittenRepresentations = &v
		}
		out.Decision = &d
	}
	return &out
}

// CaseTitle renders the claim heading used in litigant-in-person
// notifications, e.g. "Smith v Jones".
func (s *CaseSnapshot) CaseTitle() string {
	return s.ClaimantName + " v " + s.DefendantName
}

// AdditionalFeeSettled reports whether respondent notification may proceed
// for an uncloak-and-request decision: either the additional fee has been
// paid or no additional fee was required in the first place.
func (s *CaseSnapshot) AdditionalFeeSettled() bool {
	return s.AdditionalPaymentStatus == PaymentStatusSuccess || !s.AdditionalFeeRequired
}
