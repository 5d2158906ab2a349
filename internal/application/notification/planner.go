package notification

import (
	"time"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// Planner turns a case snapshot plus a judicial decision into the set of
// notification intents owed to one side of the case.  It performs no I/O:
// identical inputs always yield identical output, and the input snapshot is
// never mutated.
type Planner struct {
	templates          config.TemplatesConfig
	deadlines          *calendar.DeadlineCalculator
	responseWindowDays int
	now                func() time.Time
}

// NewPlanner constructs a Planner.  now is injectable so tests can pin the
// deadline base; pass nil for the wall clock.
func NewPlanner(templates config.TemplatesConfig, deadlines *calendar.DeadlineCalculator, responseWindowDays int, now func() time.Time) *Planner {
	if now == nil {
		now = time.Now
	}
	return &Planner{
		templates:          templates,
		deadlines:          deadlines,
		responseWindowDays: responseWindowDays,
		now:                now,
	}
}

// recipientRule is the outcome of matching a decision branch: which template
// pair applies and whether the respondents are included for this decision.
type recipientRule struct {
	applicantTemplate  string
	respondentTemplate string
	notifyRespondents  bool
}

// Plan resolves the notification intents owed to role under the snapshot's
// judicial decision.  The second return value is the snapshot to persist:
// usually a verbatim copy, but an uncloak-and-request decision with a settled
// fee also carries the freshly computed submission deadline.
//
// A snapshot without a business process is a no-op, not an error.
func (p *Planner) Plan(snapshot *gacase.CaseSnapshot, role Role) ([]NotificationIntent, *gacase.CaseSnapshot, error) {
	if snapshot == nil {
		return nil, nil, errors.InvalidParam("snapshot is required")
	}
	if snapshot.BusinessProcess == nil {
		return nil, snapshot, nil
	}
	if snapshot.Decision == nil {
		return nil, nil, errors.New(errors.ErrCodeDecisionMissing, "case has no judicial decision to notify about")
	}
	if role != RoleApplicant && role != RoleRespondent {
		return nil, nil, errors.New(errors.ErrCodePlanRoleUnsupported, "unsupported target role "+string(role))
	}

	rule, updated, err := p.match(snapshot)
	if err != nil {
		return nil, nil, err
	}

	var intents []NotificationIntent
	switch role {
	case RoleApplicant:
		intents = p.applicantIntents(updated, rule)
	case RoleRespondent:
		intents = p.respondentIntents(updated, rule)
	}
	return intents, updated, nil
}

// PlanAll plans both roles against the same snapshot and merges the results,
// applicant intents first.  The returned snapshot reflects any deadline stamp
// exactly once.
func (p *Planner) PlanAll(snapshot *gacase.CaseSnapshot) ([]NotificationIntent, *gacase.CaseSnapshot, error) {
	applicant, updated, err := p.Plan(snapshot, RoleApplicant)
	if err != nil {
		return nil, nil, err
	}
	respondent, _, err := p.Plan(snapshot, RoleRespondent)
	if err != nil {
		return nil, nil, err
	}
	return append(applicant, respondent...), updated, nil
}

// match dispatches on the decision option and sub-option.  It returns the
// branch rule together with the snapshot to hand back to the caller, cloned
// only when a deadline stamp makes it diverge from the input.
func (p *Planner) match(snapshot *gacase.CaseSnapshot) (recipientRule, *gacase.CaseSnapshot, error) {
	decision := snapshot.Decision

	switch decision.Option {
	case gacase.DecisionWrittenRepresentations:
		if decision.WrittenRepresentations != nil && decision.WrittenRepresentations.Option == gacase.WrittenRepSequential {
			return recipientRule{
				applicantTemplate:  p.templates.WrittenRepsSequentialApplicant,
				respondentTemplate: p.templates.WrittenRepsSequentialRespondent,
				notifyRespondents:  true,
			}, snapshot, nil
		}
		return recipientRule{
			applicantTemplate:  p.templates.WrittenRepsConcurrentApplicant,
			respondentTemplate: p.templates.WrittenRepsConcurrentRespondent,
			notifyRespondents:  true,
		}, snapshot, nil

	case gacase.DecisionListForHearing:
		return recipientRule{
			applicantTemplate:  p.templates.HearingListedApplicant,
			respondentTemplate: p.templates.HearingListedRespondent,
			notifyRespondents:  snapshot.IsWithNotice(),
		}, snapshot, nil

	case gacase.DecisionMakeAnOrder:
		rule := recipientRule{notifyRespondents: snapshot.HasConsentOrder()}
		option := gacase.OrderApproveOrEdit
		if decision.MakeOrder != nil {
			option = decision.MakeOrder.Option
		}
		switch option {
		case gacase.OrderDismissApplication:
			rule.applicantTemplate = p.templates.DismissedApplicant
			rule.respondentTemplate = p.templates.DismissedRespondent
		case gacase.OrderDirectionsWithoutHearing:
			rule.applicantTemplate = p.templates.DirectionsApplicant
			rule.respondentTemplate = p.templates.DirectionsRespondent
		default:
			rule.applicantTemplate = p.templates.OrderMadeApplicant
			rule.respondentTemplate = p.templates.OrderMadeRespondent
		}
		return rule, snapshot, nil

	case gacase.DecisionRequestMoreInfo:
		if decision.RequestMoreInfo == nil {
			return recipientRule{}, nil, errors.New(errors.ErrCodeSnapshotInvalid, "request-more-info decision is missing its details")
		}
		switch decision.RequestMoreInfo.Option {
		case gacase.MoreInfoSendToOtherParty:
			// Uncloak and request.  Respondents learn about the application
			// only once the additional fee is settled; the same event also
			// starts the applicant's response clock.
			if !snapshot.AdditionalFeeSettled() {
				return recipientRule{
					applicantTemplate:  p.templates.UncloakApplicant,
					respondentTemplate: p.templates.UncloakRespondent,
				}, snapshot, nil
			}
			updated := snapshot.Clone()
			deadline := p.deadlines.ApplicantResponseDeadline(p.now(), p.responseWindowDays)
			updated.Decision.RequestMoreInfo.DeadlineForSubmission = &deadline
			return recipientRule{
				applicantTemplate:  p.templates.UncloakApplicant,
				respondentTemplate: p.templates.UncloakRespondent,
				notifyRespondents:  true,
			}, updated, nil
		case gacase.MoreInfoRequest:
			return recipientRule{
				applicantTemplate:  p.templates.MoreInfoApplicant,
				respondentTemplate: p.templates.MoreInfoRespondent,
				notifyRespondents:  true,
			}, snapshot, nil
		default:
			return recipientRule{}, nil, errors.New(errors.ErrCodeDecisionUnsupported,
				"unsupported request-more-info option "+string(decision.RequestMoreInfo.Option))
		}

	default:
		return recipientRule{}, nil, errors.New(errors.ErrCodeDecisionUnsupported,
			"unsupported decision option "+string(decision.Option))
	}
}

func (p *Planner) applicantIntents(snapshot *gacase.CaseSnapshot, rule recipientRule) []NotificationIntent {
	if snapshot.ApplicantSolicitor == nil {
		return nil
	}
	templateID, params := p.personalise(snapshot, rule.applicantTemplate, p.templates.LipApplicant, snapshot.IsApplicantLIP)
	return []NotificationIntent{{
		Recipient:  snapshot.ApplicantSolicitor.Email,
		TemplateID: templateID,
		Parameters: params,
		Reference:  snapshot.Reference,
		Role:       RoleApplicant,
	}}
}

func (p *Planner) respondentIntents(snapshot *gacase.CaseSnapshot, rule recipientRule) []NotificationIntent {
	if !rule.notifyRespondents {
		return nil
	}
	templateID, params := p.personalise(snapshot, rule.respondentTemplate, p.templates.LipRespondent, snapshot.IsRespondentLIP)

	// One intent per respondent solicitor, never a combined intent.
	intents := make([]NotificationIntent, 0, len(snapshot.RespondentSolicitors))
	for _, solicitor := range snapshot.RespondentSolicitors {
		intents = append(intents, NotificationIntent{
			Recipient:  solicitor.Email,
			TemplateID: templateID,
			Parameters: params,
			Reference:  snapshot.Reference,
			Role:       RoleRespondent,
		})
	}
	return intents
}

// personalise picks between the represented-party template and the
// litigant-in-person variant.  LIP recipients get the case title in place of
// the application-type label.
func (p *Planner) personalise(snapshot *gacase.CaseSnapshot, templateID, lipTemplateID string, isLIP bool) (string, map[string]string) {
	params := map[string]string{ParamCaseReference: snapshot.Reference}
	if isLIP {
		params[ParamCaseTitle] = snapshot.CaseTitle()
		return lipTemplateID, params
	}
	params[ParamApplicationType] = snapshot.ApplicationTypes.ResolvedLabel()
	return templateID, params
}
