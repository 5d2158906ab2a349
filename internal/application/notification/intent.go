// Package notification plans and orchestrates the party notifications that
// follow a judicial decision on a general application.  The planner is a pure
// decision function; dispatch, persistence, and event publication live in the
// Service that consumes its output.
package notification

// Role identifies which side of the case a planning call targets.
type Role string

const (
	RoleApplicant  Role = "APPLICANT"
	RoleRespondent Role = "RESPONDENT"
)

// Notification parameter keys substituted into templates.
const (
	ParamCaseReference   = "caseReference"
	ParamApplicationType = "applicationType"
	ParamCaseTitle       = "lipCaseTitle"
)

// NotificationIntent is one planned email.  Intents are self-contained: each
// carries its own recipient, template, and full parameter map, so dispatch
// may happen in any order.
type NotificationIntent struct {
	Recipient  string            `json:"recipient"`
	TemplateID string            `json:"templateId"`
	Parameters map[string]string `json:"parameters"`
	Reference  string            `json:"reference"`
	Role       Role              `json:"role"`
}
