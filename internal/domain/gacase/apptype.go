package gacase

// ApplicationType is a declared type tag on a general application.
type ApplicationType string

const (
	TypeSummaryJudgement       ApplicationType = "SUMMARY_JUDGEMENT"
	TypeStrikeOut              ApplicationType = "STRIKE_OUT"
	TypeStayClaim              ApplicationType = "STAY_THE_CLAIM"
	TypeExtendTime             ApplicationType = "EXTEND_TIME"
	TypeAmendStatementOfCase   ApplicationType = "AMEND_A_STMT_OF_CASE"
	TypeReliefFromSanctions    ApplicationType = "RELIEF_FROM_SANCTIONS"
	TypeAdjournHearing         ApplicationType = "ADJOURN_HEARING"
	TypeUnlessOrder            ApplicationType = "UNLESS_ORDER"
	TypeVaryOrder              ApplicationType = "VARY_ORDER"
	TypeVaryPaymentTerms       ApplicationType = "VARY_PAYMENT_TERMS_OF_JUDGMENT"
	TypeSetAsideJudgement      ApplicationType = "SET_ASIDE_JUDGEMENT"
	TypeSettleOrDiscontinue    ApplicationType = "SETTLE_BY_CONSENT"
	TypeProceedsInHeritage     ApplicationType = "PROCEEDS_IN_HERITAGE"
	TypeCertificateSatisfied   ApplicationType = "CONFIRM_CCJ_DEBT_PAID"
	TypeOther                  ApplicationType = "OTHER"
)

// displayLabels maps each type tag to the label substituted into
// notification templates for represented parties.
var displayLabels = map[ApplicationType]string{
	TypeSummaryJudgement:     "Summary judgment",
	TypeStrikeOut:            "Strike out",
	TypeStayClaim:            "Stay the claim",
	TypeExtendTime:           "Extend time",
	TypeAmendStatementOfCase: "Amend a statement of case",
	TypeReliefFromSanctions:  "Relief from sanctions",
	TypeAdjournHearing:       "Adjourn a hearing",
	TypeUnlessOrder:          "Unless order",
	TypeVaryOrder:            "Vary order or judgment",
	TypeVaryPaymentTerms:     "Vary the terms of payment of a judgment",
	TypeSetAsideJudgement:    "Set aside judgment",
	TypeSettleOrDiscontinue:  "Settle by consent",
	TypeProceedsInHeritage:   "Proceeds in heritage",
	TypeCertificateSatisfied: "Confirm you've paid a judgment debt",
	TypeOther:                "Other",
}

// DisplayLabel returns the human-readable label for t, falling back to the
// raw tag for unknown values.
func (t ApplicationType) DisplayLabel() string {
	if label, ok := displayLabels[t]; ok {
		return label
	}
	return string(t)
}

// TypeSet is the non-empty ordered set of type tags declared on an
// application.
type TypeSet []ApplicationType

// Contains reports whether the set declares t.
func (s TypeSet) Contains(t ApplicationType) bool {
	for _, v := range s {
		if v == t {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the set declares any of the given types.
func (s TypeSet) ContainsAny(types ...ApplicationType) bool {
	for _, t := range types {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// Category is the fee-and-template bucket an application resolves to when it
// declares multiple types.
type Category string

const (
	CategoryVary                      Category = "VARY"
	CategorySetAside                  Category = "SET_ASIDE"
	CategoryAdjourn                   Category = "ADJOURN"
	CategoryCertificateOfSatisfaction Category = "CERTIFICATE_OF_SATISFACTION"
	CategoryDefault                   Category = "DEFAULT"
)

// categoryRule pairs a membership predicate with the category and
// representative type it wins.  Rules are evaluated top-down, so the slice
// order IS the precedence: vary beats set-aside beats adjourn beats
// certificate-of-satisfaction; everything else falls through to the default
// bucket keyed by the first declared type.
type categoryRule struct {
	matches        func(TypeSet) bool
	category       Category
	representative ApplicationType
}

var categoryRules = []categoryRule{
	{
		matches:        func(s TypeSet) bool { return s.ContainsAny(TypeVaryOrder, TypeVaryPaymentTerms) },
		category:       CategoryVary,
		representative: TypeVaryOrder,
	},
	{
		matches:        func(s TypeSet) bool { return s.Contains(TypeSetAsideJudgement) },
		category:       CategorySetAside,
		representative: TypeSetAsideJudgement,
	},
	{
		matches:        func(s TypeSet) bool { return s.Contains(TypeAdjournHearing) },
		category:       CategoryAdjourn,
		representative: TypeAdjournHearing,
	},
	{
		matches:        func(s TypeSet) bool { return s.Contains(TypeCertificateSatisfied) },
		category:       CategoryCertificateOfSatisfaction,
		representative: TypeCertificateSatisfied,
	},
}

// Resolve applies the precedence rules and returns the winning category
// together with the type whose display label parameterises notifications.
// For the default bucket the representative is the first declared type.
func (s TypeSet) Resolve() (Category, ApplicationType) {
	for _, rule := range categoryRules {
		if rule.matches(s) {
			return rule.category, rule.representative
		}
	}
	if len(s) > 0 {
		return CategoryDefault, s[0]
	}
	return CategoryDefault, TypeOther
}

// ResolvedLabel is shorthand for the display label of the winning type.
func (s TypeSet) ResolvedLabel() string {
	_, t := s.Resolve()
	return t.DisplayLabel()
}
