package gacase

// NextState resolves the lifecycle state that follows a judicial decision.
// The function is pure: it inspects only the decision and the current state.
//
// Request-more-info and written-representations decisions move the case
// unconditionally.  A make-an-order decision moves the case only when the
// order carries directions text; blank or whitespace-only directions leave
// the state untouched.  Every other decision leaves the state untouched.
func NextState(decision *JudicialDecision, current State) State {
	if decision == nil {
		return current
	}
	switch decision.Option {
	case DecisionRequestMoreInfo:
		return StateAwaitingAdditionalInformation
	case DecisionWrittenRepresentations:
		return StateAwaitingWrittenRepresentations
	case DecisionMakeAnOrder:
		if decision.MakeOrder.HasDirections() {
			return StateAwaitingDirectionsOrderDocs
		}
		return current
	default:
		return current
	}
}
