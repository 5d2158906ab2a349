package gacase

// IsCloaked derives whether the application is hidden from the
// non-initiating party.  Visibility is a pure function of the respondent
// agreement and the with-notice flag:
//
//	agreement absent            → visible
//	hasAgreed = true            → visible (consent overrides everything)
//	hasAgreed = false, no flag  → visible
//	hasAgreed = false, notice   → visible
//	hasAgreed = false, no notice → cloaked
//
// Only an unconsented, without-notice application is cloaked.
func IsCloaked(agreement *RespondentAgreement, inform *InformOtherParty) bool {
	if agreement == nil || agreement.HasAgreed {
		return false
	}
	if inform == nil {
		return false
	}
	return !inform.IsWithNotice
}

// IsCloaked reports the snapshot's derived visibility.
func (s *CaseSnapshot) IsCloaked() bool {
	return IsCloaked(s.RespondentAgreement, s.InformOtherParty)
}

// HasConsentOrder reports whether the respondent agreed to the application,
// which gates dual-party notification for make-an-order decisions.
func (s *CaseSnapshot) HasConsentOrder() bool {
	return s.RespondentAgreement != nil && s.RespondentAgreement.HasAgreed
}

// IsWithNotice reports whether the application was served with notice.
func (s *CaseSnapshot) IsWithNotice() bool {
	return s.InformOtherParty != nil && s.InformOtherParty.IsWithNotice
}
