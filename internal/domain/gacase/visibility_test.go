package gacase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func agreed(v bool) *RespondentAgreement { return &RespondentAgreement{HasAgreed: v} }
func notice(v bool) *InformOtherParty    { return &InformOtherParty{IsWithNotice: v} }

func TestIsCloaked_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		agreement *RespondentAgreement
		inform    *InformOtherParty
		want      bool
	}{
		{"agreement absent", nil, notice(false), false},
		{"agreement absent, notice absent", nil, nil, false},
		{"agreed, with notice", agreed(true), notice(true), false},
		{"agreed, without notice", agreed(true), notice(false), false},
		{"agreed, notice absent", agreed(true), nil, false},
		{"not agreed, notice absent", agreed(false), nil, false},
		{"not agreed, with notice", agreed(false), notice(true), false},
		{"not agreed, without notice", agreed(false), notice(false), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCloaked(tt.agreement, tt.inform))
		})
	}
}

func TestSnapshotVisibilityHelpers(t *testing.T) {
	s := &CaseSnapshot{RespondentAgreement: agreed(false), InformOtherParty: notice(false)}
	assert.True(t, s.IsCloaked())
	assert.False(t, s.HasConsentOrder())
	assert.False(t, s.IsWithNotice())

	s = &CaseSnapshot{RespondentAgreement: agreed(true)}
	assert.False(t, s.IsCloaked())
	assert.True(t, s.HasConsentOrder())
}
