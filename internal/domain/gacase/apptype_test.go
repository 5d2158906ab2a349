package gacase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeSetResolve_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		types    TypeSet
		category Category
		winner   ApplicationType
	}{
		{
			"vary beats everything",
			TypeSet{TypeAdjournHearing, TypeSetAsideJudgement, TypeVaryOrder},
			CategoryVary, TypeVaryOrder,
		},
		{
			"vary payment terms resolves to vary",
			TypeSet{TypeStrikeOut, TypeVaryPaymentTerms},
			CategoryVary, TypeVaryOrder,
		},
		{
			"set aside beats adjourn",
			TypeSet{TypeAdjournHearing, TypeSetAsideJudgement},
			CategorySetAside, TypeSetAsideJudgement,
		},
		{
			"adjourn beats certificate",
			TypeSet{TypeCertificateSatisfied, TypeAdjournHearing},
			CategoryAdjourn, TypeAdjournHearing,
		},
		{
			"certificate beats default",
			TypeSet{TypeSummaryJudgement, TypeCertificateSatisfied},
			CategoryCertificateOfSatisfaction, TypeCertificateSatisfied,
		},
		{
			"default keyed by first declared type",
			TypeSet{TypeStrikeOut, TypeSummaryJudgement},
			CategoryDefault, TypeStrikeOut,
		},
		{
			"empty set falls back to other",
			TypeSet{},
			CategoryDefault, TypeOther,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, winner := tt.types.Resolve()
			assert.Equal(t, tt.category, cat)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "Summary judgment", TypeSummaryJudgement.DisplayLabel())
	assert.Equal(t, "Vary order or judgment", TypeVaryOrder.DisplayLabel())
	assert.Equal(t, "SOMETHING_NEW", ApplicationType("SOMETHING_NEW").DisplayLabel())
}

func TestResolvedLabel(t *testing.T) {
	s := TypeSet{TypeStrikeOut, TypeSetAsideJudgement}
	assert.Equal(t, "Set aside judgment", s.ResolvedLabel())
}
