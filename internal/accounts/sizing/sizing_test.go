package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySingleYearMicro(t *testing.T) {
	res := Classify(Metrics{Turnover: 500_000, BalanceSheetTotal: 300_000, Employees: 5}, nil)
	assert.Equal(t, TierMicro, res.Tier)
	assert.False(t, res.AuditRequired)
	assert.True(t, res.AbridgedEligible)
	assert.True(t, res.MicroFormatEligible)
}

func TestClassifyTwoOfThreeRule(t *testing.T) {
	// Employees well over the micro threshold, but turnover and balance
	// sheet both under: two of three criteria met keeps the entity micro.
	res := Classify(Metrics{Turnover: 500_000, BalanceSheetTotal: 300_000, Employees: 60}, nil)
	assert.Equal(t, TierMicro, res.Tier)

	breakdown := res.Breakdown[TierMicro]
	assert.True(t, breakdown.Turnover)
	assert.True(t, breakdown.BalanceSheet)
	assert.False(t, breakdown.Employees)
	assert.Equal(t, 2, breakdown.Met())
}

func TestClassifyOneOfThreeFallsThrough(t *testing.T) {
	// Only turnover under the micro threshold: drops to the next band.
	res := Classify(Metrics{Turnover: 500_000, BalanceSheetTotal: 4_000_000, Employees: 40}, nil)
	assert.Equal(t, TierSmall, res.Tier)
}

func TestClassifySingleYearBands(t *testing.T) {
	cases := []struct {
		name    string
		metrics Metrics
		want    Tier
	}{
		{"small", Metrics{Turnover: 9_000_000, BalanceSheetTotal: 4_000_000, Employees: 45}, TierSmall},
		{"medium", Metrics{Turnover: 30_000_000, BalanceSheetTotal: 15_000_000, Employees: 200}, TierMedium},
		{"large", Metrics{Turnover: 50_000_000, BalanceSheetTotal: 40_000_000, Employees: 400}, TierLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Classify(tc.metrics, nil)
			assert.Equal(t, tc.want, res.Tier)
		})
	}
}

func TestClassifyTwoYearConsistency(t *testing.T) {
	small := Metrics{Turnover: 8_000_000, BalanceSheetTotal: 4_000_000, Employees: 40}
	medium := Metrics{Turnover: 30_000_000, BalanceSheetTotal: 15_000_000, Employees: 200}

	// Small this year but medium last year: no band is held for two
	// consecutive years, so the entity is large.
	res := Classify(small, &medium)
	assert.Equal(t, TierLarge, res.Tier)
	assert.True(t, res.AuditRequired)

	// Small in both consecutive years keeps the small classification.
	res = Classify(small, &small)
	assert.Equal(t, TierSmall, res.Tier)
	assert.False(t, res.AuditRequired)
	assert.True(t, res.AbridgedEligible)
	assert.False(t, res.MicroFormatEligible)
}

func TestClassifyQualifyingTiers(t *testing.T) {
	res := Classify(Metrics{Turnover: 500_000, BalanceSheetTotal: 300_000, Employees: 5}, nil)
	// Micro metrics satisfy every smaller band's thresholds.
	require.Equal(t, []Tier{TierMicro, TierSmall, TierMedium}, res.QualifyingTiers)
}

func TestClassifyAuditDerivations(t *testing.T) {
	medium := Classify(Metrics{Turnover: 30_000_000, BalanceSheetTotal: 15_000_000, Employees: 200}, nil)
	assert.True(t, medium.AuditRequired)
	assert.False(t, medium.AbridgedEligible)
	assert.False(t, medium.MicroFormatEligible)

	micro := Classify(Metrics{Turnover: 100_000, BalanceSheetTotal: 50_000, Employees: 2}, nil)
	assert.False(t, micro.AuditRequired)
}
