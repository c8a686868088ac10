// Package sizing classifies an entity into one of the four legal size
// tiers (micro, small, medium, large) from its turnover, balance-sheet
// total, and average employee count. Classification drives which
// statements and notes the generator must include and whether an audit
// is required.
package sizing

// Tier is one of the four legal size classifications.
type Tier string

const (
	TierMicro  Tier = "micro"
	TierSmall  Tier = "small"
	TierMedium Tier = "medium"
	TierLarge  Tier = "large"
)

// Companies Act 2006 thresholds. A band is satisfied when at least two
// of the three criteria hold.
const (
	MicroTurnoverMax     = 632_000
	MicroBalanceSheetMax = 316_000
	MicroEmployeesMax    = 10

	SmallTurnoverMax     = 10_200_000
	SmallBalanceSheetMax = 5_100_000
	SmallEmployeesMax    = 50

	MediumTurnoverMax     = 36_000_000
	MediumBalanceSheetMax = 18_000_000
	MediumEmployeesMax    = 250
)

// Metrics are the three size criteria for one financial year.
type Metrics struct {
	Turnover          float64 `json:"turnover"`
	BalanceSheetTotal float64 `json:"balance_sheet_total"`
	Employees         int     `json:"employees"`
}

// CriteriaBreakdown reports which of the three criteria an entity meets
// for one band.
type CriteriaBreakdown struct {
	Turnover     bool `json:"turnover"`
	BalanceSheet bool `json:"balance_sheet"`
	Employees    bool `json:"employees"`
}

// Met counts how many criteria hold.
func (b CriteriaBreakdown) Met() int {
	n := 0
	if b.Turnover {
		n++
	}
	if b.BalanceSheet {
		n++
	}
	if b.Employees {
		n++
	}
	return n
}

// Result is the outcome of a classification run. Computed once per
// filing and treated as read-only input by every statement generator.
type Result struct {
	Tier                Tier                       `json:"tier"`
	QualifyingTiers     []Tier                     `json:"qualifying_tiers"`
	Breakdown           map[Tier]CriteriaBreakdown `json:"breakdown"`
	AuditRequired       bool                       `json:"audit_required"`
	AbridgedEligible    bool                       `json:"abridged_eligible"`
	MicroFormatEligible bool                       `json:"micro_format_eligible"`
}

type band struct {
	tier         Tier
	turnover     float64
	balanceSheet float64
	employees    int
}

var bands = []band{
	{TierMicro, MicroTurnoverMax, MicroBalanceSheetMax, MicroEmployeesMax},
	{TierSmall, SmallTurnoverMax, SmallBalanceSheetMax, SmallEmployeesMax},
	{TierMedium, MediumTurnoverMax, MediumBalanceSheetMax, MediumEmployeesMax},
}

func (b band) evaluate(m Metrics) CriteriaBreakdown {
	return CriteriaBreakdown{
		Turnover:     m.Turnover <= b.turnover,
		BalanceSheet: m.BalanceSheetTotal <= b.balanceSheet,
		Employees:    m.Employees <= b.employees,
	}
}

// yearBand returns the smallest band a single year of metrics
// satisfies under the 2-of-3 rule, falling back to large.
func yearBand(m Metrics) Tier {
	for _, b := range bands {
		if b.evaluate(m).Met() >= 2 {
			return b.tier
		}
	}
	return TierLarge
}

// Classify determines the entity size tier. A year's qualification is
// the smallest band it satisfies; with two years of metrics the entity
// keeps a band only when both consecutive years land on it, otherwise
// it classifies as large. A single year of data is evaluated for that
// year alone.
func Classify(current Metrics, previous *Metrics) Result {
	tier := yearBand(current)
	if previous != nil && tier != yearBand(*previous) {
		tier = TierLarge
	}

	var list []Tier
	for _, b := range bands {
		if b.evaluate(current).Met() >= 2 {
			list = append(list, b.tier)
		}
	}

	breakdown := make(map[Tier]CriteriaBreakdown, len(bands))
	for _, b := range bands {
		breakdown[b.tier] = b.evaluate(current)
	}

	return Result{
		Tier:                tier,
		QualifyingTiers:     list,
		Breakdown:           breakdown,
		AuditRequired:       tier == TierMedium || tier == TierLarge,
		AbridgedEligible:    tier == TierMicro || tier == TierSmall,
		MicroFormatEligible: tier == TierMicro,
	}
}
