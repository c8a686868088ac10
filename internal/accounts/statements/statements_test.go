package statements

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

func testContext() accounts.FilingContext {
	return accounts.FilingContext{
		CompanyName:        "Widget Trading Ltd",
		RegistrationNumber: "12345678",
		PeriodStart:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:          time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		BalanceSheetDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Currency:           "GBP",
	}
}

func testBalanceSheet() accounts.BalanceSheetRecord {
	return accounts.BalanceSheetRecord{
		FixedAssets:               accounts.Entered(50_000),
		CurrentAssets:             accounts.Entered(120_000),
		Debtors:                   accounts.Entered(40_000),
		CashAtBank:                accounts.Entered(80_000),
		CreditorsDueWithinOneYear: accounts.Entered(60_000),
		CreditorsDueAfterOneYear:  accounts.Entered(0),
		NetCurrentAssets:          accounts.Computed(60_000),
		NetAssets:                 accounts.Computed(110_000),
		ShareCapital:              accounts.Entered(1_000),
		RetainedEarnings:          accounts.Entered(109_000),
		TotalCapitalAndReserves:   accounts.Computed(110_000),
	}
}

func TestBalanceSheetFragment(t *testing.T) {
	frag := BalanceSheet(testContext(), sizing.TierSmall, testBalanceSheet(), nil)

	assert.Contains(t, frag, `id="balance-sheet"`)
	assert.Contains(t, frag, `name="uk-core:FixedAssets"`)
	assert.Contains(t, frag, ">50,000<")
	assert.Contains(t, frag, `name="uk-core:Debtors"`)
	assert.Contains(t, frag, `name="uk-core:Equity"`)
	assert.Contains(t, frag, ">110,000<")
	// Single year: no prior context should appear anywhere.
	assert.NotContains(t, frag, "prior-instant")
}

func TestBalanceSheetMicroCondensed(t *testing.T) {
	frag := BalanceSheet(testContext(), sizing.TierMicro, testBalanceSheet(), nil)

	assert.NotContains(t, frag, `name="uk-core:Debtors"`)
	assert.NotContains(t, frag, `name="uk-core:CashBankOnHand"`)
	assert.Contains(t, frag, "micro-entity provisions")
}

func TestBalanceSheetComparatives(t *testing.T) {
	prior := testBalanceSheet()
	prior.FixedAssets = accounts.Entered(45_000)

	frag := BalanceSheet(testContext(), sizing.TierSmall, testBalanceSheet(), &prior)

	// Every comparative line carries the same concept under both contexts.
	assert.Equal(t, 2, strings.Count(frag, `name="uk-core:FixedAssets"`))
	assert.Contains(t, frag, `contextRef="cur-instant"`)
	assert.Contains(t, frag, `contextRef="prior-instant"`)
	assert.Contains(t, frag, ">45,000<")
	assert.Contains(t, frag, "<th>2024<br/>GBP</th><th>2023<br/>GBP</th>")
}

func TestProfitLossFragment(t *testing.T) {
	rec := accounts.ProfitLossRecord{
		Turnover:               accounts.Entered(500_000),
		CostOfSales:            accounts.Entered(-200_000),
		GrossProfit:            accounts.Computed(300_000),
		AdministrativeExpenses: accounts.Entered(-150_000),
		OperatingProfit:        accounts.Computed(150_000),
		ProfitBeforeTax:        accounts.Computed(150_000),
		Tax:                    accounts.Entered(-28_500),
		ProfitForYear:          accounts.Computed(121_500),
	}

	frag := ProfitLoss(testContext(), sizing.TierSmall, rec, nil)

	assert.Contains(t, frag, `name="uk-core:TurnoverRevenue"`)
	assert.Contains(t, frag, `contextRef="cur-period"`)
	assert.Contains(t, frag, ">(200,000)<")
	assert.Contains(t, frag, ">121,500<")
	// Zero optional lines stay out of the fragment.
	assert.NotContains(t, frag, "Other operating income")
	assert.NotContains(t, frag, "Interest payable")
}

func TestProfitLossMicroOmitsAnalysis(t *testing.T) {
	rec := accounts.ProfitLossRecord{
		Turnover:        accounts.Entered(90_000),
		OperatingProfit: accounts.Computed(20_000),
		ProfitBeforeTax: accounts.Computed(20_000),
		ProfitForYear:   accounts.Computed(16_000),
	}

	frag := ProfitLoss(testContext(), sizing.TierMicro, rec, nil)

	assert.Contains(t, frag, `name="uk-core:TurnoverRevenue"`)
	assert.NotContains(t, frag, `name="uk-core:CostSales"`)
	assert.NotContains(t, frag, `name="uk-core:GrossProfitLoss"`)
}

func TestCashFlowFragment(t *testing.T) {
	rec := accounts.CashFlowRecord{
		NetCashFromOperating: accounts.Entered(70_000),
		NetCashFromInvesting: accounts.Entered(-20_000),
		NetCashFromFinancing: accounts.Entered(-10_000),
		NetChangeInCash:      accounts.Computed(40_000),
		CashAtStart:          accounts.Entered(40_000),
		CashAtEnd:            accounts.Computed(80_000),
	}

	frag := CashFlow(testContext(), sizing.TierMedium, rec, nil)

	assert.Contains(t, frag, `name="uk-core:NetCashGeneratedFromOperations"`)
	assert.Contains(t, frag, ">(20,000)<")
	// Opening cash belongs to the prior instant; without comparatives it
	// renders untagged.
	assert.NotContains(t, frag, "prior-instant")
	assert.Contains(t, frag, "beginning of year")
}

func TestDirectorsReportFragment(t *testing.T) {
	appointed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := accounts.DirectorsReportRecord{
		Directors: []accounts.Director{
			{Name: "Jane Smith"},
			{Name: "John Doe", AppointedOn: &appointed},
		},
		PrincipalActivity: "Retail of widgets",
		AuditExempt:       true,
		ApprovalDate:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		ApprovedBy:        "Jane Smith",
		ApproverRole:      "Director",
	}

	frag := DirectorsReport(testContext(), sizing.TierSmall, rec)

	assert.Contains(t, frag, "Retail of widgets")
	assert.Contains(t, frag, "Jane Smith")
	assert.Contains(t, frag, "appointed 1 March 2024")
	assert.Contains(t, frag, "section 477 of the Companies Act 2006")
	assert.Contains(t, frag, "small companies regime")
	assert.Contains(t, frag, ">15 March 2025<")
}

func TestDirectorsReportNoAuditExemptionNarrative(t *testing.T) {
	rec := accounts.DirectorsReportRecord{
		Directors:         []accounts.Director{{Name: "Jane Smith"}},
		PrincipalActivity: "Manufacturing",
		AuditExempt:       false,
		ApprovalDate:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		ApprovedBy:        "Jane Smith",
	}

	frag := DirectorsReport(testContext(), sizing.TierLarge, rec)
	assert.NotContains(t, frag, "section 477")
	assert.NotContains(t, frag, "small companies regime")
}

func TestDirectorsReportDegradesToPlaceholder(t *testing.T) {
	frag := DirectorsReport(testContext(), sizing.TierSmall, accounts.DirectorsReportRecord{})
	// Missing mandatory content surfaces a placeholder, never an error;
	// submittability is decided by the orchestrator's validation.
	require.Contains(t, frag, "[not provided]")
}

func TestStrategicReportFragment(t *testing.T) {
	rec := accounts.StrategicReportRecord{
		BusinessModel:  "Vertically integrated widget production",
		PrincipalRisks: "Raw material price volatility",
		ApprovalDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		ApprovedBy:     "Jane Smith",
	}

	frag := StrategicReport(testContext(), sizing.TierLarge, rec)

	assert.Contains(t, frag, `id="strategic-report"`)
	assert.Contains(t, frag, "Vertically integrated widget production")
	assert.Contains(t, frag, "Raw material price volatility")
	assert.NotContains(t, frag, "Strategy and objectives")
}

func TestNotesTierScaling(t *testing.T) {
	rec := accounts.NotesRecord{
		Policies: accounts.AccountingPolicies{Framework: "FRS 102 Section 1A"},
	}

	micro := Notes(testContext(), sizing.TierMicro, rec)
	assert.Contains(t, micro, "FRS 102 Section 1A")
	assert.NotContains(t, micro, "Employees")

	medium := Notes(testContext(), sizing.TierMedium, rec)
	// Medium companies must disclose employees and remuneration even
	// when the record omits them; placeholders surface the gap.
	assert.Contains(t, medium, "Employees")
	assert.Contains(t, medium, "remuneration")
	assert.Contains(t, medium, "[not provided]")
}

func TestNotesOptionalDisclosures(t *testing.T) {
	rec := accounts.NotesRecord{
		Policies:  accounts.AccountingPolicies{Framework: "FRS 105"},
		Employees: &accounts.EmployeeNote{AverageEmployees: 8},
		Debtors: []accounts.BreakdownEntry{
			{Label: "Trade debtors", Amount: accounts.Entered(30_000)},
			{Label: "Prepayments", Amount: accounts.Entered(10_000)},
		},
		ControllingParty: "Holdings Ltd",
	}

	frag := Notes(testContext(), sizing.TierMicro, rec)

	// Optional notes present in the record are disclosed regardless of tier.
	assert.Contains(t, frag, `name="uk-core:AverageNumberEmployeesDuringPeriod"`)
	assert.Contains(t, frag, "Trade debtors")
	assert.Contains(t, frag, "Holdings Ltd")
}

func TestPolicyFor(t *testing.T) {
	assert.False(t, PolicyFor(sizing.TierMicro).CashFlow)
	assert.False(t, PolicyFor(sizing.TierSmall).StrategicReport)
	assert.True(t, PolicyFor(sizing.TierMedium).CashFlow)
	assert.False(t, PolicyFor(sizing.TierMedium).StrategicReport)
	assert.True(t, PolicyFor(sizing.TierLarge).StrategicReport)
	// Unknown tiers resolve to the most demanding policy.
	assert.True(t, PolicyFor(sizing.Tier("unknown")).StrategicReport)
}
