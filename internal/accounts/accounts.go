// Package accounts defines the data model consumed by the statutory
// accounts generator: the filing context shared by every statement,
// the per-statement records, and the aggregate filing package.
package accounts

import "time"

// FilingContext carries company identity and the accounting period for
// one generation run. It is immutable for the life of the run and is
// shared by every statement generator.
type FilingContext struct {
	CompanyName        string    `json:"company_name"`
	RegistrationNumber string    `json:"registration_number"`
	PeriodStart        time.Time `json:"period_start"`
	PeriodEnd          time.Time `json:"period_end"`
	BalanceSheetDate   time.Time `json:"balance_sheet_date"`
	Currency           string    `json:"currency"`
}

// RegistrationNumberLength is the fixed length of a company
// registration number.
const RegistrationNumberLength = 8

// LineItem is one named amount on a statement. Editable distinguishes
// preparer-entered lines from computed subtotals.
type LineItem struct {
	Amount   float64 `json:"amount"`
	Editable bool    `json:"editable"`
}

// Entered builds a preparer-entered line item.
func Entered(amount float64) LineItem {
	return LineItem{Amount: amount, Editable: true}
}

// Computed builds a computed subtotal line item.
func Computed(amount float64) LineItem {
	return LineItem{Amount: amount, Editable: false}
}

// BalanceSheetRecord holds the named line items of the balance sheet.
type BalanceSheetRecord struct {
	FixedAssets               LineItem `json:"fixed_assets"`
	CurrentAssets             LineItem `json:"current_assets"`
	Debtors                   LineItem `json:"debtors"`
	CashAtBank                LineItem `json:"cash_at_bank"`
	CreditorsDueWithinOneYear LineItem `json:"creditors_due_within_one_year"`
	CreditorsDueAfterOneYear  LineItem `json:"creditors_due_after_one_year"`
	NetCurrentAssets          LineItem `json:"net_current_assets"`
	NetAssets                 LineItem `json:"net_assets"`
	ShareCapital              LineItem `json:"share_capital"`
	RetainedEarnings          LineItem `json:"retained_earnings"`
	TotalCapitalAndReserves   LineItem `json:"total_capital_and_reserves"`
}

// TotalAssets sums fixed and current assets.
func (r BalanceSheetRecord) TotalAssets() float64 {
	return r.FixedAssets.Amount + r.CurrentAssets.Amount
}

// TotalLiabilities sums creditors due within and after one year.
func (r BalanceSheetRecord) TotalLiabilities() float64 {
	return r.CreditorsDueWithinOneYear.Amount + r.CreditorsDueAfterOneYear.Amount
}

// ProfitLossRecord holds the named line items of the profit and loss
// account.
type ProfitLossRecord struct {
	Turnover               LineItem `json:"turnover"`
	CostOfSales            LineItem `json:"cost_of_sales"`
	GrossProfit            LineItem `json:"gross_profit"`
	AdministrativeExpenses LineItem `json:"administrative_expenses"`
	OtherOperatingIncome   LineItem `json:"other_operating_income"`
	OperatingProfit        LineItem `json:"operating_profit"`
	InterestReceivable     LineItem `json:"interest_receivable"`
	InterestPayable        LineItem `json:"interest_payable"`
	ProfitBeforeTax        LineItem `json:"profit_before_tax"`
	Tax                    LineItem `json:"tax"`
	ProfitForYear          LineItem `json:"profit_for_year"`
}

// CashFlowRecord holds the named line items of the cash flow statement.
type CashFlowRecord struct {
	NetCashFromOperating LineItem `json:"net_cash_from_operating"`
	NetCashFromInvesting LineItem `json:"net_cash_from_investing"`
	NetCashFromFinancing LineItem `json:"net_cash_from_financing"`
	NetChangeInCash      LineItem `json:"net_change_in_cash"`
	CashAtStart          LineItem `json:"cash_at_start"`
	CashAtEnd            LineItem `json:"cash_at_end"`
}

// Director is one entry in the directors' report.
type Director struct {
	Name        string     `json:"name"`
	AppointedOn *time.Time `json:"appointed_on,omitempty"`
	ResignedOn  *time.Time `json:"resigned_on,omitempty"`
}

// DirectorsReportRecord holds the directors' report content.
type DirectorsReportRecord struct {
	Directors           []Director `json:"directors"`
	PrincipalActivity   string     `json:"principal_activity"`
	BusinessReview      string     `json:"business_review,omitempty"`
	KeyPerformance      string     `json:"key_performance,omitempty"`
	PrincipalRisks      string     `json:"principal_risks,omitempty"`
	FutureDevelopments  string     `json:"future_developments,omitempty"`
	ResearchDevelopment string     `json:"research_development,omitempty"`
	DividendsPaid       *LineItem  `json:"dividends_paid,omitempty"`
	DividendsProposed   *LineItem  `json:"dividends_proposed,omitempty"`
	AuditExempt         bool       `json:"audit_exempt"`
	AuditExemptReason   string     `json:"audit_exempt_reason,omitempty"`
	SmallCompanyRegime  bool       `json:"small_company_regime"`
	ApprovalDate        time.Time  `json:"approval_date"`
	ApprovedBy          string     `json:"approved_by"`
	ApproverRole        string     `json:"approver_role"`
}

// StrategicReportRecord holds the strategic report narrative, required
// for large companies only.
type StrategicReportRecord struct {
	BusinessModel      string    `json:"business_model"`
	StrategyObjectives string    `json:"strategy_objectives,omitempty"`
	KeyPerformance     string    `json:"key_performance,omitempty"`
	PrincipalRisks     string    `json:"principal_risks,omitempty"`
	ApprovalDate       time.Time `json:"approval_date"`
	ApprovedBy         string    `json:"approved_by"`
}

// AccountingPolicies describes the framework and recognition policies
// disclosed in the first note.
type AccountingPolicies struct {
	Framework             string `json:"framework"`
	GoingConcern          string `json:"going_concern,omitempty"`
	TurnoverPolicy        string `json:"turnover_policy,omitempty"`
	TangibleAssetsPolicy  string `json:"tangible_assets_policy,omitempty"`
	DepreciationPolicy    string `json:"depreciation_policy,omitempty"`
	StocksPolicy          string `json:"stocks_policy,omitempty"`
	DeferredTaxPolicy     string `json:"deferred_tax_policy,omitempty"`
	ForeignCurrencyPolicy string `json:"foreign_currency_policy,omitempty"`
}

// EmployeeNote discloses average headcount and staff costs.
type EmployeeNote struct {
	AverageEmployees int       `json:"average_employees"`
	WagesAndSalaries *LineItem `json:"wages_and_salaries,omitempty"`
	SocialSecurity   *LineItem `json:"social_security,omitempty"`
	PensionCosts     *LineItem `json:"pension_costs,omitempty"`
}

// RemunerationNote discloses directors' remuneration.
type RemunerationNote struct {
	Remuneration LineItem  `json:"remuneration"`
	Pension      *LineItem `json:"pension,omitempty"`
}

// BreakdownEntry is one labelled amount in a supplementary breakdown
// note (asset classes, debtors, creditors, share classes).
type BreakdownEntry struct {
	Label  string   `json:"label"`
	Amount LineItem `json:"amount"`
}

// NotesRecord holds the accounting policies plus the open set of
// optional supplementary notes.
type NotesRecord struct {
	Policies                AccountingPolicies `json:"policies"`
	Employees               *EmployeeNote      `json:"employees,omitempty"`
	DirectorsRemuneration   *RemunerationNote  `json:"directors_remuneration,omitempty"`
	TangibleAssets          []BreakdownEntry   `json:"tangible_assets,omitempty"`
	Debtors                 []BreakdownEntry   `json:"debtors,omitempty"`
	Creditors               []BreakdownEntry   `json:"creditors,omitempty"`
	ShareCapital            []BreakdownEntry   `json:"share_capital,omitempty"`
	RelatedPartyTransaction string             `json:"related_party_transaction,omitempty"`
	PostBalanceSheetEvents  string             `json:"post_balance_sheet_events,omitempty"`
	ControllingParty        string             `json:"controlling_party,omitempty"`
}
