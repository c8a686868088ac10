package accounts

import "github.com/filingforge/filingforge/internal/accounts/sizing"

// FilingPackage is the aggregate input for one filing attempt. The
// caller assembles it once; the generator consumes it as a value and
// never mutates it. Prior-year records are optional and, when present,
// drive comparative columns.
type FilingPackage struct {
	Context FilingContext `json:"context"`
	Size    sizing.Result `json:"size"`

	BalanceSheet      BalanceSheetRecord  `json:"balance_sheet"`
	PriorBalanceSheet *BalanceSheetRecord `json:"prior_balance_sheet,omitempty"`

	ProfitLoss      ProfitLossRecord  `json:"profit_loss"`
	PriorProfitLoss *ProfitLossRecord `json:"prior_profit_loss,omitempty"`

	CashFlow      *CashFlowRecord `json:"cash_flow,omitempty"`
	PriorCashFlow *CashFlowRecord `json:"prior_cash_flow,omitempty"`

	Directors DirectorsReportRecord  `json:"directors"`
	Strategic *StrategicReportRecord `json:"strategic,omitempty"`
	Notes     NotesRecord            `json:"notes"`
}

// HasComparatives reports whether any prior-year record was supplied.
// Each statement renders its comparative column only from its own prior
// record, but the prior contexts must be declared whenever any
// statement will reference them.
func (p FilingPackage) HasComparatives() bool {
	return p.PriorBalanceSheet != nil || p.PriorProfitLoss != nil || p.PriorCashFlow != nil
}
