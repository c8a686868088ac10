package statements

import (
	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// ProfitLoss renders the profit and loss account fragment. Income
// statement values are duration facts tagged against the period
// contexts. Micro entities omit the analysis between gross profit and
// operating profit.
func ProfitLoss(fc accounts.FilingContext, tier sizing.Tier, rec accounts.ProfitLossRecord, prior *accounts.ProfitLossRecord) string {
	f := newFragment(fc, prior != nil)
	f.open("profit-and-loss", "Profit and Loss Account")
	f.writef("<p class=\"period\">For the period %s to %s</p>",
		ixbrl.Date(fc.PeriodStart, conceptPeriodStart, ixbrl.CtxCurrentPeriod),
		ixbrl.Date(fc.PeriodEnd, conceptPeriodEnd, ixbrl.CtxCurrentPeriod))

	cur, pri := ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod
	micro := tier == sizing.TierMicro

	f.openTable()
	f.moneyRow("Turnover", conceptTurnover, cur, pri, rec.Turnover.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.Turnover }), false)
	if !micro {
		f.moneyRow("Cost of sales", conceptCostOfSales, cur, pri, rec.CostOfSales.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.CostOfSales }), false)
		f.moneyRow("Gross profit", conceptGrossProfit, cur, pri, rec.GrossProfit.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.GrossProfit }), true)
		f.moneyRow("Administrative expenses", conceptAdminExpenses, cur, pri, rec.AdministrativeExpenses.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.AdministrativeExpenses }), false)
		if rec.OtherOperatingIncome.Amount != 0 {
			f.moneyRow("Other operating income", conceptOtherOperatingIncome, cur, pri, rec.OtherOperatingIncome.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.OtherOperatingIncome }), false)
		}
	}
	f.moneyRow("Operating profit", conceptOperatingProfit, cur, pri, rec.OperatingProfit.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.OperatingProfit }), true)
	if rec.InterestReceivable.Amount != 0 {
		f.moneyRow("Interest receivable and similar income", conceptInterestReceivable, cur, pri, rec.InterestReceivable.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.InterestReceivable }), false)
	}
	if rec.InterestPayable.Amount != 0 {
		f.moneyRow("Interest payable and similar charges", conceptInterestPayable, cur, pri, rec.InterestPayable.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.InterestPayable }), false)
	}
	f.moneyRow("Profit on ordinary activities before taxation", conceptProfitBeforeTax, cur, pri, rec.ProfitBeforeTax.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.ProfitBeforeTax }), true)
	f.moneyRow("Tax on profit", conceptTaxOnProfit, cur, pri, rec.Tax.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.Tax }), false)
	f.moneyRow("Profit for the financial year", conceptProfitForYear, cur, pri, rec.ProfitForYear.Amount, plPrior(prior, func(r accounts.ProfitLossRecord) accounts.LineItem { return r.ProfitForYear }), true)
	f.closeTable()

	f.close()
	return f.String()
}

func plPrior(prior *accounts.ProfitLossRecord, pick func(accounts.ProfitLossRecord) accounts.LineItem) *float64 {
	if prior == nil {
		return nil
	}
	item := pick(*prior)
	return amount(&item)
}
