package statements

import (
	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// BalanceSheet renders the balance sheet fragment. Balance sheet values
// are point-in-time facts, so every line is tagged against the instant
// contexts. Micro entities file a condensed format without the
// debtors/cash analysis of current assets.
func BalanceSheet(fc accounts.FilingContext, tier sizing.Tier, rec accounts.BalanceSheetRecord, prior *accounts.BalanceSheetRecord) string {
	f := newFragment(fc, prior != nil)
	f.open("balance-sheet", "Balance Sheet")
	f.writef("<p class=\"as-at\">As at %s</p>", ixbrl.Date(fc.BalanceSheetDate, conceptBalanceSheetDate, ixbrl.CtxCurrentInstant))

	cur, pri := ixbrl.CtxCurrentInstant, ixbrl.CtxPriorInstant
	micro := tier == sizing.TierMicro

	f.openTable()
	f.moneyRow("Fixed assets", conceptFixedAssets, cur, pri, rec.FixedAssets.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.FixedAssets }), false)
	f.moneyRow("Current assets", conceptCurrentAssets, cur, pri, rec.CurrentAssets.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.CurrentAssets }), false)
	if !micro {
		f.moneyRow("Debtors", conceptDebtors, cur, pri, rec.Debtors.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.Debtors }), false)
		f.moneyRow("Cash at bank and in hand", conceptCashBankOnHand, cur, pri, rec.CashAtBank.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.CashAtBank }), false)
	}
	f.moneyRow("Creditors: amounts falling due within one year", conceptCreditorsWithinOneYear, cur, pri, rec.CreditorsDueWithinOneYear.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.CreditorsDueWithinOneYear }), false)
	f.moneyRow("Net current assets", conceptNetCurrentAssets, cur, pri, rec.NetCurrentAssets.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.NetCurrentAssets }), true)
	f.moneyRow("Creditors: amounts falling due after more than one year", conceptCreditorsAfterOneYear, cur, pri, rec.CreditorsDueAfterOneYear.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.CreditorsDueAfterOneYear }), false)
	f.moneyRow("Net assets", conceptNetAssets, cur, pri, rec.NetAssets.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.NetAssets }), true)
	f.closeTable()

	f.writef("<h3>Capital and reserves</h3>")
	f.openTable()
	f.moneyRow("Called up share capital", conceptShareCapital, cur, pri, rec.ShareCapital.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.ShareCapital }), false)
	f.moneyRow("Profit and loss account", conceptRetainedEarnings, cur, pri, rec.RetainedEarnings.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.RetainedEarnings }), false)
	f.moneyRow("Total capital and reserves", conceptTotalEquity, cur, pri, rec.TotalCapitalAndReserves.Amount, priorLine(prior, func(r accounts.BalanceSheetRecord) accounts.LineItem { return r.TotalCapitalAndReserves }), true)
	f.closeTable()

	if micro {
		f.para("These accounts have been prepared in accordance with the micro-entity provisions.")
	}

	f.close()
	return f.String()
}

// priorLine extracts the comparative amount for one balance sheet line.
func priorLine(prior *accounts.BalanceSheetRecord, pick func(accounts.BalanceSheetRecord) accounts.LineItem) *float64 {
	if prior == nil {
		return nil
	}
	item := pick(*prior)
	return amount(&item)
}
