package statements

import (
	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// CashFlow renders the cash flow statement fragment. Flow lines are
// duration facts; the opening and closing cash positions are instant
// facts. The opening position belongs to the prior instant, so it is
// only tagged when that context is declared (comparatives supplied) and
// otherwise renders as plain text.
func CashFlow(fc accounts.FilingContext, _ sizing.Tier, rec accounts.CashFlowRecord, prior *accounts.CashFlowRecord) string {
	f := newFragment(fc, prior != nil)
	f.open("cash-flow", "Cash Flow Statement")
	f.writef("<p class=\"period\">For the year ended %s</p>", ixbrl.FormatDate(fc.PeriodEnd))

	cur, pri := ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod

	f.openTable()
	f.moneyRow("Net cash generated from operating activities", conceptCashFromOperating, cur, pri, rec.NetCashFromOperating.Amount, cfPrior(prior, func(r accounts.CashFlowRecord) accounts.LineItem { return r.NetCashFromOperating }), false)
	f.moneyRow("Net cash used in investing activities", conceptCashFromInvesting, cur, pri, rec.NetCashFromInvesting.Amount, cfPrior(prior, func(r accounts.CashFlowRecord) accounts.LineItem { return r.NetCashFromInvesting }), false)
	f.moneyRow("Net cash used in financing activities", conceptCashFromFinancing, cur, pri, rec.NetCashFromFinancing.Amount, cfPrior(prior, func(r accounts.CashFlowRecord) accounts.LineItem { return r.NetCashFromFinancing }), false)
	f.moneyRow("Net increase in cash and cash equivalents", conceptNetCashChange, cur, pri, rec.NetChangeInCash.Amount, cfPrior(prior, func(r accounts.CashFlowRecord) accounts.LineItem { return r.NetChangeInCash }), true)

	if prior != nil {
		f.moneyRow("Cash and cash equivalents at beginning of year", conceptCashAtStart, ixbrl.CtxPriorInstant, ixbrl.CtxPriorInstant, rec.CashAtStart.Amount, nil, false)
	} else {
		f.writef("<tr><td>Cash and cash equivalents at beginning of year</td><td class=\"num\">%s</td></tr>",
			ixbrl.FormatNumber(rec.CashAtStart.Amount, moneyDecimals))
	}
	f.moneyRow("Cash and cash equivalents at end of year", conceptCashAtEnd, ixbrl.CtxCurrentInstant, ixbrl.CtxPriorInstant, rec.CashAtEnd.Amount, nil, true)
	f.closeTable()

	f.close()
	return f.String()
}

func cfPrior(prior *accounts.CashFlowRecord, pick func(accounts.CashFlowRecord) accounts.LineItem) *float64 {
	if prior == nil {
		return nil
	}
	item := pick(*prior)
	return amount(&item)
}
