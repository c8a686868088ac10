package statements

import (
	"fmt"
	"strings"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// Notes renders the accounting policies and supplementary notes
// fragment. The level of mandatory disclosure scales with the size
// tier via PolicyFor; optional notes present in the record are always
// disclosed regardless of tier.
func Notes(fc accounts.FilingContext, tier sizing.Tier, rec accounts.NotesRecord) string {
	policy := PolicyFor(tier)
	f := newFragment(fc, false)
	f.open("notes", "Notes to the Financial Statements")

	noteNo := 1
	writeNote := func(title string, body func()) {
		f.writef("<h3>%d. %s</h3>", noteNo, ixbrl.Escape(title))
		body()
		noteNo++
	}

	writeNote("Accounting policies", func() {
		framework := rec.Policies.Framework
		if strings.TrimSpace(framework) == "" {
			framework = placeholder
		}
		f.writef("<p>The financial statements have been prepared under %s.</p>",
			ixbrl.Text(framework, conceptAccountingFramework, ixbrl.CtxCurrentPeriod))
		if rec.Policies.GoingConcern != "" {
			f.writef("<p>%s</p>", ixbrl.Text(rec.Policies.GoingConcern, conceptGoingConcern, ixbrl.CtxCurrentPeriod))
		}
		policyPara(f, "Turnover", rec.Policies.TurnoverPolicy)
		policyPara(f, "Tangible fixed assets", rec.Policies.TangibleAssetsPolicy)
		policyPara(f, "Depreciation", rec.Policies.DepreciationPolicy)
		policyPara(f, "Stocks", rec.Policies.StocksPolicy)
		policyPara(f, "Deferred taxation", rec.Policies.DeferredTaxPolicy)
		policyPara(f, "Foreign currency", rec.Policies.ForeignCurrencyPolicy)
	})

	if policy.NoteEmployees || rec.Employees != nil {
		writeNote("Employees", func() {
			if rec.Employees == nil {
				f.para("Average number of employees: " + placeholder)
				return
			}
			f.writef("<p>The average number of persons employed by the company during the year was %s.</p>",
				ixbrl.Count(float64(rec.Employees.AverageEmployees), conceptAverageEmployees, ixbrl.CtxCurrentPeriod, 0))
			if rec.Employees.WagesAndSalaries != nil || rec.Employees.SocialSecurity != nil || rec.Employees.PensionCosts != nil {
				f.openTable()
				if rec.Employees.WagesAndSalaries != nil {
					f.moneyRow("Wages and salaries", conceptWagesSalaries, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.Employees.WagesAndSalaries.Amount, nil, false)
				}
				if rec.Employees.SocialSecurity != nil {
					f.moneyRow("Social security costs", conceptSocialSecurityCosts, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.Employees.SocialSecurity.Amount, nil, false)
				}
				if rec.Employees.PensionCosts != nil {
					f.moneyRow("Pension costs", conceptPensionCosts, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.Employees.PensionCosts.Amount, nil, false)
				}
				f.closeTable()
			}
		})
	}

	if policy.NoteRemuneration || rec.DirectorsRemuneration != nil {
		writeNote("Directors' remuneration", func() {
			if rec.DirectorsRemuneration == nil {
				f.para("Directors' remuneration: " + placeholder)
				return
			}
			f.openTable()
			f.moneyRow("Directors' remuneration", conceptDirectorsRemuneration, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.DirectorsRemuneration.Remuneration.Amount, nil, false)
			if rec.DirectorsRemuneration.Pension != nil {
				f.moneyRow("Company pension contributions", conceptPensionCosts, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.DirectorsRemuneration.Pension.Amount, nil, false)
			}
			f.closeTable()
		})
	}

	breakdowns := []struct {
		title   string
		entries []accounts.BreakdownEntry
	}{
		{"Tangible fixed assets", rec.TangibleAssets},
		{"Debtors", rec.Debtors},
		{"Creditors", rec.Creditors},
		{"Share capital", rec.ShareCapital},
	}
	for _, bd := range breakdowns {
		if len(bd.entries) == 0 {
			continue
		}
		entries := bd.entries
		writeNote(bd.title, func() {
			f.write("<table>")
			for _, e := range entries {
				f.writef("<tr><td>%s</td><td class=\"num\">%s</td></tr>",
					ixbrl.Escape(e.Label), ixbrl.Escape(fmt.Sprintf("%s %s", fc.Currency, ixbrl.FormatNumber(e.Amount.Amount, moneyDecimals))))
			}
			f.write("</table>")
		})
	}

	textNotes := []struct {
		title   string
		concept string
		content string
	}{
		{"Related party transactions", "uk-core:RelatedPartyTransactions", rec.RelatedPartyTransaction},
		{"Events after the balance sheet date", "uk-core:EventsAfterBalanceSheetDate", rec.PostBalanceSheetEvents},
		{"Ultimate controlling party", conceptControllingParty, rec.ControllingParty},
	}
	for _, n := range textNotes {
		if strings.TrimSpace(n.content) == "" {
			continue
		}
		note := n
		writeNote(note.title, func() {
			f.writef("<p>%s</p>", ixbrl.Text(note.content, note.concept, ixbrl.CtxCurrentPeriod))
		})
	}

	f.close()
	return f.String()
}

func policyPara(f *fragment, title, policy string) {
	if strings.TrimSpace(policy) == "" {
		return
	}
	f.writef("<p><strong>%s.</strong> %s</p>", ixbrl.Escape(title), ixbrl.Escape(policy))
}
