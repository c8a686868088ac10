package statements

import (
	"strings"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// DirectorsReport renders the directors' report fragment. The audit
// exemption statement appears only when the exemption flag is set;
// optional narrative sections are omitted when absent. Missing
// mandatory content degrades to a placeholder so a draft can still be
// previewed; the orchestrator's validation decides submittability.
func DirectorsReport(fc accounts.FilingContext, tier sizing.Tier, rec accounts.DirectorsReportRecord) string {
	f := newFragment(fc, false)
	f.open("directors-report", "Directors' Report")
	f.writef("<p class=\"period\">For the year ended %s</p>", ixbrl.FormatDate(fc.PeriodEnd))

	activity := rec.PrincipalActivity
	if strings.TrimSpace(activity) == "" {
		activity = placeholder
	}
	f.writef("<h3>Principal activity</h3>")
	f.writef("<p>%s</p>", ixbrl.Text(activity, conceptPrincipalActivity, ixbrl.CtxCurrentPeriod))

	f.writef("<h3>Directors</h3>")
	f.writef("<p>The directors who held office during the year were:</p>")
	f.write("<ul>")
	if len(rec.Directors) == 0 {
		f.writef("<li>%s</li>", ixbrl.Escape(placeholder))
	}
	for _, d := range rec.Directors {
		var notes []string
		if d.AppointedOn != nil {
			notes = append(notes, "appointed "+ixbrl.FormatDate(*d.AppointedOn))
		}
		if d.ResignedOn != nil {
			notes = append(notes, "resigned "+ixbrl.FormatDate(*d.ResignedOn))
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + ixbrl.Escape(strings.Join(notes, ", ")) + ")"
		}
		f.writef("<li>%s%s</li>", ixbrl.Text(d.Name, conceptDirectorName, ixbrl.CtxCurrentPeriod), suffix)
	}
	f.write("</ul>")

	f.narrative("Business review", "uk-core:BusinessReviewOrOperatingFinancialReview", ixbrl.CtxCurrentPeriod, rec.BusinessReview)
	f.narrative("Key performance indicators", "uk-core:KeyPerformanceIndicatorsDescription", ixbrl.CtxCurrentPeriod, rec.KeyPerformance)
	f.narrative("Principal risks and uncertainties", "uk-core:PrincipalRisksUncertainties", ixbrl.CtxCurrentPeriod, rec.PrincipalRisks)
	f.narrative("Future developments", "uk-core:FutureDevelopments", ixbrl.CtxCurrentPeriod, rec.FutureDevelopments)
	f.narrative("Research and development", "uk-core:ResearchDevelopmentActivities", ixbrl.CtxCurrentPeriod, rec.ResearchDevelopment)

	if rec.DividendsPaid != nil || rec.DividendsProposed != nil {
		f.writef("<h3>Dividends</h3>")
		f.openTable()
		if rec.DividendsPaid != nil {
			f.moneyRow("Dividends paid during the year", conceptDividendsPaid, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.DividendsPaid.Amount, nil, false)
		}
		if rec.DividendsProposed != nil {
			f.moneyRow("Dividends proposed", conceptDividendsProposed, ixbrl.CtxCurrentPeriod, ixbrl.CtxPriorPeriod, rec.DividendsProposed.Amount, nil, false)
		}
		f.closeTable()
	}

	if rec.AuditExempt {
		f.writef("<h3>Audit exemption</h3>")
		reason := rec.AuditExemptReason
		if strings.TrimSpace(reason) == "" {
			reason = "For the year ending " + ixbrl.FormatDate(fc.PeriodEnd) +
				" the company was entitled to exemption from audit under section 477 of the Companies Act 2006 relating to small companies."
		}
		f.para(reason)
		f.para("The members have not required the company to obtain an audit of its accounts for the year in question in accordance with section 476.")
		f.para("The directors acknowledge their responsibilities for complying with the requirements of the Act with respect to accounting records and the preparation of accounts.")
	}

	if rec.SmallCompanyRegime || tier == sizing.TierSmall || tier == sizing.TierMicro {
		f.para("This report has been prepared in accordance with the provisions applicable to companies entitled to the small companies regime.")
	}

	f.writef("<h3>Approval</h3>")
	if rec.ApprovalDate.IsZero() {
		f.para("Approved by the board on " + placeholder)
	} else {
		f.writef("<p>Approved by the board on %s and signed on its behalf by:</p>",
			ixbrl.Date(rec.ApprovalDate, conceptApprovalDate, ixbrl.CtxCurrentPeriod))
	}
	approver := rec.ApprovedBy
	if strings.TrimSpace(approver) == "" {
		approver = placeholder
	}
	role := rec.ApproverRole
	if strings.TrimSpace(role) == "" {
		role = "Director"
	}
	f.writef("<p class=\"signature\">%s, %s</p>",
		ixbrl.Text(approver, conceptApprovingDirector, ixbrl.CtxCurrentPeriod), ixbrl.Escape(role))

	f.close()
	return f.String()
}
