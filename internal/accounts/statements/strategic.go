package statements

import (
	"strings"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// StrategicReport renders the strategic report fragment, required for
// large companies only. Inclusion is decided by the orchestrator; this
// generator assumes it was asked for a reason.
func StrategicReport(fc accounts.FilingContext, _ sizing.Tier, rec accounts.StrategicReportRecord) string {
	f := newFragment(fc, false)
	f.open("strategic-report", "Strategic Report")
	f.writef("<p class=\"period\">For the year ended %s</p>", ixbrl.FormatDate(fc.PeriodEnd))

	model := rec.BusinessModel
	if strings.TrimSpace(model) == "" {
		model = placeholder
	}
	f.writef("<h3>Business model</h3>")
	f.writef("<p>%s</p>", ixbrl.Text(model, "uk-core:DescriptionBusinessModel", ixbrl.CtxCurrentPeriod))

	f.narrative("Strategy and objectives", "uk-core:StatementOnStrategyObjectives", ixbrl.CtxCurrentPeriod, rec.StrategyObjectives)
	f.narrative("Key performance indicators", "uk-core:KeyPerformanceIndicatorsDescription", ixbrl.CtxCurrentPeriod, rec.KeyPerformance)
	f.narrative("Principal risks and uncertainties", "uk-core:PrincipalRisksUncertainties", ixbrl.CtxCurrentPeriod, rec.PrincipalRisks)

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
	f.writef("<p class=\"signature\">%s, Director</p>", ixbrl.Text(approver, conceptApprovingDirector, ixbrl.CtxCurrentPeriod))

	f.close()
	return f.String()
}
