package filing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
	"github.com/filingforge/filingforge/internal/accounts/statements"
)

// ErrPackagingDefect marks failures that cannot happen with valid
// input: an undeclared context reference, a malformed filename, an
// empty archive. They indicate a generator bug, not a data problem.
var ErrPackagingDefect = errors.New("packaging defect")

// pageBreak separates statement fragments so downstream renderers
// paginate consistently.
const pageBreak = `<div class="page-break"></div>`

const documentStyle = `<style>
body { font-family: serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
td.num { text-align: right; }
tr.subtotal td { border-top: 1px solid #000; font-weight: bold; }
p.signature { margin-top: 2em; font-style: italic; }
.page-break { page-break-after: always; }
</style>`

var contextRefPattern = regexp.MustCompile(`contextRef="([^"]+)"`)

// Compose builds the full tagged document for a filing package: cover
// header, context declarations, then the statement fragments in fixed
// order with page breaks between them. Conditional sections follow the
// tier policy; the strategic report additionally requires a supplied
// record and the cash flow statement a supplied record. Composition
// assumes a validated package; it returns an error only for packaging
// defects.
func Compose(pkg accounts.FilingPackage) (string, error) {
	fc := pkg.Context
	policy := statements.PolicyFor(pkg.Size.Tier)

	var fragments []string
	if policy.StrategicReport && pkg.Strategic != nil {
		fragments = append(fragments, statements.StrategicReport(fc, pkg.Size.Tier, *pkg.Strategic))
	}
	fragments = append(fragments, statements.DirectorsReport(fc, pkg.Size.Tier, pkg.Directors))
	fragments = append(fragments, statements.BalanceSheet(fc, pkg.Size.Tier, pkg.BalanceSheet, pkg.PriorBalanceSheet))
	fragments = append(fragments, statements.ProfitLoss(fc, pkg.Size.Tier, pkg.ProfitLoss, pkg.PriorProfitLoss))
	if policy.CashFlow && pkg.CashFlow != nil {
		fragments = append(fragments, statements.CashFlow(fc, pkg.Size.Tier, *pkg.CashFlow, pkg.PriorCashFlow))
	}
	fragments = append(fragments, statements.Notes(fc, pkg.Size.Tier, pkg.Notes))

	declarations := ixbrl.Declarations(
		fc.RegistrationNumber, fc.Currency,
		fc.PeriodStart, fc.PeriodEnd, fc.BalanceSheetDate,
		pkg.HasComparatives(),
	)

	var b strings.Builder
	b.WriteString("<html xmlns:ix=\"http://www.xbrl.org/2013/inlineXBRL\" xmlns:xbrli=\"http://www.xbrl.org/2003/instance\">\n")
	fmt.Fprintf(&b, "<head><title>%s - Annual Accounts</title>%s</head>\n<body>\n", ixbrl.Escape(fc.CompanyName), documentStyle)
	b.WriteString(declarations)
	b.WriteString(coverPage(fc))
	for _, fragment := range fragments {
		b.WriteString(pageBreak)
		b.WriteString("\n")
		b.WriteString(fragment)
	}
	b.WriteString("</body>\n</html>\n")
	document := b.String()

	if err := checkContextReferences(document, declarations); err != nil {
		return "", err
	}
	return document, nil
}

func coverPage(fc accounts.FilingContext) string {
	var b strings.Builder
	b.WriteString("<div class=\"statement\" id=\"cover\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", ixbrl.Text(fc.CompanyName, statements.ConceptCompanyName, ixbrl.CtxCurrentPeriod))
	fmt.Fprintf(&b, "<p>Registered number: %s</p>\n", ixbrl.Text(fc.RegistrationNumber, statements.ConceptRegistrationNumber, ixbrl.CtxCurrentPeriod))
	fmt.Fprintf(&b, "<p>Annual report and financial statements for the period %s to %s</p>\n",
		ixbrl.FormatDate(fc.PeriodStart), ixbrl.FormatDate(fc.PeriodEnd))
	b.WriteString("</div>\n")
	return b.String()
}

// checkContextReferences verifies every contextRef in the body resolves
// to a declared context id. An undeclared reference is a programmer
// error in a statement generator.
func checkContextReferences(document, declarations string) error {
	declared := make(map[string]struct{})
	for _, m := range regexp.MustCompile(`<xbrli:context id="([^"]+)"`).FindAllStringSubmatch(declarations, -1) {
		declared[m[1]] = struct{}{}
	}
	for _, m := range contextRefPattern.FindAllStringSubmatch(document, -1) {
		if _, ok := declared[m[1]]; !ok {
			return fmt.Errorf("%w: undeclared context reference %q", ErrPackagingDefect, m[1])
		}
	}
	return nil
}
