// Package filing is the packaging and validation orchestrator. It is
// the single place that decides whether a filing package may be
// submitted, composes the statement fragments into one ordered
// document, and wraps the result in the archive the filing gateway
// accepts.
package filing

import (
	"fmt"
	"math"
	"strings"

	"github.com/filingforge/filingforge/internal/accounts"
)

// BalanceTolerance is the permitted rounding drift, one unit of the
// reporting currency, when checking the balance sheet invariant.
const BalanceTolerance = 1.0

// Validate runs the structural and arithmetic checks over an aggregate
// filing package and returns one human-readable message per violated
// rule. An empty slice means the package may proceed to composition.
// Nothing is ever silently corrected.
func Validate(pkg accounts.FilingPackage) []string {
	var errs []string

	fc := pkg.Context
	if strings.TrimSpace(fc.CompanyName) == "" {
		errs = append(errs, "company name is required")
	}
	if len(strings.TrimSpace(fc.RegistrationNumber)) < accounts.RegistrationNumberLength {
		errs = append(errs, fmt.Sprintf("registration number must be at least %d characters", accounts.RegistrationNumberLength))
	}
	if fc.PeriodStart.IsZero() {
		errs = append(errs, "accounting period start date is required")
	}
	if fc.PeriodEnd.IsZero() {
		errs = append(errs, "accounting period end date is required")
	}
	if !fc.PeriodStart.IsZero() && !fc.PeriodEnd.IsZero() && !fc.PeriodEnd.After(fc.PeriodStart) {
		errs = append(errs, "accounting period end must fall after the period start")
	}
	if fc.BalanceSheetDate.IsZero() {
		errs = append(errs, "balance sheet date is required")
	}

	bs := pkg.BalanceSheet
	drift := bs.TotalAssets() - bs.TotalLiabilities() - bs.TotalCapitalAndReserves.Amount
	if math.Abs(drift) > BalanceTolerance {
		errs = append(errs, fmt.Sprintf(
			"balance sheet does not balance: total assets less total liabilities differs from total capital and reserves by %.2f", drift))
	}

	if len(pkg.Directors.Directors) == 0 {
		errs = append(errs, "at least one director must be listed")
	}
	if strings.TrimSpace(pkg.Directors.PrincipalActivity) == "" {
		errs = append(errs, "principal activity description is required")
	}
	if pkg.Directors.ApprovalDate.IsZero() {
		errs = append(errs, "directors' report approval date is required")
	}
	if strings.TrimSpace(pkg.Directors.ApprovedBy) == "" {
		errs = append(errs, "approving director signature is required")
	}
	if strings.TrimSpace(pkg.Notes.Policies.Framework) == "" {
		errs = append(errs, "accounting framework must be declared")
	}

	return errs
}
