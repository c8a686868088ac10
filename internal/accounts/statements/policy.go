// Package statements renders each statutory statement as a
// self-contained markup fragment. Every generator is a pure function
// taking the filing context, the resolved size tier, and one typed
// record; all tagged values go through the ixbrl primitives.
package statements

import "github.com/filingforge/filingforge/internal/accounts/sizing"

// TierPolicy captures every structural decision the size tier drives:
// which sections are included and which notes are mandatory. Keeping it
// in one table keeps the size-tier policy auditable in one place.
type TierPolicy struct {
	StrategicReport  bool
	CashFlow         bool
	AuditRequired    bool
	NoteEmployees    bool
	NoteRemuneration bool
	NoteBreakdowns   bool
}

var tierPolicies = map[sizing.Tier]TierPolicy{
	sizing.TierMicro: {},
	sizing.TierSmall: {
		NoteEmployees: true,
	},
	sizing.TierMedium: {
		CashFlow:         true,
		AuditRequired:    true,
		NoteEmployees:    true,
		NoteRemuneration: true,
		NoteBreakdowns:   true,
	},
	sizing.TierLarge: {
		StrategicReport:  true,
		CashFlow:         true,
		AuditRequired:    true,
		NoteEmployees:    true,
		NoteRemuneration: true,
		NoteBreakdowns:   true,
	},
}

// PolicyFor resolves the structural policy for a tier. Unknown tiers
// fall back to the large-company policy, the most demanding one.
func PolicyFor(tier sizing.Tier) TierPolicy {
	if p, ok := tierPolicies[tier]; ok {
		return p
	}
	return tierPolicies[sizing.TierLarge]
}
