package filing

import (
	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
)

// Preview renders the same composed document with the tagging envelopes
// stripped, for human review before submission. It is a post-processing
// filter over the exact fragment stream the archive would contain, so
// preview and submission can never drift. The result must never be the
// artifact actually submitted.
func Preview(pkg accounts.FilingPackage) (string, error) {
	document, err := Compose(pkg)
	if err != nil {
		return "", err
	}
	return ixbrl.Strip(document), nil
}
