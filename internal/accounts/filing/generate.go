package filing

import "github.com/filingforge/filingforge/internal/accounts"

// Generate is the single entry point for one filing attempt: either the
// package is structurally valid and the finished artifact is returned,
// or it is rejected with a non-empty validation-error list. There is no
// partial or successful-with-warnings state, and nothing is retried:
// generation is deterministic, so the same input always yields the same
// outcome.
func Generate(pkg accounts.FilingPackage) (Artifact, []string, error) {
	if errs := Validate(pkg); len(errs) > 0 {
		return Artifact{}, errs, nil
	}
	artifact, err := BuildArchive(pkg)
	if err != nil {
		return Artifact{}, nil, err
	}
	return artifact, nil, nil
}
