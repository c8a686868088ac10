package filing

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/filingforge/filingforge/internal/accounts"
)

// ArchiveExtension is the fixed extension of the submission package.
const ArchiveExtension = ".zip"

// DocumentExtension is the fixed extension of the tagged document
// inside the archive.
const DocumentExtension = ".html"

// Artifact is the finished submission package: one archive containing
// exactly one tagged document.
type Artifact struct {
	Filename     string
	DocumentName string
	Data         []byte
}

// archiveEpoch is the fixed modification time stamped on archive
// entries so identical inputs produce identical archives.
var archiveEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// BaseName derives the deterministic artifact name from the
// registration number and the period end, separators removed.
func BaseName(registrationNumber string, periodEnd time.Time) string {
	return fmt.Sprintf("%s-%s-accounts", strings.TrimSpace(registrationNumber), periodEnd.Format("20060102"))
}

// BuildArchive composes the document and wraps it as a single named
// file inside a zip archive. The same input package always produces the
// same filename and the same archive bytes.
func BuildArchive(pkg accounts.FilingPackage) (Artifact, error) {
	document, err := Compose(pkg)
	if err != nil {
		return Artifact{}, err
	}
	if strings.TrimSpace(document) == "" {
		return Artifact{}, fmt.Errorf("%w: composed document is empty", ErrPackagingDefect)
	}

	base := BaseName(pkg.Context.RegistrationNumber, pkg.Context.PeriodEnd)
	if strings.HasPrefix(base, "-") || strings.Contains(base, " ") {
		return Artifact{}, fmt.Errorf("%w: malformed archive name %q", ErrPackagingDefect, base)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	header := &zip.FileHeader{
		Name:     base + DocumentExtension,
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	}
	w, err := zw.CreateHeader(header)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: create archive entry: %v", ErrPackagingDefect, err)
	}
	if _, err := w.Write([]byte(document)); err != nil {
		return Artifact{}, fmt.Errorf("%w: write archive entry: %v", ErrPackagingDefect, err)
	}
	if err := zw.Close(); err != nil {
		return Artifact{}, fmt.Errorf("%w: close archive: %v", ErrPackagingDefect, err)
	}

	return Artifact{
		Filename:     base + ArchiveExtension,
		DocumentName: base + DocumentExtension,
		Data:         buf.Bytes(),
	}, nil
}
