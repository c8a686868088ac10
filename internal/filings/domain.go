// Package filings provides persistence and the HTTP surface for filing
// drafts, and drives the accounts generator for each filing attempt.
package filings

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/platform/httpx"
)

// ErrNotFound and ErrAlreadyExists wrap the shared httpx sentinels so
// the transport layer maps them without a package-specific table.
// ErrNoArtifact has no shared equivalent and keeps its own mapping.
var (
	ErrNotFound      = fmt.Errorf("filing: %w", httpx.ErrNotFound)
	ErrAlreadyExists = fmt.Errorf("filing for this period: %w", httpx.ErrDuplicate)
	ErrNoArtifact    = errors.New("filing has no generated artifact")
)

// Status tracks a filing draft through its lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusValidated Status = "validated"
	StatusGenerated Status = "generated"
	StatusFailed    Status = "failed"
)

// Filing is one statutory accounts filing attempt for one company and
// accounting period.
type Filing struct {
	ID                 uuid.UUID              `json:"id"`
	CompanyName        string                 `json:"company_name"`
	RegistrationNumber string                 `json:"registration_number"`
	PeriodEnd          time.Time              `json:"period_end"`
	Status             Status                 `json:"status"`
	Package            accounts.FilingPackage `json:"package"`
	ValidationErrors   []string               `json:"validation_errors,omitempty"`
	ArtifactName       string                 `json:"artifact_name,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}
