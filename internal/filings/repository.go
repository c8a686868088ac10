package filings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filingforge/filingforge/internal/accounts"
)

const uniqueViolation = "23505"

// Repository provides PostgreSQL backed persistence for filings. The
// aggregate package is stored as JSONB; generated artifacts live in a
// bytea column alongside their deterministic filename.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new draft. One filing per registration number and
// period end; duplicates map to ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, f Filing) (Filing, error) {
	const query = `
		INSERT INTO filings (id, company_name, registration_number, period_end, status, package, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.Status = StatusDraft

	err := r.pool.QueryRow(ctx, query,
		f.ID, f.CompanyName, f.RegistrationNumber, f.PeriodEnd, f.Status, f.Package,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Filing{}, ErrAlreadyExists
		}
		return Filing{}, fmt.Errorf("filings: create: %w", err)
	}
	return f, nil
}

// UpdatePackage replaces the draft package and resets the lifecycle to
// draft, discarding any stale validation outcome.
func (r *Repository) UpdatePackage(ctx context.Context, id uuid.UUID, pkg accounts.FilingPackage) error {
	const query = `
		UPDATE filings
		SET package = $2, status = $3, validation_errors = NULL, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, pkg, StatusDraft)
	if err != nil {
		return fmt.Errorf("filings: update package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Get loads one filing without its artifact bytes.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (Filing, error) {
	const query = `
		SELECT id, company_name, registration_number, period_end, status,
		       package, COALESCE(validation_errors, '{}'), COALESCE(artifact_name, ''),
		       created_at, updated_at
		FROM filings WHERE id = $1`

	var f Filing
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.CompanyName, &f.RegistrationNumber, &f.PeriodEnd, &f.Status,
		&f.Package, &f.ValidationErrors, &f.ArtifactName,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Filing{}, ErrNotFound
		}
		return Filing{}, fmt.Errorf("filings: get: %w", err)
	}
	return f, nil
}

// List returns filings ordered by most recently updated.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Filing, error) {
	const query = `
		SELECT id, company_name, registration_number, period_end, status,
		       COALESCE(validation_errors, '{}'), COALESCE(artifact_name, ''),
		       created_at, updated_at
		FROM filings
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("filings: list: %w", err)
	}
	defer rows.Close()

	var out []Filing
	for rows.Next() {
		var f Filing
		if err := rows.Scan(
			&f.ID, &f.CompanyName, &f.RegistrationNumber, &f.PeriodEnd, &f.Status,
			&f.ValidationErrors, &f.ArtifactName, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("filings: scan: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// SetOutcome records a validation or generation outcome.
func (r *Repository) SetOutcome(ctx context.Context, id uuid.UUID, status Status, validationErrors []string) error {
	const query = `
		UPDATE filings SET status = $2, validation_errors = $3, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, validationErrors)
	if err != nil {
		return fmt.Errorf("filings: set outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// StoreArtifact persists the generated archive and marks the filing
// generated.
func (r *Repository) StoreArtifact(ctx context.Context, id uuid.UUID, name string, data []byte) error {
	const query = `
		UPDATE filings
		SET status = $2, artifact_name = $3, artifact = $4, validation_errors = NULL, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, StatusGenerated, name, data)
	if err != nil {
		return fmt.Errorf("filings: store artifact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetArtifact loads the stored archive bytes and filename.
func (r *Repository) GetArtifact(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	const query = `SELECT COALESCE(artifact_name, ''), artifact FROM filings WHERE id = $1`

	var name string
	var data []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&name, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("filings: get artifact: %w", err)
	}
	if name == "" || len(data) == 0 {
		return "", nil, ErrNoArtifact
	}
	return name, data, nil
}

// ListGeneratedSince returns ids of filings generated after the cutoff,
// for the nightly integrity sweep.
func (r *Repository) ListGeneratedSince(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	const query = `SELECT id FROM filings WHERE status = $1 AND updated_at >= $2`

	rows, err := r.pool.Query(ctx, query, StatusGenerated, cutoff)
	if err != nil {
		return nil, fmt.Errorf("filings: list generated: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("filings: scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
