package filings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/filing"
	"github.com/filingforge/filingforge/internal/accounts/sizing"
)

// batchConcurrency bounds parallel generations in a batch run. Each
// generation is an independent pure computation, so runs never
// coordinate beyond this limit.
const batchConcurrency = 4

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, f Filing) (Filing, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, pkg accounts.FilingPackage) error
	Get(ctx context.Context, id uuid.UUID) (Filing, error)
	List(ctx context.Context, limit, offset int) ([]Filing, error)
	SetOutcome(ctx context.Context, id uuid.UUID, status Status, validationErrors []string) error
	StoreArtifact(ctx context.Context, id uuid.UUID, name string, data []byte) error
	GetArtifact(ctx context.Context, id uuid.UUID) (string, []byte, error)
	ListGeneratedSince(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

// AuditRecorder records filing lifecycle events.
type AuditRecorder interface {
	Record(ctx context.Context, action, entity, entityID string, meta map[string]any) error
}

// Counters receives domain metric increments.
type Counters interface {
	FilingGenerated()
	ValidationFailed()
}

// Service coordinates drafts, validation, and generation. The
// generator itself is stateless; all state lives in the store.
type Service struct {
	store    Store
	cache    *Cache
	audit    AuditRecorder
	counters Counters
	logger   *slog.Logger
}

// NewService constructs the filings service. Audit and counters may be
// nil; the service degrades to logging only.
func NewService(store Store, cache *Cache, audit AuditRecorder, counters Counters, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, cache: cache, audit: audit, counters: counters, logger: logger}
}

// DraftInput is the caller-assembled material for one filing draft.
type DraftInput struct {
	Package         accounts.FilingPackage
	CurrentMetrics  sizing.Metrics
	PreviousMetrics *sizing.Metrics
}

// CreateDraft classifies the entity and stores the draft. The size
// result is computed once here and treated as read-only afterwards.
func (s *Service) CreateDraft(ctx context.Context, in DraftInput) (Filing, error) {
	pkg := in.Package
	pkg.Size = sizing.Classify(in.CurrentMetrics, in.PreviousMetrics)

	f := Filing{
		CompanyName:        pkg.Context.CompanyName,
		RegistrationNumber: pkg.Context.RegistrationNumber,
		PeriodEnd:          pkg.Context.PeriodEnd,
		Package:            pkg,
	}
	created, err := s.store.Create(ctx, f)
	if err != nil {
		return Filing{}, err
	}
	s.logger.Info("filing draft created",
		slog.String("filing_id", created.ID.String()),
		slog.String("registration_number", created.RegistrationNumber),
		slog.String("tier", string(pkg.Size.Tier)))
	return created, nil
}

// UpdateDraft replaces the package, re-running classification when new
// metrics are supplied.
func (s *Service) UpdateDraft(ctx context.Context, id uuid.UUID, in DraftInput) (Filing, error) {
	pkg := in.Package
	pkg.Size = sizing.Classify(in.CurrentMetrics, in.PreviousMetrics)
	if err := s.store.UpdatePackage(ctx, id, pkg); err != nil {
		return Filing{}, err
	}
	return s.store.Get(ctx, id)
}

// Get loads one filing.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Filing, error) {
	return s.store.Get(ctx, id)
}

// List returns recent filings.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Filing, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

// Validate runs the orchestrator's validation pass and persists the
// outcome. The returned list is empty when the filing may proceed.
func (s *Service) Validate(ctx context.Context, id uuid.UUID) ([]string, error) {
	f, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	errs := filing.Validate(f.Package)
	status := StatusValidated
	if len(errs) > 0 {
		status = StatusFailed
		if s.counters != nil {
			s.counters.ValidationFailed()
		}
	}
	if err := s.store.SetOutcome(ctx, id, status, errs); err != nil {
		return nil, err
	}
	return errs, nil
}

// Generate runs one filing attempt end to end: either the archive is
// produced and stored, or the validation-error list is persisted and
// returned. Packaging defects surface as errors; they indicate a
// generator bug, not bad data.
func (s *Service) Generate(ctx context.Context, id uuid.UUID) (filing.Artifact, []string, error) {
	f, err := s.store.Get(ctx, id)
	if err != nil {
		return filing.Artifact{}, nil, err
	}

	artifact, verrs, err := filing.Generate(f.Package)
	if err != nil {
		s.logger.Error("filing generation defect",
			slog.String("filing_id", id.String()), slog.Any("error", err))
		return filing.Artifact{}, nil, err
	}
	if len(verrs) > 0 {
		if s.counters != nil {
			s.counters.ValidationFailed()
		}
		if err := s.store.SetOutcome(ctx, id, StatusFailed, verrs); err != nil {
			return filing.Artifact{}, nil, err
		}
		s.recordAudit(ctx, "filing.validation_failed", id, map[string]any{"errors": len(verrs)})
		return filing.Artifact{}, verrs, nil
	}

	if err := s.store.StoreArtifact(ctx, id, artifact.Filename, artifact.Data); err != nil {
		return filing.Artifact{}, nil, err
	}
	if s.counters != nil {
		s.counters.FilingGenerated()
	}
	s.recordAudit(ctx, "filing.generated", id, map[string]any{
		"artifact": artifact.Filename,
		"bytes":    len(artifact.Data),
	})
	s.logger.Info("filing generated",
		slog.String("filing_id", id.String()),
		slog.String("artifact", artifact.Filename))
	return artifact, nil, nil
}

// GenerateBatch generates several filings in parallel. Each filing is
// an isolated computation over its own package, so the only shared
// concern is the concurrency bound.
func (s *Service) GenerateBatch(ctx context.Context, ids []uuid.UUID) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			if _, _, err := s.Generate(ctx, id); err != nil {
				return fmt.Errorf("generate %s: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Preview renders the stripped review document, cached per filing
// revision.
func (s *Service) Preview(ctx context.Context, id uuid.UUID) (string, error) {
	f, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.cache.FetchPreview(ctx, f.ID, f.UpdatedAt, func(context.Context) (string, error) {
		return filing.Preview(f.Package)
	})
}

// Artifact returns the stored submission package.
func (s *Service) Artifact(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	return s.store.GetArtifact(ctx, id)
}

// VerifyGenerated re-validates filings generated since the cutoff and
// reports the ids whose stored package no longer validates. Used by the
// nightly integrity sweep.
func (s *Service) VerifyGenerated(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	ids, err := s.store.ListGeneratedSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	var suspect []uuid.UUID
	for _, id := range ids {
		f, err := s.store.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if len(filing.Validate(f.Package)) > 0 {
			suspect = append(suspect, id)
		}
	}
	return suspect, nil
}

func (s *Service) recordAudit(ctx context.Context, action string, id uuid.UUID, meta map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, action, "filing", id.String(), meta); err != nil {
		s.logger.Warn("audit record", slog.Any("error", err))
	}
}
