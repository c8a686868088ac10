// Package jobs owns background processing: queued filing generation
// and the nightly integrity sweep over generated filings.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/filingforge/filingforge/internal/accounts/filing"
	"github.com/filingforge/filingforge/internal/filings"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeGenerateFiling generates one filing's submission package.
	TaskTypeGenerateFiling = "filing:generate"
	// TaskTypeIntegrityScan re-validates recently generated filings.
	TaskTypeIntegrityScan = "filing:integrity_scan"
)

// GenerateFilingPayload identifies the filing to generate.
type GenerateFilingPayload struct {
	FilingID uuid.UUID `json:"filing_id"`
}

// NewGenerateFilingTask constructs an Asynq task for one filing.
func NewGenerateFilingTask(id uuid.UUID) (*asynq.Task, error) {
	data, err := json.Marshal(GenerateFilingPayload{FilingID: id})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeGenerateFiling, data), nil
}

// NewIntegrityScanTask constructs the scheduled integrity-scan task.
func NewIntegrityScanTask() *asynq.Task {
	return asynq.NewTask(TaskTypeIntegrityScan, nil)
}

// NewGenerateFilingHandler returns the handler for filing:generate
// tasks. Validation failures are terminal: the outcome is already
// persisted on the filing, so the task is done. Only transient store
// errors are retried.
func NewGenerateFilingHandler(svc *filings.Service, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload GenerateFilingPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("malformed payload: %v: %w", err, asynq.SkipRetry)
		}
		artifact, verrs, err := svc.Generate(ctx, payload.FilingID)
		if err != nil {
			if errors.Is(err, filings.ErrNotFound) {
				return fmt.Errorf("filing %s: %v: %w", payload.FilingID, err, asynq.SkipRetry)
			}
			if errors.Is(err, filing.ErrPackagingDefect) {
				// A defect is a generator bug; retrying reproduces it.
				return fmt.Errorf("filing %s: %v: %w", payload.FilingID, err, asynq.SkipRetry)
			}
			return err
		}
		if len(verrs) > 0 {
			logger.Warn("queued generation rejected by validation",
				slog.String("filing_id", payload.FilingID.String()),
				slog.Int("errors", len(verrs)))
			return nil
		}
		logger.Info("queued generation complete",
			slog.String("filing_id", payload.FilingID.String()),
			slog.String("artifact", artifact.Filename))
		return nil
	}
}
