// Package shared holds small cross-cutting pieces used by more than
// one feature package.
package shared

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditLogger writes lifecycle events into audit_logs. Entries are
// append-only; nothing in the application updates or deletes them.
type AuditLogger struct {
	pool *pgxpool.Pool
}

// NewAuditLogger returns a new AuditLogger.
func NewAuditLogger(pool *pgxpool.Pool) *AuditLogger {
	return &AuditLogger{pool: pool}
}

// Record persists one audit entry.
func (l *AuditLogger) Record(ctx context.Context, action, entity, entityID string, meta map[string]any) error {
	if l == nil || l.pool == nil {
		return errors.New("audit logger not initialised")
	}
	if action == "" || entity == "" || entityID == "" {
		return errors.New("audit log requires action/entity/entity_id")
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("audit: marshal meta: %w", err)
	}
	_, err = l.pool.Exec(ctx,
		`INSERT INTO audit_logs (action, entity, entity_id, meta, occurred_at) VALUES ($1, $2, $3, $4, NOW())`,
		action, entity, entityID, metaJSON)
	return err
}
