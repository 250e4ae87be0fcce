package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errAuditSchemaMissing means the database answers but migrations never ran.
var errAuditSchemaMissing = errors.New("redemption_events table is missing")

// HealthCheck reports whether the redemption audit log can be written.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the audit table exists.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var present bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('redemption_events') IS NOT NULL`).Scan(&present); err != nil {
		return fmt.Errorf("checking audit schema: %w", err)
	}
	if !present {
		return errAuditSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
