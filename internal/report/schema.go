package report

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the run history tables when they do not exist.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*AuditRun)(nil),
		(*AuditFinding)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("run store: create table for %T: %w", model, err)
		}
	}
	return nil
}
