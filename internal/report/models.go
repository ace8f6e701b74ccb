package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AuditRun records a completed corpus scan.
type AuditRun struct {
	bun.BaseModel `bun:"table:audit_runs,alias:ar"`

	ID        uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Root      string        `bun:"root,notnull" json:"root"`
	StartedAt time.Time     `bun:"started_at,notnull" json:"started_at"`
	Duration  time.Duration `bun:"duration_ns,notnull" json:"duration_ns"`
	Documents int           `bun:"documents,notnull" json:"documents"`
	Errors    int           `bun:"errors,notnull" json:"errors"`
	Warnings  int           `bun:"warnings,notnull" json:"warnings"`
	Notices   int           `bun:"notices,notnull" json:"notices"`
	RulesRun  string        `bun:"rules_run,notnull" json:"rules_run"`
	Failed    bool          `bun:"failed,notnull,default:false" json:"failed"`
	CreatedAt time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// AuditFinding is one persisted rule violation belonging to a run.
type AuditFinding struct {
	bun.BaseModel `bun:"table:audit_findings,alias:af"`

	ID       uuid.UUID `bun:",pk,type:uuid" json:"id"`
	RunID    uuid.UUID `bun:"run_id,notnull,type:uuid" json:"run_id"`
	Rule     string    `bun:"rule,notnull" json:"rule"`
	Severity string    `bun:"severity,notnull" json:"severity"`
	Path     string    `bun:"path,notnull" json:"path"`
	Line     int       `bun:"line" json:"line,omitempty"`
	Message  string    `bun:"message,notnull" json:"message"`
	Target   string    `bun:"target" json:"target,omitempty"`
}
