package report

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewRunRepository creates a repository for audit run records.
func NewRunRepository(db *bun.DB) repository.Repository[*AuditRun] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*AuditRun]{
		NewRecord: func() *AuditRun { return &AuditRun{} },
		GetID: func(run *AuditRun) uuid.UUID {
			return run.ID
		},
		SetID: func(run *AuditRun, id uuid.UUID) {
			run.ID = id
		},
		GetIdentifier: func() string {
			return "root"
		},
		GetIdentifierValue: func(run *AuditRun) string {
			return run.Root
		},
	})
}

// NewFindingRepository creates a repository for persisted findings.
func NewFindingRepository(db *bun.DB) repository.Repository[*AuditFinding] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*AuditFinding]{
		NewRecord: func() *AuditFinding { return &AuditFinding{} },
		GetID: func(finding *AuditFinding) uuid.UUID {
			return finding.ID
		},
		SetID: func(finding *AuditFinding, id uuid.UUID) {
			finding.ID = id
		},
		GetIdentifier: func() string {
			return "rule"
		},
		GetIdentifierValue: func(finding *AuditFinding) string {
			return finding.Rule
		},
	})
}
