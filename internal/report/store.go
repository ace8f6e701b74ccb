package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// NotFoundError indicates a run lookup matched nothing.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// BunRunStore persists audit runs and findings with optional caching.
type BunRunStore struct {
	runs     repository.Repository[*AuditRun]
	findings repository.Repository[*AuditFinding]
}

var _ interfaces.RunStore = (*BunRunStore)(nil)

// NewBunRunStore creates a run store without caching.
func NewBunRunStore(db *bun.DB) *BunRunStore {
	return NewBunRunStoreWithCache(db, nil, nil)
}

// NewBunRunStoreWithCache creates a run store with caching support.
func NewBunRunStoreWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRunStore {
	runs := NewRunRepository(db)
	findings := NewFindingRepository(db)
	if cacheService != nil && serializer != nil {
		runs = repositorycache.New(runs, cacheService, serializer)
		findings = repositorycache.New(findings, cacheService, serializer)
	}
	return &BunRunStore{runs: runs, findings: findings}
}

// SaveReport stores the run header and each finding.
func (s *BunRunStore) SaveReport(ctx context.Context, report *interfaces.Report) error {
	run := runFromReport(report)
	if _, err := s.runs.Create(ctx, run); err != nil {
		return fmt.Errorf("run store: save run: %w", err)
	}

	for _, finding := range report.Findings {
		record := findingFromReport(run.ID, finding)
		if _, err := s.findings.Create(ctx, record); err != nil {
			return fmt.Errorf("run store: save finding %s/%s: %w", finding.Rule, finding.Path, err)
		}
	}

	return nil
}

// LatestReport returns the most recent run for root, or nil when none exists.
func (s *BunRunStore) LatestReport(ctx context.Context, root string) (*interfaces.Report, error) {
	records, _, err := s.runs.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.root = ?", root).Order("started_at DESC")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "audit run", root)
	}
	if len(records) == 0 {
		return nil, nil
	}

	run := records[0]
	findings, _, err := s.findings.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.run_id = ?", run.ID).Order("path ASC", "line ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "audit findings", run.ID.String())
	}

	return reportFromRecords(run, findings), nil
}

// ListRuns returns up to limit run headers for root, newest first.
func (s *BunRunStore) ListRuns(ctx context.Context, root string, limit int) ([]*interfaces.Report, error) {
	if limit <= 0 {
		limit = 10
	}

	records, _, err := s.runs.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.root = ?", root).Order("started_at DESC")
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "audit runs", root)
	}

	reports := make([]*interfaces.Report, 0, len(records))
	for _, run := range records {
		reports = append(reports, reportFromRecords(run, nil))
	}
	return reports, nil
}

func runFromReport(report *interfaces.Report) *AuditRun {
	id := report.RunID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &AuditRun{
		ID:        id,
		Root:      report.Root,
		StartedAt: report.StartedAt,
		Duration:  report.Duration,
		Documents: report.Documents,
		Errors:    report.Errors,
		Warnings:  report.Warnings,
		Notices:   report.Notices,
		RulesRun:  strings.Join(report.RulesRun, ","),
		Failed:    report.Failed,
	}
}

func findingFromReport(runID uuid.UUID, finding interfaces.Finding) *AuditFinding {
	return &AuditFinding{
		ID:       uuid.New(),
		RunID:    runID,
		Rule:     finding.Rule,
		Severity: string(finding.Severity),
		Path:     finding.Path,
		Line:     finding.Line,
		Message:  finding.Message,
		Target:   finding.Target,
	}
}

func reportFromRecords(run *AuditRun, findings []*AuditFinding) *interfaces.Report {
	report := &interfaces.Report{
		RunID:     run.ID,
		Root:      run.Root,
		StartedAt: run.StartedAt,
		Duration:  run.Duration,
		Documents: run.Documents,
		Errors:    run.Errors,
		Warnings:  run.Warnings,
		Notices:   run.Notices,
		Failed:    run.Failed,
	}
	if run.RulesRun != "" {
		report.RulesRun = strings.Split(run.RulesRun, ",")
	}
	for _, record := range findings {
		report.Findings = append(report.Findings, interfaces.Finding{
			Rule:     record.Rule,
			Severity: interfaces.Severity(record.Severity),
			Path:     record.Path,
			Line:     record.Line,
			Message:  record.Message,
			Target:   record.Target,
		})
	}
	return report
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
