package audit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-doclint/internal/logging"
	"github.com/goliatone/go-doclint/internal/markdown"
	"github.com/goliatone/go-doclint/internal/rules"
	"github.com/goliatone/go-doclint/pkg/interfaces"
)

var (
	ErrDocumentServiceRequired = errors.New("audit service: document service is required")
	ErrRegistryRequired        = errors.New("audit service: rule registry is required")
)

// ServiceConfig encapsulates dependencies required to run corpus scans.
type ServiceConfig struct {
	Documents *markdown.Service
	Registry  *rules.Registry
	Store     interfaces.RunStore
	Logger    interfaces.Logger
	IndexFile string
}

// Service orchestrates corpus scans: load every document, evaluate the rule
// set, diff against the stored baseline, and optionally persist the run.
type Service struct {
	documents *markdown.Service
	registry  *rules.Registry
	store     interfaces.RunStore
	logger    interfaces.Logger
	indexFile string
}

var _ interfaces.AuditService = (*Service)(nil)

// NewService builds an audit Service from the supplied configuration.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Documents == nil {
		return nil, ErrDocumentServiceRequired
	}
	if cfg.Registry == nil {
		return nil, ErrRegistryRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	indexFile := strings.TrimSpace(cfg.IndexFile)
	if indexFile == "" {
		indexFile = "README.md"
	}

	return &Service{
		documents: cfg.Documents,
		registry:  cfg.Registry,
		store:     cfg.Store,
		logger:    logger,
		indexFile: indexFile,
	}, nil
}

// Scan loads the corpus under dir and runs the configured rules.
func (s *Service) Scan(ctx context.Context, dir string, opts interfaces.ScanOptions) (*interfaces.Report, error) {
	started := time.Now().UTC()

	docs, err := s.documents.LoadDirectory(ctx, dir, opts.Loader)
	if err != nil {
		return nil, fmt.Errorf("audit scan: load corpus %s: %w", dir, err)
	}

	files, dirs, err := s.documents.ListFiles(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("audit scan: list corpus files %s: %w", dir, err)
	}

	corpus := newCorpusView(docs, files, dirs, s.indexFile)
	selected := s.registry.Rules(opts.Rules...)

	acc := newFindingAccumulator()
	for _, rule := range selected {
		logger := logging.WithScanContext(s.logger, "", rule.ID(), dir)
		logger.Debug("audit.rule.start")

		if corpusRule, ok := rule.(interfaces.CorpusRule); ok {
			findings, err := corpusRule.CheckCorpus(ctx, corpus)
			if err != nil {
				return nil, fmt.Errorf("audit scan: rule %s: %w", rule.ID(), err)
			}
			acc.add(findings...)
		}

		for _, doc := range corpus.Documents() {
			findings, err := rule.Check(ctx, corpus, doc)
			if err != nil {
				return nil, fmt.Errorf("audit scan: rule %s on %s: %w", rule.ID(), doc.FilePath, err)
			}
			acc.add(findings...)
		}
	}

	report := acc.report(dir, started, docs, selected)
	report.Failed = failed(report, opts.FailOn)

	if s.store != nil {
		if err := s.applyBaseline(ctx, report); err != nil {
			s.logger.Warn("audit.baseline.unavailable", "error", err)
		}
		if !opts.DryRun {
			if err := s.store.SaveReport(ctx, report); err != nil {
				return nil, fmt.Errorf("audit scan: persist run: %w", err)
			}
		}
	}

	logging.WithFields(s.logger, map[string]any{
		"documents":   report.Documents,
		"error_count": report.Errors,
		"warn_count":  report.Warnings,
		"duration_ms": report.Duration.Milliseconds(),
		"dry_run":     opts.DryRun,
	}).Info("audit.scan.completed")

	return report, nil
}

// VerifyLinks runs only the reference rules for fast pre-commit checks.
func (s *Service) VerifyLinks(ctx context.Context, dir string, opts interfaces.ScanOptions) (*interfaces.Report, error) {
	opts.Rules = rules.ReferenceRuleIDs()
	// Link verification never persists history; it is a spot check.
	opts.DryRun = true
	return s.Scan(ctx, dir, opts)
}

// applyBaseline marks findings new or resolved relative to the previous run
// for the same root.
func (s *Service) applyBaseline(ctx context.Context, report *interfaces.Report) error {
	previous, err := s.store.LatestReport(ctx, report.Root)
	if err != nil {
		return err
	}
	if previous == nil {
		report.NewCount = len(report.Findings)
		return nil
	}

	baseline := make(map[string]struct{}, len(previous.Findings))
	for _, finding := range previous.Findings {
		baseline[fingerprint(finding)] = struct{}{}
	}

	current := make(map[string]struct{}, len(report.Findings))
	for _, finding := range report.Findings {
		key := fingerprint(finding)
		current[key] = struct{}{}
		if _, ok := baseline[key]; !ok {
			report.NewCount++
		}
	}

	for key := range baseline {
		if _, ok := current[key]; !ok {
			report.FixedCount++
		}
	}

	return nil
}

// fingerprint identifies a finding across runs. Line numbers are excluded so
// unrelated edits above a finding do not churn the baseline.
func fingerprint(finding interfaces.Finding) string {
	return strings.Join([]string{finding.Rule, finding.Path, finding.Target, finding.Message}, "\x00")
}

func failed(report *interfaces.Report, threshold interfaces.Severity) bool {
	switch threshold {
	case interfaces.SeverityNotice:
		return report.Errors > 0 || report.Warnings > 0 || report.Notices > 0
	case interfaces.SeverityWarning:
		return report.Errors > 0 || report.Warnings > 0
	default:
		return report.Errors > 0
	}
}

type findingAccumulator struct {
	findings []interfaces.Finding
	errors   int
	warnings int
	notices  int
}

func newFindingAccumulator() *findingAccumulator {
	return &findingAccumulator{
		findings: []interfaces.Finding{},
	}
}

func (a *findingAccumulator) add(findings ...interfaces.Finding) {
	for _, finding := range findings {
		a.findings = append(a.findings, finding)
		switch finding.Severity {
		case interfaces.SeverityError:
			a.errors++
		case interfaces.SeverityWarning:
			a.warnings++
		default:
			a.notices++
		}
	}
}

func (a *findingAccumulator) report(root string, started time.Time, docs []*interfaces.Document, selected []interfaces.Rule) *interfaces.Report {
	ruleIDs := make([]string, 0, len(selected))
	for _, rule := range selected {
		ruleIDs = append(ruleIDs, rule.ID())
	}

	sort.SliceStable(a.findings, func(i, j int) bool {
		if a.findings[i].Path != a.findings[j].Path {
			return a.findings[i].Path < a.findings[j].Path
		}
		if a.findings[i].Line != a.findings[j].Line {
			return a.findings[i].Line < a.findings[j].Line
		}
		return a.findings[i].Rule < a.findings[j].Rule
	})

	return &interfaces.Report{
		RunID:     uuid.New(),
		Root:      root,
		StartedAt: started,
		Duration:  time.Since(started),
		Documents: len(docs),
		Findings:  a.findings,
		Errors:    a.errors,
		Warnings:  a.warnings,
		Notices:   a.notices,
		RulesRun:  ruleIDs,
	}
}
