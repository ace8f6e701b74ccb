package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Severity grades a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNotice  Severity = "notice"
)

// Finding describes a single integrity problem detected in the corpus.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
	// Target names the file or anchor the finding refers to, when the rule
	// checks a reference rather than the document itself.
	Target string `json:"target,omitempty"`
}

// Corpus is the read-only view of the loaded documentation tree handed to
// rules. Paths are slash-separated and relative to the corpus root.
type Corpus interface {
	// Documents returns every loaded document ordered by path.
	Documents() []*Document
	// Document returns the document at the given path, or nil.
	Document(path string) *Document
	// FileExists reports whether any file (Markdown or asset) exists at the
	// given corpus-relative path.
	FileExists(path string) bool
	// Directories returns every directory path in the corpus, ordered.
	Directories() []string
	// RootIndex returns the root README document when present.
	RootIndex() *Document
}

// Rule checks one integrity property across a document. Implementations must
// be safe for reuse across scans.
type Rule interface {
	// ID returns the stable rule identifier used in findings and config.
	ID() string
	// Severity returns the default severity attached to this rule's findings.
	Severity() Severity
	// Check inspects doc within the context of the whole corpus.
	Check(ctx context.Context, corpus Corpus, doc *Document) ([]Finding, error)
}

// CorpusRule is an optional extension for rules that operate on the corpus as
// a whole (e.g. index coverage) rather than per document.
type CorpusRule interface {
	Rule
	CheckCorpus(ctx context.Context, corpus Corpus) ([]Finding, error)
}

// ScanOptions controls a single audit run.
type ScanOptions struct {
	// Rules limits the run to the named rule IDs; empty means all enabled.
	Rules []string
	// DryRun skips history persistence.
	DryRun bool
	// FailOn sets the severity threshold that marks the run as failed.
	FailOn Severity
	Loader LoadOptions
}

// Report summarises a completed audit run.
type Report struct {
	RunID      uuid.UUID     `json:"run_id"`
	Root       string        `json:"root"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	Documents  int           `json:"documents"`
	Findings   []Finding     `json:"findings"`
	Errors     int           `json:"errors"`
	Warnings   int           `json:"warnings"`
	Notices    int           `json:"notices"`
	RulesRun   []string      `json:"rules_run"`
	Failed     bool          `json:"failed"`
	NewCount   int           `json:"new_count,omitempty"`
	FixedCount int           `json:"fixed_count,omitempty"`
}

// AuditService orchestrates corpus scans.
type AuditService interface {
	// Scan loads the corpus under dir and runs the configured rules.
	Scan(ctx context.Context, dir string, opts ScanOptions) (*Report, error)
	// VerifyLinks runs only the reference rules (link targets, fragments,
	// images) for fast pre-commit checks.
	VerifyLinks(ctx context.Context, dir string, opts ScanOptions) (*Report, error)
}

// RunStore persists audit runs so later scans can diff against a baseline.
type RunStore interface {
	SaveReport(ctx context.Context, report *Report) error
	LatestReport(ctx context.Context, root string) (*Report, error)
	ListRuns(ctx context.Context, root string, limit int) ([]*Report, error)
}
