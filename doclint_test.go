package doclint_test

import (
	"context"
	"path/filepath"
	"testing"

	doclint "github.com/goliatone/go-doclint"
	auditcmd "github.com/goliatone/go-doclint/internal/commands/audit"
	"github.com/goliatone/go-doclint/pkg/testsupport"
)

var moduleCorpus = map[string]string{
	"README.md": `# Standards

- [Architecture](Architecture/Architecture.md)
- [Tooling](Tooling/Tooling.md)
`,
	"Architecture/Architecture.md": `# Architecture

See [missing](Missing/Missing.md) for details.
`,
	"Tooling/Tooling.md": `# Tooling

## Linters
`,
}

func newModule(t *testing.T, mutate func(*doclint.Config)) *doclint.Module {
	t.Helper()

	root := testsupport.WriteCorpus(t, moduleCorpus)
	cfg := doclint.DefaultConfig()
	cfg.Corpus.BasePath = root
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := doclint.New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { module.Close() })
	return module
}

func TestModuleScanFindsBrokenLink(t *testing.T) {
	module := newModule(t, nil)

	report, err := module.Audit().Scan(context.Background(), ".", doclint.ScanOptions{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.Documents != 3 {
		t.Fatalf("expected 3 documents, got %d", report.Documents)
	}
	if report.Errors != 1 {
		t.Fatalf("expected 1 error, got %d (%+v)", report.Errors, report.Findings)
	}
	if !report.Failed {
		t.Fatal("expected failing run")
	}

	found := false
	for _, finding := range report.Findings {
		if finding.Rule == "link-target" && finding.Target == "Missing/Missing.md" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected link-target finding, got %+v", report.Findings)
	}
}

func TestModuleVerifyLinksSkipsStructureRules(t *testing.T) {
	module := newModule(t, nil)

	report, err := module.Audit().VerifyLinks(context.Background(), ".", doclint.ScanOptions{})
	if err != nil {
		t.Fatalf("VerifyLinks returned error: %v", err)
	}
	if len(report.RulesRun) != 3 {
		t.Fatalf("expected 3 reference rules, got %v", report.RulesRun)
	}
}

func TestModuleWithoutHistoryHasNoRunStore(t *testing.T) {
	module := newModule(t, nil)

	if module.Runs() != nil {
		t.Fatal("expected no run store with history disabled")
	}
}

func TestModulePersistsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "doclint.db")
	module := newModule(t, func(cfg *doclint.Config) {
		cfg.Features.History = true
		cfg.Storage.DSN = "file:" + dbPath
	})

	store := module.Runs()
	if store == nil {
		t.Fatal("expected run store with history enabled")
	}

	report, err := module.Audit().Scan(context.Background(), ".", doclint.ScanOptions{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if report.NewCount != len(report.Findings) {
		t.Fatalf("expected first run findings marked new, got %d of %d", report.NewCount, len(report.Findings))
	}

	latest, err := store.LatestReport(context.Background(), report.Root)
	if err != nil {
		t.Fatalf("LatestReport returned error: %v", err)
	}
	if latest == nil || latest.RunID != report.RunID {
		t.Fatalf("expected persisted run %s, got %+v", report.RunID, latest)
	}
}

func TestModuleDisabledRulesAreSkipped(t *testing.T) {
	module := newModule(t, func(cfg *doclint.Config) {
		cfg.Rules.Disabled = []string{"link-target"}
	})

	report, err := module.Audit().Scan(context.Background(), ".", doclint.ScanOptions{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	for _, finding := range report.Findings {
		if finding.Rule == "link-target" {
			t.Fatalf("disabled rule still ran: %+v", finding)
		}
	}
	if len(report.RulesRun) != 7 {
		t.Fatalf("expected 7 rules recorded, got %v", report.RulesRun)
	}
}

func TestModuleRegisterCommandsExecutesScan(t *testing.T) {
	module := newModule(t, nil)

	handlers, err := module.RegisterCommands(nil)
	if err != nil {
		t.Fatalf("RegisterCommands returned error: %v", err)
	}

	if err := handlers.Scan.Execute(context.Background(), auditcmd.ScanDirectoryCommand{Directory: "."}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	report := handlers.Scan.LastReport()
	if report == nil {
		t.Fatal("expected report from command execution")
	}
	if report.Errors != 1 {
		t.Fatalf("expected the broken link reported, got %d errors", report.Errors)
	}
}
