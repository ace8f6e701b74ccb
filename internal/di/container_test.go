package di

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-doclint/internal/logging/gologger"
	"github.com/goliatone/go-doclint/internal/runtimeconfig"
	"github.com/goliatone/go-doclint/pkg/interfaces"
	"github.com/goliatone/go-doclint/pkg/testsupport"
)

func corpusConfig(t *testing.T) runtimeconfig.Config {
	t.Helper()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Corpus.BasePath = testsupport.WriteCorpus(t, map[string]string{
		"README.md": "# Standards\n",
	})
	return cfg
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := corpusConfig(t)
	cfg.Corpus.BasePath = " "

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrCorpusBasePathRequired) {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestNewContainerWiresServices(t *testing.T) {
	container, err := NewContainer(corpusConfig(t))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	if container.DocumentService() == nil {
		t.Fatal("expected document service")
	}
	if container.RuleRegistry() == nil {
		t.Fatal("expected rule registry")
	}
	if container.AuditService() == nil {
		t.Fatal("expected audit service")
	}
	if container.RunStore() != nil {
		t.Fatal("expected no run store with history disabled")
	}
	if container.DB() != nil {
		t.Fatal("expected no database handle with history disabled")
	}
}

func TestNewContainerConfiguresRunStore(t *testing.T) {
	cfg := corpusConfig(t)
	cfg.Features.History = true
	cfg.Storage.DSN = "file:" + filepath.Join(t.TempDir(), "doclint.db")

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	if container.RunStore() == nil {
		t.Fatal("expected run store with history enabled")
	}
	if container.DB() == nil {
		t.Fatal("expected database handle with history enabled")
	}
}

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := corpusConfig(t)
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}

	logger := provider.GetLogger("doclint.test")
	if logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestSeverityOverridesAcceptEveryValidatedSpelling(t *testing.T) {
	cfg := corpusConfig(t)
	cfg.Rules.Severities = map[string]string{"link-target": "Warning"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate rejected mixed-case severity: %v", err)
	}

	overrides := severityOverrides(map[string]string{
		"link-target":       "Warning",
		"image-alt-text":    " notice ",
		"heading-structure": "ERROR",
	})

	if got := overrides["link-target"]; got != interfaces.SeverityWarning {
		t.Fatalf("expected warning for %q, got %v", "Warning", got)
	}
	if got := overrides["image-alt-text"]; got != interfaces.SeverityNotice {
		t.Fatalf("expected notice for padded value, got %v", got)
	}
	if got := overrides["heading-structure"]; got != interfaces.SeverityError {
		t.Fatalf("expected error for upper-case value, got %v", got)
	}
}

func TestSeverityOverridesSkipUnknownValues(t *testing.T) {
	overrides := severityOverrides(map[string]string{"link-target": "catastrophic"})
	if _, ok := overrides["link-target"]; ok {
		t.Fatalf("unknown severity must not be applied, got %v", overrides["link-target"])
	}
}

func TestContainerAppliesMixedCaseSeverityOverride(t *testing.T) {
	cfg := corpusConfig(t)
	cfg.Rules.Severities = map[string]string{"link-target": "Warning"}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	rule := container.RuleRegistry().Rule("link-target")
	if rule == nil {
		t.Fatal("expected link-target rule")
	}
	if rule.Severity() != interfaces.SeverityWarning {
		t.Fatalf("expected configured warning severity, got %v", rule.Severity())
	}
}

type overrideAuditService struct{}

func (overrideAuditService) Scan(context.Context, string, interfaces.ScanOptions) (*interfaces.Report, error) {
	return &interfaces.Report{}, nil
}

func (overrideAuditService) VerifyLinks(context.Context, string, interfaces.ScanOptions) (*interfaces.Report, error) {
	return &interfaces.Report{}, nil
}

func TestNewContainerHonoursOverrides(t *testing.T) {
	override := overrideAuditService{}

	container, err := NewContainer(corpusConfig(t), WithAuditService(override))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	if _, ok := container.AuditService().(overrideAuditService); !ok {
		t.Fatalf("expected override audit service, got %T", container.AuditService())
	}
}
