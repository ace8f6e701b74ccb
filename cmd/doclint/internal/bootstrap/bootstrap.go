package bootstrap

import (
	"fmt"
	"strings"

	doclint "github.com/goliatone/go-doclint"
	"github.com/goliatone/go-doclint/internal/di"
	"github.com/goliatone/go-doclint/internal/logging"
	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// Options captures configuration for doclint CLI bootstraps.
type Options struct {
	BasePath       string
	Pattern        string
	Recursive      bool
	Ignore         []string
	IndexFile      string
	ImagesDir      string
	DisabledRules  []string
	History        bool
	StorageDSN     string
	LogLevel       string
	Quiet          bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the doclint module and the configured audit service/logger.
type Module struct {
	Module  *doclint.Module
	Service interfaces.AuditService
	Logger  interfaces.Logger
}

// BuildModule constructs a doclint module configured for CLI scans.
func BuildModule(opts Options) (*Module, error) {
	cfg := doclint.DefaultConfig()
	cfg.Features.Audit = true
	cfg.Features.Logger = !opts.Quiet
	cfg.Features.History = opts.History

	cfg.Corpus.BasePath = strings.TrimSpace(opts.BasePath)
	if cfg.Corpus.BasePath == "" {
		cfg.Corpus.BasePath = "."
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Corpus.Pattern = trimmed
	}
	cfg.Corpus.Recursive = opts.Recursive
	if len(opts.Ignore) > 0 {
		cfg.Corpus.Ignore = cloneStrings(opts.Ignore)
	}
	if trimmed := strings.TrimSpace(opts.IndexFile); trimmed != "" {
		cfg.Corpus.IndexFile = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ImagesDir); trimmed != "" {
		cfg.Corpus.ImagesDir = trimmed
	}
	if len(opts.DisabledRules) > 0 {
		cfg.Rules.Disabled = cloneStrings(opts.DisabledRules)
	}
	if trimmed := strings.TrimSpace(opts.StorageDSN); trimmed != "" {
		cfg.Storage.DSN = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := doclint.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise doclint module: %w", err)
	}

	service := module.Audit()
	if service == nil {
		return nil, fmt.Errorf("audit service not configured; ensure Features.Audit is enabled")
	}

	logger := logging.AuditLogger(module.Container().LoggerProvider())

	return &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}, nil
}

// SplitList parses a comma separated value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
