package doclint

import (
	auditcmd "github.com/goliatone/go-doclint/internal/commands/audit"
	"github.com/goliatone/go-doclint/internal/di"
	"github.com/goliatone/go-doclint/internal/markdown"
	"github.com/goliatone/go-doclint/internal/rules"
	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// DocumentService exports the document loading contract for consumers of the doclint package.
type DocumentService = *markdown.Service

// RuleRegistry exports the configured rule set.
type RuleRegistry = *rules.Registry

// AuditService exports the corpus audit contract.
type AuditService = interfaces.AuditService

// RunStore exports the run history contract.
type RunStore = interfaces.RunStore

// Report exports the scan outcome DTO.
type Report = interfaces.Report

// Finding exports the individual rule violation DTO.
type Finding = interfaces.Finding

// ScanOptions exports the per-scan configuration DTO.
type ScanOptions = interfaces.ScanOptions

// Severity exports the finding severity type.
type Severity = interfaces.Severity

const (
	SeverityError   = interfaces.SeverityError
	SeverityWarning = interfaces.SeverityWarning
	SeverityNotice  = interfaces.SeverityNotice
)

// Module represents the top level doclint runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a doclint module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Documents returns the configured document service.
func (m *Module) Documents() DocumentService {
	return m.container.DocumentService()
}

// Rules returns the configured rule registry.
func (m *Module) Rules() RuleRegistry {
	return m.container.RuleRegistry()
}

// Audit returns the configured audit service.
func (m *Module) Audit() AuditService {
	return m.container.AuditService()
}

// Runs returns the run history store when history is enabled.
func (m *Module) Runs() RunStore {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.RunStore()
}

// RegisterCommands builds the audit command handlers and registers them with
// the provided registry. Passing a nil registry still returns the handler set
// so callers can invoke handlers directly.
func (m *Module) RegisterCommands(reg auditcmd.CommandRegistry, opts ...auditcmd.Option) (*auditcmd.HandlerSet, error) {
	cfg := m.container.Config
	gates := auditcmd.FeatureGates{
		AuditEnabled:   func() bool { return cfg.Features.Audit },
		HistoryEnabled: func() bool { return cfg.Features.History },
	}
	return auditcmd.RegisterAuditCommands(reg, m.Audit(), m.container.LoggerProvider(), gates, opts...)
}

// Close releases resources owned by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
