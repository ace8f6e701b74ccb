package auditcmd

import (
	"context"
	"errors"
	"sync"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-doclint/internal/commands"
	"github.com/goliatone/go-doclint/internal/logging"
	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const (
	scanOperation   = "audit.scan_directory"
	verifyOperation = "audit.verify_links"
)

var (
	// ErrAuditFeatureDisabled is returned when the audit feature flag is disabled at runtime.
	ErrAuditFeatureDisabled = errors.New("audit command: feature disabled")
)

var (
	_ command.Commander[ScanDirectoryCommand] = (*ScanDirectoryHandler)(nil)
	_ command.Commander[VerifyLinksCommand]   = (*VerifyLinksHandler)(nil)
)

// ScanDirectoryHandler orchestrates corpus scans via the shared command handler foundation.
type ScanDirectoryHandler struct {
	inner *commands.Handler[ScanDirectoryCommand]

	// mu guards last; a handler can be dispatched from cron and a CLI at once.
	mu   sync.Mutex
	last *interfaces.Report
}

// NewScanDirectoryHandler creates a handler bound to the supplied audit service.
func NewScanDirectoryHandler(service interfaces.AuditService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ScanDirectoryCommand]) *ScanDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	handler := &ScanDirectoryHandler{}

	exec := func(ctx context.Context, msg ScanDirectoryCommand) error {
		if !gates.auditEnabled() {
			return ErrAuditFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		scanOpts := interfaces.ScanOptions{
			Rules:  msg.Rules,
			FailOn: failOnSeverity(msg.FailOn),
			DryRun: msg.DryRun || !gates.historyEnabled(),
		}

		report, err := service.Scan(ctx, msg.Directory, scanOpts)
		if err != nil {
			return err
		}
		if report != nil {
			handler.setLastReport(report)
			logging.WithFields(baseLogger, map[string]any{
				"documents":     report.Documents,
				"finding_count": len(report.Findings),
				"error_count":   report.Errors,
				"warning_count": report.Warnings,
				"notice_count":  report.Notices,
				"failed":        report.Failed,
				"dry_run":       msg.DryRun,
			}).Info("audit.command.scan_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ScanDirectoryCommand]{
		commands.WithLogger[ScanDirectoryCommand](baseLogger),
		commands.WithOperation[ScanDirectoryCommand](scanOperation),
		commands.WithMessageFields(func(msg ScanDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if len(msg.Rules) > 0 {
				fields["rules"] = msg.Rules
			}
			if msg.FailOn != "" {
				fields["fail_on"] = msg.FailOn
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ScanDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	handler.inner = commands.NewHandler(exec, handlerOpts...)
	return handler
}

// Execute satisfies command.Commander[ScanDirectoryCommand].
func (h *ScanDirectoryHandler) Execute(ctx context.Context, msg ScanDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LastReport returns the report produced by the most recent successful execution.
func (h *ScanDirectoryHandler) LastReport() *interfaces.Report {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

func (h *ScanDirectoryHandler) setLastReport(report *interfaces.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = report
}

// VerifyLinksHandler runs the reference rules via the shared command handler foundation.
type VerifyLinksHandler struct {
	inner *commands.Handler[VerifyLinksCommand]

	mu   sync.Mutex
	last *interfaces.Report
}

// NewVerifyLinksHandler creates a handler bound to the supplied audit service.
func NewVerifyLinksHandler(service interfaces.AuditService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[VerifyLinksCommand]) *VerifyLinksHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	handler := &VerifyLinksHandler{}

	exec := func(ctx context.Context, msg VerifyLinksCommand) error {
		if !gates.auditEnabled() {
			return ErrAuditFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report, err := service.VerifyLinks(ctx, msg.Directory, interfaces.ScanOptions{
			FailOn: failOnSeverity(msg.FailOn),
		})
		if err != nil {
			return err
		}
		if report != nil {
			handler.setLastReport(report)
			logging.WithFields(baseLogger, map[string]any{
				"documents":     report.Documents,
				"finding_count": len(report.Findings),
				"error_count":   report.Errors,
				"failed":        report.Failed,
			}).Info("audit.command.verify_links.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[VerifyLinksCommand]{
		commands.WithLogger[VerifyLinksCommand](baseLogger),
		commands.WithOperation[VerifyLinksCommand](verifyOperation),
		commands.WithMessageFields(func(msg VerifyLinksCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.FailOn != "" {
				fields["fail_on"] = msg.FailOn
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[VerifyLinksCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	handler.inner = commands.NewHandler(exec, handlerOpts...)
	return handler
}

// Execute satisfies command.Commander[VerifyLinksCommand].
func (h *VerifyLinksHandler) Execute(ctx context.Context, msg VerifyLinksCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LastReport returns the report produced by the most recent successful execution.
func (h *VerifyLinksHandler) LastReport() *interfaces.Report {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

func (h *VerifyLinksHandler) setLastReport(report *interfaces.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = report
}

func failOnSeverity(value string) interfaces.Severity {
	switch value {
	case "warning":
		return interfaces.SeverityWarning
	case "notice":
		return interfaces.SeverityNotice
	default:
		return interfaces.SeverityError
	}
}
