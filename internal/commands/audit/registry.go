package auditcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-doclint/internal/commands"
	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the audit command handlers produced by RegisterAuditCommands.
type HandlerSet struct {
	Scan   *ScanDirectoryHandler
	Verify *VerifyLinksHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	scanHandlerOpts   []commands.HandlerOption[ScanDirectoryCommand]
	verifyHandlerOpts []commands.HandlerOption[VerifyLinksCommand]
}

// WithScanHandlerOptions forwards options to the ScanDirectoryHandler constructor.
func WithScanHandlerOptions(opts ...commands.HandlerOption[ScanDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.scanHandlerOpts = append(cfg.scanHandlerOpts, opts...)
	}
}

// WithVerifyHandlerOptions forwards options to the VerifyLinksHandler constructor.
func WithVerifyHandlerOptions(opts ...commands.HandlerOption[VerifyLinksCommand]) Option {
	return func(cfg *options) {
		cfg.verifyHandlerOpts = append(cfg.verifyHandlerOpts, opts...)
	}
}

// RegisterAuditCommands builds audit command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations (dispatcher, cron) as needed.
func RegisterAuditCommands(reg CommandRegistry, service interfaces.AuditService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("audit command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "audit")

	scanHandler := NewScanDirectoryHandler(service, logger, gates, cfg.scanHandlerOpts...)
	verifyHandler := NewVerifyLinksHandler(service, logger, gates, cfg.verifyHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(scanHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(verifyHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Scan:   scanHandler,
		Verify: verifyHandler,
	}, nil
}

// RegisterAuditCron wires the provided scan handler into a cron registrar using the supplied
// command configuration and message payload. The handler is executed with a background context.
func RegisterAuditCron(reg CronRegistrar, handler *ScanDirectoryHandler, cfg command.HandlerConfig, msg ScanDirectoryCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
