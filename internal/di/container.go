package di

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-doclint/internal/audit"
	"github.com/goliatone/go-doclint/internal/logging"
	"github.com/goliatone/go-doclint/internal/logging/console"
	"github.com/goliatone/go-doclint/internal/logging/gologger"
	"github.com/goliatone/go-doclint/internal/markdown"
	"github.com/goliatone/go-doclint/internal/report"
	"github.com/goliatone/go-doclint/internal/rules"
	"github.com/goliatone/go-doclint/internal/runtimeconfig"
	"github.com/goliatone/go-doclint/pkg/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

// Container wires module dependencies from a validated runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	parser         interfaces.MarkdownParser

	bunDB         *bun.DB
	ownsDB        bool
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	documentSvc *markdown.Service
	registry    *rules.Registry
	runStore    interfaces.RunStore
	auditSvc    interfaces.AuditService
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithParser overrides the default Goldmark parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithBunDB supplies an externally managed database handle for run history.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithRunStore overrides the default run store binding.
func WithRunStore(store interfaces.RunStore) Option {
	return func(c *Container) {
		c.runStore = store
	}
}

// WithAuditService overrides the default audit service binding.
func WithAuditService(svc interfaces.AuditService) Option {
	return func(c *Container) {
		c.auditSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	if err := c.configureServices(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DocumentService exposes the Markdown document service.
func (c *Container) DocumentService() *markdown.Service {
	return c.documentSvc
}

// RuleRegistry exposes the configured rule registry.
func (c *Container) RuleRegistry() *rules.Registry {
	return c.registry
}

// RunStore exposes the run history store. Nil when history is disabled.
func (c *Container) RunStore() interfaces.RunStore {
	return c.runStore
}

// AuditService exposes the corpus audit service.
func (c *Container) AuditService() interfaces.AuditService {
	return c.auditSvc
}

// DB exposes the underlying database handle. Nil when history is disabled.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// Close releases resources owned by the container.
func (c *Container) Close() error {
	if c.bunDB != nil && c.ownsDB {
		return c.bunDB.Close()
	}
	return nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		c.loggerProvider = logging.NoOpProvider()
		return nil
	}

	switch c.Config.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("doclint container: configure gologger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureStorage() error {
	if !c.Config.Features.History {
		return nil
	}
	if c.runStore != nil {
		return nil
	}

	if c.bunDB == nil {
		sqldb, err := sql.Open("sqlite3", c.Config.Storage.DSN)
		if err != nil {
			return fmt.Errorf("doclint container: open run store %s: %w", c.Config.Storage.DSN, err)
		}
		c.bunDB = bun.NewDB(sqldb, sqlitedialect.New())
		c.ownsDB = true
	}

	if err := report.EnsureSchema(context.Background(), c.bunDB); err != nil {
		return fmt.Errorf("doclint container: prepare run store schema: %w", err)
	}

	c.runStore = report.NewBunRunStoreWithCache(c.bunDB, c.cacheService, c.keySerializer)
	return nil
}

func (c *Container) configureServices() error {
	if c.documentSvc == nil {
		svc, err := markdown.NewService(markdown.Config{
			BasePath:  c.Config.Corpus.BasePath,
			Pattern:   c.Config.Corpus.Pattern,
			Recursive: c.Config.Corpus.Recursive,
			Ignore:    c.Config.Corpus.Ignore,
			Parser: interfaces.ParseOptions{
				Extensions: c.Config.Corpus.Parser.Extensions,
				HardWraps:  c.Config.Corpus.Parser.HardWraps,
				SafeMode:   c.Config.Corpus.Parser.SafeMode,
			},
		}, c.parser)
		if err != nil {
			return fmt.Errorf("doclint container: configure document service: %w", err)
		}
		c.documentSvc = svc
	}

	if c.registry == nil {
		c.registry = rules.NewRegistry(rules.Config{
			Disabled:          c.Config.Rules.Disabled,
			Severities:        severityOverrides(c.Config.Rules.Severities),
			IndexFile:         c.Config.Corpus.IndexFile,
			ImagesDir:         c.Config.Corpus.ImagesDir,
			FrontMatterSchema: c.Config.Rules.FrontMatterSchema,
		})
	}

	if c.auditSvc == nil {
		logger := logging.AuditLogger(c.loggerProvider)
		svc, err := audit.NewService(audit.ServiceConfig{
			Documents: c.documentSvc,
			Registry:  c.registry,
			Store:     c.runStore,
			Logger:    logger,
			IndexFile: c.Config.Corpus.IndexFile,
		})
		if err != nil {
			return fmt.Errorf("doclint container: configure audit service: %w", err)
		}
		c.auditSvc = svc
	}

	return nil
}

// severityOverrides normalises configured severities the same way config
// validation does, so any value Validate accepts maps onto the grade the
// user asked for. Unknown values are skipped rather than silently hardened.
func severityOverrides(raw map[string]string) map[string]interfaces.Severity {
	if len(raw) == 0 {
		return nil
	}
	overrides := make(map[string]interfaces.Severity, len(raw))
	for rule, severity := range raw {
		switch strings.ToLower(strings.TrimSpace(severity)) {
		case "error":
			overrides[rule] = interfaces.SeverityError
		case "warning":
			overrides[rule] = interfaces.SeverityWarning
		case "notice":
			overrides[rule] = interfaces.SeverityNotice
		}
	}
	return overrides
}
