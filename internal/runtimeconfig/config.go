package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrCorpusBasePathRequired = errors.New("doclint config: corpus base path is required when auditing is enabled")
var ErrRuleUnknownSeverity = errors.New("doclint config: rule severity override is invalid")
var ErrHistoryRequiresStorage = errors.New("doclint config: run history requires a storage DSN")
var ErrCommandsCronRequiresHistory = errors.New("doclint config: command cron auto-registration requires run history to be enabled")
var ErrLoggingProviderRequired = errors.New("doclint config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("doclint config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("doclint config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("doclint config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the doclint module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Corpus   CorpusConfig
	Rules    RulesConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Commands CommandsConfig
	Logging  LoggingConfig
	Features Features
}

// CorpusConfig captures filesystem behaviour for corpus discovery.
type CorpusConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Ignore    []string
	IndexFile string
	ImagesDir string
	Parser    ParserConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// RulesConfig controls which rules run and at what severity.
type RulesConfig struct {
	Disabled          []string
	Severities        map[string]string
	FrontMatterSchema map[string]any
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	DSN      string
}

// CacheConfig captures cache behaviour toggles for the run store.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
	AutoRegisterCron       bool
	ScanCron               string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Audit   bool
	History bool
	Logger  bool
}

// DefaultConfig returns opinionated defaults for a README-indexed corpus.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Corpus: CorpusConfig{
			BasePath:  ".",
			Pattern:   "*.md",
			Recursive: true,
			IndexFile: "README.md",
			ImagesDir: "Images",
		},
		Rules: RulesConfig{
			Severities: map[string]string{},
		},
		Storage: StorageConfig{
			Provider: "bun",
			DSN:      "file:doclint.db",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{
			Audit: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Features.Audit {
		if strings.TrimSpace(cfg.Corpus.BasePath) == "" {
			return ErrCorpusBasePathRequired
		}
	}
	if cfg.Features.History {
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrHistoryRequiresStorage
		}
	}
	if cfg.Commands.AutoRegisterCron && !cfg.Features.History {
		return ErrCommandsCronRequiresHistory
	}
	for rule, severity := range cfg.Rules.Severities {
		if !isSupportedSeverity(severity) {
			return fmt.Errorf("%w: %s=%s", ErrRuleUnknownSeverity, rule, severity)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedSeverity(severity string) bool {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "error", "warning", "notice":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
