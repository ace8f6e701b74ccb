package doclint

import "github.com/goliatone/go-doclint/internal/runtimeconfig"

var (
	ErrCorpusBasePathRequired      = runtimeconfig.ErrCorpusBasePathRequired
	ErrRuleUnknownSeverity         = runtimeconfig.ErrRuleUnknownSeverity
	ErrHistoryRequiresStorage      = runtimeconfig.ErrHistoryRequiresStorage
	ErrCommandsCronRequiresHistory = runtimeconfig.ErrCommandsCronRequiresHistory
	ErrLoggingProviderRequired     = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown      = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid         = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid        = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	CorpusConfig   = runtimeconfig.CorpusConfig
	ParserConfig   = runtimeconfig.ParserConfig
	RulesConfig    = runtimeconfig.RulesConfig
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
