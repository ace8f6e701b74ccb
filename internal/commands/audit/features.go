package auditcmd

// FeatureGates exposes runtime feature toggles required by audit command handlers.
// Callers should supply closures reading from doclint.Config.Features so handlers
// stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	AuditEnabled   func() bool
	HistoryEnabled func() bool
}

func (g FeatureGates) auditEnabled() bool {
	if g.AuditEnabled == nil {
		return true
	}
	return g.AuditEnabled()
}

func (g FeatureGates) historyEnabled() bool {
	if g.HistoryEnabled == nil {
		return true
	}
	return g.HistoryEnabled()
}
