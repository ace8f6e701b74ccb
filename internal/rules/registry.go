package rules

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// Config controls which rules run and how their findings are graded.
type Config struct {
	// Disabled lists rule IDs excluded from scans.
	Disabled []string
	// Severities overrides the default severity per rule id.
	Severities map[string]interfaces.Severity
	// IndexFile names the corpus index document (defaults to "README.md").
	IndexFile string
	// ImagesDir names the conventional per-topic image folder (defaults to "Images").
	ImagesDir string
	// FrontMatterSchema is an optional JSON schema applied to document
	// frontmatter. When empty the frontmatter rule is skipped.
	FrontMatterSchema map[string]any
}

// Registry holds the configured rule set.
type Registry struct {
	rules    map[string]interfaces.Rule
	disabled map[string]struct{}
}

// ReferenceRuleIDs lists the rules that resolve references between files.
// VerifyLinks-style fast paths run exactly this subset.
func ReferenceRuleIDs() []string {
	return []string{RuleLinkTarget, RuleLinkFragment, RuleImageExists}
}

// NewRegistry builds a registry containing every built-in rule, applying the
// supplied disable list and severity overrides.
func NewRegistry(cfg Config) *Registry {
	indexFile := strings.TrimSpace(cfg.IndexFile)
	if indexFile == "" {
		indexFile = "README.md"
	}
	imagesDir := strings.TrimSpace(cfg.ImagesDir)
	if imagesDir == "" {
		imagesDir = "Images"
	}

	builtin := []interfaces.Rule{
		NewLinkTargetRule(indexFile),
		NewLinkFragmentRule(),
		NewImageExistsRule(imagesDir),
		NewImageAltTextRule(),
		NewHeadingStructureRule(),
		NewCodeFenceRule(),
		NewIndexCoverageRule(indexFile, imagesDir),
		NewFrontMatterSchemaRule(cfg.FrontMatterSchema),
	}

	registry := &Registry{
		rules:    make(map[string]interfaces.Rule, len(builtin)),
		disabled: make(map[string]struct{}, len(cfg.Disabled)),
	}

	for _, rule := range builtin {
		if override, ok := cfg.Severities[rule.ID()]; ok {
			rule = withSeverity(rule, override)
		}
		registry.rules[rule.ID()] = rule
	}
	for _, id := range cfg.Disabled {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			registry.disabled[trimmed] = struct{}{}
		}
	}

	return registry
}

// Register adds or replaces a rule. Host applications can contribute custom
// checks alongside the built-ins.
func (r *Registry) Register(rule interfaces.Rule) {
	if rule == nil || strings.TrimSpace(rule.ID()) == "" {
		return
	}
	r.rules[rule.ID()] = rule
}

// Rule returns the rule with the given id, or nil.
func (r *Registry) Rule(id string) interfaces.Rule {
	return r.rules[id]
}

// Rules returns the enabled rules limited to the supplied ids; an empty list
// selects every enabled rule. Results are ordered by id for deterministic
// reports.
func (r *Registry) Rules(ids ...string) []interfaces.Rule {
	selected := map[string]struct{}{}
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			selected[trimmed] = struct{}{}
		}
	}

	out := make([]interfaces.Rule, 0, len(r.rules))
	for id, rule := range r.rules {
		if _, off := r.disabled[id]; off {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[id]; !ok {
				continue
			}
		}
		out = append(out, rule)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}

// withSeverity wraps a rule so its findings carry an overridden severity.
func withSeverity(rule interfaces.Rule, severity interfaces.Severity) interfaces.Rule {
	switch severity {
	case interfaces.SeverityError, interfaces.SeverityWarning, interfaces.SeverityNotice:
	default:
		return rule
	}
	if corpusRule, ok := rule.(interfaces.CorpusRule); ok {
		return &severityCorpusOverride{severityOverride{inner: rule, severity: severity}, corpusRule}
	}
	return &severityOverride{inner: rule, severity: severity}
}

type severityOverride struct {
	inner    interfaces.Rule
	severity interfaces.Severity
}

func (s *severityOverride) ID() string                    { return s.inner.ID() }
func (s *severityOverride) Severity() interfaces.Severity { return s.severity }

func (s *severityOverride) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	findings, err := s.inner.Check(ctx, corpus, doc)
	return s.regrade(findings), err
}

func (s *severityOverride) regrade(findings []interfaces.Finding) []interfaces.Finding {
	for i := range findings {
		findings[i].Severity = s.severity
	}
	return findings
}

type severityCorpusOverride struct {
	severityOverride
	corpus interfaces.CorpusRule
}

func (s *severityCorpusOverride) CheckCorpus(ctx context.Context, corpus interfaces.Corpus) ([]interfaces.Finding, error) {
	findings, err := s.corpus.CheckCorpus(ctx, corpus)
	return s.regrade(findings), err
}
