package rules

import (
	"context"

	"github.com/goliatone/go-doclint/internal/validation"
	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const RuleFrontMatterSchema = "frontmatter-schema"

// FrontMatterSchemaRule validates document frontmatter against a configured
// JSON schema. With no schema the rule passes everything, so corpora without
// frontmatter conventions pay nothing for it.
type FrontMatterSchemaRule struct {
	schema map[string]any
}

// NewFrontMatterSchemaRule builds the frontmatter schema rule.
func NewFrontMatterSchemaRule(schema map[string]any) *FrontMatterSchemaRule {
	return &FrontMatterSchemaRule{schema: schema}
}

func (r *FrontMatterSchemaRule) ID() string                    { return RuleFrontMatterSchema }
func (r *FrontMatterSchemaRule) Severity() interfaces.Severity { return interfaces.SeverityWarning }

func (r *FrontMatterSchemaRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || len(r.schema) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := validation.ValidatePayload(r.schema, doc.FrontMatter.Raw)
	if err == nil {
		return nil, nil
	}

	issues := validation.Issues(err)
	findings := make([]interfaces.Finding, 0, len(issues))
	for _, issue := range issues {
		message := issue.Message
		if issue.Location != "" {
			message = issue.Location + ": " + message
		}
		findings = append(findings, interfaces.Finding{
			Rule:     r.ID(),
			Severity: r.Severity(),
			Path:     doc.FilePath,
			Message:  "frontmatter " + message,
		})
	}

	return findings, nil
}
