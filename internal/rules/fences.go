package rules

import (
	"context"
	"fmt"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const RuleCodeFence = "code-fence"

// CodeFenceRule flags fenced code blocks whose closing fence never appears.
// An unterminated fence swallows the rest of the document when rendered,
// which is the most common way a topic page silently loses half its prose.
type CodeFenceRule struct{}

// NewCodeFenceRule builds the fence balance rule.
func NewCodeFenceRule() *CodeFenceRule {
	return &CodeFenceRule{}
}

func (r *CodeFenceRule) ID() string                    { return RuleCodeFence }
func (r *CodeFenceRule) Severity() interfaces.Severity { return interfaces.SeverityError }

func (r *CodeFenceRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || doc.Inventory == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var findings []interfaces.Finding
	for _, fence := range doc.Inventory.CodeFences {
		if fence.Closed {
			continue
		}
		label := fence.Language
		if label == "" {
			label = "plain"
		}
		findings = append(findings, interfaces.Finding{
			Rule:     r.ID(),
			Severity: r.Severity(),
			Path:     doc.FilePath,
			Line:     fence.Line,
			Message:  fmt.Sprintf("unclosed %s code fence", label),
		})
	}

	return findings, nil
}
