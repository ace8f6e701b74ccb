package rules

import (
	"context"
	"fmt"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const RuleHeadingStructure = "heading-structure"

// HeadingStructureRule enforces a well-formed heading hierarchy: a single
// top-level heading and no level skipped on the way down.
type HeadingStructureRule struct{}

// NewHeadingStructureRule builds the heading hierarchy rule.
func NewHeadingStructureRule() *HeadingStructureRule {
	return &HeadingStructureRule{}
}

func (r *HeadingStructureRule) ID() string                    { return RuleHeadingStructure }
func (r *HeadingStructureRule) Severity() interfaces.Severity { return interfaces.SeverityWarning }

func (r *HeadingStructureRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || doc.Inventory == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	headings := doc.Inventory.Headings
	if len(headings) == 0 {
		return nil, nil
	}

	var findings []interfaces.Finding

	topLevel := 0
	previous := 0
	for _, heading := range headings {
		if heading.Level == 1 {
			topLevel++
			if topLevel > 1 {
				findings = append(findings, interfaces.Finding{
					Rule:     r.ID(),
					Severity: r.Severity(),
					Path:     doc.FilePath,
					Line:     heading.Line,
					Message:  fmt.Sprintf("multiple top-level headings; %q should be demoted", heading.Text),
				})
			}
		}

		if previous > 0 && heading.Level > previous+1 {
			findings = append(findings, interfaces.Finding{
				Rule:     r.ID(),
				Severity: r.Severity(),
				Path:     doc.FilePath,
				Line:     heading.Line,
				Message:  fmt.Sprintf("heading %q skips from level %d to %d", heading.Text, previous, heading.Level),
			})
		}
		previous = heading.Level
	}

	if topLevel == 0 {
		findings = append(findings, interfaces.Finding{
			Rule:     r.ID(),
			Severity: interfaces.SeverityNotice,
			Path:     doc.FilePath,
			Line:     headings[0].Line,
			Message:  "document has no top-level heading",
		})
	}

	return findings, nil
}
