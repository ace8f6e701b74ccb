package rules

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const (
	RuleLinkTarget   = "link-target"
	RuleLinkFragment = "link-fragment"
)

// LinkTargetRule verifies that every relative link resolves to an existing
// file in the corpus. Links to directories pass when the directory holds an
// index document or a Markdown file named after it, matching the corpus
// convention of one same-named document per topic folder.
type LinkTargetRule struct {
	indexFile string
}

// NewLinkTargetRule builds the rule with the configured index file name.
func NewLinkTargetRule(indexFile string) *LinkTargetRule {
	return &LinkTargetRule{indexFile: indexFile}
}

func (r *LinkTargetRule) ID() string                    { return RuleLinkTarget }
func (r *LinkTargetRule) Severity() interfaces.Severity { return interfaces.SeverityError }

func (r *LinkTargetRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || doc.Inventory == nil {
		return nil, nil
	}

	var findings []interfaces.Finding
	for _, link := range doc.Inventory.Links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if link.Kind != interfaces.LinkInternal {
			continue
		}

		target, _ := splitDestination(link.Destination)
		if target == "" {
			continue
		}

		resolved := resolveRelative(doc.FilePath, target)
		if escapesCorpus(resolved) {
			findings = append(findings, interfaces.Finding{
				Rule:     r.ID(),
				Severity: r.Severity(),
				Path:     doc.FilePath,
				Line:     link.Line,
				Target:   link.Destination,
				Message:  fmt.Sprintf("link %q escapes the documentation root", link.Destination),
			})
			continue
		}

		if corpus.FileExists(resolved) {
			continue
		}

		if r.directoryHasIndex(corpus, resolved) {
			continue
		}

		findings = append(findings, interfaces.Finding{
			Rule:     r.ID(),
			Severity: r.Severity(),
			Path:     doc.FilePath,
			Line:     link.Line,
			Target:   resolved,
			Message:  fmt.Sprintf("link %q does not resolve to a file in the corpus", link.Destination),
		})
	}

	return findings, nil
}

func (r *LinkTargetRule) directoryHasIndex(corpus interfaces.Corpus, dir string) bool {
	found := false
	for _, candidate := range corpus.Directories() {
		if candidate == dir {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if corpus.FileExists(path.Join(dir, r.indexFile)) {
		return true
	}
	// Topic folders carry a Markdown file named after the folder itself.
	return corpus.FileExists(path.Join(dir, path.Base(dir)+".md"))
}

// LinkFragmentRule verifies that anchor links resolve to a heading in the
// target document. Anchors are matched against goldmark's auto-generated
// heading IDs first, then against slug-normalized heading text to tolerate
// hand-written anchors.
type LinkFragmentRule struct{}

// NewLinkFragmentRule builds the fragment resolution rule.
func NewLinkFragmentRule() *LinkFragmentRule {
	return &LinkFragmentRule{}
}

func (r *LinkFragmentRule) ID() string                    { return RuleLinkFragment }
func (r *LinkFragmentRule) Severity() interfaces.Severity { return interfaces.SeverityWarning }

func (r *LinkFragmentRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || doc.Inventory == nil {
		return nil, nil
	}

	var findings []interfaces.Finding
	for _, link := range doc.Inventory.Links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if link.Kind == interfaces.LinkExternal {
			continue
		}

		target, fragment := splitDestination(link.Destination)
		if fragment == "" {
			continue
		}

		targetDoc := doc
		if target != "" {
			resolved := resolveRelative(doc.FilePath, target)
			targetDoc = corpus.Document(resolved)
			if targetDoc == nil {
				// The missing file is the link-target rule's finding.
				continue
			}
		}

		if anchorDefined(targetDoc, fragment) {
			continue
		}

		findings = append(findings, interfaces.Finding{
			Rule:     r.ID(),
			Severity: r.Severity(),
			Path:     doc.FilePath,
			Line:     link.Line,
			Target:   targetDoc.FilePath,
			Message:  fmt.Sprintf("anchor %q not found in %s", fragment, targetDoc.FilePath),
		})
	}

	return findings, nil
}

func anchorDefined(doc *interfaces.Document, fragment string) bool {
	if doc == nil || doc.Inventory == nil {
		return false
	}
	want := strings.ToLower(strings.TrimSpace(fragment))
	for _, heading := range doc.Inventory.Headings {
		if strings.ToLower(heading.Anchor) == want {
			return true
		}
		if normalized, err := slug.Normalize(heading.Text); err == nil && normalized == want {
			return true
		}
	}
	return false
}
