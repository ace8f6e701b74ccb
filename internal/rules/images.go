package rules

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const (
	RuleImageExists  = "image-exists"
	RuleImageAltText = "image-alt-text"
)

// ImageExistsRule verifies that every relative image reference resolves to a
// file, and notes references that bypass the conventional per-topic images
// folder.
type ImageExistsRule struct {
	imagesDir string
}

// NewImageExistsRule builds the rule with the configured images folder name.
func NewImageExistsRule(imagesDir string) *ImageExistsRule {
	return &ImageExistsRule{imagesDir: imagesDir}
}

func (r *ImageExistsRule) ID() string                    { return RuleImageExists }
func (r *ImageExistsRule) Severity() interfaces.Severity { return interfaces.SeverityError }

func (r *ImageExistsRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || doc.Inventory == nil {
		return nil, nil
	}

	var findings []interfaces.Finding
	for _, image := range doc.Inventory.Images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if hasScheme(image.Destination) {
			continue
		}

		target, _ := splitDestination(image.Destination)
		if target == "" {
			continue
		}

		resolved := resolveRelative(doc.FilePath, target)
		if escapesCorpus(resolved) || !corpus.FileExists(resolved) {
			findings = append(findings, interfaces.Finding{
				Rule:     r.ID(),
				Severity: r.Severity(),
				Path:     doc.FilePath,
				Line:     image.Line,
				Target:   resolved,
				Message:  fmt.Sprintf("image %q does not resolve to a file in the corpus", image.Destination),
			})
			continue
		}

		if r.imagesDir != "" && path.Base(path.Dir(resolved)) != r.imagesDir {
			findings = append(findings, interfaces.Finding{
				Rule:     r.ID(),
				Severity: interfaces.SeverityNotice,
				Path:     doc.FilePath,
				Line:     image.Line,
				Target:   resolved,
				Message:  fmt.Sprintf("image %q lives outside the %s folder convention", image.Destination, r.imagesDir),
			})
		}
	}

	return findings, nil
}

func hasScheme(dest string) bool {
	trimmed := strings.TrimSpace(dest)
	return strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "data:")
}

// ImageAltTextRule flags images without alternative text. The corpus's own
// accessibility guidance asks for meaningful descriptions on every image.
type ImageAltTextRule struct{}

// NewImageAltTextRule builds the alt text rule.
func NewImageAltTextRule() *ImageAltTextRule {
	return &ImageAltTextRule{}
}

func (r *ImageAltTextRule) ID() string                    { return RuleImageAltText }
func (r *ImageAltTextRule) Severity() interfaces.Severity { return interfaces.SeverityNotice }

func (r *ImageAltTextRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	if doc == nil || doc.Inventory == nil {
		return nil, nil
	}

	var findings []interfaces.Finding
	for _, image := range doc.Inventory.Images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(image.AltText) != "" {
			continue
		}
		findings = append(findings, interfaces.Finding{
			Rule:     r.ID(),
			Severity: r.Severity(),
			Path:     doc.FilePath,
			Line:     image.Line,
			Target:   image.Destination,
			Message:  fmt.Sprintf("image %q has no alt text", image.Destination),
		})
	}

	return findings, nil
}
