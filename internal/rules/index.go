package rules

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const RuleIndexCoverage = "index-coverage"

// IndexCoverageRule checks the corpus layout conventions: a root index
// document exists, every topic directory is reachable from it, and every
// topic directory carries a Markdown file named after the directory.
type IndexCoverageRule struct {
	indexFile string
	imagesDir string
}

// NewIndexCoverageRule builds the corpus layout rule.
func NewIndexCoverageRule(indexFile, imagesDir string) *IndexCoverageRule {
	return &IndexCoverageRule{
		indexFile: indexFile,
		imagesDir: imagesDir,
	}
}

func (r *IndexCoverageRule) ID() string                    { return RuleIndexCoverage }
func (r *IndexCoverageRule) Severity() interfaces.Severity { return interfaces.SeverityWarning }

// Check is a no-op; the rule inspects the corpus as a whole.
func (r *IndexCoverageRule) Check(ctx context.Context, corpus interfaces.Corpus, doc *interfaces.Document) ([]interfaces.Finding, error) {
	return nil, nil
}

// CheckCorpus implements interfaces.CorpusRule.
func (r *IndexCoverageRule) CheckCorpus(ctx context.Context, corpus interfaces.Corpus) ([]interfaces.Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index := corpus.RootIndex()
	if index == nil {
		return []interfaces.Finding{{
			Rule:     r.ID(),
			Severity: interfaces.SeverityError,
			Path:     r.indexFile,
			Message:  fmt.Sprintf("corpus has no root %s index", r.indexFile),
		}}, nil
	}

	linked := r.linkedDirectories(index)

	var findings []interfaces.Finding
	for _, dir := range r.topicDirectories(corpus) {
		if _, ok := linked[dir]; !ok {
			findings = append(findings, interfaces.Finding{
				Rule:     r.ID(),
				Severity: r.Severity(),
				Path:     index.FilePath,
				Target:   dir,
				Message:  fmt.Sprintf("topic %q is not linked from the root index", dir),
			})
		}

		expected := path.Join(dir, path.Base(dir)+".md")
		if !corpus.FileExists(expected) && !corpus.FileExists(path.Join(dir, r.indexFile)) {
			findings = append(findings, interfaces.Finding{
				Rule:     r.ID(),
				Severity: r.Severity(),
				Path:     dir,
				Target:   expected,
				Message:  fmt.Sprintf("topic %q has no %s.md document", dir, path.Base(dir)),
			})
		}
	}

	return findings, nil
}

// linkedDirectories collects every directory reachable from index links,
// either directly or via a Markdown file inside the directory.
func (r *IndexCoverageRule) linkedDirectories(index *interfaces.Document) map[string]struct{} {
	linked := map[string]struct{}{}
	if index.Inventory == nil {
		return linked
	}
	for _, link := range index.Inventory.Links {
		if link.Kind != interfaces.LinkInternal {
			continue
		}
		target, _ := splitDestination(link.Destination)
		if target == "" {
			continue
		}
		resolved := resolveRelative(index.FilePath, target)
		if escapesCorpus(resolved) {
			continue
		}
		if strings.HasSuffix(resolved, ".md") {
			resolved = path.Dir(resolved)
		}
		for resolved != "." && resolved != "/" {
			linked[resolved] = struct{}{}
			resolved = path.Dir(resolved)
		}
	}
	return linked
}

// topicDirectories returns the top-level directories that hold Markdown
// documents, skipping image folders.
func (r *IndexCoverageRule) topicDirectories(corpus interfaces.Corpus) []string {
	topics := map[string]struct{}{}
	for _, doc := range corpus.Documents() {
		dir := path.Dir(doc.FilePath)
		if dir == "." {
			continue
		}
		top := strings.SplitN(dir, "/", 2)[0]
		if top == r.imagesDir {
			continue
		}
		topics[top] = struct{}{}
	}

	out := make([]string, 0, len(topics))
	for topic := range topics {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}
