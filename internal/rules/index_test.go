package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

func indexRuleUnderTest() *IndexCoverageRule {
	return NewIndexCoverageRule("README.md", "Images")
}

func TestIndexCoverageRequiresRootIndex(t *testing.T) {
	doc := docWithLinks("Architecture/Architecture.md")
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, []string{"Architecture"})

	findings, err := indexRuleUnderTest().CheckCorpus(context.Background(), corpus)
	if err != nil {
		t.Fatalf("CheckCorpus returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Severity != interfaces.SeverityError {
		t.Fatalf("expected error severity, got %v", findings[0].Severity)
	}
	if findings[0].Path != "README.md" {
		t.Fatalf("expected finding on README.md, got %q", findings[0].Path)
	}
}

func TestIndexCoverageAcceptsLinkedTopics(t *testing.T) {
	index := docWithLinks("README.md",
		interfaces.Link{Destination: "Architecture/Architecture.md", Kind: interfaces.LinkInternal, Line: 5},
	)
	topic := docWithLinks("Architecture/Architecture.md")
	corpus := newStubCorpus(
		[]*interfaces.Document{index, topic},
		nil,
		[]string{"Architecture"},
	)

	findings, err := indexRuleUnderTest().CheckCorpus(context.Background(), corpus)
	if err != nil {
		t.Fatalf("CheckCorpus returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestIndexCoverageFlagsUnlinkedTopic(t *testing.T) {
	index := docWithLinks("README.md",
		interfaces.Link{Destination: "Architecture/Architecture.md", Kind: interfaces.LinkInternal, Line: 5},
	)
	architecture := docWithLinks("Architecture/Architecture.md")
	tooling := docWithLinks("Tooling/Tooling.md")
	corpus := newStubCorpus(
		[]*interfaces.Document{index, architecture, tooling},
		nil,
		[]string{"Architecture", "Tooling"},
	)

	findings, err := indexRuleUnderTest().CheckCorpus(context.Background(), corpus)
	if err != nil {
		t.Fatalf("CheckCorpus returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %+v", findings)
	}
	if findings[0].Path != "README.md" {
		t.Fatalf("expected finding anchored to the index, got %q", findings[0].Path)
	}
	if findings[0].Target != "Tooling" {
		t.Fatalf("expected unlinked topic Tooling, got %q", findings[0].Target)
	}
}

func TestIndexCoverageFlagsTopicWithoutNamesakeDocument(t *testing.T) {
	index := docWithLinks("README.md",
		interfaces.Link{Destination: "Tooling/notes.md", Kind: interfaces.LinkInternal, Line: 5},
	)
	notes := docWithLinks("Tooling/notes.md")
	corpus := newStubCorpus(
		[]*interfaces.Document{index, notes},
		nil,
		[]string{"Tooling"},
	)

	findings, err := indexRuleUnderTest().CheckCorpus(context.Background(), corpus)
	if err != nil {
		t.Fatalf("CheckCorpus returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %+v", findings)
	}
	if findings[0].Target != "Tooling/Tooling.md" {
		t.Fatalf("expected missing namesake target, got %q", findings[0].Target)
	}
	if !strings.Contains(findings[0].Message, "Tooling.md") {
		t.Fatalf("unexpected message %q", findings[0].Message)
	}
}

func TestIndexCoverageAcceptsTopicIndexFallback(t *testing.T) {
	index := docWithLinks("README.md",
		interfaces.Link{Destination: "Tooling/README.md", Kind: interfaces.LinkInternal, Line: 5},
	)
	topicIndex := docWithLinks("Tooling/README.md")
	corpus := newStubCorpus(
		[]*interfaces.Document{index, topicIndex},
		nil,
		[]string{"Tooling"},
	)

	findings, err := indexRuleUnderTest().CheckCorpus(context.Background(), corpus)
	if err != nil {
		t.Fatalf("CheckCorpus returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestIndexCoverageSkipsImagesDirectory(t *testing.T) {
	index := docWithLinks("README.md")
	stray := docWithLinks("Images/legend.md")
	corpus := newStubCorpus(
		[]*interfaces.Document{index, stray},
		nil,
		[]string{"Images"},
	)

	findings, err := indexRuleUnderTest().CheckCorpus(context.Background(), corpus)
	if err != nil {
		t.Fatalf("CheckCorpus returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}
