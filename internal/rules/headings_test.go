package rules

import (
	"context"
	"testing"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

func TestHeadingStructureAcceptsWellFormedDocument(t *testing.T) {
	doc := docWithHeadings("Guide/Guide.md",
		interfaces.Heading{Level: 1, Text: "Guide", Line: 1},
		interfaces.Heading{Level: 2, Text: "Setup", Line: 5},
		interfaces.Heading{Level: 3, Text: "Details", Line: 9},
		interfaces.Heading{Level: 2, Text: "Usage", Line: 15},
	)
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewHeadingStructureRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestHeadingStructureFlagsMultipleTopLevel(t *testing.T) {
	doc := docWithHeadings("Guide/Guide.md",
		interfaces.Heading{Level: 1, Text: "Guide", Line: 1},
		interfaces.Heading{Level: 1, Text: "Second Title", Line: 20},
	)
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewHeadingStructureRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Line != 20 {
		t.Fatalf("expected finding at the second H1, got line %d", findings[0].Line)
	}
}

func TestHeadingStructureFlagsLevelSkip(t *testing.T) {
	doc := docWithHeadings("Guide/Guide.md",
		interfaces.Heading{Level: 1, Text: "Guide", Line: 1},
		interfaces.Heading{Level: 4, Text: "Too Deep", Line: 8},
	)
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewHeadingStructureRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Severity != interfaces.SeverityWarning {
		t.Fatalf("expected warning severity, got %v", findings[0].Severity)
	}
}

func TestHeadingStructureNotesMissingTopLevel(t *testing.T) {
	doc := docWithHeadings("Guide/Guide.md",
		interfaces.Heading{Level: 2, Text: "Orphan Section", Line: 3},
	)
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewHeadingStructureRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Severity != interfaces.SeverityNotice {
		t.Fatalf("expected notice severity, got %v", findings[0].Severity)
	}
}

func TestHeadingStructureIgnoresEmptyDocument(t *testing.T) {
	doc := docWithHeadings("Guide/Guide.md")
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewHeadingStructureRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}
