package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

func TestCodeFenceFlagsUnclosedFence(t *testing.T) {
	doc := &interfaces.Document{
		FilePath: "Tooling/Tooling.md",
		Inventory: &interfaces.Inventory{
			CodeFences: []interfaces.CodeFence{
				{Language: "swift", Line: 4, Closed: true},
				{Language: "", Line: 12, Closed: false},
			},
		},
	}
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewCodeFenceRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Line != 12 {
		t.Fatalf("expected finding at line 12, got %d", findings[0].Line)
	}
	if findings[0].Severity != interfaces.SeverityError {
		t.Fatalf("expected error severity, got %v", findings[0].Severity)
	}
	if !strings.Contains(findings[0].Message, "plain") {
		t.Fatalf("expected unlabelled fence reported as plain, got %q", findings[0].Message)
	}
}

func TestCodeFenceReportsLanguageLabel(t *testing.T) {
	doc := &interfaces.Document{
		FilePath: "Tooling/Tooling.md",
		Inventory: &interfaces.Inventory{
			CodeFences: []interfaces.CodeFence{
				{Language: "swift", Line: 7, Closed: false},
			},
		},
	}
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewCodeFenceRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if !strings.Contains(findings[0].Message, "swift") {
		t.Fatalf("expected language in message, got %q", findings[0].Message)
	}
}

func TestCodeFenceAcceptsBalancedDocument(t *testing.T) {
	doc := &interfaces.Document{
		FilePath: "Tooling/Tooling.md",
		Inventory: &interfaces.Inventory{
			CodeFences: []interfaces.CodeFence{
				{Language: "bash", Line: 3, Closed: true},
				{Language: "yaml", Line: 10, Closed: true},
			},
		},
	}
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewCodeFenceRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}
