package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

var frontmatterSchema = map[string]any{
	"type":     "object",
	"required": []any{"title"},
	"properties": map[string]any{
		"title":  map[string]any{"type": "string"},
		"status": map[string]any{"enum": []any{"draft", "published"}},
	},
}

func frontmatterDoc(raw map[string]any) *interfaces.Document {
	return &interfaces.Document{
		FilePath:    "Guide/Guide.md",
		FrontMatter: interfaces.FrontMatter{Raw: raw},
		Inventory:   &interfaces.Inventory{},
	}
}

func TestFrontMatterSchemaAcceptsValidMetadata(t *testing.T) {
	doc := frontmatterDoc(map[string]any{"title": "Guide", "status": "published"})
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewFrontMatterSchemaRule(frontmatterSchema).Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestFrontMatterSchemaFlagsMissingRequiredField(t *testing.T) {
	doc := frontmatterDoc(map[string]any{"status": "draft"})
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewFrontMatterSchemaRule(frontmatterSchema).Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) == 0 {
		t.Fatal("expected findings for missing title")
	}
	if findings[0].Severity != interfaces.SeverityWarning {
		t.Fatalf("expected warning severity, got %v", findings[0].Severity)
	}
	if !strings.HasPrefix(findings[0].Message, "frontmatter ") {
		t.Fatalf("expected frontmatter prefix, got %q", findings[0].Message)
	}
}

func TestFrontMatterSchemaFlagsInvalidEnumValue(t *testing.T) {
	doc := frontmatterDoc(map[string]any{"title": "Guide", "status": "retired"})
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewFrontMatterSchemaRule(frontmatterSchema).Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) == 0 {
		t.Fatal("expected findings for invalid status")
	}
}

func TestFrontMatterSchemaWithoutSchemaAcceptsEverything(t *testing.T) {
	doc := frontmatterDoc(nil)
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewFrontMatterSchemaRule(nil).Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}
