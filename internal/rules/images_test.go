package rules

import (
	"context"
	"testing"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

func TestImageExistsAcceptsConventionalPath(t *testing.T) {
	doc := docWithImages("Design/Design.md", interfaces.Image{
		Destination: "Images/flow.png",
		AltText:     "flow chart",
	})
	corpus := newStubCorpus([]*interfaces.Document{doc}, []string{"Design/Images/flow.png"}, []string{"Design", "Design/Images"})

	findings, err := NewImageExistsRule("Images").Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected image to resolve, got %+v", findings)
	}
}

func TestImageExistsFlagsMissingFile(t *testing.T) {
	doc := docWithImages("Design/Design.md", interfaces.Image{
		Destination: "Images/gone.png",
		Line:        12,
	})
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, []string{"Design"})

	findings, err := NewImageExistsRule("Images").Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Severity != interfaces.SeverityError {
		t.Fatalf("expected error severity, got %v", findings[0].Severity)
	}
	if findings[0].Line != 12 {
		t.Fatalf("expected line 12, got %d", findings[0].Line)
	}
}

func TestImageExistsNotesUnconventionalLocation(t *testing.T) {
	doc := docWithImages("Design/Design.md", interfaces.Image{
		Destination: "flow.png",
	})
	corpus := newStubCorpus([]*interfaces.Document{doc}, []string{"Design/flow.png"}, []string{"Design"})

	findings, err := NewImageExistsRule("Images").Check(context.Background(), corpus, doc)
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

func TestImageExistsSkipsRemoteImages(t *testing.T) {
	doc := docWithImages("Design/Design.md", interfaces.Image{
		Destination: "https://example.com/badge.svg",
	})
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewImageExistsRule("Images").Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected remote image to be skipped, got %+v", findings)
	}
}

func TestImageAltTextFlagsEmptyAlt(t *testing.T) {
	doc := docWithImages("Design/Design.md",
		interfaces.Image{Destination: "Images/a.png", AltText: "described"},
		interfaces.Image{Destination: "Images/b.png", AltText: "  "},
	)
	corpus := newStubCorpus([]*interfaces.Document{doc}, nil, nil)

	findings, err := NewImageAltTextRule().Check(context.Background(), corpus, doc)
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Target != "Images/b.png" {
		t.Fatalf("expected the blank alt image, got %q", findings[0].Target)
	}
}
