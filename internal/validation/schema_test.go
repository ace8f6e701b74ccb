package validation

import (
	"errors"
	"testing"
)

var testSchema = map[string]any{
	"type":     "object",
	"required": []any{"title"},
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
		"tags":  map[string]any{"type": "array"},
	},
}

func TestValidateSchemaAcceptsCompilableSchema(t *testing.T) {
	if err := ValidateSchema(testSchema); err != nil {
		t.Fatalf("ValidateSchema returned error: %v", err)
	}
	if err := ValidateSchema(nil); err != nil {
		t.Fatalf("empty schema must be accepted: %v", err)
	}
}

func TestValidateSchemaRejectsInvalidSchema(t *testing.T) {
	err := ValidateSchema(map[string]any{"type": 42})
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestValidatePayloadAcceptsConformingPayload(t *testing.T) {
	payload := map[string]any{"title": "Guide", "tags": []any{"ios"}}
	if err := ValidatePayload(testSchema, payload); err != nil {
		t.Fatalf("ValidatePayload returned error: %v", err)
	}
}

func TestValidatePayloadReportsIssues(t *testing.T) {
	err := ValidatePayload(testSchema, map[string]any{"tags": "not-an-array"})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected validation issues")
	}
	for _, issue := range issues {
		if issue.Message == "" {
			t.Fatalf("issue missing message: %+v", issue)
		}
	}
}

func TestValidatePayloadWithoutSchemaAcceptsEverything(t *testing.T) {
	if err := ValidatePayload(nil, map[string]any{"anything": true}); err != nil {
		t.Fatalf("nil schema must accept every payload: %v", err)
	}
	if err := ValidatePayload(testSchema, nil); err == nil {
		t.Fatal("nil payload must still fail required checks")
	}
}

func TestIssuesHandlesPlainErrors(t *testing.T) {
	issues := Issues(errors.New("boom"))
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("unexpected issues %+v", issues)
	}
	if Issues(nil) != nil {
		t.Fatal("nil error must yield no issues")
	}
}
