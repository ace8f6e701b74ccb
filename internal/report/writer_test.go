package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

func sampleReport() *interfaces.Report {
	return &interfaces.Report{
		RunID:     uuid.New(),
		Root:      "docs",
		Duration:  1512 * time.Millisecond,
		Documents: 4,
		Findings: []interfaces.Finding{
			{
				Rule:     "link-target",
				Severity: interfaces.SeverityError,
				Path:     "Architecture/Architecture.md",
				Line:     12,
				Message:  "link points to missing file",
				Target:   "Missing/Missing.md",
			},
			{
				Rule:     "image-alt-text",
				Severity: interfaces.SeverityNotice,
				Path:     "README.md",
				Message:  "image has no alt text",
			},
		},
		Errors:   1,
		Notices:  1,
		RulesRun: []string{"image-alt-text", "link-target"},
		Failed:   true,
	}
}

func TestWriteTextRendersSummaryAndFindings(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "audit docs: 4 documents, 2 findings (1 errors, 0 warnings, 1 notices)") {
		t.Fatalf("summary line missing from output:\n%s", out)
	}
	if !strings.Contains(out, "Architecture/Architecture.md:12") {
		t.Fatalf("expected path:line location, got:\n%s", out)
	}
	if !strings.Contains(out, "[link-target]") {
		t.Fatalf("expected rule id suffix, got:\n%s", out)
	}
	if strings.Contains(out, "README.md:0") {
		t.Fatalf("findings without lines must omit the line suffix:\n%s", out)
	}
	if strings.Contains(out, "baseline:") {
		t.Fatalf("baseline line rendered without counts:\n%s", out)
	}
}

func TestWriteTextIncludesBaselineCounts(t *testing.T) {
	rep := sampleReport()
	rep.NewCount = 2
	rep.FixedCount = 1

	var buf bytes.Buffer
	if err := WriteText(&buf, rep); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "baseline: 2 new, 1 fixed") {
		t.Fatalf("expected baseline line, got:\n%s", buf.String())
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	var decoded interfaces.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RunID != rep.RunID {
		t.Fatalf("run id mismatch: %s != %s", decoded.RunID, rep.RunID)
	}
	if len(decoded.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(decoded.Findings))
	}
	if decoded.Findings[0].Target != "Missing/Missing.md" {
		t.Fatalf("unexpected target %q", decoded.Findings[0].Target)
	}
}
