package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

const timePrecision = time.Millisecond

// WriteText renders a human readable summary of the report to w.
func WriteText(w io.Writer, report *interfaces.Report) error {
	if _, err := fmt.Fprintf(w, "audit %s: %d documents, %d findings (%d errors, %d warnings, %d notices) in %s\n",
		report.Root,
		report.Documents,
		len(report.Findings),
		report.Errors,
		report.Warnings,
		report.Notices,
		report.Duration.Round(timePrecision),
	); err != nil {
		return err
	}

	for _, finding := range report.Findings {
		location := finding.Path
		if finding.Line > 0 {
			location = fmt.Sprintf("%s:%d", finding.Path, finding.Line)
		}
		if _, err := fmt.Fprintf(w, "  %-7s %s  %s [%s]\n", finding.Severity, location, finding.Message, finding.Rule); err != nil {
			return err
		}
	}

	if report.NewCount > 0 || report.FixedCount > 0 {
		if _, err := fmt.Fprintf(w, "baseline: %d new, %d fixed\n", report.NewCount, report.FixedCount); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON renders the report as indented JSON to w.
func WriteJSON(w io.Writer, report *interfaces.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
