package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-doclint/internal/logging"
	"github.com/goliatone/go-doclint/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("doclint.audit")
	logger = logging.WithFields(logger, map[string]any{"module": "doclint.audit"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"correlation_id": "req-1234",
	})
	logger = logger.WithContext(ctx)

	logger.Info("audit.scan.completed",
		"documents", 14,
		"scan_root", "docs",
	)

	got := strings.TrimSpace(buf.String())
	want := "2026-03-14T15:09:26.535897Z INFO audit.scan.completed correlation_id=req-1234 documents=14 logger=doclint.audit module=doclint.audit scan_root=docs"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("doclint.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
	if strings.Contains(lines[0], "ignored.debug") {
		t.Fatalf("unexpected debug log present: %s", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  console.Level
		ok    bool
	}{
		{input: "trace", want: console.LevelTrace, ok: true},
		{input: "DEBUG", want: console.LevelDebug, ok: true},
		{input: " info ", want: console.LevelInfo, ok: true},
		{input: "warning", want: console.LevelWarn, ok: true},
		{input: "error", want: console.LevelError, ok: true},
		{input: "fatal", want: console.LevelFatal, ok: true},
		{input: "verbose", want: console.LevelInfo, ok: false},
		{input: "", want: console.LevelInfo, ok: false},
	}

	for _, tc := range cases {
		got, ok := console.ParseLevel(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
