package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-doclint/cmd/doclint/internal/bootstrap"
	auditcmd "github.com/goliatone/go-doclint/internal/commands/audit"
	"github.com/goliatone/go-doclint/internal/report"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	code, err := runScan(os.Args[1:])
	if err != nil {
		log.Fatalf("doclint scan: %v", err)
	}
	os.Exit(code)
}

func runScan(args []string) (int, error) {
	fs := flag.NewFlagSet("doclint-scan", flag.ExitOnError)
	basePath := fs.String("root", ".", "Path to the documentation corpus root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering documents")
	ignore := fs.String("ignore", "", "Comma separated list of directories to skip")
	indexFile := fs.String("index", "README.md", "Name of the corpus index document")
	imagesDir := fs.String("images-dir", "Images", "Name of the conventional per-topic image folder")
	disabled := fs.String("disable", "", "Comma separated list of rule IDs to skip")
	only := fs.String("rules", "", "Comma separated list of rule IDs to run (defaults to all)")
	failOn := fs.String("fail-on", "error", "Severity threshold that fails the scan (error, warning, notice)")
	history := fs.Bool("history", false, "Record the run so later scans can report new and fixed findings")
	storageDSN := fs.String("db", "", "SQLite DSN for run history (defaults to file:doclint.db)")
	dryRun := fs.Bool("dry-run", false, "Evaluate rules without recording the run")
	jsonOutput := fs.Bool("json", false, "Emit the report as JSON instead of text")
	quiet := fs.Bool("quiet", false, "Suppress structured log output")
	logLevel := fs.String("log-level", "warn", "Minimum log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return 1, err
	}

	module, err := moduleBuilder(bootstrap.Options{
		BasePath:      *basePath,
		Pattern:       *pattern,
		Recursive:     true,
		Ignore:        bootstrap.SplitList(*ignore),
		IndexFile:     *indexFile,
		ImagesDir:     *imagesDir,
		DisabledRules: bootstrap.SplitList(*disabled),
		History:       *history,
		StorageDSN:    *storageDSN,
		LogLevel:      *logLevel,
		Quiet:         *quiet,
	})
	if err != nil {
		return 1, fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	handlers, err := module.Module.RegisterCommands(nil)
	if err != nil {
		return 1, fmt.Errorf("register commands: %w", err)
	}

	cmd := auditcmd.ScanDirectoryCommand{
		Directory: ".",
		Rules:     bootstrap.SplitList(*only),
		FailOn:    *failOn,
		DryRun:    *dryRun,
	}
	if err := handlers.Scan.Execute(context.Background(), cmd); err != nil {
		return 1, fmt.Errorf("execute scan command: %w", err)
	}

	result := handlers.Scan.LastReport()
	if result == nil {
		return 1, fmt.Errorf("scan produced no report")
	}

	if *jsonOutput {
		if err := report.WriteJSON(os.Stdout, result); err != nil {
			return 1, err
		}
	} else {
		if err := report.WriteText(os.Stdout, result); err != nil {
			return 1, err
		}
	}

	if result.Failed {
		return 1, nil
	}
	return 0, nil
}
