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
	code, err := runVerify(os.Args[1:])
	if err != nil {
		log.Fatalf("doclint verify: %v", err)
	}
	os.Exit(code)
}

func runVerify(args []string) (int, error) {
	fs := flag.NewFlagSet("doclint-verify", flag.ExitOnError)
	basePath := fs.String("root", ".", "Path to the documentation corpus root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering documents")
	ignore := fs.String("ignore", "", "Comma separated list of directories to skip")
	indexFile := fs.String("index", "README.md", "Name of the corpus index document")
	imagesDir := fs.String("images-dir", "Images", "Name of the conventional per-topic image folder")
	failOn := fs.String("fail-on", "error", "Severity threshold that fails verification (error, warning, notice)")
	jsonOutput := fs.Bool("json", false, "Emit the report as JSON instead of text")
	quiet := fs.Bool("quiet", true, "Suppress structured log output")
	logLevel := fs.String("log-level", "warn", "Minimum log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return 1, err
	}

	module, err := moduleBuilder(bootstrap.Options{
		BasePath:  *basePath,
		Pattern:   *pattern,
		Recursive: true,
		Ignore:    bootstrap.SplitList(*ignore),
		IndexFile: *indexFile,
		ImagesDir: *imagesDir,
		LogLevel:  *logLevel,
		Quiet:     *quiet,
	})
	if err != nil {
		return 1, fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	handlers, err := module.Module.RegisterCommands(nil)
	if err != nil {
		return 1, fmt.Errorf("register commands: %w", err)
	}

	cmd := auditcmd.VerifyLinksCommand{
		Directory: ".",
		FailOn:    *failOn,
	}
	if err := handlers.Verify.Execute(context.Background(), cmd); err != nil {
		return 1, fmt.Errorf("execute verify command: %w", err)
	}

	result := handlers.Verify.LastReport()
	if result == nil {
		return 1, fmt.Errorf("verification produced no report")
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
