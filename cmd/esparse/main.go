// Command esparse parses a single ECMAScript-family source file and
// prints its diagnostics.
//
// Usage:
//
//	esparse <input.js>
//	esparse parse <input.js>
//	esparse help
//	esparse version
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/edgewright/esparse/syntax"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse", "p":
		if err := runParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		if err := runParse(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`esparse - an error-resilient ECMAScript/gradual-type parser front end

Usage:
  esparse parse <input.js>
  esparse <input.js>
  esparse help
  esparse version

Options:
  --root   Project root to search for .esparse.toml (default: input file directory)`)
}

func printVersion() {
	fmt.Println("esparse version 0.1.0")
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	root := fs.String("root", "", "project root directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}

	input := fs.Arg(0)
	projectRoot := *root
	if projectRoot == "" {
		projectRoot = filepath.Dir(input)
	}

	cfg, err := loadConfig(projectRoot)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", input, err)
	}

	return parseAndReport(input, string(source), cfg)
}

func parseAndReport(path, source string, cfg config) error {
	opts := syntax.Options{GradualTypes: cfg.gradualTypesEnabled()}

	var root *syntax.Node
	var diags []*syntax.Diagnostic
	switch cfg.SourceType {
	case "script":
		root, diags = syntax.ParseScriptWithOptions(source, opts)
	case "expression":
		root, diags = syntax.ParseExpressionWithOptions(source, opts)
	default:
		root, diags = syntax.ParseModuleWithOptions(source, opts)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger = logger.With("file", path)

	if len(diags) == 0 {
		logger.Info("parsed clean", "bytes", root.Len())
		return nil
	}

	for _, d := range diags {
		pos := syntax.PositionOf(source, d.Primary.Start)
		if cfg.RecoveryVerbose {
			fmt.Printf("%s:%d:%d: %s\n", path, pos.Line, pos.Column, d.Message)
			for _, h := range d.Hints {
				fmt.Printf("  hint: %s\n", h)
			}
		}
	}
	logger.Warn("parsed with diagnostics", "count", len(diags), "bytes", root.Len())
	return nil
}
