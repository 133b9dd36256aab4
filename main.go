package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gerunddev/docforge/ast"
	"github.com/gerunddev/docforge/convert"
	"github.com/gerunddev/docforge/internal/config"
	"github.com/gerunddev/docforge/internal/logger"
	"github.com/gerunddev/docforge/internal/scan"
	"github.com/gerunddev/docforge/parser"
	"github.com/gerunddev/docforge/render"
	"github.com/gerunddev/docforge/styles"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "build":
		runBuild()
	case "outline":
		runOutline(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("docforge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `docforge - Build HTML documentation from markdown sources

Usage:
  docforge <command> [options]

Commands:
  build       Render all markdown files under source_dir to output_dir
  outline     Print the structure of a markdown file
  check       Run structural checks on a markdown file
  version     Show version information
  help        Show this help message

Examples:
  docforge build
  docforge outline docs/guide.md
  docforge check docs/guide.md

Configuration lives at ~/.config/docforge/config.json
`
	fmt.Print(usage)
}

func runBuild() {
	log := logger.FromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error", "error", err)
	}
	if cfg.LogFile != "" {
		fileLog, cleanup, err := logger.NewFileLogger(cfg.LogFile)
		if err != nil {
			log.Warn("cannot open log file", "path", cfg.LogFile, "error", err)
		} else {
			defer cleanup()
			log = fileLog
		}
	}
	log.ConfigLoaded(cfg.SourceDir, cfg.OutputDir)
	log.BuildStarted(cfg.SourceDir, cfg.OutputDir)
	start := time.Now()

	files, err := scan.Dir(cfg.SourceDir, cfg.ExcludePatterns)
	if err != nil {
		log.Fatal("scan failed", "error", err)
	}

	rendered := 0
	failed := 0
	for _, f := range files {
		if err := buildFile(cfg, log, f); err != nil {
			failed++
			log.ConversionError(f.Path, err)
			if cfg.Strict {
				log.Fatal("aborting, strict mode is on")
			}
			continue
		}
		rendered++
	}
	log.BuildCompleted(rendered, failed, time.Since(start))
	if failed > 0 {
		os.Exit(1)
	}
}

func buildFile(cfg *config.Config, log *logger.Logger, f scan.File) error {
	doc, err := loadDocument(f)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(cfg.SourceDir, f.Path)
	if err != nil {
		return err
	}
	dest := filepath.Join(cfg.OutputDir, strings.TrimSuffix(rel, ".md")+".html")
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, []byte(render.HTML(doc)), 0644); err != nil {
		return err
	}
	log.FileRendered(f.Path, dest)
	return nil
}

func runOutline(args []string) {
	fmt.Print(render.Outline(mustLoad(args)))
}

func runCheck(args []string) {
	findings := render.Check(mustLoad(args))
	if len(findings) == 0 {
		fmt.Println(styles.SuccessStyle.Render("no problems found"))
		return
	}
	for _, f := range findings {
		fmt.Println(styles.WarningStyle.Render("warning:") + " " + f.Message)
	}
	os.Exit(1)
}

func mustLoad(args []string) *ast.Document {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		os.Exit(1)
	}

	f, err := scan.Read(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	doc, err := loadDocument(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return doc
}

func loadDocument(f scan.File) (*ast.Document, error) {
	tree, err := parser.ParseMarkdown(f.Body)
	if err != nil {
		return nil, err
	}
	return convert.Document(tree)
}
