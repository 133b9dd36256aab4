// One-shot converter: renders a single markdown file to HTML on stdout.
// The full site builder lives in the repository root binary.
package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/docforge/convert"
	"github.com/gerunddev/docforge/internal/scan"
	"github.com/gerunddev/docforge/parser"
	"github.com/gerunddev/docforge/render"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "html":
		handleHTML(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("docforge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `docforge - Convert a markdown document to HTML

Usage:
  docforge <command> [options]

Commands:
  html        Convert a markdown file to HTML on stdout
  version     Show version information
  help        Show this help message

Examples:
  docforge html notes/guide.md > guide.html
`
	fmt.Print(usage)
}

func handleHTML(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		os.Exit(1)
	}

	f, err := scan.Read(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tree, err := parser.ParseMarkdown(f.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := convert.Document(tree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(render.HTML(doc))
}
