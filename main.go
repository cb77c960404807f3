package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/inkwell/internal/commands"
	"github.com/gerunddev/inkwell/internal/config"
	"github.com/gerunddev/inkwell/internal/metrics"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		commands.Edit(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "edit", "open":
		commands.Edit(os.Args[2:])
	case "render":
		commands.Render(os.Args[2:])
	case "export":
		commands.Export(os.Args[2:])
	case "stats":
		commands.Stats()
	case "version", "-v", "--version":
		fmt.Printf("inkwell v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Bare filename shorthand: `inkwell notes.md` opens the editor.
		if _, err := os.Stat(command); err == nil {
			commands.Edit(os.Args[1:])
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`inkwell - Markdown editor with live preview

Usage:
  inkwell [command] [options]

Commands:
  edit        Open the editor (optionally with a file)
  render      Render a Markdown file to HTML on stdout
  export      Render a Markdown file to a standalone HTML page
  stats       Show writing statistics
  version     Show version information
  help        Show this help message

Examples:
  inkwell
  inkwell notes.md
  inkwell edit notes.md
  inkwell render notes.md
  inkwell export notes.md notes.html
  inkwell stats

Configuration:
  Config file:  %s
  Metrics file: %s

For more information, visit: https://github.com/gerunddev/inkwell
`, config.ConfigPath(), metrics.StorePath())
	fmt.Print(usage)
}
