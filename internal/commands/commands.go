package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/inkwell/internal/config"
	"github.com/gerunddev/inkwell/internal/document"
	"github.com/gerunddev/inkwell/internal/editor"
	"github.com/gerunddev/inkwell/internal/export"
	"github.com/gerunddev/inkwell/internal/logger"
	"github.com/gerunddev/inkwell/internal/markdown"
	"github.com/gerunddev/inkwell/internal/mathtex"
	"github.com/gerunddev/inkwell/internal/metrics"
	"github.com/gerunddev/inkwell/internal/styles"
)

// Edit launches the interactive editor, optionally opening a file.
func Edit(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to load config: " + err.Error()))
		os.Exit(1)
	}

	lg, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		lg = logger.Discard()
	} else {
		defer cleanup()
	}
	lg.ConfigLoaded(cfg.LibraryDir, cfg.PreviewMode, cfg.Debounce)

	storePath := metrics.StorePath()
	store, err := metrics.Load(storePath)
	if err != nil {
		lg.StoreReset(storePath, err)
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	render := markdown.New(mathtex.New())
	m := editor.New(cfg, lg, store, storePath, render, path)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Editor error: " + err.Error()))
		os.Exit(1)
	}
}

// Render converts a document to HTML on stdout.
func Render(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		os.Exit(1)
	}

	content, err := document.Read(args[0])
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	_, body := document.ExtractFrontMatter(content)
	render := markdown.New(mathtex.New())
	fmt.Println(render.Render(body))
}

// Export writes a document as a standalone HTML page.
func Export(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		os.Exit(1)
	}

	inPath := args[0]
	outPath := strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".html"
	if len(args) > 1 {
		outPath = args[1]
	}

	content, err := document.Read(inPath)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	fm, body := document.ExtractFrontMatter(content)
	title := fm.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	}

	render := markdown.New(mathtex.New())
	page := export.Page(render, title, body)

	if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to write " + outPath + ": " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Exported " + outPath))
}

// Stats prints the writing-activity summary.
func Stats() {
	storePath := metrics.StorePath()
	store, err := metrics.Load(storePath)
	if err != nil {
		fmt.Println(styles.DimStyle.Render("metrics store was reset: " + err.Error()))
	}

	fmt.Println(styles.TitleStyle.Render("Writing Activity"))
	fmt.Println()

	days := store.RecentDays(14)
	if len(days) == 0 {
		fmt.Println(styles.DimStyle.Render("  No activity recorded yet"))
	} else {
		fmt.Println(styles.HeaderStyle.Render("  Recent days"))
		for _, d := range days {
			fmt.Printf("  %s  %s\n", d.Day, styles.HighlightStyle.Render(fmt.Sprintf("%d words", d.Words)))
		}
	}
	fmt.Println()

	fmt.Println(styles.HeaderStyle.Render("  Documents"))
	if len(store.Documents) == 0 {
		fmt.Println(styles.DimStyle.Render("  No documents tracked yet"))
		return
	}
	for path, meta := range store.Documents {
		line := fmt.Sprintf("  %-40s %6d words", filepath.Base(path), meta.Words)
		if len(meta.Tags) > 0 {
			line += "  " + styles.DimStyle.Render("["+strings.Join(meta.Tags, ", ")+"]")
		}
		fmt.Println(line)
	}
	fmt.Printf("\n  Total: %s\n", styles.SuccessStyle.Render(fmt.Sprintf("%d words", store.TotalWords())))
}
