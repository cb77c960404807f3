package editor

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// unifiedDiff produces a unified diff between the on-disk content and
// the buffer, saved side first.
func unifiedDiff(name, disk, buffer string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name), disk, buffer)
	return fmt.Sprint(gotextdiff.ToUnified(name+" (saved)", name+" (buffer)", disk, edits))
}

// renderDiff wraps the unified diff in a diff code fence and renders
// it with glamour. Falls back to the plain fenced diff if rendering
// fails.
func renderDiff(name, disk, buffer string) string {
	unified := unifiedDiff(name, disk, buffer)
	if unified == "" {
		return "No unsaved changes."
	}

	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}

	return rendered
}
