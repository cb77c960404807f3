package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/inkwell/internal/config"
	"github.com/gerunddev/inkwell/internal/document"
)

// renderPreviewCmd renders the preview for one revision off the UI
// goroutine. The HTML conversion always runs; terminal mode layers
// glamour on top, falling back to the HTML output if styling fails.
func (m Model) renderPreviewCmd(content string, rev int) tea.Cmd {
	render := m.render
	previewMode := m.previewMode
	width := m.preview.Width

	return func() tea.Msg {
		_, body := document.ExtractFrontMatter(content)
		html := render.Render(body)

		if previewMode == config.PreviewHTML {
			return previewReadyMsg{rev: rev, content: html}
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return previewReadyMsg{rev: rev, content: html}
		}

		styled, err := r.Render(body)
		if err != nil {
			return previewReadyMsg{rev: rev, content: html}
		}
		return previewReadyMsg{rev: rev, content: styled}
	}
}
