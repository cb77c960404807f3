package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/inkwell/internal/document"
)

// enterOpen switches to the open dialog and starts listing the
// library directory.
func (m Model) enterOpen() (tea.Model, tea.Cmd) {
	m.mode = modeOpen
	m.scanning = true
	m.picker.SetRows(nil)
	return m, tea.Batch(m.spin.Tick, listLibraryCmd(m.cfg.LibraryDir))
}

func (m Model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		// Cancelled: no document change, back to editing.
		m.mode = modeEdit
		return m, nil
	case "enter":
		idx := m.picker.Cursor()
		if idx >= 0 && idx < len(m.entriesByRow) {
			path := m.entriesByRow[idx].Path
			return m, func() tea.Msg { return OpenDocumentMsg{Path: path} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) viewOpen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Open Document"))
	b.WriteString("\n\n")

	if m.scanning {
		b.WriteString(fmt.Sprintf("%s Listing %s...\n", m.spin.View(), m.cfg.LibraryDir))
		return b.String()
	}

	if len(m.entriesByRow) == 0 {
		b.WriteString(dimStyle.Render("No documents in " + m.cfg.LibraryDir))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back"))
		return b.String()
	}

	b.WriteString(tableStyle.Render(m.picker.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter open • esc cancel"))
	return b.String()
}

// enterSaveAs switches to the save-as prompt.
func (m Model) enterSaveAs() (tea.Model, tea.Cmd) {
	m.mode = modeSaveAs
	m.prompt.SetValue("")
	m.prompt.Focus()
	return m, nil
}

func (m Model) updateSaveAs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Cancelled: nothing written.
		m.mode = modeEdit
		m.status = "save cancelled"
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.prompt.Value())
		if name == "" {
			return m, nil
		}
		if !document.Recognized(name) {
			name += ".md"
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.cfg.LibraryDir, name)
		}
		return m, func() tea.Msg { return SaveDocumentAsMsg{Path: path} }
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) viewSaveAs() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Save As"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Library: %s\n\n", dimStyle.Render(m.cfg.LibraryDir)))
	b.WriteString("  " + m.prompt.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter save • esc cancel"))
	return b.String()
}

// enterDiff shows pending changes between the buffer and the file on
// disk.
func (m Model) enterDiff() (tea.Model, tea.Cmd) {
	if m.path == "" {
		m.status = "no saved file to diff against"
		return m, nil
	}
	m.mode = modeDiff
	name := filepath.Base(m.path)
	disk := m.diskContent
	buffer := m.input.Value()
	return m, func() tea.Msg {
		return diffReadyMsg{content: renderDiff(name, disk, buffer)}
	}
}

func (m Model) updateDiff(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.mode = modeEdit
		return m, m.schedulePreview()
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) viewDiff() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Unsaved Changes"))
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • esc back"))
	return b.String()
}

// loadDocumentCmd reads a document off the UI goroutine.
func loadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := document.Read(path)
		return documentLoadedMsg{path: path, content: content, err: err}
	}
}

// saveDocumentCmd writes the buffer off the UI goroutine.
func saveDocumentCmd(path, content string) tea.Cmd {
	return func() tea.Msg {
		err := document.Write(path, content)
		return documentSavedMsg{path: path, content: content, err: err}
	}
}

// listLibraryCmd lists the library directory off the UI goroutine.
func listLibraryCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := document.List(dir)
		return libraryListedMsg{entries: entries, err: err}
	}
}
