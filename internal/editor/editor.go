// Package editor implements the interactive two-pane editing surface:
// a text input pane and a live preview pane, with in-terminal open and
// save-as dialogs replacing the desktop file dialogs.
package editor

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/inkwell/internal/config"
	"github.com/gerunddev/inkwell/internal/document"
	"github.com/gerunddev/inkwell/internal/logger"
	"github.com/gerunddev/inkwell/internal/markdown"
	"github.com/gerunddev/inkwell/internal/metrics"
	"github.com/gerunddev/inkwell/internal/styles"
)

type mode int

const (
	modeEdit mode = iota
	modeOpen
	modeSaveAs
	modeDiff
)

// Model is the bubbletea model for the editing surface.
type Model struct {
	cfg       *config.Config
	log       *logger.Logger
	render    *markdown.Renderer
	store     *metrics.Store
	storePath string

	input   textarea.Model
	preview viewport.Model
	picker  table.Model
	prompt  textinput.Model
	spin    spinner.Model

	entriesByRow []document.Entry

	mode        mode
	path        string
	diskContent string
	dirty       bool
	previewMode string
	status      string
	scanning    bool

	// rev counts buffer edits; appliedRev is the newest revision whose
	// preview render has been applied. Stale results are dropped so the
	// most recently submitted document always wins.
	rev        int
	appliedRev int

	width  int
	height int
	ready  bool
}

// New creates an editor model. path may be empty for an untitled
// document.
func New(cfg *config.Config, lg *logger.Logger, store *metrics.Store, storePath string, render *markdown.Renderer, path string) Model {
	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	columns := []table.Column{
		{Title: "File", Width: 48},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	ti := textinput.New()
	ti.Placeholder = "filename.md"

	return Model{
		cfg:         cfg,
		log:         lg,
		render:      render,
		store:       store,
		storePath:   storePath,
		input:       ta,
		spin:        s,
		picker:      t,
		prompt:      ti,
		path:        path,
		previewMode: cfg.PreviewMode,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.titleCmd()}
	if m.path != "" {
		cmds = append(cmds, loadDocumentCmd(m.path))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		// Re-render at the new width.
		return m, m.schedulePreview()

	case tea.KeyMsg:
		switch m.mode {
		case modeOpen:
			return m.updateOpen(msg)
		case modeSaveAs:
			return m.updateSaveAs(msg)
		case modeDiff:
			return m.updateDiff(msg)
		default:
			return m.updateEdit(msg)
		}

	case NewDocumentMsg:
		m.input.SetValue("")
		m.path = ""
		m.diskContent = ""
		m.dirty = false
		m.status = "new document"
		return m, tea.Batch(m.titleCmd(), m.schedulePreview())

	case OpenDocumentMsg:
		m.mode = modeEdit
		return m, loadDocumentCmd(msg.Path)

	case SaveDocumentMsg:
		if m.path == "" {
			return m.enterSaveAs()
		}
		return m, saveDocumentCmd(m.path, m.input.Value())

	case SaveDocumentAsMsg:
		m.mode = modeEdit
		return m, saveDocumentCmd(msg.Path, m.input.Value())

	case documentLoadedMsg:
		if msg.err != nil {
			m.status = "open failed: " + msg.err.Error()
			m.log.IOError("open", msg.path, msg.err)
			return m, nil
		}
		m.path = msg.path
		m.diskContent = msg.content
		m.input.SetValue(msg.content)
		m.dirty = false
		m.status = "opened " + filepath.Base(msg.path)
		m.log.DocumentOpened(msg.path, document.WordCount(msg.content))
		return m, tea.Batch(m.titleCmd(), m.schedulePreview())

	case documentSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			m.log.IOError("save", msg.path, msg.err)
			return m, nil
		}
		m.path = msg.path
		m.diskContent = msg.content
		m.dirty = false
		m.recordSave(msg.path, msg.content)
		m.status = "saved " + filepath.Base(msg.path)
		return m, m.titleCmd()

	case libraryListedMsg:
		m.scanning = false
		if msg.err != nil {
			m.mode = modeEdit
			m.status = "library unavailable: " + msg.err.Error()
			m.log.IOError("list", m.cfg.LibraryDir, msg.err)
			return m, nil
		}
		rows := make([]table.Row, 0, len(msg.entries))
		for _, e := range msg.entries {
			rows = append(rows, table.Row{e.Name})
		}
		m.entriesByRow = msg.entries
		m.picker.SetRows(rows)
		return m, nil

	case previewTickMsg:
		// Only the newest revision is worth rendering.
		if msg.rev != m.rev {
			return m, nil
		}
		return m, m.renderPreviewCmd(m.input.Value(), msg.rev)

	case previewReadyMsg:
		if msg.rev < m.appliedRev {
			return m, nil
		}
		m.appliedRev = msg.rev
		m.preview.SetContent(msg.content)
		return m, nil

	case diffReadyMsg:
		if msg.err != nil {
			m.mode = modeEdit
			m.status = "diff failed: " + msg.err.Error()
			return m, nil
		}
		m.preview.SetContent(msg.content)
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// updateEdit handles keys while the buffer has focus.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit
	case "ctrl+n":
		return m, func() tea.Msg { return NewDocumentMsg{} }
	case "ctrl+o":
		return m.enterOpen()
	case "ctrl+s":
		return m, func() tea.Msg { return SaveDocumentMsg{} }
	case "ctrl+w":
		return m.enterSaveAs()
	case "ctrl+d":
		return m.enterDiff()
	case "ctrl+p":
		if m.previewMode == config.PreviewTerminal {
			m.previewMode = config.PreviewHTML
		} else {
			m.previewMode = config.PreviewTerminal
		}
		return m, m.schedulePreview()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.dirty = true
		return m, tea.Batch(cmd, m.titleCmd(), m.schedulePreview())
	}
	return m, cmd
}

// schedulePreview bumps the revision and arms the debounce timer.
func (m *Model) schedulePreview() tea.Cmd {
	m.rev++
	rev := m.rev
	return tea.Tick(m.cfg.Debounce, func(time.Time) tea.Msg {
		return previewTickMsg{rev: rev}
	})
}

// recordSave updates the metrics store after a successful save and
// persists it. Store failures are logged, never surfaced.
func (m *Model) recordSave(path, content string) {
	fm, body := document.ExtractFrontMatter(content)
	m.store.RecordSave(path, fm.Tags, document.WordCount(body), time.Now())
	if err := m.store.Save(m.storePath); err != nil {
		m.log.StoreError("save", err)
	}
}

func (m Model) titleCmd() tea.Cmd {
	name := "untitled"
	if m.path != "" {
		name = filepath.Base(m.path)
	}
	indicator := ""
	if m.dirty {
		indicator = " •"
	}
	return tea.SetWindowTitle(fmt.Sprintf("inkwell — %s%s", name, indicator))
}

// layout distributes the window between the two panes.
func (m *Model) layout() {
	paneWidth := m.width/2 - 2
	paneHeight := m.height - 4
	if paneWidth < 10 {
		paneWidth = 10
	}
	if paneHeight < 3 {
		paneHeight = 3
	}

	m.input.SetWidth(paneWidth)
	m.input.SetHeight(paneHeight)

	m.preview = viewport.New(paneWidth, paneHeight)
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	switch m.mode {
	case modeOpen:
		return m.viewOpen()
	case modeSaveAs:
		return m.viewSaveAs()
	case modeDiff:
		return m.viewDiff()
	}

	return m.viewEdit()
}

func (m Model) viewEdit() string {
	var b strings.Builder

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		activePane.Render(m.input.View()),
		pane.Render(m.preview.View()),
	)
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+s save • ctrl+o open • ctrl+n new • ctrl+w save as • ctrl+d diff • ctrl+p preview mode • ctrl+q quit"))

	return b.String()
}

// statusLine shows the represented file, a dirty indicator and the
// last operation outcome.
func (m Model) statusLine() string {
	name := "untitled"
	if m.path != "" {
		name = filepath.Base(m.path)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	if m.dirty {
		b.WriteString(dirtyStyle.Render(" •"))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d words", document.WordCount(m.input.Value()))))
	b.WriteString(dimStyle.Render("  preview: " + m.previewMode))
	if m.status != "" {
		b.WriteString(dimStyle.Render("  " + m.status))
	}
	return b.String()
}
