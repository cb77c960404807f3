package editor

import "github.com/gerunddev/inkwell/internal/document"

// Command messages form the inbound channel from the shell into the
// editing surface. Key bindings translate into these, but they can
// also be injected programmatically (tests do).
type (
	// NewDocumentMsg discards the buffer and starts an untitled document.
	NewDocumentMsg struct{}

	// OpenDocumentMsg loads the document at Path into the buffer.
	OpenDocumentMsg struct{ Path string }

	// SaveDocumentMsg writes the buffer to its current path, or routes
	// to save-as when the document is untitled.
	SaveDocumentMsg struct{}

	// SaveDocumentAsMsg writes the buffer to Path.
	SaveDocumentAsMsg struct{ Path string }
)

// Internal plumbing messages.
type (
	documentLoadedMsg struct {
		path    string
		content string
		err     error
	}

	documentSavedMsg struct {
		path    string
		content string
		err     error
	}

	libraryListedMsg struct {
		entries []document.Entry
		err     error
	}

	// previewTickMsg fires after the debounce interval; stale revisions
	// are dropped in Update.
	previewTickMsg struct{ rev int }

	// previewReadyMsg carries a finished preview render for a revision.
	previewReadyMsg struct {
		rev     int
		content string
	}

	diffReadyMsg struct {
		content string
		err     error
	}
)
