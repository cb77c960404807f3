// Package document handles reading, writing and listing the text
// documents the editor works on.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// recognizedExts is the fixed set of extensions the library listing
// and open dialog accept.
var recognizedExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".txt":      true,
}

// Entry is one listable document.
type Entry struct {
	Name string
	Path string
}

// Recognized reports whether path has a recognized document extension.
func Recognized(path string) bool {
	return recognizedExts[strings.ToLower(filepath.Ext(path))]
}

// Read returns the raw text content of the document at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// Write stores content at path, creating parent directories as needed.
func Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// List returns the recognized documents directly inside dir, sorted by
// locale-aware name order.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	entries := []Entry{}
	for _, de := range dirEntries {
		if de.IsDir() || !Recognized(de.Name()) {
			continue
		}
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(dir, de.Name()),
		})
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.Slice(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	return entries, nil
}

// WordCount counts whitespace-separated words in content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
