// Package metrics persists lightweight writing-activity data: how many
// words were written per day, and per-document metadata (stable ID,
// tag list, last recorded word count).
package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

// DocumentMeta is the stored metadata for one document, keyed by path.
type DocumentMeta struct {
	ID    string   `json:"id"`
	Tags  []string `json:"tags,omitempty"`
	Words int      `json:"words"`
}

// Store holds the two persisted maps.
type Store struct {
	Daily     map[string]int           `json:"daily"` // "2006-01-02" -> words written
	Documents map[string]*DocumentMeta `json:"documents"`
}

// DayCount is one day's write volume, used for reporting.
type DayCount struct {
	Day   string
	Words int
}

// StorePath returns the path to the metrics file.
// Can be overridden for testing.
var StorePath = func() string {
	return filepath.Join(xdg.DataHome, "inkwell", "metrics.json")
}

// NewStore creates a new empty store.
func NewStore() *Store {
	return &Store{
		Daily:     make(map[string]int),
		Documents: make(map[string]*DocumentMeta),
	}
}

// Load reads the store from path. A missing file yields an empty
// store. An unparsable file also yields an empty store, with the parse
// error returned so the caller can log the reset; the store is usable
// either way.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return NewStore(), err
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return NewStore(), fmt.Errorf("resetting corrupt metrics store: %w", err)
	}

	if s.Daily == nil {
		s.Daily = make(map[string]int)
	}
	if s.Documents == nil {
		s.Documents = make(map[string]*DocumentMeta)
	}

	return &s, nil
}

// Save writes the store to path.
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}

	return nil
}

// RecordSave updates the store after a document save: the day counter
// grows by the words added since the last recorded count, and the
// document metadata is refreshed. First saves of an unknown document
// count all its words.
func (s *Store) RecordSave(path string, tags []string, words int, now time.Time) {
	meta, ok := s.Documents[path]
	if !ok {
		meta = &DocumentMeta{ID: uuid.New().String()}
		s.Documents[path] = meta
	}

	delta := words - meta.Words
	if delta > 0 {
		day := now.Format("2006-01-02")
		s.Daily[day] += delta
	}

	meta.Tags = tags
	meta.Words = words
}

// RecentDays returns up to n day counters, most recent first.
func (s *Store) RecentDays(n int) []DayCount {
	days := make([]DayCount, 0, len(s.Daily))
	for day, words := range s.Daily {
		days = append(days, DayCount{Day: day, Words: words})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Day > days[j].Day
	})

	if len(days) > n {
		days = days[:n]
	}
	return days
}

// TotalWords sums the recorded word counts across all documents.
func (s *Store) TotalWords() int {
	total := 0
	for _, meta := range s.Documents {
		total += meta.Words
	}
	return total
}
