package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "metrics.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s == nil || s.Daily == nil || s.Documents == nil {
		t.Fatal("expected usable empty store")
	}
}

func TestLoadCorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err == nil {
		t.Error("expected reset notice for corrupt store")
	}
	if s == nil || len(s.Daily) != 0 || len(s.Documents) != 0 {
		t.Fatal("corrupt store must reset to empty defaults")
	}

	// The reset store must still accept writes and persist.
	s.RecordSave("/tmp/a.md", nil, 10, time.Now())
	if err := s.Save(path); err != nil {
		t.Fatalf("Save after reset failed: %v", err)
	}
}

func TestRecordSaveDeltas(t *testing.T) {
	s := NewStore()
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s.RecordSave("/n/a.md", []string{"go"}, 100, day)
	if s.Daily["2026-08-30"] != 100 {
		t.Errorf("first save should count all words, got %d", s.Daily["2026-08-30"])
	}

	s.RecordSave("/n/a.md", []string{"go"}, 150, day)
	if s.Daily["2026-08-30"] != 150 {
		t.Errorf("second save should add the delta, got %d", s.Daily["2026-08-30"])
	}

	// Deleting words never decrements the day counter.
	s.RecordSave("/n/a.md", nil, 120, day)
	if s.Daily["2026-08-30"] != 150 {
		t.Errorf("shrinking document must not reduce counter, got %d", s.Daily["2026-08-30"])
	}
	if s.Documents["/n/a.md"].Words != 120 {
		t.Errorf("metadata word count should track the latest save")
	}
}

func TestRecordSaveStableID(t *testing.T) {
	s := NewStore()
	now := time.Now()

	s.RecordSave("/n/a.md", nil, 1, now)
	id := s.Documents["/n/a.md"].ID
	if id == "" {
		t.Fatal("expected a generated document ID")
	}

	s.RecordSave("/n/a.md", nil, 2, now)
	if s.Documents["/n/a.md"].ID != id {
		t.Error("document ID must be stable across saves")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	day := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	s := NewStore()
	s.RecordSave("/n/a.md", []string{"journal"}, 42, day)
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Daily["2026-08-29"] != 42 {
		t.Errorf("day counter lost in round trip: %v", loaded.Daily)
	}
	meta := loaded.Documents["/n/a.md"]
	if meta == nil || meta.Words != 42 || len(meta.Tags) != 1 || meta.Tags[0] != "journal" {
		t.Errorf("document metadata lost in round trip: %+v", meta)
	}
}

func TestRecentDays(t *testing.T) {
	s := NewStore()
	s.Daily["2026-08-28"] = 5
	s.Daily["2026-08-30"] = 7
	s.Daily["2026-08-29"] = 6

	days := s.RecentDays(2)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Day != "2026-08-30" || days[1].Day != "2026-08-29" {
		t.Errorf("RecentDays order = %v", days)
	}
}

func TestTotalWords(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.RecordSave("/n/a.md", nil, 10, now)
	s.RecordSave("/n/b.md", nil, 20, now)

	if got := s.TotalWords(); got != 30 {
		t.Errorf("TotalWords = %d, want 30", got)
	}
}
