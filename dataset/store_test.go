package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStore_Works_ReloadsOnModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.csv")
	if err := WriteCSV(path, Sample()[:2]); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}

	s := NewStore(path)
	got, err := s.Works()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("first load returned %d works, want 2", len(got))
	}

	if err := WriteCSV(path, Sample()); err != nil {
		t.Fatalf("rewrite dataset: %v", err)
	}
	// Filesystem timestamps can be too coarse to register a same-instant
	// rewrite, so move the clock by hand.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	got, err = s.Works()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if want := len(Sample()); len(got) != want {
		t.Errorf("second load returned %d works, want %d", len(got), want)
	}
}

func TestStore_Works_CachesOnUnchangedModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.csv")
	if err := WriteCSV(path, Sample()[:2]); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}
	stamp := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	s := NewStore(path)
	first, err := s.Works()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Rewrite the file but pin the old modification time; the store must
	// keep serving the cached dataset.
	if err := WriteCSV(path, Sample()); err != nil {
		t.Fatalf("rewrite dataset: %v", err)
	}
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	second, err := s.Works()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("unchanged modification time reloaded the file: got %d works, want %d", len(second), len(first))
	}
}

func TestStore_Works_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.csv"))
	if _, err := s.Works(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want a not-exist error", err)
	}
}

func TestStore_Path(t *testing.T) {
	if got := NewStore("data/works.csv").Path(); got != "data/works.csv" {
		t.Errorf("Path() = %q, want %q", got, "data/works.csv")
	}
}
