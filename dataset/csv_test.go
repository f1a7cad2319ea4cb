package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fandomstats/kudoscope/models"
)

// trickyWork carries the cells that stress CSV quoting: commas, quotes,
// newlines and non-ASCII text.
func trickyWork() models.Work {
	return models.Work{
		FandomSearched: "Fandom A",
		Title:          `Caffè, "Quotes" and Commas`,
		WorkID:         "424242",
		Author:         "café_writer",
		Rating:         "Not Rated",
		Warnings:       "No Archive Warnings Apply",
		Category:       "N/A",
		Fandoms:        "Fandom A, Fandom B",
		Tags:           "Fluff, Angst",
		Relationships:  "A/B",
		Characters:     "A, B",
		Language:       "English",
		Words:          1234,
		Chapters:       "3/?",
		Kudos:          56,
		Bookmarks:      7,
		Hits:           890,
		Summary:        "Line one.\nLine two, with a comma and \"quotes\".",
	}
}

func TestWriteCSV_ReadCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.csv")
	want := append(Sample(), trickyWork())

	if err := WriteCSV(path, want); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("round trip changed the dataset:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestWriteCSV_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.csv")

	err := WriteCSV(path, nil)
	if !errors.Is(err, models.ErrNoRecords) {
		t.Fatalf("error = %v, want models.ErrNoRecords", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("an empty dataset must not leave a file behind, stat: %v", statErr)
	}
}

func TestWriteCSV_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "works.csv")

	if err := WriteCSV(path, Sample()[:1]); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dataset file missing after write: %v", err)
	}
}

func TestWriteCSV_HeaderLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.csv")
	if err := WriteCSV(path, Sample()[:1]); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	first, _, _ := strings.Cut(string(raw), "\n")
	if want := strings.Join(models.Columns(), ","); first != want {
		t.Errorf("header line = %q, want %q", first, want)
	}
}

func TestReadCSV_HeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	if err := os.WriteFile(path, []byte("id,title\n1,x\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := ReadCSV(path)
	if err == nil || !strings.Contains(err.Error(), "unexpected header") {
		t.Errorf("error = %v, want an unexpected header error", err)
	}
}

func TestReadCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := ReadCSV(path)
	if err == nil || !strings.Contains(err.Error(), "empty dataset file") {
		t.Errorf("error = %v, want an empty dataset file error", err)
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want a not-exist error", err)
	}
}
