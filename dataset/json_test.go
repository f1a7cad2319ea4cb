package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fandomstats/kudoscope/models"
)

func TestWriteJSON_RoundTripAndFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.json")
	want := append(Sample(), trickyWork())

	if err := WriteJSON(path, want); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	if !strings.HasPrefix(string(raw), "[\n  {") {
		t.Error("output is not a two-space indented array")
	}
	if !strings.Contains(string(raw), "Caffè") {
		t.Error("non-ASCII text should land in the file unescaped")
	}

	var got []models.Work
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("round trip changed the dataset:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestWriteJSON_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.json")

	if err := WriteJSON(path, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if got := strings.TrimSpace(string(raw)); got != "[]" {
		t.Errorf("empty dataset wrote %q, want []", got)
	}
}
