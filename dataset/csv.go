package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/fandomstats/kudoscope/models"
)

// Default file names inside the data directory.
const (
	DefaultCSVName  = "works.csv"
	DefaultJSONName = "works.json"
	DemoCSVName     = "demo_fanfictions.csv"
)

// WriteCSV writes works to path with the fixed column header. Zero records is
// an error (models.ErrNoRecords) so callers notice an empty harvest instead
// of shipping a header-only file. The parent directory is created if missing.
func WriteCSV(path string, works []models.Work) error {
	if len(works) == 0 {
		return models.ErrNoRecords
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, work := range works {
		if err := w.Write(work.Record()); err != nil {
			return fmt.Errorf("write work %s: %w", work.WorkID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ReadCSV loads a dataset written by WriteCSV. The header must match the
// fixed column set exactly; numeric columns are parsed back to integers.
func ReadCSV(path string) ([]models.Work, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty dataset file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(header, models.Columns()) {
		return nil, fmt.Errorf("%s: unexpected header %v", path, header)
	}

	var works []models.Work
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		work, err := models.FromRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		works = append(works, work)
	}
	return works, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
