package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fandomstats/kudoscope/models"
)

// WriteJSON writes works to path as a pretty-printed JSON array with the same
// field names as the CSV columns. HTML escaping is off so angle brackets and
// ampersands in titles and summaries land in the file as-is; non-ASCII text
// is UTF-8 either way. An empty harvest writes [].
func WriteJSON(path string, works []models.Work) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if works == nil {
		works = []models.Work{}
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(works); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
