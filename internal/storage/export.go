package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRecord is the CSV layout of a ScoreEntry.
type csvRecord struct {
	ID        int64  `csv:"id"`
	SessionID string `csv:"session"`
	Player    string `csv:"player"`
	Score     int    `csv:"score"`
	Frames    int    `csv:"frames"`
	CreatedAt string `csv:"created_at"`
}

// WriteCSV writes entries as CSV with a header row.
func WriteCSV(w io.Writer, entries []ScoreEntry) error {
	records := make([]csvRecord, len(entries))
	for i, e := range entries {
		records[i] = csvRecord{
			ID:        e.ID,
			SessionID: e.SessionID,
			Player:    e.Player,
			Score:     e.Score,
			Frames:    e.Frames,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
