package datastore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/camford/httplatency/internal/models"
)

// JSONWriter writes the run's latency records as a pretty-printed JSON array.
// This is the primary output artifact: every successful run produces one,
// even when it holds zero records.
type JSONWriter struct {
	logger zerolog.Logger
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(logger zerolog.Logger) *JSONWriter {
	return &JSONWriter{
		logger: logger.With().Str("component", "JSONWriter").Logger(),
	}
}

// Write marshals records to filePath. A nil slice is written as an empty
// array, never as JSON null.
func (w *JSONWriter) Write(records []models.LatencyRecord, filePath string) error {
	if records == nil {
		records = []models.LatencyRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal latency records: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", filePath, err)
	}

	w.logger.Info().
		Str("file_path", filePath).
		Int("records_written", len(records)).
		Msg("Wrote latency records")

	return nil
}
