package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/camford/httplatency/internal/config"
	"github.com/camford/httplatency/internal/models"
)

// ParquetWriter exports a run's latency records to a Parquet file under the
// configured base path, one file per run.
type ParquetWriter struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// NewParquetWriter creates a new ParquetWriter.
func NewParquetWriter(cfg *config.StorageConfig, logger zerolog.Logger) (*ParquetWriter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config cannot be nil")
	}
	if cfg.ParquetBasePath == "" {
		return nil, fmt.Errorf("parquet base path is not configured")
	}

	return &ParquetWriter{
		config: cfg,
		logger: logger.With().Str("component", "ParquetWriter").Logger(),
	}, nil
}

// Write stores records in a timestamped Parquet file and returns its path.
func (pw *ParquetWriter) Write(records []models.LatencyRecord, recordedAt time.Time) (string, error) {
	if err := os.MkdirAll(pw.config.ParquetBasePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create parquet base path %s: %w", pw.config.ParquetBasePath, err)
	}

	fileName := fmt.Sprintf("latency_%s.parquet", recordedAt.Format("20060102-150405"))
	filePath := filepath.Join(pw.config.ParquetBasePath, fileName)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create parquet file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.ParquetLatencyRecord](file, pw.compressionOption())

	parquetRecords := make([]models.ParquetLatencyRecord, 0, len(records))
	for _, rec := range records {
		parquetRecords = append(parquetRecords, models.ToParquetLatencyRecord(rec, recordedAt))
	}

	written, err := writer.Write(parquetRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write records to parquet file %s: %w", filePath, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close parquet writer for %s: %w", filePath, err)
	}

	pw.logger.Info().
		Str("file_path", filePath).
		Int("records_written", written).
		Msg("Wrote latency records to Parquet file")

	return filePath, nil
}

// compressionOption maps the configured codec name to a writer option.
func (pw *ParquetWriter) compressionOption() parquet.WriterOption {
	switch pw.config.CompressionCodec {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
