package models

import "time"

// ParquetLatencyRecord defines the schema for storing latency records in
// Parquet format using parquet-go/parquet-go tag conventions.
// Timestamps are stored as int64 Unix milliseconds.
type ParquetLatencyRecord struct {
	URL        string `parquet:"url"`
	LatencyMS  int64  `parquet:"latency_ms"`
	RecordedAt int64  `parquet:"recorded_at"`
}

// ToParquetLatencyRecord converts a LatencyRecord to its Parquet schema form.
func ToParquetLatencyRecord(rec LatencyRecord, recordedAt time.Time) ParquetLatencyRecord {
	return ParquetLatencyRecord{
		URL:        rec.URL,
		LatencyMS:  rec.LatencyMS,
		RecordedAt: recordedAt.UnixMilli(),
	}
}
