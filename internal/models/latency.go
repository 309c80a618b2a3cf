package models

// LatencyRecord is the immutable result of one successful latency probe.
// Records are created by the prober only and collected in probe order.
type LatencyRecord struct {
	URL       string `json:"url"`
	LatencyMS int64  `json:"latency_ms"`
}

// RunStats summarizes one pipeline run for logging and notifications.
type RunStats struct {
	Attempted int
	Rejected  int
	Failed    int
	Succeeded int
}
