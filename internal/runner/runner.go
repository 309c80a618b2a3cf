package runner

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/camford/httplatency/internal/models"
	"github.com/camford/httplatency/internal/urlhandler"
)

// Prober is the measurement dependency of the pipeline.
type Prober interface {
	Probe(ctx context.Context, address string) (models.LatencyRecord, error)
}

// Runner drives the measurement pipeline: canonicalize each raw address,
// drop rejections, probe the survivors one at a time in input order, drop
// failures, and collect the remaining records.
type Runner struct {
	prober Prober
	logger zerolog.Logger
}

// New creates a Runner around the given prober.
func New(prober Prober, logger zerolog.Logger) *Runner {
	return &Runner{
		prober: prober,
		logger: logger.With().Str("component", "Runner").Logger(),
	}
}

// Run processes rawAddresses sequentially and returns the successful latency
// records in probe order. Per-address failures are logged and skipped; they
// never abort the run, so an all-failure run returns an empty (non-nil)
// slice. Probing stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, rawAddresses []string) ([]models.LatencyRecord, models.RunStats) {
	records := make([]models.LatencyRecord, 0, len(rawAddresses))
	stats := models.RunStats{Attempted: len(rawAddresses)}

	for _, raw := range rawAddresses {
		if ctx.Err() != nil {
			r.logger.Warn().Err(ctx.Err()).Msg("Run interrupted, returning records collected so far")
			break
		}

		address, err := urlhandler.Canonicalize(raw)
		if err != nil {
			r.logger.Warn().Err(err).Str("address", raw).Msg("Rejected address")
			stats.Rejected++
			continue
		}

		r.logger.Info().Str("url", address).Msg("Testing")

		record, err := r.prober.Probe(ctx, address)
		if err != nil {
			r.logger.Warn().Err(err).Str("url", address).Msg("Could not retrieve address")
			stats.Failed++
			continue
		}

		records = append(records, record)
		stats.Succeeded++
	}

	r.logger.Info().
		Int("attempted", stats.Attempted).
		Int("rejected", stats.Rejected).
		Int("failed", stats.Failed).
		Int("succeeded", stats.Succeeded).
		Msg("All HTTP requests complete")

	return records, stats
}
