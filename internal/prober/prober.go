package prober

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/camford/httplatency/internal/config"
	"github.com/camford/httplatency/internal/httpclient"
	"github.com/camford/httplatency/internal/models"
)

// Prober measures HTTP(S) round-trip latency for canonical addresses,
// one blocking GET per call.
type Prober struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// New creates a Prober from the given configuration. Keep-alives are
// disabled: the prober opens and closes exactly one connection per probe so
// repeated measurements of the same host never hit a warm connection.
func New(cfg config.ProberConfig, logger zerolog.Logger) (*Prober, error) {
	client, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		WithInsecureSkipVerify(cfg.InsecureSkipVerify).
		WithFollowRedirects(cfg.FollowRedirects).
		WithMaxRedirects(cfg.MaxRedirects).
		WithDisableKeepAlives(true).
		WithHTTP2(cfg.EnableHTTP2).
		WithUserAgent(cfg.UserAgent).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build prober HTTP client: %w", err)
	}

	return &Prober{
		client:    client,
		userAgent: cfg.UserAgent,
		logger:    logger.With().Str("component", "Prober").Logger(),
	}, nil
}

// Probe issues a single GET to address and returns the elapsed wall-clock
// milliseconds until the response headers arrived. Any transport failure
// (DNS, connect, TLS, malformed response) is returned as an error; the
// caller decides whether that is fatal. One invocation yields at most one
// record and opens at most one connection.
func (p *Prober) Probe(ctx context.Context, address string) (models.LatencyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return models.LatencyRecord{}, fmt.Errorf("failed to build request for %s: %w", address, err)
	}
	req.Close = true
	req.Header.Set("User-Agent", p.userAgent)

	p.logger.Debug().Str("url", address).Msg("Probing")

	start := time.Now()
	resp, err := p.client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return models.LatencyRecord{}, httpclient.WrapError(err, fmt.Sprintf("probe of %s failed", address))
	}

	// The body is drained so the connection can shut down cleanly, but it
	// plays no part in the measurement: the clock stopped at the headers.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	record := models.LatencyRecord{
		URL:       address,
		LatencyMS: latency.Milliseconds(),
	}

	p.logger.Debug().
		Str("url", address).
		Int("status_code", resp.StatusCode).
		Int64("latency_ms", record.LatencyMS).
		Msg("Probe complete")

	return record, nil
}
