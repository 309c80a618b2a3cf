package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camford/httplatency/internal/models"
)

// fakeProber records the addresses it was asked to probe and fails the ones
// listed in failFor.
type fakeProber struct {
	probed  []string
	failFor map[string]bool
	latency int64
}

func (f *fakeProber) Probe(_ context.Context, address string) (models.LatencyRecord, error) {
	f.probed = append(f.probed, address)
	if f.failFor[address] {
		return models.LatencyRecord{}, errors.New("connection refused")
	}
	return models.LatencyRecord{URL: address, LatencyMS: f.latency}, nil
}

func TestRun_CanonicalizesAndPreservesOrder(t *testing.T) {
	prober := &fakeProber{latency: 12}
	r := New(prober, zerolog.Nop())

	records, stats := r.Run(context.Background(), []string{
		"www.example.com",
		"http://www.example.org:80",
		"www.example.net:443",
	})

	require.Len(t, records, 3)
	assert.Equal(t, "http://www.example.com", records[0].URL)
	assert.Equal(t, "http://www.example.org/", records[1].URL)
	assert.Equal(t, "https://www.example.net:443", records[2].URL)
	assert.Equal(t, []string{records[0].URL, records[1].URL, records[2].URL}, prober.probed)

	assert.Equal(t, models.RunStats{Attempted: 3, Succeeded: 3}, stats)
}

func TestRun_RejectedAddressesAreSkippedNotProbed(t *testing.T) {
	prober := &fakeProber{latency: 5}
	r := New(prober, zerolog.Nop())

	records, stats := r.Run(context.Background(), []string{
		"www.example.com",
		"ftp://ftp.example.com",
		"www.example.org",
	})

	require.Len(t, records, 2)
	assert.Equal(t, "http://www.example.com", records[0].URL)
	assert.Equal(t, "http://www.example.org", records[1].URL)
	assert.NotContains(t, prober.probed, "ftp://ftp.example.com")

	assert.Equal(t, models.RunStats{Attempted: 3, Rejected: 1, Succeeded: 2}, stats)
}

func TestRun_ProbeFailuresAreSoftSkips(t *testing.T) {
	prober := &fakeProber{
		latency: 7,
		failFor: map[string]bool{"http://down.example.com": true},
	}
	r := New(prober, zerolog.Nop())

	records, stats := r.Run(context.Background(), []string{
		"up.example.com",
		"down.example.com",
		"also-up.example.com",
	})

	require.Len(t, records, 2)
	assert.Equal(t, "http://up.example.com", records[0].URL)
	assert.Equal(t, "http://also-up.example.com", records[1].URL)

	assert.Equal(t, models.RunStats{Attempted: 3, Failed: 1, Succeeded: 2}, stats)
}

func TestRun_AllFailuresReturnsEmptyNonNilSlice(t *testing.T) {
	prober := &fakeProber{
		failFor: map[string]bool{"http://down.example.com": true},
	}
	r := New(prober, zerolog.Nop())

	records, stats := r.Run(context.Background(), []string{
		"ftp://nope.example.com",
		"down.example.com",
	})

	require.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, models.RunStats{Attempted: 2, Rejected: 1, Failed: 1}, stats)
}

func TestRun_EmptyInput(t *testing.T) {
	r := New(&fakeProber{}, zerolog.Nop())

	records, stats := r.Run(context.Background(), nil)

	require.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, models.RunStats{}, stats)
}

func TestRun_CancelledContextStopsEarly(t *testing.T) {
	prober := &fakeProber{latency: 3}
	r := New(prober, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, stats := r.Run(ctx, []string{"www.example.com", "www.example.org"})

	assert.Empty(t, records)
	assert.Empty(t, prober.probed)
	assert.Equal(t, 2, stats.Attempted)
	assert.Zero(t, stats.Succeeded)
}
