package datastore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camford/httplatency/internal/models"
)

func newTestHistoryStore(t *testing.T) *HistoryStore {
	t.Helper()
	store, err := NewHistoryStore(context.Background(), filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHistoryStore_RecordAndReadBack(t *testing.T) {
	store := newTestHistoryStore(t)
	ctx := context.Background()

	startedAt := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	records := []models.LatencyRecord{
		{URL: "http://www.example.com", LatencyMS: 42},
		{URL: "https://www.example.org/", LatencyMS: 310},
	}

	runID, err := store.RecordRun(ctx, startedAt, records)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	readBack, err := store.LatenciesForRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, records, readBack)
}

func TestHistoryStore_RecentRuns(t *testing.T) {
	store := newTestHistoryStore(t)
	ctx := context.Background()

	first := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	firstID, err := store.RecordRun(ctx, first, []models.LatencyRecord{{URL: "http://a", LatencyMS: 1}})
	require.NoError(t, err)
	secondID, err := store.RecordRun(ctx, second, []models.LatencyRecord{
		{URL: "http://a", LatencyMS: 2},
		{URL: "http://b", LatencyMS: 3},
	})
	require.NoError(t, err)

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, secondID, runs[0].ID, "newest run first")
	assert.Equal(t, 2, runs[0].RecordCount)
	assert.True(t, runs[0].StartedAt.Equal(second))

	assert.Equal(t, firstID, runs[1].ID)
	assert.Equal(t, 1, runs[1].RecordCount)
}

func TestHistoryStore_RecentRunsHonorsLimit(t *testing.T) {
	store := newTestHistoryStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.RecordRun(ctx, time.Now(), nil)
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestHistoryStore_EmptyRunIsRecorded(t *testing.T) {
	store := newTestHistoryStore(t)
	ctx := context.Background()

	runID, err := store.RecordRun(ctx, time.Now(), nil)
	require.NoError(t, err)

	records, err := store.LatenciesForRun(ctx, runID)
	require.NoError(t, err)
	assert.Empty(t, records)

	runs, err := store.RecentRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 0, runs[0].RecordCount)
}

func TestHistoryStore_CreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	store, err := NewHistoryStore(context.Background(), dbPath, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
