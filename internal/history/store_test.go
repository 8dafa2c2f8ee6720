package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/consolefmt/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_Migrates(t *testing.T) {
	store := newTestStore(t)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].Version, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Record(context.Background(), &Entry{Level: console.LevelInfo, Format: "a", Text: "a"}))
	require.NoError(t, first.Close())

	second, err := NewStore(path)
	require.NoError(t, err)
	defer second.Close()

	n, err := second.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewStore_InMemory(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(context.Background(), &Entry{Level: console.LevelLog, Format: "x", Text: "x"}))
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	e := &Entry{Level: console.LevelWarn, Format: "%cA", Args: []string{"color: red"}, Text: "A"}

	require.NoError(t, store.Record(context.Background(), e))

	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, store.Record(ctx, &Entry{
			Level:     console.LevelInfo,
			Format:    "%s",
			Args:      []string{text},
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * 100 * time.Millisecond),
		}))
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Text)
	assert.Equal(t, "second", entries[1].Text)
	assert.Equal(t, []string{"third"}, entries[0].Args)
	assert.Equal(t, console.LevelInfo, entries[0].Level)
	assert.True(t, entries[0].CreatedAt.Equal(base.Add(200*time.Millisecond)))

	all, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestList_MinLevel(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, l := range []console.Level{console.LevelDebug, console.LevelLog, console.LevelInfo, console.LevelWarn, console.LevelError} {
		require.NoError(t, store.Record(ctx, &Entry{Level: l, Format: l.String(), Text: l.String()}))
	}

	tests := []struct {
		min  console.Level
		want int
	}{
		{console.LevelDebug, 5},
		{console.LevelLog, 4},
		{console.LevelInfo, 4},
		{console.LevelWarn, 2},
		{console.LevelError, 1},
	}
	for _, tt := range tests {
		t.Run(tt.min.String(), func(t *testing.T) {
			entries, err := store.List(ctx, Query{MinLevel: tt.min})
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, &Entry{Level: console.LevelLog, Format: "a", Text: "a"}))
	require.NoError(t, store.Record(ctx, &Entry{Level: console.LevelLog, Format: "b", Text: "b"}))

	n, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSink_RecordsRenderedText(t *testing.T) {
	store := newTestStore(t)
	sink := NewSink(store, func(err error) { t.Errorf("unexpected error: %v", err) })

	c := console.New(sink)
	c.BadgeError("BUILD", "failed")

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, console.LevelError, entries[0].Level)
	assert.Equal(t, "%cBUILD", entries[0].Format)
	require.Len(t, entries[0].Args, 2)
	assert.Equal(t, "failed", entries[0].Args[1])
	assert.Equal(t, " BUILD  failed", entries[0].Text)
}

func TestSink_ReportsErrors(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	var reported error
	sink := NewSink(store, func(err error) { reported = err })
	sink.Emit(console.LevelInfo, "lost")

	assert.Error(t, reported)
	assert.False(t, errors.Is(reported, context.Canceled))
}
