package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	older := Record{
		ID:           uuid.New().String(),
		CreatedAt:    base,
		Source:       "api",
		Mode:         "hybrid",
		Score:        65,
		Bucket:       types.RiskBucketHigh,
		Annotations:  3,
		Placeholders: 1,
	}
	newer := Record{
		ID:          uuid.New().String(),
		CreatedAt:   base.Add(time.Minute),
		Source:      "upload:contacts.csv",
		Mode:        "regex",
		Score:       8,
		Bucket:      types.RiskBucketLow,
		Annotations: 3,
	}
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	records, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, newer.ID, records[0].ID, "newest record first")
	assert.Equal(t, older.ID, records[1].ID)
	assert.Equal(t, "upload:contacts.csv", records[0].Source)
	assert.Equal(t, types.RiskBucketHigh, records[1].Bucket)
	assert.Equal(t, 65, records[1].Score)
	assert.Equal(t, 1, records[1].Placeholders)
	assert.True(t, records[1].CreatedAt.Equal(base))
}

func TestStore_RecentLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, Record{
			ID:        uuid.New().String(),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Source:    "api",
			Mode:      "hybrid",
			Bucket:    types.RiskBucketLow,
		}))
	}

	records, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "non-positive limit falls back to the default")
}

func TestStore_RecentEmpty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	record := Record{
		ID:        "fixed",
		CreatedAt: time.Now(),
		Source:    "api",
		Mode:      "hybrid",
		Bucket:    types.RiskBucketLow,
	}

	require.NoError(t, s.Save(ctx, record))
	assert.Error(t, s.Save(ctx, record))
}
