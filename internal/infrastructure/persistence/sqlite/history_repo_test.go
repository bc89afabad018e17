package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/typeahead/internal/logging"
)

func historyTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// newTestRepo returns a repository over a temp database whose clock advances
// one second per write.
func newTestRepo(t *testing.T) *historyRepo {
	t.Helper()
	lazy := NewLazyDB(filepath.Join(t.TempDir(), "history.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewHistoryRepository(lazy).(*historyRepo)
	repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return repo
}

func TestHistoryRepository_RecordAndFind(t *testing.T) {
	ctx := historyTestCtx()
	repo := newTestRepo(t)

	require.NoError(t, repo.Record(ctx, "apple"))
	require.NoError(t, repo.Record(ctx, "apple"))

	s, err := repo.FindByValue(ctx, "apple")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "apple", s.Value)
	assert.Equal(t, int64(2), s.UseCount)
	assert.True(t, s.LastUsed.After(s.CreatedAt))

	missing, err := repo.FindByValue(ctx, "kiwi")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHistoryRepository_GetRecent(t *testing.T) {
	ctx := historyTestCtx()
	repo := newTestRepo(t)

	for _, v := range []string{"apple", "banana", "cherry", "apple"} {
		require.NoError(t, repo.Record(ctx, v))
	}

	recent, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "apple", recent[0].Value)
	assert.Equal(t, "cherry", recent[1].Value)
	assert.Equal(t, "banana", recent[2].Value)

	limited, err := repo.GetRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "apple", limited[0].Value)
}

func TestHistoryRepository_GetRecent_EmptyResult(t *testing.T) {
	repo := newTestRepo(t)

	recent, err := repo.GetRecent(historyTestCtx(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestHistoryRepository_Delete(t *testing.T) {
	ctx := historyTestCtx()
	repo := newTestRepo(t)

	require.NoError(t, repo.Record(ctx, "apple"))
	require.NoError(t, repo.Record(ctx, "banana"))

	s, err := repo.FindByValue(ctx, "apple")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, s.ID))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.DeleteAll(ctx))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := historyTestCtx()
	db, err := NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "history.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))

	version, err := GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := NewConnection(historyTestCtx(), "")
	assert.Error(t, err)
}
