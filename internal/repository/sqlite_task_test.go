package repository_test

import (
	"context"
	"testing"

	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/adilzhanb/zhospar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateBatchAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	testutil.SeedProfile(t, database, "u1", "A")

	texts := []string{"первая", "вторая", "третья", "четвертая"}
	require.NoError(t, repo.CreateBatch(ctx, "u1", "2025-06-10", texts))

	entries, err := repo.ListByDate(ctx, "u1", "2025-06-10")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, "u1", e.UserID)
		assert.Equal(t, "2025-06-10", e.Date)
		assert.Equal(t, i+1, e.Seq)
		assert.Equal(t, texts[i], e.Text)
	}
}

func TestTaskRepo_CreateBatchIgnoresDuplicates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	testutil.SeedProfile(t, database, "u1", "A")

	require.NoError(t, repo.CreateBatch(ctx, "u1", "2025-06-10", []string{"a", "b"}))
	// Second writer for the same date loses quietly; first texts survive.
	require.NoError(t, repo.CreateBatch(ctx, "u1", "2025-06-10", []string{"x", "y"}))

	entries, err := repo.ListByDate(ctx, "u1", "2025-06-10")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Text)
	assert.Equal(t, "b", entries[1].Text)
}

func TestTaskRepo_ListByDateEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)

	entries, err := repo.ListByDate(context.Background(), "u1", "2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTaskRepo_ListByDateRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	testutil.SeedProfile(t, database, "u1", "A")
	require.NoError(t, repo.CreateBatch(ctx, "u1", "2025-06-08", []string{"a"}))
	require.NoError(t, repo.CreateBatch(ctx, "u1", "2025-06-09", []string{"b"}))
	require.NoError(t, repo.CreateBatch(ctx, "u1", "2025-06-12", []string{"c"}))

	entries, err := repo.ListByDateRange(ctx, "u1", "2025-06-08", "2025-06-10")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-06-08", entries[0].Date)
	assert.Equal(t, "2025-06-09", entries[1].Date)
}
