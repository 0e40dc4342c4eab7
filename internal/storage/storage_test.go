package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return ctx, db
}

func TestTaskRepoRoundTrip(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := NewTaskRepo(db)

	desc := "with details"
	task := &Task{
		ID:          "t1",
		Title:       "first",
		Description: &desc,
		Priority:    "high",
		Category:    "Work",
		Points:      10,
		CreatedAt:   time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(ctx, task))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "with details", *got.Description)
	assert.Equal(t, "high", got.Priority)
	assert.Equal(t, 10, got.Points)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestTaskRepoGetMissing(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := NewTaskRepo(db)

	got, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTaskRepoListOrder(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := NewTaskRepo(db)

	base := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, &Task{ID: "b", Title: "second", Priority: "low", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Insert(ctx, &Task{ID: "a", Title: "first", Priority: "low", CreatedAt: base}))

	tasks, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
}

func TestTaskRepoCompletionToggle(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := NewTaskRepo(db)

	created := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, &Task{ID: "t1", Title: "toggle", Priority: "medium", CreatedAt: created}))

	done := created.Add(2 * time.Hour)
	require.NoError(t, repo.MarkCompleted(ctx, "t1", done))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(done))

	require.NoError(t, repo.MarkPending(ctx, "t1"))
	got, err = repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestProgressRepoGetOrCreateMain(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := NewProgressRepo(db)

	p, err := repo.GetOrCreateMain(ctx)
	require.NoError(t, err)
	assert.Equal(t, MainProgressKey, p.Key)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.TotalXP)
	assert.Equal(t, "default", p.Theme)
	assert.Equal(t, "gamer", p.Avatar)

	p.TotalXP = 250
	p.Level = 2
	p.CurrentStreak = 3
	p.LastCompletionDate = "2025-03-15"
	require.NoError(t, repo.Update(ctx, p))

	again, err := repo.GetOrCreateMain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, again.TotalXP)
	assert.Equal(t, 2, again.Level)
	assert.Equal(t, 3, again.CurrentStreak)
	assert.Equal(t, "2025-03-15", again.LastCompletionDate)
}

func TestAchievementRepoInsertOrder(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := NewAchievementRepo(db)

	at := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, &AchievementRecord{ID: "first-task", Title: "Getting Started", Points: 10, Rarity: "common", UnlockedAt: at}))
	require.NoError(t, repo.Insert(ctx, &AchievementRecord{ID: "first-day", Title: "Day One", Points: 15, Rarity: "common", UnlockedAt: at}))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first-task", records[0].ID)
	assert.Equal(t, "first-day", records[1].ID)
	assert.True(t, records[0].UnlockedAt.Equal(at))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx, db := openTestDB(t)

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		require.NoError(t, NewTaskRepo(tx).Insert(ctx, &Task{ID: "t1", Title: "doomed", Priority: "low", CreatedAt: time.Now()}))
		return assert.AnError
	})
	require.Error(t, err)

	got, err := NewTaskRepo(db).Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got, "insert must not survive a rolled-back transaction")
}

func TestResolveDBPathEnvOverride(t *testing.T) {
	t.Setenv("GAMEDO_DB", "/tmp/elsewhere.db")
	path, err := ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.db", path)
}
