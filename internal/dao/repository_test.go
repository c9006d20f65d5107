package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngine(&DatabaseConfig{
		Type:        "sqlite",
		Path:        filepath.Join(t.TempDir(), "db.sqlite3"),
		AutoMigrate: true,
	})
	require.NoError(t, err)

	return New(db, zap.NewNop())
}

func TestSettingRepositoryRoundTrip(t *testing.T) {
	repo := NewSettingRepository(newTestDao(t))
	ctx := context.Background()

	// 尚未保存过任何设置时返回空目录设置
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got.DailyNoteFolder)

	saved, err := repo.Save(ctx, &domain.Setting{DailyNoteFolder: "journal"})
	require.NoError(t, err)
	assert.Equal(t, "journal", saved.DailyNoteFolder)
	assert.False(t, saved.UpdatedAt.IsZero())

	// 再次保存覆盖同一行
	saved, err = repo.Save(ctx, &domain.Setting{DailyNoteFolder: "daily"})
	require.NoError(t, err)

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "daily", got.DailyNoteFolder)
}

func TestLinkRunRepositoryRoundTrip(t *testing.T) {
	repo := NewLinkRunRepository(newTestDao(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.LinkRun{
		Trigger:        domain.LinkRunTriggerRetro,
		DatesProcessed: 3,
		DatesFailed:    1,
		FilesLinked:    7,
		FailedDates:    "2024-01-02",
		DurationMs:     42,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, domain.LinkRunTriggerRetro, first.Trigger)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &domain.LinkRun{Trigger: domain.LinkRunTriggerFlush, FilesLinked: 2})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// 按创建时间倒序，最新的运行排在前面
	runs, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, domain.LinkRunTriggerFlush, runs[0].Trigger)
	assert.Equal(t, domain.LinkRunTriggerRetro, runs[1].Trigger)
	assert.Equal(t, 3, runs[1].DatesProcessed)
	assert.Equal(t, "2024-01-02", runs[1].FailedDates)
	assert.Equal(t, int64(42), runs[1].DurationMs)

	deleted, err := repo.DeleteBefore(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
