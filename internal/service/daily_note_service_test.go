package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/dto"
	"github.com/haierkeys/daily-note-link-service/internal/tracker"
	"github.com/haierkeys/daily-note-link-service/pkg/storage/local_fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingRepo struct {
	setting domain.Setting
}

func (f *fakeSettingRepo) Get(ctx context.Context) (*domain.Setting, error) {
	s := f.setting
	return &s, nil
}

func (f *fakeSettingRepo) Save(ctx context.Context, setting *domain.Setting) (*domain.Setting, error) {
	setting.UpdatedAt = time.Now()
	f.setting = *setting
	return setting, nil
}

type fakeRunRepo struct {
	runs []*domain.LinkRun
}

func (f *fakeRunRepo) Create(ctx context.Context, run *domain.LinkRun) (*domain.LinkRun, error) {
	run.ID = int64(len(f.runs) + 1)
	run.CreatedAt = time.Now()
	f.runs = append(f.runs, run)
	return run, nil
}

func (f *fakeRunRepo) List(ctx context.Context, page, pageSize int) ([]*domain.LinkRun, error) {
	out := make([]*domain.LinkRun, len(f.runs))
	for i := range f.runs {
		out[i] = f.runs[len(f.runs)-1-i]
	}
	return out, nil
}

func (f *fakeRunRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.runs)), nil
}

func (f *fakeRunRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	kept := f.runs[:0]
	var deleted int64
	for _, run := range f.runs {
		if run.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, run)
	}
	f.runs = kept
	return deleted, nil
}

type testEnv struct {
	dir     string
	vault   *local_fs.LocalFS
	tracker *tracker.Tracker
	runRepo *fakeRunRepo
	svc     *dailyNoteService
}

func newTestEnv(t *testing.T, folder string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	vault, err := local_fs.NewClient(&local_fs.Config{Path: dir, NoteExt: ".md"})
	require.NoError(t, err)

	tr := tracker.New(".md")
	settingRepo := &fakeSettingRepo{setting: domain.Setting{DailyNoteFolder: folder}}
	runRepo := &fakeRunRepo{}
	config := &ServiceConfig{}

	svc := NewDailyNoteService(vault, tr, NewSettingService(settingRepo, config), runRepo, config)

	return &testEnv{
		dir:     dir,
		vault:   vault,
		tracker: tr,
		runRepo: runRepo,
		svc:     svc.(*dailyNoteService),
	}
}

func (e *testEnv) writeNote(t *testing.T, rel string, content string, mtime time.Time) {
	t.Helper()
	abs := filepath.Join(e.dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	if !mtime.IsZero() {
		require.NoError(t, os.Chtimes(abs, mtime, mtime))
	}
}

func (e *testEnv) readNote(t *testing.T, rel string) string {
	t.Helper()
	content, err := e.vault.Read(rel)
	require.NoError(t, err)
	return content
}

func TestFlushCreatesDailyNote(t *testing.T) {
	env := newTestEnv(t, "")
	env.svc.now = func() time.Time {
		return time.Date(2024, 3, 5, 15, 4, 5, 0, time.Local)
	}

	env.writeNote(t, "projects/alpha.md", "alpha body", time.Time{})
	env.tracker.Record("projects/alpha.md")
	env.tracker.Record("beta.md")

	got, err := env.svc.Flush(context.Background(), domain.LinkRunTriggerFlush)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", got.Date)
	assert.Equal(t, "Daily Notes/2024-03-05.md", got.DailyNote)
	assert.Equal(t, 2, got.FilesLinked)
	assert.Equal(t, []string{"beta", "alpha"}, got.Links)

	content := env.readNote(t, "Daily Notes/2024-03-05.md")
	assert.True(t, strings.HasPrefix(content, "# 2024-03-05\n\n"))
	assert.Contains(t, content, DefaultMarker+"\n- [[beta]]\n- [[alpha]]")

	// 集合被清空
	assert.Equal(t, 0, env.tracker.Len())

	// 写入历史落库
	require.Len(t, env.runRepo.runs, 1)
	assert.Equal(t, domain.LinkRunTriggerFlush, env.runRepo.runs[0].Trigger)
	assert.Equal(t, 2, env.runRepo.runs[0].FilesLinked)
}

func TestFlushReplacesPreviousBlock(t *testing.T) {
	env := newTestEnv(t, "journal")
	env.svc.now = func() time.Time {
		return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	}

	env.tracker.Record("one.md")
	_, err := env.svc.Flush(context.Background(), domain.LinkRunTriggerFlush)
	require.NoError(t, err)

	env.tracker.Record("two.md")
	_, err = env.svc.Flush(context.Background(), domain.LinkRunTriggerFlush)
	require.NoError(t, err)

	content := env.readNote(t, "journal/2024-03-05.md")
	assert.Equal(t, 1, strings.Count(content, DefaultMarker))
	assert.Contains(t, content, "- [[two]]")
	// 同日第二次写入整体替换前一次的块
	assert.NotContains(t, content, "- [[one]]")
}

func TestFlushEmptyTrackerWritesBareMarker(t *testing.T) {
	env := newTestEnv(t, "")
	env.svc.now = func() time.Time {
		return time.Date(2024, 3, 6, 9, 0, 0, 0, time.Local)
	}

	got, err := env.svc.Flush(context.Background(), domain.LinkRunTriggerCron)
	require.NoError(t, err)
	assert.Equal(t, 0, got.FilesLinked)

	content := env.readNote(t, "Daily Notes/2024-03-06.md")
	assert.Equal(t, 1, strings.Count(content, DefaultMarker))
	assert.NotContains(t, content, "- [[")
}

func TestResolveReusesExistingNote(t *testing.T) {
	env := newTestEnv(t, "")

	env.writeNote(t, "Daily Notes/2024-03-05.md", "# 2024-03-05\n\nhand written\n", time.Time{})

	notePath, err := env.svc.resolve("Daily Notes", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "Daily Notes/2024-03-05.md", notePath)

	notePath, err = env.svc.resolve("Daily Notes", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "Daily Notes/2024-03-05.md", notePath)

	// 手写内容不被创建流程覆盖
	assert.Contains(t, env.readNote(t, "Daily Notes/2024-03-05.md"), "hand written")
}

func TestFlushAppendsWithoutRewritingBody(t *testing.T) {
	env := newTestEnv(t, "")
	env.svc.now = func() time.Time {
		return time.Date(2024, 3, 5, 15, 0, 0, 0, time.Local)
	}

	// 没有标记的已有日记，写入走追加而不是整体重写
	existing := "# my heading\n\nhand written journal\n"
	env.writeNote(t, "Daily Notes/2024-03-05.md", existing, time.Time{})
	env.tracker.Record("projects/alpha.md")

	_, err := env.svc.Flush(context.Background(), domain.LinkRunTriggerFlush)
	require.NoError(t, err)

	content := env.readNote(t, "Daily Notes/2024-03-05.md")
	assert.Equal(t, existing+"\n\n"+DefaultMarker+"\n- [[alpha]]", content)
}

func TestRetroactiveBucketsByMtime(t *testing.T) {
	env := newTestEnv(t, "")

	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local)

	env.writeNote(t, "a.md", "a", day1)
	env.writeNote(t, "sub/b.md", "b", day1)
	env.writeNote(t, "c.md", "c", day2)

	got, err := env.svc.Retroactive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, got.DatesProcessed)
	assert.Equal(t, 0, got.DatesFailed)
	assert.Equal(t, 3, got.FilesLinked)
	assert.Empty(t, got.FailedDates)

	first := env.readNote(t, "Daily Notes/2024-01-01.md")
	assert.Contains(t, first, "- [[a]]")
	assert.Contains(t, first, "- [[b]]")

	second := env.readNote(t, "Daily Notes/2024-01-02.md")
	assert.Contains(t, second, "- [[c]]")
	assert.NotContains(t, second, "- [[a]]")

	require.Len(t, env.runRepo.runs, 1)
	assert.Equal(t, domain.LinkRunTriggerRetro, env.runRepo.runs[0].Trigger)
	assert.True(t, env.runRepo.runs[0].IsClean())
}

func TestRetroactiveSkipsDailyNotes(t *testing.T) {
	env := newTestEnv(t, "")

	day := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	env.writeNote(t, "a.md", "a", day)
	env.writeNote(t, "Daily Notes/2023-12-31.md", "# 2023-12-31\n\n", day)

	got, err := env.svc.Retroactive(context.Background())
	require.NoError(t, err)

	// 日记本身不参与分桶，只有 a.md 一个日期
	assert.Equal(t, 1, got.DatesProcessed)
	content := env.readNote(t, "Daily Notes/2024-01-01.md")
	assert.NotContains(t, content, "2023-12-31")
}

func TestRetroactiveIgnoresTracker(t *testing.T) {
	env := newTestEnv(t, "")

	env.writeNote(t, "a.md", "a", time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local))
	env.tracker.Record("a.md")

	_, err := env.svc.Retroactive(context.Background())
	require.NoError(t, err)

	// 回溯不消费待写入集合
	assert.Equal(t, 1, env.tracker.Len())
}

func TestRunsPagination(t *testing.T) {
	env := newTestEnv(t, "")
	env.svc.now = func() time.Time {
		return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	}

	_, err := env.svc.Flush(context.Background(), domain.LinkRunTriggerFlush)
	require.NoError(t, err)
	_, err = env.svc.Retroactive(context.Background())
	require.NoError(t, err)

	list, count, err := env.svc.Runs(context.Background(), &dto.LinkRunListRequest{Page: 1}, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, list, 2)
	// 最近一次运行排在最前
	assert.Equal(t, string(domain.LinkRunTriggerRetro), list[0].Trigger)
}

func TestTrackedSnapshot(t *testing.T) {
	env := newTestEnv(t, "")

	env.tracker.Record("b.md")
	env.tracker.Record("a.md")

	got := env.svc.Tracked(context.Background())
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []string{"a.md", "b.md"}, got.Paths)
	assert.Equal(t, 2, env.tracker.Len())
}
