package service

import (
	"context"
	"testing"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingUpdateTrimsFolder(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingService(repo, &ServiceConfig{})

	got, err := svc.Update(context.Background(), &dto.SettingUpdateRequest{
		DailyNoteFolder: "  journal/daily  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "journal/daily", got.DailyNoteFolder)
	assert.Equal(t, "journal/daily", repo.setting.DailyNoteFolder)
}

func TestSettingResolveFolderFallback(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingService(repo, &ServiceConfig{})

	folder, err := svc.ResolveFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDailyNoteFolder, folder)
}

func TestSettingResolveFolderConfigOverride(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingService(repo, &ServiceConfig{
		Vault: VaultServiceConfig{DailyNoteFolder: "from-config"},
	})

	folder, err := svc.ResolveFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-config", folder)

	// 数据库设置优先于配置文件
	_, err = svc.Update(context.Background(), &dto.SettingUpdateRequest{DailyNoteFolder: "from-db"})
	require.NoError(t, err)

	folder, err = svc.ResolveFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-db", folder)
}

func TestSettingUpdateEmptyFolderAllowed(t *testing.T) {
	repo := &fakeSettingRepo{setting: domain.Setting{DailyNoteFolder: "old"}}
	svc := NewSettingService(repo, &ServiceConfig{})

	got, err := svc.Update(context.Background(), &dto.SettingUpdateRequest{DailyNoteFolder: "   "})
	require.NoError(t, err)
	assert.Equal(t, "", got.DailyNoteFolder)

	folder, err := svc.ResolveFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDailyNoteFolder, folder)
}
