package service

import (
	"context"
	"strings"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/dto"
	"github.com/haierkeys/daily-note-link-service/pkg/code"
	"github.com/haierkeys/daily-note-link-service/pkg/convert"
	"github.com/haierkeys/daily-note-link-service/pkg/logger"

	"go.uber.org/zap"
)

// SettingService 定义设置业务服务接口
type SettingService interface {
	// Get 获取当前设置
	Get(ctx context.Context) (*dto.SettingDTO, error)

	// Update 整体覆盖保存设置
	Update(ctx context.Context, params *dto.SettingUpdateRequest) (*dto.SettingDTO, error)

	// ResolveFolder 返回当前生效的日记目录
	ResolveFolder(ctx context.Context) (string, error)
}

// settingService 实现 SettingService 接口
type settingService struct {
	settingRepo domain.SettingRepository
	config      *ServiceConfig
}

// NewSettingService 创建 SettingService 实例
func NewSettingService(settingRepo domain.SettingRepository, config *ServiceConfig) SettingService {
	return &settingService{
		settingRepo: settingRepo,
		config:      config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *settingService) domainToDTO(setting *domain.Setting) *dto.SettingDTO {
	if setting == nil {
		return nil
	}
	return convert.StructAssign(setting, &dto.SettingDTO{}).(*dto.SettingDTO)
}

// Get 获取当前设置
func (s *settingService) Get(ctx context.Context) (*dto.SettingDTO, error) {
	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(setting), nil
}

// Update 整体覆盖保存设置
// 目录值去除首尾空白后保存，允许保存为空串（运行时回退默认目录）
func (s *settingService) Update(ctx context.Context, params *dto.SettingUpdateRequest) (*dto.SettingDTO, error) {
	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	setting.DailyNoteFolder = strings.TrimSpace(params.DailyNoteFolder)

	saved, err := s.settingRepo.Save(ctx, setting)
	if err != nil {
		zap.L().Error("setting save failed",
			zap.String(logger.FieldFolder, setting.DailyNoteFolder),
			zap.String(logger.FieldMethod, "SettingService.Update"),
			zap.Error(err),
		)
		return nil, code.ErrorSettingSave.WithDetails(err.Error())
	}
	return s.domainToDTO(saved), nil
}

// ResolveFolder 返回当前生效的日记目录
// 优先级：数据库设置 > 配置文件 > 默认目录名
func (s *settingService) ResolveFolder(ctx context.Context) (string, error) {
	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	if setting != nil && setting.DailyNoteFolder != "" {
		return setting.DailyNoteFolder, nil
	}
	if s.config != nil && s.config.Vault.DailyNoteFolder != "" {
		return s.config.Vault.DailyNoteFolder, nil
	}
	return setting.ResolvedDailyNoteFolder(), nil
}
