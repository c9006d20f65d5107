package dao

import (
	"context"
	"errors"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/model"
	"github.com/haierkeys/daily-note-link-service/pkg/convert"
	"github.com/haierkeys/daily-note-link-service/pkg/timex"

	"gorm.io/gorm"
)

// settingRepository 实现 domain.SettingRepository 接口
type settingRepository struct {
	dao *Dao
}

// NewSettingRepository 创建 SettingRepository 实例
func NewSettingRepository(dao *Dao) domain.SettingRepository {
	return &settingRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *settingRepository) toDomain(m *model.Setting) *domain.Setting {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Setting{}).(*domain.Setting)
}

// Get 获取当前设置
// 尚未保存过任何设置时返回空目录设置（解析端回退到默认目录名）
func (r *settingRepository) Get(ctx context.Context) (*domain.Setting, error) {
	var m model.Setting
	err := r.dao.DB().WithContext(ctx).Order("id").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.Setting{}, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Save 整体覆盖保存设置
func (r *settingRepository) Save(ctx context.Context, setting *domain.Setting) (*domain.Setting, error) {
	db := r.dao.DB().WithContext(ctx)

	var m model.Setting
	err := db.Order("id").First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.Setting{
			DailyNoteFolder: setting.DailyNoteFolder,
			CreatedAt:       timex.Now(),
			UpdatedAt:       timex.Now(),
		}
		if err := db.Create(&m).Error; err != nil {
			return nil, err
		}
	} else {
		m.DailyNoteFolder = setting.DailyNoteFolder
		m.UpdatedAt = timex.Now()
		if err := db.Save(&m).Error; err != nil {
			return nil, err
		}
	}

	return r.toDomain(&m), nil
}
