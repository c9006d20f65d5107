package dao

import (
	"context"
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/model"
	"github.com/haierkeys/daily-note-link-service/pkg/convert"
	"github.com/haierkeys/daily-note-link-service/pkg/timex"
)

// linkRunRepository 实现 domain.LinkRunRepository 接口
type linkRunRepository struct {
	dao *Dao
}

// NewLinkRunRepository 创建 LinkRunRepository 实例
func NewLinkRunRepository(dao *Dao) domain.LinkRunRepository {
	return &linkRunRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *linkRunRepository) toDomain(m *model.LinkRun) *domain.LinkRun {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.LinkRun{}).(*domain.LinkRun)
}

// Create 写入一条运行记录
func (r *linkRunRepository) Create(ctx context.Context, run *domain.LinkRun) (*domain.LinkRun, error) {
	m := convert.StructAssign(run, &model.LinkRun{}).(*model.LinkRun)
	m.ID = 0
	m.CreatedAt = timex.Now()
	if err := r.dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// List 分页获取运行记录，按创建时间倒序
func (r *linkRunRepository) List(ctx context.Context, page, pageSize int) ([]*domain.LinkRun, error) {
	var ms []*model.LinkRun
	offset := 0
	if page > 0 {
		offset = (page - 1) * pageSize
	}
	err := r.dao.DB().WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	runs := make([]*domain.LinkRun, 0, len(ms))
	for _, m := range ms {
		runs = append(runs, r.toDomain(m))
	}
	return runs, nil
}

// Count 获取运行记录总数
func (r *linkRunRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.dao.DB().WithContext(ctx).Model(&model.LinkRun{}).Count(&count).Error
	return count, err
}

// DeleteBefore 删除给定时间之前的运行记录
func (r *linkRunRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.dao.DB().WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.LinkRun{})
	return result.RowsAffected, result.Error
}
