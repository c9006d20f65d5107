package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/dto"
	"github.com/haierkeys/daily-note-link-service/internal/tracker"
	"github.com/haierkeys/daily-note-link-service/pkg/code"
	"github.com/haierkeys/daily-note-link-service/pkg/convert"
	"github.com/haierkeys/daily-note-link-service/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DateLayout 日记文件名使用的日期格式
const DateLayout = "2006-01-02"

// DailyNoteService 定义日记链接业务服务接口
type DailyNoteService interface {
	// Tracked 获取当前待写入的笔记集合（不清空）
	Tracked(ctx context.Context) *dto.TrackedDTO

	// Flush 把待写入集合写入今日日记并清空集合
	Flush(ctx context.Context, trigger domain.LinkRunTrigger) (*dto.FlushResultDTO, error)

	// Retroactive 按修改时间回溯补写全部日记
	Retroactive(ctx context.Context) (*dto.RetroResultDTO, error)

	// Runs 分页获取写入历史
	Runs(ctx context.Context, params *dto.LinkRunListRequest, pageSize int) ([]*dto.LinkRunDTO, int64, error)

	// CleanupRuns 清理给定时间之前的写入历史
	CleanupRuns(ctx context.Context, cutoff time.Time) (int64, error)
}

// dailyNoteService 实现 DailyNoteService 接口
type dailyNoteService struct {
	vault      domain.VaultFS
	tracker    *tracker.Tracker
	writer     *LinkWriter
	settingSvc SettingService
	runRepo    domain.LinkRunRepository
	config     *ServiceConfig
	sf         *singleflight.Group
	retroMu    sync.Mutex
	now        func() time.Time
}

// NewDailyNoteService 创建 DailyNoteService 实例
func NewDailyNoteService(
	vault domain.VaultFS,
	t *tracker.Tracker,
	settingSvc SettingService,
	runRepo domain.LinkRunRepository,
	config *ServiceConfig,
) DailyNoteService {
	marker := ""
	if config != nil {
		marker = config.Vault.Marker
	}
	return &dailyNoteService{
		vault:      vault,
		tracker:    t,
		writer:     NewLinkWriter(marker),
		settingSvc: settingSvc,
		runRepo:    runRepo,
		config:     config,
		sf:         &singleflight.Group{},
		now:        time.Now,
	}
}

// runToDTO 将运行记录领域模型转换为 DTO
func (s *dailyNoteService) runToDTO(run *domain.LinkRun) *dto.LinkRunDTO {
	if run == nil {
		return nil
	}
	return convert.StructAssign(run, &dto.LinkRunDTO{}).(*dto.LinkRunDTO)
}

// Tracked 获取当前待写入的笔记集合
func (s *dailyNoteService) Tracked(ctx context.Context) *dto.TrackedDTO {
	paths := s.tracker.Snapshot()
	return &dto.TrackedDTO{
		Count: len(paths),
		Paths: paths,
	}
}

// dailyNotePath 计算某一天的日记路径
func dailyNotePath(folder string, dateStr string) string {
	return folder + "/" + dateStr + ".md"
}

// resolve 定位某一天的日记，不存在则按模板创建
// 返回日记相对路径
func (s *dailyNoteService) resolve(folder string, dateStr string) (string, error) {
	notePath := dailyNotePath(folder, dateStr)

	f, err := s.vault.Get(notePath)
	if err != nil {
		return "", err
	}
	if f != nil {
		return notePath, nil
	}

	if err := s.vault.Create(notePath, "# "+dateStr+"\n\n"); err != nil {
		return "", err
	}

	f, err = s.vault.Get(notePath)
	if err != nil {
		return "", err
	}
	if f == nil {
		return "", errors.Errorf("daily note %s missing after create", notePath)
	}
	return notePath, nil
}

// mergeIntoNote 把链接列表合入指定日记
// 已有块整体替换重写，没有块时只追加不重写正文
func (s *dailyNoteService) mergeIntoNote(notePath string, links []string) error {
	text, err := s.vault.Read(notePath)
	if err != nil {
		return err
	}
	if !s.writer.HasBlock(text) {
		return s.vault.Append(notePath, "\n\n"+s.writer.Block(links))
	}
	return s.vault.Overwrite(notePath, s.writer.Merge(text, links))
}

// Flush 把待写入集合写入今日日记并清空集合
// 并发调用通过 singleflight 合并为一次执行
func (s *dailyNoteService) Flush(ctx context.Context, trigger domain.LinkRunTrigger) (*dto.FlushResultDTO, error) {
	result, err, _ := s.sf.Do("flush", func() (interface{}, error) {
		return s.flush(ctx, trigger)
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.FlushResultDTO), nil
}

func (s *dailyNoteService) flush(ctx context.Context, trigger domain.LinkRunTrigger) (*dto.FlushResultDTO, error) {
	start := s.now()
	dateStr := start.Format(DateLayout)

	folder, err := s.settingSvc.ResolveFolder(ctx)
	if err != nil {
		return nil, err
	}

	// 先定位日记再取走集合，定位失败时已记录的修改不丢失
	notePath, err := s.resolve(folder, dateStr)
	if err != nil {
		zap.L().Error("daily note resolve failed",
			zap.String(logger.FieldDate, dateStr),
			zap.String(logger.FieldFolder, folder),
			zap.String(logger.FieldMethod, "DailyNoteService.Flush"),
			zap.Error(err),
		)
		return nil, code.ErrorDailyNoteResolve.WithDetails(err.Error())
	}

	paths := s.tracker.Drain()
	links := make([]string, 0, len(paths))
	for _, p := range paths {
		links = append(links, DisplayName(p))
	}

	if err := s.mergeIntoNote(notePath, links); err != nil {
		zap.L().Error("daily note write failed",
			zap.String(logger.FieldNote, notePath),
			zap.String(logger.FieldMethod, "DailyNoteService.Flush"),
			zap.Error(err),
		)
		return nil, code.ErrorDailyNoteWrite.WithDetails(err.Error())
	}

	s.recordRun(ctx, &domain.LinkRun{
		Trigger:        trigger,
		DatesProcessed: 1,
		FilesLinked:    len(links),
		DurationMs:     s.now().Sub(start).Milliseconds(),
	})

	zap.L().Info("daily note links flushed",
		zap.String(logger.FieldDate, dateStr),
		zap.String(logger.FieldNote, notePath),
		zap.String(logger.FieldTrigger, string(trigger)),
		zap.Int(logger.FieldCount, len(links)),
	)

	return &dto.FlushResultDTO{
		Date:        dateStr,
		DailyNote:   notePath,
		FilesLinked: len(links),
		Links:       links,
	}, nil
}

// Retroactive 按修改时间回溯补写全部日记
// 同一时间只允许一次回溯运行，重复触发返回 ErrorRetroRunning
func (s *dailyNoteService) Retroactive(ctx context.Context) (*dto.RetroResultDTO, error) {
	if !s.retroMu.TryLock() {
		return nil, code.ErrorRetroRunning
	}
	defer s.retroMu.Unlock()

	start := s.now()

	folder, err := s.settingSvc.ResolveFolder(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.vault.ListNotes()
	if err != nil {
		return nil, code.ErrorVaultNotFound.WithDetails(err.Error())
	}

	// 按修改日期分桶，日记本身不参与分桶
	buckets := make(map[string][]string)
	dailyPrefix := folder + "/"
	for _, note := range notes {
		if strings.HasPrefix(note.Path, dailyPrefix) {
			continue
		}
		dateStr := note.Mtime.Format(DateLayout)
		buckets[dateStr] = append(buckets[dateStr], note.Path)
	}

	dates := make([]string, 0, len(buckets))
	for dateStr := range buckets {
		dates = append(dates, dateStr)
	}
	sort.Strings(dates)

	result := &dto.RetroResultDTO{FailedDates: []string{}}

	// 单个日期失败不中断后续日期，失败汇总进结果
	for _, dateStr := range dates {
		linked, err := s.retroDate(folder, dateStr, buckets[dateStr])
		if err != nil {
			zap.L().Error("retroactive date failed",
				zap.String(logger.FieldDate, dateStr),
				zap.String(logger.FieldMethod, "DailyNoteService.Retroactive"),
				zap.Error(err),
			)
			result.DatesFailed++
			result.FailedDates = append(result.FailedDates, dateStr)
			continue
		}
		result.DatesProcessed++
		result.FilesLinked += linked
	}

	s.recordRun(ctx, &domain.LinkRun{
		Trigger:        domain.LinkRunTriggerRetro,
		DatesProcessed: result.DatesProcessed,
		DatesFailed:    result.DatesFailed,
		FilesLinked:    result.FilesLinked,
		FailedDates:    strings.Join(result.FailedDates, ","),
		DurationMs:     s.now().Sub(start).Milliseconds(),
	})

	zap.L().Info("retroactive linking completed",
		zap.Int("datesProcessed", result.DatesProcessed),
		zap.Int("datesFailed", result.DatesFailed),
		zap.Int(logger.FieldCount, result.FilesLinked),
		zap.Duration(logger.FieldDuration, s.now().Sub(start)),
	)

	return result, nil
}

// retroDate 补写单个日期的日记，返回写入的链接条数
func (s *dailyNoteService) retroDate(folder string, dateStr string, paths []string) (int, error) {
	notePath, err := s.resolve(folder, dateStr)
	if err != nil {
		return 0, err
	}

	sort.Strings(paths)
	links := make([]string, 0, len(paths))
	for _, p := range paths {
		links = append(links, DisplayName(p))
	}

	if err := s.mergeIntoNote(notePath, links); err != nil {
		return 0, err
	}
	return len(links), nil
}

// recordRun 写入一条运行记录，失败只记日志不阻断主流程
func (s *dailyNoteService) recordRun(ctx context.Context, run *domain.LinkRun) {
	if s.runRepo == nil {
		return
	}
	if _, err := s.runRepo.Create(ctx, run); err != nil {
		zap.L().Warn("link run record failed",
			zap.String(logger.FieldTrigger, string(run.Trigger)),
			zap.Error(err),
		)
	}
}

// Runs 分页获取写入历史
func (s *dailyNoteService) Runs(ctx context.Context, params *dto.LinkRunListRequest, pageSize int) ([]*dto.LinkRunDTO, int64, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	if params.PageSize > 0 {
		pageSize = params.PageSize
	}

	runs, err := s.runRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.runRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	list := make([]*dto.LinkRunDTO, 0, len(runs))
	for _, run := range runs {
		list = append(list, s.runToDTO(run))
	}
	return list, count, nil
}

// CleanupRuns 清理给定时间之前的写入历史
func (s *dailyNoteService) CleanupRuns(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.runRepo.DeleteBefore(ctx, cutoff)
}
