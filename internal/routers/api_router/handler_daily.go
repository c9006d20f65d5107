package api_router

import (
	"github.com/haierkeys/daily-note-link-service/internal/app"
	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/dto"
	pkgapp "github.com/haierkeys/daily-note-link-service/pkg/app"
	"github.com/haierkeys/daily-note-link-service/pkg/code"
	apperrors "github.com/haierkeys/daily-note-link-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DailyHandler 日记链接 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type DailyHandler struct {
	*Handler
}

// NewDailyHandler 创建 DailyHandler 实例
func NewDailyHandler(a *app.App) *DailyHandler {
	return &DailyHandler{Handler: NewHandler(a)}
}

// Tracked 获取当前待写入集合
// @Summary 获取待写入集合
// @Description 获取自上次写入以来被修改、等待写入今日日记的笔记列表
// @Tags 日记
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.TrackedDTO} "成功"
// @Router /api/tracked [get]
func (h *DailyHandler) Tracked(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	tracked := h.App.DailyNoteService.Tracked(c.Request.Context())
	response.ToResponse(code.Success.WithData(tracked))
}

// Flush 写入今日日记
// @Summary 写入今日日记
// @Description 把待写入集合作为链接块写入今日日记并清空集合
// @Tags 日记
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.FlushResultDTO} "成功"
// @Router /api/daily/flush [post]
func (h *DailyHandler) Flush(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	result, err := h.App.DailyNoteService.Flush(ctx, domain.LinkRunTriggerFlush)
	if err != nil {
		h.logError(ctx, "DailyHandler.Flush", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	metricFlushTotal.Inc()
	metricLinksWritten.Add(float64(result.FilesLinked))

	response.ToResponse(code.Success.WithData(result))
}

// Retro 回溯补写全部日记
// @Summary 回溯补写
// @Description 按修改时间把仓库内全部笔记分配到对应日期的日记
// @Tags 日记
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.RetroResultDTO} "成功"
// @Router /api/daily/retro [post]
func (h *DailyHandler) Retro(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	result, err := h.App.DailyNoteService.Retroactive(ctx)
	if err != nil {
		h.logError(ctx, "DailyHandler.Retro", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	metricRetroTotal.Inc()
	metricLinksWritten.Add(float64(result.FilesLinked))

	response.ToResponse(code.Success.WithData(result))
}

// Runs 获取写入历史
// @Summary 获取写入历史
// @Description 分页获取链接写入运行记录，按时间倒序
// @Tags 日记
// @Produce json
// @Param params query dto.LinkRunListRequest true "分页参数"
// @Success 200 {object} pkgapp.ListRes{list=[]dto.LinkRunDTO} "成功"
// @Router /api/daily/runs [get]
func (h *DailyHandler) Runs(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LinkRunListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("DailyHandler.Runs.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	pageSize := pkgapp.GetPageSizeWithConfig(c, pkgapp.PaginationConfig{
		DefaultPageSize: h.App.Config().App.DefaultPageSize,
		MaxPageSize:     h.App.Config().App.MaxPageSize,
	})

	list, count, err := h.App.DailyNoteService.Runs(ctx, params, pageSize)
	if err != nil {
		h.logError(ctx, "DailyHandler.Runs", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, list, int(count))
}
