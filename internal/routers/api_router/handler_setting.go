package api_router

import (
	"github.com/haierkeys/daily-note-link-service/internal/app"
	"github.com/haierkeys/daily-note-link-service/internal/dto"
	pkgapp "github.com/haierkeys/daily-note-link-service/pkg/app"
	"github.com/haierkeys/daily-note-link-service/pkg/code"
	apperrors "github.com/haierkeys/daily-note-link-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingHandler 设置 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type SettingHandler struct {
	*Handler
}

// NewSettingHandler 创建 SettingHandler 实例
func NewSettingHandler(a *app.App) *SettingHandler {
	return &SettingHandler{Handler: NewHandler(a)}
}

// Get 获取当前设置
// @Summary 获取设置
// @Description 获取当前保存的日记目录设置
// @Tags 设置
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SettingDTO} "成功"
// @Router /api/setting [get]
func (h *SettingHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	setting, err := h.App.SettingService.Get(ctx)
	if err != nil {
		h.logError(ctx, "SettingHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(setting))
}

// Update 保存设置
// @Summary 保存设置
// @Description 整体覆盖保存日记目录设置，目录值会去除首尾空白
// @Tags 设置
// @Accept json
// @Produce json
// @Param params body dto.SettingUpdateRequest true "设置参数"
// @Success 200 {object} pkgapp.Res{data=dto.SettingDTO} "成功"
// @Router /api/setting [post]
func (h *SettingHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SettingUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("SettingHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	setting, err := h.App.SettingService.Update(ctx, params)
	if err != nil {
		h.logError(ctx, "SettingHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessUpdate.WithData(setting))
}
