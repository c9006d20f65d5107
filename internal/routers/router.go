// Package routers 组装 HTTP 路由和中间件链
package routers

import (
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/app"
	"github.com/haierkeys/daily-note-link-service/internal/middleware"
	"github.com/haierkeys/daily-note-link-service/internal/routers/api_router"
	"github.com/haierkeys/daily-note-link-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/daily/retro",
		FillInterval: time.Second,
		Capacity:     2,
		Quantum:      2,
	},
)

// NewRouter 创建 API 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		settingHandler := api_router.NewSettingHandler(appContainer)
		dailyHandler := api_router.NewDailyHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/healthz", healthHandler.Check)

		api.GET("/setting", settingHandler.Get)
		api.POST("/setting", settingHandler.Update)

		api.GET("/tracked", dailyHandler.Tracked)
		api.POST("/daily/flush", dailyHandler.Flush)
		api.POST("/daily/retro", dailyHandler.Retro)
		api.GET("/daily/runs", dailyHandler.Runs)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
