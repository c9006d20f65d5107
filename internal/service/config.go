// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	Vault VaultServiceConfig // Vault related config // 仓库相关配置
	App   AppServiceConfig   // App related config // 应用相关配置
}

// VaultServiceConfig vault service configuration
// VaultServiceConfig 仓库服务配置
type VaultServiceConfig struct {
	Marker          string // Marker line owned by the link writer // 链接块标记行
	DailyNoteFolder string // Daily note folder override from config file // 配置文件指定的日记目录（优先于数据库设置）
}

// AppServiceConfig app service configuration
// AppServiceConfig 应用服务配置
type AppServiceConfig struct {
	RunLogRetentionTime string // Run log retention time (e.g., 30d, 24h, 0/empty for no cleanup) // 运行记录保留时间（支持 30d、24h，0 或空表示不清理）
}
