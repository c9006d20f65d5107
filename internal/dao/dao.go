// Package dao 实现数据访问层
package dao

import (
	"fmt"
	"os"
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/model"
	"github.com/haierkeys/daily-note-link-service/pkg/fileurl"
	"github.com/haierkeys/daily-note-link-service/pkg/util"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置（由 AppConfig 注入）
type DatabaseConfig struct {
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao 数据访问对象
type Dao struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New 创建 Dao 实例
func New(db *gorm.DB, lg *zap.Logger) *Dao {
	return &Dao{db: db, logger: lg}
}

// DB 获取底层 gorm.DB
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// Logger 获取日志器
func (d *Dao) Logger() *zap.Logger {
	return d.logger
}

// NewDBEngine 创建数据库连接
func NewDBEngine(c *DatabaseConfig) (*gorm.DB, error) {

	dialector := userDialector(c)
	if dialector == nil {
		return nil, fmt.Errorf("unsupported database type: %s", c.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true, // 使用单数表名
		},
	})
	if err != nil {
		return nil, err
	}

	if c.RunMode == "debug" {
		db.Config.Logger = logger.Default.LogMode(logger.Info)
	}

	// 获取通用数据库对象 sql.DB，配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	if lifetime, err := util.ParseDuration(c.ConnMaxLifetime); err == nil && lifetime > 0 {
		sqlDB.SetConnMaxLifetime(lifetime)
	} else {
		sqlDB.SetConnMaxLifetime(time.Minute * 30)
	}
	if idleTime, err := util.ParseDuration(c.ConnMaxIdleTime); err == nil && idleTime > 0 {
		sqlDB.SetConnMaxIdleTime(idleTime)
	}

	if c.AutoMigrate {
		if err := model.AutoMigrate(db, ""); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func userDialector(c *DatabaseConfig) gorm.Dialector {
	if c.Type == "mysql" {
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		))
	} else if c.Type == "sqlite" {
		if !fileurl.IsExist(c.Path) {
			fileurl.CreatePath(c.Path, os.ModePerm)
		}
		return sqlite.Open(c.Path)
	}
	return nil
}
