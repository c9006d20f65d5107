// Package model 定义数据模型
package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Setting":
		return db.AutoMigrate(Setting{})

	case "LinkRun":
		return db.AutoMigrate(LinkRun{})

	case "":
		return db.AutoMigrate(Setting{}, LinkRun{})
	}
	return nil
}
