package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/pkg/log"
)

// Connect 打开 SQLite 单文件数据库并返回 GORM 句柄。
// path 为 ":memory:" 时使用内存数据库（测试用）。
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite 对并发写入敏感，限制连接池为单连接，保证多请求下的安全访问
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate 在启动时自动建表（若不存在）。没有迁移工具，表结构以模型定义为准。
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Character{},
		&model.ChatRoom{},
		&model.Message{},
	)
	if err != nil {
		return err
	}
	log.Info("SQLite database migrated successfully")
	return nil
}
