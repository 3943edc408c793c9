package database

import (
	"SocialBoard/internal/api/config"
	"SocialBoard/internal/model"
	"SocialBoard/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case DriverMySQL:
		dialector = mysql.Open(cfg.DSN)
	case DriverSQLite, "":
		dialector = sqlite.Open(buildSQLiteDSN(cfg.Path, cfg.EnforceForeignKeys))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(time.Duration(cfg.SlowThreshold) * time.Millisecond),
		PrepareStmt:    true,
		TranslateError: true,
		// 不强制 posts.user_id 的外键约束，允许孤立帖子
		DisableForeignKeyConstraintWhenMigrating: !cfg.EnforceForeignKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)
	if cfg.Driver != DriverMySQL && isMemoryPath(cfg.Path) {
		// 内存库只能存在于单个连接上，连接关闭即丢失数据
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.", "driver", db.Dialector.Name())
	return db, nil
}

// AutoMigrate 在表不存在时创建 users 与 posts
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close 释放底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// buildSQLiteDSN 写事务以 BEGIN IMMEDIATE 开启，先读后写时不会因锁升级失败而直接返回 SQLITE_BUSY
func buildSQLiteDSN(path string, foreignKeys bool) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	var b strings.Builder
	if path == ":memory:" {
		// 每个句柄使用独立命名的内存库
		b.WriteString("file:")
		b.WriteString(uuid.NewString())
		b.WriteString("?mode=memory&cache=shared")
	} else {
		b.WriteString("file:")
		b.WriteString(path)
		b.WriteString("?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	}
	b.WriteString("&_txlock=immediate")
	if foreignKeys {
		b.WriteString("&_pragma=foreign_keys(1)")
	}
	return b.String()
}
