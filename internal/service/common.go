package service

import (
	"SocialBoard/internal/pkg/kafka"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// publishChange 事务提交后投递变更事件，失败只记录日志
func publishChange(ctx context.Context, publisher kafka.Publisher, event *kafka.ChangeEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.WarnContext(ctx, "publish change event failed",
			"table", event.Table, "type", event.Type, "key", event.Key(), "err", err)
	}
}

// isForeignKeyError 仅在开启 enforce_foreign_keys 时才会出现
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1452 {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
