package repository

import (
	"SocialBoard/internal/pkg/util"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SearchOptions 子串过滤的行为
type SearchOptions struct {
	CaseSensitive bool
}

// containsScope 按字面量子串过滤 column，needle 为空时不过滤
func containsScope(column, needle string, opts SearchOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if needle == "" {
			return db
		}
		if opts.CaseSensitive {
			if db.Dialector.Name() == "mysql" {
				return db.Where(fmt.Sprintf("INSTR(CAST(%s AS BINARY), CAST(? AS BINARY)) > 0", column), needle)
			}
			return db.Where(fmt.Sprintf("instr(%s, ?) > 0", column), needle)
		}
		return db.Where(fmt.Sprintf("LOWER(%s) LIKE LOWER(?) ESCAPE '!'", column), util.ContainsPattern(needle))
	}
}

// mutateByID 在事务内完成 查询-修改-重新读取，返回修改前后的记录；记录不存在时返回 (nil, nil, nil)
func mutateByID[T any](db *gorm.DB, id uint64, mutate func(tx *gorm.DB, row *T) error) (before *T, after *T, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		row := new(T)
		if err := tx.First(row, id).Error; err != nil {
			return err
		}
		snapshot := *row
		if err := mutate(tx, row); err != nil {
			return err
		}
		reloaded := new(T)
		if err := tx.First(reloaded, id).Error; err != nil {
			return err
		}
		before, after = &snapshot, reloaded
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return before, after, nil
}
