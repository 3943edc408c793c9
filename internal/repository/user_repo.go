package repository

import (
	"SocialBoard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	ListUsers(ctx context.Context, name string) ([]*model.User, error)
	UpdateUser(ctx context.Context, id uint64, user *model.User) (old *model.User, updated *model.User, err error)
	UpdateUsername(ctx context.Context, id uint64, name string) (old *model.User, updated *model.User, err error)
}

type UserRepoImpl struct {
	db   *gorm.DB
	opts SearchOptions
}

func NewUserRepo(db *gorm.DB, opts SearchOptions) UserRepo {
	return &UserRepoImpl{db: db, opts: opts}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) ListUsers(ctx context.Context, name string) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Scopes(containsScope("username", name, s.opts)).
		Order("id").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// UpdateUser 全量替换 username / is_admin / image_url
func (s *UserRepoImpl) UpdateUser(ctx context.Context, id uint64, user *model.User) (*model.User, *model.User, error) {
	return mutateByID(s.db.WithContext(ctx), id, func(tx *gorm.DB, row *model.User) error {
		return tx.Model(row).Updates(map[string]interface{}{
			"username":  user.Name,
			"is_admin":  user.IsAdmin,
			"image_url": user.ImageURL,
		}).Error
	})
}

func (s *UserRepoImpl) UpdateUsername(ctx context.Context, id uint64, name string) (*model.User, *model.User, error) {
	return mutateByID(s.db.WithContext(ctx), id, func(tx *gorm.DB, row *model.User) error {
		return tx.Model(row).Update("username", name).Error
	})
}
