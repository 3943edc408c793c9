package repository

import (
	"SocialBoard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PostRepo 修改类方法同时返回修改前与修改后的记录，记录不存在时均为 nil
type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, title string) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, post *model.Post) (old *model.Post, updated *model.Post, err error)
	UpdatePostText(ctx context.Context, id uint64, text string) (old *model.Post, updated *model.Post, err error)
	IncrLikes(ctx context.Context, id uint64) (old *model.Post, updated *model.Post, err error)
	DecrLikes(ctx context.Context, id uint64) (old *model.Post, updated *model.Post, err error)
	DeletePost(ctx context.Context, id uint64) (*model.Post, error)
}

type PostRepoImpl struct {
	db   *gorm.DB
	opts SearchOptions
}

func NewPostRepository(db *gorm.DB, opts SearchOptions) PostRepo {
	return &PostRepoImpl{
		db:   db,
		opts: opts,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	post.Likes = 0
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, title string) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Scopes(containsScope("title", title, s.opts)).
		Order("id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost 全量替换 title / post_text / user_id，likes 不变
func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, post *model.Post) (*model.Post, *model.Post, error) {
	return mutateByID(s.db.WithContext(ctx), id, func(tx *gorm.DB, row *model.Post) error {
		return tx.Model(row).Updates(map[string]interface{}{
			"title":     post.Title,
			"post_text": post.PostText,
			"user_id":   post.UserID,
		}).Error
	})
}

func (s *PostRepoImpl) UpdatePostText(ctx context.Context, id uint64, text string) (*model.Post, *model.Post, error) {
	return mutateByID(s.db.WithContext(ctx), id, func(tx *gorm.DB, row *model.Post) error {
		return tx.Model(row).Update("post_text", text).Error
	})
}

func (s *PostRepoImpl) IncrLikes(ctx context.Context, id uint64) (*model.Post, *model.Post, error) {
	return mutateByID(s.db.WithContext(ctx), id, func(tx *gorm.DB, row *model.Post) error {
		return tx.Model(row).Update("likes", gorm.Expr("likes + 1")).Error
	})
}

// DecrLikes likes 减一，最小为 0
func (s *PostRepoImpl) DecrLikes(ctx context.Context, id uint64) (*model.Post, *model.Post, error) {
	return mutateByID(s.db.WithContext(ctx), id, func(tx *gorm.DB, row *model.Post) error {
		return tx.Model(row).Update("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error
	})
}

// DeletePost 删除并返回删除前的记录
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) (*model.Post, error) {
	var deleted *model.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := &model.Post{}
		if err := tx.First(post, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Post{}, id).Error; err != nil {
			return err
		}
		deleted = post
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return deleted, nil
}
