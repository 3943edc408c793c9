package service

import (
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/model"
	"SocialBoard/internal/pkg/kafka"
	"SocialBoard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

const postsTable = "posts"

type PostService interface {
	CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, title string) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	PatchPostText(ctx context.Context, id uint64, text string) (*dto.PostDTO, error)
	IncrementLikes(ctx context.Context, id uint64) (*dto.PostDTO, error)
	DecrementLikes(ctx context.Context, id uint64) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id uint64) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	publisher kafka.Publisher
}

func NewPostService(postRepo repository.PostRepo, publisher kafka.Publisher) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		publisher: publisher,
	}
}

// CreatePost 创建帖子，不预先校验 user_id，只在数据库开启外键约束时由约束拒绝
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	post := newPostModel(req)
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	out := toPostDTO(post)
	publishChange(ctx, s.publisher, kafka.NewChangeEvent(postsTable, kafka.EventInsert, out.ID, out, nil))
	return out, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context, title string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx, title)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostDTO(p))
	}
	return out, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	out, err := s.mutate(ctx, func() (*model.Post, *model.Post, error) {
		return s.postRepo.UpdatePost(ctx, id, newPostModel(req))
	})
	if err != nil && isForeignKeyError(err) {
		return nil, ErrUserNotFound
	}
	return out, err
}

func (s *postServiceImpl) PatchPostText(ctx context.Context, id uint64, text string) (*dto.PostDTO, error) {
	return s.mutate(ctx, func() (*model.Post, *model.Post, error) {
		return s.postRepo.UpdatePostText(ctx, id, text)
	})
}

func (s *postServiceImpl) IncrementLikes(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	return s.mutate(ctx, func() (*model.Post, *model.Post, error) {
		return s.postRepo.IncrLikes(ctx, id)
	})
}

// DecrementLikes likes 不会小于 0
func (s *postServiceImpl) DecrementLikes(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	return s.mutate(ctx, func() (*model.Post, *model.Post, error) {
		return s.postRepo.DecrLikes(ctx, id)
	})
}

// DeletePost 返回删除前的帖子
func (s *postServiceImpl) DeletePost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	out := toPostDTO(post)
	publishChange(ctx, s.publisher, kafka.NewChangeEvent(postsTable, kafka.EventDelete, out.ID, out, nil))
	return out, nil
}

// mutate 执行一次更新并投递携带旧值的 UPDATE 事件
func (s *postServiceImpl) mutate(ctx context.Context, fn func() (*model.Post, *model.Post, error)) (*dto.PostDTO, error) {
	old, post, err := fn()
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	out := toPostDTO(post)
	publishChange(ctx, s.publisher, kafka.NewChangeEvent(postsTable, kafka.EventUpdate, out.ID, out, toPostDTO(old)))
	return out, nil
}

func newPostModel(req *dto.PostCreateDTO) *model.Post {
	post := &model.Post{}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.PostText != nil {
		post.PostText = *req.PostText
	}
	if req.UserID != nil {
		post.UserID = *req.UserID
	}
	return post
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	return out
}
