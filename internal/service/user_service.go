package service

import (
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/model"
	"SocialBoard/internal/pkg/kafka"
	"SocialBoard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

const usersTable = "users"

type UserService interface {
	CreateUser(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error)
	ListUsers(ctx context.Context, name string) ([]*dto.UserDTO, error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, req *dto.UserCreateDTO) (*dto.UserDTO, error)
	PatchUserName(ctx context.Context, id uint64, name string) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo  repository.UserRepo
	publisher kafka.Publisher
}

func NewUserService(userRepo repository.UserRepo, publisher kafka.Publisher) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error) {
	user := newUserModel(req)
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	out := toUserDTO(user)
	publishChange(ctx, s.publisher, kafka.NewChangeEvent(usersTable, kafka.EventInsert, out.ID, out, nil))
	return out, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, name string) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListUsers(ctx, name)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return out, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id uint64, req *dto.UserCreateDTO) (*dto.UserDTO, error) {
	old, user, err := s.userRepo.UpdateUser(ctx, id, newUserModel(req))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := toUserDTO(user)
	publishChange(ctx, s.publisher, kafka.NewChangeEvent(usersTable, kafka.EventUpdate, out.ID, out, toUserDTO(old)))
	return out, nil
}

// PatchUserName 只修改用户名
func (s *userServiceImpl) PatchUserName(ctx context.Context, id uint64, name string) (*dto.UserDTO, error) {
	old, user, err := s.userRepo.UpdateUsername(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := toUserDTO(user)
	publishChange(ctx, s.publisher, kafka.NewChangeEvent(usersTable, kafka.EventUpdate, out.ID, out, toUserDTO(old)))
	return out, nil
}

func newUserModel(req *dto.UserCreateDTO) *model.User {
	user := &model.User{
		IsAdmin:  req.IsAdmin,
		ImageURL: req.ImageURL,
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	return user
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	return out
}
