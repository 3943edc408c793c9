package handler

import (
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/pkg/response"
	"SocialBoard/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.CreateUser(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	var searchDTO dto.UserSearchDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}

	users, err := s.userSvc.ListUsers(c.Request.Context(), searchDTO.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseID(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseID(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UserCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (s *UserHandler) PatchUserName(c *gin.Context) {
	userID, err := parseID(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	name, err := requiredQuery(c, "name")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.PatchUserName(c.Request.Context(), userID, name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
