package handler

import (
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/pkg/response"
	"SocialBoard/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var searchDTO dto.PostSearchDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListPosts(c.Request.Context(), searchDTO.Title)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	s.byID(c, s.postSvc.GetPost)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PostCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) PatchPostText(c *gin.Context) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	text, err := requiredQuery(c, "text")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.PatchPostText(c.Request.Context(), postID, text)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) IncrementLikes(c *gin.Context) {
	s.byID(c, s.postSvc.IncrementLikes)
}

func (s *PostHandler) DecrementLikes(c *gin.Context) {
	s.byID(c, s.postSvc.DecrementLikes)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	s.byID(c, s.postSvc.DeletePost)
}

// byID 处理只需要 post_id 的接口
func (s *PostHandler) byID(c *gin.Context, fn func(ctx context.Context, id uint64) (*dto.PostDTO, error)) {
	postID, err := parseID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := fn(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}
