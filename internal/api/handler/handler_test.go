package handler

import (
	"SocialBoard/internal/api/dto"
	"SocialBoard/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserService struct {
	service.UserService
	patchedName *string
}

func (s *stubUserService) PatchUserName(_ context.Context, id uint64, name string) (*dto.UserDTO, error) {
	s.patchedName = &name
	return &dto.UserDTO{ID: id, Name: name}, nil
}

func (s *stubUserService) CreateUser(_ context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error) {
	return &dto.UserDTO{ID: 1, Name: *req.Name, IsAdmin: req.IsAdmin, ImageURL: req.ImageURL}, nil
}

type stubPostService struct {
	service.PostService
}

func (stubPostService) GetPost(context.Context, uint64) (*dto.PostDTO, error) {
	return nil, service.ErrPostNotFound
}

func TestPatchUserNameQuery(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)
	r := gin.New()
	r.PATCH("/users/:user_id/name", h.PatchUserName)

	t.Run("empty name is allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/users/5/name?name=", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		if assert.NotNil(t, svc.patchedName) {
			assert.Equal(t, "", *svc.patchedName)
		}
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/users/5/name", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative id is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/users/-1/name?name=x", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateUserBody(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	r := gin.New()
	r.POST("/users/", h.CreateUser)

	t.Run("defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"name":"eve"}`)))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"eve","is_admin":false,"image_url":null}`, w.Body.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(`{"name":`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPostNotFound(t *testing.T) {
	h := NewPostHandler(stubPostService{})
	r := gin.New()
	r.GET("/posts/:post_id", h.GetPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/3", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Post not found"}`, w.Body.String())
}
