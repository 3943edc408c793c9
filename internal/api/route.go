package api

import (
	"SocialBoard/internal/api/middleware"
	"SocialBoard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	userGroup := r.Group("/users")
	{
		userGroup.POST("/", group.UserHandler.CreateUser)
		userGroup.GET("/", group.UserHandler.ListUsers)
		userGroup.GET("/:user_id", group.UserHandler.GetUser)
		userGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
		userGroup.PATCH("/:user_id/name", group.UserHandler.PatchUserName)
	}

	postGroup := r.Group("/posts")
	{
		postGroup.POST("/", group.PostHandler.CreatePost)
		postGroup.GET("/", group.PostHandler.ListPosts)
		postGroup.GET("/:post_id", group.PostHandler.GetPost)
		postGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
		postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
		postGroup.PATCH("/:post_id/text", group.PostHandler.PatchPostText)
		postGroup.PATCH("/:post_id/likes/increment", group.PostHandler.IncrementLikes)
		postGroup.PATCH("/:post_id/likes/decrement", group.PostHandler.DecrementLikes)
	}

	return r
}
