package wire

import (
	"SocialBoard/internal/api"
	"SocialBoard/internal/api/config"
	"SocialBoard/internal/api/handler"
	"SocialBoard/internal/pkg/kafka"
	"SocialBoard/internal/repository"
	"SocialBoard/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Publisher kafka.Publisher
}

func BuildApplication(db *gorm.DB, publisher kafka.Publisher, cfg *config.Config) *ApplicationContainer {
	searchOpts := repository.SearchOptions{CaseSensitive: cfg.DB.CaseSensitiveSearch}

	userRepo := repository.NewUserRepo(db, searchOpts)
	postRepo := repository.NewPostRepository(db, searchOpts)

	userService := service.NewUserService(userRepo, publisher)
	postService := service.NewPostService(postRepo, publisher)

	handlers := &api.HandlersGroup{
		UserHandler: handler.NewUserHandler(userService),
		PostHandler: handler.NewPostHandler(postService),
	}

	return &ApplicationContainer{
		Router:    api.SetupRouter(handlers),
		DB:        db,
		Publisher: publisher,
	}
}
