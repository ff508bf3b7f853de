package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/internal/container"
	handlers "github.com/oksasatya/go-blog-platform/internal/interface/http"
	"github.com/oksasatya/go-blog-platform/internal/interface/middleware"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	Auth    *application.AuthService
}

func NewCommentModule(h *handlers.CommentHandler, auth *application.AuthService) *CommentModule {
	return &CommentModule{Handler: h, Auth: auth}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments/post/:postId", m.Handler.ListByPost)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/comments/post/:postId", m.Handler.Add)
		auth.PUT("/comments/:id", m.Handler.Update)
		auth.DELETE("/comments/:id", m.Handler.Delete)
	}
}
