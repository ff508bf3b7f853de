package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/internal/container"
	handlers "github.com/oksasatya/go-blog-platform/internal/interface/http"
	"github.com/oksasatya/go-blog-platform/internal/interface/middleware"
)

type PostModule struct {
	Handler *handlers.PostHandler
	Auth    *application.AuthService
}

func NewPostModule(h *handlers.PostHandler, auth *application.AuthService) *PostModule {
	return &PostModule{Handler: h, Auth: auth}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	// Reads are public. The static /posts/search route must sit alongside the
	// :slug wildcard, which Gin resolves in favor of the static route.
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/search", searchLimiter, m.Handler.Search)
	rg.GET("/posts/:slug", m.Handler.GetBySlug)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.POST("/posts/:id/cover", m.Handler.UploadCover)
	}
}
