package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/internal/container"
	handlers "github.com/oksasatya/go-blog-platform/internal/interface/http"
	"github.com/oksasatya/go-blog-platform/internal/interface/middleware"
)

type TagModule struct {
	Handler *handlers.TagHandler
	Auth    *application.AuthService
}

func NewTagModule(h *handlers.TagHandler, auth *application.AuthService) *TagModule {
	return &TagModule{Handler: h, Auth: auth}
}

func (m *TagModule) Register(rg *gin.RouterGroup) {
	rg.GET("/tags", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/tags", m.Handler.Create)
		auth.PUT("/tags/:id", m.Handler.Update)
		auth.DELETE("/tags/:id", m.Handler.Delete)
	}
}

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	Auth    *application.AuthService
}

func NewCategoryModule(h *handlers.CategoryHandler, auth *application.AuthService) *CategoryModule {
	return &CategoryModule{Handler: h, Auth: auth}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/categories", m.Handler.Create)
		auth.PUT("/categories/:id", m.Handler.Update)
		auth.DELETE("/categories/:id", m.Handler.Delete)
	}
}
