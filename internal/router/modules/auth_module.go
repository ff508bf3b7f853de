package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-platform/internal/container"
	handlers "github.com/oksasatya/go-blog-platform/internal/interface/http"
	"github.com/oksasatya/go-blog-platform/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits. Register and the password
	// flows are tighter than the token endpoints. Private and loopback
	// addresses bypass the limits so local development is not throttled.
	allowLocal := middleware.AllowPrivateIP()
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), allowLocal)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), allowLocal)
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), allowLocal)
	passwordLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), allowLocal)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh-token", tokenLimiter, m.Handler.Refresh)
	rg.POST("/auth/logout", tokenLimiter, m.Handler.Logout)
	rg.GET("/auth/confirm/:token", tokenLimiter, m.Handler.ConfirmEmail)
	rg.POST("/auth/forgot-password", passwordLimiter, m.Handler.ForgotPassword)
	rg.POST("/auth/reset-password", passwordLimiter, m.Handler.ResetPassword)
}
