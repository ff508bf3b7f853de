package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-platform/config"
	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/pkg/response"
	"github.com/oksasatya/go-blog-platform/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Cfg: cfg, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

type userPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type sessionPayload struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         userPayload `json:"user"`
}

type tokenPairPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a pending account and enqueues the activation email.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	u, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Status: string(u.Status)}, "registered, check your email to activate the account", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	sess, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, sessionPayload{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		User:         userPayload{ID: sess.User.ID, Name: sess.User.Name, Email: sess.User.Email, Status: string(sess.User.Status)},
	}, "login success", nil)
}

// Refresh rotates the pair; the presented refresh token is single-use.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	pair, err := h.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tokenPairPayload{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, "token refreshed", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	if err := h.Auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "logged out", nil)
}

// ConfirmEmail is hit from the activation link, so it redirects to the
// frontend login page instead of returning JSON.
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Param("token")
	if err := h.Auth.ConfirmEmail(c.Request.Context(), token); err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.Redirect(http.StatusFound, h.Cfg.FrontendURL+"/auth/login")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	if err := h.Auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "reset email sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	if err := h.Auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated", nil)
}
