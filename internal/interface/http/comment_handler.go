package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/internal/interface/middleware"
	"github.com/oksasatya/go-blog-platform/pkg/response"
	"github.com/oksasatya/go-blog-platform/pkg/validation"
)

type CommentHandler struct {
	Comments *application.CommentService
	Logger   *logrus.Logger
}

func NewCommentHandler(comments *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Comments: comments, Logger: logger}
}

type commentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, err := h.Comments.ListByPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", nil)
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	cm, err := h.Comments.Add(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("postId"), req.Content)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment added", nil)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	cm, err := h.Comments.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"), req.Content)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cm, "comment updated", nil)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	cm, err := h.Comments.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cm, "comment deleted", nil)
}
