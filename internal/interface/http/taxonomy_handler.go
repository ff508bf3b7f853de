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

type nameRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type TagHandler struct {
	Tags   *application.TagService
	Logger *logrus.Logger
}

func NewTagHandler(tags *application.TagService, logger *logrus.Logger) *TagHandler {
	return &TagHandler{Tags: tags, Logger: logger}
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.Tags.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tags, "tags", nil)
}

func (h *TagHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	t, err := h.Tags.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "tag created", nil)
}

func (h *TagHandler) Update(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	t, err := h.Tags.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "tag updated", nil)
}

func (h *TagHandler) Delete(c *gin.Context) {
	t, err := h.Tags.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "tag deleted", nil)
}

type CategoryHandler struct {
	Categories *application.CategoryService
	Logger     *logrus.Logger
}

func NewCategoryHandler(categories *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Categories: categories, Logger: logger}
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Categories.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", nil)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	cat, err := h.Categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created", nil)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	cat, err := h.Categories.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category updated", nil)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	cat, err := h.Categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category deleted", nil)
}
