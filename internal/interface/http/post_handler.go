package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/internal/interface/middleware"
	"github.com/oksasatya/go-blog-platform/pkg/response"
	"github.com/oksasatya/go-blog-platform/pkg/validation"
)

// 8 MiB is plenty for a cover image.
const maxCoverSize = 8 << 20

type PostHandler struct {
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(posts *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Posts: posts, Logger: logger}
}

type postRequest struct {
	Title      string   `json:"title" binding:"required,min=3,max=200"`
	Content    string   `json:"content" binding:"required"`
	CategoryID string   `json:"category_id" binding:"required,uuid"`
	TagIDs     []string `json:"tag_ids" binding:"omitempty,dive,uuid"`
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Posts.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.Posts.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	p, err := h.Posts.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "post created", nil)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	p, err := h.Posts.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.UpdatePostInput{
		ID:         c.Param("id"),
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post updated", nil)
}

func (h *PostHandler) Delete(c *gin.Context) {
	p, err := h.Posts.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post deleted", nil)
}

// UploadCover accepts a multipart form with an "image" file field.
func (h *PostHandler) UploadCover(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	if fh.Size > maxCoverSize {
		response.Error[any](c, http.StatusBadRequest, "image too large", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Posts.UploadCover(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cover_url": url}, "cover uploaded", nil)
}

func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Posts.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
