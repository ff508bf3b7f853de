package repository

import (
	"context"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Create(ctx context.Context, c *entity.Comment) error
	UpdateContent(ctx context.Context, id string, content string) error
	Delete(ctx context.Context, id string) error
}
