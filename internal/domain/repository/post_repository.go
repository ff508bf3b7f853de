package repository

import (
	"context"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

// PostRepository persists posts together with their tag relations.
// Create and Update write the post row and the post_tags diff in one
// transaction.
type PostRepository interface {
	List(ctx context.Context) ([]*entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
	SetCoverURL(ctx context.Context, id string, url string) error
}
