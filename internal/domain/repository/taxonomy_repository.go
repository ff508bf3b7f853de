package repository

import (
	"context"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}

type TagRepository interface {
	List(ctx context.Context) ([]*entity.Tag, error)
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	Create(ctx context.Context, t *entity.Tag) error
	Update(ctx context.Context, t *entity.Tag) error
	Delete(ctx context.Context, id string) error
}
