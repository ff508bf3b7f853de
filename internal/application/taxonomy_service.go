package application

import (
	"context"
	"errors"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
	"github.com/oksasatya/go-blog-platform/pkg/helpers"
)

// TagService implements tag CRUD with the same slug-collision strategy as
// posts.
type TagService struct {
	Tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{Tags: tags}
}

func (s *TagService) List(ctx context.Context) ([]*entity.Tag, error) {
	return s.Tags.List(ctx)
}

func (s *TagService) Create(ctx context.Context, userID, name string) (*entity.Tag, error) {
	slug, err := uniqueTagSlug(ctx, s.Tags, name)
	if err != nil {
		return nil, err
	}
	t := &entity.Tag{Name: name, Slug: slug, UserID: userID}
	if err := s.Tags.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TagService) Update(ctx context.Context, id, name string) (*entity.Tag, error) {
	t, err := s.Tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.Name == name {
		return nil, ErrNothingChanged
	}
	slug, err := uniqueTagSlug(ctx, s.Tags, name)
	if err != nil {
		return nil, err
	}
	t.Name = name
	t.Slug = slug
	if err := s.Tags.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, id string) (*entity.Tag, error) {
	t, err := s.Tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Tags.Delete(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}

func uniqueTagSlug(ctx context.Context, tags repository.TagRepository, name string) (string, error) {
	slug := helpers.Slugify(name)
	existing, err := tags.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		slug = helpers.SlugWithSuffix(name)
	}
	return slug, nil
}

// CategoryService mirrors TagService for categories.
type CategoryService struct {
	Categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]*entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	slug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}
	c := &entity.Category{Name: name, Slug: slug}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*entity.Category, error) {
	c, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.Name != name {
		slug, err := s.uniqueSlug(ctx, name)
		if err != nil {
			return nil, err
		}
		c.Name = name
		c.Slug = slug
	}
	if err := s.Categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) (*entity.Category, error) {
	c, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) uniqueSlug(ctx context.Context, name string) (string, error) {
	slug := helpers.Slugify(name)
	existing, err := s.Categories.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		slug = helpers.SlugWithSuffix(name)
	}
	return slug, nil
}
