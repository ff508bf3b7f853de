package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*entity.Category
	for rows.Next() {
		c := &entity.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return scanCategory(r.pool.QueryRow(ctx, `
		SELECT id, name, slug, created_at, updated_at FROM categories WHERE id = $1
	`, id))
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return scanCategory(r.pool.QueryRow(ctx, `
		SELECT id, name, slug, created_at, updated_at FROM categories WHERE slug = $1
	`, slug))
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	c := &entity.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Slug)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	c.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE categories SET name = $1, slug = $2, updated_at = $3 WHERE id = $4
	`, c.Name, c.Slug, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

const tagColumns = `id, name, slug, COALESCE(user_id::text, ''), created_at, updated_at`

func (r *TagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+tagColumns+` FROM tags ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTags(rows)
}

func (r *TagRepository) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	return scanTag(r.pool.QueryRow(ctx, `
		SELECT `+tagColumns+` FROM tags WHERE id = $1
	`, id))
}

func (r *TagRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+tagColumns+` FROM tags WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTags(rows)
}

func (r *TagRepository) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	return scanTag(r.pool.QueryRow(ctx, `
		SELECT `+tagColumns+` FROM tags WHERE slug = $1
	`, slug))
}

func collectTags(rows pgx.Rows) ([]*entity.Tag, error) {
	var tags []*entity.Tag
	for rows.Next() {
		t := &entity.Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func scanTag(row pgx.Row) (*entity.Tag, error) {
	t := &entity.Tag{}
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TagRepository) Create(ctx context.Context, t *entity.Tag) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tags (name, slug, user_id)
		VALUES ($1, $2, NULLIF($3, '')::uuid)
		RETURNING id, created_at, updated_at
	`, t.Name, t.Slug, t.UserID)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TagRepository) Update(ctx context.Context, t *entity.Tag) error {
	t.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE tags SET name = $1, slug = $2, updated_at = $3 WHERE id = $4
	`, t.Name, t.Slug, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TagRepository = (*TagRepository)(nil)
