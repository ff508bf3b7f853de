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

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, title, slug, content, cover_url, category_id, user_id, created_at, updated_at`

func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*entity.Post
	for rows.Next() {
		p := &entity.Post{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.CoverURL,
			&p.CategoryID, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *PostRepository) getOne(ctx context.Context, where string, arg any) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts `+where, arg)
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.CoverURL,
		&p.CategoryID, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadTags(ctx, []*entity.Post{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) loadTags(ctx context.Context, posts []*entity.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(posts))
	byID := make(map[string]*entity.Post, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}
	rows, err := r.pool.Query(ctx, `
		SELECT post_id, tag_id
		FROM post_tags
		WHERE post_id = ANY($1)
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var postID, tagID string
		if err := rows.Scan(&postID, &tagID); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			p.TagIDs = append(p.TagIDs, tagID)
		}
	}
	return rows.Err()
}

// Create inserts the post and its tag relations in one transaction.
func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO posts (title, slug, content, cover_url, category_id, user_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`, p.Title, p.Slug, p.Content, p.CoverURL, p.CategoryID, p.UserID)
		if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		for _, tagID := range p.TagIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)
			`, p.ID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update rewrites the post row and diffs post_tags against p.TagIDs:
// relations not in the new set are removed, new ones inserted.
func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()
	// A nil slice would encode as a NULL array and make the NOT ANY delete a
	// no-op; clearing all tags must delete every relation.
	tagIDs := p.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			UPDATE posts
			SET title = $1, slug = $2, content = $3, category_id = $4, updated_at = $5
			WHERE id = $6
		`, p.Title, p.Slug, p.Content, p.CategoryID, p.UpdatedAt, p.ID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `
			DELETE FROM post_tags
			WHERE post_id = $1 AND NOT (tag_id = ANY($2))
		`, p.ID, tagIDs); err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO post_tags (post_id, tag_id)
				VALUES ($1, $2)
				ON CONFLICT (post_id, tag_id) DO NOTHING
			`, p.ID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) SetCoverURL(ctx context.Context, id string, url string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts SET cover_url = $1, updated_at = $2 WHERE id = $3
	`, url, time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
