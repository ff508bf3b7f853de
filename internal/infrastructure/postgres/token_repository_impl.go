package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Put(ctx context.Context, t *entity.Token) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tokens (value, kind, user_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, t.Value, t.Kind, t.UserID)

	return row.Scan(&t.CreatedAt)
}

func (r *TokenRepository) Get(ctx context.Context, value string) (*entity.Token, error) {
	t := &entity.Token{}

	row := r.pool.QueryRow(ctx, `
		SELECT value, kind, user_id, created_at
		FROM tokens
		WHERE value = $1
	`, value)

	if err := row.Scan(&t.Value, &t.Kind, &t.UserID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TokenRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1`, userID)
	return err
}

// Rotate deletes every token the user holds and inserts the replacements in
// one transaction. Two concurrent logins no longer interleave delete and
// insert: the later transaction wins wholesale.
func (r *TokenRepository) Rotate(ctx context.Context, userID string, tokens ...*entity.Token) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1`, userID); err != nil {
			return err
		}
		for _, t := range tokens {
			row := tx.QueryRow(ctx, `
				INSERT INTO tokens (value, kind, user_id)
				VALUES ($1, $2, $3)
				RETURNING created_at
			`, t.Value, t.Kind, t.UserID)
			if err := row.Scan(&t.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
