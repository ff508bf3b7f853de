package repository

import (
	"context"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

// TokenRepository persists issued tokens keyed by their raw value.
//
// Rotate replaces every token a user holds with the given set in a single
// transaction. Issuing a new token therefore invalidates all previously
// issued tokens for that user regardless of kind: a fresh login also wipes a
// pending password-reset or activation token.
type TokenRepository interface {
	Put(ctx context.Context, t *entity.Token) error
	Get(ctx context.Context, value string) (*entity.Token, error)
	DeleteAllForUser(ctx context.Context, userID string) error
	Rotate(ctx context.Context, userID string, tokens ...*entity.Token) error
}
