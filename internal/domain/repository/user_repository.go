package repository

import (
	"context"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Implementations return ErrNotFound (infrastructure-level) wrapped lookups as
// (nil, error); callers translate that into their own taxonomy.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
