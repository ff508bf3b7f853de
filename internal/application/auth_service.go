package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
	"github.com/oksasatya/go-blog-platform/pkg/helpers"
)

// TokenTTLs configures the lifetime per token kind.
type TokenTTLs struct {
	Access     time.Duration
	Refresh    time.Duration
	Activation time.Duration
	Reset      time.Duration
}

// AuthService orchestrates registration, login, refresh, logout, email
// confirmation and password reset over the credential store, the token store
// and the token codec.
//
// Token rotation is last-issued-wins: issuing a new token of any
// rotation-sensitive kind replaces every token the user holds, so a fresh
// login also invalidates a pending password-reset or activation token.
type AuthService struct {
	Users  repository.UserRepository
	Tokens repository.TokenRepository
	Codec  *helpers.TokenCodec
	Notify Notifier
	Logger *logrus.Logger
	TTL    TokenTTLs
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, codec *helpers.TokenCodec, notify Notifier, logger *logrus.Logger, ttl TokenTTLs) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Codec: codec, Notify: notify, Logger: logger, TTL: ttl}
}

// Session is what a successful login returns.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// TokenPair is what a successful refresh returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Register creates a pending user, issues an activation token and hands it
// to the notifier. Shape validation (name length, email format, password
// strength) happens at the HTTP boundary.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Status:       entity.UserStatusPending,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	activation, err := s.Codec.Issue(u.ID, s.TTL.Activation)
	if err != nil {
		return nil, err
	}
	if err := s.Tokens.Put(ctx, &entity.Token{Value: activation, Kind: entity.TokenKindActivation, UserID: u.ID}); err != nil {
		return nil, err
	}

	if err := s.Notify.SendActivation(ctx, u.Email, u.Name, activation); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("activation email enqueue failed")
	}

	return u, nil
}

// Login verifies credentials and rotates in a fresh access/refresh pair.
// Every previously issued token for the user is invalidated, whatever its
// kind.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.Status != entity.UserStatusActive {
		return nil, ErrNotActivated
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.rotatePair(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, User: u}, nil
}

// Refresh rotates the token pair. The presented refresh token is single-use:
// rotation deletes it, so presenting it again fails with ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	rec, err := s.lookupKind(ctx, refreshToken, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}
	return s.rotatePair(ctx, rec.UserID)
}

// Logout invalidates every token the user holds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	rec, err := s.lookupKind(ctx, refreshToken, entity.TokenKindRefresh)
	if err != nil {
		return err
	}
	return s.Tokens.DeleteAllForUser(ctx, rec.UserID)
}

// ConfirmEmail consumes an activation token and flips the user to active.
// The transition is one-way; the token (and any other outstanding token) is
// gone afterwards.
func (s *AuthService) ConfirmEmail(ctx context.Context, token string) error {
	rec, err := s.lookupKind(ctx, token, entity.TokenKindActivation)
	if err != nil {
		return err
	}
	if err := s.Users.UpdateStatus(ctx, rec.UserID, entity.UserStatusActive); err != nil {
		return err
	}
	return s.Tokens.DeleteAllForUser(ctx, rec.UserID)
}

// ForgotPassword issues a reset token and hands it to the notifier. Prior
// tokens are invalidated so only the latest reset link works.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	reset, err := s.Codec.Issue(u.ID, s.TTL.Reset)
	if err != nil {
		return err
	}
	if err := s.Tokens.Rotate(ctx, u.ID, &entity.Token{Value: reset, Kind: entity.TokenKindReset, UserID: u.ID}); err != nil {
		return err
	}

	if err := s.Notify.SendPasswordReset(ctx, u.Email, u.Name, reset); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("reset email enqueue failed")
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	rec, err := s.lookupKind(ctx, token, entity.TokenKindReset)
	if err != nil {
		return err
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, rec.UserID, hash); err != nil {
		return err
	}
	return s.Tokens.DeleteAllForUser(ctx, rec.UserID)
}

// Authenticate resolves an access token to its user. Used by the HTTP auth
// middleware; a token that was rotated away fails here even when its
// signature is still valid.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	rec, err := s.lookupKind(ctx, accessToken, entity.TokenKindAccess)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// lookupKind collapses signature failure, expiry, unknown token and kind
// mismatch into ErrInvalidToken.
func (s *AuthService) lookupKind(ctx context.Context, token string, kind entity.TokenKind) (*entity.Token, error) {
	if _, err := s.Codec.Verify(token); err != nil {
		return nil, ErrInvalidToken
	}
	rec, err := s.Tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if rec.Kind != kind {
		return nil, ErrInvalidToken
	}
	return rec, nil
}

// rotatePair issues a fresh access/refresh pair and atomically replaces all
// of the user's tokens with it.
func (s *AuthService) rotatePair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := s.Codec.Issue(userID, s.TTL.Access)
	if err != nil {
		return nil, err
	}
	refresh, err := s.Codec.Issue(userID, s.TTL.Refresh)
	if err != nil {
		return nil, err
	}
	err = s.Tokens.Rotate(ctx, userID,
		&entity.Token{Value: access, Kind: entity.TokenKindAccess, UserID: userID},
		&entity.Token{Value: refresh, Kind: entity.TokenKindRefresh, UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
