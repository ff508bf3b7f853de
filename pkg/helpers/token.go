package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed input. Callers treat it as a normal control-flow branch.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenCodec signs a user id (and expiry) into an opaque bearer string and
// verifies it back. Verification is pure and stateless: it proves the token
// was issued here and has not expired, not that it is still live — liveness
// is the token store's job.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

type tokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// WithClock overrides the codec's clock. Tests use it to simulate expiry.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

func (c *TokenCodec) Issue(userID string, ttl time.Duration) (string, error) {
	issued := c.now()
	claims := &tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps two tokens minted in the same second distinct
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify returns the embedded user id, or ErrInvalidToken on any mismatch.
func (c *TokenCodec) Verify(token string) (string, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
