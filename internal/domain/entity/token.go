package entity

import "time"

// TokenKind distinguishes the four token flavors the auth workflow issues.
type TokenKind string

const (
	TokenKindActivation TokenKind = "activation"
	TokenKindAccess     TokenKind = "access"
	TokenKindRefresh    TokenKind = "refresh"
	TokenKindReset      TokenKind = "reset"
)

// Token is a persisted issued token. Value is the opaque signed string and
// the primary lookup key. UserID is a non-owning back-reference: tokens are
// deleted independently of the user on rotation, logout and consumption.
type Token struct {
	Value     string
	Kind      TokenKind
	UserID    string
	CreatedAt time.Time
}
