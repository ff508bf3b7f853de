package entity

import (
	"time"
)

// UserStatus tracks whether the account's email has been confirmed.
// The transition pending -> active is one-way and happens only through
// a valid activation token.
type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
