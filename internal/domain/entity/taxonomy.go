package entity

import "time"

// Category groups posts; every post belongs to exactly one.
type Category struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tag is a free-form label; posts carry zero or more through post_tags.
type Tag struct {
	ID        string
	Name      string
	Slug      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
