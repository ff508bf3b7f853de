package entity

import "time"

// Post is a published article. Slug is unique and derived from the title.
type Post struct {
	ID         string
	Title      string
	Slug       string
	Content    string
	CoverURL   string
	CategoryID string
	UserID     string
	TagIDs     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
