package models

import (
	"errors"
	"strings"
	"time"
)

// MaxDescriptionWords caps the length of a post description.
const MaxDescriptionWords = 200

// Validation failures for post content. The messages are surfaced to clients verbatim.
var (
	ErrPostTitleRequired = errors.New("Post must have a title")
	ErrPostBodyRequired  = errors.New("Post must have either a description or a file")
	ErrPostDescTooLong   = errors.New("Description cannot exceed 200 words")
)

// Post represents a social feed post created by a user.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	FileURL     string    `gorm:"size:255" json:"file_url"`
	Likes       int64     `gorm:"not null;default:0" json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments    []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments"`
}

// ValidatePostContent checks the post content rules: a non-empty title, at
// least one of description or file, and the description word cap.
func ValidatePostContent(title, description string, hasFile bool) error {
	if strings.TrimSpace(title) == "" {
		return ErrPostTitleRequired
	}
	if strings.TrimSpace(description) == "" && !hasFile {
		return ErrPostBodyRequired
	}
	if len(strings.Fields(description)) > MaxDescriptionWords {
		return ErrPostDescTooLong
	}
	return nil
}
