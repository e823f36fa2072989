package models

import (
	"time"
)

// UserBlacklist hides everything carrying a tag from one user's browsing.
// The entry references the tag by slug, on purpose and without a foreign
// key: deleting a tag must leave blacklist entries intact, so that a tag
// later recreated under the same slug is blacklisted again immediately.
// If someone doesn't want to see something, the only way it should reach
// their page is a mistagged post.
type UserBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_tag_slug" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	TagSlug   string    `gorm:"size:250;not null;uniqueIndex:idx_user_tag_slug" json:"tag_slug"`
	CreatedAt time.Time `json:"created_at"`
}
