package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a labeled category applicable to any number of posts. The slug is
// the URL identity (underscores, not dashes) and is indexed but not unique:
// browsing and blacklisting match on slug, so two tags sharing a slug are
// treated as the same identity.
type Tag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:250;not null" json:"name"`
	Slug        string    `gorm:"size:250;not null;index" json:"slug"`
	Type        string    `gorm:"size:50;not null;default:'General'" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.Type == "" {
		t.Type = "General"
	}
	return nil
}
