package models

import (
	"time"
)

// Comment is a remark on exactly one post. Name is free-form and optional;
// a blank name renders as "anonymous". Deactivation is a moderation action:
// once Active is false nothing in the request layer can flip it back.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	Name      string    `gorm:"size:80" json:"name"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
