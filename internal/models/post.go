package models

import (
	"time"

	"gorm.io/gorm"
)

// Status is the moderation state of a post. Drafts never display to a
// browsing user; published posts display normally and unapproved posts
// display with a pending-approval notice.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusUnapproved Status = "unapproved"
	StatusPublished  Status = "published"
)

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:250;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	AltText     string    `gorm:"type:text" json:"alt_text"`
	ContentPath string    `gorm:"not null" json:"content_path"` // opaque handle to the stored media file
	PosterID    *uint     `gorm:"index" json:"poster_id"`       // nil means the post was made anonymously
	Poster      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"poster"`
	PublishAt   time.Time `gorm:"not null;index:idx_posts_publish,sort:desc" json:"publish_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Status      Status    `gorm:"size:20;not null;default:'draft';index" json:"status"`
}

// BeforeCreate fills the defaults the schema promises: a placeholder title,
// a publish time of "now" unless the caller backdated or future-dated it,
// and draft status. CreatedAt/UpdatedAt are stamped by GORM and are never
// bound from a request.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Title == "" {
		p.Title = "post"
	}
	if p.PublishAt.IsZero() {
		p.PublishAt = time.Now()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return nil
}

// Visible is the browsing-user visibility policy: published or unapproved,
// never drafts. Every public read path goes through this scope so a draft
// lookup is indistinguishable from a missing post.
func Visible(tx *gorm.DB) *gorm.DB {
	return tx.Where("posts.status IN ?", []Status{StatusPublished, StatusUnapproved})
}

// PostTag is the explicit join entity between posts and tags. Both sides
// cascade: removing a post or a tag removes the association rows.
type PostTag struct {
	PostID uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Post   Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	TagID  uint `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	Tag    Tag  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tag"`
}
