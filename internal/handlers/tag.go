package handlers

import (
	"net/http"

	"tanuki/internal/db"
	"tanuki/internal/middleware"
	"tanuki/internal/models"
	"tanuki/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagHandler struct{}

func NewTagHandler() *TagHandler {
	return &TagHandler{}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	var tags []models.Tag
	db.DB.Order("slug ASC").Find(&tags)

	Render(c, http.StatusOK, "tag/list.html", gin.H{
		"Tags":  tags,
		"Title": "Tags",
	})
}

// ListByTag pages through the visible posts carrying a tag. Matching is by
// slug, the tag's URL identity.
func (h *TagHandler) ListByTag(c *gin.Context) {
	slug := c.Param("slug")

	var tag models.Tag
	if err := db.DB.Where("slug = ?", slug).Order("id ASC").First(&tag).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found.")
		return
	}

	user := middleware.CurrentUser(c)

	tagged := func() *gorm.DB {
		return visiblePosts(user).
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", slug)
	}

	var total int64
	tagged().Distinct("posts.id").Count(&total)

	pg := utils.Paginate(c.Query("page"), postsPerPage, total)

	var posts []models.Post
	tagged().
		Distinct("posts.*").
		Order("publish_at DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	blacklisted := false
	if user != nil {
		var entry models.UserBlacklist
		if err := db.DB.Where("user_id = ? AND tag_slug = ?", user.ID, slug).First(&entry).Error; err == nil {
			blacklisted = true
		}
	}

	Render(c, http.StatusOK, "post/list.html", gin.H{
		"Posts":       posts,
		"Pagination":  pg,
		"Tag":         tag,
		"Blacklisted": blacklisted,
		"Title":       tag.Name,
	})
}
