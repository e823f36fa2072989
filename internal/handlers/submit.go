package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tanuki/internal/db"
	"tanuki/internal/middleware"
	"tanuki/internal/models"
	"tanuki/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *PostHandler) ShowSubmit(c *gin.Context) {
	Render(c, http.StatusOK, "post/submit.html", gin.H{"Title": "Submit"})
}

// Submit stores the uploaded media and creates the post as a draft. Drafts
// stay invisible until a moderator promotes them, so nothing public changes
// on this path.
func (h *PostHandler) Submit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	file, err := c.FormFile("content")
	if err != nil {
		Render(c, http.StatusBadRequest, "post/submit.html", gin.H{
			"Error": "An image file is required.",
			"Title": "Submit",
		})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not store the upload.")
		return
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not store the upload.")
		return
	}

	post := models.Post{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: c.PostForm("description"),
		AltText:     c.PostForm("alt_text"),
		ContentPath: name,
		PosterID:    &user.ID,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the post.")
		return
	}

	attachTags(post.ID, c.PostForm("tags"))

	Render(c, http.StatusOK, "post/submit.html", gin.H{
		"Success": "Submitted. Your post is queued for review.",
		"Title":   "Submit",
	})
}

// attachTags parses a space-separated tag list, reusing tags that already
// exist under the same slug.
func attachTags(postID uint, raw string) {
	for _, token := range strings.Fields(raw) {
		slug := utils.Slugify(token)
		if slug == "" {
			continue
		}
		var tag models.Tag
		db.DB.Where("slug = ?", slug).
			Attrs(models.Tag{Name: token, Slug: slug}).
			FirstOrCreate(&tag)
		db.DB.Where("post_id = ? AND tag_id = ?", postID, tag.ID).
			FirstOrCreate(&models.PostTag{PostID: postID, TagID: tag.ID})
	}
}
