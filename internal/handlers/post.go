package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"tanuki/internal/config"
	"tanuki/internal/db"
	"tanuki/internal/forms"
	"tanuki/internal/middleware"
	"tanuki/internal/models"
	"tanuki/internal/services"
	"tanuki/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const postsPerPage = 25

type PostHandler struct {
	cfg  config.Config
	mail *services.MailService
}

func NewPostHandler(cfg config.Config, mail *services.MailService) *PostHandler {
	return &PostHandler{cfg: cfg, mail: mail}
}

// visiblePosts builds a fresh query over the posts a browsing user may see.
// Signed-in users additionally have posts carrying a blacklisted tag
// filtered out; the blacklist matches on tag slug so entries keep working
// across tag deletion and recreation.
func visiblePosts(user *models.User) *gorm.DB {
	q := db.DB.Model(&models.Post{}).Scopes(models.Visible)
	if user != nil {
		blocked := db.DB.Table("post_tags").
			Select("post_tags.post_id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Joins("JOIN user_blacklists ON user_blacklists.tag_slug = tags.slug").
			Where("user_blacklists.user_id = ?", user.ID)
		q = q.Where("posts.id NOT IN (?)", blocked)
	}
	return q
}

func (h *PostHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	rawPage := c.Query("page")

	// Anonymous pages are shared and cacheable; signed-in pages depend on
	// the user's blacklist.
	cacheKey := "post:list:page:" + rawPage
	if user == nil {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			if hData, ok := cached.(gin.H); ok {
				Render(c, http.StatusOK, "post/list.html", hData)
				return
			}
		}
	}

	var total int64
	visiblePosts(user).Count(&total)
	pg := utils.Paginate(rawPage, postsPerPage, total)

	var posts []models.Post
	visiblePosts(user).
		Order("publish_at DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	renderData := gin.H{
		"Posts":      posts,
		"Pagination": pg,
		"Title":      "Posts",
	}

	if user == nil {
		// New submissions enter as drafts and stay invisible, so the cached
		// page only goes stale when a moderator promotes a post; the short
		// TTL covers that.
		utils.GetCache().Set(cacheKey, renderData, 1*time.Minute)
	}

	Render(c, http.StatusOK, "post/list.html", renderData)
}

func (h *PostHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	var post models.Post
	if err := db.DB.Scopes(models.Visible).First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	h.renderDetail(c, http.StatusOK, post, forms.CommentForm{}, nil)
}

// renderDetail assembles the detail page: the post, its tags, active
// comments in submission order, and the comment form (blank on a plain
// fetch, rejected input plus field errors after a failed submission).
func (h *PostHandler) renderDetail(c *gin.Context, code int, post models.Post, form forms.CommentForm, formErrors map[string]string) {
	var tags []models.Tag
	db.DB.Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", post.ID).
		Order("tags.slug ASC").
		Find(&tags)

	var comments []models.Comment
	db.DB.Where("post_id = ? AND active = ?", post.ID, true).
		Order("created_at ASC").
		Find(&comments)

	type renderedComment struct {
		models.Comment
		BodyHTML template.HTML
	}
	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			BodyHTML: utils.RenderMarkdown(com.Body),
		}
	}

	var favoriteCount int64
	db.DB.Model(&models.UserFavorite{}).Where("post_id = ?", post.ID).Count(&favoriteCount)

	isFavorited := false
	if user := middleware.CurrentUser(c); user != nil {
		var fav models.UserFavorite
		if err := db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&fav).Error; err == nil {
			isFavorited = true
		}
	}

	Render(c, code, "post/detail.html", gin.H{
		"Post":          post,
		"Description":   utils.RenderMarkdown(post.Description),
		"Tags":          tags,
		"Comments":      rendered,
		"Form":          form,
		"FormErrors":    formErrors,
		"FavoriteCount": favoriteCount,
		"IsFavorited":   isFavorited,
		"Title":         post.Title,
	})
}

// CreateComment accepts a comment on a published post. Commenting is
// stricter than browsing: unapproved posts are viewable but have not been
// through review yet, so they reject comments the same way a missing post
// would.
func (h *PostHandler) CreateComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	var post models.Post
	if err := db.DB.Where("status = ?", models.StatusPublished).First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	var form forms.CommentForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		h.renderDetail(c, http.StatusBadRequest, post, form, errs)
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		Name:   form.Name,
		Body:   form.Body,
		Active: true,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save your comment.")
		return
	}

	Render(c, http.StatusOK, "post/comment.html", gin.H{
		"Post":    post,
		"Comment": comment,
		"Title":   fmt.Sprintf("Comment on %s", post.Title),
	})
}
