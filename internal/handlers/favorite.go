package handlers

import (
	"net/http"
	"strconv"

	"tanuki/internal/db"
	"tanuki/internal/middleware"
	"tanuki/internal/models"
	"tanuki/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteHandler struct{}

func NewFavoriteHandler() *FavoriteHandler {
	return &FavoriteHandler{}
}

// Toggle favorites or unfavorites a visible post for the signed-in user.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	user := middleware.CurrentUser(c)

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

	var existing models.UserFavorite
	if err := db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&existing).Error; err == nil {
		db.DB.Delete(&existing)
	} else {
		db.DB.Create(&models.UserFavorite{UserID: user.ID, PostID: post.ID})
	}

	c.Redirect(http.StatusFound, "/p/"+strconv.Itoa(int(post.ID)))
}

// ListFavorites shows the user's favorited posts, most recently favorited
// first. Posts that slipped back out of visibility are filtered here too.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	user := middleware.CurrentUser(c)

	favorites := func() *gorm.DB {
		return db.DB.Model(&models.Post{}).
			Scopes(models.Visible).
			Joins("JOIN user_favorites ON user_favorites.post_id = posts.id").
			Where("user_favorites.user_id = ?", user.ID)
	}

	var total int64
	favorites().Count(&total)

	pg := utils.Paginate(c.Query("page"), postsPerPage, total)

	var posts []models.Post
	favorites().
		Order("user_favorites.created_at DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	Render(c, http.StatusOK, "user/favorites.html", gin.H{
		"Posts":      posts,
		"Pagination": pg,
		"Title":      "Favorites",
	})
}

// ToggleBlacklist adds or removes a tag slug on the user's blacklist. The
// tag must exist to be added; the entry itself outlives the tag.
func (h *FavoriteHandler) ToggleBlacklist(c *gin.Context) {
	user := middleware.CurrentUser(c)
	slug := c.Param("slug")

	var existing models.UserBlacklist
	if err := db.DB.Where("user_id = ? AND tag_slug = ?", user.ID, slug).First(&existing).Error; err == nil {
		db.DB.Delete(&existing)
		c.Redirect(http.StatusFound, "/t/"+slug)
		return
	}

	var tag models.Tag
	if err := db.DB.Where("slug = ?", slug).First(&tag).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found.")
		return
	}

	db.DB.Create(&models.UserBlacklist{UserID: user.ID, TagSlug: slug})
	c.Redirect(http.StatusFound, "/t/"+slug)
}
