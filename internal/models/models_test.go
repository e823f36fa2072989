package models_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tanuki/internal/db"
	"tanuki/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:models_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	return g
}

func TestPostCreateDefaults(t *testing.T) {
	g := openTestDB(t)

	post := models.Post{ContentPath: "a.png"}
	require.NoError(t, g.Create(&post).Error)

	assert.Equal(t, "post", post.Title)
	assert.Equal(t, models.StatusDraft, post.Status)
	assert.WithinDuration(t, time.Now(), post.PublishAt, time.Second)
}

func TestPostCreateKeepsExplicitValues(t *testing.T) {
	g := openTestDB(t)

	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	post := models.Post{
		Title:       "Winter sketch",
		ContentPath: "b.png",
		Status:      models.StatusPublished,
		PublishAt:   at,
	}
	require.NoError(t, g.Create(&post).Error)

	assert.Equal(t, "Winter sketch", post.Title)
	assert.Equal(t, models.StatusPublished, post.Status)
	assert.True(t, post.PublishAt.Equal(at))
}

func TestVisibleScopeExcludesDrafts(t *testing.T) {
	g := openTestDB(t)

	for _, s := range []models.Status{models.StatusDraft, models.StatusUnapproved, models.StatusPublished} {
		require.NoError(t, g.Create(&models.Post{
			Title:       string(s),
			ContentPath: string(s) + ".png",
			Status:      s,
		}).Error)
	}

	var posts []models.Post
	require.NoError(t, g.Scopes(models.Visible).Find(&posts).Error)

	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.NotEqual(t, models.StatusDraft, p.Status)
	}
}

func TestTagCreateDefaultsType(t *testing.T) {
	g := openTestDB(t)

	tag := models.Tag{Name: "Landscape", Slug: "landscape"}
	require.NoError(t, g.Create(&tag).Error)
	assert.Equal(t, "General", tag.Type)
}

func TestBlacklistOutlivesTag(t *testing.T) {
	g := openTestDB(t)

	user := models.User{Username: "alice", Email: "alice@tanuki.test", Password: "x"}
	require.NoError(t, g.Create(&user).Error)

	tag := models.Tag{Name: "Mecha", Slug: "mecha"}
	require.NoError(t, g.Create(&tag).Error)

	entry := models.UserBlacklist{UserID: user.ID, TagSlug: tag.Slug}
	require.NoError(t, g.Create(&entry).Error)

	require.NoError(t, g.Delete(&tag).Error)

	var kept models.UserBlacklist
	require.NoError(t, g.Where("user_id = ? AND tag_slug = ?", user.ID, "mecha").First(&kept).Error)

	// A recreated tag gets a fresh ID but the same slug, so the old entry
	// still applies to it.
	recreated := models.Tag{Name: "Mecha", Slug: "mecha"}
	require.NoError(t, g.Create(&recreated).Error)
	assert.NotEqual(t, tag.ID, recreated.ID)
	assert.Equal(t, kept.TagSlug, recreated.Slug)
}

func TestUserFavoriteUniquePerUserAndPost(t *testing.T) {
	g := openTestDB(t)

	user := models.User{Username: "bob", Email: "bob@tanuki.test", Password: "x"}
	require.NoError(t, g.Create(&user).Error)
	post := models.Post{ContentPath: "c.png", Status: models.StatusPublished}
	require.NoError(t, g.Create(&post).Error)

	require.NoError(t, g.Create(&models.UserFavorite{UserID: user.ID, PostID: post.ID}).Error)
	err := g.Create(&models.UserFavorite{UserID: user.ID, PostID: post.ID}).Error
	assert.Error(t, err)
}

func TestBlacklistUniquePerUserAndSlug(t *testing.T) {
	g := openTestDB(t)

	user := models.User{Username: "carol", Email: "carol@tanuki.test", Password: "x"}
	require.NoError(t, g.Create(&user).Error)

	require.NoError(t, g.Create(&models.UserBlacklist{UserID: user.ID, TagSlug: "mecha"}).Error)
	err := g.Create(&models.UserBlacklist{UserID: user.ID, TagSlug: "mecha"}).Error
	assert.Error(t, err)
}
