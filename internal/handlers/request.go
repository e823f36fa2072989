package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"tanuki/internal/db"
	"tanuki/internal/forms"
	"tanuki/internal/models"

	"github.com/gin-gonic/gin"
)

// publishedPost looks up the request target. Correction requests are only
// open on published posts: the manual review pass is where most issues on
// unapproved posts get fixed anyway, and these requests exist to catch what
// review missed. Anything else reads as a missing post.
func publishedPost(c *gin.Context) (models.Post, bool) {
	var post models.Post
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return post, false
	}
	if err := db.DB.Where("status = ?", models.StatusPublished).First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return post, false
	}
	return post, true
}

// ShowRequest renders the blank correction-request form.
func (h *PostHandler) ShowRequest(c *gin.Context) {
	post, ok := publishedPost(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, "post/request.html", gin.H{
		"Post":  post,
		"Form":  forms.RequestForm{},
		"Sent":  false,
		"Title": fmt.Sprintf("Request for %s", post.Title),
	})
}

// SubmitRequest validates the form and dispatches the notification to the
// moderation address. Sent only flips to true once the message is
// definitively queued; a dispatch failure surfaces to the submitter rather
// than being swallowed.
func (h *PostHandler) SubmitRequest(c *gin.Context) {
	post, ok := publishedPost(c)
	if !ok {
		return
	}

	var form forms.RequestForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "post/request.html", gin.H{
			"Post":       post,
			"Form":       form,
			"FormErrors": forms.FieldErrors(err),
			"Sent":       false,
			"Title":      fmt.Sprintf("Request for %s", post.Title),
		})
		return
	}

	postURL := fmt.Sprintf("%s/p/%d", h.cfg.SiteURL, post.ID)
	if err := h.mail.SendModerationRequest(post.ID, form.Email, form.Subject, form.Request, postURL); err != nil {
		RenderError(c, http.StatusBadGateway, "Could not deliver your request. Please try again later.")
		return
	}

	Render(c, http.StatusOK, "post/request.html", gin.H{
		"Post":  post,
		"Form":  forms.RequestForm{},
		"Sent":  true,
		"Title": fmt.Sprintf("Request for %s", post.Title),
	})
}
