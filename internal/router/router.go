package router

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"tanuki/internal/config"
	"tanuki/internal/handlers"
	"tanuki/internal/middleware"
	"tanuki/internal/services"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New assembles the engine: sessions, templates, static files, middleware
// and routes. Tests build the same engine against their own config.
func New(cfg config.Config, mail *services.MailService) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("tanuki_session", store))

	r.HTMLRender = LoadTemplates(cfg.TemplatesDir)
	r.Static("/static", cfg.StaticDir)
	r.Static("/media", cfg.UploadDir)

	r.Use(middleware.LoadUser())

	postHandler := handlers.NewPostHandler(cfg, mail)
	tagHandler := handlers.NewTagHandler()
	authHandler := handlers.NewAuthHandler()
	favoriteHandler := handlers.NewFavoriteHandler()

	// Public routes
	r.GET("/", postHandler.List)
	r.GET("/p/:id", postHandler.Detail)
	r.POST("/p/:id/comment", postHandler.CreateComment)
	r.GET("/p/:id/request", postHandler.ShowRequest)
	r.POST("/p/:id/request", postHandler.SubmitRequest)
	r.GET("/tags", tagHandler.ListTags)
	r.GET("/t/:slug", tagHandler.ListByTag)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/submit", postHandler.ShowSubmit)
		authorized.POST("/submit", postHandler.Submit)
		authorized.POST("/favorite/:id", favoriteHandler.Toggle)
		authorized.GET("/favorites", favoriteHandler.ListFavorites)
		authorized.POST("/blacklist/:slug", favoriteHandler.ToggleBlacklist)
	}

	return r
}

// LoadTemplates registers every view against the shared layout.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, templatesDir+"/views/"+view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"timeAgo": func(t time.Time) string {
			d := time.Since(t)
			switch {
			case d < time.Minute:
				return "just now"
			case d < time.Hour:
				return fmt.Sprintf("%dm ago", int(d.Minutes()))
			case d < 24*time.Hour:
				return fmt.Sprintf("%dh ago", int(d.Hours()))
			default:
				return fmt.Sprintf("%dd ago", int(d.Hours()/24))
			}
		},
	}

	views := []string{
		"post/list.html",
		"post/detail.html",
		"post/comment.html",
		"post/request.html",
		"post/submit.html",
		"tag/list.html",
		"user/favorites.html",
		"auth/login.html",
		"auth/register.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(view)...)
	}

	return r
}
