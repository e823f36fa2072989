package config

import (
	"os"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string // absolute base URL used when composing links in outbound mail
	UploadDir     string
	TemplatesDir  string
	StaticDir     string
	// SMTP settings; mail dispatch is disabled when host/port/from are unset.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
	// ModerationEmail is the fixed recipient for post correction requests.
	// Injected here rather than hardcoded so deployments and tests can
	// point it elsewhere.
	ModerationEmail string
}

func Load() Config {
	return Config{
		Addr:            ":" + getenv("PORT", "8080"),
		DatabaseURL:     getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=tanuki port=5432 sslmode=disable"),
		SessionSecret:   getenv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:         getenv("SITE_URL", "http://localhost:8080"),
		UploadDir:       getenv("UPLOAD_DIR", "./data/uploads"),
		TemplatesDir:    getenv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:       getenv("STATIC_DIR", "./web/static"),
		SMTPHost:        getenv("SMTP_HOST", ""),
		SMTPPort:        getenv("SMTP_PORT", "587"),
		SMTPUser:        getenv("SMTP_USER", ""),
		SMTPPass:        getenv("SMTP_PASS", ""),
		SMTPFrom:        getenv("SMTP_FROM", ""),
		ModerationEmail: getenv("MODERATION_EMAIL", "mods@tanuki.local"),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
