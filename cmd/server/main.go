package main

import (
	"log"

	"tanuki/internal/config"
	"tanuki/internal/db"
	"tanuki/internal/router"
	"tanuki/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()

	db.Init(cfg.DatabaseURL)

	mail := services.NewMailService(cfg, nil)
	defer mail.Close()

	r := router.New(cfg, mail)

	log.Printf("Tanuki server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
