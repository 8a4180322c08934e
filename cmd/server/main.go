package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"velora_back_end/internal/cache"
	"velora_back_end/internal/config"
	"velora_back_end/internal/database"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/repository"
	"velora_back_end/internal/routes"
	"velora_back_end/internal/services"
	"velora_back_end/internal/utils"
)

func main() {
	config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Database init failed: %v", err)
	}

	repos := repository.New(db)
	tokens := cache.NewTokenStore(cache.NewClientFromEnv(context.Background()))
	uploader := services.NewUploaderFromEnv()
	mailer := utils.NewMailerFromEnv()

	h := handlers.New(repos, uploader, tokens, mailer)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Get("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	routes.RegisterRoutes(r, h)

	port := config.Get("PORT", "8080")
	log.Println("🚀 Velora backend listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
