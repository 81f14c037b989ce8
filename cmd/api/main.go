package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/database"
	"github.com/recruiteryu/platform/internal/handlers"
)

const tokenTTL = 30 * time.Minute

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Token Signer
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set in environment")
	}
	tokens := auth.NewTokens(secret, tokenTTL)

	// 4. Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	config.AllowOrigins = []string{origin}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 5. Routes
	handlers.Register(r, db, tokens)

	// 6. Serve
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
