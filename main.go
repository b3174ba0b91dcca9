package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	dbPath := getEnv("DB_PATH", "content.db")
	uploadsDir := getEnv("UPLOADS_DIR", "uploads")

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	store, err := OpenStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open content database: %v", err)
	}
	defer store.Close()

	r := gin.Default()
	r.Use(cors.Default())

	// Uploaded files are served read-only.
	r.Static("/uploads", uploadsDir)

	setupContentRoutes(r, store)
	setupUploadRoutes(r, uploadsDir)

	port := getEnv("PORT", "8080")
	log.Printf("Portfolio API running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
