package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abduljamac/kcalpall/internal/db"
	"github.com/abduljamac/kcalpall/internal/llm"
	"github.com/abduljamac/kcalpall/internal/nutrition"
	"github.com/abduljamac/kcalpall/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE (OPTIONAL) ─────────────────────────
	var archive nutrition.Archiver
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		archive = r2Client
		log.Println("Label image archiving enabled")
	}

	// ───────────────────────── CORE ─────────────────────────
	geminiClient := llm.NewGeminiClient()

	repo := nutrition.NewPostgresRepository(pgDB)
	service := nutrition.NewService(repo)
	handler := nutrition.NewHandler(service, geminiClient, archive)

	// ───────────────────────── ROUTES ─────────────────────────
	labels := r.Group("/labels")
	{
		labels.POST("/extract", handler.ExtractLabel)
	}

	products := r.Group("/products")
	{
		products.POST("", handler.SaveProduct)
		products.GET("/:id", handler.GetProduct)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
